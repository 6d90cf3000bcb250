package commands

import (
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/retree/cmd/retree/opts"
	"github.com/walteh/retree/pkg/preset"
	"gitlab.com/tozd/go/errors"
)

// NewPresetsCmd creates the presets command
func NewPresetsCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "presets [name]",
		Short:     "List built-in presets or show the rules of one",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: preset.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data pterm.TableData
			if len(args) == 0 {
				data = presetsTable(preset.All())
			} else {
				p, err := preset.Lookup(args[0])
				if err != nil {
					return err
				}
				data = rulesTable(p)
			}

			err := pterm.DefaultTable.
				WithHasHeader().
				WithWriter(o.Stdout).
				WithData(data).
				Render()
			if err != nil {
				return errors.Errorf("rendering table: %w", err)
			}
			return nil
		},
	}

	return cmd
}

func presetsTable(presets []preset.Preset) pterm.TableData {
	data := pterm.TableData{{"Name", "Rules", "Extensions", "Skipped dirs", "Description"}}
	for _, p := range presets {
		data = append(data, []string{
			p.Name,
			strconv.Itoa(len(p.Table)),
			strings.Join(p.Extensions, " "),
			strings.Join(p.SkipDirs, " "),
			p.Description,
		})
	}
	return data
}

// rulesTable lists rules in the order they are applied
func rulesTable(p preset.Preset) pterm.TableData {
	data := pterm.TableData{{"#", "Old", "New"}}
	for i, r := range p.Table {
		data = append(data, []string{strconv.Itoa(i + 1), r.Old, r.New})
	}
	return data
}
