package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/retree/cmd/retree/opts"
	"github.com/walteh/retree/pkg/config"
	"github.com/walteh/retree/pkg/filter"
	"github.com/walteh/retree/pkg/log"
	"github.com/walteh/retree/pkg/preset"
	"github.com/walteh/retree/pkg/rewrite"
	"gitlab.com/tozd/go/errors"
)

type runFlags struct {
	configFile string
	root       string
	dryRun     bool
	diff       bool
	ignore     []string
}

// NewRunCmd creates the run command
func NewRunCmd(o *opts.RootOpts) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "Rewrite a tree with a preset or a job file",
		Long: `Run walks the root directory and applies a replacement table to every
matching file. It will:
1. Prune skipped directory names before descending
2. Select files by suffix and ignore globs
3. Apply every rule in order
4. Write back files whose content changed and print "Updated: <path>"

A file that cannot be read, decoded or written is reported as
"Skipping <path>: <error>" and the run continues.`,
		Example: `  retree run refactor-hoa-full
  retree run fix-deprecations --root ./app --dry-run --diff
  retree run --config retree.yaml`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: preset.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			plan, err := loadPlan(cmd, args, flags)
			if err != nil {
				return err
			}

			ctx = zerolog.Ctx(ctx).With().Str("command", "run").Str("job", plan.Name).Logger().WithContext(ctx)
			logger := zerolog.Ctx(ctx)

			// rule numbers are 1-based, as a user counts them in the job file
			for _, c := range plan.Table.Chains() {
				logger.Warn().
					Int("rule", c.From+1).
					Str("output", plan.Table[c.From].New).
					Int("feeds_rule", c.To+1).
					Str("pattern", plan.Table[c.To].Old).
					Msg("rule output contains the pattern of a later rule")
			}

			rw, err := rewrite.New(rewrite.Options{
				Table:  plan.Table,
				Filter: plan.Filter,
				Logger: log.FromContext(ctx),
				DryRun: flags.dryRun,
				Diff:   flags.diff,
			})
			if err != nil {
				return errors.Errorf("creating rewriter: %w", err)
			}

			summary, err := rw.Run(ctx, flags.root)
			if summary != nil {
				logger.Info().
					Str("root", flags.root).
					Bool("dry_run", flags.dryRun).
					Int("updated", summary.Count(rewrite.StatusUpdated)).
					Int("unchanged", summary.Count(rewrite.StatusUnchanged)).
					Int("failed", summary.Count(rewrite.StatusFailed)).
					Msg("run finished")
			}
			if err != nil {
				return errors.Errorf("running %s: %w", plan.Name, err)
			}

			if flags.dryRun {
				logger.Info().Int("would_update", summary.Count(rewrite.StatusUpdated)).Msg("dry run complete, nothing written")
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.configFile, "config", "c", "", "job file (.yaml, .yml, .json, .hcl or .toml)")
	cmd.Flags().StringVarP(&flags.root, "root", "r", ".", "directory to rewrite")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "report changes without writing")
	cmd.Flags().BoolVar(&flags.diff, "diff", false, "print the changed lines of every updated file")
	cmd.Flags().StringArrayVar(&flags.ignore, "ignore", nil, "glob of root-relative paths to leave alone (repeatable)")

	return cmd
}

// loadPlan resolves either the named preset or the job file
func loadPlan(cmd *cobra.Command, args []string, flags *runFlags) (*config.Plan, error) {
	var job *config.Job

	switch {
	case len(args) == 1 && flags.configFile != "":
		return nil, errors.New("a preset argument cannot be combined with --config; set preset in the job file")
	case len(args) == 1:
		job = &config.Job{Preset: args[0]}
	case flags.configFile != "":
		loaded, err := config.LoadConfig(cmd.Context(), flags.configFile)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		job = loaded
	default:
		return nil, errors.New("either a preset or --config is required")
	}

	plan, err := job.Resolve()
	if err != nil {
		return nil, err
	}

	if len(flags.ignore) > 0 {
		ignore := append(filter.Ignore{}, plan.Filter.Ignore...)
		plan.Filter.Ignore = append(ignore, flags.ignore...)
	}

	return plan, nil
}
