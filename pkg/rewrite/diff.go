package rewrite

import (
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// 🔍 renderDiff returns the changed lines of before/after, "-" for removed
// and "+" for added
func renderDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		var prefix string
		var c *color.Color
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix, c = "-", color.New(color.FgRed)
		case diffmatchpatch.DiffInsert:
			prefix, c = "+", color.New(color.FgGreen)
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(c.Sprint(prefix + strings.TrimSuffix(line, "\n")))
			sb.WriteByte('\n')
		}
	}

	return strings.TrimSuffix(sb.String(), "\n")
}
