package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/gfakit/pkg/errors"
	"github.com/matzehuels/gfakit/pkg/gfa"
)

// maxReportedLines caps the offending lines printed for one error.
const maxReportedLines = 10

func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a GFA file for errors",
		Long: `Parse FILE at the configured validation level and run the integrity
checks: every referenced segment must be defined and consecutive path steps
must be joined by a link. Offending lines are printed under the error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			g, err := c.loadGraph(cmd.Context(), cmd, args[0])
			// Levels 1 and up validate while loading.
			if err == nil && c.Config.Level() == gfa.LevelNone {
				err = g.Validate()
			}
			if err != nil {
				if code := errors.GetCode(err); code == "" || code == errors.ErrCodeFileNotFound {
					return err
				}
				printError(w, "%v", err)
				lines := errors.LinesOf(err)
				for i, line := range lines {
					if i == maxReportedLines {
						printDetail(w, "... %d more", len(lines)-i)
						break
					}
					printDetail(w, "%s", line)
				}
				return errors.New(errors.ErrCodeInvalidInput, "%s is not valid GFA", args[0])
			}

			printSuccess(w, "%s is valid GFA (%d records, level %d)", args[0], g.Len(), c.Config.Validation.Level)
			return nil
		},
	}
}
