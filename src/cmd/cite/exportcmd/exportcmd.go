package exportcmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"citations/src/internal/config"
	"citations/src/internal/search"
	"citations/src/internal/styles"
)

// New returns the export command: search every source and write the results
// to a BibTeX file. Single-source failures become warnings, not errors.
func New() *cobra.Command {
	var (
		out   string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "export <query>",
		Short: "Search all sources and write results to a BibTeX file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				limit = config.MaxResults()
			}
			cs, attempts, err := search.All(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}
			for _, a := range attempts {
				if a.Err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s: %v\n", a.Source, a.Err)
				}
			}
			var b strings.Builder
			for _, c := range cs {
				b.WriteString(styles.BibTeX(c))
				b.WriteString("\n\n")
			}
			if werr := os.WriteFile(out, []byte(b.String()), 0o644); werr != nil {
				return werr
			}
			_, werr := fmt.Fprintf(cmd.OutOrStdout(), "wrote %d entries to %s\n", len(cs), out)
			return werr
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "references.bib", "output .bib file path")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "max results per source (default from config)")
	return cmd
}
