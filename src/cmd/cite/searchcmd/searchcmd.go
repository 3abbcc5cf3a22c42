package searchcmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"citations/src/internal/config"
	"citations/src/internal/crossref"
	"citations/src/internal/googlebooks"
	"citations/src/internal/openlibrary"
	"citations/src/internal/schema"
	"citations/src/internal/search"
	"citations/src/internal/styles"
)

// New returns the search command which queries one or all sources and
// prints the results formatted, as a table, or as YAML.
func New() *cobra.Command {
	var (
		source  string
		style   string
		asTable bool
		asYAML  bool
		limit   int
	)
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search Crossref, Google Books, and Open Library for citations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			query := args[0]
			if limit <= 0 {
				limit = config.MaxResults()
			}
			var (
				cs       []schema.Citation
				attempts []search.Attempt
				err      error
			)
			switch source {
			case "all":
				cs, attempts, err = search.All(ctx, query, limit)
				for _, a := range attempts {
					if a.Err != nil {
						fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s: %v\n", a.Source, a.Err)
					}
				}
			case schema.SourceCrossref:
				cs, err = crossref.Search(ctx, query, limit)
			case schema.SourceGoogleBooks:
				cs, err = googlebooks.Search(ctx, query, limit)
			case schema.SourceOpenLibrary:
				cs, err = openlibrary.Search(ctx, query, limit)
			default:
				return fmt.Errorf("unknown source: %q", source)
			}
			if err != nil {
				return err
			}
			switch {
			case asTable:
				writeTable(cmd.OutOrStdout(), cs)
				return nil
			case asYAML:
				return yaml.NewEncoder(cmd.OutOrStdout()).Encode(cs)
			default:
				for _, c := range cs {
					s, rerr := styles.Render(c, style)
					if rerr != nil {
						return rerr
					}
					if _, werr := fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n", s); werr != nil {
						return werr
					}
				}
				return nil
			}
		},
	}
	cmd.Flags().StringVarP(&source, "source", "s", "all", "source to query (crossref|googlebooks|openlibrary|all)")
	cmd.Flags().StringVar(&style, "style", styles.StyleAPA, "citation style ("+strings.Join(styles.All(), "|")+")")
	cmd.Flags().BoolVar(&asTable, "table", false, "print results as a table")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print results as YAML")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "max results per source (default from config)")
	return cmd
}

func writeTable(w io.Writer, cs []schema.Citation) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Source", "Type", "Year", "Title", "Authors"})
	for _, c := range cs {
		year := ""
		if c.Year != nil {
			year = strconv.Itoa(*c.Year)
		}
		t.AppendRow(table.Row{
			c.Source,
			c.Type,
			year,
			text.WrapSoft(c.Title, 48),
			text.WrapSoft(strings.Join(c.Authors, "; "), 40),
		})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
