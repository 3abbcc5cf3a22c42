package rendercmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"citations/src/internal/schema"
	"citations/src/internal/styles"
)

// New returns the render command which formats citations from a YAML file
// without any network access.
func New() *cobra.Command {
	var (
		file  string
		style string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render citations from a YAML file in a chosen style",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(file) == "" {
				return fmt.Errorf("--file is required")
			}
			b, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			cs, err := decode(b)
			if err != nil {
				return err
			}
			for _, c := range cs {
				if c.Type == "" {
					c.Type = schema.TypeUnknown
				}
				if verr := c.Validate(); verr != nil {
					return fmt.Errorf("%s: %w", file, verr)
				}
				s, rerr := styles.Render(c, style)
				if rerr != nil {
					return rerr
				}
				if _, werr := fmt.Fprintln(cmd.OutOrStdout(), s); werr != nil {
					return werr
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file holding one citation or a list of citations")
	cmd.Flags().StringVar(&style, "style", styles.StyleAPA, "citation style ("+strings.Join(styles.All(), "|")+")")
	return cmd
}

// decode accepts either a single citation document or a sequence of them.
func decode(b []byte) ([]schema.Citation, error) {
	var list []schema.Citation
	if err := yaml.Unmarshal(b, &list); err == nil {
		return list, nil
	}
	var one schema.Citation
	if err := yaml.Unmarshal(b, &one); err != nil {
		return nil, err
	}
	return []schema.Citation{one}, nil
}
