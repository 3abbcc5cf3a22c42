package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"citations/src/cmd/cite/exportcmd"
	"citations/src/cmd/cite/rendercmd"
	"citations/src/cmd/cite/searchcmd"
	"citations/src/internal/config"
)

var version = "1.0.0"

func newRootCmd() *cobra.Command {
	var cfgFile string
	root := &cobra.Command{
		Use:           "cite",
		Short:         "Fetch bibliographic metadata and format citations (APA, MLA, Chicago, Harvard, BibTeX)",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg.Apply()
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.cite/config.yaml)")
	root.AddCommand(searchcmd.New())
	root.AddCommand(rendercmd.New())
	root.AddCommand(exportcmd.New())
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cite %s\n", version)
		},
	})
	return root
}

func main() {
	_ = godotenv.Load()
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
