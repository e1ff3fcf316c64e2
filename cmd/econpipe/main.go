package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "econpipe",
		Short: "Housing affordability pipeline over FRED economic series",
	}

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(queryCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	var (
		configPath string
		noStore    bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Load series, derive the affordability tables, persist them",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runPipeline(configPath, noStore)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "econpipe.yaml", "pipeline config file")
	cmd.Flags().BoolVar(&noStore, "no-store", false, "derive and print only, skip persistence")

	return cmd
}

func queryCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "query [sql]",
		Short: "Run read-only SQL against the persisted store",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runQuery(configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "econpipe.yaml", "pipeline config file")

	return cmd
}
