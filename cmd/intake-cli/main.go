// Command intake-cli checks GP practice websites for new-patient intake
// status through a hosted browser agent.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

var (
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "intake-cli",
	Short: "Check GP practices for new-patient intake status",
	Long: `intake-cli asks a hosted browser agent to visit GP practice websites,
find their new-patient / registration messaging and report a structured
status (Accepting, Not Accepting, Unclear) with supporting evidence.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("intake-cli version %s\n", version)
		},
	})

	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(targetsCmd())
}

func main() {
	// Load .env early so credentials are visible to config loading.
	_ = godotenv.Load()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
