package main

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/nbenliogludev/gp-intake-agent/internal/config"
)

func targetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List the configured practice targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"#", "Practice", "URL"})
			for i, target := range cfg.Targets {
				t.AppendRow(table.Row{i + 1, target.Name, target.URL})
			}
			t.Render()
			return nil
		},
	}
}
