package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nbenliogludev/gp-intake-agent/internal/agentapi"
	"github.com/nbenliogludev/gp-intake-agent/internal/config"
	"github.com/nbenliogludev/gp-intake-agent/internal/intake"
	"github.com/nbenliogludev/gp-intake-agent/internal/llm"
	"github.com/nbenliogludev/gp-intake-agent/internal/logger"
	"github.com/nbenliogludev/gp-intake-agent/internal/output"
)

func checkCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the intake check for all configured practices",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if outputPath != "" {
				cfg.Output = outputPath
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log, err := logger.New(debug)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck // stderr sync failure is uninteresting

			dispatcher, err := buildDispatcher(cfg, log)
			if err != nil {
				return err
			}

			results, err := dispatcher.CheckPractices(cmd.Context(), cfg.Targets)
			if err != nil {
				return err
			}

			if err := output.WriteJSON(os.Stdout, results); err != nil {
				return err
			}
			if cfg.Output != "" {
				if err := output.WriteFile(cfg.Output, results); err != nil {
					return err
				}
				log.Info("results written", zap.String("path", cfg.Output))
			}

			output.SummaryTable(os.Stderr, results)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "also write the JSON results to this file")
	return cmd
}

func buildDispatcher(cfg *config.Config, log *zap.Logger) (*intake.Dispatcher, error) {
	var backend intake.AgentBackend
	var err error

	switch cfg.Backend {
	case config.BackendBrowserUse:
		opts := []agentapi.Option{
			agentapi.WithPollInterval(cfg.BrowserUse.PollInterval),
			agentapi.WithTaskTimeout(cfg.BrowserUse.Timeout),
			agentapi.WithMaxSteps(cfg.BrowserUse.MaxSteps),
		}
		if cfg.BrowserUse.BaseURL != "" {
			opts = append(opts, agentapi.WithBaseURL(cfg.BrowserUse.BaseURL))
		}
		backend, err = agentapi.NewClient(cfg.BrowserUse.APIKey, log, opts...)
	case config.BackendOpenAI:
		backend, err = llm.NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model)
	default:
		err = fmt.Errorf("unknown backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	var salvage intake.Salvager
	if cfg.Salvage {
		salvage, err = llm.NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model)
		if err != nil {
			return nil, err
		}
	}

	return intake.NewDispatcher(backend, salvage, log), nil
}
