package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/remindo/remindo/internal/advice"
	"github.com/remindo/remindo/internal/config"
	"github.com/remindo/remindo/internal/notify"
	"github.com/remindo/remindo/internal/schedule"
	"github.com/remindo/remindo/internal/service"
	"github.com/remindo/remindo/internal/store"
)

var rootCmd = &cobra.Command{
	Use:          "remindo",
	Short:        "One-shot desktop reminders with optional AI advice",
	Long:         `Remindo creates time-triggered reminders, optionally enriched with AI-generated advice, and fires a desktop notification when the trigger time elapses.`,
	SilenceUsage: true,
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *log.Logger {
	return log.New(os.Stderr, "[remindo] ", log.LstdFlags)
}

// newService wires the service from configuration: GORM store, DeepSeek
// advice client, and a scheduler firing into the configured notifier.
func newService(cfg *config.Config, logger *log.Logger) (*service.Service, error) {
	st, err := store.Open(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		return nil, err
	}

	notifier := notify.FromConfig(cfg, logger)
	sched := schedule.New(st, notifier, logger)
	return service.New(cfg, st, advice.New(cfg.DeepSeekAPIKey), sched, logger), nil
}
