package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/remindo/remindo/internal/config"
	"github.com/remindo/remindo/internal/timeparse"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all pending reminders",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	cfg := config.Load()

	svc, err := newService(cfg, logger)
	if err != nil {
		return err
	}

	entries, err := svc.List(time.Now().UTC())
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No pending reminders")
		return nil
	}

	for _, e := range entries {
		adviceText := "None"
		if e.Advice != nil {
			adviceText = *e.Advice
		}
		fmt.Printf("#%d - %s\n  Time remaining: %s\n  Advice: %s\n", e.ID, e.Message, timeparse.FormatRemaining(e.Remaining), adviceText)
	}
	return nil
}
