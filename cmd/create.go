package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/remindo/remindo/internal/config"
)

var createCmd = &cobra.Command{
	Use:   "create <time> <message>",
	Short: "Create a reminder",
	Long:  `Create a reminder that fires at the given time. The time is either a relative offset like +30m or +2d, or an RFC 3339 timestamp like 2025-01-01T12:00:00Z.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	cfg := config.Load()

	svc, err := newService(cfg, logger)
	if err != nil {
		return err
	}

	id, adviceText, err := svc.Create(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Printf("Reminder #%d created\n", id)
	if adviceText != nil {
		fmt.Println("--- AI advice ---")
		fmt.Println(*adviceText)
	} else {
		fmt.Println("No AI advice generated")
	}

	// Give a reminder armed for an instant that has already passed a moment
	// to fire before the process exits.
	time.Sleep(time.Second)
	return nil
}
