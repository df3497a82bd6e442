// Package service orchestrates reminder creation and listing.
package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/remindo/remindo/internal/config"
	"github.com/remindo/remindo/internal/model"
	"github.com/remindo/remindo/internal/timeparse"
)

// AdviceProvider produces optional advisory text for a reminder message.
type AdviceProvider interface {
	Advice(ctx context.Context, message string) (string, error)
}

// Store is the reminder storage surface the service needs.
type Store interface {
	Insert(message string, trigger time.Time, advice *string) (uint, error)
	ListAll() ([]model.Reminder, error)
}

// Armer schedules the deferred firing for a newly created reminder.
type Armer interface {
	Arm(id uint, message string, trigger time.Time)
}

// Entry is one reminder prepared for display, with its remaining time
// relative to the moment the listing was taken. Remaining is negative for
// overdue reminders.
type Entry struct {
	ID        uint
	Message   string
	Remaining time.Duration
	Advice    *string
}

// Service composes time parsing, advice generation, storage, and scheduling.
type Service struct {
	cfg    *config.Config
	store  Store
	advice AdviceProvider
	sched  Armer
	logger *log.Logger
}

// New creates a Service.
func New(cfg *config.Config, store Store, advice AdviceProvider, sched Armer, logger *log.Logger) *Service {
	return &Service{
		cfg:    cfg,
		store:  store,
		advice: advice,
		sched:  sched,
		logger: logger,
	}
}

// Create parses the time expression, stores a reminder, and arms its firing.
// It returns the new id and the generated advice, which is nil when advice
// generation failed. Advice failures never abort creation; a missing API key,
// a bad time expression, or a storage failure do.
func (s *Service) Create(ctx context.Context, timeStr, message string) (uint, *string, error) {
	if strings.TrimSpace(message) == "" {
		return 0, nil, fmt.Errorf("reminder message cannot be empty")
	}
	if s.cfg.DeepSeekAPIKey == "" {
		return 0, nil, config.ErrMissingAPIKey
	}

	var advice *string
	if text, err := s.advice.Advice(ctx, message); err != nil {
		s.logger.Printf("advice generation failed: %v", err)
	} else {
		advice = &text
	}

	trigger, err := timeparse.Parse(timeStr)
	if err != nil {
		return 0, nil, err
	}

	id, err := s.store.Insert(message, trigger, advice)
	if err != nil {
		return 0, nil, err
	}

	s.sched.Arm(id, message, trigger)
	return id, advice, nil
}

// List returns all stored reminders ascending by trigger time, each with its
// remaining duration relative to now. A row whose stored trigger time fails
// to parse is logged and skipped rather than failing the whole listing.
func (s *Service) List(now time.Time) ([]Entry, error) {
	reminders, err := s.store.ListAll()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(reminders))
	for _, r := range reminders {
		trigger, err := time.Parse(time.RFC3339, r.TriggerTime)
		if err != nil {
			s.logger.Printf("skipping reminder #%d: stored trigger time %q is invalid: %v", r.ID, r.TriggerTime, err)
			continue
		}
		entries = append(entries, Entry{
			ID:        r.ID,
			Message:   r.Message,
			Remaining: trigger.Sub(now),
			Advice:    r.AIAdvice,
		})
	}
	return entries, nil
}
