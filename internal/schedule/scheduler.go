// Package schedule arms one-shot deferred firings for reminders. Armed
// timers live only as long as the process; rows left behind by an exited
// process stay in storage undelivered.
package schedule

import (
	"log"
	"time"
)

// Notifier delivers the reminder message when its timer fires.
type Notifier interface {
	Notify(message string) error
}

// Store is the slice of reminder storage the scheduler needs: removing a
// reminder once it has fired.
type Store interface {
	Delete(id uint) error
}

// Scheduler arms deferred notifications for reminders.
type Scheduler struct {
	store    Store
	notifier Notifier
	logger   *log.Logger
}

// New creates a Scheduler.
func New(store Store, notifier Notifier, logger *log.Logger) *Scheduler {
	return &Scheduler{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// Arm schedules exactly one firing for the reminder at the trigger instant
// and returns immediately. A trigger in the past fires without waiting.
// There is no cancellation handle; an armed timer is discarded when the
// process exits before it fires.
func (s *Scheduler) Arm(id uint, message string, trigger time.Time) {
	wait := time.Until(trigger)
	if wait < 0 {
		wait = 0
	}
	time.AfterFunc(wait, func() {
		s.fire(id, message)
	})
}

// fire delivers the notification and removes the reminder row. Neither
// failure escalates; once the reminder is durably stored, delivery and
// cleanup are best effort.
func (s *Scheduler) fire(id uint, message string) {
	if err := s.notifier.Notify(message); err != nil {
		s.logger.Printf("notification for reminder #%d failed: %v", id, err)
	}
	if err := s.store.Delete(id); err != nil {
		s.logger.Printf("cleanup of reminder #%d failed: %v", id, err)
	}
}
