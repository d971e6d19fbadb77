// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"
	"github.com/xvierd/turskmind/internal/config"
	"github.com/xvierd/turskmind/internal/ports"
)

// Ensure Notifier implements ports.Notifier.
var _ ports.Notifier = (*Notifier)(nil)

// Notifier handles desktop notifications.
type Notifier struct {
	cfg    *config.NotificationConfig
	notify func(title, message string, icon any) error
	beep   func(freq float64, duration int) error
}

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{
		cfg:    cfg,
		notify: beeep.Notify,
		beep:   beeep.Beep,
	}
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(title, message string) error {
	if !n.IsEnabled() {
		return nil
	}

	if err := n.notify(title, message, ""); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	if n.cfg.Sound {
		if err := n.beep(beeep.DefaultFreq, beeep.DefaultDuration); err != nil {
			return fmt.Errorf("failed to beep: %w", err)
		}
	}

	return nil
}

// NotifyPracticeComplete displays a notification when a countdown finishes.
func (n *Notifier) NotifyPracticeComplete(label string) error {
	return n.Notify("🪔 Practice Complete!", fmt.Sprintf("Completed '%s'! Feel the Tüürk spirit! 🌄", label))
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}
