// Package vpn provides tunnel profile discovery and switching for VPN Switcher.
// This file contains the Switcher type which enforces the "exactly the chosen
// profile is active" intent against the connection manager.
package vpn

import (
	"fmt"

	"github.com/yllada/vpn-switcher/common"
)

// Switcher orchestrates profile activation and deactivation.
// It activates the target before deactivating stale profiles, so there is
// never a window with zero tunnels up.
type Switcher struct {
	conns   Connections
	history common.RecencyStore
	log     common.Logger
	notify  common.Notifier
}

// NewSwitcher creates a switcher over the given connection manager.
func NewSwitcher(conns Connections, history common.RecencyStore, logger common.Logger, notifier common.Notifier) *Switcher {
	return &Switcher{
		conns:   conns,
		history: history,
		log:     logger,
		notify:  notifier,
	}
}

// Activate brings up the target profile, then brings down every other
// currently active managed profile. A failed bring-up is fatal for the call.
// A failed bring-down leaves both profiles active; that is surfaced as a
// warning, not rolled back. On successful bring-up the profile is recorded
// in the recency store.
func (s *Switcher) Activate(id string) error {
	active, err := s.conns.ListActive()
	if err != nil {
		return err
	}

	s.log.Info("Activating profile %s", id)
	if err := s.conns.Up(id); err != nil {
		s.warn("VPN Error", "Could not activate "+id)
		return fmt.Errorf("failed to activate %s: %w", id, err)
	}

	for _, stale := range active.IDs() {
		if stale == id {
			continue
		}
		s.log.Info("Deactivating stale profile %s", stale)
		if err := s.conns.Down(stale); err != nil {
			s.log.Warn("Failed to deactivate %s, both profiles remain active: %v", stale, err)
			s.warn("VPN Warning", fmt.Sprintf("Could not deactivate %s", stale))
		}
	}

	if err := s.history.Record(id); err != nil {
		s.log.Warn("Failed to record %s in history: %v", id, err)
	}

	s.note("VPN Connected", "Connected to "+id)
	return nil
}

// DisableAll deactivates every active managed profile not listed in
// exceptions. An empty active set is a valid empty result: zero calls are
// made and no error is returned.
func (s *Switcher) DisableAll(exceptions ...string) error {
	active, err := s.conns.ListActive()
	if err != nil {
		return err
	}

	var disabled int
	var firstErr error
	for _, id := range active.IDs() {
		if common.StringInSlice(id, exceptions) {
			continue
		}
		s.log.Info("Deactivating profile %s", id)
		if err := s.conns.Down(id); err != nil {
			s.log.Warn("Failed to deactivate %s: %v", id, err)
			s.warn("VPN Warning", fmt.Sprintf("Could not deactivate %s", id))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		disabled++
	}

	if disabled > 0 && firstErr == nil {
		s.note("VPN Disconnected", fmt.Sprintf("Disabled %d profile(s)", disabled))
	}
	return firstErr
}

// ToggleLast toggles between "something up" and "nothing up": if any managed
// profile is active, everything is disabled; otherwise the most recent
// history entry still known to the connection manager is activated. With
// nothing active and no history this is a no-op, not an error.
func (s *Switcher) ToggleLast() error {
	active, err := s.conns.ListActive()
	if err != nil {
		return err
	}

	if len(active) > 0 {
		return s.DisableAll()
	}

	recent, err := s.history.Read()
	if err != nil {
		return err
	}
	if len(recent) == 0 {
		s.log.Debug("Toggle: nothing active and no history, nothing to do")
		return nil
	}

	// History entries can outlive their profiles; skip any that the
	// manager no longer knows about.
	reg, err := s.conns.ListProfiles()
	if err != nil {
		return err
	}
	for i := len(recent) - 1; i >= 0; i-- {
		if reg.Contains(recent[i]) {
			return s.Activate(recent[i])
		}
		s.log.Warn("History entry %s no longer exists, skipping", recent[i])
	}
	return fmt.Errorf("%w: no history entry matches a configured profile", common.ErrProfileNotFound)
}

// note sends a best-effort informational notification.
func (s *Switcher) note(title, message string) {
	if s.notify == nil {
		return
	}
	if err := s.notify.Notify(title, message); err != nil {
		s.log.Warn("Notification failed: %v", err)
	}
}

// warn sends a best-effort warning notification.
func (s *Switcher) warn(title, message string) {
	s.note(title, message)
}
