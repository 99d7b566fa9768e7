// Package menu provides the selection engine for VPN Switcher.
// This file contains the interactive top-level loop.
package menu

import (
	"github.com/yllada/vpn-switcher/common"
	"github.com/yllada/vpn-switcher/vpn"
)

// Activator is the slice of the switcher the flow needs.
type Activator interface {
	Activate(id string) error
	DisableAll(exceptions ...string) error
}

// RecentReader reads the recency log, oldest first.
type RecentReader interface {
	Read() ([]string, error)
}

// Flow drives the interactive selection loop: query live state, build the
// menu, present it, resolve the pick, act.
type Flow struct {
	Conns   vpn.Connections
	Switch  Activator
	Recent  RecentReader
	Present Presenter
	Names   Names
	Log     common.Logger
}

// Run loops until a pick yields a terminal action or the user cancels at
// the top level, then returns. The active set and registry are re-queried
// and the menu rebuilt on every iteration; a cancelled drill-down returns
// to the top menu. A clean cancel is not an error and commits no state.
//
// Listing and presenter failures are fatal and abort immediately; no
// partial menu is ever shown. Activation failures are logged and surfaced
// as warnings by the switcher, they do not fail the flow.
func (f *Flow) Run() error {
	for {
		reg, err := f.Conns.ListProfiles()
		if err != nil {
			return err
		}
		active, err := f.Conns.ListActive()
		if err != nil {
			return err
		}

		recent, err := f.Recent.Read()
		if err != nil {
			f.Log.Warn("Could not read history, showing menu without recents: %v", err)
			recent = nil
		}

		rows := BuildTop(reg, active, recent, f.Names)
		answer, err := f.Present.Pick("VPN", rows)
		if err != nil {
			return err
		}

		intent := Resolve(rows, answer)
		switch intent.Kind {
		case IntentDisableAll:
			if err := f.Switch.DisableAll(); err != nil {
				f.Log.Error("Disable all failed: %v", err)
			}
			return nil

		case IntentProfile:
			f.activate(intent.Profile)
			return nil

		case IntentGroup:
			done, err := f.enterGroup(reg, intent.Group)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
			// Cancelled drill-down: fall through and rebuild the top menu.

		default:
			f.Log.Debug("Selection cancelled")
			return nil
		}
	}
}

// enterGroup presents one group's profiles. Returns done=true when the pick
// was terminal, done=false when the user backed out of the submenu.
func (f *Flow) enterGroup(reg vpn.Registry, code string) (bool, error) {
	rows := BuildGroup(reg, code)
	answer, err := f.Present.Pick(f.Names.Resolve(code), rows)
	if err != nil {
		return false, err
	}

	intent := Resolve(rows, answer)
	if intent.Kind != IntentProfile {
		return false, nil
	}

	f.activate(intent.Profile)
	return true, nil
}

// activate runs a profile activation, downgrading failures to warnings:
// the interactive flow still exits 0, the switcher has already notified.
func (f *Flow) activate(id string) {
	if err := f.Switch.Activate(id); err != nil {
		f.Log.Error("Activation of %s failed: %v", id, err)
	}
}
