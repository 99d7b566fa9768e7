// Package cli provides command-line interface functionality for VPN Switcher.
// This covers the non-interactive actions: listing profiles, showing status,
// toggling the last connection, and disabling everything without a menu.
package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/yllada/vpn-switcher/menu"
	"github.com/yllada/vpn-switcher/vpn"
)

// CLI represents the command-line interface.
type CLI struct {
	conns    vpn.Connections
	switcher *vpn.Switcher
	names    menu.Names
	out      io.Writer
}

// New creates a new CLI instance.
func New(conns vpn.Connections, switcher *vpn.Switcher, names menu.Names) *CLI {
	return &CLI{
		conns:    conns,
		switcher: switcher,
		names:    names,
		out:      os.Stdout,
	}
}

// List lists all managed tunnel profiles grouped by exit group.
func (c *CLI) List() error {
	registry, err := c.conns.ListProfiles()
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}
	active, err := c.conns.ListActive()
	if err != nil {
		return fmt.Errorf("failed to query active profiles: %w", err)
	}

	if len(registry) == 0 {
		fmt.Fprintln(c.out, "No VPN profiles configured.")
		return nil
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GROUP\tPROFILE\tSTATUS")
	fmt.Fprintln(w, "-----\t-------\t------")

	for _, code := range registry.Groups() {
		group := c.names.Resolve(code)
		for _, id := range registry.Profiles(code) {
			status := "-"
			if active.Contains(id) {
				status = "active"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", group, id, status)
		}
	}

	w.Flush()
	return nil
}

// Status shows the currently active tunnel profiles.
func (c *CLI) Status() error {
	active, err := c.conns.ListActive()
	if err != nil {
		return fmt.Errorf("failed to query active profiles: %w", err)
	}

	ids := active.IDs()
	if len(ids) == 0 {
		fmt.Fprintln(c.out, "No active VPN profiles.")
		return nil
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PROFILE\tGROUP")
	fmt.Fprintln(w, "-------\t-----")

	for _, id := range ids {
		group := "-"
		if code, err := vpn.GroupOf(id); err == nil {
			group = c.names.Resolve(code)
		}
		fmt.Fprintf(w, "%s\t%s\n", id, group)
	}

	w.Flush()
	return nil
}

// DisableAll brings every active tunnel profile down.
func (c *CLI) DisableAll() error {
	if err := c.switcher.DisableAll(); err != nil {
		return fmt.Errorf("failed to disable profiles: %w", err)
	}
	fmt.Fprintln(c.out, "✓ All VPN profiles disabled")
	return nil
}

// Toggle switches the VPN off when anything is active, or reconnects the
// most recently used profile when nothing is.
func (c *CLI) Toggle() error {
	if err := c.switcher.ToggleLast(); err != nil {
		return fmt.Errorf("toggle failed: %w", err)
	}
	return nil
}

// PrintHelp prints CLI usage help.
func PrintHelp() {
	fmt.Println(`VPN Switcher - fuzzy tunnel profile selection

Usage:
  vpn-switcher [OPTIONS]

Options:
  --version            Show version and exit
  --verbose            Enable verbose logging
  --list               List all tunnel profiles grouped by exit group
  --status             Show active tunnel profiles
  --toggle             Disable the VPN, or reconnect the last profile
  --disable-all        Bring all active tunnel profiles down
  --menu BACKEND       Menu backend: auto, tui, fuzzel, rofi, dmenu
  --theme THEME        Menu theme: auto, light, dark
  --history-file PATH  Override the recency log location
  --history-size N     Bound the recency log
  --notify-duration MS Notification duration in ms (negative disables)
  --help               Show this help message

Examples:
  vpn-switcher                 # interactive menu
  vpn-switcher --toggle        # bind this to a hotkey
  vpn-switcher --list
  vpn-switcher --disable-all

Notes:
  - Run without options to open the interactive menu
  - With no terminal, the menu falls back to fuzzel/rofi/dmenu`)
}
