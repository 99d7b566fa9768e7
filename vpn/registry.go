// Package vpn provides tunnel profile discovery and switching for VPN Switcher.
// This file contains the NMCli adapter which queries and toggles tunnel
// connections through NetworkManager's nmcli binary.
package vpn

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/yllada/vpn-switcher/common"
)

// nmcliBin is the connection manager binary this tool drives.
const nmcliBin = "nmcli"

// Connections is the connection-manager capability required by the
// switcher and the menu flow. NMCli is the production implementation;
// tests substitute fakes.
type Connections interface {
	// ListProfiles queries all managed tunnel profiles, grouped.
	ListProfiles() (Registry, error)
	// ListActive queries the currently active managed profiles.
	ListActive() (ActiveSet, error)
	// Up activates the profile.
	Up(id string) error
	// Down deactivates the profile.
	Down(id string) error
}

// CommandRunner executes an external command and returns its combined
// standard output. Injected so the adapter can be tested without nmcli.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// NMCli queries and toggles tunnel connections via nmcli.
// Every call reads live state; nothing is cached between calls.
type NMCli struct {
	run     CommandRunner
	timeout time.Duration
	log     common.Logger
}

// NewNMCli creates an nmcli adapter. A non-positive timeout disables the
// per-call deadline.
func NewNMCli(timeout time.Duration, logger common.Logger) *NMCli {
	return &NMCli{
		run:     execRunner{},
		timeout: timeout,
		log:     logger,
	}
}

// Available reports whether the nmcli binary can be found in PATH.
func Available() bool {
	_, err := exec.LookPath(nmcliBin)
	return err == nil
}

// ListProfiles queries all configured tunnel connections and groups them.
func (c *NMCli) ListProfiles() (Registry, error) {
	out, err := c.exec("connection", "show")
	if err != nil {
		return nil, err
	}
	return BuildRegistry(parseConnectionTable(out))
}

// ListActive queries only the currently active tunnel connections.
func (c *NMCli) ListActive() (ActiveSet, error) {
	out, err := c.exec("connection", "show", "--active")
	if err != nil {
		return nil, err
	}
	return NewActiveSet(parseConnectionTable(out)), nil
}

// Up activates a connection profile.
func (c *NMCli) Up(id string) error {
	_, err := c.exec("connection", "up", id)
	return err
}

// Down deactivates a connection profile.
func (c *NMCli) Down(id string) error {
	_, err := c.exec("connection", "down", id)
	return err
}

// exec runs an nmcli subcommand with the configured timeout. Failures are
// fatal for the current operation and never retried here.
func (c *NMCli) exec(args ...string) ([]byte, error) {
	ctx := context.Background()
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	c.log.Debug("nmcli %s", strings.Join(args, " "))
	out, err := c.run.Run(ctx, nmcliBin, args...)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: nmcli %s: %v", common.ErrTimeout, strings.Join(args, " "), err)
		}
		return nil, fmt.Errorf("%w: nmcli %s: %v", common.ErrExternalTool, strings.Join(args, " "), err)
	}
	return out, nil
}

// parseConnectionTable extracts managed tunnel profile identifiers from an
// nmcli connection table. The first whitespace-delimited token of each row
// is the connection identifier; only rows containing the tunnel-technology
// marker are kept, which also drops the header row.
func parseConnectionTable(out []byte) []string {
	var ids []string
	for _, line := range strings.Split(string(out), "\n") {
		if !strings.Contains(line, common.TunnelMarker) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		ids = append(ids, fields[0])
	}
	return ids
}
