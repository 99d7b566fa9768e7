// Package menu provides the selection engine for VPN Switcher.
// This file contains the presenter backed by an external launcher program
// (fuzzel, rofi, or dmenu in dmenu mode).
package menu

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/yllada/vpn-switcher/common"
)

// Launcher presents menus through an external dmenu-style program.
// Labels are fed on stdin, the picked line comes back on stdout. The
// program may return free text or nothing at all; resolution handles both.
type Launcher struct {
	program string
	theme   string
	log     common.Logger
}

// NewLauncher creates a presenter for one of the supported launcher
// programs (common.MenuFuzzel, MenuRofi, MenuDmenu).
func NewLauncher(program, theme string, logger common.Logger) (*Launcher, error) {
	switch program {
	case common.MenuFuzzel, common.MenuRofi, common.MenuDmenu:
	default:
		return nil, fmt.Errorf("%w: unknown menu program %q", common.ErrConfig, program)
	}
	if _, err := exec.LookPath(program); err != nil {
		return nil, fmt.Errorf("%w: %s not found in PATH", common.ErrExternalTool, program)
	}
	return &Launcher{program: program, theme: theme, log: logger}, nil
}

// FirstAvailable returns a launcher for the first supported program found
// in PATH, used when no backend is configured and stdout is not a TTY.
func FirstAvailable(theme string, logger common.Logger) (*Launcher, error) {
	for _, program := range []string{common.MenuFuzzel, common.MenuRofi, common.MenuDmenu} {
		if _, err := exec.LookPath(program); err == nil {
			return &Launcher{program: program, theme: theme, log: logger}, nil
		}
	}
	return nil, fmt.Errorf("%w: no menu program found (tried fuzzel, rofi, dmenu)", common.ErrExternalTool)
}

// Pick renders the rows and blocks until the user picks or dismisses.
// Dismissal (the launcher exiting non-zero with no output) returns "" and
// no error; a missing or broken launcher is an ExternalTool failure.
func (l *Launcher) Pick(prompt string, rows []Row) (string, error) {
	labels := make([]string, 0, len(rows))
	for _, row := range rows {
		labels = append(labels, row.Label)
	}

	cmd := exec.Command(l.program, l.argv(prompt)...)
	cmd.Stdin = strings.NewReader(strings.Join(labels, "\n"))

	out, err := cmd.Output()
	answer := strings.TrimRight(string(out), "\n")
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Launchers exit non-zero when the menu is dismissed.
			l.log.Debug("%s exited with status %d", l.program, exitErr.ExitCode())
			return "", nil
		}
		return "", fmt.Errorf("%w: %s: %v", common.ErrExternalTool, l.program, err)
	}
	return answer, nil
}

// argv builds the launcher invocation for a prompt, applying the theme
// where the program supports one.
func (l *Launcher) argv(prompt string) []string {
	switch l.program {
	case common.MenuRofi:
		args := []string{"-dmenu", "-i", "-p", prompt}
		if l.theme != "" && l.theme != common.ThemeAuto {
			args = append(args, "-theme", l.theme)
		}
		return args
	case common.MenuDmenu:
		return []string{"-i", "-p", prompt}
	default: // fuzzel
		return []string{"--dmenu", "--prompt", prompt + " "}
	}
}
