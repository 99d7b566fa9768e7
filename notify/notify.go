// Package notify sends desktop notifications for VPN switch events.
// It talks to org.freedesktop.Notifications over the session bus and
// falls back to notify-send when no bus is available. Notification
// failures are logged and never propagated: a missing daemon must not
// break a switch.
package notify

import (
	"os/exec"
	"strconv"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/yllada/vpn-switcher/common"
)

const (
	notifyDest   = "org.freedesktop.Notifications"
	notifyPath   = "/org/freedesktop/Notifications"
	notifyMethod = "org.freedesktop.Notifications.Notify"
	notifyIcon   = "network-vpn"
)

// DesktopNotifier delivers notifications to the user's desktop session.
type DesktopNotifier struct {
	duration time.Duration
	log      common.Logger
	// connect is swappable for tests
	connect func() (*dbus.Conn, error)
}

// New creates a notifier with the given display duration. A negative
// duration disables all notifications.
func New(duration time.Duration, logger common.Logger) *DesktopNotifier {
	return &DesktopNotifier{
		duration: duration,
		log:      logger,
		connect:  dbus.SessionBus,
	}
}

// Disabled reports whether notifications are switched off.
func (n *DesktopNotifier) Disabled() bool {
	return n.duration < 0
}

// Notify shows a desktop notification. Errors are swallowed after
// logging so callers never fail on notification problems.
func (n *DesktopNotifier) Notify(title, message string) error {
	if n.Disabled() {
		return nil
	}

	if err := n.notifyDBus(title, message); err != nil {
		n.log.Debug("D-Bus notification failed, trying notify-send: %v", err)
		if err := n.notifySend(title, message); err != nil {
			n.log.Warn("Could not show notification %q: %v", title, err)
		}
	}
	return nil
}

func (n *DesktopNotifier) notifyDBus(title, message string) error {
	conn, err := n.connect()
	if err != nil {
		return common.WrapError(err, "session bus unavailable")
	}

	obj := conn.Object(notifyDest, dbus.ObjectPath(notifyPath))
	call := obj.Call(notifyMethod, 0,
		common.AppName,             // app_name
		uint32(0),                  // replaces_id: always a new notification
		notifyIcon,                 // app_icon
		title,                      // summary
		message,                    // body
		[]string{},                 // actions
		map[string]dbus.Variant{},  // hints
		int32(n.duration.Milliseconds()),
	)
	if call.Err != nil {
		return common.WrapError(call.Err, "notification call failed")
	}
	return nil
}

func (n *DesktopNotifier) notifySend(title, message string) error {
	bin, err := exec.LookPath("notify-send")
	if err != nil {
		return common.WrapError(common.ErrExternalTool, "notify-send not found")
	}

	cmd := exec.Command(bin,
		"--app-name="+common.AppName,
		"--icon="+notifyIcon,
		"--expire-time="+strconv.FormatInt(n.duration.Milliseconds(), 10),
		title,
		message,
	)
	if err := cmd.Run(); err != nil {
		return common.WrapError(err, "notify-send failed")
	}
	return nil
}
