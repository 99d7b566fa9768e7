package notify

import (
	"errors"
	"testing"
	"time"

	"github.com/godbus/dbus/v5"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestDisabled(t *testing.T) {
	if New(-1, nopLogger{}).Disabled() != true {
		t.Error("negative duration must disable notifications")
	}
	if New(4*time.Second, nopLogger{}).Disabled() {
		t.Error("positive duration must not disable notifications")
	}
	if New(0, nopLogger{}).Disabled() {
		t.Error("zero duration means daemon default, not disabled")
	}
}

func TestNotify_DisabledSkipsDelivery(t *testing.T) {
	n := New(-1, nopLogger{})
	n.connect = func() (*dbus.Conn, error) {
		t.Fatal("disabled notifier must not touch the bus")
		return nil, nil
	}

	if err := n.Notify("title", "message"); err != nil {
		t.Errorf("Notify() error = %v, want nil", err)
	}
}

func TestNotify_NeverPropagatesFailure(t *testing.T) {
	n := New(time.Second, nopLogger{})
	n.connect = func() (*dbus.Conn, error) {
		return nil, errors.New("no session bus")
	}

	// Both transports fail in a headless test environment; the caller
	// must still see success.
	if err := n.Notify("title", "message"); err != nil {
		t.Errorf("Notify() error = %v, want nil even when delivery fails", err)
	}
}
