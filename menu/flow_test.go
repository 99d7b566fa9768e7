package menu

import (
	"errors"
	"testing"

	"github.com/yllada/vpn-switcher/common"
	"github.com/yllada/vpn-switcher/vpn"
)

// nopLogger discards all log output in tests.
type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// flowConns is a minimal in-memory connection manager for flow tests.
type flowConns struct {
	ids    []string
	active map[string]bool
	calls  []string
}

func newFlowConns(ids []string, active ...string) *flowConns {
	f := &flowConns{ids: ids, active: make(map[string]bool)}
	for _, id := range active {
		f.active[id] = true
	}
	return f
}

func (f *flowConns) ListProfiles() (vpn.Registry, error) {
	return vpn.BuildRegistry(f.ids)
}

func (f *flowConns) ListActive() (vpn.ActiveSet, error) {
	var on []string
	for id, ok := range f.active {
		if ok {
			on = append(on, id)
		}
	}
	return vpn.NewActiveSet(on), nil
}

func (f *flowConns) Up(id string) error {
	f.calls = append(f.calls, "up "+id)
	f.active[id] = true
	return nil
}

func (f *flowConns) Down(id string) error {
	f.calls = append(f.calls, "down "+id)
	delete(f.active, id)
	return nil
}

// fileLessHistory is an in-memory recency store.
type fileLessHistory struct {
	entries []string
	max     int
}

func (h *fileLessHistory) Read() ([]string, error) { return h.entries, nil }

func (h *fileLessHistory) Record(id string) error {
	out := make([]string, 0, len(h.entries)+1)
	for _, e := range h.entries {
		if e != id {
			out = append(out, e)
		}
	}
	out = append(out, id)
	max := h.max
	if max <= 0 {
		max = common.DefaultHistorySize
	}
	if len(out) > max {
		out = out[len(out)-max:]
	}
	h.entries = out
	return nil
}

// scriptedPresenter replays a fixed sequence of answers and records what
// it was asked to show.
type scriptedPresenter struct {
	answers []string
	shown   [][]string
	prompts []string
}

func (p *scriptedPresenter) Pick(prompt string, rows []Row) (string, error) {
	p.prompts = append(p.prompts, prompt)
	p.shown = append(p.shown, labels(rows))
	if len(p.answers) == 0 {
		return "", nil
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func newTestFlow(conns *flowConns, hist *fileLessHistory, present *scriptedPresenter) *Flow {
	return &Flow{
		Conns:   conns,
		Switch:  vpn.NewSwitcher(conns, hist, nopLogger{}, nil),
		Recent:  hist,
		Present: present,
		Names:   testNames,
		Log:     nopLogger{},
	}
}

// Fresh install: nothing active, no history. Drilling into United States
// and picking us-1 activates it, disables nothing, and seeds the history.
func TestFlow_ActivateThroughGroup(t *testing.T) {
	conns := newFlowConns([]string{"us-1", "us-2", "se-1"})
	hist := &fileLessHistory{}
	present := &scriptedPresenter{answers: []string{"United States", "us-1"}}

	if err := newTestFlow(conns, hist, present).Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	wantTop := []string{"No active profiles", "Disable All", "Sweden", "United States"}
	if len(present.shown) != 2 {
		t.Fatalf("menus shown = %d, want 2 (top + group)", len(present.shown))
	}
	if got := present.shown[0]; !equalStrings(got, wantTop) {
		t.Errorf("top menu = %v, want %v", got, wantTop)
	}
	if got := present.shown[1]; !equalStrings(got, []string{"us-1", "us-2"}) {
		t.Errorf("group menu = %v, want [us-1 us-2]", got)
	}
	if got := present.prompts[1]; got != "United States" {
		t.Errorf("group prompt = %q, want resolved display name", got)
	}

	if !equalStrings(conns.calls, []string{"up us-1"}) {
		t.Errorf("calls = %v, want only [up us-1]", conns.calls)
	}
	if !equalStrings(hist.entries, []string{"us-1"}) {
		t.Errorf("history = %v, want [us-1]", hist.entries)
	}
}

// One profile active and in history: the top menu shows the status line and
// the recency block, and Disable All brings the profile down without
// touching the history.
func TestFlow_DisableAll(t *testing.T) {
	conns := newFlowConns([]string{"us-1", "us-2", "se-1"}, "us-1")
	hist := &fileLessHistory{entries: []string{"us-1"}}
	present := &scriptedPresenter{answers: []string{"Disable All"}}

	if err := newTestFlow(conns, hist, present).Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	wantTop := []string{
		"Active: us-1", "Disable All",
		"──────────", "us-1", "──────────",
		"Sweden", "United States",
	}
	if got := present.shown[0]; !equalStrings(got, wantTop) {
		t.Errorf("top menu = %v, want %v", got, wantTop)
	}

	if !equalStrings(conns.calls, []string{"down us-1"}) {
		t.Errorf("calls = %v, want [down us-1]", conns.calls)
	}
	if !equalStrings(hist.entries, []string{"us-1"}) {
		t.Errorf("history = %v, disable-all must not modify history", hist.entries)
	}
}

// Picking a recency entry activates it directly from the top menu.
func TestFlow_ActivateFromRecency(t *testing.T) {
	conns := newFlowConns([]string{"us-1", "se-1"})
	hist := &fileLessHistory{entries: []string{"se-1"}}
	present := &scriptedPresenter{answers: []string{"se-1"}}

	if err := newTestFlow(conns, hist, present).Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !equalStrings(conns.calls, []string{"up se-1"}) {
		t.Errorf("calls = %v, want [up se-1]", conns.calls)
	}
}

// Backing out of a group submenu returns to a rebuilt top menu instead of
// terminating the flow.
func TestFlow_GroupCancelReturnsToTop(t *testing.T) {
	conns := newFlowConns([]string{"us-1", "se-1"})
	hist := &fileLessHistory{}
	present := &scriptedPresenter{answers: []string{"Sweden", "", "United States", "us-1"}}

	if err := newTestFlow(conns, hist, present).Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// top, se group, top again, us group
	if len(present.shown) != 4 {
		t.Fatalf("menus shown = %d, want 4", len(present.shown))
	}
	if !equalStrings(conns.calls, []string{"up us-1"}) {
		t.Errorf("calls = %v, want [up us-1]", conns.calls)
	}
}

// Dismissing the top menu exits cleanly with no state change.
func TestFlow_TopLevelCancel(t *testing.T) {
	conns := newFlowConns([]string{"us-1"}, "us-1")
	hist := &fileLessHistory{entries: []string{"us-1"}}
	present := &scriptedPresenter{}

	if err := newTestFlow(conns, hist, present).Run(); err != nil {
		t.Fatalf("Run() on cancel error = %v, want nil", err)
	}
	if len(conns.calls) != 0 {
		t.Errorf("calls = %v, cancel must commit nothing", conns.calls)
	}
}

// Free text that matches no label behaves like a cancel.
func TestFlow_FreeTextCancels(t *testing.T) {
	conns := newFlowConns([]string{"us-1"})
	present := &scriptedPresenter{answers: []string{"not a real entry"}}

	if err := newTestFlow(conns, &fileLessHistory{}, present).Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(conns.calls) != 0 {
		t.Errorf("calls = %v, want none", conns.calls)
	}
}

// A listing failure aborts before any menu is shown.
func TestFlow_ListingFailureIsFatal(t *testing.T) {
	present := &scriptedPresenter{}
	flow := &Flow{
		Conns:   failingConns{},
		Switch:  vpn.NewSwitcher(failingConns{}, &fileLessHistory{}, nopLogger{}, nil),
		Recent:  &fileLessHistory{},
		Present: present,
		Names:   testNames,
		Log:     nopLogger{},
	}

	if err := flow.Run(); !errors.Is(err, common.ErrExternalTool) {
		t.Errorf("Run() error = %v, want ErrExternalTool", err)
	}
	if len(present.shown) != 0 {
		t.Error("no partial menu may be shown after a listing failure")
	}
}

type failingConns struct{}

func (failingConns) ListProfiles() (vpn.Registry, error) {
	return nil, common.WrapError(common.ErrExternalTool, "nmcli missing")
}
func (failingConns) ListActive() (vpn.ActiveSet, error) {
	return nil, common.WrapError(common.ErrExternalTool, "nmcli missing")
}
func (failingConns) Up(string) error   { return nil }
func (failingConns) Down(string) error { return nil }

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
