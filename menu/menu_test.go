package menu

import (
	"reflect"
	"testing"

	"github.com/yllada/vpn-switcher/vpn"
)

var testNames = Names{"us": "United States", "se": "Sweden"}

func testRegistry(t *testing.T) vpn.Registry {
	t.Helper()
	reg, err := vpn.BuildRegistry([]string{"us-1", "us-2", "se-1"})
	if err != nil {
		t.Fatal(err)
	}
	return reg
}

func labels(rows []Row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Label)
	}
	return out
}

func TestIntentKind_String(t *testing.T) {
	tests := []struct {
		kind     IntentKind
		expected string
	}{
		{IntentNone, "None"},
		{IntentProfile, "Profile"},
		{IntentGroup, "Group"},
		{IntentDisableAll, "DisableAll"},
		{IntentKind(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("IntentKind.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNames_Resolve(t *testing.T) {
	if got := testNames.Resolve("se"); got != "Sweden" {
		t.Errorf("Resolve(se) = %v, want Sweden", got)
	}
	if got := testNames.Resolve("zz"); got != "zz" {
		t.Errorf("Resolve(zz) = %v, want raw code fallback", got)
	}
	if got := Names(nil).Resolve("us"); got != "us" {
		t.Errorf("nil Names should fall back to raw code, got %v", got)
	}
}

func TestBuildTop_EmptyActiveEmptyHistory(t *testing.T) {
	rows := BuildTop(testRegistry(t), vpn.NewActiveSet(nil), nil, testNames)

	want := []string{"No active profiles", "Disable All", "Sweden", "United States"}
	if got := labels(rows); !reflect.DeepEqual(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}

	if rows[0].Selectable() {
		t.Error("status row must not be selectable")
	}
	if rows[1].Intent.Kind != IntentDisableAll {
		t.Errorf("row 1 intent = %v, want DisableAll", rows[1].Intent.Kind)
	}
	if rows[2].Intent != (Intent{Kind: IntentGroup, Group: "se"}) {
		t.Errorf("Sweden row intent = %+v, want group se", rows[2].Intent)
	}
	if rows[3].Intent != (Intent{Kind: IntentGroup, Group: "us"}) {
		t.Errorf("United States row intent = %+v, want group us", rows[3].Intent)
	}
}

func TestBuildTop_WithActiveAndHistory(t *testing.T) {
	active := vpn.NewActiveSet([]string{"us-1"})
	rows := BuildTop(testRegistry(t), active, []string{"se-1", "us-1"}, testNames)

	want := []string{
		"Active: us-1",
		"Disable All",
		"──────────",
		"us-1", // most recent first
		"se-1",
		"──────────",
		"Sweden",
		"United States",
	}
	if got := labels(rows); !reflect.DeepEqual(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}

	if rows[3].Intent != (Intent{Kind: IntentProfile, Profile: "us-1"}) {
		t.Errorf("recency row intent = %+v, want profile us-1", rows[3].Intent)
	}
	if rows[2].Selectable() || rows[5].Selectable() {
		t.Error("divider rows must not be selectable")
	}
}

func TestBuildTop_GroupsSortedByDisplayName(t *testing.T) {
	reg, err := vpn.BuildRegistry([]string{"se-1", "us-1"})
	if err != nil {
		t.Fatal(err)
	}
	// "us" resolves to a name sorting before the raw "se" code, so the
	// group order differs from the code order.
	names := Names{"us": "Albania"}

	rows := BuildTop(reg, vpn.NewActiveSet(nil), nil, names)
	want := []string{"No active profiles", "Disable All", "Albania", "se"}
	if got := labels(rows); !reflect.DeepEqual(got, want) {
		t.Errorf("labels = %v, want %v (sorted by resolved name)", got, want)
	}
}

func TestBuildGroup(t *testing.T) {
	rows := BuildGroup(testRegistry(t), "us")

	want := []string{"us-1", "us-2"}
	if got := labels(rows); !reflect.DeepEqual(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
	for _, row := range rows {
		if row.Intent.Kind != IntentProfile {
			t.Errorf("group row %q intent = %v, want Profile", row.Label, row.Intent.Kind)
		}
	}

	if got := BuildGroup(testRegistry(t), "zz"); len(got) != 0 {
		t.Errorf("BuildGroup for unknown code = %v, want empty", got)
	}
}

func TestResolve(t *testing.T) {
	rows := []Row{
		{Label: "Active: us-1"},
		{Label: "Disable All", Intent: Intent{Kind: IntentDisableAll}},
		{Label: "us-1", Intent: Intent{Kind: IntentProfile, Profile: "us-1"}},
		{Label: "Sweden", Intent: Intent{Kind: IntentGroup, Group: "se"}},
	}

	tests := []struct {
		name   string
		answer string
		want   Intent
	}{
		{"disable all", "Disable All", Intent{Kind: IntentDisableAll}},
		{"recency entry", "us-1", Intent{Kind: IntentProfile, Profile: "us-1"}},
		{"group", "Sweden", Intent{Kind: IntentGroup, Group: "se"}},
		{"dismissal", "", Cancel},
		{"free text", "no such entry", Cancel},
		{"decorative row", "Active: us-1", Cancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(rows, tt.answer); got != tt.want {
				t.Errorf("Resolve(%q) = %+v, want %+v", tt.answer, got, tt.want)
			}
		})
	}
}

func TestResolve_DisableAllByTagNotText(t *testing.T) {
	// A profile that happens to be labeled "Disable All" in a group menu
	// must resolve to its own profile intent, not the control.
	rows := []Row{
		{Label: "Disable All", Intent: Intent{Kind: IntentProfile, Profile: "Disable All"}},
	}
	got := Resolve(rows, "Disable All")
	if got.Kind != IntentProfile || got.Profile != "Disable All" {
		t.Errorf("Resolve() = %+v, want the row's own profile intent", got)
	}
}
