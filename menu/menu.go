// Package menu provides the selection engine for VPN Switcher.
// This file contains the row/intent model, menu construction, and the
// resolution of a raw user answer into a selection intent.
package menu

import (
	"sort"

	"github.com/yllada/vpn-switcher/vpn"
)

// IntentKind tags what selecting a row means. Decorative rows carry
// IntentNone and can never resolve to an action; the disable-all control is
// recognized by its tag, not by comparing display text, so a profile
// literally named like the control cannot collide with it.
type IntentKind int

const (
	// IntentNone marks decorative rows; as a resolution result it means
	// the user cancelled or picked nothing actionable.
	IntentNone IntentKind = iota
	// IntentProfile activates a specific profile.
	IntentProfile
	// IntentGroup drills into a group submenu.
	IntentGroup
	// IntentDisableAll disables every active managed profile.
	IntentDisableAll
)

// String returns a human-readable representation of the intent kind.
func (k IntentKind) String() string {
	switch k {
	case IntentNone:
		return "None"
	case IntentProfile:
		return "Profile"
	case IntentGroup:
		return "Group"
	case IntentDisableAll:
		return "DisableAll"
	default:
		return "Unknown"
	}
}

// Intent is the interpreted meaning of a menu pick.
type Intent struct {
	Kind    IntentKind
	Profile string // set for IntentProfile
	Group   string // set for IntentGroup
}

// Cancel is the intent of a dismissed menu or an unmatched answer.
var Cancel = Intent{Kind: IntentNone}

// Row is one menu line: a display label and the intent selecting it carries.
type Row struct {
	Label  string
	Intent Intent
}

// Selectable reports whether picking this row yields an action.
func (r Row) Selectable() bool {
	return r.Intent.Kind != IntentNone
}

// Presenter renders an ordered list of rows and returns the raw text the
// user picked. The answer may be empty (dismissal) or free text matching no
// label; callers must tolerate both. Implementations block until the user
// decides.
type Presenter interface {
	Pick(prompt string, rows []Row) (string, error)
}

// Names resolves group codes to human-readable display names.
// An unmapped code displays as the raw code.
type Names map[string]string

// Resolve returns the display name for a group code.
func (n Names) Resolve(code string) string {
	if name, ok := n[code]; ok && name != "" {
		return name
	}
	return code
}

// Display labels. The disable-all label is cosmetic only; resolution always
// goes through the intent tag.
const (
	disableAllLabel = "Disable All"
	noActiveLabel   = "No active profiles"
	activePrefix    = "Active: "
	dividerLabel    = "──────────"
)

// BuildTop constructs the top-level menu:
// status rows for the active set, the disable-all control, the recency
// entries (most recent first) framed by dividers, then one row per group
// sorted by resolved display name.
func BuildTop(reg vpn.Registry, active vpn.ActiveSet, recent []string, names Names) []Row {
	var rows []Row

	if len(active) == 0 {
		rows = append(rows, Row{Label: noActiveLabel})
	} else {
		for _, id := range active.IDs() {
			rows = append(rows, Row{Label: activePrefix + id})
		}
	}

	rows = append(rows, Row{
		Label:  disableAllLabel,
		Intent: Intent{Kind: IntentDisableAll},
	})

	if len(recent) > 0 {
		rows = append(rows, Row{Label: dividerLabel})
		// The store keeps oldest first; the menu shows most recent first.
		for i := len(recent) - 1; i >= 0; i-- {
			rows = append(rows, Row{
				Label:  recent[i],
				Intent: Intent{Kind: IntentProfile, Profile: recent[i]},
			})
		}
		rows = append(rows, Row{Label: dividerLabel})
	}

	codes := reg.Groups()
	sort.SliceStable(codes, func(i, j int) bool {
		return names.Resolve(codes[i]) < names.Resolve(codes[j])
	})
	for _, code := range codes {
		rows = append(rows, Row{
			Label:  names.Resolve(code),
			Intent: Intent{Kind: IntentGroup, Group: code},
		})
	}

	return rows
}

// BuildGroup constructs the drill-down menu for one group: every profile of
// the group in registry order.
func BuildGroup(reg vpn.Registry, code string) []Row {
	profiles := reg.Profiles(code)
	rows := make([]Row, 0, len(profiles))
	for _, id := range profiles {
		rows = append(rows, Row{
			Label:  id,
			Intent: Intent{Kind: IntentProfile, Profile: id},
		})
	}
	return rows
}

// Resolve interprets a raw answer against the displayed rows. The first
// selectable row whose label equals the answer wins; dismissal, free text,
// and decorative rows all resolve to Cancel.
func Resolve(rows []Row, answer string) Intent {
	if answer == "" {
		return Cancel
	}
	for _, row := range rows {
		if row.Selectable() && row.Label == answer {
			return row.Intent
		}
	}
	return Cancel
}
