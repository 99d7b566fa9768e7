// Package vpn provides tunnel profile discovery and switching for VPN Switcher.
// This file contains profile classification and the grouped registry types.
package vpn

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yllada/vpn-switcher/common"
)

// GroupOf derives the group code of a profile identifier: the substring
// before the first group separator. An identifier without a separator cannot
// be classified and fails with ErrClassification, because silently dropping
// a profile would desync the registry from the active set.
func GroupOf(id string) (string, error) {
	code, rest, found := strings.Cut(id, common.GroupSeparator)
	if !found || code == "" || rest == "" {
		return "", fmt.Errorf("%w: %q", common.ErrClassification, id)
	}
	return code, nil
}

// Registry maps group codes to the alphabetically sorted profile identifiers
// of that group. It is rebuilt fresh from live state on every invocation and
// never cached across runs.
type Registry map[string][]string

// BuildRegistry classifies profile identifiers into a Registry.
// Any identifier that cannot be grouped fails the whole build.
func BuildRegistry(ids []string) (Registry, error) {
	reg := make(Registry)
	for _, id := range ids {
		code, err := GroupOf(id)
		if err != nil {
			return nil, err
		}
		reg[code] = append(reg[code], id)
	}
	for code := range reg {
		sort.Strings(reg[code])
	}
	return reg, nil
}

// Groups returns the group codes in alphabetical order.
func (r Registry) Groups() []string {
	codes := make([]string, 0, len(r))
	for code := range r {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Profiles returns the sorted profile identifiers of a group.
// Returns nil for an unknown group code.
func (r Registry) Profiles(code string) []string {
	return r[code]
}

// Contains reports whether any group holds the given profile identifier.
func (r Registry) Contains(id string) bool {
	for _, ids := range r {
		if common.StringInSlice(id, ids) {
			return true
		}
	}
	return false
}

// ActiveSet is the set of profile identifiers the connection manager
// currently reports as active. An empty set is a valid steady state.
type ActiveSet map[string]struct{}

// NewActiveSet builds an ActiveSet from a list of identifiers.
func NewActiveSet(ids []string) ActiveSet {
	set := make(ActiveSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains reports whether the profile is active.
func (s ActiveSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the active profile identifiers in alphabetical order.
func (s ActiveSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
