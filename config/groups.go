// Package config provides configuration management for VPN Switcher.
// This file loads the static group-code to display-name mapping.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yllada/vpn-switcher/common"
)

// GroupNames maps group codes to human-readable display names.
type GroupNames map[string]string

// DefaultGroupsPath returns the fixed location of the group-name asset:
// next to the program binary.
func DefaultGroupsPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", common.WrapError(err, "failed to locate executable")
	}
	return filepath.Join(filepath.Dir(exe), common.GroupsFileName), nil
}

// LoadGroupNames reads the JSON group-name mapping. Callers must degrade
// gracefully on error: unmapped codes display as their raw code, so a
// missing or malformed asset never fails the run.
func LoadGroupNames(path string) (GroupNames, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: group names asset %s missing", common.ErrConfig, path)
		}
		return nil, fmt.Errorf("%w: %v", common.ErrConfig, err)
	}

	var names GroupNames
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("%w: malformed group names asset: %v", common.ErrConfig, err)
	}
	return names, nil
}
