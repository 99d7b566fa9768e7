// Package history provides the bounded, duplicate-free recency log of
// previously selected tunnel profiles.
//
// The log is a newline-joined text file of profile identifiers, oldest
// first. It is loaded fresh on each read and rewritten on each write; the
// file and its parent directory are created lazily on the first write.
//
// Two concurrent invocations racing on a write are outside the consistency
// contract: the last writer wins. This is an accepted limitation of a
// single-user interactive tool, not a guarantee.
package history

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/yllada/vpn-switcher/common"
)

// Store is a file-backed recency log.
type Store struct {
	path string
	max  int
}

// New creates a store at the given path, keeping at most max entries.
// A non-positive max falls back to the default bound.
func New(path string, max int) *Store {
	if max <= 0 {
		max = common.DefaultHistorySize
	}
	return &Store{path: path, max: max}
}

// DefaultPath returns the default history file location under the user's
// configuration directory.
func DefaultPath() (string, error) {
	dir, err := common.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, common.HistoryFileName), nil
}

// Read returns the recorded profile identifiers, oldest first.
// A missing file is an empty log, not an error.
func (s *Store) Read() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, common.WrapError(err, "failed to read history")
	}

	var entries []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			entries = append(entries, line)
		}
	}
	return entries, nil
}

// Record appends id as the most recent entry. An existing occurrence is
// removed first so the log never holds duplicates, then the log is
// truncated to the last max entries and rewritten. A read failure aborts
// the write so a transient error cannot truncate the log.
func (s *Store) Record(id string) error {
	entries, err := s.Read()
	if err != nil {
		return err
	}

	entries = common.RemoveFromSlice(entries, id)
	entries = append(entries, id)
	if len(entries) > s.max {
		entries = entries[len(entries)-s.max:]
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return common.WrapError(err, "failed to create history directory")
	}

	content := strings.Join(entries, "\n") + "\n"
	if err := os.WriteFile(s.path, []byte(content), 0600); err != nil {
		return common.WrapError(err, "failed to write history")
	}
	return nil
}
