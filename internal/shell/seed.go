package shell

import (
	"fmt"
	"os"

	"github.com/amp-labs/amp-pq/date"
	"gopkg.in/yaml.v3"
)

// SeedEntry is one task in a seed file.
type SeedEntry struct {
	Task string `yaml:"task"`
	Due  string `yaml:"due"`
}

type seedFile struct {
	Entries []SeedEntry `yaml:"entries"`
}

// ParseSeed decodes a YAML seed document:
//
//	entries:
//	  - task: write report
//	    due: 10/05/2026
func ParseSeed(data []byte) ([]SeedEntry, error) {
	var seed seedFile

	if err := yaml.Unmarshal(data, &seed); err != nil { //nolint:noinlineerr
		return nil, fmt.Errorf("parsing seed: %w", err)
	}

	return seed.Entries, nil
}

// LoadSeed reads and decodes a seed file.
func LoadSeed(path string) ([]SeedEntry, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from configuration
	if err != nil {
		return nil, err
	}

	return ParseSeed(data)
}

// Seed inserts every entry into the session's queue. It stops at the first
// entry that fails.
func (s *Session) Seed(entries []SeedEntry) error {
	for i, e := range entries {
		due, err := date.Parse(e.Due)
		if err != nil {
			return fmt.Errorf("seed entry %d: %w", i, err)
		}

		if err := s.tasks.Insert(e.Task, due); err != nil { //nolint:noinlineerr
			return fmt.Errorf("seed entry %d: %w", i, err)
		}
	}

	s.log.Info("seeded task queue", "entries", len(entries))

	return nil
}
