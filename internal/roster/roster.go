// Package roster loads the curated team-to-games assignment that drives an
// analysis run.
package roster

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Roster maps a team label to the ordered game IDs counted toward that team's
// season. The same game ID may appear under both participating teams.
type Roster map[string][]string

// FromFile reads a YAML roster of the form:
//
//	CAL:
//	  - "2017-11-10-california"
//	  - "2017-11-13-california"
//	STAN:
//	  - "2017-11-10-stanford"
//
// Duplicate IDs within one team's list are dropped, keeping first occurrence.
func FromFile(path string) (Roster, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster file: %w", err)
	}

	var r Roster
	if err := yaml.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("parsing roster file %s: %w", path, err)
	}

	if err := r.validate(); err != nil {
		return nil, fmt.Errorf("roster file %s: %w", path, err)
	}

	for team, ids := range r {
		r[team] = dedupe(ids)
	}

	return r, nil
}

func (r Roster) validate() error {
	if len(r) == 0 {
		return fmt.Errorf("no teams defined")
	}
	for team, ids := range r {
		if team == "" {
			return fmt.Errorf("empty team label")
		}
		if len(ids) == 0 {
			return fmt.Errorf("team %s has no games", team)
		}
		for _, id := range ids {
			if id == "" {
				return fmt.Errorf("team %s has an empty game ID", team)
			}
		}
	}
	return nil
}

// GameCount returns the number of distinct games across all teams.
func (r Roster) GameCount() int {
	seen := make(map[string]bool)
	for _, ids := range r {
		for _, id := range ids {
			seen[id] = true
		}
	}
	return len(seen)
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
