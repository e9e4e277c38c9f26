// Package baseline records accepted record issues so later runs only report
// new ones.
package baseline

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/dotcommander/lifescore/internal/types"
)

// DefaultFile is the baseline file name inside the data directory.
const DefaultFile = ".lifescore-baseline.json"

// Baseline represents a snapshot of known issues that should be ignored
type Baseline struct {
	Version      string   `json:"version"`
	CreatedAt    string   `json:"created_at"`
	Fingerprints []string `json:"fingerprints"`
	index        map[string]bool
}

// CreateBaseline creates a new baseline from a list of issues
func CreateBaseline(issues []types.ValidationError, createdAt time.Time) *Baseline {
	fingerprints := make([]string, 0, len(issues))
	index := make(map[string]bool)

	for _, issue := range issues {
		fp := fingerprint(issue)
		if !index[fp] {
			fingerprints = append(fingerprints, fp)
			index[fp] = true
		}
	}

	sort.Strings(fingerprints)

	return &Baseline{
		Version:      "1.0",
		CreatedAt:    createdAt.UTC().Format(time.RFC3339),
		Fingerprints: fingerprints,
		index:        index,
	}
}

// LoadBaseline loads a baseline from a JSON file
func LoadBaseline(path string) (*Baseline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read baseline file: %w", err)
	}

	var b Baseline
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse baseline file: %w", err)
	}

	b.index = make(map[string]bool, len(b.Fingerprints))
	for _, fp := range b.Fingerprints {
		b.index[fp] = true
	}

	return &b, nil
}

// SaveBaseline saves the baseline to a JSON file
func (b *Baseline) SaveBaseline(path string) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal baseline: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write baseline file: %w", err)
	}

	return nil
}

// IsKnown checks if an issue is in the baseline
func (b *Baseline) IsKnown(issue types.ValidationError) bool {
	if b == nil || b.index == nil {
		return false
	}
	return b.index[fingerprint(issue)]
}

// Filter drops known issues, returning the rest and how many were dropped.
// A nil baseline keeps everything.
func (b *Baseline) Filter(issues []types.ValidationError) ([]types.ValidationError, int) {
	if b == nil {
		return issues, 0
	}
	kept := make([]types.ValidationError, 0, len(issues))
	ignored := 0
	for _, issue := range issues {
		if b.IsKnown(issue) {
			ignored++
			continue
		}
		kept = append(kept, issue)
	}
	return kept, ignored
}

// fingerprint hashes file, source, severity, and the normalized message.
// Line and column are left out so edits above an issue do not shift it.
func fingerprint(issue types.ValidationError) string {
	msg := normalizeMessage(issue.Message)
	data := fmt.Sprintf("%s|%s|%s|%s", issue.File, issue.Source, issue.Severity, msg)

	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

var locationRef = regexp.MustCompile(`(\S+\.(?:ya?ml|json)):\d+`)

// normalizeMessage strips line numbers from file references and collapses
// whitespace. Record values such as dates stay, since they identify the
// record.
func normalizeMessage(msg string) string {
	msg = locationRef.ReplaceAllString(msg, "$1")
	return strings.Join(strings.Fields(msg), " ")
}
