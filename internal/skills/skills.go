// Package skills owns the dual-encoded profile skills column.
//
// Historically the column holds either a JSON array literal ('["Go","SQL"]')
// or a comma-separated string ('Go, SQL'). Reads must tolerate both until
// every row is migrated; writes always re-encode as a JSON array.
package skills

import (
	"encoding/json"
	"strings"
)

// Decode parses a raw stored value into an ordered slice. A JSON array
// decode is attempted first; on failure the value is split on commas with
// each piece trimmed. A blank value yields an empty slice. Decode never
// fails.
func Decode(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}

	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		if list == nil {
			return []string{}
		}
		return list
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// Encode serializes a slice as the canonical JSON array literal.
func Encode(list []string) string {
	if list == nil {
		list = []string{}
	}
	data, _ := json.Marshal(list)
	return string(data)
}

// AddOne appends skill to the stored value unless a case-insensitive,
// trim-insensitive match already exists. On a duplicate the stored value
// is returned unchanged and duplicate is true; otherwise the trimmed
// skill is appended with its original casing and the value re-encoded.
func AddOne(raw, skill string) (newRaw string, list []string, duplicate bool) {
	skill = strings.TrimSpace(skill)
	current := Decode(raw)

	for _, s := range current {
		if strings.EqualFold(strings.TrimSpace(s), skill) {
			return raw, current, true
		}
	}

	updated := append(current, skill)
	return Encode(updated), updated, false
}

// RemoveOne filters out every entry matching skill case-insensitively and
// trim-insensitively. Removing an absent skill is a no-op on the sequence
// but still yields a canonically encoded value.
func RemoveOne(raw, skill string) (newRaw string, list []string) {
	target := strings.ToLower(strings.TrimSpace(skill))
	current := Decode(raw)

	filtered := make([]string, 0, len(current))
	for _, s := range current {
		if strings.ToLower(strings.TrimSpace(s)) != target {
			filtered = append(filtered, s)
		}
	}

	return Encode(filtered), filtered
}

// Aggregate unions independently decoded rows into a deduplicated,
// first-seen-ordered slice. Entries are trimmed but NOT case-folded, so
// "Go" and "go" survive as distinct values. The aggregate view has always
// behaved this way while the per-user operations compare case-insensitively;
// keep the asymmetry.
func Aggregate(raws []string) []string {
	seen := make(map[string]struct{})
	out := []string{}

	for _, raw := range raws {
		for _, s := range Decode(raw) {
			s = strings.TrimSpace(s)
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}

	return out
}
