package portfolio

import "strings"

// NormalizeSkills converts a comma-separated edit field into the stored
// skills list: entries are trimmed, empties dropped, and duplicates removed
// (case-sensitive), preserving first-seen order.
func NormalizeSkills(raw string) []string {
	skills := []string{}
	seen := make(map[string]struct{})
	for part := range strings.SplitSeq(raw, ",") {
		skill := strings.TrimSpace(part)
		if skill == "" {
			continue
		}
		if _, dup := seen[skill]; dup {
			continue
		}
		seen[skill] = struct{}{}
		skills = append(skills, skill)
	}
	return skills
}
