package domain

import (
	"sort"
	"strings"
	"time"
)

// SortByCreatedDesc returns a copy of items ordered newest first. The input
// keeps server order; this is for display only.
func SortByCreatedDesc[T interface{ Created() time.Time }](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Created().After(out[j].Created())
	})
	return out
}

// FilterSkillsByCategory returns the skills whose category matches, ignoring
// case. An empty or "all" category returns every skill.
func FilterSkillsByCategory(skills []Skill, category string) []Skill {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, "all") {
		return append([]Skill(nil), skills...)
	}
	var out []Skill
	for _, s := range skills {
		if strings.EqualFold(strings.TrimSpace(s.SkillCategory), category) {
			out = append(out, s)
		}
	}
	return out
}

// Categories returns the distinct skill categories in first-seen order,
// lower-cased.
func Categories(skills []Skill) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range skills {
		c := strings.ToLower(strings.TrimSpace(s.SkillCategory))
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// Unread counts contact responses not yet marked read.
func Unread(responses []ContactResponse) int {
	n := 0
	for _, r := range responses {
		if !r.IsRead {
			n++
		}
	}
	return n
}
