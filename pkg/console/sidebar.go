package console

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Section identifies one sidebar destination.
type Section int

const (
	SectionDashboard Section = iota
	SectionTournaments
	SectionPlayers
	SectionUsers
	SectionSettings
)

var sectionNames = []string{
	"Dashboard",
	"Tournaments",
	"Players",
	"Users",
	"Settings",
}

func (s Section) String() string {
	if int(s) < len(sectionNames) {
		return sectionNames[s]
	}
	return "unknown"
}

// sectionFromName maps a persisted section name back to its Section.
// Unknown names fall back to the dashboard.
func sectionFromName(name string) Section {
	for i, n := range sectionNames {
		if strings.EqualFold(n, name) {
			return Section(i)
		}
	}
	return SectionDashboard
}

// sidebarEntry is one visible row after filtering.
type sidebarEntry struct {
	Section Section
	Matches []int // rune indexes to highlight
}

// filterSections returns the sidebar rows matching the filter, ranked by
// fuzzy score. An empty filter returns everything in fixed order.
func filterSections(filter string) []sidebarEntry {
	if filter == "" {
		entries := make([]sidebarEntry, len(sectionNames))
		for i := range sectionNames {
			entries[i] = sidebarEntry{Section: Section(i)}
		}
		return entries
	}

	results := fuzzy.Find(filter, sectionNames)
	entries := make([]sidebarEntry, 0, len(results))
	for _, r := range results {
		entries = append(entries, sidebarEntry{
			Section: Section(r.Index),
			Matches: r.MatchedIndexes,
		})
	}
	return entries
}

// highlightMatches styles the matched runes of name for display.
func highlightMatches(name string, matches []int) string {
	if len(matches) == 0 {
		return name
	}
	matched := make(map[int]bool, len(matches))
	for _, i := range matches {
		matched[i] = true
	}
	var b strings.Builder
	for i, r := range []rune(name) {
		if matched[i] {
			b.WriteString(sidebarMatchStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
