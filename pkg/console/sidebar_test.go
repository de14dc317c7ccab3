package console

import "testing"

func TestFilterSectionsEmptyReturnsAll(t *testing.T) {
	entries := filterSections("")
	if len(entries) != len(sectionNames) {
		t.Fatalf("got %d entries, want %d", len(entries), len(sectionNames))
	}
	for i, e := range entries {
		if e.Section != Section(i) {
			t.Errorf("entry %d = %v", i, e.Section)
		}
	}
}

func TestFilterSectionsFuzzy(t *testing.T) {
	tests := []struct {
		filter string
		want   Section
	}{
		{"us", SectionUsers},
		{"tour", SectionTournaments},
		{"play", SectionPlayers},
		{"dash", SectionDashboard},
		{"trn", SectionTournaments}, // non-contiguous match
	}
	for _, tt := range tests {
		entries := filterSections(tt.filter)
		if len(entries) == 0 {
			t.Errorf("filter %q matched nothing", tt.filter)
			continue
		}
		if entries[0].Section != tt.want {
			t.Errorf("filter %q top match = %v, want %v", tt.filter, entries[0].Section, tt.want)
		}
	}
}

func TestFilterSectionsNoMatch(t *testing.T) {
	if entries := filterSections("zzz"); len(entries) != 0 {
		t.Errorf("expected no matches, got %v", entries)
	}
}

func TestSectionFromName(t *testing.T) {
	if s := sectionFromName("Users"); s != SectionUsers {
		t.Errorf("Users = %v", s)
	}
	if s := sectionFromName("users"); s != SectionUsers {
		t.Errorf("case-insensitive match failed: %v", s)
	}
	if s := sectionFromName("bogus"); s != SectionDashboard {
		t.Errorf("unknown name = %v, want dashboard fallback", s)
	}
}
