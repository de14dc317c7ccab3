package cache

import (
	"testing"

	"github.com/courtsidehq/courtside/internal/models"
)

func openTest(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestTournamentsRoundTrip(t *testing.T) {
	c := openTest(t)

	want := []models.Tournament{
		{ID: "t1", Name: "Spring Open", Status: models.TournamentActive, PlayerCount: 16},
		{ID: "t2", Name: "Winter Cup", Status: models.TournamentCompleted, PlayerCount: 8},
	}
	if err := c.PutTournaments(want); err != nil {
		t.Fatalf("PutTournaments: %v", err)
	}

	got, err := c.Tournaments()
	if err != nil {
		t.Fatalf("Tournaments: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d tournaments, want 2", len(got))
	}
	if got[0].Name != "Spring Open" || got[0].Status != models.TournamentActive {
		t.Errorf("first = %+v", got[0])
	}
}

func TestPutTournamentsReplaces(t *testing.T) {
	c := openTest(t)

	c.PutTournaments([]models.Tournament{{ID: "t1", Name: "Old"}})
	if err := c.PutTournaments([]models.Tournament{{ID: "t2", Name: "New"}}); err != nil {
		t.Fatalf("PutTournaments: %v", err)
	}

	got, err := c.Tournaments()
	if err != nil {
		t.Fatalf("Tournaments: %v", err)
	}
	if len(got) != 1 || got[0].ID != "t2" {
		t.Errorf("cache not replaced, got %+v", got)
	}
}

func TestPlayersScopedByTournament(t *testing.T) {
	c := openTest(t)

	c.PutPlayers("t1", []models.Player{
		{ID: "p1", TournamentID: "t1", Name: "A. Nguyen", Seed: 1},
		{ID: "p2", TournamentID: "t1", Name: "B. Okafor", Seed: 2},
	})
	c.PutPlayers("t2", []models.Player{
		{ID: "p3", TournamentID: "t2", Name: "C. Park", Seed: 1},
	})

	got, err := c.Players("t1")
	if err != nil {
		t.Fatalf("Players: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d players for t1, want 2", len(got))
	}

	// Replacing one tournament's players leaves the other untouched
	c.PutPlayers("t1", []models.Player{{ID: "p4", TournamentID: "t1", Name: "D. Ivanov"}})
	got, _ = c.Players("t1")
	if len(got) != 1 || got[0].ID != "p4" {
		t.Errorf("t1 players = %+v", got)
	}
	other, _ := c.Players("t2")
	if len(other) != 1 || other[0].ID != "p3" {
		t.Errorf("t2 players disturbed: %+v", other)
	}
}

func TestEmptyCache(t *testing.T) {
	c := openTest(t)

	ts, err := c.Tournaments()
	if err != nil {
		t.Fatalf("Tournaments: %v", err)
	}
	if len(ts) != 0 {
		t.Errorf("expected empty cache, got %+v", ts)
	}

	at, err := c.FetchedAt()
	if err != nil {
		t.Fatalf("FetchedAt: %v", err)
	}
	if !at.IsZero() {
		t.Errorf("FetchedAt = %v for empty cache", at)
	}
}

func TestFetchedAtAdvances(t *testing.T) {
	c := openTest(t)

	c.PutTournaments([]models.Tournament{{ID: "t1", Name: "X"}})
	at, err := c.FetchedAt()
	if err != nil {
		t.Fatalf("FetchedAt: %v", err)
	}
	if at.IsZero() {
		t.Error("FetchedAt zero after write")
	}
}
