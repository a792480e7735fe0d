package peek

import (
	"testing"
	"time"

	"emotion-engine/internal/domain"
	"emotion-engine/internal/persistence"
)

func TestPeek_ExcludesSelfAndSkipsUnreadable(t *testing.T) {
	dir := t.TempDir()

	mustSave(t, dir, "self", domain.State{Version: domain.CurrentVersion, LastUpdated: time.Now().UTC()})
	latest := domain.Stimulus{ID: "s1", Label: "happy", Intensity: 0.8}
	mustSave(t, dir, "sibling-a", domain.State{
		Version:     domain.CurrentVersion,
		LastUpdated: time.Now().UTC(),
		Agents:      map[string]domain.Bucket{"self": {Latest: &latest}},
	})

	results, err := Peek(dir, "self", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected exactly one sibling result excluding self, got %d", len(results))
	}
	if results[0].ID != "sibling-a" {
		t.Fatalf("expected sibling-a, got %s", results[0].ID)
	}
	if results[0].Latest == nil || results[0].Latest.Label != "happy" {
		t.Fatalf("expected latest stimulus keyed by self, got %+v", results[0].Latest)
	}
}

func TestPeek_FallsBackToFirstAgentBucketWhenIDAbsent(t *testing.T) {
	dir := t.TempDir()
	latest := domain.Stimulus{ID: "s2", Label: "sad", Intensity: 0.4}
	mustSave(t, dir, "sibling-a", domain.State{
		Version:     domain.CurrentVersion,
		LastUpdated: time.Now().UTC(),
		Agents:      map[string]domain.Bucket{"other-agent": {Latest: &latest}},
	})

	results, err := Peek(dir, "self", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Latest == nil || results[0].Latest.Label != "sad" {
		t.Fatalf("expected fallback to the only agents bucket, got %+v", results)
	}
}

func TestPeek_RespectsMaxResults(t *testing.T) {
	dir := t.TempDir()
	for _, id := range []string{"a", "b", "c"} {
		mustSave(t, dir, id, domain.State{Version: domain.CurrentVersion, LastUpdated: time.Now().UTC()})
	}

	results, err := Peek(dir, "self", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected results bounded to 2, got %d", len(results))
	}
}

func TestPeek_EmptyRootYieldsNoResults(t *testing.T) {
	dir := t.TempDir()
	results, err := Peek(dir, "self", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results for empty root, got %d", len(results))
	}
}

func mustSave(t *testing.T, dir, agentID string, state domain.State) {
	t.Helper()
	if err := persistence.Save(dir, agentID, state); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
}
