package metrics

import (
	"testing"
	"time"
)

func TestCollectorSnapshot(t *testing.T) {
	c := NewCollector()

	c.RecordTurn("balance", 10*time.Millisecond)
	c.RecordTurn("balance", 30*time.Millisecond)
	c.RecordTurn("apply", 20*time.Millisecond)

	snap := c.Snapshot()

	if snap.TotalTurns != 3 {
		t.Fatalf("TotalTurns = %d, want 3", snap.TotalTurns)
	}
	if len(snap.Intents) != 2 {
		t.Fatalf("len(Intents) = %d, want 2", len(snap.Intents))
	}

	// First-seen order is preserved.
	balance := snap.Intents[0]
	if balance.Intent != "balance" {
		t.Fatalf("Intents[0].Intent = %q, want balance", balance.Intent)
	}
	if balance.Count != 2 {
		t.Errorf("balance count = %d, want 2", balance.Count)
	}
	if balance.MinTimeMs != 10 || balance.MaxTimeMs != 30 {
		t.Errorf("balance min/max = %d/%d, want 10/30", balance.MinTimeMs, balance.MaxTimeMs)
	}
	if balance.AvgTimeMs != 20 {
		t.Errorf("balance avg = %f, want 20", balance.AvgTimeMs)
	}

	apply := snap.Intents[1]
	if apply.Intent != "apply" || apply.Count != 1 {
		t.Errorf("Intents[1] = %+v, want apply with count 1", apply)
	}
}

func TestCollectorEmpty(t *testing.T) {
	snap := NewCollector().Snapshot()
	if snap.TotalTurns != 0 || len(snap.Intents) != 0 {
		t.Errorf("empty snapshot = %+v, want no turns", snap)
	}
}
