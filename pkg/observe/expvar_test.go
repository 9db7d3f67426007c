package observe

import (
	"testing"
	"time"
)

func TestExpvarRecorderObserve(t *testing.T) {
	rec := NewExpvarRecorder("")
	if rec.Name() == "" {
		t.Fatalf("expected generated export name")
	}

	rec.Observe("reduce", true, 20*time.Millisecond)
	rec.Observe("reduce", true, 10*time.Millisecond)
	rec.Observe("get", false, 5*time.Millisecond)
	rec.Observe("", true, time.Millisecond)

	snap := rec.Snapshot()
	if got := snap.Results["reduce"]["success"]; got != 2 {
		t.Fatalf("expected 2 reduce successes, got %d", got)
	}
	if got := snap.Results["get"]["error"]; got != 1 {
		t.Fatalf("expected 1 get error, got %d", got)
	}
	if snap.DurationsMS["reduce"] < 30 {
		t.Fatalf("expected at least 30ms recorded for reduce, got %v", snap.DurationsMS["reduce"])
	}
	if _, ok := snap.Results[""]; ok {
		t.Fatalf("expected empty operation names to be dropped")
	}
}

func TestExpvarSnapshotIsCopy(t *testing.T) {
	rec := NewExpvarRecorder("")
	rec.Observe("create", true, time.Millisecond)

	snap := rec.Snapshot()
	snap.Results["create"]["success"] = 99
	snap.DurationsMS["create"] = 99

	fresh := rec.Snapshot()
	if fresh.Results["create"]["success"] != 1 {
		t.Fatalf("expected snapshot mutation not to leak back, got %d", fresh.Results["create"]["success"])
	}
}

func TestExpvarRecorderExplicitName(t *testing.T) {
	rec := NewExpvarRecorder("branchstore_test_recorder")
	if rec.Name() != "branchstore_test_recorder" {
		t.Fatalf("expected explicit name preserved, got %q", rec.Name())
	}
}
