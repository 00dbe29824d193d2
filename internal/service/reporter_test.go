package service

import (
	"testing"
	"time"

	"github.com/calebmori/opsdesk/internal/domain"
	"go.uber.org/zap"
)

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, d time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestReporter_PersistsSnapshots(t *testing.T) {
	registry := NewRegistry()
	_ = registry.RecordOperation(domain.AgentFinancialOperations)

	st := &mockMetricsStore{}
	rep := NewReporter(registry, st, zap.NewNop())
	rep.SetInterval(10 * time.Millisecond)
	rep.Start()
	defer rep.Stop()

	waitFor(t, 2*time.Second, func() bool { return st.count() >= 2 })

	st.mu.Lock()
	snap := st.snaps[0]
	st.mu.Unlock()

	if snap.TotalOperations != 1 {
		t.Fatalf("snapshot total operations = %d", snap.TotalOperations)
	}
	if snap.TotalAgents != 9 {
		t.Fatalf("snapshot total agents = %d", snap.TotalAgents)
	}
	if snap.OperationsByAgent[domain.AgentFinancialOperations] != 1 {
		t.Fatal("snapshot missing per-agent count")
	}
}

func TestReporter_ContinuesAfterInsertFailure(t *testing.T) {
	registry := NewRegistry()
	st := &mockMetricsStore{fail: true}

	rep := NewReporter(registry, st, zap.NewNop())
	rep.SetInterval(10 * time.Millisecond)
	rep.Start()
	defer rep.Stop()

	// Every insert fails; the loop must keep ticking anyway.
	waitFor(t, 2*time.Second, func() bool { return st.count() >= 3 })
}

func TestReporter_StopTerminatesLoop(t *testing.T) {
	registry := NewRegistry()
	st := &mockMetricsStore{}

	rep := NewReporter(registry, st, zap.NewNop())
	rep.SetInterval(10 * time.Millisecond)
	rep.Start()

	waitFor(t, 2*time.Second, func() bool { return st.count() >= 1 })
	rep.Stop()

	after := st.count()
	time.Sleep(50 * time.Millisecond)
	if st.count() != after {
		t.Fatal("reporter kept running after Stop")
	}
}
