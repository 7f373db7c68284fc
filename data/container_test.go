package data

import (
	"sync"
	"testing"
	"time"

	"github.com/giygas/medicamentos-bot/entities"
)

func TestNewStatusContainer(t *testing.T) {
	sc := NewStatusContainer()

	if got := sc.GetProbeResults(); len(got) != 0 {
		t.Errorf("Expected no probe results, got %d", len(got))
	}
	if !sc.GetLastProbe().IsZero() {
		t.Error("Expected zero last probe time")
	}
	if sc.IsProbing() || sc.IsBotConnected() {
		t.Error("Expected idle, disconnected container")
	}
}

func TestUpdateProbeResults(t *testing.T) {
	sc := NewStatusContainer()
	results := []entities.ProbeResult{
		{Target: entities.ProbeTarget{Name: "Wikipedia", Kind: entities.ProbeKindSource}, Reachable: true},
		{Target: entities.ProbeTarget{Name: "MyMemory", Kind: entities.ProbeKindTranslation}, Reachable: false},
	}

	before := time.Now()
	sc.UpdateProbeResults(results)

	got := sc.GetProbeResults()
	if len(got) != 2 || got[0].Target.Name != "Wikipedia" {
		t.Fatalf("Unexpected results %+v", got)
	}
	if sc.GetLastProbe().Before(before) {
		t.Error("Expected last probe time to be updated")
	}

	// Callers cannot mutate the stored slice
	results[0].Reachable = false
	got[1].Reachable = true
	if stored := sc.GetProbeResults(); !stored[0].Reachable || stored[1].Reachable {
		t.Error("Expected stored results to be isolated from callers")
	}
}

func TestBeginEndProbe(t *testing.T) {
	sc := NewStatusContainer()

	if !sc.BeginProbe() {
		t.Fatal("Expected first BeginProbe to succeed")
	}
	if sc.BeginProbe() {
		t.Error("Expected concurrent BeginProbe to fail")
	}
	if !sc.IsProbing() {
		t.Error("Expected IsProbing to be true")
	}

	sc.EndProbe()
	if sc.IsProbing() {
		t.Error("Expected IsProbing to be false after EndProbe")
	}
	if !sc.BeginProbe() {
		t.Error("Expected BeginProbe to succeed after EndProbe")
	}
}

func TestConcurrentBeginProbe(t *testing.T) {
	sc := NewStatusContainer()

	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if sc.BeginProbe() {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if wins != 1 {
		t.Errorf("Expected exactly one winner, got %d", wins)
	}
}

func TestBotConnectedAndStartTime(t *testing.T) {
	sc := NewStatusContainer()

	sc.SetBotConnected(true)
	if !sc.IsBotConnected() {
		t.Error("Expected bot connected")
	}

	start := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	sc.SetServerStartTime(start)
	if !sc.GetServerStartTime().Equal(start) {
		t.Errorf("Expected %v, got %v", start, sc.GetServerStartTime())
	}
}
