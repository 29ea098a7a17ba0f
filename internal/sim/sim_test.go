package sim

import (
	"math"
	"strings"
	"testing"
	"time"

	"starcore/internal/catalog"
	"starcore/pkg/domain"
)

func int64Ptr(v int64) *int64 { return &v }

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestSimulateInitializesLastSimulation(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := New(catalog.Default(), WithClock(fixedClock(now)))
	star := &domain.Star{ID: 1}
	s.Simulate(star)
	if !star.LastSimulation.Equal(now) {
		t.Fatalf("expected last simulation %v, got %v", now, star.LastSimulation)
	}
}

func TestSimulateProducesAndClamps(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	now := start.Add(10 * time.Hour)
	empire := int64Ptr(1)
	star := &domain.Star{
		ID:             1,
		LastSimulation: start,
		Planets: []domain.Planet{{Index: 0, Colony: &domain.Colony{
			ID:         10,
			EmpireID:   empire,
			Population: 100,
			Focus:      domain.ColonyFocus{Energy: 0.3, Farming: 0.3, Mining: 0.3, Construction: 0.1},
		}}},
		EmpireStores: []domain.EmpireStorage{{
			EmpireID:   empire,
			TotalGoods: 100, MaxGoods: 1000,
			TotalMinerals: 100, MaxMinerals: 1000,
			TotalEnergy: 990, MaxEnergy: 1000,
		}},
	}
	s := New(catalog.Default(), WithClock(fixedClock(now)))
	s.Simulate(star)

	storage := star.EmpireStores[0]
	// 100 pop * 0.3 farming * 0.1 goods/hr * 10 hr = 30.
	if math.Abs(storage.TotalGoods-130) > 1e-9 {
		t.Fatalf("expected 130 goods, got %v", storage.TotalGoods)
	}
	if math.Abs(storage.TotalMinerals-130) > 1e-9 {
		t.Fatalf("expected 130 minerals, got %v", storage.TotalMinerals)
	}
	// Energy production overshoots the maximum and clamps.
	if storage.TotalEnergy != 1000 {
		t.Fatalf("expected energy clamped at 1000, got %v", storage.TotalEnergy)
	}
	if !star.LastSimulation.Equal(now) {
		t.Fatalf("last simulation not advanced")
	}
}

func TestSimulateAdvancesBuildRequest(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	now := start.Add(10 * time.Hour)
	star := &domain.Star{
		ID:             1,
		LastSimulation: start,
		Planets: []domain.Planet{{Index: 0, Colony: &domain.Colony{
			ID:         10,
			EmpireID:   int64Ptr(1),
			Population: 100,
			Focus:      domain.ColonyFocus{Construction: 0.5},
			BuildRequests: []domain.BuildRequest{
				{ID: 30, DesignType: domain.DesignScout, Count: 1},
				{ID: 31, DesignType: domain.DesignFighter, Count: 1},
			},
		}}},
	}
	s := New(catalog.Default(), WithClock(fixedClock(now)))
	s.Simulate(star)

	colony := star.Planets[0].Colony
	// 100 pop * 0.5 construction * 10 hr = 500 points against a 50-point scout.
	if colony.BuildRequests[0].Progress != 1 {
		t.Fatalf("expected first request complete, got %v", colony.BuildRequests[0].Progress)
	}
	if colony.BuildRequests[1].Progress != 0 {
		t.Fatalf("expected second request untouched, got %v", colony.BuildRequests[1].Progress)
	}
}

func TestSimulateNoElapsedTimeIsNoop(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	star := &domain.Star{
		ID:             1,
		LastSimulation: now,
		EmpireStores:   []domain.EmpireStorage{{EmpireID: nil, TotalGoods: 50, MaxGoods: 100}},
	}
	s := New(catalog.Default(), WithClock(fixedClock(now)))
	s.Simulate(star)
	if star.EmpireStores[0].TotalGoods != 50 {
		t.Fatalf("expected no production for zero elapsed time")
	}
}

func TestTranscriptRecordsLines(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var transcript Transcript
	star := &domain.Star{ID: 7, LastSimulation: start}
	s := New(catalog.Default(),
		WithClock(fixedClock(start.Add(time.Hour))),
		WithLogHandler(&transcript))
	s.Simulate(star)
	if len(transcript.Lines) == 0 {
		t.Fatalf("expected at least one log line")
	}
	if !strings.Contains(transcript.Lines[0], "star 7") {
		t.Fatalf("unexpected log line: %q", transcript.Lines[0])
	}
}
