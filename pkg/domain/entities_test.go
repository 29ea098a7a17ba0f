package domain

import (
	"math"
	"testing"
	"time"
)

func int64Ptr(v int64) *int64 { return &v }

func TestSameEmpire(t *testing.T) {
	if !SameEmpire(nil, nil) {
		t.Fatalf("expected two native references to match")
	}
	if SameEmpire(int64Ptr(1), nil) || SameEmpire(nil, int64Ptr(1)) {
		t.Fatalf("native must not match an empire")
	}
	if !SameEmpire(int64Ptr(7), int64Ptr(7)) {
		t.Fatalf("expected same empire ids to match")
	}
	if SameEmpire(int64Ptr(7), int64Ptr(8)) {
		t.Fatalf("expected differing empire ids to differ")
	}
}

func TestDistance(t *testing.T) {
	a := &Star{X: 0, Y: 0}
	b := &Star{X: 3, Y: 4}
	if got := Distance(a, b); math.Abs(got-5) > 1e-9 {
		t.Fatalf("expected distance 5, got %v", got)
	}
}

func TestStarLookups(t *testing.T) {
	empire := int64Ptr(4)
	star := Star{
		ID: 1,
		Planets: []Planet{
			{Index: 0},
			{Index: 1, Colony: &Colony{ID: 10, EmpireID: empire}},
		},
		Fleets: []Fleet{
			{ID: 20, EmpireID: empire, DesignType: DesignScout, NumShips: 1},
			{ID: 21, DesignType: DesignFighter, NumShips: 3},
		},
		EmpireStores: []EmpireStorage{
			{EmpireID: nil},
			{EmpireID: empire},
		},
	}

	if p := star.PlanetWithColony(10); p == nil || p.Index != 1 {
		t.Fatalf("expected colony 10 on planet 1, got %+v", p)
	}
	if p := star.PlanetWithColony(99); p != nil {
		t.Fatalf("expected no planet for unknown colony, got %+v", p)
	}
	if idx := star.FleetIndex(21); idx != 1 {
		t.Fatalf("expected fleet 21 at index 1, got %d", idx)
	}
	if idx := star.FleetIndex(99); idx != -1 {
		t.Fatalf("expected -1 for unknown fleet, got %d", idx)
	}
	if idx := star.StorageIndex(empire); idx != 1 {
		t.Fatalf("expected empire storage at index 1, got %d", idx)
	}
	if idx := star.StorageIndex(nil); idx != 0 {
		t.Fatalf("expected native storage at index 0, got %d", idx)
	}
	if idx := star.StorageIndex(int64Ptr(99)); idx != -1 {
		t.Fatalf("expected -1 for unknown empire, got %d", idx)
	}
}

func TestCloneIsolation(t *testing.T) {
	empire := int64Ptr(2)
	eta := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	dest := int64Ptr(5)
	star := Star{
		ID: 1,
		Planets: []Planet{
			{Index: 0, Colony: &Colony{
				ID:            10,
				EmpireID:      empire,
				Population:    100,
				Buildings:     []Building{{DesignType: DesignShipyard, Level: 1}},
				BuildRequests: []BuildRequest{{ID: 30, DesignType: DesignScout, Count: 1}},
			}},
		},
		Fleets: []Fleet{{
			ID:                20,
			EmpireID:          empire,
			DesignType:        DesignScout,
			NumShips:          2,
			State:             FleetMoving,
			DestinationStarID: dest,
			ETA:               &eta,
		}},
		EmpireStores: []EmpireStorage{{EmpireID: empire, TotalGoods: 100}},
	}

	clone := star.Clone()
	clone.Planets[0].Colony.Population = 1
	clone.Planets[0].Colony.Buildings[0].Level = 9
	clone.Planets[0].Colony.BuildRequests[0].Count = 9
	*clone.Fleets[0].EmpireID = 99
	*clone.Fleets[0].DestinationStarID = 99
	*clone.Fleets[0].ETA = eta.Add(time.Hour)
	clone.EmpireStores[0].TotalGoods = 0

	if star.Planets[0].Colony.Population != 100 {
		t.Fatalf("colony mutated through clone")
	}
	if star.Planets[0].Colony.Buildings[0].Level != 1 {
		t.Fatalf("building mutated through clone")
	}
	if star.Planets[0].Colony.BuildRequests[0].Count != 1 {
		t.Fatalf("build request mutated through clone")
	}
	if *star.Fleets[0].EmpireID != 2 || *star.Fleets[0].DestinationStarID != 5 {
		t.Fatalf("fleet pointers shared with clone")
	}
	if !star.Fleets[0].ETA.Equal(eta) {
		t.Fatalf("eta shared with clone")
	}
	if star.EmpireStores[0].TotalGoods != 100 {
		t.Fatalf("storage mutated through clone")
	}
}

func TestResultAggregation(t *testing.T) {
	var res Result
	res.Merge(Result{Violations: []Violation{{Rule: "a", Severity: SeverityWarn}}})
	if res.HasBlocking() {
		t.Fatalf("warn-only result must not block")
	}
	res.Merge(Result{Violations: []Violation{{Rule: "b", Severity: SeverityBlock}}})
	if !res.HasBlocking() {
		t.Fatalf("expected blocking result")
	}
	if got := len(res.Warnings()); got != 1 {
		t.Fatalf("expected 1 warning, got %d", got)
	}
}

func TestSuspiciousErrorMessage(t *testing.T) {
	err := NewSuspicious(7, SplitFleet{FleetID: 3, Count: 2}, "fleet %d not found", 3)
	want := "star 7: suspicious split_fleet modification: fleet 3 not found"
	if err.Error() != want {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
