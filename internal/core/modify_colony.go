package core

import (
	"math"

	"starcore/pkg/domain"
)

func (m *Modifier) applyColonize(star *domain.Star, mod domain.Colonize) error {
	m.log.Log("- colonizing planet #%d", mod.PlanetIndex)

	if mod.PlanetIndex < 0 || mod.PlanetIndex >= len(star.Planets) {
		return domain.NewSuspicious(star.ID, mod,
			"planet index %d out of range (%d planets)", mod.PlanetIndex, len(star.Planets))
	}

	// Destroy a colony ship, unless this is a native colony.
	if mod.EmpireID != nil {
		found := false
		for i := range star.Fleets {
			fleet := &star.Fleets[i]
			if fleet.DesignType != domain.DesignColonyShip || !fleet.IsFriendlyTo(mod.EmpireID) {
				continue
			}
			if math.Ceil(fleet.NumShips) == 1 {
				star.Fleets = append(star.Fleets[:i], star.Fleets[i+1:]...)
			} else {
				fleet.NumShips--
			}
			found = true
			break
		}
		if !found {
			m.log.Log("  no colonyship, cannot colonize.")
			return nil
		}
	}

	now := m.now().UTC()
	colony := &domain.Colony{
		ID:         m.ids.NextID(),
		EmpireID:   mod.EmpireID,
		Population: defaultColonyPopulation,
		Focus: domain.ColonyFocus{
			Construction: defaultFocusConstruction,
			Energy:       defaultFocusEnergy,
			Farming:      defaultFocusFarming,
			Mining:       defaultFocusMining,
		},
		CooldownEnd: now.Add(colonyCooldownDuration),
	}
	star.Planets[mod.PlanetIndex].Colony = colony
	m.log.Log("  colonized: colony_id=%d", colony.ID)

	// If there's no storage for this empire, add one with some defaults now.
	if star.StorageIndex(mod.EmpireID) < 0 {
		star.EmpireStores = append(star.EmpireStores, domain.EmpireStorage{
			EmpireID:      mod.EmpireID,
			TotalGoods:    initialGoods,
			TotalMinerals: initialMinerals,
			TotalEnergy:   initialEnergy,
			MaxGoods:      maxGoods,
			MaxMinerals:   maxMinerals,
			MaxEnergy:     maxEnergy,
		})
	}
	return nil
}

func (m *Modifier) applyCreateBuilding(star *domain.Star, mod domain.CreateBuilding) error {
	planet := star.PlanetWithColony(mod.ColonyID)
	if planet == nil {
		return domain.NewSuspicious(star.ID, mod,
			"attempt to create building on colony that does not exist. colony_id=%d", mod.ColonyID)
	}
	if !domain.SameEmpire(planet.Colony.EmpireID, mod.EmpireID) {
		return domain.NewSuspicious(star.ID, mod,
			"attempt to create building on planet for different empire. colony.empire_id=%s",
			empireRef(planet.Colony.EmpireID))
	}

	m.log.Log("- creating building, colony_id=%d", mod.ColonyID)
	planet.Colony.Buildings = append(planet.Colony.Buildings, domain.Building{
		DesignType: mod.DesignType,
		Level:      1,
	})
	return nil
}

func (m *Modifier) applyAdjustFocus(star *domain.Star, mod domain.AdjustFocus) error {
	planet := star.PlanetWithColony(mod.ColonyID)
	if planet == nil {
		return domain.NewSuspicious(star.ID, mod,
			"attempt to adjust focus on a colony that does not exist. colony_id=%d", mod.ColonyID)
	}
	if !domain.SameEmpire(planet.Colony.EmpireID, mod.EmpireID) {
		return domain.NewSuspicious(star.ID, mod,
			"attempt to adjust focus on planet for different empire. colony.empire_id=%s",
			empireRef(planet.Colony.EmpireID))
	}

	m.log.Log("- adjusting focus.")
	planet.Colony.Focus = mod.Focus
	return nil
}

func (m *Modifier) applyAddBuildRequest(star *domain.Star, mod domain.AddBuildRequest) error {
	planet := star.PlanetWithColony(mod.ColonyID)
	if planet == nil {
		return domain.NewSuspicious(star.ID, mod,
			"attempt to add build request on colony that does not exist. colony_id=%d", mod.ColonyID)
	}
	colony := planet.Colony
	if !domain.SameEmpire(colony.EmpireID, mod.EmpireID) {
		return domain.NewSuspicious(star.ID, mod,
			"attempt to add build request on colony that does not belong to you. colony_id=%d empire_id=%s",
			mod.ColonyID, empireRef(colony.EmpireID))
	}

	// A ship build on a colony with no shipyard can only come from a forged
	// request: the client hides the option.
	design := m.catalog.MustGet(mod.DesignType)
	if design.Kind == domain.KindShip {
		hasShipyard := false
		for _, building := range colony.Buildings {
			if building.DesignType == domain.DesignShipyard {
				hasShipyard = true
			}
		}
		if !hasShipyard {
			return domain.NewSuspicious(star.ID, mod,
				"attempt to build ship with no shipyard present.")
		}
	}

	m.log.Log("- adding build request")
	colony.BuildRequests = append(colony.BuildRequests, domain.BuildRequest{
		ID:         m.ids.NextID(),
		DesignType: mod.DesignType,
		Count:      mod.Count,
		Progress:   0,
		StartTime:  m.now().UTC(),
	})
	return nil
}

func (m *Modifier) applyDeleteBuildRequest(star *domain.Star, mod domain.DeleteBuildRequest) error {
	for pi := range star.Planets {
		colony := star.Planets[pi].Colony
		if colony == nil {
			continue
		}
		for ri, req := range colony.BuildRequests {
			if req.ID != mod.BuildRequestID {
				continue
			}
			if !domain.SameEmpire(colony.EmpireID, mod.EmpireID) {
				return domain.NewSuspicious(star.ID, mod,
					"attempt to delete build request for different empire. colony.empire_id=%s",
					empireRef(colony.EmpireID))
			}
			m.log.Log("- deleting build request")
			colony.BuildRequests = append(colony.BuildRequests[:ri], colony.BuildRequests[ri+1:]...)
			return nil
		}
	}
	return domain.NewSuspicious(star.ID, mod,
		"attempt to delete build request that does not exist. build_request_id=%d", mod.BuildRequestID)
}

func (m *Modifier) applyEmptyNative(star *domain.Star) error {
	m.log.Log("- emptying native colonies")

	for i := range star.Planets {
		if c := star.Planets[i].Colony; c != nil && c.EmpireID == nil {
			star.Planets[i].Colony = nil
		}
	}

	stores := star.EmpireStores[:0]
	for _, storage := range star.EmpireStores {
		if storage.EmpireID != nil {
			stores = append(stores, storage)
		}
	}
	star.EmpireStores = stores

	fleets := star.Fleets[:0]
	for _, fleet := range star.Fleets {
		if fleet.EmpireID != nil {
			fleets = append(fleets, fleet)
		}
	}
	star.Fleets = fleets
	return nil
}
