package core

import (
	"strconv"
	"time"

	"starcore/pkg/domain"
)

func empireRef(id *int64) string {
	if id == nil {
		return "native"
	}
	return strconv.FormatInt(*id, 10)
}

func (m *Modifier) applyCreateFleet(star *domain.Star, mod domain.CreateFleet) error {
	now := m.now().UTC()

	attack := false
	if mod.Fleet == nil || mod.Fleet.Stance == domain.StanceAggressive {
		for _, fleet := range star.Fleets {
			if !fleet.IsFriendlyTo(mod.EmpireID) {
				attack = true
			}
		}
	}

	// Any aggressive fleet that isn't friendly to the newcomer activates too.
	numAttacking := 0
	for i := range star.Fleets {
		fleet := &star.Fleets[i]
		if !fleet.IsFriendlyTo(mod.EmpireID) && fleet.Stance == domain.StanceAggressive {
			fleet.State = domain.FleetAttacking
			fleet.StateStartTime = now
			numAttacking++
		}
	}

	state := domain.FleetIdle
	if attack {
		state = domain.FleetAttacking
	}
	m.log.Log("- creating fleet (%s) numAttacking=%d", state, numAttacking)

	if mod.Fleet != nil {
		fleet := mod.Fleet.Clone()
		fleet.ID = m.ids.NextID()
		fleet.State = state
		fleet.StateStartTime = now
		fleet.DestinationStarID = nil
		fleet.ETA = nil
		star.Fleets = append(star.Fleets, fleet)
	} else {
		star.Fleets = append(star.Fleets, domain.Fleet{
			ID:             m.ids.NextID(),
			EmpireID:       mod.EmpireID,
			DesignType:     mod.DesignType,
			NumShips:       float64(mod.Count),
			Stance:         domain.StanceAggressive,
			State:          state,
			StateStartTime: now,
		})
	}
	return nil
}

func (m *Modifier) applySplitFleet(star *domain.Star, mod domain.SplitFleet) error {
	idx := star.FleetIndex(mod.FleetID)
	if idx < 0 {
		return domain.NewSuspicious(star.ID, mod,
			"attempt to split fleet that does not exist. fleet_id=%d", mod.FleetID)
	}
	fleet := &star.Fleets[idx]
	if !domain.SameEmpire(fleet.EmpireID, mod.EmpireID) {
		return domain.NewSuspicious(star.ID, mod,
			"attempt to split fleet of different empire. fleet.empire_id=%s", empireRef(fleet.EmpireID))
	}

	m.log.Log("- splitting fleet")
	fleet.NumShips -= float64(mod.Count)

	split := fleet.Clone()
	split.ID = m.ids.NextID()
	split.NumShips = float64(mod.Count)
	star.Fleets = append(star.Fleets, split)
	return nil
}

func (m *Modifier) applyMergeFleet(star *domain.Star, mod domain.MergeFleet) error {
	idx := star.FleetIndex(mod.FleetID)
	if idx < 0 {
		return nil
	}
	primary := star.Fleets[idx].Clone()
	if primary.State != domain.FleetIdle {
		// Can't merge, but this isn't particularly suspicious.
		m.log.Log("  main fleet %d is %s, cannot merge.", primary.ID, primary.State)
	}
	if !domain.SameEmpire(primary.EmpireID, mod.EmpireID) {
		return domain.NewSuspicious(star.ID, mod,
			"attempt to merge fleet owned by a different empire. fleet.empire_id=%s",
			empireRef(primary.EmpireID))
	}

	wanted := make(map[int64]bool, len(mod.AdditionalFleetIDs))
	for _, id := range mod.AdditionalFleetIDs {
		wanted[id] = true
	}

	for i := 0; i < len(star.Fleets); i++ {
		other := star.Fleets[i]
		if other.ID == primary.ID || !wanted[other.ID] {
			continue
		}
		if other.DesignType != primary.DesignType {
			// The client shouldn't allow selecting a fleet of a different
			// design, so this is suspicious.
			return domain.NewSuspicious(star.ID, mod,
				"fleet #%d not the same design_type as #%d (%s vs. %s)",
				other.ID, primary.ID, other.DesignType, primary.DesignType)
		}
		if !domain.SameEmpire(other.EmpireID, mod.EmpireID) {
			return domain.NewSuspicious(star.ID, mod,
				"attempt to merge fleet owned by a different empire. fleet.empire_id=%s",
				empireRef(other.EmpireID))
		}
		if other.State != domain.FleetIdle {
			m.log.Log("  fleet %d is %s, cannot merge.", other.ID, other.State)
			continue
		}

		primary.NumShips += other.NumShips
		m.log.Log("  removing fleet %d (num_ships=%.2f)", other.ID, other.NumShips)

		star.Fleets = append(star.Fleets[:i], star.Fleets[i+1:]...)
		i--
	}

	m.log.Log("  updated fleet count of main fleet: %.2f", primary.NumShips)
	star.Fleets[star.FleetIndex(primary.ID)] = primary
	return nil
}

func (m *Modifier) applyMoveFleet(star *domain.Star, auxStars []*domain.Star, mod domain.MoveFleet) error {
	m.log.Log("- moving fleet")

	var target *domain.Star
	for _, aux := range auxStars {
		if aux.ID == mod.DestinationStarID {
			target = aux
			break
		}
	}
	if target == nil {
		// Not suspicious, the caller made a mistake not the user.
		m.log.Log("  target star #%d was not included in the auxiliary star list.", mod.DestinationStarID)
		return nil
	}

	idx := star.FleetIndex(mod.FleetID)
	if idx < 0 {
		return domain.NewSuspicious(star.ID, mod,
			"attempt to move fleet that does not exist. fleet_id=%d", mod.FleetID)
	}
	fleet := &star.Fleets[idx]

	if !domain.SameEmpire(fleet.EmpireID, mod.EmpireID) {
		return domain.NewSuspicious(star.ID, mod,
			"attempt to move fleet owned by a different empire. fleet.empire_id=%s",
			empireRef(fleet.EmpireID))
	}
	if fleet.State != domain.FleetIdle {
		// Not suspicious, maybe you accidentally pressed twice.
		m.log.Log("  fleet is not idle, can't move.")
		return nil
	}

	design := m.catalog.MustGet(fleet.DesignType)
	distance := domain.Distance(star, target)
	timeInHours := distance / design.Speed
	fuel := design.FuelCostPerUnit * distance * fleet.NumShips

	storageIdx := star.StorageIndex(fleet.EmpireID)
	if storageIdx < 0 {
		m.log.Log("  no storages on this star.")
		return nil
	}
	storage := &star.EmpireStores[storageIdx]
	if storage.TotalEnergy < fuel {
		m.log.Log("  not enough energy for move (%.2f < %.2f)", storage.TotalEnergy, fuel)
		return nil
	}

	m.log.Log("  cost=%.2f", fuel)
	now := m.now().UTC()
	eta := now.Add(time.Duration(timeInHours * float64(time.Hour)))
	storage.TotalEnergy -= fuel
	dest := target.ID
	fleet.DestinationStarID = &dest
	fleet.State = domain.FleetMoving
	fleet.StateStartTime = now
	fleet.ETA = &eta
	return nil
}
