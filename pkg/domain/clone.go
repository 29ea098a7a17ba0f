package domain

// Clone returns a deep copy of the star. Transactions stage mutations on
// clones so an aborted transaction never leaks partial writes into the
// committed arena.
func (s Star) Clone() Star {
	out := s
	if s.Planets != nil {
		out.Planets = make([]Planet, len(s.Planets))
		for i, p := range s.Planets {
			out.Planets[i] = p.clone()
		}
	}
	if s.Fleets != nil {
		out.Fleets = make([]Fleet, len(s.Fleets))
		for i, f := range s.Fleets {
			out.Fleets[i] = f.Clone()
		}
	}
	if s.EmpireStores != nil {
		out.EmpireStores = make([]EmpireStorage, len(s.EmpireStores))
		for i, st := range s.EmpireStores {
			out.EmpireStores[i] = st.clone()
		}
	}
	return out
}

func (p Planet) clone() Planet {
	out := p
	if p.Colony != nil {
		c := p.Colony.clone()
		out.Colony = &c
	}
	return out
}

func (c Colony) clone() Colony {
	out := c
	out.EmpireID = cloneID(c.EmpireID)
	if c.Buildings != nil {
		out.Buildings = append([]Building(nil), c.Buildings...)
	}
	if c.BuildRequests != nil {
		out.BuildRequests = append([]BuildRequest(nil), c.BuildRequests...)
	}
	return out
}

// Clone returns a deep copy of the fleet.
func (f Fleet) Clone() Fleet {
	out := f
	out.EmpireID = cloneID(f.EmpireID)
	out.DestinationStarID = cloneID(f.DestinationStarID)
	if f.ETA != nil {
		eta := *f.ETA
		out.ETA = &eta
	}
	return out
}

func (s EmpireStorage) clone() EmpireStorage {
	out := s
	out.EmpireID = cloneID(s.EmpireID)
	return out
}

func cloneID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
