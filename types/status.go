package types

// Status is a point-in-time snapshot of the arrival board of one station,
// split by direction of travel. Either side may be empty independently of the
// other. Train order matches the order of appearance on the source page.
//
// A Status is built once per poll and never mutated afterwards; the next poll
// produces a wholly new value, so a Status may be shared freely between
// goroutines.
type Status struct {
	Northbound []IncomingTrain `json:"northbound"`
	Southbound []IncomingTrain `json:"southbound"`
}

// Trains returns the ordered arrivals for one direction. The returned slice
// is owned by the Status and must not be modified.
func (s *Status) Trains(d Direction) []IncomingTrain {
	if d == Northbound {
		return s.Northbound
	}
	return s.Southbound
}
