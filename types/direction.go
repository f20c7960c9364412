package types

import (
	"fmt"
	"strings"
)

// Direction is the direction of travel of a train along the line
type Direction int

const (
	// Northbound trains head towards San Francisco
	Northbound Direction = iota

	// Southbound trains head towards Gilroy
	Southbound
)

// ParseDirection parses a direction name as used in configuration files and
// API routes. Matching is case-insensitive.
func ParseDirection(s string) (Direction, error) {
	switch {
	case strings.EqualFold(s, "Northbound"):
		return Northbound, nil
	case strings.EqualFold(s, "Southbound"):
		return Southbound, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

func (d Direction) String() string {
	switch d {
	case Northbound:
		return "Northbound"
	case Southbound:
		return "Southbound"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// MarshalText implements encoding.TextMarshaler
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
