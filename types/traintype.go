package types

import (
	"fmt"
	"strings"
)

// TrainType is the service level of a Caltrain run
type TrainType int

const (
	// Local trains stop at every station on the route
	Local TrainType = iota

	// Limited trains skip some of the smaller stations
	Limited

	// BabyBullet trains are the express service, stopping only at the busiest stations
	BabyBullet
)

// UnknownTrainTypeError is returned when a service label matches none of the
// known train types
type UnknownTrainTypeError struct {
	Label string
}

func (e *UnknownTrainTypeError) Error() string {
	return fmt.Sprintf("unknown train type %q", e.Label)
}

// ClassifyTrainType derives a TrainType from a service label as it appears on
// the status page. Labels are matched by containment, in a fixed priority
// order; a label that matches nothing is an error, never a default.
func ClassifyTrainType(label string) (TrainType, error) {
	switch {
	case strings.Contains(label, "Local"):
		return Local, nil
	case strings.Contains(label, "Limited"):
		return Limited, nil
	case strings.Contains(label, "Baby Bullet"):
		return BabyBullet, nil
	}
	return 0, &UnknownTrainTypeError{Label: label}
}

// ParseTrainType parses the compact spelling used in configuration files and
// on the command line ("Local", "Limited", "BabyBullet")
func ParseTrainType(s string) (TrainType, error) {
	switch s {
	case "Local":
		return Local, nil
	case "Limited":
		return Limited, nil
	case "BabyBullet":
		return BabyBullet, nil
	}
	return 0, &UnknownTrainTypeError{Label: s}
}

func (t TrainType) String() string {
	switch t {
	case Local:
		return "Local"
	case Limited:
		return "Limited"
	case BabyBullet:
		return "Baby Bullet"
	}
	return fmt.Sprintf("TrainType(%d)", int(t))
}

// MarshalText makes train types appear under their display name in JSON output
func (t TrainType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText accepts both the compact and the display spelling, so the same
// type works for configuration files and for round-tripping API output
func (t *TrainType) UnmarshalText(text []byte) error {
	if string(text) == "Baby Bullet" {
		*t = BabyBullet
		return nil
	}
	parsed, err := ParseTrainType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
