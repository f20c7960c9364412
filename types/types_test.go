package types

import (
	"strings"
	"testing"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in       string
		expected Direction
		wantErr  bool
	}{
		{in: "Northbound", expected: Northbound},
		{in: "Southbound", expected: Southbound},
		{in: "northbound", expected: Northbound},
		{in: "SOUTHBOUND", expected: Southbound},
		{in: "sideways", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		direction, err := ParseDirection(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDirection(%q): expected an error", tt.in)
			}
			continue
		}
		if err != nil || direction != tt.expected {
			t.Errorf("ParseDirection(%q) = %v, %v; expected %v", tt.in, direction, err, tt.expected)
		}
	}
}

func TestStatusTrains(t *testing.T) {
	status := &Status{
		Northbound: []IncomingTrain{{ID: 1, Type: Local, MinutesTillDeparture: 5}},
		Southbound: []IncomingTrain{{ID: 2, Type: Limited, MinutesTillDeparture: 10}},
	}
	if trains := status.Trains(Northbound); len(trains) != 1 || trains[0].ID != 1 {
		t.Errorf("unexpected northbound trains %+v", trains)
	}
	if trains := status.Trains(Southbound); len(trains) != 1 || trains[0].ID != 2 {
		t.Errorf("unexpected southbound trains %+v", trains)
	}
}

func TestStations(t *testing.T) {
	stations := Stations()
	if len(stations) != 31 {
		t.Fatalf("expected 31 stations, got %d", len(stations))
	}
	for _, station := range stations {
		url := station.URL()
		if !strings.HasSuffix(url, "-mobilewebtimes.html") || !strings.Contains(url, "caltrain.com") {
			t.Errorf("suspicious URL for %s: %s", station, url)
		}
	}

	if _, err := ParseStation("PaloAlto"); err != nil {
		t.Errorf("ParseStation(PaloAlto): %v", err)
	}
	if _, err := ParseStation("Narnia"); err == nil {
		t.Error("ParseStation accepted an unknown station")
	}
}
