package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/peninsulatransit/caltraind/types"
)

func TestAPIStatus(t *testing.T) {
	holder := &statusHolder{}
	server := httptest.NewServer(holder.router())
	defer server.Close()

	response, err := http.Get(server.URL + "/status")
	if err != nil {
		t.Fatal(err)
	}
	response.Body.Close()
	if response.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("expected 503 before the first snapshot, got %d", response.StatusCode)
	}

	holder.HandleStatus(&types.Status{
		Northbound: []types.IncomingTrain{{ID: 429, Type: types.Local, MinutesTillDeparture: 59}},
		Southbound: []types.IncomingTrain{},
	})

	response, err = http.Get(server.URL + "/status")
	if err != nil {
		t.Fatal(err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}
	var decoded statusResponse
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(decoded.Northbound) != 1 || decoded.Northbound[0].ID != 429 {
		t.Errorf("unexpected body %+v", decoded)
	}
	if decoded.Updated.IsZero() {
		t.Error("updated timestamp missing")
	}
}

func TestAPIStatusByDirection(t *testing.T) {
	holder := &statusHolder{}
	holder.HandleStatus(&types.Status{
		Northbound: []types.IncomingTrain{{ID: 429, Type: types.Local, MinutesTillDeparture: 59}},
		Southbound: []types.IncomingTrain{{ID: 802, Type: types.BabyBullet, MinutesTillDeparture: 6}},
	})
	server := httptest.NewServer(holder.router())
	defer server.Close()

	response, err := http.Get(server.URL + "/status/southbound")
	if err != nil {
		t.Fatal(err)
	}
	defer response.Body.Close()
	var trains []types.IncomingTrain
	if err := json.NewDecoder(response.Body).Decode(&trains); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(trains) != 1 || trains[0].ID != 802 {
		t.Errorf("unexpected southbound trains %+v", trains)
	}

	response, err = http.Get(server.URL + "/status/sideways")
	if err != nil {
		t.Fatal(err)
	}
	response.Body.Close()
	if response.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for an unknown direction, got %d", response.StatusCode)
	}
}
