package ctscraper

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/peninsulatransit/caltraind/types"
)

func TestScraperUpdate(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("testdata", "paloalto.html"))
	if err != nil {
		t.Fatal(err)
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(content)
	}))
	defer server.Close()

	var received []*types.Status
	sc := &Scraper{
		Station: types.PaloAlto,
		URL:     server.URL,
		Period:  time.Hour,
		StatusCallback: func(status *types.Status) {
			received = append(received, status)
		},
	}
	if err := sc.Init(log.New(io.Discard, "", 0)); err != nil {
		t.Fatalf("Init: %v", err)
	}

	sc.update()
	if len(received) != 1 {
		t.Fatalf("expected one snapshot after first update, got %d", len(received))
	}
	if len(received[0].Southbound) != 3 || len(received[0].Northbound) != 3 {
		t.Errorf("unexpected snapshot %+v", received[0])
	}
	if sc.LastUpdate().IsZero() {
		t.Error("LastUpdate not set after successful fetch")
	}

	// an unchanged page must not be re-reported
	sc.update()
	if len(received) != 1 {
		t.Errorf("expected unchanged page to be skipped, got %d snapshots", len(received))
	}
}

func TestScraperUpdateBadPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<html><body><table class="ipf-st-ip-trains-subtable"><tr>`+
			`<td class="ipf-st-ip-trains-subtable-td-id">nope</td>`+
			`<td class="ipf-st-ip-trains-subtable-td-type">Local</td>`+
			`<td class="ipf-st-ip-trains-subtable-td-arrivaltime">5 min.</td>`+
			`</tr></table></body></html>`)
	}))
	defer server.Close()

	called := false
	sc := &Scraper{
		Station:        types.PaloAlto,
		URL:            server.URL,
		Period:         time.Hour,
		StatusCallback: func(status *types.Status) { called = true },
	}
	if err := sc.Init(log.New(io.Discard, "", 0)); err != nil {
		t.Fatalf("Init: %v", err)
	}

	sc.update()
	if called {
		t.Error("a snapshot was reported for a page that failed extraction")
	}
}

func TestScraperID(t *testing.T) {
	sc := &Scraper{Station: types.MountainView}
	if sc.ID() != "sc-caltrain-MountainView" {
		t.Errorf("unexpected scraper ID %q", sc.ID())
	}
}
