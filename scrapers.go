package main

import (
	"log"
	"os"
	"time"

	"github.com/peninsulatransit/caltraind/scraper"
	"github.com/peninsulatransit/caltraind/scraper/ctscraper"
	"github.com/peninsulatransit/caltraind/types"
)

var (
	ctscr scraper.StatusScraper

	// statusSinks receives every new snapshot, in registration order.
	// Registration happens during startup, before the scraper begins, so
	// no locking is needed.
	statusSinks []func(status *types.Status)
)

// registerStatusSink adds a consumer for new arrival snapshots. Must be
// called before SetUpScrapers.
func registerStatusSink(sink func(status *types.Status)) {
	statusSinks = append(statusSinks, sink)
}

// SetUpScrapers initializes and starts the scraper watching the configured
// station
func SetUpScrapers(config *Config) error {
	ctscr = &ctscraper.Scraper{
		Station:        config.Station,
		Period:         time.Duration(config.RefreshSeconds) * time.Second,
		StatusCallback: handleNewStatus,
	}
	if err := ctscr.Init(log.New(os.Stdout, "scraper ", log.Ldate|log.Ltime)); err != nil {
		return err
	}
	ctscr.Begin()
	return nil
}

// TearDownScrapers stops the scrapers
func TearDownScrapers() {
	if ctscr != nil && ctscr.Running() {
		ctscr.End()
	}
}

func handleNewStatus(status *types.Status) {
	for _, sink := range statusSinks {
		sink(status)
	}
}
