package scraper

import (
	"log"
	"time"
)

// StatusScraper is something that runs in the background retrieving the
// arrival board of a station. Scrapers may report snapshots identical to the
// previous one; deduplication is the consumer's business.
type StatusScraper interface {
	// ID returns the ID of this scraper
	ID() string
	// Init prepares the scraper for use. It must be called exactly once,
	// before Begin.
	Init(log *log.Logger) error
	// Begin starts the scraper
	Begin()
	// End stops the scraper
	End()
	// Running returns whether the scraper is running
	Running() bool
	// LastUpdate returns the time of the last successful fetch
	LastUpdate() time.Time
}
