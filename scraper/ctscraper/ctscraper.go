package ctscraper

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/peninsulatransit/caltraind/types"
)

const maxResponseSize = 1024 * 1024

// Scraper polls the real-time departures page of one Caltrain station and
// reports a fresh Status snapshot through StatusCallback after each
// successful fetch. A fetch or extraction failure is logged and the cycle's
// snapshot discarded; the next tick retries from scratch.
type Scraper struct {
	running    bool
	ticker     *time.Ticker
	stopChan   chan struct{}
	log        *log.Logger
	lastUpdate time.Time

	// previousResponse lets us skip re-extracting a byte-identical page
	previousResponse []byte

	Station types.Station
	// URL overrides the station's default page address when set
	URL            string
	HTTPClient     *http.Client
	Period         time.Duration
	StatusCallback func(status *types.Status)
}

// ID returns the ID of this scraper
func (sc *Scraper) ID() string {
	return "sc-caltrain-" + string(sc.Station)
}

// Init initializes the scraper
func (sc *Scraper) Init(log *log.Logger) error {
	sc.log = log
	if sc.HTTPClient == nil {
		sc.HTTPClient = &http.Client{
			Timeout: 10 * time.Second,
		}
	}
	if sc.URL == "" {
		sc.URL = sc.Station.URL()
	}
	if sc.Period == 0 {
		sc.Period = 20 * time.Second
	}
	return nil
}

// Begin starts the scraper
func (sc *Scraper) Begin() {
	sc.stopChan = make(chan struct{}, 1)
	sc.ticker = time.NewTicker(sc.Period)
	sc.running = true
	sc.log.Println("Scraper starting")
	sc.update()
	sc.log.Println("Scraper completed first fetch")
	go sc.mainLoop()
}

// End stops the scraper
func (sc *Scraper) End() {
	sc.ticker.Stop()
	close(sc.stopChan)
	sc.running = false
}

// Running returns whether the scraper is running
func (sc *Scraper) Running() bool {
	return sc.running
}

// LastUpdate returns the time of the last successful fetch
func (sc *Scraper) LastUpdate() time.Time {
	return sc.lastUpdate
}

func (sc *Scraper) mainLoop() {
	for {
		select {
		case <-sc.ticker.C:
			sc.update()
		case <-sc.stopChan:
			return
		}
	}
}

func (sc *Scraper) update() {
	response, err := sc.HTTPClient.Get(sc.URL)
	if err != nil {
		sc.log.Println(err)
		return
	}
	defer response.Body.Close()

	// making sure they don't troll us
	if response.StatusCode != http.StatusOK || response.ContentLength > maxResponseSize {
		sc.log.Printf("Unexpected response fetching %s: status %d, length %d\n",
			sc.URL, response.StatusCode, response.ContentLength)
		return
	}

	content, err := io.ReadAll(io.LimitReader(response.Body, maxResponseSize))
	if err != nil {
		sc.log.Println(err)
		return
	}

	if bytes.Equal(content, sc.previousResponse) {
		sc.lastUpdate = time.Now()
		return
	}

	status, err := ExtractStatus(bytes.NewReader(content))
	if err != nil {
		sc.log.Println("Error extracting status:", err)
		return
	}
	sc.previousResponse = content
	sc.lastUpdate = time.Now()
	sc.log.Printf("New status with %d northbound and %d southbound trains\n",
		len(status.Northbound), len(status.Southbound))

	if sc.StatusCallback != nil {
		sc.StatusCallback(status)
	}
}
