package types

import (
	"fmt"
	"sort"
)

// Station identifies a Caltrain station by its compact configuration name
type Station string

// All stations on the line, north to south
const (
	SanFrancisco          Station = "SanFrancisco"
	TwentySecondStreet    Station = "TwentySecondStreet"
	Bayshore              Station = "Bayshore"
	SouthSanFrancisco     Station = "SouthSanFrancisco"
	SanBruno              Station = "SanBruno"
	MillbraeTransitCenter Station = "MillbraeTransitCenter"
	Broadway              Station = "Broadway"
	Burlingame            Station = "Burlingame"
	SanMateo              Station = "SanMateo"
	HaywardPark           Station = "HaywardPark"
	Hillsdale             Station = "Hillsdale"
	Belmont               Station = "Belmont"
	SanCarlos             Station = "SanCarlos"
	RedwoodCity           Station = "RedwoodCity"
	Atherton              Station = "Atherton"
	MenloPark             Station = "MenloPark"
	PaloAlto              Station = "PaloAlto"
	CaliforniaAve         Station = "CaliforniaAve"
	SanAntonio            Station = "SanAntonio"
	MountainView          Station = "MountainView"
	Sunnyvale             Station = "Sunnyvale"
	Lawrence              Station = "Lawrence"
	SantaClara            Station = "SantaClara"
	CollegePark           Station = "CollegePark"
	SanJoseDiridon        Station = "SanJoseDiridon"
	Tamien                Station = "Tamien"
	Capitol               Station = "Capitol"
	BlossomHill           Station = "BlossomHill"
	MorganHill            Station = "MorganHill"
	SanMartin             Station = "SanMartin"
	Gilroy                Station = "Gilroy"
)

// stationSlugs maps each station to the slug used in the URL of its real-time
// departures page
var stationSlugs = map[Station]string{
	SanFrancisco:          "sanfranciscostation",
	TwentySecondStreet:    "22ndstreetstation",
	Bayshore:              "bayshorestation",
	SouthSanFrancisco:     "southsanfranciscostation",
	SanBruno:              "sanbrunostation",
	MillbraeTransitCenter: "millbraestation",
	Broadway:              "broadwaystation",
	Burlingame:            "burlingamestation",
	SanMateo:              "sanmateostation",
	HaywardPark:           "haywardparkstation",
	Hillsdale:             "hillsdalestation",
	Belmont:               "belmontstation",
	SanCarlos:             "sancarlosstation",
	RedwoodCity:           "redwoodcitystation",
	Atherton:              "athertonstation",
	MenloPark:             "menloparkstation",
	PaloAlto:              "paloaltostation",
	CaliforniaAve:         "californiaavestation",
	SanAntonio:            "sanantoniostation",
	MountainView:          "mountainviewstation",
	Sunnyvale:             "sunnyvalestation",
	Lawrence:              "lawrencestation",
	SantaClara:            "santaclarastation",
	CollegePark:           "collegeparkstation",
	SanJoseDiridon:        "sanjosestation",
	Tamien:                "tamienstation",
	Capitol:               "capitolstation",
	BlossomHill:           "blossomhillstation",
	MorganHill:            "morganhillstation",
	SanMartin:             "sanmartinstation",
	Gilroy:                "gilroystation",
}

// ParseStation parses a station name as used in configuration files
func ParseStation(name string) (Station, error) {
	s := Station(name)
	if _, ok := stationSlugs[s]; !ok {
		return "", fmt.Errorf("unknown station %q", name)
	}
	return s, nil
}

// URL returns the address of the real-time departures page for this station
func (s Station) URL() string {
	return fmt.Sprintf("http://www.caltrain.com/schedules/realtime/stations/%s-mobilewebtimes.html", stationSlugs[s])
}

// Stations returns all known stations, sorted by name
func Stations() []Station {
	stations := make([]Station, 0, len(stationSlugs))
	for s := range stationSlugs {
		stations = append(stations, s)
	}
	sort.Slice(stations, func(i, j int) bool {
		return stations[i] < stations[j]
	})
	return stations
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Station) UnmarshalText(text []byte) error {
	parsed, err := ParseStation(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
