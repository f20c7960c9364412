package main

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/hako/durafmt"
	cache "github.com/patrickmn/go-cache"
	funk "github.com/thoas/go-funk"

	"github.com/peninsulatransit/caltraind/types"
)

// notifiedTTL is how long a delivered notification suppresses repeats for the
// same train. Longer than any train stays on the board.
const notifiedTTL = 3 * time.Hour

// DeliverFunc delivers one rendered notification to the user
type DeliverFunc func(title, body string) error

// Notifier watches arrival snapshots and raises a notification once per train
// when the train comes within the configured number of minutes of departure.
// One Notifier handles one threshold; a daemon runs one per configured
// notify-at value.
type Notifier struct {
	notifyAt    uint16
	direction   types.Direction
	trainTypes  []types.TrainType
	afterMinute int // minute of day before which to stay silent; -1 disables
	deliver     DeliverFunc
	notified    *cache.Cache
	log         *log.Logger
	now         func() time.Time
}

// NewNotifier returns a Notifier for one notify-at threshold. notifyAfter is
// a "15:04" local time of day or empty.
func NewNotifier(notifyAt uint16, direction types.Direction, trainTypes []types.TrainType,
	notifyAfter string, deliver DeliverFunc, log *log.Logger) (*Notifier, error) {
	afterMinute := -1
	if notifyAfter != "" {
		t, err := time.Parse("15:04", notifyAfter)
		if err != nil {
			return nil, fmt.Errorf("bad notify_after time %q: %w", notifyAfter, err)
		}
		afterMinute = t.Hour()*60 + t.Minute()
	}
	return &Notifier{
		notifyAt:    notifyAt,
		direction:   direction,
		trainTypes:  trainTypes,
		afterMinute: afterMinute,
		deliver:     deliver,
		notified:    cache.New(notifiedTTL, 10*time.Minute),
		log:         log,
		now:         time.Now,
	}, nil
}

// HandleStatus inspects one snapshot and delivers notifications for every
// watched train now within the threshold that was not already announced
func (n *Notifier) HandleStatus(status *types.Status) {
	now := n.now()
	if n.afterMinute >= 0 && now.Hour()*60+now.Minute() < n.afterMinute {
		return
	}

	for _, train := range status.Trains(n.direction) {
		if !funk.Contains(n.trainTypes, train.Type) {
			continue
		}
		if train.MinutesTillDeparture > n.notifyAt {
			continue
		}
		key := strconv.Itoa(int(train.ID))
		if _, seen := n.notified.Get(key); seen {
			continue
		}
		n.notified.SetDefault(key, struct{}{})

		departure := now.Add(time.Duration(train.MinutesTillDeparture) * time.Minute)
		body := fmt.Sprintf("%s train %d is departing in %s at %s!",
			train.Type, train.ID,
			durafmt.Parse(time.Duration(train.MinutesTillDeparture)*time.Minute),
			departure.Format("3:04PM"))
		if err := n.deliver("Caltrain", body); err != nil {
			n.log.Println("Error delivering notification:", err)
		}
	}
}
