package types

// MinutesUnknown is the MinutesTillDeparture value used when the status page
// shows no countdown for a train (labels like "Departed" or "On Time").
// Deliberately out of range for any real countdown, so consumers can treat it
// as "far future" without a separate flag.
const MinutesUnknown uint16 = 9001

// IncomingTrain is one upcoming arrival on a station's real-time board.
// Train IDs are unique within one snapshot by construction of the source
// feed; uniqueness is not enforced here.
type IncomingTrain struct {
	ID                   uint16    `json:"id"`
	Type                 TrainType `json:"type"`
	MinutesTillDeparture uint16    `json:"minutesTillDeparture"`
}
