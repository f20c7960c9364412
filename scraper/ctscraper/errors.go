package ctscraper

import "fmt"

// RowField names the arrival-board cell a RowError is about
type RowField string

const (
	// FieldTrainID is the train number cell
	FieldTrainID RowField = "id"
	// FieldTrainType is the service label cell
	FieldTrainType RowField = "type"
	// FieldArrivalTime is the countdown cell
	FieldArrivalTime RowField = "arrivaltime"
)

// DocumentError reports input that could not be read or parsed as an HTML
// document at all; extraction never started.
type DocumentError struct {
	Err error
}

func (e *DocumentError) Error() string {
	return "unreadable status page: " + e.Err.Error()
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// RowError reports a completed row whose staged cell text could not be turned
// into a train record. It aborts the whole extraction attempt, not just the
// row: a snapshot is either complete or absent.
type RowError struct {
	Field RowField
	Text  string
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("bad %s cell %q: %v", e.Field, e.Text, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
