package ctscraper

import (
	"bytes"
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/peninsulatransit/caltraind/types"
)

// Class suffixes the real-time page uses to mark up its arrival tables. The
// page carries no semantic tags; an element means something only through its
// class attribute ending in one of these strings. They are the whole
// compatibility contract with the page: if the markup drifts, extraction
// degrades silently (rows stop matching and are dropped), it does not fail
// loudly.
const (
	classSubtable    = "ipf-st-ip-trains-subtable"
	classTrainID     = "ipf-st-ip-trains-subtable-td-id"
	classTrainType   = "ipf-st-ip-trains-subtable-td-type"
	classArrivalTime = "ipf-st-ip-trains-subtable-td-arrivaltime"
)

// digitRun matches the first contiguous run of ASCII digits in a countdown
// label. Shared between concurrent extractions; never mutated after init.
var digitRun = regexp.MustCompile("[0-9]+")

// fieldClass names the staging slot the next committed text belongs to,
// according to the class marker seen most recently anywhere in the walk
type fieldClass int

const (
	fieldNone fieldClass = iota
	fieldTrainID
	fieldTrainType
	fieldArrivalTime
)

// walkState is threaded through the whole traversal of one document. Nothing
// in it is scoped to a subtree: the table counter and the pending field class
// persist across sibling and ancestor boundaries, exactly as a single mutable
// flag would. The page's markers are flat and strictly ordered, and the row
// texts may sit at a different nesting depth than the marker elements, so
// resetting any of this on leaving a subtree would lose rows.
type walkState struct {
	tableNo  int
	pending  fieldClass
	lastText string
	hasText  bool

	trainID    string
	hasTrainID bool
	trainType  string
	hasType    bool
	arrival    string
	hasArrival bool

	northbound []types.IncomingTrain
	southbound []types.IncomingTrain
}

// ExtractStatus parses one snapshot of a station's real-time departures page
// and returns the arrival board it encodes. The document is walked exactly
// once, in document order; rows appear in the returned Status in the order
// they appear on the page. Any row that fails to parse aborts the whole
// attempt, so callers get either a complete snapshot or an error, never a
// partial one. Callers are expected to discard a failed attempt and try again
// on their next poll.
func ExtractStatus(r io.Reader) (*types.Status, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, &DocumentError{Err: err}
	}
	if !utf8.Valid(content) {
		return nil, &DocumentError{Err: errors.New("page is not valid UTF-8")}
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return nil, &DocumentError{Err: err}
	}

	state := &walkState{
		northbound: []types.IncomingTrain{},
		southbound: []types.IncomingTrain{},
	}
	for _, root := range doc.Nodes {
		if err := walk(root, state); err != nil {
			return nil, err
		}
	}

	return &types.Status{
		Northbound: state.northbound,
		Southbound: state.southbound,
	}, nil
}

// walk visits one element (or the document root) and its subtree.
// Classification happens on the way in, the staging commit and the
// row-completion check on the way out, after all children were visited.
func walk(node *html.Node, state *walkState) error {
	if node.Type == html.ElementNode {
		for _, attr := range node.Attr {
			if attr.Key != "class" {
				continue
			}
			// The checks are independent: every suffix that matches
			// fires its effect, even if several match the same value.
			if strings.HasSuffix(attr.Val, classSubtable) {
				state.tableNo++
			}
			if strings.HasSuffix(attr.Val, classTrainID) {
				state.pending = fieldTrainID
			}
			if strings.HasSuffix(attr.Val, classTrainType) {
				state.pending = fieldTrainType
			}
			if strings.HasSuffix(attr.Val, classArrivalTime) {
				state.pending = fieldArrivalTime
			}
		}
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case html.TextNode:
			// Only the most recent text seen anywhere survives to
			// the commit step.
			state.lastText = child.Data
			state.hasText = true
		case html.ElementNode:
			if err := walk(child, state); err != nil {
				return err
			}
		}
	}

	if state.pending != fieldNone && state.hasText {
		switch state.pending {
		case fieldTrainID:
			state.trainID, state.hasTrainID = state.lastText, true
		case fieldTrainType:
			state.trainType, state.hasType = state.lastText, true
		case fieldArrivalTime:
			state.arrival, state.hasArrival = state.lastText, true
		}
		state.pending = fieldNone
		state.lastText, state.hasText = "", false
	}

	if state.hasTrainID && state.hasType && state.hasArrival {
		// The first subtable on the page is southbound, the second is
		// northbound, by fixed convention of the page layout. Rows
		// completing under any other table index are dropped.
		if state.tableNo == 1 || state.tableNo == 2 {
			train, err := buildTrain(state.trainID, state.trainType, state.arrival)
			if err != nil {
				return err
			}
			if state.tableNo == 1 {
				state.southbound = append(state.southbound, train)
			} else {
				state.northbound = append(state.northbound, train)
			}
		}
		state.trainID, state.hasTrainID = "", false
		state.trainType, state.hasType = "", false
		state.arrival, state.hasArrival = "", false
	}

	return nil
}

// buildTrain turns the three staged cell texts of a completed row into a
// typed record. A countdown label without any digits is not an error: the
// page uses labels like "Departed" there, and those become MinutesUnknown.
func buildTrain(id, label, arrival string) (types.IncomingTrain, error) {
	trainID, err := strconv.ParseUint(id, 10, 16)
	if err != nil {
		return types.IncomingTrain{}, &RowError{Field: FieldTrainID, Text: id, Err: err}
	}

	trainType, err := types.ClassifyTrainType(label)
	if err != nil {
		return types.IncomingTrain{}, &RowError{Field: FieldTrainType, Text: label, Err: err}
	}

	minutes := types.MinutesUnknown
	if run := digitRun.FindString(arrival); run != "" {
		parsed, err := strconv.ParseUint(run, 10, 16)
		if err != nil {
			return types.IncomingTrain{}, &RowError{Field: FieldArrivalTime, Text: arrival, Err: err}
		}
		minutes = uint16(parsed)
	}

	return types.IncomingTrain{
		ID:                   uint16(trainID),
		Type:                 trainType,
		MinutesTillDeparture: minutes,
	}, nil
}
