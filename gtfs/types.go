package gtfs

import (
	"fmt"
	"strconv"
	"strings"
)

// Availability is the GTFS wheelchair_boarding code for a stop. The three
// defined codes map to human readable strings; any other code is kept
// verbatim and stringified as-is.
type Availability int

const (
	AvailabilityNoInformation Availability = 0
	AvailabilityAvailable     Availability = 1
	AvailabilityNotAvailable  Availability = 2
)

// ParseAvailability reads a raw wheelchair_boarding cell. An empty or
// non-numeric cell means no information.
func ParseAvailability(raw string) Availability {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return AvailabilityNoInformation
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return AvailabilityNoInformation
	}
	return Availability(n)
}

func (a Availability) String() string {
	switch a {
	case AvailabilityNoInformation:
		return "unknown"
	case AvailabilityAvailable:
		return "available"
	case AvailabilityNotAvailable:
		return "not available"
	default:
		return strconv.Itoa(int(a))
	}
}

// RGB is a route color normalized from the GTFS RRGGBB hex form.
type RGB struct {
	R, G, B uint8
}

var (
	White = RGB{R: 255, G: 255, B: 255}
	Black = RGB{}
)

// ParseColor reads a GTFS hex color cell. Absent or malformed cells take
// the fallback (GTFS defaults route_color to white and route_text_color
// to black).
func ParseColor(raw string, fallback RGB) RGB {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "#")
	if len(raw) != 6 {
		return fallback
	}
	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return fallback
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// Stop is a stop or station record. Code, ParentStation and Timezone are
// optional; an empty string means the field was absent from the feed.
// Coordinates are nil when the stop carries none.
type Stop struct {
	ID                 string
	Name               string
	Description        string
	Code               string
	ParentStation      string
	Timezone           string
	Longitude          *float64
	Latitude           *float64
	WheelchairBoarding Availability
}

// Route is a route record with its display colors already normalized.
type Route struct {
	ID        string
	ShortName string
	LongName  string
	Color     RGB
	TextColor RGB
}

// StopTime binds a trip to a stop at a sequence position.
type StopTime struct {
	StopID   string
	Sequence int
}

// Trip is a trip record with its stop-time sequence in stop_sequence order.
// ShapeID is empty when the trip declares no shape.
type Trip struct {
	ID        string
	RouteID   string
	ShapeID   string
	StopTimes []StopTime
}

// ShapePoint is one point of a shape's path.
type ShapePoint struct {
	Longitude float64
	Latitude  float64
}

// Feed is the loaded GTFS snapshot: keyed collections of stops, routes and
// trips, plus shape point lists in shape_pt_sequence order.
type Feed struct {
	Stops  map[string]*Stop
	Routes map[string]*Route
	Trips  map[string]*Trip
	Shapes map[string][]ShapePoint
}

func newFeed() *Feed {
	return &Feed{
		Stops:  map[string]*Stop{},
		Routes: map[string]*Route{},
		Trips:  map[string]*Trip{},
		Shapes: map[string][]ShapePoint{},
	}
}
