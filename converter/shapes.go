package converter

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/theoremus-urban-solutions/gtfs-to-geojson/gtfs"
)

// pathKind tags a deduplication key with its identity domain. Shape ids and
// route ids live in separate namespaces, so a shape id that happens to
// equal a route id must not suppress the other's feature.
type pathKind int

const (
	pathShape pathKind = iota
	pathRoute
)

type pathKey struct {
	kind pathKind
	id   string
}

// extractTripPaths emits at most one path feature per path identity: the
// trip's shape id when it declares one, otherwise its route id. Trips whose
// identity was already emitted are skipped.
func (c *Converter) extractTripPaths() ([]*geojson.Feature, error) {
	emitted := map[pathKey]struct{}{}
	var features []*geojson.Feature
	for _, trip := range c.feed.Trips {
		key := pathKey{kind: pathShape, id: trip.ShapeID}
		if trip.ShapeID == "" {
			key = pathKey{kind: pathRoute, id: trip.RouteID}
		}
		if _, done := emitted[key]; done {
			continue
		}
		emitted[key] = struct{}{}

		if trip.ShapeID != "" {
			features = append(features, c.shapeFeature(trip))
			continue
		}
		feature, err := c.straightLineFeature(trip)
		if err != nil {
			return nil, err
		}
		features = append(features, feature)
	}
	return features, nil
}

// shapeFeature builds a LineString from the shape's stored point order. No
// reordering, no deduplication of consecutive points, no minimum-point
// validation; a shape id with no entry in the shapes table yields a
// geometry-less feature.
func (c *Converter) shapeFeature(trip *gtfs.Trip) *geojson.Feature {
	properties := c.routeProperties(trip.RouteID)

	points, ok := c.feed.Shapes[trip.ShapeID]
	if !ok {
		c.warnings.Add(WarningUnresolvedShape, trip.ShapeID)
		return &geojson.Feature{Type: "Feature", Properties: properties}
	}

	line := make(orb.LineString, len(points))
	for i, point := range points {
		line[i] = orb.Point{point.Longitude, point.Latitude}
	}
	feature := geojson.NewFeature(line)
	feature.Properties = properties
	return feature
}

// straightLineFeature reconstructs a trip's path through its stop sequence.
// Every referenced stop must carry coordinates; a gap here is a data
// integrity failure, not a skippable record.
func (c *Converter) straightLineFeature(trip *gtfs.Trip) (*geojson.Feature, error) {
	line := make(orb.LineString, 0, len(trip.StopTimes))
	for _, stopTime := range trip.StopTimes {
		stop, ok := c.feed.Stops[stopTime.StopID]
		if !ok || stop.Longitude == nil || stop.Latitude == nil {
			return nil, &MissingCoordinateError{TripID: trip.ID, StopID: stopTime.StopID}
		}
		line = append(line, orb.Point{*stop.Longitude, *stop.Latitude})
	}
	feature := geojson.NewFeature(line)
	feature.Properties = c.routeProperties(trip.RouteID)
	return feature, nil
}
