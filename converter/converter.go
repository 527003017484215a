package converter

import (
	"github.com/paulmach/orb/geojson"

	"github.com/theoremus-urban-solutions/gtfs-to-geojson/gtfs"
)

// Converter maps a GTFS feed snapshot to a GeoJSON feature collection.
type Converter struct {
	feed     *gtfs.Feed
	warnings *WarningAggregator
}

// New creates a converter over a loaded feed snapshot.
func New(feed *gtfs.Feed) *Converter {
	return &Converter{feed: feed, warnings: NewWarningAggregator()}
}

// Convert produces the feature collection: stop features first, then path
// features, each sub-list in its extraction order. The only failure mode is
// a straight-line fallback hitting a stop without coordinates; that aborts
// the conversion.
func (c *Converter) Convert() (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()
	fc.Features = append(fc.Features, c.extractStops()...)

	paths, err := c.extractTripPaths()
	if err != nil {
		return nil, err
	}
	fc.Features = append(fc.Features, paths...)

	c.warnings.LogAll()
	return fc, nil
}
