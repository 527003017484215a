package converter

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// extractStops maps every stop to a point feature. A stop without
// coordinates still yields a feature, just without geometry. Optional
// fields are only written into the property map when the feed carries
// them; description is always present in GTFS and is emitted even when
// empty.
func (c *Converter) extractStops() []*geojson.Feature {
	features := make([]*geojson.Feature, 0, len(c.feed.Stops))
	for _, stop := range c.feed.Stops {
		var feature *geojson.Feature
		if stop.Longitude != nil && stop.Latitude != nil {
			feature = geojson.NewFeature(orb.Point{*stop.Longitude, *stop.Latitude})
		} else {
			feature = &geojson.Feature{Type: "Feature", Properties: geojson.Properties{}}
			c.warnings.Add(WarningStopNoCoordinates, stop.ID)
		}

		feature.Properties["name"] = stop.Name
		feature.Properties["id"] = stop.ID
		feature.Properties["description"] = stop.Description
		if stop.Code != "" {
			feature.Properties["code"] = stop.Code
		}
		if stop.ParentStation != "" {
			feature.Properties["parent_station"] = stop.ParentStation
		}
		if stop.Timezone != "" {
			feature.Properties["timezone"] = stop.Timezone
		}
		feature.Properties["wheelchair_boarding"] = stop.WheelchairBoarding.String()

		features = append(features, feature)
	}
	return features
}
