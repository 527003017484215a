package converter

import (
	"github.com/paulmach/orb/geojson"
)

// routeProperties returns the descriptive property set for a route. An
// unknown route id yields nil; the caller still emits its feature, just
// without route properties.
func (c *Converter) routeProperties(routeID string) geojson.Properties {
	route, ok := c.feed.Routes[routeID]
	if !ok {
		c.warnings.Add(WarningUnknownRoute, routeID)
		return nil
	}
	return geojson.Properties{
		"route_id":         route.ID,
		"route_short_name": route.ShortName,
		"route_long_name":  route.LongName,
		"route_color":      route.Color.String(),
		"route_text_color": route.TextColor.String(),
	}
}
