// Package converter is the main entry point for GTFS to GeoJSON conversion.
//
// This package provides the core mapping logic that turns a loaded GTFS
// feed snapshot into a GeoJSON feature collection: one point feature per
// stop, and at most one path feature per shape (or per route, when a
// route's trips carry no shape and the path is reconstructed as a straight
// line through the trip's stop sequence).
//
// # Usage
//
//	feed, _ := gtfs.Load("gtfs.zip")
//	fc, err := converter.New(feed).Convert()
//	if err != nil {
//	    // a referenced stop without coordinates aborts the conversion
//	}
//
// The resulting *geojson.FeatureCollection marshals to standard GeoJSON
// restricted to Point and LineString geometries. Serialization and output
// destinations live in the formatter package.
//
// # Thread Safety
//
// A Converter performs one single-threaded pass over the feed snapshot and
// owns its deduplication state for the duration of that pass. Converter
// instances are NOT safe for concurrent use; the underlying Feed is never
// mutated and can be shared across converters.
package converter
