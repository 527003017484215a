/*
Package gtfs provides GTFS static data loading into typed in-memory collections.

This package is data-source agnostic at its core - it accepts raw zip bytes,
a zip archive path, a directory of .txt files, or an HTTP(S) URL, and builds
an in-memory Feed. Records are decoded straight from the feed's CSV files.

# Basic Usage

Load from a path or URL:

	feed, err := gtfs.Load("gtfs.zip")
	if err != nil {
	    log.Fatal().Err(err).Msg("Failed to load GTFS")
	}

	stop := feed.Stops["stop_456"]
	route := feed.Routes["route_1"]

Load from raw bytes:

	// Fetch GTFS zip from your source (HTTP, MinIO, files, etc.)
	gtfsZipBytes := fetchGTFSFromYourSource()

	feed, err := gtfs.LoadFromBytes(gtfsZipBytes)

# Data Structure

The Feed provides keyed collections for:

- Stops (stop_id → name, description, optional code/parent/timezone, lat/lon)
- Routes (route_id → short name, long name, colors)
- Trips (trip_id → route_id, shape_id, ordered stop-time sequence)
- Shapes (shape_id → ordered list of lon/lat points)

Stop-time rows are grouped per trip and sorted by stop_sequence; shape rows
are grouped per shape and sorted by shape_pt_sequence. Unrecognized files in
the feed are skipped.

The loaded Feed is a read-only snapshot: nothing in this module mutates it
after Load returns, so it is safe for concurrent readers.
*/
package gtfs
