package gtfs

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
)

// Raw CSV rows. Coordinates stay strings so an empty cell can be told apart
// from a zero value.
type stopRow struct {
	ID            string `csv:"stop_id"`
	Code          string `csv:"stop_code"`
	Name          string `csv:"stop_name"`
	Description   string `csv:"stop_desc"`
	Latitude      string `csv:"stop_lat"`
	Longitude     string `csv:"stop_lon"`
	ParentStation string `csv:"parent_station"`
	Timezone      string `csv:"stop_timezone"`
	Wheelchair    string `csv:"wheelchair_boarding"`
}

type routeRow struct {
	ID         string `csv:"route_id"`
	ShortName  string `csv:"route_short_name"`
	LongName   string `csv:"route_long_name"`
	Colour     string `csv:"route_color"`
	TextColour string `csv:"route_text_color"`
}

type tripRow struct {
	RouteID string `csv:"route_id"`
	ID      string `csv:"trip_id"`
	ShapeID string `csv:"shape_id"`
}

type stopTimeRow struct {
	TripID       string `csv:"trip_id"`
	StopID       string `csv:"stop_id"`
	StopSequence int    `csv:"stop_sequence"`
}

type shapeRow struct {
	ID             string  `csv:"shape_id"`
	PointLatitude  float64 `csv:"shape_pt_lat"`
	PointLongitude float64 `csv:"shape_pt_lon"`
	PointSequence  int     `csv:"shape_pt_sequence"`
}

// loader accumulates rows across files; a zip's file order is arbitrary so
// stop_times and shapes can only be attached once every file is consumed.
type loader struct {
	feed      *Feed
	stopTimes []stopTimeRow
	shapes    []shapeRow
}

func newLoader() *loader {
	// Allow us to ignore those naughty records that have missing columns
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.FieldsPerRecord = -1
		return r
	})
	return &loader{feed: newFeed()}
}

// Load reads a GTFS feed from a zip archive path, a directory of .txt
// files, or an http(s) URL pointing at a zip archive.
func Load(path string) (*Feed, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return loadURL(path)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return loadDir(path)
	}
	return loadZipFile(path)
}

// LoadFromBytes reads a GTFS feed from raw zip bytes.
func LoadFromBytes(b []byte) (*Feed, error) {
	zr, err := zip.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return nil, fmt.Errorf("opening GTFS zip: %w", err)
	}
	l := newLoader()
	if err := l.consumeZip(zr); err != nil {
		return nil, err
	}
	return l.finalize(), nil
}

func loadURL(url string) (*Feed, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return LoadFromBytes(b)
}

func loadZipFile(path string) (*Feed, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening GTFS zip: %w", err)
	}
	defer func() { _ = zr.Close() }()
	l := newLoader()
	if err := l.consumeZip(&zr.Reader); err != nil {
		return nil, err
	}
	return l.finalize(), nil
}

func loadDir(path string) (*Feed, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	l := newLoader()
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		file, err := os.Open(filepath.Join(path, entry.Name()))
		if err != nil {
			return nil, err
		}
		err = l.consume(entry.Name(), file)
		_ = file.Close()
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", entry.Name(), err)
		}
	}
	return l.finalize(), nil
}

func (l *loader) consumeZip(zr *zip.Reader) error {
	for _, zipFile := range zr.File {
		file, err := zipFile.Open()
		if err != nil {
			return fmt.Errorf("opening %s: %w", zipFile.Name, err)
		}
		err = l.consume(zipFile.Name, file)
		_ = file.Close()
		if err != nil {
			return fmt.Errorf("parsing %s: %w", zipFile.Name, err)
		}
	}
	return nil
}

func (l *loader) consume(name string, r io.Reader) error {
	switch strings.ToLower(filepath.Base(name)) {
	case "stops.txt":
		var rows []stopRow
		if err := unmarshalRows(r, &rows); err != nil {
			return err
		}
		for _, row := range rows {
			l.feed.Stops[row.ID] = &Stop{
				ID:                 row.ID,
				Name:               row.Name,
				Description:        row.Description,
				Code:               row.Code,
				ParentStation:      row.ParentStation,
				Timezone:           row.Timezone,
				Longitude:          parseCoordinate(row.Longitude),
				Latitude:           parseCoordinate(row.Latitude),
				WheelchairBoarding: ParseAvailability(row.Wheelchair),
			}
		}
	case "routes.txt":
		var rows []routeRow
		if err := unmarshalRows(r, &rows); err != nil {
			return err
		}
		for _, row := range rows {
			l.feed.Routes[row.ID] = &Route{
				ID:        row.ID,
				ShortName: row.ShortName,
				LongName:  row.LongName,
				Color:     ParseColor(row.Colour, White),
				TextColor: ParseColor(row.TextColour, Black),
			}
		}
	case "trips.txt":
		var rows []tripRow
		if err := unmarshalRows(r, &rows); err != nil {
			return err
		}
		for _, row := range rows {
			l.feed.Trips[row.ID] = &Trip{
				ID:      row.ID,
				RouteID: row.RouteID,
				ShapeID: row.ShapeID,
			}
		}
	case "stop_times.txt":
		var rows []stopTimeRow
		if err := unmarshalRows(r, &rows); err != nil {
			return err
		}
		l.stopTimes = append(l.stopTimes, rows...)
	case "shapes.txt":
		var rows []shapeRow
		if err := unmarshalRows(r, &rows); err != nil {
			return err
		}
		l.shapes = append(l.shapes, rows...)
	default:
		log.Debug().Str("file", name).Msg("Skipping feed file")
	}
	return nil
}

// finalize attaches the grouped stop-time and shape rows to the feed in
// sequence order. Trips keep their declared shape id only while at least
// one shape exists to resolve against; with an empty shapes table the
// declaration is meaningless and the straight-line fallback applies.
func (l *loader) finalize() *Feed {
	grouped := map[string][]StopTime{}
	for _, row := range l.stopTimes {
		grouped[row.TripID] = append(grouped[row.TripID], StopTime{StopID: row.StopID, Sequence: row.StopSequence})
	}
	for tripID, stopTimes := range grouped {
		trip, ok := l.feed.Trips[tripID]
		if !ok {
			continue
		}
		sort.SliceStable(stopTimes, func(i, j int) bool { return stopTimes[i].Sequence < stopTimes[j].Sequence })
		trip.StopTimes = stopTimes
	}

	pointRows := map[string][]shapeRow{}
	for _, row := range l.shapes {
		pointRows[row.ID] = append(pointRows[row.ID], row)
	}
	for shapeID, rows := range pointRows {
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].PointSequence < rows[j].PointSequence })
		points := make([]ShapePoint, len(rows))
		for i, row := range rows {
			points[i] = ShapePoint{Longitude: row.PointLongitude, Latitude: row.PointLatitude}
		}
		l.feed.Shapes[shapeID] = points
	}

	if len(l.feed.Shapes) == 0 {
		for _, trip := range l.feed.Trips {
			trip.ShapeID = ""
		}
	}
	return l.feed
}

func unmarshalRows(r io.Reader, out any) error {
	err := gocsv.Unmarshal(r, out)
	if err != nil && errors.Is(err, gocsv.ErrEmptyCSVFile) {
		return nil
	}
	return err
}

func parseCoordinate(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
