package gtfs

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()

	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)
	for name, content := range files {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func basicFiles() map[string]string {
	return map[string]string{
		"agency.txt": "agency_id,agency_name,agency_url,agency_timezone\nA1,Agency,http://example.com,Europe/Paris\n",
		"stops.txt": "stop_id,stop_code,stop_name,stop_desc,stop_lat,stop_lon,parent_station,stop_timezone,wheelchair_boarding\n" +
			"stop1,,Stop Area,,48.0,0.0,,,\n" +
			"stop2,0001,StopPoint,,47.0,1.0,stop1,Europe/Paris,2\n" +
			"stop3,,Floating,,,,,,\n",
		"routes.txt": "route_id,route_short_name,route_long_name,route_type,route_color,route_text_color\n" +
			"route1,100,Centre Ville,3,000000,FFFFFF\n" +
			"route2,7,,3,,\n",
		"trips.txt": "route_id,service_id,trip_id,shape_id\n" +
			"route1,S1,trip1,shape1\n" +
			"route2,S1,trip2,\n",
		// Rows deliberately out of sequence order.
		"stop_times.txt": "trip_id,arrival_time,departure_time,stop_id,stop_sequence\n" +
			"trip1,08:10:00,08:10:00,stop2,2\n" +
			"trip1,08:00:00,08:00:00,stop1,1\n" +
			"trip2,09:00:00,09:00:00,stop1,1\n",
		"shapes.txt": "shape_id,shape_pt_lat,shape_pt_lon,shape_pt_sequence\n" +
			"shape1,47.0,1.0,2\n" +
			"shape1,48.0,0.0,1\n" +
			"shape1,45.0,1.0,3\n",
		"feed_info.txt": "feed_publisher_name,feed_publisher_url,feed_lang\nPub,http://example.com,fr\n",
	}
}

func TestLoadFromBytes_Stops(t *testing.T) {
	feed, err := LoadFromBytes(buildZip(t, basicFiles()))
	require.NoError(t, err)
	require.Len(t, feed.Stops, 3)

	stop2 := feed.Stops["stop2"]
	require.NotNil(t, stop2)
	assert.Equal(t, "StopPoint", stop2.Name)
	assert.Equal(t, "0001", stop2.Code)
	assert.Equal(t, "stop1", stop2.ParentStation)
	assert.Equal(t, "Europe/Paris", stop2.Timezone)
	assert.Equal(t, AvailabilityNotAvailable, stop2.WheelchairBoarding)
	require.NotNil(t, stop2.Longitude)
	require.NotNil(t, stop2.Latitude)
	assert.Equal(t, 1.0, *stop2.Longitude)
	assert.Equal(t, 47.0, *stop2.Latitude)

	// Optional fields left empty stay absent.
	stop1 := feed.Stops["stop1"]
	require.NotNil(t, stop1)
	assert.Empty(t, stop1.Code)
	assert.Empty(t, stop1.ParentStation)
	assert.Empty(t, stop1.Timezone)
	assert.Equal(t, AvailabilityNoInformation, stop1.WheelchairBoarding)

	// A stop without coordinates keeps nil pointers rather than zeros.
	stop3 := feed.Stops["stop3"]
	require.NotNil(t, stop3)
	assert.Nil(t, stop3.Longitude)
	assert.Nil(t, stop3.Latitude)
}

func TestLoadFromBytes_RouteColors(t *testing.T) {
	feed, err := LoadFromBytes(buildZip(t, basicFiles()))
	require.NoError(t, err)

	route1 := feed.Routes["route1"]
	require.NotNil(t, route1)
	assert.Equal(t, Black, route1.Color)
	assert.Equal(t, White, route1.TextColor)

	// Missing colors take the GTFS defaults.
	route2 := feed.Routes["route2"]
	require.NotNil(t, route2)
	assert.Equal(t, White, route2.Color)
	assert.Equal(t, Black, route2.TextColor)
}

func TestLoadFromBytes_StopTimesSortedBySequence(t *testing.T) {
	feed, err := LoadFromBytes(buildZip(t, basicFiles()))
	require.NoError(t, err)

	trip1 := feed.Trips["trip1"]
	require.NotNil(t, trip1)
	assert.Equal(t, []StopTime{
		{StopID: "stop1", Sequence: 1},
		{StopID: "stop2", Sequence: 2},
	}, trip1.StopTimes)
}

func TestLoadFromBytes_ShapePointsSortedBySequence(t *testing.T) {
	feed, err := LoadFromBytes(buildZip(t, basicFiles()))
	require.NoError(t, err)

	assert.Equal(t, []ShapePoint{
		{Longitude: 0, Latitude: 48},
		{Longitude: 1, Latitude: 47},
		{Longitude: 1, Latitude: 45},
	}, feed.Shapes["shape1"])
}

func TestLoadFromBytes_EmptyShapesClearsTripShapeIDs(t *testing.T) {
	files := basicFiles()
	files["shapes.txt"] = "shape_id,shape_pt_lat,shape_pt_lon,shape_pt_sequence\n"

	feed, err := LoadFromBytes(buildZip(t, files))
	require.NoError(t, err)

	assert.Empty(t, feed.Shapes)
	assert.Empty(t, feed.Trips["trip1"].ShapeID)
}

func TestLoadFromBytes_DanglingShapeIDSurvivesNonEmptyTable(t *testing.T) {
	files := basicFiles()
	files["trips.txt"] = "route_id,service_id,trip_id,shape_id\nroute1,S1,trip1,ghost\n"

	feed, err := LoadFromBytes(buildZip(t, files))
	require.NoError(t, err)

	assert.Equal(t, "ghost", feed.Trips["trip1"].ShapeID)
	assert.NotContains(t, feed.Shapes, "ghost")
}

func TestLoad_Directory(t *testing.T) {
	dir := t.TempDir()
	for name, content := range basicFiles() {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}

	feed, err := Load(dir)
	require.NoError(t, err)
	assert.Len(t, feed.Stops, 3)
	assert.Len(t, feed.Routes, 2)
	assert.Len(t, feed.Trips, 2)
	assert.Len(t, feed.Shapes, 1)
}

func TestLoad_ZipFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gtfs.zip")
	require.NoError(t, os.WriteFile(path, buildZip(t, basicFiles()), 0644))

	feed, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, feed.Stops, 3)
}

func TestLoad_MissingPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.zip"))
	assert.Error(t, err)
}
