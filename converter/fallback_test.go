package converter

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/gtfs-to-geojson/gtfs"
)

// emptyShapesZip builds a feed whose trips declare a shape id while the
// shapes table has no entries at all.
func emptyShapesZip(t *testing.T) []byte {
	t.Helper()

	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)

	files := map[string]string{
		"agency.txt": "agency_id,agency_name,agency_url,agency_timezone\nA1,Agency,http://example.com,Europe/Paris\n",
		"stops.txt":  "stop_id,stop_name,stop_lat,stop_lon\nstop1,First,47.0,1.0\nstop2,Second,45.0,1.0\n",
		"routes.txt": "route_id,route_short_name,route_long_name,route_type,route_color,route_text_color\nroute1,100,100,3,000000,FFFFFF\n",
		"trips.txt":  "route_id,service_id,trip_id,shape_id\nroute1,S1,trip1,shape1\n",
		"stop_times.txt": "trip_id,arrival_time,departure_time,stop_id,stop_sequence\n" +
			"trip1,08:00:00,08:00:00,stop1,1\ntrip1,08:10:00,08:10:00,stop2,2\n",
		"shapes.txt": "shape_id,shape_pt_lat,shape_pt_lon,shape_pt_sequence\n",
	}
	for name, content := range files {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestConvert_EmptyShapesFileGeneratesLineGeometries(t *testing.T) {
	feed, err := gtfs.LoadFromBytes(emptyShapesZip(t))
	require.NoError(t, err)

	fc, err := New(feed).Convert()
	require.NoError(t, err)

	feature := findByProperty(fc.Features, "route_id", "route1")
	require.NotNil(t, feature)

	b, err := json.Marshal(feature.Geometry)
	require.NoError(t, err)
	assert.JSONEq(t, `[[1.0, 47.0], [1.0, 45.0]]`, string(b))
}
