package formatter

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCollection() *geojson.FeatureCollection {
	feature := geojson.NewFeature(orb.Point{1, 47})
	feature.Properties["id"] = "stop1"
	fc := geojson.NewFeatureCollection()
	fc.Append(feature)
	return fc
}

func TestWriteTo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTo(&buf, sampleCollection(), false))

	assert.JSONEq(t, `{
		"type": "FeatureCollection",
		"features": [{
			"type": "Feature",
			"geometry": {"type": "Point", "coordinates": [1.0, 47.0]},
			"properties": {"id": "stop1"}
		}]
	}`, buf.String())
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestWriteTo_Pretty(t *testing.T) {
	var compact, pretty bytes.Buffer
	require.NoError(t, WriteTo(&compact, sampleCollection(), false))
	require.NoError(t, WriteTo(&pretty, sampleCollection(), true))

	assert.JSONEq(t, compact.String(), pretty.String())
	assert.Contains(t, pretty.String(), "\n  ")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.geojson")
	require.NoError(t, WriteFile(path, sampleCollection(), false))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"FeatureCollection"`)
}
