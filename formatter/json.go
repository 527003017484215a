package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/paulmach/orb/geojson"
)

// Marshal serializes a feature collection to GeoJSON bytes, indented when
// pretty is set.
func Marshal(fc *geojson.FeatureCollection, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(fc, "", "  ")
	}
	return json.Marshal(fc)
}

// WriteTo serializes fc and writes it to w followed by a trailing newline.
func WriteTo(w io.Writer, fc *geojson.FeatureCollection, pretty bool) error {
	b, err := Marshal(fc, pretty)
	if err != nil {
		return fmt.Errorf("encoding GeoJSON: %w", err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("writing GeoJSON: %w", err)
	}
	return nil
}

// WriteFile serializes fc and writes it to path.
func WriteFile(path string, fc *geojson.FeatureCollection, pretty bool) error {
	b, err := Marshal(fc, pretty)
	if err != nil {
		return fmt.Errorf("encoding GeoJSON: %w", err)
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
