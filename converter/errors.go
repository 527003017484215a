package converter

import "fmt"

// MissingCoordinateError reports a stop referenced by a trip's stop-time
// sequence that carries no coordinates while a straight-line path was being
// derived. It is fatal for the conversion; the caller decides whether to
// abort entirely or report and rerun with a fixed feed.
type MissingCoordinateError struct {
	TripID string
	StopID string
}

func (e *MissingCoordinateError) Error() string {
	return fmt.Sprintf("stop %q referenced by trip %q has no coordinates", e.StopID, e.TripID)
}
