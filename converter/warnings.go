package converter

import (
	"github.com/rs/zerolog/log"
)

// Warning type constants
const (
	WarningUnknownRoute      = "unknown_route"
	WarningUnresolvedShape   = "unresolved_shape"
	WarningStopNoCoordinates = "stop_no_coordinates"
)

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects non-fatal data issues during conversion and
// outputs consolidated summaries instead of one log line per record.
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example ID
func (w *WarningAggregator) Add(warningType, exampleID string) {
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := w.warnings[warningType]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, exampleID)
	}
}

// LogAll outputs all collected warnings in consolidated form
func (w *WarningAggregator) LogAll() {
	for warningType, info := range w.warnings {
		var description, action string
		switch warningType {
		case WarningUnknownRoute:
			description = "trips referencing routes absent from the feed"
			action = "Emitted path features without route properties"
		case WarningUnresolvedShape:
			description = "trips declaring shape ids absent from the shapes table"
			action = "Emitted path features without geometry"
		case WarningStopNoCoordinates:
			description = "stops without coordinates"
			action = "Emitted stop features without geometry"
		default:
			description = "unknown issue"
			action = "Emitted features with fallback behavior"
		}
		log.Warn().
			Int("count", info.count).
			Strs("examples", info.examples).
			Msgf("Feed has %s. %s", description, action)
	}
}
