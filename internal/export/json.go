package export

import (
	"encoding/json"
	"io"

	"github.com/edgaromeroc/bioslurry-simulator/internal/metrics"
	"github.com/edgaromeroc/bioslurry-simulator/internal/reactor"
	"github.com/edgaromeroc/bioslurry-simulator/internal/sim"
)

// Document is the full JSON rendering of one run.
type Document struct {
	ID         string           `json:"id,omitempty"`
	Params     reactor.Params   `json:"params"`
	Steps      int              `json:"steps"`
	Summary    *metrics.Summary `json:"summary,omitempty"`
	Trajectory sim.Trajectory   `json:"trajectory"`
}

// WriteJSON writes doc indented, deriving Steps from the trajectory
// when unset.
func WriteJSON(w io.Writer, doc Document) error {
	if doc.Steps == 0 {
		doc.Steps = len(doc.Trajectory)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
