// Package export renders a finished run for downstream tools: a fixed
// CSV schema, an indented JSON document, and time-series charts.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/edgaromeroc/bioslurry-simulator/internal/sim"
)

// CSVColumns is the stable column order of WriteCSV. Downstream
// notebooks key on these names.
var CSVColumns = []string{"time_h", "time_d", "aqueous", "sorbed", "metabolite", "biomass", "removal_pct"}

// WriteCSV writes one row per snapshot with six-decimal values.
func WriteCSV(w io.Writer, traj sim.Trajectory) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVColumns); err != nil {
		return err
	}

	for _, s := range traj {
		row := []string{
			strconv.FormatFloat(s.TimeHours, 'f', 6, 64),
			strconv.FormatFloat(s.TimeDays, 'f', 6, 64),
			strconv.FormatFloat(s.Aqueous, 'f', 6, 64),
			strconv.FormatFloat(s.Sorbed, 'f', 6, 64),
			strconv.FormatFloat(s.AMPA, 'f', 6, 64),
			strconv.FormatFloat(s.Biomass, 'f', 6, 64),
			strconv.FormatFloat(s.Removal, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
