package main

import (
	"encoding/csv"
	"os"
	"strconv"
)

// Column order matches the viewer table and is stable across runs.
var csvHeader = []string{
	"event_number",
	"distance_m",
	"rel_distance_m",
	"event_loss_db",
	"slope_db_per_km",
	"section_loss_db",
	"cumulative_loss_db",
	"reflectance_db",
	"event_type",
	"event",
	"note",
	"comment",
}

// WriteCSV writes one record per event row. An empty table writes nothing
// and creates no file.
func WriteCSV(rows []EventRow, path string) error {
	if len(rows) == 0 {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	w.Write(csvHeader)
	for _, r := range rows {
		w.Write([]string{
			intCell(r.EventNumber),
			floatCell(r.DistanceM),
			floatCell(r.RelDistanceM),
			floatCell(r.EventLossDB),
			floatCell(r.SlopeDBPerKM),
			floatCell(r.SectionLossDB),
			floatCell(r.CumulativeLossDB),
			floatCell(r.ReflectanceDB),
			r.EventType,
			r.Event,
			r.Note,
			r.Comment,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func floatCell(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func intCell(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}
