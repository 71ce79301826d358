package main

import "fmt"

// Distance modes selectable by the caller. The names describe the desired
// display: "oneway" halves a round-trip raw value so the output is one-way,
// "twoway" keeps the raw value as-is.
const (
	ModeAuto   = "auto"
	ModeOneWay = "oneway"
	ModeTwoWay = "twoway"
)

// Round-trip encoding is the more common raw format, so halving is the
// safer fallback when the heuristic cannot decide.
const defaultDistanceFactor = 0.5

// fval reads an optional numeric field; absent means 0.0.
func fval(p *float64) float64 {
	if p == nil {
		return 0.0
	}
	return *p
}

// AutoDistanceFactor picks the scale that maps raw event distances to
// one-way fiber distance. When max(event distance) / fiber_length is ~2 the
// device reports round-trip and the factor is 0.5; ~1 means the distances
// are one-way already. Anything else falls back to the default.
func AutoDistanceFactor(blocks *Blocks) float64 {
	if blocks == nil || blocks.KeyEvents == nil {
		return defaultDistanceFactor
	}
	ke := blocks.KeyEvents

	maxEv := 0.0
	for _, e := range ke.Events {
		if d := fval(e.DistanceOfTravel); d > maxEv {
			maxEv = d
		}
	}

	if fl := fval(ke.FiberLength); fl != 0 && maxEv != 0 {
		r := maxEv / fl
		if 1.7 < r && r < 2.3 {
			return 0.5
		}
		if 0.85 < r && r < 1.15 {
			return 1.0
		}
	}
	return defaultDistanceFactor
}

// ResolveDistanceFactor maps the caller-selected mode to a factor,
// consulting the heuristic only for ModeAuto.
func ResolveDistanceFactor(mode string, blocks *Blocks) (float64, error) {
	switch mode {
	case ModeTwoWay:
		return 1.0, nil
	case ModeOneWay:
		return 0.5, nil
	case ModeAuto:
		return AutoDistanceFactor(blocks), nil
	}
	return 0, fmt.Errorf("unknown distance mode %q", mode)
}

// tableState is the accumulator carried across the event scan: the previous
// row's calibrated distance and the running loss total.
type tableState struct {
	prevDistM float64
	cumLossDB float64
}

// step derives the row for one event and advances the accumulator. The
// relative distance is clamped at zero when the corrected ordering
// regresses; the previous distance still advances to this row's distance so
// one out-of-order event does not skew every later row.
func (s tableState) step(e Event, factor float64) (tableState, EventRow) {
	distM := fval(e.DistanceOfTravel) * factor
	relM := distM - s.prevDistM
	if relM < 0 {
		relM = 0.0
	}

	slope := fval(e.Slope)
	eventLoss := fval(e.SpliceLoss)
	sectionLoss := slope * (relM / 1000.0)
	cum := s.cumLossDB + eventLoss + sectionLoss

	row := EventRow{
		EventNumber:      e.EventNumber,
		DistanceM:        distM,
		RelDistanceM:     relM,
		EventLossDB:      eventLoss,
		SlopeDBPerKM:     slope,
		SectionLossDB:    sectionLoss,
		CumulativeLossDB: cum,
		ReflectanceDB:    fval(e.ReflectionLoss),
		EventType:        e.EventType,
		Comment:          e.Comment,
	}
	if etd := e.EventTypeDetails; etd != nil {
		row.Event = etd.Event
		row.Note = etd.Note
	}

	return tableState{prevDistM: distM, cumLossDB: cum}, row
}

// BuildEventTable walks the decoded events in their given order and derives
// one row per event. The scan is strictly sequential: each row depends on
// the previous row's distance and running total.
func BuildEventTable(blocks *Blocks, factor float64) []EventRow {
	if blocks == nil || blocks.KeyEvents == nil || len(blocks.KeyEvents.Events) == 0 {
		return nil
	}

	events := blocks.KeyEvents.Events
	rows := make([]EventRow, 0, len(events))
	var st tableState
	for _, e := range events {
		var row EventRow
		st, row = st.step(e, factor)
		rows = append(rows, row)
	}
	return rows
}

// Summarize derives fiber length and loss totals from the decoded blocks
// and the built rows. A device-reported total_loss wins over the running
// sum; everything degrades to zeros/nil on missing data.
func Summarize(blocks *Blocks, rows []EventRow) Summary {
	var sum Summary

	if len(rows) > 0 {
		sum.FiberLengthM = rows[0].DistanceM
		for _, r := range rows[1:] {
			if r.DistanceM > sum.FiberLengthM {
				sum.FiberLengthM = r.DistanceM
			}
		}
	}

	var ke *KeyEventsBlock
	if blocks != nil {
		ke = blocks.KeyEvents
	}
	if ke != nil && ke.TotalLoss != nil {
		sum.TotalLossDB = *ke.TotalLoss
	} else if len(rows) > 0 {
		sum.TotalLossDB = rows[len(rows)-1].CumulativeLossDB
	}

	sum.FiberLengthKM = sum.FiberLengthM / 1000.0
	if sum.FiberLengthKM > 0 {
		avg := sum.TotalLossDB / sum.FiberLengthKM
		sum.AvgAttDBPerKM = &avg
	}

	if ke != nil && ke.OpticalReturnLoss != nil {
		orl := *ke.OpticalReturnLoss
		sum.OpticalReturnLossDB = &orl
	}
	return sum
}
