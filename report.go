package main

import (
	"fmt"
	"strconv"
)

// PrintReport prints the run summary and the first rowLimit event rows, the
// same figures the reference viewer shows in its table.
func PrintReport(name string, factor float64, rows []EventRow, sum Summary, rowLimit int) {
	fmt.Printf("\nFile: %s\n", name)
	fmt.Printf("Distance factor: %g  (1.0=raw kept, 0.5=round-trip halved)\n", factor)
	fmt.Printf("Fiber length: %.2f m  (%.4f km)\n", sum.FiberLengthM, sum.FiberLengthKM)
	fmt.Printf("Total loss:   %.3f dB\n", sum.TotalLossDB)
	if sum.AvgAttDBPerKM != nil {
		fmt.Printf("Avg attenuation: %.3f dB/km\n", *sum.AvgAttDBPerKM)
	}
	if sum.OpticalReturnLossDB != nil {
		fmt.Printf("ORL: %.3f dB\n", *sum.OpticalReturnLossDB)
	}

	if len(rows) == 0 {
		return
	}
	n := rowLimit
	if n > len(rows) {
		n = len(rows)
	}
	fmt.Printf("\nEvents (first %d):\n", n)
	for _, r := range rows[:n] {
		num := "-"
		if r.EventNumber != nil {
			num = strconv.Itoa(*r.EventNumber)
		}
		fmt.Printf("  #%s: %.2f m | loss=%.3f dB | slope=%.3f dB/km | section=%.3f dB | cum=%.3f dB | refl=%.2f dB\n",
			num, r.DistanceM, r.EventLossDB, r.SlopeDBPerKM, r.SectionLossDB, r.CumulativeLossDB, r.ReflectanceDB)
	}
}
