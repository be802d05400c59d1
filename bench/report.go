// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

// WriteTable prints one row per (scenario, algorithm) with the average wall
// time per run and the relaxation work, followed by the mean total distance
// of each scenario.
func WriteTable(w io.Writer, reports []Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SCENARIO\tALGORITHM\tV\tRUNS\tAVG\tPHASES\tADVANCES\tRELAXATIONS\tIMPROVEMENTS")
	for _, rep := range reports {
		for _, a := range rep.Algorithms {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%d\t%d\t%d\t%d\n",
				rep.Scenario, a.Algorithm, rep.Vertices, a.Runs,
				a.Average().Round(time.Microsecond),
				a.Phases, a.BucketAdvances, a.Relaxations, a.Improvements)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, rep := range reports {
		if len(rep.TotalDistances) == 0 {
			continue
		}
		var sum int64
		for _, d := range rep.TotalDistances {
			sum += d
		}
		if _, err := fmt.Fprintf(w, "%s: mean total distance %d over %d loops\n",
			rep.Scenario, sum/int64(len(rep.TotalDistances)), len(rep.TotalDistances)); err != nil {
			return err
		}
	}

	return nil
}
