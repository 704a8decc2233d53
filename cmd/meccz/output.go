package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"meccz.org/internal/geo"
)

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeError(w io.Writer, asJSON bool, err error) {
	if asJSON {
		_ = writeJSON(w, map[string]string{"error": err.Error()})
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

func writeQibla(w io.Writer, result geo.QiblaResult) error {
	_, err := fmt.Fprintf(w,
		"Direction to Mecca:\nBearing: %.2f° from North\nDirection: %s\nDistance: %.0f km\n",
		result.Bearing, result.Direction, result.DistanceKm)
	return err
}

// writeCompassTable prints the table with the shortest routes first. The
// table itself keeps clockwise order; only the display is sorted.
func writeCompassTable(w io.Writer, table geo.CompassTable) error {
	entries := make([]geo.CompassEntry, len(table.Entries))
	copy(entries, table.Entries)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ShortPathDistanceKm < entries[j].ShortPathDistanceKm
	})

	fmt.Fprintf(w, "Location: %.4f, %.4f\n", table.Location.Lat, table.Location.Lon)
	fmt.Fprintf(w, "Qibla Direction: %.1f°\n", table.QiblaBearing)
	fmt.Fprintf(w, "Direct Distance to Mecca: %.0f km\n\n", table.DirectDistanceKm)
	fmt.Fprintln(w, "Compass Direction Table - Distances to Mecca via Each Direction")
	fmt.Fprintln(w, strings.Repeat("=", 64))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Direction\tBearing\tDiff°\tShort Path\tLong Path\tOptimal")
	for _, e := range entries {
		marker := ""
		if e.IsOptimalDirection {
			marker = "*"
		}
		fmt.Fprintf(tw, "%s\t%.1f°\t%.1f°\t%.0f\t%.0f\t%s\n",
			e.Direction, e.Bearing, e.AngularDifference, e.ShortPathDistanceKm, e.LongPathDistanceKm, marker)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "* = Closest compass direction to actual Qibla bearing")
	fmt.Fprintln(w, "Short Path = Distance if traveling in this direction")
	_, err := fmt.Fprintln(w, "Long Path = Distance if traveling the opposite way around the world")
	return err
}
