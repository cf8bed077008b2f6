// Package render turns reconciled snapshot entries into operator output.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ihorchekh/sonic-utilities/internal/snapshot"
)

// Table writes the all-tunnel report.
//
//	NAME   RX_PKTS  RX_BYTES  RX_PPS   TX_PKTS  TX_BYTES  TX_PPS
//	Tun2   150      12000     3/s      50       4000      1/s
//	Tun10  N/A      N/A       N/A      0        0         0/s
func Table(w io.Writer, entries []snapshot.Entry) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.Style().Options.SeparateColumns = false
	tw.AppendHeader(table.Row{"Name", "RX_PKTS", "RX_BYTES", "RX_PPS", "TX_PKTS", "TX_BYTES", "TX_PPS"})
	for _, e := range entries {
		tw.AppendRow(table.Row{
			e.Name,
			e.Counters.RxPackets.String(),
			e.Counters.RxBytes.String(),
			rate(e.Rates.RxPps),
			e.Counters.TxPackets.String(),
			e.Counters.TxBytes.String(),
			rate(e.Rates.TxPps),
		})
	}
	tw.Render()
}

// JSON writes the full report, counters and all four rates per tunnel.
func JSON(w io.Writer, entries []snapshot.Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

// Single writes the one-tunnel report. With a previous snapshot the counters
// are diffed field by field; a tunnel absent from the previous snapshot falls
// back to raw values.
func Single(w io.Writer, name string, cur, prev *snapshot.Snapshot) {
	counters := cur.Counters[name]
	if prev != nil {
		if old, ok := prev.Counters[name]; ok {
			counters = snapshot.DiffCounters(counters, &old)
		}
	}
	fmt.Fprintf(w, "%s\n", name)
	fmt.Fprintf(w, "---------------------------\n")
	fmt.Fprintf(w, "        RX:\n")
	fmt.Fprintf(w, "        %10s packets\n", counters.RxPackets)
	fmt.Fprintf(w, "        %10s bytes\n", counters.RxBytes)
	fmt.Fprintf(w, "        TX:\n")
	fmt.Fprintf(w, "        %10s packets\n", counters.TxPackets)
	fmt.Fprintf(w, "        %10s bytes\n", counters.TxBytes)
}

func rate(v snapshot.Value) string {
	if v.IsNA() {
		return snapshot.NAPlaceholder
	}
	return v.String() + "/s"
}
