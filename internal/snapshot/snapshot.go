package snapshot

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"
)

// CounterSet holds the four raw traffic counters of one tunnel.
type CounterSet struct {
	RxBytes   Value `json:"rx_bytes"`
	RxPackets Value `json:"rx_packets"`
	TxBytes   Value `json:"tx_bytes"`
	TxPackets Value `json:"tx_packets"`
}

// RateSet holds the four current traffic rates of one tunnel. Rates are always
// point-in-time readings and are never diffed against a previous snapshot.
type RateSet struct {
	RxBps Value `json:"rx_bps"`
	RxPps Value `json:"rx_pps"`
	TxBps Value `json:"tx_bps"`
	TxPps Value `json:"tx_pps"`
}

// Snapshot is a point-in-time capture of counters and rates for a set of
// tunnels. Names carries the tunnel names in natural sort order; Counters and
// Rates are keyed by tunnel name. A Snapshot is never mutated after the
// builder returns it.
type Snapshot struct {
	Time     time.Time             `json:"time"`
	Names    []string              `json:"names"`
	Counters map[string]CounterSet `json:"counters"`
	Rates    map[string]RateSet    `json:"rates"`
}

// New returns an empty snapshot stamped with the capture instant.
func New(at time.Time) *Snapshot {
	return &Snapshot{
		Time:     at,
		Counters: make(map[string]CounterSet),
		Rates:    make(map[string]RateSet),
	}
}

// Add records one tunnel's readings. Names keeps insertion order; the builder
// inserts in natural sort order.
func (s *Snapshot) Add(name string, c CounterSet, r RateSet) {
	if _, dup := s.Counters[name]; !dup {
		s.Names = append(s.Names, name)
	}
	s.Counters[name] = c
	s.Rates[name] = r
}

// Handle identifies one persisted snapshot: the owning user plus an optional
// tag so a user can keep several named baselines side by side.
type Handle struct {
	UID int
	Tag string
}

// Dir returns the per-user snapshot directory under base.
func (h Handle) Dir(base string) string {
	return filepath.Join(base, fmt.Sprintf("tunnelstat-%d", h.UID))
}

// Path returns the snapshot file location under base.
func (h Handle) Path(base string) string {
	name := strconv.Itoa(h.UID)
	if h.Tag != "" {
		name += "-" + h.Tag
	}
	return filepath.Join(h.Dir(base), name)
}
