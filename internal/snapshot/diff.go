package snapshot

// FieldDiff reconciles one counter field against its previous reading.
//
// With no previous reading the current value is shown as-is, an absolute
// number rather than a delta. If either side is not-available the result is
// not-available. A current value below the previous one means the device
// counter reset or wrapped; the raw current value is reported then, never a
// negative delta.
func FieldDiff(cur, prev Value, hasPrev bool) Value {
	if !hasPrev {
		return cur
	}
	if cur.IsNA() || prev.IsNA() {
		return NA()
	}
	if cur.Uint64() < prev.Uint64() {
		return cur
	}
	return N(cur.Uint64() - prev.Uint64())
}

// DiffCounters applies FieldDiff to every field of a tunnel's counters. A nil
// prev means the tunnel had no previous record at all.
func DiffCounters(cur CounterSet, prev *CounterSet) CounterSet {
	if prev == nil {
		return cur
	}
	return CounterSet{
		RxBytes:   FieldDiff(cur.RxBytes, prev.RxBytes, true),
		RxPackets: FieldDiff(cur.RxPackets, prev.RxPackets, true),
		TxBytes:   FieldDiff(cur.TxBytes, prev.TxBytes, true),
		TxPackets: FieldDiff(cur.TxPackets, prev.TxPackets, true),
	}
}

// Entry is one tunnel's reconciled readings, ready for rendering.
type Entry struct {
	Name     string     `json:"name"`
	Counters CounterSet `json:"counters"`
	Rates    RateSet    `json:"rates"`
}

// Diff produces one Entry per tunnel in cur, in cur's order. Counters are
// diffed against prev where the tunnel exists there; rates always come from
// cur untouched. prev may be nil.
func Diff(cur, prev *Snapshot) []Entry {
	entries := make([]Entry, 0, len(cur.Names))
	for _, name := range cur.Names {
		counters := cur.Counters[name]
		if prev != nil {
			if old, ok := prev.Counters[name]; ok {
				counters = DiffCounters(counters, &old)
			}
		}
		rates, ok := cur.Rates[name]
		if !ok {
			rates = RateSet{RxBps: NA(), RxPps: NA(), TxBps: NA(), TxPps: NA()}
		}
		entries = append(entries, Entry{Name: name, Counters: counters, Rates: rates})
	}
	return entries
}
