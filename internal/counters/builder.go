package counters

import (
	"context"
	"time"

	"github.com/ihorchekh/sonic-utilities/internal/flog"
	"github.com/ihorchekh/sonic-utilities/internal/snapshot"
)

// Builder captures snapshots from an injected Source.
type Builder struct {
	src Source
}

// NewBuilder returns a builder reading from src.
func NewBuilder(src Source) *Builder {
	return &Builder{src: src}
}

// Build captures a snapshot of the selected tunnels. tunnelFilter restricts
// the capture to one named tunnel, typeFilter to one tunnel type (CLI
// spelling, see ResolveType); both empty means every known tunnel. A missing
// global map or a filter that matches nothing known is a ConfigError; a
// missing per-tunnel field is recorded as not-available and is never fatal.
func (b *Builder) Build(ctx context.Context, tunnelFilter, typeFilter string) (*snapshot.Snapshot, error) {
	nameMap, ok, err := b.src.GetAll(ctx, TunnelNameMap)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, configErrorf("tunnel name map %s not found in counters db", TunnelNameMap)
	}
	typeMap, ok, err := b.src.GetAll(ctx, TunnelTypeMap)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, configErrorf("tunnel type map %s not found in counters db", TunnelTypeMap)
	}

	var saiType string
	if typeFilter != "" {
		if saiType, err = ResolveType(typeFilter); err != nil {
			return nil, err
		}
	}

	var names []string
	switch {
	case tunnelFilter != "":
		oid, ok := nameMap[tunnelFilter]
		if !ok {
			return nil, configErrorf("tunnel %q not found", tunnelFilter)
		}
		if saiType != "" && typeMap[oid] != saiType {
			return nil, configErrorf("tunnel %q is not of type %s", tunnelFilter, typeFilter)
		}
		names = []string{tunnelFilter}
	case saiType != "":
		for name, oid := range nameMap {
			if typeMap[oid] == saiType {
				names = append(names, name)
			}
		}
		snapshot.SortNatural(names)
	default:
		for name := range nameMap {
			names = append(names, name)
		}
		snapshot.SortNatural(names)
	}

	snap := snapshot.New(time.Now())
	for _, name := range names {
		oid := nameMap[name]
		flog.Debugf("reading counters for %s (%s)", name, oid)
		counters := snapshot.CounterSet{
			RxBytes:   b.field(ctx, CounterTable+oid, FieldInOctets),
			RxPackets: b.field(ctx, CounterTable+oid, FieldInPackets),
			TxBytes:   b.field(ctx, CounterTable+oid, FieldOutOctets),
			TxPackets: b.field(ctx, CounterTable+oid, FieldOutPackets),
		}
		rates := snapshot.RateSet{
			RxBps: b.field(ctx, RateTable+oid, FieldRxBps),
			RxPps: b.field(ctx, RateTable+oid, FieldRxPps),
			TxBps: b.field(ctx, RateTable+oid, FieldTxBps),
			TxPps: b.field(ctx, RateTable+oid, FieldTxPps),
		}
		snap.Add(name, counters, rates)
	}
	return snap, nil
}

// field reads one counter field, downgrading absence and transport trouble to
// not-available at single-field scope.
func (b *Builder) field(ctx context.Context, table, field string) snapshot.Value {
	raw, ok, err := b.src.Get(ctx, table, field)
	if err != nil {
		flog.Debugf("read %s %s: %v", table, field, err)
		return snapshot.NA()
	}
	if !ok {
		return snapshot.NA()
	}
	return snapshot.ParseValue(raw)
}
