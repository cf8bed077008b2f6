package counters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ihorchekh/sonic-utilities/internal/counters"
	"github.com/ihorchekh/sonic-utilities/internal/snapshot"
)

// fakeSource serves tables from plain maps, standing in for the counters db.
type fakeSource struct {
	tables map[string]map[string]string
}

func (f *fakeSource) Get(_ context.Context, table, field string) (string, bool, error) {
	t, ok := f.tables[table]
	if !ok {
		return "", false, nil
	}
	v, ok := t[field]
	return v, ok, nil
}

func (f *fakeSource) GetAll(_ context.Context, table string) (map[string]string, bool, error) {
	t, ok := f.tables[table]
	if !ok || len(t) == 0 {
		return nil, false, nil
	}
	return t, true, nil
}

func (f *fakeSource) Close() {}

func testSource() *fakeSource {
	return &fakeSource{tables: map[string]map[string]string{
		counters.TunnelNameMap: {
			"Tun10": "oid:0x10",
			"Tun2":  "oid:0x2",
			"vx1":   "oid:0x3",
		},
		counters.TunnelTypeMap: {
			"oid:0x2":  "SAI_TUNNEL_TYPE_IPINIP",
			"oid:0x10": "SAI_TUNNEL_TYPE_IPINIP",
			"oid:0x3":  "SAI_TUNNEL_TYPE_VXLAN",
		},
		counters.CounterTable + "oid:0x2": {
			counters.FieldInOctets:   "12000",
			counters.FieldInPackets:  "150",
			counters.FieldOutOctets:  "4000",
			counters.FieldOutPackets: "50",
		},
		counters.CounterTable + "oid:0x10": {
			counters.FieldInOctets:  "1",
			counters.FieldInPackets: "2",
			// out-direction counters missing for this tunnel
		},
		counters.RateTable + "oid:0x2": {
			counters.FieldRxBps: "300.4",
			counters.FieldRxPps: "3",
			counters.FieldTxBps: "100",
			counters.FieldTxPps: "1",
		},
	}}
}

func TestBuild(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("AllTunnelsNaturallySorted", func(t *testing.T) {
		t.Parallel()
		snap, err := counters.NewBuilder(testSource()).Build(ctx, "", "")
		require.NoError(t, err)
		assert.Equal(t, []string{"Tun2", "Tun10", "vx1"}, snap.Names)
		assert.False(t, snap.Time.IsZero())

		got := snap.Counters["Tun2"]
		assert.Equal(t, snapshot.N(12000), got.RxBytes)
		assert.Equal(t, snapshot.N(150), got.RxPackets)
		assert.Equal(t, snapshot.N(4000), got.TxBytes)
		assert.Equal(t, snapshot.N(50), got.TxPackets)

		rates := snap.Rates["Tun2"]
		assert.Equal(t, snapshot.N(300), rates.RxBps)
		assert.Equal(t, snapshot.N(1), rates.TxPps)
	})

	t.Run("MissingFieldsBecomeNotAvailable", func(t *testing.T) {
		t.Parallel()
		snap, err := counters.NewBuilder(testSource()).Build(ctx, "", "")
		require.NoError(t, err)

		got := snap.Counters["Tun10"]
		assert.Equal(t, snapshot.N(1), got.RxBytes)
		assert.Equal(t, snapshot.NA(), got.TxBytes)
		assert.Equal(t, snapshot.NA(), got.TxPackets)

		// No rate table at all for vx1.
		assert.Equal(t, snapshot.NA(), snap.Rates["vx1"].RxPps)
	})

	t.Run("TunnelFilter", func(t *testing.T) {
		t.Parallel()
		snap, err := counters.NewBuilder(testSource()).Build(ctx, "Tun2", "")
		require.NoError(t, err)
		assert.Equal(t, []string{"Tun2"}, snap.Names)
	})

	t.Run("TypeFilter", func(t *testing.T) {
		t.Parallel()
		snap, err := counters.NewBuilder(testSource()).Build(ctx, "", "ipinip")
		require.NoError(t, err)
		assert.Equal(t, []string{"Tun2", "Tun10"}, snap.Names)
	})

	t.Run("TunnelAndMatchingTypeFilter", func(t *testing.T) {
		t.Parallel()
		snap, err := counters.NewBuilder(testSource()).Build(ctx, "vx1", "vxlan")
		require.NoError(t, err)
		assert.Equal(t, []string{"vx1"}, snap.Names)
	})
}

func TestBuildErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	requireConfigError := func(t *testing.T, err error) {
		t.Helper()
		var cfgErr *counters.ConfigError
		require.ErrorAs(t, err, &cfgErr)
	}

	t.Run("NameMapMissing", func(t *testing.T) {
		t.Parallel()
		src := testSource()
		delete(src.tables, counters.TunnelNameMap)
		_, err := counters.NewBuilder(src).Build(ctx, "", "")
		requireConfigError(t, err)
	})

	t.Run("TypeMapMissing", func(t *testing.T) {
		t.Parallel()
		src := testSource()
		delete(src.tables, counters.TunnelTypeMap)
		_, err := counters.NewBuilder(src).Build(ctx, "", "")
		requireConfigError(t, err)
	})

	t.Run("UnknownTypeFilter", func(t *testing.T) {
		t.Parallel()
		_, err := counters.NewBuilder(testSource()).Build(ctx, "", "geneve")
		requireConfigError(t, err)
	})

	t.Run("UnknownTunnel", func(t *testing.T) {
		t.Parallel()
		_, err := counters.NewBuilder(testSource()).Build(ctx, "Tun99", "")
		requireConfigError(t, err)
	})

	t.Run("TypeMismatchForNamedTunnel", func(t *testing.T) {
		t.Parallel()
		_, err := counters.NewBuilder(testSource()).Build(ctx, "Tun2", "vxlan")
		requireConfigError(t, err)
		assert.ErrorContains(t, err, "not of type")
	})
}
