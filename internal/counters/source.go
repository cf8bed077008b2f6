// Package counters reads per-tunnel traffic counters and rates from the
// counters database and builds snapshots out of them.
package counters

import (
	"context"
	"fmt"
)

// Well-known tables in the counters database. The two maps resolve tunnel
// names to object ids and object ids to SAI tunnel types; per-tunnel counter
// and rate tables are the prefix concatenated with the object id.
const (
	TunnelNameMap = "COUNTERS_TUNNEL_NAME_MAP"
	TunnelTypeMap = "COUNTERS_TUNNEL_TYPE_MAP"
	CounterTable  = "COUNTERS:"
	RateTable     = "RATES:"

	FieldInOctets   = "SAI_TUNNEL_STAT_IN_OCTETS"
	FieldInPackets  = "SAI_TUNNEL_STAT_IN_PACKETS"
	FieldOutOctets  = "SAI_TUNNEL_STAT_OUT_OCTETS"
	FieldOutPackets = "SAI_TUNNEL_STAT_OUT_PACKETS"

	FieldRxBps = "RX_BPS"
	FieldRxPps = "RX_PPS"
	FieldTxBps = "TX_BPS"
	FieldTxPps = "TX_PPS"
)

// tunnelTypes maps the CLI type filter to the SAI type stored in the type map.
var tunnelTypes = map[string]string{
	"ipinip": "SAI_TUNNEL_TYPE_IPINIP",
	"gre":    "SAI_TUNNEL_TYPE_IPINIP_GRE",
	"vxlan":  "SAI_TUNNEL_TYPE_VXLAN",
	"mpls":   "SAI_TUNNEL_TYPE_MPLS",
}

// Source is the counters database boundary. Get returns one field of a hash
// table and whether it was present; GetAll returns a whole table and whether
// the table exists. Errors are transport failures only, never absence.
type Source interface {
	Get(ctx context.Context, table, field string) (string, bool, error)
	GetAll(ctx context.Context, table string) (map[string]string, bool, error)
	Close()
}

// ConfigError covers the fatal lookup failures: missing global maps, an
// unknown tunnel or type filter, or a type mismatch for a named tunnel. The
// whole operation aborts on it, nothing partial is printed.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string {
	return e.msg
}

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

// ResolveType maps a CLI tunnel type filter to its SAI name.
func ResolveType(filter string) (string, error) {
	sai, ok := tunnelTypes[filter]
	if !ok {
		return "", configErrorf("unknown tunnel type %q (expected one of ipinip, gre, vxlan, mpls)", filter)
	}
	return sai, nil
}
