package counters

import (
	"context"
	"fmt"

	"github.com/valkey-io/valkey-go"

	"github.com/ihorchekh/sonic-utilities/internal/conf"
	"github.com/ihorchekh/sonic-utilities/internal/flog"
)

// ValkeySource reads counters from a Valkey/Redis-compatible database, the
// backing store of the counters DB on the switch.
type ValkeySource struct {
	client valkey.Client
}

// Connect opens a client against the configured counters database and
// verifies it responds.
func Connect(ctx context.Context, cfg *conf.DB) (*ValkeySource, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress: []string{cfg.Addr},
		Password:    cfg.Password,
		SelectDB:    cfg.Index,
	})
	if err != nil {
		return nil, fmt.Errorf("create counters db client: %w", err)
	}
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping counters db at %s: %w", cfg.Addr, err)
	}
	flog.Debugf("connected to counters db at %s (db %d)", cfg.Addr, cfg.Index)
	return &ValkeySource{client: client}, nil
}

func (s *ValkeySource) Get(ctx context.Context, table, field string) (string, bool, error) {
	resp := s.client.Do(ctx, s.client.B().Hget().Key(table).Field(field).Build())
	if err := resp.Error(); err != nil {
		if valkey.IsValkeyNil(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("hget %s %s: %w", table, field, err)
	}
	val, err := resp.ToString()
	if err != nil {
		return "", false, fmt.Errorf("hget %s %s: %w", table, field, err)
	}
	return val, true, nil
}

func (s *ValkeySource) GetAll(ctx context.Context, table string) (map[string]string, bool, error) {
	resp := s.client.Do(ctx, s.client.B().Hgetall().Key(table).Build())
	if err := resp.Error(); err != nil {
		return nil, false, fmt.Errorf("hgetall %s: %w", table, err)
	}
	m, err := resp.AsStrMap()
	if err != nil {
		return nil, false, fmt.Errorf("hgetall %s: %w", table, err)
	}
	if len(m) == 0 {
		// HGETALL cannot tell an empty table from a missing one.
		return nil, false, nil
	}
	return m, true, nil
}

func (s *ValkeySource) Close() {
	s.client.Close()
}
