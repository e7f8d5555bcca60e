package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangle-network/operator-status/types"
)

func newTestCache(t *testing.T) (*tieredCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdc := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdc.Close() })
	return NewTieredCache(rdc, 1024*1024), mr
}

func TestTieredCacheRemoteFallback(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)

	require.NoError(t, c.Set(ctx, "k", map[string]int{"a": 1}, time.Minute))
	assert.True(t, mr.Exists("k"))
	assert.Equal(t, time.Minute, mr.TTL("k"))

	// a second cache sharing redis only finds the value remotely
	other := NewTieredCache(c.remoteRedisCache, 1024*1024)
	got := map[string]int{}
	require.NoError(t, other.GetWithLocalTimeout(ctx, "k", time.Minute, &got))
	assert.Equal(t, 1, got["a"])

	// and now holds it locally
	mr.Del("k")
	got = map[string]int{}
	require.NoError(t, other.GetWithLocalTimeout(ctx, "k", time.Minute, &got))
	assert.Equal(t, 1, got["a"])
}

func TestTieredCacheMiss(t *testing.T) {
	c, _ := newTestCache(t)
	var v struct{}
	assert.ErrorIs(t, c.GetWithLocalTimeout(context.Background(), "missing", time.Second, &v), ErrMiss)

	local := NewTieredCache(nil, 1024*1024)
	_, err := local.GetUint64WithLocalTimeout(context.Background(), "missing", time.Second)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestTieredCacheDropsCorruptValues(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)
	require.NoError(t, mr.Set("bad", "{not json"))

	var v map[string]int
	require.Error(t, c.GetWithLocalTimeout(ctx, "bad", time.Minute, &v))
	assert.False(t, mr.Exists("bad"))
}

func TestServiceStatuses(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)
	TieredCache = c

	rows := []types.OperatorStatus{{
		ServiceID: 3,
		Operator:  common.HexToAddress("0x71562b71999873DB5b286dF957af199Ec94617F7"),
		Status:    types.StatusDegraded,
		// json drops the monotonic clock reading
		LastHeartbeat: time.Unix(1_700_000_000, 0).UTC(),
	}}
	require.NoError(t, SetServiceStatuses(ctx, 1, 3, rows))

	got, err := GetServiceStatuses(ctx, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, rows, got)

	require.NoError(t, InvalidateServiceStatuses(ctx, 1, 3))
	_, err = GetServiceStatuses(ctx, 1, 3)
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, SetExporterHead(ctx, 1, 1234))
	head, err := GetExporterHead(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1234), head)
}
