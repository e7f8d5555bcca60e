package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var operator = common.HexToAddress("0x71562b71999873DB5b286dF957af199Ec94617F7")

func TestSlashLimiterRedis(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdc := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdc.Close()

	l := NewSlashLimiter(rdc, 1, time.Hour)
	require.True(t, l.Healthy())
	assert.True(t, l.Allow(ctx, 7, operator))
	assert.False(t, l.Allow(ctx, 7, operator))
	assert.True(t, l.Allow(ctx, 8, operator), "cooldowns are per service")
	assert.Equal(t, time.Hour, mr.TTL("1:ratelimit:slash:7:"+operator.Hex()))

	// a second keeper sharing redis sees the grant
	other := NewSlashLimiter(rdc, 1, time.Hour)
	assert.False(t, other.Allow(ctx, 7, operator))

	l.Release(ctx, 7, operator)
	assert.True(t, other.Allow(ctx, 7, operator))

	mr.FastForward(time.Hour)
	assert.True(t, l.Allow(ctx, 8, operator))
}

func TestSlashLimiterFallback(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdc := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer rdc.Close()

	l := NewSlashLimiter(rdc, 1, time.Hour)
	mr.Close()

	assert.True(t, l.Allow(ctx, 1, operator))
	assert.False(t, l.Healthy())
	assert.False(t, l.Allow(ctx, 1, operator))
	assert.Error(t, l.updateRedisStatus(ctx))

	require.NoError(t, mr.Restart())
	require.NoError(t, l.updateRedisStatus(ctx))
	assert.True(t, l.Healthy())
}

func TestSlashLimiterWithoutRedis(t *testing.T) {
	l := NewSlashLimiter(nil, 1, 10*time.Millisecond)
	assert.False(t, l.Healthy())
	assert.True(t, l.Allow(context.Background(), 1, operator))
	assert.False(t, l.Allow(context.Background(), 1, operator))
	time.Sleep(15 * time.Millisecond)
	assert.True(t, l.Allow(context.Background(), 1, operator))
}
