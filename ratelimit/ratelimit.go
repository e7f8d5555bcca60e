// Package ratelimit keeps slashing reports outside the registry's per
// operator cooldown so no transaction is sent that would revert.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/tangle-network/operator-status/metrics"
)

var logger = logrus.StandardLogger().WithField("module", "ratelimit")

// SlashLimiter grants one slashing report per (service, operator) and
// cooldown. Grants are shared through redis when it is reachable; while redis
// is unhealthy an in-memory limiter takes over.
type SlashLimiter struct {
	redisClient    *redis.Client
	redisIsHealthy atomic.Bool
	prefix         string
	cooldown       time.Duration
	fallback       *FallbackRateLimiter
}

// NewSlashLimiter returns a limiter keyed under chainID. rdc may be nil to
// only limit in memory.
func NewSlashLimiter(rdc *redis.Client, chainID uint64, cooldown time.Duration) *SlashLimiter {
	l := &SlashLimiter{
		redisClient: rdc,
		prefix:      fmt.Sprintf("%d:ratelimit:slash", chainID),
		cooldown:    cooldown,
		fallback:    NewFallbackRateLimiter(cooldown),
	}
	l.redisIsHealthy.Store(rdc != nil)
	return l
}

func (l *SlashLimiter) key(serviceID uint64, operator common.Address) string {
	return fmt.Sprintf("%s:%d:%s", l.prefix, serviceID, operator.Hex())
}

// Allow reports whether a slashing report for operator may be sent now and
// records the grant if so.
func (l *SlashLimiter) Allow(ctx context.Context, serviceID uint64, operator common.Address) bool {
	key := l.key(serviceID, operator)
	if !l.redisIsHealthy.Load() {
		return l.fallback.Allow(key)
	}
	ok, err := l.redisClient.SetNX(ctx, key, time.Now().Unix(), l.cooldown).Result()
	if err != nil {
		logger.WithError(err).Warn("error reaching redis, using fallback rate limiter")
		metrics.Errors.WithLabelValues("ratelimit", "setnx").Inc()
		l.redisIsHealthy.Store(false)
		return l.fallback.Allow(key)
	}
	return ok
}

// Release gives back a grant whose report was never mined.
func (l *SlashLimiter) Release(ctx context.Context, serviceID uint64, operator common.Address) {
	key := l.key(serviceID, operator)
	l.fallback.Release(key)
	if l.redisClient == nil || !l.redisIsHealthy.Load() {
		return
	}
	if err := l.redisClient.Del(ctx, key).Err(); err != nil {
		logger.WithError(err).Warnf("error releasing %v", key)
	}
}

// Healthy reports whether grants currently go through redis.
func (l *SlashLimiter) Healthy() bool {
	return l.redisIsHealthy.Load()
}

func (l *SlashLimiter) updateRedisStatus(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	err := l.redisClient.Ping(ctx).Err()
	if err != nil {
		if l.redisIsHealthy.Swap(false) {
			logger.WithError(err).Error("redis is offline, using fallback rate limiter")
		}
		return err
	}
	if !l.redisIsHealthy.Swap(true) {
		logger.Info("redis is online again")
	}
	return nil
}

// Run checks redis health every interval until ctx is done.
func (l *SlashLimiter) Run(ctx context.Context, interval time.Duration) {
	if l.redisClient == nil {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = l.updateRedisStatus(ctx)
		}
	}
}

type FallbackRateLimiterClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// FallbackRateLimiter is the per process limiter used while redis is offline.
type FallbackRateLimiter struct {
	clients  map[string]*FallbackRateLimiterClient
	cooldown time.Duration
	mu       sync.Mutex
}

func NewFallbackRateLimiter(cooldown time.Duration) *FallbackRateLimiter {
	return &FallbackRateLimiter{
		clients:  make(map[string]*FallbackRateLimiterClient),
		cooldown: cooldown,
	}
}

func (rl *FallbackRateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	now := time.Now()
	for k, client := range rl.clients {
		if now.Sub(client.lastSeen) > 2*rl.cooldown {
			delete(rl.clients, k)
		}
	}
	if _, found := rl.clients[key]; !found {
		rl.clients[key] = &FallbackRateLimiterClient{limiter: rate.NewLimiter(rate.Every(rl.cooldown), 1)}
	}
	rl.clients[key].lastSeen = now
	return rl.clients[key].limiter.AllowN(now, 1)
}

func (rl *FallbackRateLimiter) Release(key string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	delete(rl.clients, key)
}
