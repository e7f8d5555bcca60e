package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/coocood/freecache"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

var logger = logrus.StandardLogger().WithField("module", "cache")

// ErrMiss is returned when neither tier holds the key.
var ErrMiss = errors.New("cache miss")

// Tiered cache is a cache implementation combining a local freecache with a
// remote redis cache. Without a redis client it only caches locally.
type tieredCache struct {
	remoteRedisCache *redis.Client
	localCache       *freecache.Cache
}

var TieredCache *tieredCache

const defaultLocalSize = 32 * 1024 * 1024

func MustInitTieredCache(redisAddress string) {
	if redisAddress == "" {
		logger.Warn("no redis endpoint configured, caching locally only")
		TieredCache = NewTieredCache(nil, defaultLocalSize)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	rdc := redis.NewClient(&redis.Options{
		Addr:        redisAddress,
		ReadTimeout: time.Second * 20,
	})

	if err := rdc.Ping(ctx).Err(); err != nil {
		logger.Fatalf("error initializing tiered cache: %v", err)
	}

	TieredCache = NewTieredCache(rdc, defaultLocalSize)
}

func NewTieredCache(rdc *redis.Client, localSize int) *tieredCache {
	return &tieredCache{
		remoteRedisCache: rdc,
		localCache:       freecache.NewCache(localSize),
	}
}

// freecache counts expiry in whole seconds and treats 0 as never.
func localSeconds(expiration time.Duration) int {
	if expiration <= 0 {
		return 0
	}
	if expiration < time.Second {
		return 1
	}
	return int(expiration / time.Second)
}

func (cache *tieredCache) setBytes(ctx context.Context, key string, value []byte, expiration time.Duration) error {
	if err := cache.localCache.Set([]byte(key), value, localSeconds(expiration)); err != nil {
		logger.WithError(err).Warnf("error setting %v in local cache", key)
	}
	if cache.remoteRedisCache == nil {
		return nil
	}
	return cache.remoteRedisCache.Set(ctx, key, value, expiration).Err()
}

func (cache *tieredCache) getBytes(ctx context.Context, key string, localExpiration time.Duration) ([]byte, error) {
	// try to retrieve the key from the local cache
	if value, err := cache.localCache.Get([]byte(key)); err == nil {
		return value, nil
	}
	if cache.remoteRedisCache == nil {
		return nil, ErrMiss
	}

	// retrieve the key from the remote cache
	value, err := cache.remoteRedisCache.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}
	if err := cache.localCache.Set([]byte(key), value, localSeconds(localExpiration)); err != nil {
		logger.WithError(err).Warnf("error setting %v in local cache", key)
	}
	return value, nil
}

func (cache *tieredCache) SetUint64(ctx context.Context, key string, value uint64, expiration time.Duration) error {
	return cache.setBytes(ctx, key, []byte(strconv.FormatUint(value, 10)), expiration)
}

func (cache *tieredCache) GetUint64WithLocalTimeout(ctx context.Context, key string, localExpiration time.Duration) (uint64, error) {
	value, err := cache.getBytes(ctx, key, localExpiration)
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(string(value), 10, 64)
}

// Set stores value as JSON in both tiers.
func (cache *tieredCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	valueMarshal, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return cache.setBytes(ctx, key, valueMarshal, expiration)
}

// GetWithLocalTimeout unmarshals the cached JSON into returnValue. Values
// fetched from redis are kept locally for localExpiration.
func (cache *tieredCache) GetWithLocalTimeout(ctx context.Context, key string, localExpiration time.Duration, returnValue interface{}) error {
	value, err := cache.getBytes(ctx, key, localExpiration)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(value, returnValue); err != nil {
		cache.Delete(ctx, key)
		return fmt.Errorf("error unmarshalling cached value for key %v: %w", key, err)
	}
	return nil
}

func (cache *tieredCache) Delete(ctx context.Context, key string) error {
	cache.localCache.Del([]byte(key))
	if cache.remoteRedisCache == nil {
		return nil
	}
	return cache.remoteRedisCache.Del(ctx, key).Err()
}
