// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"courtside/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// ImageURLCacheClient is the dedicated client for resolved image URLs.
	ImageURLCacheClient *redis.Client
)

// ImageURLCacheTTL bounds how long a resolved storage URL may be reused.
// Resolved URLs carry a signature that expires server-side after two hours;
// 90 minutes keeps a safety margin.
const ImageURLCacheTTL = 90 * time.Minute

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitImageURLCache initializes the Redis client for resolved image URLs.
func InitImageURLCache() {
	ImageURLCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisImageURLDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := ImageURLCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Image URL Cache): %v", err)
	}
}

// GetImageURLCacheClient returns the Redis client for resolved image URLs.
func GetImageURLCacheClient() *redis.Client {
	if ImageURLCacheClient == nil {
		InitImageURLCache()
	}
	return ImageURLCacheClient
}

// InitRedis initializes all Redis clients used by the service.
func InitRedis() {
	InitCache()
	InitImageURLCache()
}
