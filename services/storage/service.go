package storage

import (
	"context"
	"strings"

	"courtside/config"
	"courtside/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// storageScheme prefixes opaque object references stored on venues and
// bookings in place of concrete URLs.
const storageScheme = "cloud://"

// StorageService resolves stored object references into serveable URLs.
type StorageService interface {
	// ResolveURL resolves one reference. Plain URLs pass through unchanged.
	ResolveURL(ctx context.Context, ref string) (string, error)
	// ResolveURLs resolves a batch, preserving order.
	ResolveURLs(ctx context.Context, refs []string) ([]string, error)
}

// CachedStorageService resolves cloud:// references against the configured
// storage base URL and memoizes results in redis. Resolved URLs are signed
// and expire server-side, so cache entries carry ImageURLCacheTTL.
type CachedStorageService struct {
	Cache   *redis.Client
	BaseURL string
}

// NewCachedStorageService wires the service to the shared image URL cache.
func NewCachedStorageService() *CachedStorageService {
	return &CachedStorageService{
		Cache:   utils.GetImageURLCacheClient(),
		BaseURL: config.AppConfig.StorageBaseURL,
	}
}

func (s *CachedStorageService) ResolveURL(ctx context.Context, ref string) (string, error) {
	if !strings.HasPrefix(ref, storageScheme) {
		return ref, nil
	}

	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, cacheKey(ref)).Result()
		if err == nil && cached != "" {
			return cached, nil
		}
		if err != nil && err != redis.Nil {
			utils.GetLogger().Warn("image url cache read failed", zap.String("ref", ref), zap.Error(err))
		}
	}

	resolved := s.BaseURL + "/" + strings.TrimPrefix(ref, storageScheme)

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, cacheKey(ref), resolved, utils.ImageURLCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("image url cache write failed", zap.String("ref", ref), zap.Error(err))
		}
	}
	return resolved, nil
}

func (s *CachedStorageService) ResolveURLs(ctx context.Context, refs []string) ([]string, error) {
	out := make([]string, len(refs))
	for i, ref := range refs {
		resolved, err := s.ResolveURL(ctx, ref)
		if err != nil {
			return nil, err
		}
		out[i] = resolved
	}
	return out, nil
}

func cacheKey(ref string) string {
	return "imageurl:" + ref
}
