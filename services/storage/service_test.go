package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveURL_PlainURLPassesThrough(t *testing.T) {
	svc := &CachedStorageService{BaseURL: "https://cdn.example.com"}

	out, err := svc.ResolveURL(context.Background(), "https://elsewhere.example.com/a.jpg")

	require.NoError(t, err)
	assert.Equal(t, "https://elsewhere.example.com/a.jpg", out)
}

func TestResolveURL_CloudReference(t *testing.T) {
	svc := &CachedStorageService{BaseURL: "https://cdn.example.com"}

	out, err := svc.ResolveURL(context.Background(), "cloud://venues/court-a.jpg")

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/venues/court-a.jpg", out)
}

func TestResolveURLs_PreservesOrder(t *testing.T) {
	svc := &CachedStorageService{BaseURL: "https://cdn.example.com"}

	out, err := svc.ResolveURLs(context.Background(), []string{
		"cloud://b.jpg",
		"https://plain.example.com/a.jpg",
		"cloud://c.jpg",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://cdn.example.com/b.jpg",
		"https://plain.example.com/a.jpg",
		"https://cdn.example.com/c.jpg",
	}, out)
}
