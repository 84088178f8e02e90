// Package storage keeps uploaded project images in an object store and hands
// out stable URLs for them.
package storage

import (
	"context"
	"io"
	"net/url"
	"strings"
	"time"
)

// UploadPrefix is the key prefix of every object the service writes.
const UploadPrefix = "uploads/"

// Store is an object store for project images.
type Store interface {
	// Init prepares the backing bucket or directory.
	Init(ctx context.Context) error
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

// KeyFromURL extracts the object key from a URL handed out by a Store.
// URLs that do not point at an upload report false.
func KeyFromURL(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	i := strings.Index(u.Path, "/"+UploadPrefix)
	if i < 0 {
		return "", false
	}
	key := u.Path[i+1:]
	if len(key) == len(UploadPrefix) {
		return "", false
	}
	return key, true
}

// KeysFromURLs maps urls to distinct upload keys, keeping first-seen order.
func KeysFromURLs(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	var keys []string
	for _, raw := range urls {
		key, ok := KeyFromURL(raw)
		if !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys
}
