package storage

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/onebluedot/site/pkg/logger"
	"go.uber.org/zap"
)

// MaxPresignTTL is the longest lifetime S3 accepts for a presigned URL.
const MaxPresignTTL = 7 * 24 * time.Hour

// ObjectURL is the stable address of key under FilesRoute. It is what gets
// stored on projects; FilesHandler resolves it on every read.
func ObjectURL(publicBaseURL, key string) string {
	return strings.TrimRight(publicBaseURL, "/") + FilesRoute + (&url.URL{Path: key}).EscapedPath()
}

// FilesHandler serves FilesRoute. A LocalStore is served from disk; any other
// store answers with a redirect to a URL signed for ttl.
func FilesHandler(s Store, ttl time.Duration) http.Handler {
	if local, ok := s.(*LocalStore); ok {
		return http.StripPrefix(strings.TrimSuffix(FilesRoute, "/"), http.FileServer(http.Dir(local.Dir())))
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimPrefix(r.URL.Path, FilesRoute)
		if !strings.HasPrefix(key, UploadPrefix) || key == UploadPrefix {
			http.NotFound(w, r)
			return
		}
		signed, err := s.SignedURL(r.Context(), key, ttl)
		if err != nil {
			logger.L().Error("sign object url failed", zap.String("key", key), zap.Error(err))
			http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
			return
		}
		w.Header().Set("Cache-Control", fmt.Sprintf("private, max-age=%d", int(ttl.Seconds()/2)))
		http.Redirect(w, r, signed, http.StatusFound)
	})
}
