package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"path/filepath"
	"strings"
	"time"

	"github.com/webnexa/api/internal/store"
	"github.com/webnexa/api/pkg/apperr"
	"github.com/webnexa/api/pkg/cache"
	"github.com/webnexa/api/pkg/logger"
	"github.com/webnexa/api/pkg/metrics"
	"github.com/webnexa/api/pkg/storage"
)

const (
	portfolioCacheKey = "portfolio:list"
	portfolioCacheTTL = 5 * time.Minute
)

// allowed logo extensions; everything else is rejected at upload.
var logoExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".svg":  true,
	".webp": true,
}

// PortfolioService manages the public client showcase.
type PortfolioService struct {
	portfolio store.PortfolioStore
}

func NewPortfolioService(portfolio store.PortfolioStore) *PortfolioService {
	return &PortfolioService{portfolio: portfolio}
}

// List returns every portfolio entry. The listing is public and read-heavy,
// so results are served from cache when Redis is reachable.
func (s *PortfolioService) List(ctx context.Context) ([]map[string]interface{}, error) {
	var cached []map[string]interface{}
	if cache.Get(portfolioCacheKey, &cached) {
		metrics.CacheHits.Inc()
		return cached, nil
	}
	metrics.CacheMisses.Inc()

	docs, err := s.portfolio.List(ctx)
	if err != nil {
		return nil, apperr.Server(err)
	}

	cache.Set(portfolioCacheKey, docs, portfolioCacheTTL)
	return docs, nil
}

// Create stores a new portfolio entry exactly as posted, minus any
// client-supplied identifier. The server owns both the id and createdAt.
func (s *PortfolioService) Create(ctx context.Context, doc map[string]interface{}) (map[string]interface{}, error) {
	if len(doc) == 0 {
		return nil, apperr.InvalidInput("The request body must be a non-empty JSON object.")
	}

	entry := make(map[string]interface{}, len(doc)+1)
	for k, v := range doc {
		if k == "_id" || k == "id" {
			continue
		}
		entry[k] = v
	}
	entry["createdAt"] = time.Now().UTC()

	id, err := s.portfolio.Insert(ctx, entry)
	if err != nil {
		return nil, apperr.Server(err)
	}
	entry["_id"] = id

	cache.Del(portfolioCacheKey)
	logger.WithCtx(ctx).Info("portfolio entry created", "id", id)

	return entry, nil
}

// UploadLogo stores a client logo on the configured disk and returns its
// public URL. Filenames are regenerated server-side; only the extension of
// the original name survives.
func (s *PortfolioService) UploadLogo(ctx context.Context, filename string, content []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !logoExtensions[ext] {
		return "", apperr.InvalidInput("Logo must be a png, jpg, jpeg, svg or webp file.")
	}
	if len(content) == 0 {
		return "", apperr.InvalidInput("Logo file is empty.")
	}

	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", apperr.Server(err)
	}
	path := "logos/" + hex.EncodeToString(buf) + ext

	if err := storage.Put(path, content); err != nil {
		return "", apperr.Server(err)
	}

	return storage.URL(path), nil
}
