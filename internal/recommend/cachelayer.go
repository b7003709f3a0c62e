package recommend

import (
	"context"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// The cache layer is fail-open throughout: an unreachable store degrades to
// direct computation with a warning, never a failed request.

// getCachedResult returns a decoded Result for key, or nil on miss.
func (s *Service) getCachedResult(ctx context.Context, key string) *Result {
	data, ok := s.getCachedBytes(ctx, key)
	if !ok {
		s.markMiss()
		return nil
	}

	var result Result
	if err := decode(data, &result); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("discarding undecodable cache entry")
		s.markMiss()
		return nil
	}

	s.markHit()
	result.CacheHit = true
	return &result
}

// setCached stores an encoded Result under key.
func (s *Service) setCached(ctx context.Context, key string, result *Result, ttl time.Duration) {
	data, err := encode(result)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("failed to encode cache entry")
		return
	}
	s.setCachedBytes(ctx, key, data, ttl)
}

// getCachedFloat returns a numeric sub-result (score, boost, count, flag).
func (s *Service) getCachedFloat(ctx context.Context, key string) (float64, bool) {
	data, ok := s.getCachedBytes(ctx, key)
	if !ok {
		return 0, false
	}

	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("discarding unparsable cache entry")
		return 0, false
	}
	return v, true
}

// setCachedFloat stores a numeric sub-result.
func (s *Service) setCachedFloat(ctx context.Context, key string, v float64, ttl time.Duration) {
	s.setCachedBytes(ctx, key, []byte(strconv.FormatFloat(v, 'f', -1, 64)), ttl)
}

// getCachedBytes reads a raw entry, treating store errors as misses.
func (s *Service) getCachedBytes(ctx context.Context, key string) ([]byte, bool) {
	data, ok, err := s.store.Get(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("cache get failed, computing directly")
		return nil, false
	}
	return data, ok
}

// setCachedBytes writes a raw entry, logging store errors.
func (s *Service) setCachedBytes(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if err := s.store.Set(ctx, key, data, ttl); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}

func (s *Service) markHit()  { s.cacheHits.Add(1) }
func (s *Service) markMiss() { s.cacheMisses.Add(1) }

func encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

func decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
