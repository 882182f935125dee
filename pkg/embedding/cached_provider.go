package embedding

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// CachedProvider memoizes embeddings keyed by the exact input text.
// Degraded results are never cached, so a recovered remote provider is
// consulted again on the next request for the same text.
type CachedProvider struct {
	inner Provider
	cache *gocache.Cache
}

func NewCachedProvider(inner Provider, ttl time.Duration) Provider {
	return &CachedProvider{
		inner: inner,
		cache: gocache.New(ttl, 10*time.Minute),
	}
}

func (p *CachedProvider) Generate(ctx context.Context, text string) (*Result, error) {
	if cached, found := p.cache.Get(text); found {
		return cached.(*Result), nil
	}

	result, err := p.inner.Generate(ctx, text)
	if err != nil {
		return nil, err
	}
	if !result.Degraded {
		p.cache.Set(text, result, gocache.DefaultExpiration)
	}
	return result, nil
}

func (p *CachedProvider) GenerateBatch(ctx context.Context, texts []string) ([]*Result, error) {
	results := make([]*Result, len(texts))
	var missing []string
	var missingIdx []int

	for i, text := range texts {
		if cached, found := p.cache.Get(text); found {
			results[i] = cached.(*Result)
			continue
		}
		missing = append(missing, text)
		missingIdx = append(missingIdx, i)
	}

	if len(missing) == 0 {
		return results, nil
	}

	fresh, err := p.inner.GenerateBatch(ctx, missing)
	if err != nil {
		return nil, err
	}
	for j, result := range fresh {
		results[missingIdx[j]] = result
		if !result.Degraded {
			p.cache.Set(missing[j], result, gocache.DefaultExpiration)
		}
	}
	return results, nil
}
