package widget

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// renderCache memoizes styled render output keyed by content and state.
// View runs on every frame; bordered and padded lipgloss renders are the
// expensive part, and most frames repeat the previous one exactly.
type renderCache struct {
	cache *lru.Cache[string, string]
}

func newRenderCache(size int) *renderCache {
	cache, _ := lru.New[string, string](size)
	return &renderCache{cache: cache}
}

// get returns the cached render for key, computing and storing it on miss.
func (rc *renderCache) get(key string, render func() string) string {
	if v, ok := rc.cache.Get(key); ok {
		return v
	}
	v := render()
	rc.cache.Add(key, v)
	return v
}
