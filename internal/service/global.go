package service

import (
	"sync"

	"github.com/countryflag/countryflag/internal/cache/memory"
)

// The process-wide default cache is a lazily-initialized holder cell shared
// by every facade constructed without an explicit cache. Facades resolve the
// holder on every operation, so replacing the instance takes effect
// everywhere at once. The holder only needs atomic lazy-init and atomic
// replacement; the cache itself is internally thread-safe once constructed.
var (
	globalMu    sync.Mutex
	globalCache *memory.Cache
)

func globalDefaultCache() *memory.Cache {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalCache == nil {
		globalCache = memory.New()
	}
	return globalCache
}

// ClearGlobalCache discards the shared default cache; the next use recreates
// an empty one. Explicitly supplied caches are never touched.
func ClearGlobalCache() {
	globalMu.Lock()
	defer globalMu.Unlock()

	globalCache = nil
}
