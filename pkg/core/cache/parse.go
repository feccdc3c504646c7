package cache

import (
	"github.com/msto63/dayx/foundation/utils/timex"
)

// ParseCache memoizes successful parses. The key includes the calendar's
// local zone because parsed values carry it as their hint.
type ParseCache struct {
	values *Cache[timex.Value]
}

// NewParseCache creates a parse memo holding up to maxItems inputs
func NewParseCache(maxItems int) *ParseCache {
	return &ParseCache{values: New[timex.Value](maxItems)}
}

// Parse returns cal.Parse(text), reusing an earlier result for the same
// text and local zone. Failures are not cached.
func (p *ParseCache) Parse(cal *timex.Calendar, text string) (timex.Value, error) {
	key := cal.LocalZone().String() + "\x00" + text
	return p.values.GetOrSet(key, func() (timex.Value, error) {
		return cal.Parse(text)
	})
}

// Stats returns hit and miss counts of the memo
func (p *ParseCache) Stats() (hits, misses int64) {
	hits, misses, _ = p.values.Stats()
	return hits, misses
}
