package templaro

// resolutionCache memoizes resolution results keyed by the raw
// (pre-normalization) template name, so repeated identical lookups skip
// validation, parsing and the directory search entirely.
//
// The cache carries no lock of its own: the Loader's mutex serializes
// cache access together with the path registry, which keeps wholesale
// invalidation strictly ordered before any registry mutation becomes
// visible.
type resolutionCache struct {
	positive map[string]string // raw name -> resolved path
	negative map[string]error  // raw name -> captured failure
}

func newResolutionCache() *resolutionCache {
	return &resolutionCache{
		positive: make(map[string]string),
		negative: make(map[string]error),
	}
}

func (c *resolutionCache) getPositive(key string) (string, bool) {
	path, ok := c.positive[key]
	return path, ok
}

func (c *resolutionCache) getNegative(key string) (error, bool) {
	err, ok := c.negative[key]
	return err, ok
}

func (c *resolutionCache) putPositive(key, path string) {
	c.positive[key] = path
}

func (c *resolutionCache) putNegative(key string, err error) {
	c.negative[key] = err
}

// invalidateAll drops every entry, positive and negative. There is no
// per-key invalidation.
func (c *resolutionCache) invalidateAll() {
	c.positive = make(map[string]string)
	c.negative = make(map[string]error)
}

func (c *resolutionCache) size() int {
	return len(c.positive) + len(c.negative)
}
