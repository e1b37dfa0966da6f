package parameter

// Navigation - Path Distance Cache
const (
	// PathCacheCapacity is the entry count above which the distance cache
	// bulk-evicts its oldest entries
	PathCacheCapacity = 256

	// PathCacheEvictFraction is the fraction of entries dropped (oldest
	// first) when capacity is exceeded
	PathCacheEvictFraction = 0.5
)

// Navigation - Line of Sight
const (
	// LineOfSightStep is the sampling interval along a sight segment in
	// cells; every sample must land on an Open cell for clear sight
	LineOfSightStep = 0.2
)
