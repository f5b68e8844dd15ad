package cluster

// Exported for black-box tests.
var (
	WeightedMedian = weightedMedian
	Members        = members
	Mergeable      = mergeable
)
