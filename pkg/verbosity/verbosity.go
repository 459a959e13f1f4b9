package verbosity

// Verbosity controls how many suggestions a lookup returns.
type Verbosity int

const (
	// Top returns the most frequent suggestion among the closest ones.
	Top Verbosity = iota
	// Closest returns every suggestion at the smallest distance found.
	Closest
	// All returns every suggestion within the maximum edit distance.
	All
)

func (v Verbosity) String() string {
	switch v {
	case Top:
		return "top"
	case Closest:
		return "closest"
	case All:
		return "all"
	}
	return "unknown"
}
