package options

var DefaultOptions = SymspellOptions{
	MaxDictionaryEditDistance: 2,
	PrefixLength:              7,
	CountThreshold:            1,
	PreserveCase:              false,
	IncludeUnknown:            false,
}

type SymspellOptions struct {
	MaxDictionaryEditDistance int
	PrefixLength              int
	CountThreshold            int
	// PreserveCase looks terms up lowercased and copies the input casing
	// onto the suggestions.
	PreserveCase bool
	// IncludeUnknown returns the input itself when nothing is found.
	IncludeUnknown bool
}

type Options interface {
	Apply(options *SymspellOptions)
}

type FuncConfig struct {
	ops func(options *SymspellOptions)
}

func (w FuncConfig) Apply(conf *SymspellOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *SymspellOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

func WithMaxDictionaryEditDistance(maxDictionaryEditDistance int) Options {
	return NewFuncOption(func(options *SymspellOptions) {
		options.MaxDictionaryEditDistance = maxDictionaryEditDistance
	})
}

func WithPrefixLength(prefixLength int) Options {
	return NewFuncOption(func(options *SymspellOptions) {
		options.PrefixLength = prefixLength
	})
}

func WithCountThreshold(countThreshold int) Options {
	return NewFuncOption(func(options *SymspellOptions) {
		options.CountThreshold = countThreshold
	})
}

func WithPreserveCase() Options {
	return NewFuncOption(func(options *SymspellOptions) {
		options.PreserveCase = true
	})
}

func WithIncludeUnknown() Options {
	return NewFuncOption(func(options *SymspellOptions) {
		options.IncludeUnknown = true
	})
}
