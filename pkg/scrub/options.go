package scrub

// Options controls shape specific behaviour. Fields that do not apply to the
// scrubbed shape are ignored.
type Options[T any] struct {
	// AllowExpand lets Slice grow the slice to reach an out-of-range index.
	AllowExpand bool
	// Filler is written into slots created by expansion.
	Filler T
	// CreateIfMissing lets Map and Record insert an absent key.
	CreateIfMissing bool
	// SetWhenMissing lets Set add the mask when the element is absent.
	SetWhenMissing bool
}

type Option[T any] func(*Options[T])

// WithExpand allows out-of-range indexes and back-fills new slots with filler.
func WithExpand[T any](filler T) Option[T] {
	return func(o *Options[T]) {
		o.AllowExpand = true
		o.Filler = filler
	}
}

func WithCreateIfMissing[T any]() Option[T] {
	return func(o *Options[T]) {
		o.CreateIfMissing = true
	}
}

func WithSetWhenMissing[T any]() Option[T] {
	return func(o *Options[T]) {
		o.SetWhenMissing = true
	}
}

func applyOptions[T any](opts []Option[T]) Options[T] {
	var o Options[T]
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
