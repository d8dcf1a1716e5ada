package scrub

import "math"

// Kind tags the container shape held by a Value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindText
	KindSequence
	KindMapping
	KindSet
	KindRecord
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	case KindSet:
		return "set"
	case KindRecord:
		return "record"
	default:
		return "invalid"
	}
}

// Value is a tagged union over the supported container shapes.
// The zero Value is invalid and is returned unchanged by Scrub.
type Value struct {
	kind    Kind
	text    string
	seq     []any
	mapping map[any]any
	set     map[any]struct{}
	record  map[string]any
}

func TextValue(s string) Value {
	return Value{kind: KindText, text: s}
}

func SequenceValue(s []any) Value {
	return Value{kind: KindSequence, seq: s}
}

func MappingValue(m map[any]any) Value {
	return Value{kind: KindMapping, mapping: m}
}

// SetValue wraps a set; membership is the key set of s.
func SetValue(s map[any]struct{}) Value {
	return Value{kind: KindSet, set: s}
}

func RecordValue(r map[string]any) Value {
	return Value{kind: KindRecord, record: r}
}

func (v Value) Kind() Kind             { return v.kind }
func (v Value) IsValid() bool          { return v.kind != KindInvalid }
func (v Value) Text() string           { return v.text }
func (v Value) Sequence() []any        { return v.seq }
func (v Value) Mapping() map[any]any   { return v.mapping }
func (v Value) Set() map[any]struct{}  { return v.set }
func (v Value) Record() map[string]any { return v.record }

// Any unwraps the payload. Invalid values yield nil.
func (v Value) Any() any {
	switch v.kind {
	case KindText:
		return v.text
	case KindSequence:
		return v.seq
	case KindMapping:
		return v.mapping
	case KindSet:
		return v.set
	case KindRecord:
		return v.record
	default:
		return nil
	}
}

// Of wraps dynamic data in a Value. Only string, []any, map[any]any,
// map[any]struct{} and map[string]any are recognised; anything else yields an
// invalid Value.
func Of(data any) Value {
	switch d := data.(type) {
	case Value:
		return d
	case string:
		return TextValue(d)
	case []any:
		return SequenceValue(d)
	case map[any]any:
		return MappingValue(d)
	case map[any]struct{}:
		return SetValue(d)
	case map[string]any:
		return RecordValue(d)
	default:
		return Value{}
	}
}

// Scrub replaces the value addressed by key with mask, dispatching on the
// container kind. Key or mask types that do not fit the kind leave v
// unchanged, except for Text where a non-string mask means DefaultMask.
// Sequence keys may be any integer type or an integral float.
func Scrub(v Value, key, mask any, opts ...Option[any]) (out Value) {
	defer recoverTo(&out, v)

	switch v.kind {
	case KindText:
		m, _ := mask.(string)
		return TextValue(Text(v.text, m))

	case KindSequence:
		index, ok := toIndex(key)
		if !ok {
			return v
		}
		return SequenceValue(Slice(v.seq, index, mask, opts...))

	case KindMapping:
		return MappingValue(Map(v.mapping, key, mask, opts...))

	case KindSet:
		return SetValue(Set(v.set, key, mask, opts...))

	case KindRecord:
		name, ok := key.(string)
		if !ok {
			return v
		}
		return RecordValue(Record(v.record, name, mask, opts...))
	}

	return v
}

// ScrubAny is Scrub for untyped data. Unsupported shapes are returned as is.
func ScrubAny(data, key, mask any, opts ...Option[any]) any {
	v := Of(data)
	if !v.IsValid() {
		return data
	}
	return Scrub(v, key, mask, opts...).Any()
}

func toIndex(key any) (int, bool) {
	switch k := key.(type) {
	case int:
		return k, true
	case int8:
		return int(k), true
	case int16:
		return int(k), true
	case int32:
		return int(k), true
	case int64:
		return int(k), true
	case uint8:
		return int(k), true
	case uint16:
		return int(k), true
	case uint32:
		return int(k), true
	case uint:
		if uint64(k) > math.MaxInt {
			return 0, false
		}
		return int(k), true
	case uint64:
		if k > math.MaxInt {
			return 0, false
		}
		return int(k), true
	case float32:
		return floatIndex(float64(k))
	case float64:
		return floatIndex(k)
	default:
		return 0, false
	}
}

// floatIndex accepts integral floats, which is how decoded JSON carries
// array indexes.
func floatIndex(f float64) (int, bool) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int(f), true
}
