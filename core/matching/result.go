package matching

// Kind classifies the outcome of a lookup.
type Kind int

const (
	// Absent means no candidate key was configured and no substitution happened.
	Absent Kind = iota
	// NoMatch means no candidate key was configured and the table's no-match
	// value was substituted.
	NoMatch
	// Found means the value came from a configured entry.
	Found
)

func (k Kind) String() string {
	switch k {
	case Found:
		return "found"
	case NoMatch:
		return "no_match"
	default:
		return "absent"
	}
}

// Result is the outcome of resolving a candidate key sequence.
type Result[T any] struct {
	Value T
	Kind  Kind
	// Key is the candidate key that matched; empty unless Kind is Found.
	Key string
}

// Matched reports whether the value came from a configured entry.
func (r Result[T]) Matched() bool {
	return r.Kind == Found
}
