// Package status defines the closed severity enumeration shared by every
// node in a status tree, together with its canonical string codec.
package status

// Status is the health state of a single node. The zero value is Green;
// nodes that have never been written or computed hold Unknown instead,
// which callers must set explicitly.
type Status uint8

const (
	Green Status = iota
	Yellow
	Red
	Unknown
)

// severity ranks the three known values for "worst of" comparisons.
// Unknown deliberately has no rank here; rules decide how to treat it.
var severity = map[Status]int{
	Green:  0,
	Yellow: 1,
	Red:    2,
}

// String returns the canonical lowercase form. It is total: any value
// outside the enumeration renders as "unknown".
func (s Status) String() string {
	switch s {
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Red:
		return "red"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler using the canonical
// lowercase form, so statuses render as "green" (not a number) in JSON.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Like Parse, it is
// total and never returns an error.
func (s *Status) UnmarshalText(text []byte) error {
	*s = Parse(string(text))
	return nil
}

// Parse decodes a canonical lowercase status string. Decoding never fails:
// anything that is not exactly "green", "yellow" or "red" (including other
// casings) maps to Unknown.
func Parse(s string) Status {
	switch s {
	case "green":
		return Green
	case "yellow":
		return Yellow
	case "red":
		return Red
	default:
		return Unknown
	}
}

// Worse reports whether s is strictly more severe than other under the
// ordering Green < Yellow < Red. Unknown is never worse than anything and
// nothing is worse than it; callers that want Unknown to dominate must
// check for it explicitly.
func (s Status) Worse(other Status) bool {
	sr, ok := severity[s]
	if !ok {
		return false
	}
	or, ok := severity[other]
	if !ok {
		return false
	}
	return sr > or
}
