package optsearch

import (
	"sort"
	"strconv"
)

// FilterState maps filter keys to the set of raw values accepted for that
// key. It is an explicit, owned state object: construct one per page or
// session and pass it into the query engine. A key that is absent imposes
// no constraint on that field.
//
// A nil FilterState matches every record.
type FilterState struct {
	accepted map[string]map[string]struct{}
}

// NewFilterState returns an empty FilterState.
func NewFilterState() *FilterState {
	return &FilterState{accepted: make(map[string]map[string]struct{})}
}

// Apply replaces the accepted set for key with values. An empty values
// slice removes the constraint entirely; it never means "match nothing".
func (s *FilterState) Apply(key string, values []string) {
	if len(values) == 0 {
		delete(s.accepted, key)
		return
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	s.accepted[key] = set
}

// Active reports whether any constraint is in effect.
func (s *FilterState) Active() bool {
	return s != nil && len(s.accepted) > 0
}

// Keys returns the constrained keys in sorted order.
func (s *FilterState) Keys() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, 0, len(s.accepted))
	for k := range s.accepted {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Values returns the accepted values for key in sorted order, or nil if the
// key is unconstrained.
func (s *FilterState) Values(key string) []string {
	if s == nil {
		return nil
	}
	set, ok := s.accepted[key]
	if !ok {
		return nil
	}
	values := make([]string, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// Clone returns an independent copy of the state.
func (s *FilterState) Clone() *FilterState {
	clone := NewFilterState()
	if s == nil {
		return clone
	}
	for k := range s.accepted {
		clone.Apply(k, s.Values(k))
	}
	return clone
}

// Match reports whether the record satisfies every active constraint.
// Membership within a key's accepted set is a disjunction; constraints
// across keys are a conjunction. A record missing a constrained field does
// not match.
func (s *FilterState) Match(r Record) bool {
	if s == nil {
		return true
	}
	for key, set := range s.accepted {
		v, ok := r.Field(key)
		if !ok {
			return false
		}
		if !memberOf(set, v) {
			return false
		}
	}
	return true
}

// memberOf tests set membership for a record field value. Array-valued
// fields match if any element is accepted.
func memberOf(set map[string]struct{}, v any) bool {
	if elems, ok := v.([]any); ok {
		for _, e := range elems {
			if _, ok := set[CanonicalValue(e)]; ok {
				return true
			}
		}
		return false
	}
	_, ok := set[CanonicalValue(v)]
	return ok
}

// CanonicalValue converts a record field value to the string form used for
// filter set membership. JSON numbers format without a trailing ".0" so
// that integer counts compare equal to their chip option values.
func CanonicalValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		return ""
	}
}
