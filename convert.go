package restq

import "strings"

// Reserved top-level parameter names.
const (
	paramSort             = "_sort"
	paramStart            = "_start"
	paramLimit            = "_limit"
	paramWhere            = "_where"
	paramPublicationState = "_publicationState"
)

// reservedParams are routed to dedicated parsers by Convert and excluded
// from the filter pipeline.
var reservedParams = map[string]bool{
	paramSort:             true,
	paramStart:            true,
	paramLimit:            true,
	paramWhere:            true,
	paramPublicationState: true,
}

// queryOperatorKeys are the filter-pipeline keys that keep their leading
// underscore when extra-root params are collected. Stripping it would turn
// _or into the field "or" and break boolean groups given at the root.
var queryOperatorKeys = map[string]bool{
	"_where": true,
	"_or":    true,
	"_and":   true,
}

// Converter translates raw REST query params into query descriptors.
//
// A Converter is immutable after construction and safe for concurrent use;
// Convert is a pure function of its arguments. The zero configuration
// (package-level Convert, or New with no options) validates
// _publicationState against DefaultPublicationStates.
type Converter struct {
	states []PublicationState
}

// Option configures a Converter.
type Option func(*Converter)

// WithPublicationStates replaces the valid publication-state set.
//
// The set normally comes from whatever registry owns content types. The
// slice is copied to keep the Converter immutable.
func WithPublicationStates(states ...PublicationState) Option {
	return func(c *Converter) {
		c.states = make([]PublicationState, len(states))
		copy(c.states, states)
	}
}

// New creates a Converter. With no options it accepts the default
// publication states (live, preview).
func New(opts ...Option) *Converter {
	c := &Converter{states: DefaultPublicationStates}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert translates raw params with the default configuration.
// See Converter.Convert.
func Convert(raw map[string]any, defaults *Defaults) (*Query, error) {
	return New().Convert(raw, defaults)
}

// Convert translates a raw params mapping into a normalized descriptor.
//
// The descriptor is seeded with DefaultStart and DefaultLimit, then
// overlaid with defaults. A nil or empty raw mapping returns the seeded
// descriptor as-is (no sort or where processing). Otherwise the recognized
// top-level params (_sort, _start, _limit, _publicationState) are parsed
// individually, and every remaining key joins the filter pipeline:
//
//   - remaining keys are "extra root" filters, legacy shorthand for _where
//     entries; one leading underscore is stripped (except from the boolean
//     keys _or and _and, which parse as compositions)
//   - extra-root clauses come first, explicit _where clauses after them
//   - the combined clause list replaces any default where list
//
// The first invalid parameter aborts the call with an InvalidInputError;
// no partial descriptor is returned. Raw mappings are read in sorted key
// order, so identical input always produces an identical descriptor.
func (c *Converter) Convert(raw map[string]any, defaults *Defaults) (*Query, error) {
	q := &Query{
		Start: DefaultStart,
		Limit: DefaultLimit,
		Where: []Clause{},
	}
	applyDefaults(q, defaults)

	if len(raw) == 0 {
		return q, nil
	}

	if v, ok := raw[paramSort]; ok {
		sort, err := ConvertSort(v)
		if err != nil {
			return nil, err
		}
		q.Sort = sort
	}
	if v, ok := raw[paramStart]; ok {
		start, err := ConvertStart(v)
		if err != nil {
			return nil, err
		}
		q.Start = start
	}
	if v, ok := raw[paramLimit]; ok {
		limit, err := ConvertLimit(v)
		if err != nil {
			return nil, err
		}
		q.Limit = limit
	}
	if v, ok := raw[paramPublicationState]; ok {
		state, err := ConvertPublicationState(v, c.states)
		if err != nil {
			return nil, err
		}
		q.PublicationState = state
	}

	where := []Clause{}
	if extra := extraRootParams(raw); len(extra) > 0 {
		clauses, err := ParseWhere(extra)
		if err != nil {
			return nil, err
		}
		where = append(where, clauses...)
	}
	if v, ok := raw[paramWhere]; ok {
		clauses, err := ParseWhere(v)
		if err != nil {
			return nil, err
		}
		where = append(where, clauses...)
	}
	q.Where = where

	return q, nil
}

// ToParams guards the untyped boundary where raw params arrive as decoded
// JSON. A mapping passes through; nil (JSON null) and every other type are
// rejected, so malformed top-level params fail here instead of producing an
// empty query.
func ToParams(v any) (map[string]any, error) {
	switch val := v.(type) {
	case map[string]any:
		return val, nil
	case nil:
		return nil, invalidInputf("", "query parameters must be a mapping, got null")
	default:
		return nil, invalidInputf("", "query parameters must be a mapping, got %v (%T)", v, v)
	}
}

// applyDefaults overlays trusted defaults onto the seeded descriptor.
// Slices are copied so later caller mutation of the Defaults value cannot
// reach the descriptor.
func applyDefaults(q *Query, defaults *Defaults) {
	if defaults == nil {
		return
	}
	if defaults.Start != nil {
		q.Start = *defaults.Start
	}
	if defaults.Limit != nil {
		q.Limit = *defaults.Limit
	}
	if defaults.Sort != nil {
		q.Sort = make([]SortEntry, len(defaults.Sort))
		copy(q.Sort, defaults.Sort)
	}
	if defaults.PublicationState != "" {
		q.PublicationState = defaults.PublicationState
	}
	if defaults.Where != nil {
		q.Where = make([]Clause, len(defaults.Where))
		copy(q.Where, defaults.Where)
	}
}

// extraRootParams collects the non-reserved top-level keys into a filter
// mapping. Keys are visited in sorted order; when underscore stripping
// collides (both _title and title present), the later key wins.
func extraRootParams(raw map[string]any) map[string]any {
	extra := make(map[string]any)
	for _, key := range sortedKeys(raw) {
		if reservedParams[key] {
			continue
		}
		name := key
		if strings.HasPrefix(key, "_") && !queryOperatorKeys[key] {
			name = key[1:]
		}
		extra[name] = raw[key]
	}
	return extra
}
