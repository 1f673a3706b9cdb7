package restq

import "encoding/json"

// Query pagination defaults, applied before any defaults overlay.
const (
	// DefaultStart is the offset used when neither params nor defaults set one.
	DefaultStart = 0

	// DefaultLimit is the page size used when neither params nor defaults set
	// one. Use NoLimit to disable paging.
	DefaultLimit = 100

	// NoLimit is the sentinel limit meaning "return everything".
	NoLimit = -1
)

// SortOrder is the direction of one sort entry.
type SortOrder string

const (
	// OrderAsc sorts ascending. This is the default when a sort entry names
	// only a field.
	OrderAsc SortOrder = "asc"

	// OrderDesc sorts descending.
	OrderDesc SortOrder = "desc"
)

// SortEntry maps one field path to a sort direction.
//
// Entry order is significant: the first entry is the primary sort key.
// Field may be a dotted path (e.g., "author.name"); it is carried through
// exactly as given, never validated against a schema.
type SortEntry struct {
	Field string
	Order SortOrder
}

// MarshalJSON implements json.Marshaler for SortEntry.
// Each entry encodes as a single-key object: {"price":"desc"}.
func (e SortEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]SortOrder{e.Field: e.Order})
}

// Query is the normalized query descriptor produced by Convert.
//
// A descriptor is created fresh per call and owned exclusively by the
// caller; nothing in this package retains or mutates it after return.
//
// Field semantics:
//   - Start: non-negative row offset (DefaultStart when unset)
//   - Limit: page size, NoLimit or non-negative (DefaultLimit when unset)
//   - Sort: ordered sort entries; nil when sorting was never requested
//   - PublicationState: requested state; empty when never requested
//   - Where: ordered filter clauses; never nil on descriptors from Convert
//
// The JSON encoding omits sort and publicationState when absent and always
// carries where, matching the shape downstream query builders consume:
//
//	{"start":0,"limit":100,"where":[]}
type Query struct {
	Start            int              `json:"start"`
	Limit            int              `json:"limit"`
	Sort             []SortEntry      `json:"sort,omitempty"`
	PublicationState PublicationState `json:"publicationState,omitempty"`
	Where            []Clause         `json:"where"`
}

// Defaults seeds a descriptor before raw params are applied.
//
// Defaults come from trusted code (route config, model settings), not from
// the wire, so they are overlaid without validation. Nil pointers and zero
// values mean "not supplied". Raw params override defaults field by field;
// any non-empty params mapping replaces Where entirely (the parsed clause
// list is assigned, not appended to the default one).
type Defaults struct {
	Start            *int
	Limit            *int
	Sort             []SortEntry
	PublicationState PublicationState
	Where            []Clause
}
