package restq

import "strings"

// PublicationState selects records by content lifecycle: live restricts a
// query to published records, preview also admits drafts.
//
// The valid set is supplied by the caller (it belongs to whatever schema
// registry owns content types), never read from package state. The empty
// string is not a state - it marks "not requested" on Query.
type PublicationState string

const (
	// PublicationLive restricts results to published records.
	PublicationLive PublicationState = "live"

	// PublicationPreview admits draft records alongside published ones.
	PublicationPreview PublicationState = "preview"
)

// DefaultPublicationStates is the valid-state set used by the package-level
// Convert and by converters built without WithPublicationStates.
var DefaultPublicationStates = []PublicationState{PublicationLive, PublicationPreview}

// ConvertPublicationState validates the raw _publicationState value against
// the supplied valid-state enumeration.
//
// Membership is the only rule: any value outside the set (including
// non-string values) fails with an InvalidInputError listing the allowed
// states.
func ConvertPublicationState(v any, valid []PublicationState) (PublicationState, error) {
	if s, ok := v.(string); ok {
		for _, state := range valid {
			if state == PublicationState(s) {
				return state, nil
			}
		}
	}
	return "", invalidInputf(paramPublicationState,
		"unknown publication state %v (%T), expected one of: %s", v, v, joinStates(valid))
}

// joinStates renders the valid-state set for error messages.
func joinStates(states []PublicationState) string {
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
