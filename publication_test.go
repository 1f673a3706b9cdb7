package restq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertPublicationState_Member(t *testing.T) {
	state, err := ConvertPublicationState("live", DefaultPublicationStates)
	require.NoError(t, err)
	assert.Equal(t, PublicationLive, state)

	state, err = ConvertPublicationState("preview", DefaultPublicationStates)
	require.NoError(t, err)
	assert.Equal(t, PublicationPreview, state)
}

func TestConvertPublicationState_NonMember(t *testing.T) {
	_, err := ConvertPublicationState("draft", DefaultPublicationStates)
	require.Error(t, err)
	assert.True(t, IsInvalidInput(err))

	// The message lists the allowed states for the caller's 4xx response
	assert.Contains(t, err.Error(), "draft")
	assert.Contains(t, err.Error(), "live, preview")
}

func TestConvertPublicationState_NonString(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"number", 5},
		{"nil", nil},
		{"bool", true},
		{"array", []any{"live"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ConvertPublicationState(tt.input, DefaultPublicationStates)
			require.Error(t, err)
			assert.True(t, IsInvalidInput(err))
			assert.Contains(t, err.Error(), "expected one of")
		})
	}
}

func TestConvertPublicationState_CaseSensitive(t *testing.T) {
	_, err := ConvertPublicationState("Live", DefaultPublicationStates)
	require.Error(t, err)
	assert.True(t, IsInvalidInput(err))
}

func TestConvertPublicationState_CustomSet(t *testing.T) {
	valid := []PublicationState{"draft", "published", "archived"}

	state, err := ConvertPublicationState("archived", valid)
	require.NoError(t, err)
	assert.Equal(t, PublicationState("archived"), state)

	// The default states are not members of a custom set
	_, err = ConvertPublicationState("live", valid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "draft, published, archived")
}

func TestConvertPublicationState_EmptySet(t *testing.T) {
	_, err := ConvertPublicationState("live", nil)
	require.Error(t, err)
	assert.True(t, IsInvalidInput(err))
}
