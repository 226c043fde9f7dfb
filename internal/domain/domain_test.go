package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhaseValid(t *testing.T) {
	valid := []Phase{PhaseDiscovery, PhasePackage, PhaseDocuments, PhaseConfirmation, PhasePayment, PhaseComplete}
	for _, p := range valid {
		assert.True(t, p.Valid(), "%q should be valid", p)
	}

	for _, p := range []Phase{"", "Discovery", "onboarding", "payment "} {
		assert.False(t, p.Valid(), "%q should be invalid", p)
	}
}

func TestMessageJSONOmitsEmptyFields(t *testing.T) {
	data, err := json.Marshal(Message{ID: "m1", Role: RoleUser, Content: "hi"})
	require.NoError(t, err)

	s := string(data)
	assert.NotContains(t, s, "uiAction")
	assert.NotContains(t, s, "extractedData")
	assert.NotContains(t, s, "rawResponse")
	assert.NotContains(t, s, "isError")
}

func TestUIActionRoundTrip(t *testing.T) {
	raw := `{"type":"buttons","data":{"options":["Retail","Restaurant"]}}`

	var a UIAction
	require.NoError(t, json.Unmarshal([]byte(raw), &a))
	assert.Equal(t, ActionButtons, a.Type)

	// The payload is opaque and survives untouched.
	out, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

func TestSnapshotSerialization(t *testing.T) {
	snap := Snapshot{
		BusinessType: BusinessRestaurant,
		BusinessInfo: BusinessInfo{Name: "Blue Bottle"},
		Locations:    []Location{{Name: "Downtown", Address: "1 Main St", Contact: "555-0100"}},
		ExtractedData: map[string]string{
			"monthlyVolume": "40000",
		},
	}

	data, err := json.Marshal(snap)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "restaurant", decoded["businessType"])
	assert.Contains(t, decoded, "locations")
	assert.Contains(t, decoded, "extractedData")
}
