package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseApprovalStatus(t *testing.T) {
	status, ok := ParseApprovalStatus("Approved")
	require.True(t, ok)
	assert.Equal(t, StatusApproved, status)

	_, ok = ParseApprovalStatus("archived")
	assert.False(t, ok)
}

func TestApprovalStatusJSONRoundTrip(t *testing.T) {
	payload, err := json.Marshal(StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, `"rejected"`, string(payload))

	var status ApprovalStatus
	require.NoError(t, json.Unmarshal([]byte(`"pending"`), &status))
	assert.Equal(t, StatusPending, status)

	assert.Error(t, json.Unmarshal([]byte(`"unknown"`), &status))
}

func TestParsePurchaseCategory(t *testing.T) {
	category, ok := ParsePurchaseCategory("KPG")
	require.True(t, ok)
	assert.Equal(t, CategoryKPG, category)

	_, ok = ParsePurchaseCategory("rental")
	assert.False(t, ok)
}
