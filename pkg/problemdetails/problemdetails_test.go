package problemdetails

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_BuildsTypeURI(t *testing.T) {
	p := New(http.StatusNotFound, TypeNotFound, "Not Found", "link not found")

	assert.Equal(t, "https://link-tracker.dev/problems/not-found", p.Type)
	assert.Equal(t, http.StatusNotFound, p.Status)
	assert.False(t, p.Retryable)
}

func TestNewRetryable_SetsFlagInJSON(t *testing.T) {
	p := NewRetryable(http.StatusServiceUnavailable, TypeStorageUnavailable, "Service Unavailable", "storage unavailable")

	body, err := json.Marshal(p)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, true, decoded["retryable"])
	assert.NotContains(t, decoded, "errors")
}

func TestNewValidation_CarriesFieldErrors(t *testing.T) {
	p := NewValidation([]FieldError{{Field: "destination_url", Message: "cannot be blank"}})

	assert.Equal(t, http.StatusBadRequest, p.Status)
	assert.Equal(t, "https://link-tracker.dev/problems/validation-error", p.Type)
	require.Len(t, p.Errors, 1)
	assert.Equal(t, "destination_url", p.Errors[0].Field)
}
