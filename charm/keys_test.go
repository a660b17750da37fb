// ABOUTME: Tests for the JSON blob helpers over the KV vault
// ABOUTME: Covers the not-found sentinel and backend failure passthrough
package charm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJSONMissingKeyReturnsSentinel(t *testing.T) {
	client, cleanup := NewTestClient(t)
	defer cleanup()

	var out []string
	err := client.GetJSON(KeyGrants, &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrKeyNotFound))
}

func TestSetGetJSONRoundTrip(t *testing.T) {
	client, cleanup := NewTestClient(t)
	defer cleanup()

	in := []string{"one", "two"}
	require.NoError(t, client.SetJSON(KeyTodos, in))

	var out []string
	require.NoError(t, client.GetJSON(KeyTodos, &out))
	assert.Equal(t, in, out)
}

func TestGetJSONSurfacesBackendFailure(t *testing.T) {
	client, cleanup := NewTestClient(t)
	cleanup() // close the backend so reads fail for a reason other than a missing key

	var out []string
	err := client.GetJSON(KeyGrants, &out)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrKeyNotFound),
		"an IO failure must not be reported as a missing key")
}
