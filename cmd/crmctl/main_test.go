package main

import (
	"testing"

	"beautycrm_backend/internal/lifecycle/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKindsDeduplicates(t *testing.T) {
	types, err := parseKinds([]string{"merchant", "prospect", "merchant"})
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, domain.KindMerchant, types[0].Kind)
	assert.Equal(t, domain.KindProspect, types[1].Kind)
}

func TestParseKindsRejectsUnknownType(t *testing.T) {
	_, err := parseKinds([]string{"lead"})
	assert.ErrorContains(t, err, `unknown entity type "lead"`)
}

func TestRootCommandWiring(t *testing.T) {
	root := newRootCmd()

	for _, path := range [][]string{{"migrate", "up"}, {"migrate", "down"}, {"migrate", "status"}, {"rescore"}, {"import"}, {"token"}} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}

	token, _, err := root.Find([]string{"token"})
	require.NoError(t, err)
	assert.Error(t, token.Args(token, nil), "token requires a user id")
}
