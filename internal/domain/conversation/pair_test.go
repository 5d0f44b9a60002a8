package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/fortune-club/internal/domain/identity"
	"github.com/BruksfildServices01/fortune-club/internal/httperr"
	"github.com/BruksfildServices01/fortune-club/internal/models"
)

func TestNewPair_Normalizes(t *testing.T) {
	p1, err := NewPair(9, 4)
	require.NoError(t, err)
	p2, err := NewPair(4, 9)
	require.NoError(t, err)

	assert.Equal(t, Pair{A: 4, B: 9}, p1)
	assert.Equal(t, p1, p2)
}

func TestNewPair_RejectsSelfAndZero(t *testing.T) {
	_, err := NewPair(3, 3)
	assert.True(t, httperr.IsBusiness(err, "self_conversation"))

	_, err = NewPair(3, 0)
	assert.True(t, httperr.IsBusiness(err, "invalid_participant"))
}

func TestCanAccess(t *testing.T) {
	c := &models.Conversation{ID: 1, ParticipantAID: 2, ParticipantBID: 5}

	assert.NoError(t, CanAccess(c, identity.Actor{UserID: 2}))
	assert.NoError(t, CanAccess(c, identity.Actor{UserID: 5}))

	err := CanAccess(c, identity.Actor{UserID: 7, Privileged: true})
	assert.True(t, httperr.IsKind(err, httperr.KindAuthorization))
	assert.Error(t, CanAccess(c, identity.Anonymous()))

	assert.Equal(t, uint(5), Other(c, 2))
	assert.Equal(t, uint(2), Other(c, 5))
}
