package conversation

import (
	"github.com/BruksfildServices01/fortune-club/internal/domain/identity"
	"github.com/BruksfildServices01/fortune-club/internal/httperr"
	"github.com/BruksfildServices01/fortune-club/internal/models"
)

// Pair is an unordered pair of users, stored smaller id first.
type Pair struct {
	A uint
	B uint
}

func NewPair(u, v uint) (Pair, error) {
	if u == 0 || v == 0 {
		return Pair{}, httperr.Validation("participant2_id", "invalid_participant", "Participant does not exist.")
	}
	if u == v {
		return Pair{}, httperr.Validation("participant2_id", "self_conversation", "You cannot start a conversation with yourself.")
	}
	if u > v {
		u, v = v, u
	}
	return Pair{A: u, B: v}, nil
}

func IsParticipant(c *models.Conversation, userID uint) bool {
	return userID != 0 && (c.ParticipantAID == userID || c.ParticipantBID == userID)
}

// CanAccess guards reads and writes on a conversation's message log.
func CanAccess(c *models.Conversation, actor identity.Actor) error {
	if !IsParticipant(c, actor.UserID) {
		return httperr.Forbidden("not_conversation_participant")
	}
	return nil
}

// Other returns the participant that is not userID.
func Other(c *models.Conversation, userID uint) uint {
	if c.ParticipantAID == userID {
		return c.ParticipantBID
	}
	return c.ParticipantAID
}
