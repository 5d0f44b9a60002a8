package post

import (
	"github.com/BruksfildServices01/fortune-club/internal/domain/identity"
	"github.com/BruksfildServices01/fortune-club/internal/httperr"
	"github.com/BruksfildServices01/fortune-club/internal/models"
)

// Scope is the filter a viewer's feed is built from.
type Scope struct {
	All bool
	// AuthorID, when non-zero, adds every post of that author regardless of status.
	AuthorID uint
}

// ScopeFor encodes the feed rule: privileged viewers see everything,
// authenticated viewers see published posts plus all of their own,
// anonymous viewers see published posts only.
func ScopeFor(viewer identity.Actor) Scope {
	if viewer.Privileged {
		return Scope{All: true}
	}
	if viewer.IsAuthenticated() {
		return Scope{AuthorID: viewer.UserID}
	}
	return Scope{}
}

// Visible applies the same rule to a single post.
func Visible(p *models.Post, viewer identity.Actor) bool {
	scope := ScopeFor(viewer)
	if scope.All {
		return true
	}
	if Status(p.Status) == StatusPublished {
		return true
	}
	return scope.AuthorID != 0 && p.AuthorID == scope.AuthorID
}

// CanModify restricts content edits and deletion to the author.
func CanModify(p *models.Post, actor identity.Actor) error {
	if !actor.Is(p.AuthorID) {
		return httperr.Forbidden("not_post_author")
	}
	return nil
}

func CanModerate(actor identity.Actor) error {
	if !actor.Privileged {
		return httperr.Forbidden("moderation_not_allowed")
	}
	return nil
}
