package app

import (
	"context"

	"github.com/CrestNiraj12/tootview/domain"
)

// ReactionService adds and removes emoji reactions.
// Both calls return the status as the service sees it afterwards.
type ReactionService interface {
	AddReaction(ctx context.Context, statusID, emoji string) (domain.Status, error)
	RemoveReaction(ctx context.Context, statusID, emoji string) (domain.Status, error)
}
