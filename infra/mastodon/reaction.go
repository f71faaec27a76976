package mastodon

import (
	"context"

	"github.com/CrestNiraj12/tootview/app"
	"github.com/CrestNiraj12/tootview/domain"
)

var _ app.ReactionService = (*Client)(nil)

// AddReaction reacts to a status with emoji, either a unicode emoji or a
// custom emoji shortcode without colons.
func (c *Client) AddReaction(ctx context.Context, statusID, emoji string) (domain.Status, error) {
	return c.react(ctx, opAddReaction, statusID, emoji)
}

// RemoveReaction withdraws the authenticated user's emoji reaction.
func (c *Client) RemoveReaction(ctx context.Context, statusID, emoji string) (domain.Status, error) {
	return c.react(ctx, opRemoveReaction, statusID, emoji)
}

func (c *Client) react(ctx context.Context, op, statusID, emoji string) (domain.Status, error) {
	var st domain.Status
	params := map[string]string{"id": statusID, "emoji": emoji}
	if err := c.call(ctx, op, params, nil, &st); err != nil {
		return domain.Status{}, err
	}
	return st, nil
}
