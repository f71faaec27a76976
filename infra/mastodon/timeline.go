package mastodon

import (
	"context"
	"net/url"
	"strconv"

	"github.com/CrestNiraj12/tootview/app"
	"github.com/CrestNiraj12/tootview/domain"
)

var _ app.TimelineService = (*Client)(nil)

// FetchHome returns the home timeline, newest first.
func (c *Client) FetchHome(ctx context.Context, page domain.PageParams) ([]domain.Status, error) {
	return c.fetchStatuses(ctx, opFetchHome, nil, page)
}

// FetchLocal returns the instance-local public timeline. Always sends local=true.
func (c *Client) FetchLocal(ctx context.Context, page domain.PageParams) ([]domain.Status, error) {
	return c.fetchStatuses(ctx, opFetchLocal, nil, page)
}

// FetchGlobal returns the federated public timeline. Always sends local=false.
func (c *Client) FetchGlobal(ctx context.Context, page domain.PageParams) ([]domain.Status, error) {
	return c.fetchStatuses(ctx, opFetchGlobal, nil, page)
}

// FetchAccountStatuses returns statuses posted by accountID.
func (c *Client) FetchAccountStatuses(ctx context.Context, accountID string, page domain.PageParams) ([]domain.Status, error) {
	return c.fetchStatuses(ctx, opFetchAccountStatuses, map[string]string{"id": accountID}, page)
}

func (c *Client) fetchStatuses(ctx context.Context, op string, params map[string]string, page domain.PageParams) ([]domain.Status, error) {
	var statuses []domain.Status
	if err := c.call(ctx, op, params, pageQuery(page), &statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}

// pageQuery encodes pagination. Cursors are opaque and only sent when set;
// limit is always sent.
func pageQuery(p domain.PageParams) url.Values {
	q := url.Values{}
	if p.MaxID != "" {
		q.Set("max_id", p.MaxID)
	}
	if p.SinceID != "" {
		q.Set("since_id", p.SinceID)
	}
	q.Set("limit", strconv.Itoa(p.EffectiveLimit()))
	return q
}
