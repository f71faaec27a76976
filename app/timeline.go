package app

import (
	"context"

	"github.com/CrestNiraj12/tootview/domain"
)

// TimelineService fetches pages of statuses, newest first.
type TimelineService interface {
	// FetchHome returns the authenticated user's home timeline.
	FetchHome(ctx context.Context, page domain.PageParams) ([]domain.Status, error)

	// FetchLocal returns the public timeline restricted to the instance.
	FetchLocal(ctx context.Context, page domain.PageParams) ([]domain.Status, error)

	// FetchGlobal returns the federated public timeline.
	FetchGlobal(ctx context.Context, page domain.PageParams) ([]domain.Status, error)

	// FetchAccountStatuses returns statuses posted by one account.
	FetchAccountStatuses(ctx context.Context, accountID string, page domain.PageParams) ([]domain.Status, error)
}
