package ports

import (
	"context"

	"github.com/mosg85/Angeln-Eventplaner/internal/domain"
)

type EventNotifier interface {
	NotifyRegistered(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyCancelled(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyRoundStarted(ctx context.Context, user *domain.User, event *domain.Event, round int)
}
