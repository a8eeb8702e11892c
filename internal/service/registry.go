package service

import (
	"context"

	"github.com/mosg85/Angeln-Eventplaner/internal/domain"
	"github.com/mosg85/Angeln-Eventplaner/internal/service/ports"
	"github.com/mosg85/Angeln-Eventplaner/internal/store"
	"github.com/wb-go/wbf/logger"
)

// RegistryService manages the roster of an event. Registration and
// cancellation are only possible while the event has not started.
type RegistryService struct {
	guard    *store.Guard
	notifier ports.EventNotifier
	log      logger.Logger
}

func NewRegistryService(guard *store.Guard, notifier ports.EventNotifier, log logger.Logger) *RegistryService {
	return &RegistryService{
		guard:    guard,
		notifier: notifier,
		log:      log,
	}
}

func (s *RegistryService) Register(ctx context.Context, eventID, userID string, method domain.PaymentMethod) error {
	if method == "" {
		method = domain.PaymentCash
	}

	var (
		user  domain.User
		event domain.Event
	)
	err := s.guard.Update(ctx, func(snap *domain.Snapshot) error {
		e := snap.EventByID(eventID)
		if e == nil {
			return domain.ErrEventNotFound
		}
		u := snap.UserByID(userID)
		if u == nil {
			return domain.ErrUserNotFound
		}
		if e.Participant(userID) != nil {
			return domain.ErrAlreadyRegistered
		}
		if len(e.Participants) >= e.MaxParticipants {
			return domain.ErrCapacityExceeded
		}
		if e.Started() {
			return domain.ErrAlreadyStarted
		}

		e.Participants = append(e.Participants, domain.Participant{
			UserID:        userID,
			PaymentMethod: method,
			Paid:          false,
		})
		user, event = *u, *e
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("participant registered",
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
		logger.String("payment_method", string(method)),
	)

	go s.notifier.NotifyRegistered(context.WithoutCancel(ctx), &user, &event)

	return nil
}

func (s *RegistryService) Cancel(ctx context.Context, eventID, userID string) error {
	var (
		user  domain.User
		event domain.Event
	)
	err := s.guard.Update(ctx, func(snap *domain.Snapshot) error {
		e := snap.EventByID(eventID)
		if e == nil {
			return domain.ErrEventNotFound
		}
		idx := -1
		for i := range e.Participants {
			if e.Participants[i].UserID == userID {
				idx = i
				break
			}
		}
		if idx == -1 {
			return domain.ErrParticipantNotFound
		}
		if e.Started() {
			return domain.ErrAlreadyStarted
		}

		e.Participants = append(e.Participants[:idx], e.Participants[idx+1:]...)
		event = *e
		if u := snap.UserByID(userID); u != nil {
			user = *u
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("participant cancelled",
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
	)

	if user.ID != "" {
		go s.notifier.NotifyCancelled(context.WithoutCancel(ctx), &user, &event)
	}

	return nil
}

// SetPaid flips the payment flag of a participant. The operation is
// idempotent.
func (s *RegistryService) SetPaid(ctx context.Context, eventID, userID string, paid bool) error {
	return s.guard.Update(ctx, func(snap *domain.Snapshot) error {
		e := snap.EventByID(eventID)
		if e == nil {
			return domain.ErrEventNotFound
		}
		p := e.Participant(userID)
		if p == nil {
			return domain.ErrParticipantNotFound
		}
		p.Paid = paid
		return nil
	})
}

// ListParticipants joins the roster with user profiles. Entries whose user
// record no longer exists are dropped.
func (s *RegistryService) ListParticipants(ctx context.Context, eventID string) ([]domain.ParticipantInfo, error) {
	var result []domain.ParticipantInfo
	err := s.guard.View(ctx, func(snap *domain.Snapshot) error {
		e := snap.EventByID(eventID)
		if e == nil {
			return domain.ErrEventNotFound
		}
		for _, p := range e.Participants {
			u := snap.UserByID(p.UserID)
			if u == nil {
				continue
			}
			result = append(result, domain.ParticipantInfo{
				UserID:        u.ID,
				Name:          u.Name,
				Email:         u.Email,
				Phone:         u.Phone,
				PaymentMethod: p.PaymentMethod,
				Paid:          p.Paid,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AvailableUsers returns the users not yet registered for the event.
func (s *RegistryService) AvailableUsers(ctx context.Context, eventID string) ([]domain.User, error) {
	var result []domain.User
	err := s.guard.View(ctx, func(snap *domain.Snapshot) error {
		e := snap.EventByID(eventID)
		if e == nil {
			return domain.ErrEventNotFound
		}
		for i := range snap.Users {
			if e.Participant(snap.Users[i].ID) == nil {
				result = append(result, snap.Users[i])
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
