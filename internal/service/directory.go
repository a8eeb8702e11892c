package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mosg85/Angeln-Eventplaner/internal/auth"
	"github.com/mosg85/Angeln-Eventplaner/internal/domain"
	"github.com/mosg85/Angeln-Eventplaner/internal/store"
	"github.com/wb-go/wbf/logger"
)

const (
	defaultMaxParticipants = 20
	defaultSpots           = 10
)

// DirectoryService owns the user and event records the registry and the
// engine operate on.
type DirectoryService struct {
	guard *store.Guard
	log   logger.Logger
}

func NewDirectoryService(guard *store.Guard, log logger.Logger) *DirectoryService {
	return &DirectoryService{guard: guard, log: log}
}

// Users

func (s *DirectoryService) RegisterUser(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if err := auth.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:             uuid.New().String(),
		Name:           input.Name,
		Email:          input.Email,
		PasswordHash:   hash,
		Role:           domain.RoleUser,
		Phone:          input.Phone,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	err = s.guard.Update(ctx, func(snap *domain.Snapshot) error {
		if snap.UserByEmail(input.Email) != nil {
			return domain.ErrEmailTaken
		}
		snap.Users = append(snap.Users, user)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("user registered",
		logger.String("user_id", user.ID),
		logger.String("email", user.Email),
	)

	return &user, nil
}

func (s *DirectoryService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	err := s.guard.View(ctx, func(snap *domain.Snapshot) error {
		u := snap.UserByID(id)
		if u == nil {
			return domain.ErrUserNotFound
		}
		user = *u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *DirectoryService) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := s.guard.View(ctx, func(snap *domain.Snapshot) error {
		users = append(users, snap.Users...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s *DirectoryService) UpdateUser(ctx context.Context, id string, input domain.UpdateUserInput) (*domain.User, error) {
	var user domain.User
	err := s.guard.Update(ctx, func(snap *domain.Snapshot) error {
		u := snap.UserByID(id)
		if u == nil {
			return domain.ErrUserNotFound
		}
		if input.Name != nil {
			u.Name = *input.Name
		}
		if input.Phone != nil {
			u.Phone = *input.Phone
		}
		if input.TelegramChatID != nil {
			u.TelegramChatID = input.TelegramChatID
		}
		if input.Password != nil {
			if err := auth.ValidatePassword(*input.Password); err != nil {
				return err
			}
			hash, err := auth.HashPassword(*input.Password)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			u.PasswordHash = hash
		}
		user = *u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user unless they are registered as a participant in
// any event.
func (s *DirectoryService) DeleteUser(ctx context.Context, id string) error {
	err := s.guard.Update(ctx, func(snap *domain.Snapshot) error {
		idx := -1
		for i := range snap.Users {
			if snap.Users[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return domain.ErrUserNotFound
		}

		for i := range snap.Events {
			if snap.Events[i].Participant(id) != nil {
				return domain.ErrUserInEvents
			}
		}

		snap.Users = append(snap.Users[:idx], snap.Users[idx+1:]...)
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("user deleted", logger.String("user_id", id))
	return nil
}

// Events

func (s *DirectoryService) CreateEvent(ctx context.Context, input domain.CreateEventInput, createdBy string) (*domain.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.MaxParticipants <= 0 {
		input.MaxParticipants = defaultMaxParticipants
	}
	if input.Spots <= 0 {
		input.Spots = defaultSpots
	}

	event := domain.Event{
		ID:              uuid.New().String(),
		Title:           input.Title,
		Date:            input.Date,
		Location:        input.Location,
		Description:     input.Description,
		Price:           input.Price,
		Image:           input.Image,
		MaxParticipants: input.MaxParticipants,
		Spots:           input.Spots,
		Participants:    []domain.Participant{},
		Order:           []string{},
		SpotMap:         map[string]domain.SeatAssignment{},
		Catches:         map[string]map[int]float64{},
		Rounds:          []domain.Round{},
		CurrentRound:    domain.RoundNotStarted,
		CreatedAt:       time.Now().UTC(),
		CreatedBy:       createdBy,
	}

	err := s.guard.Update(ctx, func(snap *domain.Snapshot) error {
		snap.Events = append(snap.Events, event)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("title", event.Title),
	)

	return &event, nil
}

func (s *DirectoryService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	var event domain.Event
	err := s.guard.View(ctx, func(snap *domain.Snapshot) error {
		e := snap.EventByID(id)
		if e == nil {
			return domain.ErrEventNotFound
		}
		event = *e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *DirectoryService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	var events []domain.Event
	err := s.guard.View(ctx, func(snap *domain.Snapshot) error {
		events = append(events, snap.Events...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

// UpdateEvent merges directory-level fields into an event. Participants,
// rotation order, seat map, catches and rounds always survive the merge.
func (s *DirectoryService) UpdateEvent(ctx context.Context, id string, input domain.UpdateEventInput) (*domain.Event, error) {
	var event domain.Event
	err := s.guard.Update(ctx, func(snap *domain.Snapshot) error {
		e := snap.EventByID(id)
		if e == nil {
			return domain.ErrEventNotFound
		}
		if input.Title != nil {
			e.Title = *input.Title
		}
		if input.Date != nil {
			e.Date = *input.Date
		}
		if input.Location != nil {
			e.Location = *input.Location
		}
		if input.Description != nil {
			e.Description = *input.Description
		}
		if input.Price != nil {
			e.Price = *input.Price
		}
		if input.Image != nil {
			e.Image = *input.Image
		}
		if input.MaxParticipants != nil && *input.MaxParticipants > 0 {
			e.MaxParticipants = *input.MaxParticipants
		}
		if input.Spots != nil && *input.Spots > 0 {
			e.Spots = *input.Spots
		}
		event = *e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *DirectoryService) DeleteEvent(ctx context.Context, id string) error {
	err := s.guard.Update(ctx, func(snap *domain.Snapshot) error {
		for i := range snap.Events {
			if snap.Events[i].ID == id {
				snap.Events = append(snap.Events[:i], snap.Events[i+1:]...)
				return nil
			}
		}
		return domain.ErrEventNotFound
	})
	if err != nil {
		return err
	}

	s.log.Info("event deleted", logger.String("event_id", id))
	return nil
}

// ListEventsWithStatus returns all events annotated with the registration
// state of one user.
func (s *DirectoryService) ListEventsWithStatus(ctx context.Context, userID string) ([]domain.EventStatus, error) {
	var result []domain.EventStatus
	err := s.guard.View(ctx, func(snap *domain.Snapshot) error {
		for i := range snap.Events {
			status := domain.EventStatus{Event: snap.Events[i]}
			if p := snap.Events[i].Participant(userID); p != nil {
				status.Registered = true
				status.PaymentMethod = p.PaymentMethod
				status.Paid = p.Paid
			}
			result = append(result, status)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UserEvents returns the events a user is registered for.
func (s *DirectoryService) UserEvents(ctx context.Context, userID string) ([]domain.EventStatus, error) {
	var result []domain.EventStatus
	err := s.guard.View(ctx, func(snap *domain.Snapshot) error {
		for i := range snap.Events {
			p := snap.Events[i].Participant(userID)
			if p == nil {
				continue
			}
			result = append(result, domain.EventStatus{
				Event:         snap.Events[i],
				Registered:    true,
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
