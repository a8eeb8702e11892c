package service

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/mosg85/Angeln-Eventplaner/internal/domain"
	"github.com/mosg85/Angeln-Eventplaner/internal/service/ports"
	"github.com/mosg85/Angeln-Eventplaner/internal/store"
	"github.com/wb-go/wbf/logger"
)

// EngineService runs a tournament: it draws the starting order, rotates seats
// between rounds, records catches and computes the standings.
//
// The random source is injected so tests can pin the draw.
type EngineService struct {
	guard    *store.Guard
	notifier ports.EventNotifier
	rnd      *rand.Rand
	log      logger.Logger
}

func NewEngineService(guard *store.Guard, notifier ports.EventNotifier, rnd *rand.Rand, log logger.Logger) *EngineService {
	return &EngineService{
		guard:    guard,
		notifier: notifier,
		rnd:      rnd,
		log:      log,
	}
}

// Start opens round one: it shuffles the participants into a rotation order,
// assigns seats and clears any previous catches. An event whose roster does
// not fit on 2*spots seats is rejected.
func (s *EngineService) Start(ctx context.Context, eventID string) error {
	var (
		event domain.Event
		users []domain.User
	)
	err := s.guard.Update(ctx, func(snap *domain.Snapshot) error {
		e := snap.EventByID(eventID)
		if e == nil {
			return domain.ErrEventNotFound
		}
		if len(e.Participants) == 0 {
			return domain.ErrNoParticipants
		}
		if e.CurrentRound != domain.RoundNotStarted {
			return domain.ErrAlreadyStarted
		}
		if len(e.Participants) > 2*e.Spots {
			return fmt.Errorf("%w: %d participants for %d spots", domain.ErrCapacityExceeded, len(e.Participants), e.Spots)
		}

		order := make([]string, len(e.Participants))
		for i, p := range e.Participants {
			order[i] = p.UserID
		}
		s.rnd.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})

		e.Order = order
		e.CurrentRound = 1
		e.Rounds = []domain.Round{{Number: 1, StartedAt: time.Now().UTC()}}
		e.Catches = map[string]map[int]float64{}
		e.SpotMap = domain.AssignSeats(order, e.Spots)

		event = *e
		for _, id := range order {
			if u := snap.UserByID(id); u != nil {
				users = append(users, *u)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("event started",
		logger.String("event_id", eventID),
		logger.Int("participants", len(event.Order)),
	)

	s.notifyRound(ctx, users, event, 1)

	return nil
}

// AdvanceRound closes the open round, rotates the order by one position
// (last participant moves to the front) and seats everyone again.
func (s *EngineService) AdvanceRound(ctx context.Context, eventID string) (int, error) {
	var (
		event domain.Event
		users []domain.User
	)
	err := s.guard.Update(ctx, func(snap *domain.Snapshot) error {
		e := snap.EventByID(eventID)
		if e == nil {
			return domain.ErrEventNotFound
		}
		if e.CurrentRound == domain.RoundNotStarted {
			return domain.ErrNotStarted
		}
		if e.Finished() {
			return domain.ErrFinished
		}

		now := time.Now().UTC()
		for i := range e.Rounds {
			if e.Rounds[i].Number == e.CurrentRound {
				e.Rounds[i].FinishedAt = &now
				break
			}
		}

		e.Order = domain.Rotate(e.Order)
		e.CurrentRound++
		e.Rounds = append(e.Rounds, domain.Round{Number: e.CurrentRound, StartedAt: now})
		e.SpotMap = domain.AssignSeats(e.Order, e.Spots)

		event = *e
		for _, id := range e.Order {
			if u := snap.UserByID(id); u != nil {
				users = append(users, *u)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.Info("round advanced",
		logger.String("event_id", eventID),
		logger.Int("round", event.CurrentRound),
	)

	s.notifyRound(ctx, users, event, event.CurrentRound)

	return event.CurrentRound, nil
}

// RecordCatch upserts the catch of one participant for one round. A later
// call for the same round overwrites the earlier value. Rounds other than the
// open one are accepted so totals can be corrected afterwards.
func (s *EngineService) RecordCatch(ctx context.Context, eventID, userID string, round int, amount float64) error {
	if round < 1 {
		return fmt.Errorf("%w: round must be positive", domain.ErrValidation)
	}
	if amount < 0 {
		return fmt.Errorf("%w: catch amount cannot be negative", domain.ErrValidation)
	}

	return s.guard.Update(ctx, func(snap *domain.Snapshot) error {
		e := snap.EventByID(eventID)
		if e == nil {
			return domain.ErrEventNotFound
		}
		if e.Participant(userID) == nil {
			return domain.ErrParticipantNotFound
		}

		if e.Catches == nil {
			e.Catches = map[string]map[int]float64{}
		}
		if e.Catches[userID] == nil {
			e.Catches[userID] = map[int]float64{}
		}
		e.Catches[userID][round] = amount
		return nil
	})
}

// Finish puts the event into its terminal state. The reference application
// allows this from any state, including before the start.
func (s *EngineService) Finish(ctx context.Context, eventID string) error {
	err := s.guard.Update(ctx, func(snap *domain.Snapshot) error {
		e := snap.EventByID(eventID)
		if e == nil {
			return domain.ErrEventNotFound
		}
		e.CurrentRound = domain.RoundFinished
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("event finished", logger.String("event_id", eventID))
	return nil
}

// Standings sums all recorded catches per participant and sorts by total,
// highest first. Ties keep roster order.
func (s *EngineService) Standings(ctx context.Context, eventID string) ([]domain.Standing, error) {
	var standings []domain.Standing
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
			catches := map[int]float64{}
			var total float64
			for round, amount := range e.Catches[p.UserID] {
				catches[round] = amount
				total += amount
			}
			standings = append(standings, domain.Standing{
				UserID:  p.UserID,
				Name:    u.Name,
				Total:   total,
				Catches: catches,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Total > standings[j].Total
	})

	return standings, nil
}

func (s *EngineService) notifyRound(ctx context.Context, users []domain.User, event domain.Event, round int) {
	for i := range users {
		u := users[i]
		go s.notifier.NotifyRoundStarted(context.WithoutCancel(ctx), &u, &event, round)
	}
}
