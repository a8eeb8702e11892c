package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/mosg85/Angeln-Eventplaner/internal/auth"
	"github.com/mosg85/Angeln-Eventplaner/internal/domain"
)

// DefaultAdminPassword is the initial credential of the seeded admin account.
// It should be changed right after the first login.
const DefaultAdminPassword = "admin123"

// DefaultSnapshot builds the dataset a fresh installation starts with: one
// admin account and a few sample events.
func DefaultSnapshot() *domain.Snapshot {
	now := time.Now().UTC()

	hash, err := auth.HashPassword(DefaultAdminPassword)
	if err != nil {
		// bcrypt only fails on an out-of-range cost, which is constant here.
		panic(err)
	}

	admin := domain.User{
		ID:           uuid.New().String(),
		Name:         "Admin",
		Email:        "admin@angel-event.de",
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
	}

	events := []domain.Event{
		{
			ID:              uuid.New().String(),
			Title:           "Hecht-Cup 2026",
			Date:            time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC),
			Location:        "Müggelsee, Berlin",
			Description:     "Traditionsreicher Hecht-Wettkampf mit tollen Preisen.",
			Price:           25,
			Image:           "fas fa-water",
			MaxParticipants: 20,
			Spots:           10,
		},
		{
			ID:              uuid.New().String(),
			Title:           "Karpfen-Meisterschaft",
			Date:            time.Date(2026, 6, 22, 0, 0, 0, 0, time.UTC),
			Location:        "Chiemsee, Bayern",
			Description:     "Das größte Karpfentreffen im Süden.",
			Price:           30,
			Image:           "fas fa-fish",
			MaxParticipants: 30,
			Spots:           15,
		},
		{
			ID:              uuid.New().String(),
			Title:           "Seeangeln auf Zander",
			Date:            time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
			Location:        "Bodensee",
			Description:     "Vom Boot aus auf Zander – für erfahrene Angler.",
			Price:           40,
			Image:           "fas fa-ship",
			MaxParticipants: 15,
			Spots:           8,
		},
	}
	for i := range events {
		events[i].Participants = []domain.Participant{}
		events[i].Order = []string{}
		events[i].SpotMap = map[string]domain.SeatAssignment{}
		events[i].Catches = map[string]map[int]float64{}
		events[i].Rounds = []domain.Round{}
		events[i].CurrentRound = domain.RoundNotStarted
		events[i].CreatedAt = now
		events[i].CreatedBy = admin.ID
	}

	return &domain.Snapshot{
		Users:       []domain.User{admin},
		Events:      events,
		ResetTokens: []domain.ResetToken{},
	}
}
