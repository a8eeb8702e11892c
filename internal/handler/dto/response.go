package dto

import (
	"time"

	"github.com/mosg85/Angeln-Eventplaner/internal/domain"
)

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"created_at"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type SeatResponse struct {
	Spot int    `json:"spot"`
	Side string `json:"side"`
}

type RoundResponse struct {
	Round      int     `json:"round"`
	StartedAt  string  `json:"started_at"`
	FinishedAt *string `json:"finished_at"`
}

type ParticipantResponse struct {
	UserID        string `json:"user_id"`
	PaymentMethod string `json:"payment_method"`
	Paid          bool   `json:"paid"`
}

type EventResponse struct {
	ID                  string                     `json:"id"`
	Title               string                     `json:"title"`
	Date                string                     `json:"date"`
	Location            string                     `json:"location"`
	Description         string                     `json:"description"`
	Price               float64                    `json:"price"`
	Image               string                     `json:"image"`
	MaxParticipants     int                        `json:"max_participants"`
	Spots               int                        `json:"spots"`
	CurrentParticipants int                        `json:"current_participants"`
	Participants        []ParticipantResponse      `json:"participants"`
	Order               []string                   `json:"participant_order"`
	SpotMap             map[string]SeatResponse    `json:"participant_spots"`
	Catches             map[string]map[int]float64 `json:"catches"`
	Rounds              []RoundResponse            `json:"rounds"`
	CurrentRound        int                        `json:"current_round"`
	CreatedAt           string                     `json:"created_at"`
}

type EventStatusResponse struct {
	EventResponse
	Registered    bool   `json:"registered"`
	PaymentMethod string `json:"payment_method,omitempty"`
	Paid          bool   `json:"paid"`
}

type ParticipantInfoResponse struct {
	UserID        string `json:"user_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	PaymentMethod string `json:"payment_method"`
	Paid          bool   `json:"paid"`
}

type StandingResponse struct {
	UserID  string          `json:"user_id"`
	Name    string          `json:"name"`
	Total   float64         `json:"total"`
	Catches map[int]float64 `json:"catches"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventResponse(e *domain.Event) EventResponse {
	participants := make([]ParticipantResponse, 0, len(e.Participants))
	for _, p := range e.Participants {
		participants = append(participants, ParticipantResponse{
			UserID:        p.UserID,
			PaymentMethod: string(p.PaymentMethod),
			Paid:          p.Paid,
		})
	}

	seats := make(map[string]SeatResponse, len(e.SpotMap))
	for userID, seat := range e.SpotMap {
		seats[userID] = SeatResponse{Spot: seat.Spot, Side: string(seat.Side)}
	}

	rounds := make([]RoundResponse, 0, len(e.Rounds))
	for _, r := range e.Rounds {
		round := RoundResponse{
			Round:     r.Number,
			StartedAt: r.StartedAt.Format(time.RFC3339),
		}
		if r.FinishedAt != nil {
			finished := r.FinishedAt.Format(time.RFC3339)
			round.FinishedAt = &finished
		}
		rounds = append(rounds, round)
	}

	return EventResponse{
		ID:                  e.ID,
		Title:               e.Title,
		Date:                e.Date.Format(time.RFC3339),
		Location:            e.Location,
		Description:         e.Description,
		Price:               e.Price,
		Image:               e.Image,
		MaxParticipants:     e.MaxParticipants,
		Spots:               e.Spots,
		CurrentParticipants: len(e.Participants),
		Participants:        participants,
		Order:               e.Order,
		SpotMap:             seats,
		Catches:             e.Catches,
		Rounds:              rounds,
		CurrentRound:        e.CurrentRound,
		CreatedAt:           e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventStatusResponse(s *domain.EventStatus) EventStatusResponse {
	return EventStatusResponse{
		EventResponse: ToEventResponse(&s.Event),
		Registered:    s.Registered,
		PaymentMethod: string(s.PaymentMethod),
		Paid:          s.Paid,
	}
}

func ToParticipantInfoResponse(p *domain.ParticipantInfo) ParticipantInfoResponse {
	return ParticipantInfoResponse{
		UserID:        p.UserID,
		Name:          p.Name,
		Email:         p.Email,
		Phone:         p.Phone,
		PaymentMethod: string(p.PaymentMethod),
		Paid:          p.Paid,
	}
}

func ToStandingResponse(s *domain.Standing) StandingResponse {
	return StandingResponse{
		UserID:  s.UserID,
		Name:    s.Name,
		Total:   s.Total,
		Catches: s.Catches,
	}
}
