package domain

import "time"

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentExternal PaymentMethod = "external"
)

type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// CurrentRound sentinels: 0 means registration is still open, -1 means the
// event is over. Any positive value is the number of the active round.
const (
	RoundNotStarted = 0
	RoundFinished   = -1
)

type Participant struct {
	UserID        string        `json:"user_id"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Paid          bool          `json:"paid"`
}

// SeatAssignment places a participant at a physical fishing spot. Two
// participants share one spot, one per side.
type SeatAssignment struct {
	Spot int  `json:"spot"`
	Side Side `json:"side"`
}

type Round struct {
	Number     int        `json:"round"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at"`
}

type Event struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Date            time.Time `json:"date"`
	Location        string    `json:"location"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	Image           string    `json:"image"`
	MaxParticipants int       `json:"max_participants"`
	Spots           int       `json:"spots"`

	Participants []Participant             `json:"participants"`
	Order        []string                  `json:"participant_order"`
	SpotMap      map[string]SeatAssignment `json:"participant_spots"`
	Catches      map[string]map[int]float64 `json:"catches"`
	Rounds       []Round                   `json:"rounds"`
	CurrentRound int                       `json:"current_round"`

	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by"`
}

func (e *Event) Started() bool {
	return e.CurrentRound > RoundNotStarted
}

func (e *Event) Finished() bool {
	return e.CurrentRound == RoundFinished
}

func (e *Event) Participant(userID string) *Participant {
	for i := range e.Participants {
		if e.Participants[i].UserID == userID {
			return &e.Participants[i]
		}
	}
	return nil
}

// AssignSeats computes the spot map for the given rotation order: the
// participant at order position 2i takes the left side of spot i+1, the one
// at 2i+1 the right side. Participants beyond 2*spots stay unseated.
func AssignSeats(order []string, spots int) map[string]SeatAssignment {
	seats := make(map[string]SeatAssignment)
	for i := 0; i < spots; i++ {
		left := i * 2
		right := i*2 + 1
		if left < len(order) {
			seats[order[left]] = SeatAssignment{Spot: i + 1, Side: SideLeft}
		}
		if right < len(order) {
			seats[order[right]] = SeatAssignment{Spot: i + 1, Side: SideRight}
		}
	}
	return seats
}

// Rotate moves the last participant of the order to the front, one clockwise
// step around the water.
func Rotate(order []string) []string {
	if len(order) == 0 {
		return order
	}
	rotated := make([]string, 0, len(order))
	rotated = append(rotated, order[len(order)-1])
	rotated = append(rotated, order[:len(order)-1]...)
	return rotated
}

type CreateEventInput struct {
	Title           string
	Date            time.Time
	Location        string
	Description     string
	Price           float64
	Image           string
	MaxParticipants int
	Spots           int
}

type UpdateEventInput struct {
	Title           *string
	Date            *time.Time
	Location        *string
	Description     *string
	Price           *float64
	Image           *string
	MaxParticipants *int
	Spots           *int
}

// ParticipantInfo joins a participant entry with the profile fields of the
// referenced user.
type ParticipantInfo struct {
	UserID        string        `json:"user_id"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Paid          bool          `json:"paid"`
}

// EventStatus is an event as seen by one user: whether they are registered
// and how they chose to pay.
type EventStatus struct {
	Event         Event         `json:"event"`
	Registered    bool          `json:"registered"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	Paid          bool          `json:"paid"`
}

type Standing struct {
	UserID  string          `json:"user_id"`
	Name    string          `json:"name"`
	Total   float64         `json:"total"`
	Catches map[int]float64 `json:"catches"`
}
