package domain

import "time"

type ResetToken struct {
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Used      bool      `json:"used"`
}

// Snapshot is the full persisted dataset. The store reads and writes it as
// one unit; there are no partial updates.
type Snapshot struct {
	Users       []User       `json:"users"`
	Events      []Event      `json:"events"`
	ResetTokens []ResetToken `json:"reset_tokens"`
}

func (s *Snapshot) UserByID(id string) *User {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i]
		}
	}
	return nil
}

func (s *Snapshot) UserByEmail(email string) *User {
	for i := range s.Users {
		if s.Users[i].Email == email {
			return &s.Users[i]
		}
	}
	return nil
}

func (s *Snapshot) EventByID(id string) *Event {
	for i := range s.Events {
		if s.Events[i].ID == id {
			return &s.Events[i]
		}
	}
	return nil
}
