package dto

type RegisterUserRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required"`
	Phone          string `json:"phone"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name           *string `json:"name"`
	Phone          *string `json:"phone"`
	Password       *string `json:"password"`
	TelegramChatID *int64  `json:"telegram_chat_id"`
}

type CreateEventRequest struct {
	Title           string  `json:"title" binding:"required"`
	Date            string  `json:"date" binding:"required"`
	Location        string  `json:"location"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	Image           string  `json:"image"`
	MaxParticipants int     `json:"max_participants"`
	Spots           int     `json:"spots"`
}

type UpdateEventRequest struct {
	Title           *string  `json:"title"`
	Date            *string  `json:"date"`
	Location        *string  `json:"location"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price"`
	Image           *string  `json:"image"`
	MaxParticipants *int     `json:"max_participants"`
	Spots           *int     `json:"spots"`
}

type AddParticipantRequest struct {
	UserID        string `json:"user_id" binding:"required,uuid"`
	PaymentMethod string `json:"payment_method"`
}

type RegisterForEventRequest struct {
	PaymentMethod string `json:"payment_method"`
}

type SetPaidRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Paid   bool   `json:"paid"`
}

type CatchRequest struct {
	UserID string  `json:"user_id" binding:"required,uuid"`
	Round  int     `json:"round" binding:"required,gt=0"`
	Amount float64 `json:"amount"`
}
