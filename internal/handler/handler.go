package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/mosg85/Angeln-Eventplaner/internal/domain"
	"github.com/mosg85/Angeln-Eventplaner/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type AuthSvc interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Me(ctx context.Context, userID string) (*domain.User, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type DirectorySvc interface {
	RegisterUser(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, input domain.UpdateUserInput) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	DeleteUser(ctx context.Context, id string) error
	CreateEvent(ctx context.Context, input domain.CreateEventInput, createdBy string) (*domain.Event, error)
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	UpdateEvent(ctx context.Context, id string, input domain.UpdateEventInput) (*domain.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	ListEventsWithStatus(ctx context.Context, userID string) ([]domain.EventStatus, error)
	UserEvents(ctx context.Context, userID string) ([]domain.EventStatus, error)
}

type RegistrySvc interface {
	Register(ctx context.Context, eventID, userID string, method domain.PaymentMethod) error
	Cancel(ctx context.Context, eventID, userID string) error
	SetPaid(ctx context.Context, eventID, userID string, paid bool) error
	ListParticipants(ctx context.Context, eventID string) ([]domain.ParticipantInfo, error)
	AvailableUsers(ctx context.Context, eventID string) ([]domain.User, error)
}

type EngineSvc interface {
	Start(ctx context.Context, eventID string) error
	AdvanceRound(ctx context.Context, eventID string) (int, error)
	RecordCatch(ctx context.Context, eventID, userID string, round int, amount float64) error
	Finish(ctx context.Context, eventID string) error
	Standings(ctx context.Context, eventID string) ([]domain.Standing, error)
}

type Handler struct {
	authService      AuthSvc
	directoryService DirectorySvc
	registryService  RegistrySvc
	engineService    EngineSvc
}

func NewHandler(
	authService AuthSvc,
	directoryService DirectorySvc,
	registryService RegistrySvc,
	engineService EngineSvc,
) *Handler {
	return &Handler{
		authService:      authService,
		directoryService: directoryService,
		registryService:  registryService,
		engineService:    engineService,
	}
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrParticipantNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyRegistered),
		errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrAlreadyStarted),
		errors.Is(err, domain.ErrNotStarted),
		errors.Is(err, domain.ErrFinished),
		errors.Is(err, domain.ErrNoParticipants),
		errors.Is(err, domain.ErrUserInEvents):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrInvalidToken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
