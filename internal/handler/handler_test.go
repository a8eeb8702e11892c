package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mosg85/Angeln-Eventplaner/internal/domain"
	"github.com/mosg85/Angeln-Eventplaner/internal/handler/dto"
	hmocks "github.com/mosg85/Angeln-Eventplaner/internal/handler/mocks"
	"github.com/mosg85/Angeln-Eventplaner/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

var testUserID = uuid.New().String()

type testMocks struct {
	auth      *hmocks.MockAuthSvc
	directory *hmocks.MockDirectorySvc
	registry  *hmocks.MockRegistrySvc
	engine    *hmocks.MockEngineSvc
}

// setupRouter builds the real route table with the auth middlewares replaced
// by a stub that injects a fixed admin identity.
func setupRouter(t *testing.T) (testMocks, http.Handler) {
	t.Helper()

	m := testMocks{
		auth:      hmocks.NewMockAuthSvc(t),
		directory: hmocks.NewMockDirectorySvc(t),
		registry:  hmocks.NewMockRegistrySvc(t),
		engine:    hmocks.NewMockEngineSvc(t),
	}

	h := NewHandler(m.auth, m.directory, m.registry, m.engine)

	identity := func(c *ginext.Context) {
		c.Set("userID", testUserID)
		c.Set("role", string(domain.RoleAdmin))
		c.Next()
	}
	pass := func(c *ginext.Context) { c.Next() }

	r := router.InitRouter("test", h, identity, pass)
	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Auth ---

func TestHandler_Register_Success(t *testing.T) {
	m, r := setupRouter(t)

	user := &domain.User{ID: uuid.New().String(), Name: "Anna", Email: "anna@example.com", Role: domain.RoleUser, CreatedAt: time.Now()}
	m.directory.EXPECT().RegisterUser(mock.Anything, mock.Anything).Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/register", dto.RegisterUserRequest{
		Name:     "Anna",
		Email:    "anna@example.com",
		Password: "geheim123",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Anna", resp.Name)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestHandler_Register_InvalidEmail(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/register", map[string]string{
		"name":     "Anna",
		"email":    "not-an-email",
		"password": "geheim123",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Register_EmailTaken(t *testing.T) {
	m, r := setupRouter(t)

	m.directory.EXPECT().RegisterUser(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := doJSON(t, r, http.MethodPost, "/api/register", dto.RegisterUserRequest{
		Name:     "Anna",
		Email:    "anna@example.com",
		Password: "geheim123",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Login_Success(t *testing.T) {
	m, r := setupRouter(t)

	user := &domain.User{ID: "u1", Name: "Anna", Email: "anna@example.com", Role: domain.RoleUser}
	m.auth.EXPECT().Login(mock.Anything, "anna@example.com", "geheim123").Return("jwt-token", user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/login", dto.LoginRequest{
		Email:    "anna@example.com",
		Password: "geheim123",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "jwt-token", resp.Token)
	assert.Equal(t, "u1", resp.User.ID)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	m, r := setupRouter(t)

	m.auth.EXPECT().Login(mock.Anything, "anna@example.com", "falsch123").Return("", nil, domain.ErrInvalidCredentials)

	w := doJSON(t, r, http.MethodPost, "/api/login", dto.LoginRequest{
		Email:    "anna@example.com",
		Password: "falsch123",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Logout(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/logout", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "logged out")
}

func TestHandler_Me_Success(t *testing.T) {
	m, r := setupRouter(t)

	user := &domain.User{ID: testUserID, Name: "Anna", Email: "anna@example.com"}
	m.auth.EXPECT().Me(mock.Anything, testUserID).Return(user, nil)

	w := doJSON(t, r, http.MethodGet, "/api/me", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, testUserID, resp.ID)
}

func TestHandler_ForgotPassword_AlwaysGeneric(t *testing.T) {
	m, r := setupRouter(t)

	m.auth.EXPECT().ForgotPassword(mock.Anything, "nobody@example.com").Return("", nil)

	w := doJSON(t, r, http.MethodPost, "/api/forgot-password", dto.ForgotPasswordRequest{Email: "nobody@example.com"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "if the email exists")
}

func TestHandler_ResetPassword_InvalidToken(t *testing.T) {
	m, r := setupRouter(t)

	m.auth.EXPECT().ResetPassword(mock.Anything, "bad-token", "neuespasswort").Return(domain.ErrInvalidToken)

	w := doJSON(t, r, http.MethodPost, "/api/reset-password", dto.ResetPasswordRequest{
		Token:       "bad-token",
		NewPassword: "neuespasswort",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	event := &domain.Event{ID: uuid.New().String(), Title: "Hecht-Cup", MaxParticipants: 20, Spots: 10}
	m.directory.EXPECT().CreateEvent(mock.Anything, mock.Anything, testUserID).Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Title: "Hecht-Cup",
		Date:  time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Hecht-Cup", resp.Title)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Title: "Hecht-Cup",
		Date:  "not-a-date",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	event := &domain.Event{
		ID:           eventID,
		Title:        "Hecht-Cup",
		Participants: []domain.Participant{{UserID: "u1", PaymentMethod: domain.PaymentCash}},
		CurrentRound: 2,
	}
	m.directory.EXPECT().GetEvent(mock.Anything, eventID).Return(event, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.CurrentRound)
	assert.Equal(t, 1, resp.CurrentParticipants)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/events/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.directory.EXPECT().GetEvent(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListEvents_Success(t *testing.T) {
	m, r := setupRouter(t)

	events := []domain.Event{
		{ID: "e1", Title: "Hecht-Cup"},
		{ID: "e2", Title: "Zander-Pokal"},
	}
	m.directory.EXPECT().ListEvents(mock.Anything).Return(events, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_UpdateEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	event := &domain.Event{ID: eventID, Title: "Hecht-Cup 2026"}
	m.directory.EXPECT().UpdateEvent(mock.Anything, eventID, mock.Anything).Return(event, nil)

	title := "Hecht-Cup 2026"
	w := doJSON(t, r, http.MethodPut, "/api/events/"+eventID, dto.UpdateEventRequest{Title: &title})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_DeleteEvent_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.directory.EXPECT().DeleteEvent(mock.Anything, eventID).Return(domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodDelete, "/api/events/"+eventID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_UserEvents_Success(t *testing.T) {
	m, r := setupRouter(t)

	statuses := []domain.EventStatus{
		{Event: domain.Event{ID: "e1"}, Registered: true, PaymentMethod: domain.PaymentCash},
	}
	m.directory.EXPECT().UserEvents(mock.Anything, testUserID).Return(statuses, nil)

	w := doJSON(t, r, http.MethodGet, "/api/user/events", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.True(t, resp[0].Registered)
}

func TestHandler_ListEventsWithStatus_Success(t *testing.T) {
	m, r := setupRouter(t)

	statuses := []domain.EventStatus{
		{Event: domain.Event{ID: "e1"}},
		{Event: domain.Event{ID: "e2"}, Registered: true},
	}
	m.directory.EXPECT().ListEventsWithStatus(mock.Anything, testUserID).Return(statuses, nil)

	w := doJSON(t, r, http.MethodGet, "/api/user/events-status", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Participants ---

func TestHandler_RegisterForEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.registry.EXPECT().Register(mock.Anything, eventID, testUserID, domain.PaymentCash).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/register", dto.RegisterForEventRequest{PaymentMethod: "cash"})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_RegisterForEvent_Full(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.registry.EXPECT().Register(mock.Anything, eventID, testUserID, mock.Anything).Return(domain.ErrCapacityExceeded)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/register", dto.RegisterForEventRequest{})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_RegisterForEvent_AlreadyRegistered(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.registry.EXPECT().Register(mock.Anything, eventID, testUserID, mock.Anything).Return(domain.ErrAlreadyRegistered)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/register", dto.RegisterForEventRequest{})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelParticipation_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.registry.EXPECT().Cancel(mock.Anything, eventID, testUserID).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/cancel", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_PaymentSuccess_MarksPaid(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.registry.EXPECT().SetPaid(mock.Anything, eventID, testUserID, true).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/payment-success", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_AddParticipant_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	m.registry.EXPECT().Register(mock.Anything, eventID, userID, domain.PaymentExternal).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/participants", dto.AddParticipantRequest{
		UserID:        userID,
		PaymentMethod: "external",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_RemoveParticipant_InvalidUserID(t *testing.T) {
	_, r := setupRouter(t)

	eventID := uuid.New().String()

	w := doJSON(t, r, http.MethodDelete, "/api/events/"+eventID+"/participants/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListParticipants_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	participants := []domain.ParticipantInfo{
		{UserID: "u1", Name: "Anna", PaymentMethod: domain.PaymentCash, Paid: true},
	}
	m.registry.EXPECT().ListParticipants(mock.Anything, eventID).Return(participants, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID+"/participants", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ParticipantInfoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.True(t, resp[0].Paid)
}

func TestHandler_SetPaid_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	m.registry.EXPECT().SetPaid(mock.Anything, eventID, userID, true).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/paid", dto.SetPaidRequest{UserID: userID, Paid: true})

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Execution ---

func TestHandler_StartEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.engine.EXPECT().Start(mock.Anything, eventID).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/start", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_StartEvent_NoParticipants(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.engine.EXPECT().Start(mock.Anything, eventID).Return(domain.ErrNoParticipants)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/start", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_NextRound_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.engine.EXPECT().AdvanceRound(mock.Anything, eventID).Return(3, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/nextround", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(3), resp["current_round"])
}

func TestHandler_NextRound_NotStarted(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.engine.EXPECT().AdvanceRound(mock.Anything, eventID).Return(0, domain.ErrNotStarted)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/nextround", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_RecordCatch_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	m.engine.EXPECT().RecordCatch(mock.Anything, eventID, userID, 2, 4.5).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/catch", dto.CatchRequest{
		UserID: userID,
		Round:  2,
		Amount: 4.5,
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_RecordCatch_InvalidRound(t *testing.T) {
	_, r := setupRouter(t)

	eventID := uuid.New().String()

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/catch", map[string]any{
		"user_id": uuid.New().String(),
		"round":   0,
		"amount":  4.5,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_FinishEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.engine.EXPECT().Finish(mock.Anything, eventID).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/finish", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Standings_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	standings := []domain.Standing{
		{UserID: "u2", Name: "Ben", Total: 7, Catches: map[int]float64{1: 4, 2: 3}},
		{UserID: "u1", Name: "Anna", Total: 3, Catches: map[int]float64{1: 3}},
	}
	m.engine.EXPECT().Standings(mock.Anything, eventID).Return(standings, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID+"/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.StandingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Ben", resp[0].Name)
	assert.Equal(t, 7.0, resp[0].Total)
}

// --- Misc ---

func TestHandler_InternalError(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.directory.EXPECT().GetEvent(mock.Anything, eventID).Return(nil, assert.AnError)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandler_Health(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
