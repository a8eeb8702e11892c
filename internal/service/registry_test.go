package service

import (
	"context"
	"testing"
	"time"

	"github.com/mosg85/Angeln-Eventplaner/internal/domain"
	"github.com/mosg85/Angeln-Eventplaner/internal/service/ports/mocks"
	"github.com/mosg85/Angeln-Eventplaner/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// newGuard wraps a snapshot in a mock store so services mutate it in place.
func newGuard(t *testing.T, snap *domain.Snapshot) *store.Guard {
	t.Helper()
	st := mocks.NewMockSnapshotStore(t)
	st.EXPECT().Load(mock.Anything).RunAndReturn(func(context.Context) (*domain.Snapshot, error) {
		return snap, nil
	}).Maybe()
	st.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Maybe()
	return store.NewGuard(st)
}

func testSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Users: []domain.User{
			{ID: "u1", Name: "Anna", Email: "anna@example.com", Phone: "111"},
			{ID: "u2", Name: "Ben", Email: "ben@example.com", Phone: "222"},
			{ID: "u3", Name: "Clara", Email: "clara@example.com"},
		},
		Events: []domain.Event{
			{
				ID:              "e1",
				Title:           "Hecht-Cup",
				MaxParticipants: 4,
				Spots:           2,
				Participants:    []domain.Participant{},
				CurrentRound:    domain.RoundNotStarted,
			},
			{
				ID:              "e2",
				Title:           "Zander-Pokal",
				MaxParticipants: 4,
				Spots:           2,
				Participants:    []domain.Participant{{UserID: "u1", PaymentMethod: domain.PaymentCash}},
				CurrentRound:    1,
			},
		},
	}
}

func TestRegistryService_Register_Success(t *testing.T) {
	snap := testSnapshot()
	notifier := mocks.NewMockEventNotifier(t)
	svc := NewRegistryService(newGuard(t, snap), notifier, newTestLogger(t))

	notifier.EXPECT().NotifyRegistered(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	err := svc.Register(context.Background(), "e1", "u1", "")

	require.NoError(t, err)
	p := snap.EventByID("e1").Participant("u1")
	require.NotNil(t, p)
	assert.Equal(t, domain.PaymentCash, p.PaymentMethod)
	assert.False(t, p.Paid)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestRegistryService_Register_ExternalPayment(t *testing.T) {
	snap := testSnapshot()
	notifier := mocks.NewMockEventNotifier(t)
	svc := NewRegistryService(newGuard(t, snap), notifier, newTestLogger(t))

	notifier.EXPECT().NotifyRegistered(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	err := svc.Register(context.Background(), "e1", "u2", domain.PaymentExternal)

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentExternal, snap.EventByID("e1").Participant("u2").PaymentMethod)

	time.Sleep(50 * time.Millisecond)
}

func TestRegistryService_Register_EventNotFound(t *testing.T) {
	svc := NewRegistryService(newGuard(t, testSnapshot()), mocks.NewMockEventNotifier(t), newTestLogger(t))

	err := svc.Register(context.Background(), "missing", "u1", domain.PaymentCash)

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestRegistryService_Register_UserNotFound(t *testing.T) {
	svc := NewRegistryService(newGuard(t, testSnapshot()), mocks.NewMockEventNotifier(t), newTestLogger(t))

	err := svc.Register(context.Background(), "e1", "missing", domain.PaymentCash)

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRegistryService_Register_Duplicate(t *testing.T) {
	snap := testSnapshot()
	notifier := mocks.NewMockEventNotifier(t)
	svc := NewRegistryService(newGuard(t, snap), notifier, newTestLogger(t))

	notifier.EXPECT().NotifyRegistered(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	require.NoError(t, svc.Register(context.Background(), "e1", "u1", domain.PaymentCash))
	err := svc.Register(context.Background(), "e1", "u1", domain.PaymentCash)

	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
	assert.Len(t, snap.EventByID("e1").Participants, 1)

	time.Sleep(50 * time.Millisecond)
}

func TestRegistryService_Register_CapacityExceeded(t *testing.T) {
	snap := testSnapshot()
	snap.Events[0].MaxParticipants = 1
	snap.Events[0].Participants = []domain.Participant{{UserID: "u1", PaymentMethod: domain.PaymentCash}}
	svc := NewRegistryService(newGuard(t, snap), mocks.NewMockEventNotifier(t), newTestLogger(t))

	err := svc.Register(context.Background(), "e1", "u2", domain.PaymentCash)

	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestRegistryService_Register_AfterStart(t *testing.T) {
	svc := NewRegistryService(newGuard(t, testSnapshot()), mocks.NewMockEventNotifier(t), newTestLogger(t))

	err := svc.Register(context.Background(), "e2", "u2", domain.PaymentCash)

	assert.ErrorIs(t, err, domain.ErrAlreadyStarted)
}

func TestRegistryService_Cancel_RestoresRoster(t *testing.T) {
	snap := testSnapshot()
	notifier := mocks.NewMockEventNotifier(t)
	svc := NewRegistryService(newGuard(t, snap), notifier, newTestLogger(t))

	notifier.EXPECT().NotifyRegistered(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	notifier.EXPECT().NotifyCancelled(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	require.NoError(t, svc.Register(context.Background(), "e1", "u1", domain.PaymentCash))
	require.NoError(t, svc.Cancel(context.Background(), "e1", "u1"))

	assert.Empty(t, snap.EventByID("e1").Participants)

	time.Sleep(50 * time.Millisecond)
}

func TestRegistryService_Cancel_NotRegistered(t *testing.T) {
	svc := NewRegistryService(newGuard(t, testSnapshot()), mocks.NewMockEventNotifier(t), newTestLogger(t))

	err := svc.Cancel(context.Background(), "e1", "u1")

	assert.ErrorIs(t, err, domain.ErrParticipantNotFound)
}

func TestRegistryService_Cancel_AfterStart(t *testing.T) {
	snap := testSnapshot()
	svc := NewRegistryService(newGuard(t, snap), mocks.NewMockEventNotifier(t), newTestLogger(t))

	err := svc.Cancel(context.Background(), "e2", "u1")

	assert.ErrorIs(t, err, domain.ErrAlreadyStarted)
	assert.Len(t, snap.EventByID("e2").Participants, 1)
}

func TestRegistryService_Cancel_EventNotFound(t *testing.T) {
	svc := NewRegistryService(newGuard(t, testSnapshot()), mocks.NewMockEventNotifier(t), newTestLogger(t))

	err := svc.Cancel(context.Background(), "missing", "u1")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestRegistryService_SetPaid_Idempotent(t *testing.T) {
	snap := testSnapshot()
	svc := NewRegistryService(newGuard(t, snap), mocks.NewMockEventNotifier(t), newTestLogger(t))

	require.NoError(t, svc.SetPaid(context.Background(), "e2", "u1", true))
	require.NoError(t, svc.SetPaid(context.Background(), "e2", "u1", true))

	assert.True(t, snap.EventByID("e2").Participant("u1").Paid)

	require.NoError(t, svc.SetPaid(context.Background(), "e2", "u1", false))
	assert.False(t, snap.EventByID("e2").Participant("u1").Paid)
}

func TestRegistryService_SetPaid_ParticipantNotFound(t *testing.T) {
	svc := NewRegistryService(newGuard(t, testSnapshot()), mocks.NewMockEventNotifier(t), newTestLogger(t))

	err := svc.SetPaid(context.Background(), "e1", "u1", true)

	assert.ErrorIs(t, err, domain.ErrParticipantNotFound)
}

func TestRegistryService_ListParticipants_JoinsProfiles(t *testing.T) {
	snap := testSnapshot()
	snap.Events[1].Participants = append(snap.Events[1].Participants, domain.Participant{
		UserID:        "u2",
		PaymentMethod: domain.PaymentExternal,
		Paid:          true,
	})
	svc := NewRegistryService(newGuard(t, snap), mocks.NewMockEventNotifier(t), newTestLogger(t))

	participants, err := svc.ListParticipants(context.Background(), "e2")

	require.NoError(t, err)
	require.Len(t, participants, 2)
	assert.Equal(t, "Anna", participants[0].Name)
	assert.Equal(t, "anna@example.com", participants[0].Email)
	assert.Equal(t, "Ben", participants[1].Name)
	assert.True(t, participants[1].Paid)
}

func TestRegistryService_ListParticipants_DropsDanglingUsers(t *testing.T) {
	snap := testSnapshot()
	snap.Events[1].Participants = append(snap.Events[1].Participants, domain.Participant{UserID: "ghost"})
	svc := NewRegistryService(newGuard(t, snap), mocks.NewMockEventNotifier(t), newTestLogger(t))

	participants, err := svc.ListParticipants(context.Background(), "e2")

	require.NoError(t, err)
	require.Len(t, participants, 1)
	assert.Equal(t, "u1", participants[0].UserID)
}

func TestRegistryService_AvailableUsers_ExcludesRegistered(t *testing.T) {
	svc := NewRegistryService(newGuard(t, testSnapshot()), mocks.NewMockEventNotifier(t), newTestLogger(t))

	users, err := svc.AvailableUsers(context.Background(), "e2")

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "u2", users[0].ID)
	assert.Equal(t, "u3", users[1].ID)
}
