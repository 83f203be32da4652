package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/harentsoaR/pet24-api/internal/apperrors"
	"github.com/harentsoaR/pet24-api/internal/models"
)

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) ReservationReceived(r models.Reservation) {
	m.Called(r)
}

func newReservationService(t *testing.T, notifier Notifier) *ReservationService {
	doctors := newDoctorService(t)
	return NewReservationService(newRepo(t, ReservationCollection()), doctors, notifier, zap.NewNop())
}

func TestReservationService_Create(t *testing.T) {
	notifier := &mockNotifier{}
	notifier.On("ReservationReceived", mock.MatchedBy(func(r models.Reservation) bool {
		return r.DoctorID == "d-3" && r.Status == models.ReservationPending
	})).Once()
	svc := newReservationService(t, notifier)

	created, err := svc.Create(context.Background(), ReservationRequest{
		DoctorID:      "d-3",
		PatientName:   "مریم",
		Phone:         "09120000000",
		PreferredDate: "2024-05-01",
	})
	require.NoError(t, err)

	assert.Equal(t, "دکتر پریسا یکتا", created.DoctorName)
	assert.Equal(t, models.ReservationPending, created.Status)
	assert.Contains(t, created.ID, "res-")
	notifier.AssertExpectations(t)
}

func TestReservationService_UnknownDoctor(t *testing.T) {
	notifier := &mockNotifier{}
	svc := newReservationService(t, notifier)

	_, err := svc.Create(context.Background(), ReservationRequest{
		DoctorID: "d-404", PatientName: "x", Phone: "1", PreferredDate: "2024-05-01",
	})
	assert.Equal(t, http.StatusNotFound, apperrors.StatusOf(err))
	assert.Equal(t, "پزشک یافت نشد", apperrors.MessageOf(err, ""))

	list, err := svc.List(context.Background(), models.ReservationFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
	notifier.AssertNotCalled(t, "ReservationReceived", mock.Anything)
}

func TestReservationService_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc := newReservationService(t, nil)

	first, err := svc.Create(ctx, ReservationRequest{DoctorID: "d-1", PatientName: "a", Phone: "1", PreferredDate: "2024-05-01"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, ReservationRequest{DoctorID: "d-2", PatientName: "b", Phone: "2", PreferredDate: "2024-05-02"})
	require.NoError(t, err)

	all, err := svc.List(ctx, models.ReservationFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)

	forD1, err := svc.List(ctx, models.ReservationFilter{DoctorID: "d-1"})
	require.NoError(t, err)
	require.Len(t, forD1, 1)
	assert.Equal(t, first.ID, forD1[0].ID)
}

func TestReservationService_ListNewestFirst_SameMillisecond(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	repo := newRepo(t, ReservationCollection()).WithClock(func() time.Time { return fixed })
	svc := NewReservationService(repo, newDoctorService(t), nil, zap.NewNop())

	first, err := svc.Create(ctx, ReservationRequest{DoctorID: "d-1", PatientName: "a", Phone: "1", PreferredDate: "2024-05-01"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, ReservationRequest{DoctorID: "d-1", PatientName: "b", Phone: "2", PreferredDate: "2024-05-01"})
	require.NoError(t, err)
	require.Equal(t, first.CreatedAt, second.CreatedAt)

	listed, err := svc.List(ctx, models.ReservationFilter{DoctorID: "d-1"})
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, second.ID, listed[0].ID)
	assert.Equal(t, first.ID, listed[1].ID)
}
