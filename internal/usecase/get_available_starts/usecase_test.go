package get_available_starts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/NLS-ScheduleService/internal/domain"
	salonClient "github.com/m04kA/NLS-ScheduleService/internal/integrations/salonapi"
	"github.com/m04kA/NLS-ScheduleService/pkg/types"
)

type fakeSalonClient struct {
	staff    *domain.StaffMember
	staffErr error

	appointments   []*domain.Appointment
	apptsDegraded  bool
	novelties      []*domain.Novelty
	novsDegraded   bool
}

func (f *fakeSalonClient) GetStaff(_ context.Context, _ int64) (*domain.StaffMember, error) {
	return f.staff, f.staffErr
}

func (f *fakeSalonClient) ListAppointmentsWithFallback(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, bool) {
	return f.appointments, f.apptsDegraded
}

func (f *fakeSalonClient) ListNoveltiesWithFallback(_ context.Context, _ *int64, _ *time.Time) ([]*domain.Novelty, bool) {
	return f.novelties, f.novsDegraded
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	ucNow  = time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	ucDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
)

func newTestUseCase(client SalonAPIClient) *UseCase {
	return &UseCase{
		salonClient:  client,
		timeProvider: &fixedTime{now: ucNow},
		logger:       nopLogger{},
	}
}

func TestExecute_HappyPath(t *testing.T) {
	client := &fakeSalonClient{
		staff: &domain.StaffMember{ID: 7, Name: "Ana", Active: true},
		appointments: []*domain.Appointment{
			{
				ID:        1,
				StaffID:   7,
				Date:      ucDate,
				StartTime: types.TimeString("14:00"),
				Status:    domain.StatusPending,
				Services:  []domain.Service{{ID: 1, DurationMinutes: 60}},
			},
		},
	}

	resp, err := newTestUseCase(client).Execute(context.Background(), &Request{
		StaffID:         7,
		Date:            ucDate,
		DurationMinutes: 60,
	})
	require.NoError(t, err)

	assert.False(t, resp.Degraded)
	assert.NotContains(t, resp.Starts, "13:30")
	assert.NotContains(t, resp.Starts, "14:00")
	assert.NotContains(t, resp.Starts, "14:30")
	assert.Contains(t, resp.Starts, "13:00")
	assert.Contains(t, resp.Starts, "15:00")
	// 19:30 + 60 минут выходит за закрытие
	assert.NotContains(t, resp.Starts, "19:30")
}

func TestExecute_Validation(t *testing.T) {
	client := &fakeSalonClient{staff: &domain.StaffMember{ID: 7, Active: true}}
	uc := newTestUseCase(client)

	_, err := uc.Execute(context.Background(), &Request{StaffID: 7, Date: ucDate, DurationMinutes: -1})
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = uc.Execute(context.Background(), &Request{StaffID: 7, Date: ucNow.AddDate(0, 0, -1), DurationMinutes: 30})
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestExecute_StaffNotFound(t *testing.T) {
	client := &fakeSalonClient{staffErr: salonClient.ErrStaffNotFound}

	_, err := newTestUseCase(client).Execute(context.Background(), &Request{StaffID: 99, Date: ucDate, DurationMinutes: 30})
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestExecute_StaffInactive(t *testing.T) {
	client := &fakeSalonClient{staff: &domain.StaffMember{ID: 7, Active: false}}

	_, err := newTestUseCase(client).Execute(context.Background(), &Request{StaffID: 7, Date: ucDate, DurationMinutes: 30})
	assert.ErrorIs(t, err, ErrStaffInactive)
}

func TestExecute_GatewayFailure(t *testing.T) {
	client := &fakeSalonClient{staffErr: errors.New("connection refused")}

	_, err := newTestUseCase(client).Execute(context.Background(), &Request{StaffID: 7, Date: ucDate, DurationMinutes: 30})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_DegradedSourcesStillAnswer(t *testing.T) {
	client := &fakeSalonClient{
		staff:         &domain.StaffMember{ID: 7, Active: true},
		apptsDegraded: true,
		novsDegraded:  true,
	}

	resp, err := newTestUseCase(client).Execute(context.Background(), &Request{
		StaffID:         7,
		Date:            ucDate,
		DurationMinutes: 30,
	})
	require.NoError(t, err)

	// Недоступный источник даёт пустой вклад, не "всё занято"
	assert.True(t, resp.Degraded)
	assert.Len(t, resp.Starts, 20)
}
