package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/NLS-ScheduleService/internal/domain"
	"github.com/m04kA/NLS-ScheduleService/pkg/types"
)

type fakeClient struct {
	byStatus map[domain.AppointmentStatus][]*domain.Appointment
	err      error
}

func (f *fakeClient) ListAppointments(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	if filter.Status == nil {
		return nil, nil
	}
	return f.byStatus[*filter.Status], nil
}

type appliedTransition struct {
	appointmentID int64
	to            domain.AppointmentStatus
	trigger       domain.TransitionTrigger
}

type fakeApplier struct {
	applied []appliedTransition
	failFor map[int64]error
}

func (f *fakeApplier) ApplyTransition(
	_ context.Context,
	appointment *domain.Appointment,
	to domain.AppointmentStatus,
	trigger domain.TransitionTrigger,
	_ string,
) error {
	if err, ok := f.failFor[appointment.ID]; ok {
		return err
	}
	f.applied = append(f.applied, appliedTransition{appointment.ID, to, trigger})
	return nil
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestScheduler(client SalonAPIClient, applier TransitionApplier, now time.Time) *Scheduler {
	return &Scheduler{
		cron:         cron.New(),
		salonClient:  client,
		transitions:  applier,
		timeProvider: &fixedTime{now: now},
		tickTimeout:  DefaultTickTimeout,
		logger:       nopLogger{},
	}
}

func schedulerAppointment(id int64, date time.Time, start types.TimeString, duration int, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:        id,
		StaffID:   7,
		Date:      date,
		StartTime: start,
		Status:    status,
		Services:  []domain.Service{{ID: 1, DurationMinutes: duration}},
	}
}

func TestTick_PendingStartsOnTime(t *testing.T) {
	now := time.Date(2026, 9, 15, 14, 0, 0, 0, time.UTC)
	today := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	client := &fakeClient{byStatus: map[domain.AppointmentStatus][]*domain.Appointment{
		domain.StatusPending: {
			schedulerAppointment(1, today, "14:00", 60, domain.StatusPending),
			schedulerAppointment(2, today, "15:00", 60, domain.StatusPending),
		},
	}}
	applier := &fakeApplier{}

	newTestScheduler(client, applier, now).tick()

	require.Len(t, applier.applied, 1)
	assert.Equal(t, appliedTransition{1, domain.StatusInProgress, domain.TriggerAuto}, applier.applied[0])
}

func TestTick_InProgressFinishesAfterDuration(t *testing.T) {
	now := time.Date(2026, 9, 15, 15, 0, 0, 0, time.UTC)
	today := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	client := &fakeClient{byStatus: map[domain.AppointmentStatus][]*domain.Appointment{
		domain.StatusInProgress: {
			// 14:00 + 60 минут = 15:00, пора закрывать
			schedulerAppointment(1, today, "14:00", 60, domain.StatusInProgress),
			// 14:30 + 60 минут = 15:30, ещё идёт
			schedulerAppointment(2, today, "14:30", 60, domain.StatusInProgress),
		},
	}}
	applier := &fakeApplier{}

	newTestScheduler(client, applier, now).tick()

	require.Len(t, applier.applied, 1)
	assert.Equal(t, appliedTransition{1, domain.StatusCompleted, domain.TriggerAuto}, applier.applied[0])
}

func TestTick_PastDateSkipsAhead(t *testing.T) {
	now := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	yesterday := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	client := &fakeClient{byStatus: map[domain.AppointmentStatus][]*domain.Appointment{
		domain.StatusPending: {
			schedulerAppointment(1, yesterday, "18:00", 60, domain.StatusPending),
		},
	}}
	applier := &fakeApplier{}

	newTestScheduler(client, applier, now).tick()

	require.Len(t, applier.applied, 1)
	// pendiente закрывается сразу, минуя en_proceso
	assert.Equal(t, appliedTransition{1, domain.StatusCompleted, domain.TriggerAuto}, applier.applied[0])
}

func TestTick_FutureDateUntouched(t *testing.T) {
	now := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	tomorrow := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)

	client := &fakeClient{byStatus: map[domain.AppointmentStatus][]*domain.Appointment{
		domain.StatusPending: {
			schedulerAppointment(1, tomorrow, "10:00", 60, domain.StatusPending),
		},
	}}
	applier := &fakeApplier{}

	newTestScheduler(client, applier, now).tick()

	assert.Empty(t, applier.applied)
}

func TestTick_FailedTransitionDoesNotBlockOthers(t *testing.T) {
	now := time.Date(2026, 9, 15, 14, 0, 0, 0, time.UTC)
	today := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	client := &fakeClient{byStatus: map[domain.AppointmentStatus][]*domain.Appointment{
		domain.StatusPending: {
			schedulerAppointment(1, today, "13:00", 30, domain.StatusPending),
			schedulerAppointment(2, today, "13:30", 30, domain.StatusPending),
		},
	}}
	applier := &fakeApplier{failFor: map[int64]error{1: errors.New("backend unavailable")}}

	newTestScheduler(client, applier, now).tick()

	// Упавший переход остаётся на следующий тик, остальные применяются
	require.Len(t, applier.applied, 1)
	assert.Equal(t, int64(2), applier.applied[0].appointmentID)
}

func TestTick_ListFailureIsIsolated(t *testing.T) {
	now := time.Date(2026, 9, 15, 14, 0, 0, 0, time.UTC)
	client := &fakeClient{err: errors.New("connection refused")}
	applier := &fakeApplier{}

	newTestScheduler(client, applier, now).tick()

	assert.Empty(t, applier.applied)
}

func TestTick_MalformedStartTimeSkipped(t *testing.T) {
	now := time.Date(2026, 9, 15, 14, 0, 0, 0, time.UTC)
	today := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	client := &fakeClient{byStatus: map[domain.AppointmentStatus][]*domain.Appointment{
		domain.StatusPending: {
			schedulerAppointment(1, today, "not-a-time", 30, domain.StatusPending),
		},
	}}
	applier := &fakeApplier{}

	newTestScheduler(client, applier, now).tick()

	assert.Empty(t, applier.applied)
}
