// Package scheduler продвигает статусы записей по расписанию дня:
// pendiente -> en_proceso в момент начала, en_proceso -> finalizada по
// истечении длительности, pendiente -> finalizada для записей прошлых
// дат. Каждый тик заново перечитывает незавершённые записи и заново
// проверяет предусловия, поэтому пропущенные тики догоняются без
// дополнительного состояния. Ручная отмена планировщиком не применяется
// никогда.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/m04kA/NLS-ScheduleService/internal/availability"
	"github.com/m04kA/NLS-ScheduleService/internal/domain"
	"github.com/m04kA/NLS-ScheduleService/pkg/metrics"
)

// DefaultTickTimeout максимальное время одного тика
const DefaultTickTimeout = 45 * time.Second

// Scheduler планировщик переходов статусов
type Scheduler struct {
	cron         *cron.Cron
	salonClient  SalonAPIClient
	transitions  TransitionApplier
	timeProvider TimeProvider
	metrics      *metrics.Metrics
	tickTimeout  time.Duration
	logger       Logger
}

// New создает планировщик. metricsCollector может быть nil, если
// метрики выключены.
func New(
	salonClient SalonAPIClient,
	transitions TransitionApplier,
	metricsCollector *metrics.Metrics,
	tickTimeout time.Duration,
	logger Logger,
) *Scheduler {
	if tickTimeout <= 0 {
		tickTimeout = DefaultTickTimeout
	}
	return &Scheduler{
		cron:         cron.New(),
		salonClient:  salonClient,
		transitions:  transitions,
		timeProvider: &availability.RealTimeProvider{},
		metrics:      metricsCollector,
		tickTimeout:  tickTimeout,
		logger:       logger,
	}
}

// Start запускает минутный тик
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("* * * * *", s.tick); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("Scheduler started with a one-minute tick")
	return nil
}

// Stop останавливает планировщик и дожидается завершения текущего тика
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Scheduler stopped")
}

// tick один проход: перечитывает незавершённые записи и применяет
// назревшие переходы. Ошибка одной записи не прерывает проход, ошибка
// прохода не мешает следующему.
func (s *Scheduler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), s.tickTimeout)
	defer cancel()

	now := s.timeProvider.Now()
	outcome := "ok"

	for _, status := range []domain.AppointmentStatus{domain.StatusPending, domain.StatusInProgress} {
		st := status
		appointments, err := s.salonClient.ListAppointments(ctx, domain.AppointmentsFilter{Status: &st})
		if err != nil {
			s.logger.Error("Scheduler tick: failed to list %s appointments: %v", st, err)
			outcome = "error"
			continue
		}

		for _, appointment := range appointments {
			to, due := s.decide(appointment, now)
			if !due {
				continue
			}
			if err := s.transitions.ApplyTransition(ctx, appointment, to, domain.TriggerAuto, ""); err != nil {
				// Статус остался прежним; предусловие сработает снова
				// на следующем тике
				s.logger.Error("Scheduler tick: appointment id=%d %s -> %s failed: %v",
					appointment.ID, appointment.Status, to, err)
				outcome = "error"
			}
		}
	}

	if s.metrics != nil {
		s.metrics.SchedulerTicksTotal.WithLabelValues(outcome).Inc()
	}
}

// decide возвращает назревший переход для записи, если он есть
func (s *Scheduler) decide(appointment *domain.Appointment, now time.Time) (domain.AppointmentStatus, bool) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	appointmentDay := time.Date(
		appointment.Date.Year(), appointment.Date.Month(), appointment.Date.Day(),
		0, 0, 0, 0, now.Location(),
	)

	// Записи прошлых дат закрываются сразу, минуя en_proceso
	if appointmentDay.Before(today) {
		return domain.StatusCompleted, true
	}
	if appointmentDay.After(today) {
		return "", false
	}

	startAt, err := appointment.StartTime.At(appointment.Date)
	if err != nil {
		s.logger.Warn("Scheduler: appointment id=%d has malformed start time %q",
			appointment.ID, appointment.StartTime)
		return "", false
	}
	endAt := startAt.Add(time.Duration(appointment.TotalDurationMinutes()) * time.Minute)

	switch appointment.Status {
	case domain.StatusPending:
		if !now.Before(startAt) {
			return domain.StatusInProgress, true
		}
	case domain.StatusInProgress:
		if !now.Before(endAt) {
			return domain.StatusCompleted, true
		}
	}
	return "", false
}
