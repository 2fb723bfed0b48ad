package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/NLS-ScheduleService/internal/domain"
	"github.com/m04kA/NLS-ScheduleService/internal/infra/refreshflags"
	salonClient "github.com/m04kA/NLS-ScheduleService/internal/integrations/salonapi"
	"github.com/m04kA/NLS-ScheduleService/internal/service/appointments/models"
	"github.com/m04kA/NLS-ScheduleService/pkg/metrics"
)

// Service сервис переходов статусов записей. Единственная точка, через
// которую статус меняется: и ручная отмена, и автоматические переходы
// планировщика проходят здесь. Порядок фиксированный: сначала PATCH в
// бэкенд, затем журнал и маркер обновления. Ошибка бэкенда оставляет
// статус без изменений; ошибка журнала или Redis уже применённый
// переход не откатывает.
type Service struct {
	salonClient SalonAPIClient
	journal     TransitionJournal
	flags       RefreshFlags
	metrics     *metrics.Metrics
	logger      Logger
}

// NewService создает новый экземпляр сервиса переходов.
// metricsCollector может быть nil, если метрики выключены.
func NewService(
	salonClient SalonAPIClient,
	journal TransitionJournal,
	flags RefreshFlags,
	metricsCollector *metrics.Metrics,
	logger Logger,
) *Service {
	return &Service{
		salonClient: salonClient,
		journal:     journal,
		flags:       flags,
		metrics:     metricsCollector,
		logger:      logger,
	}
}

// Cancel отменяет запись вручную. Причина опциональна и дописывается
// в наблюдения записи.
func (s *Service) Cancel(ctx context.Context, appointmentID int64, reason string) error {
	s.logger.Info("Cancel: cancelling appointment id=%d", appointmentID)

	appointment, err := s.salonClient.GetAppointment(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, salonClient.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: failed to get appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - failed to get appointment: %v", ErrInternal, err)
	}

	if !appointment.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", appointmentID, appointment.Status)
		return ErrCannotCancel
	}

	notes := appointment.Notes
	if reason != "" {
		if notes != "" {
			notes += "\n"
		}
		notes += "Cancelación: " + reason
	}

	return s.ApplyTransition(ctx, appointment, domain.StatusCancelled, domain.TriggerManual, notes)
}

// ApplyTransition применяет переход статуса: проверка допустимости,
// PATCH в бэкенд, запись в журнал, маркер обновления.
func (s *Service) ApplyTransition(
	ctx context.Context,
	appointment *domain.Appointment,
	to domain.AppointmentStatus,
	trigger domain.TransitionTrigger,
	notes string,
) error {
	from := appointment.Status

	if !domain.ValidTransition(from, to) {
		s.logger.Warn("ApplyTransition: invalid transition %s -> %s for appointment id=%d",
			from, to, appointment.ID)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}

	if err := s.salonClient.UpdateAppointmentStatus(ctx, appointment.ID, to, notes); err != nil {
		if errors.Is(err, salonClient.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("ApplyTransition: backend rejected %s -> %s for appointment id=%d: %v",
			from, to, appointment.ID, err)
		return fmt.Errorf("%w: ApplyTransition - backend update failed: %v", ErrInternal, err)
	}

	// Бэкенд подтвердил переход; локальная проекция обновляется только теперь
	appointment.Status = to
	if notes != "" {
		appointment.Notes = notes
	}

	if s.metrics != nil {
		s.metrics.StatusTransitionsTotal.WithLabelValues(string(from), string(to), string(trigger)).Inc()
	}

	rec := &domain.TransitionRecord{
		AppointmentID: appointment.ID,
		FromStatus:    from,
		ToStatus:      to,
		Trigger:       trigger,
		OccurredAt:    time.Now(),
	}
	if _, err := s.journal.Record(ctx, rec); err != nil {
		s.logger.Error("ApplyTransition: journal write failed for appointment id=%d (%s -> %s): %v",
			appointment.ID, from, to, err)
	}

	s.flags.Set(ctx, refreshflags.TopicAppointments)

	if to == domain.StatusCompleted {
		// Создание продажи по завершённой записи принадлежит бэкенду
		s.logger.Info("ApplyTransition: appointment id=%d completed, downstream sale is owned by the backend", appointment.ID)
	}

	s.logger.Info("ApplyTransition: appointment id=%d %s -> %s (trigger=%s)",
		appointment.ID, from, to, trigger)
	return nil
}

// History возвращает журнал переходов записи
func (s *Service) History(ctx context.Context, appointmentID int64) (*models.TransitionListResponse, error) {
	records, err := s.journal.ListByAppointment(ctx, appointmentID)
	if err != nil {
		s.logger.Error("History: journal read failed for appointment id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: History - journal read failed: %v", ErrInternal, err)
	}
	return models.FromDomainTransitionList(records), nil
}
