package novelties

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/NLS-ScheduleService/internal/domain"
	"github.com/m04kA/NLS-ScheduleService/internal/infra/refreshflags"
	salonClient "github.com/m04kA/NLS-ScheduleService/internal/integrations/salonapi"
	"github.com/m04kA/NLS-ScheduleService/internal/service/novelties/models"
)

// Service сервис управления новедадами. Сам движок новедады не хранит,
// он валидирует запрос до обращения к бэкенду и пробрасывает его дальше,
// поднимая warning из успешного ответа наверх.
type Service struct {
	salonClient SalonAPIClient
	flags       RefreshFlags
	logger      Logger
}

// NewService создает новый экземпляр сервиса новедад
func NewService(salonClient SalonAPIClient, flags RefreshFlags, logger Logger) *Service {
	return &Service{
		salonClient: salonClient,
		flags:       flags,
		logger:      logger,
	}
}

// Create создает новедаду. Правило отпуска проверяется локально до
// запроса: дни — положительное кратное 7, не больше 30.
func (s *Service) Create(ctx context.Context, req *models.CreateNoveltyRequest) (*models.NoveltyResponse, error) {
	s.logger.Info("Create: novelty kind=%s staff=%d date=%s",
		req.Kind, req.StaffID, req.Date.Format(domain.DateFormat))

	if err := validateKindFields(req); err != nil {
		s.logger.Warn("Create: validation failed for staff=%d kind=%s: %v", req.StaffID, req.Kind, err)
		return nil, err
	}

	novelty, err := s.salonClient.CreateNovelty(ctx, &salonClient.CreateNoveltyRequest{
		StaffID:        req.StaffID,
		Date:           req.Date,
		Kind:           req.Kind,
		ScheduledEntry: req.ScheduledEntry,
		ActualArrival:  req.ActualArrival,
		AbsenceType:    req.AbsenceType,
		AbsenceStart:   req.AbsenceStart,
		AbsenceEnd:     req.AbsenceEnd,
		VacationDays:   req.VacationDays,
		Shift:          req.Shift,
		Notes:          req.Notes,
	})
	if err != nil {
		if errors.Is(err, salonClient.ErrValidation) {
			s.logger.Warn("Create: backend rejected novelty for staff=%d: %v", req.StaffID, err)
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		s.logger.Error("Create: failed to create novelty for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: Create - gateway error: %v", ErrInternal, err)
	}

	if novelty.Warning != "" {
		s.logger.Warn("Create: novelty id=%d created with warning: %s", novelty.ID, novelty.Warning)
	}

	s.flags.Set(ctx, refreshflags.TopicNovelties)

	s.logger.Info("Create: novelty id=%d created for staff=%d", novelty.ID, req.StaffID)
	return models.FromDomainNovelty(novelty), nil
}

// Cancel аннулирует новедаду. Причина обязательна.
func (s *Service) Cancel(ctx context.Context, noveltyID int64, reason string) error {
	s.logger.Info("Cancel: cancelling novelty id=%d", noveltyID)

	if reason == "" {
		s.logger.Warn("Cancel: missing reason for novelty id=%d", noveltyID)
		return ErrReasonRequired
	}

	if err := s.salonClient.CancelNovelty(ctx, noveltyID, reason); err != nil {
		if errors.Is(err, salonClient.ErrNoveltyNotFound) {
			s.logger.Warn("Cancel: novelty id=%d not found", noveltyID)
			return ErrNoveltyNotFound
		}
		if errors.Is(err, salonClient.ErrValidation) {
			s.logger.Warn("Cancel: backend rejected cancellation of novelty id=%d: %v", noveltyID, err)
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
		s.logger.Error("Cancel: failed to cancel novelty id=%d: %v", noveltyID, err)
		return fmt.Errorf("%w: Cancel - gateway error: %v", ErrInternal, err)
	}

	s.flags.Set(ctx, refreshflags.TopicNovelties)

	s.logger.Info("Cancel: novelty id=%d cancelled", noveltyID)
	return nil
}

// HasActiveAppointments сообщает, есть ли у мастера активные записи.
// Гейт деактивации: мастера с активными записями деактивировать нельзя.
func (s *Service) HasActiveAppointments(ctx context.Context, staffID int64) (bool, error) {
	has, err := s.salonClient.HasActiveAppointments(ctx, staffID)
	if err != nil {
		s.logger.Error("HasActiveAppointments: gateway error for staff=%d: %v", staffID, err)
		return false, fmt.Errorf("%w: HasActiveAppointments - gateway error: %v", ErrInternal, err)
	}
	return has, nil
}

// validateKindFields проверяет поля, обязательные для типа новедады
func validateKindFields(req *models.CreateNoveltyRequest) error {
	switch req.Kind {
	case domain.NoveltyVacation:
		if req.VacationDays == nil {
			return fmt.Errorf("%w: vacation days are required", ErrMissingKindFields)
		}
		days := *req.VacationDays
		if days <= 0 || days%domain.VacationDaysStep != 0 || days > domain.VacationDaysMax {
			return ErrInvalidVacationDays
		}
	case domain.NoveltyTardiness:
		if req.ScheduledEntry == nil || req.ActualArrival == nil {
			return fmt.Errorf("%w: scheduled entry and actual arrival are required", ErrMissingKindFields)
		}
	case domain.NoveltyAbsence:
		if req.AbsenceType == nil {
			return fmt.Errorf("%w: absence type is required", ErrMissingKindFields)
		}
		if *req.AbsenceType == domain.AbsenceHourly {
			if req.AbsenceStart == nil || req.AbsenceEnd == nil {
				return fmt.Errorf("%w: hourly absence requires start and end times", ErrMissingKindFields)
			}
			if !req.AbsenceStart.IsBefore(*req.AbsenceEnd) {
				return fmt.Errorf("%w: absence start must be before absence end", ErrMissingKindFields)
			}
		}
	case domain.NoveltyScheduleChange:
		if req.Shift == nil {
			return fmt.Errorf("%w: shift is required", ErrMissingKindFields)
		}
	}
	return nil
}
