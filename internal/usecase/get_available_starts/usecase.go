package get_available_starts

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/NLS-ScheduleService/internal/availability"
	"github.com/m04kA/NLS-ScheduleService/internal/domain"
	salonClient "github.com/m04kA/NLS-ScheduleService/internal/integrations/salonapi"
	"github.com/m04kA/NLS-ScheduleService/internal/occupancy"
	"github.com/m04kA/NLS-ScheduleService/pkg/metrics"
)

// UseCase use case получения доступных времён начала записи
type UseCase struct {
	salonClient  SalonAPIClient
	timeProvider TimeProvider
	metrics      *metrics.Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// metricsCollector может быть nil, если метрики выключены.
func NewUseCase(salonClient SalonAPIClient, metricsCollector *metrics.Metrics, logger Logger) *UseCase {
	return &UseCase{
		salonClient:  salonClient,
		timeProvider: &availability.RealTimeProvider{},
		metrics:      metricsCollector,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных времён начала
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableStarts: staff=%d, date=%s, duration=%d",
		req.StaffID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Получаем текущее время
	now := uc.timeProvider.Now()

	// 2. Валидация входных данных
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("GetAvailableStarts: validation failed: %v", err)
		return nil, err
	}

	// 3. Проверяем существование и активность мастера
	staff, err := uc.salonClient.GetStaff(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, salonClient.ErrStaffNotFound) {
			uc.logger.Warn("GetAvailableStarts: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("GetAvailableStarts: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}
	if !staff.Active {
		uc.logger.Warn("GetAvailableStarts: staff id=%d is inactive", req.StaffID)
		return nil, ErrStaffInactive
	}

	// 4. Получаем активные записи мастера на дату (с деградацией до пустого списка)
	appointments, apptsDegraded := uc.salonClient.ListAppointmentsWithFallback(ctx, domain.AppointmentsFilter{
		StaffID:    &req.StaffID,
		Date:       &req.Date,
		ActiveOnly: true,
	})
	if apptsDegraded && uc.metrics != nil {
		uc.metrics.GatewayFallbacksTotal.WithLabelValues("citas").Inc()
	}

	// 5. Получаем новедады мастера на дату (с деградацией до пустого списка)
	novelties, novsDegraded := uc.salonClient.ListNoveltiesWithFallback(ctx, &req.StaffID, &req.Date)
	if novsDegraded && uc.metrics != nil {
		uc.metrics.GatewayFallbacksTotal.WithLabelValues("novedades").Inc()
	}

	// 6. Собираем занятость и вычисляем доступные времена начала
	occupied := occupancy.OccupiedSlots(req.StaffID, req.Date, appointments, novelties)
	starts := availability.AvailableStarts(req.Date, req.DurationMinutes, occupied, now)

	if uc.metrics != nil {
		uc.metrics.AvailabilityRequestsTotal.Inc()
	}

	degraded := apptsDegraded || novsDegraded
	uc.logger.Info("GetAvailableStarts: staff=%d date=%s -> %d starts (degraded=%t)",
		req.StaffID, req.Date.Format(domain.DateFormat), len(starts), degraded)

	formatted := make([]string, 0, len(starts))
	for _, s := range starts {
		formatted = append(formatted, s.String())
	}

	return &Response{
		StaffID:         req.StaffID,
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		Starts:          formatted,
		Degraded:        degraded,
	}, nil
}
