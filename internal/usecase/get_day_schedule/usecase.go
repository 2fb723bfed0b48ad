package get_day_schedule

import (
	"context"

	"github.com/m04kA/NLS-ScheduleService/internal/domain"
	"github.com/m04kA/NLS-ScheduleService/internal/occupancy"
	"github.com/m04kA/NLS-ScheduleService/internal/timegrid"
	"github.com/m04kA/NLS-ScheduleService/pkg/metrics"
	"github.com/m04kA/NLS-ScheduleService/pkg/ptr"
)

// UseCase use case расписания дня: сетка занятости каждого активного
// мастера на дату — данные календарного экрана администратора.
type UseCase struct {
	salonClient SalonAPIClient
	metrics     *metrics.Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case.
// metricsCollector может быть nil, если метрики выключены.
func NewUseCase(salonClient SalonAPIClient, metricsCollector *metrics.Metrics, logger Logger) *UseCase {
	return &UseCase{
		salonClient: salonClient,
		metrics:     metricsCollector,
		logger:      logger,
	}
}

// Execute выполняет use case расписания дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySchedule: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Активные мастера
	staff, staffDegraded := uc.salonClient.ListStaffWithFallback(ctx, ptr.Ptr("activo"))
	if staffDegraded && uc.metrics != nil {
		uc.metrics.GatewayFallbacksTotal.WithLabelValues("manicuristas").Inc()
	}

	// 2. Записи и новедады всего салона на дату, одним запросом на источник
	appointments, apptsDegraded := uc.salonClient.ListAppointmentsWithFallback(ctx, domain.AppointmentsFilter{
		Date:       &req.Date,
		ActiveOnly: true,
	})
	if apptsDegraded && uc.metrics != nil {
		uc.metrics.GatewayFallbacksTotal.WithLabelValues("citas").Inc()
	}

	novelties, novsDegraded := uc.salonClient.ListNoveltiesWithFallback(ctx, nil, &req.Date)
	if novsDegraded && uc.metrics != nil {
		uc.metrics.GatewayFallbacksTotal.WithLabelValues("novedades").Inc()
	}

	// 3. Сетка каждого мастера; занятость считается по общим спискам,
	// агрегатор сам отбирает нужного мастера
	grid := timegrid.EnumerateSlots()
	schedules := make([]StaffSchedule, 0, len(staff))
	for _, member := range staff {
		occupied := occupancy.OccupiedSlots(member.ID, req.Date, appointments, novelties)

		slots := make([]Slot, 0, len(grid))
		for _, slot := range grid {
			slots = append(slots, Slot{
				Time:      slot.String(),
				Available: !occupied.Contains(slot),
			})
		}
		schedules = append(schedules, StaffSchedule{
			StaffID:   member.ID,
			StaffName: member.Name,
			Slots:     slots,
		})
	}

	degraded := staffDegraded || apptsDegraded || novsDegraded
	uc.logger.Info("GetDaySchedule: date=%s -> %d staff schedules (degraded=%t)",
		req.Date.Format(domain.DateFormat), len(schedules), degraded)

	return &Response{
		Date:     req.Date,
		Staff:    schedules,
		Degraded: degraded,
	}, nil
}
