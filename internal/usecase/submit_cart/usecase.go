package submit_cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/NLS-ScheduleService/internal/availability"
	"github.com/m04kA/NLS-ScheduleService/internal/cart"
	"github.com/m04kA/NLS-ScheduleService/internal/domain"
	"github.com/m04kA/NLS-ScheduleService/internal/infra/refreshflags"
	salonClient "github.com/m04kA/NLS-ScheduleService/internal/integrations/salonapi"
	"github.com/m04kA/NLS-ScheduleService/internal/occupancy"
)

// UseCase use case отправки корзины: группировка строк по мастерам,
// финальная проверка доступности каждой группы и создание записей.
// Вся валидация идёт до первого запроса на создание; конфликт на самом
// бэкенде после этого всё ещё возможен (слот мог уйти) и возвращается
// адресной ошибкой.
type UseCase struct {
	cartStore    CartStore
	salonClient  SalonAPIClient
	flags        RefreshFlags
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	cartStore CartStore,
	salonClient SalonAPIClient,
	flags RefreshFlags,
	logger Logger,
) *UseCase {
	return &UseCase{
		cartStore:    cartStore,
		salonClient:  salonClient,
		flags:        flags,
		timeProvider: &availability.RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет отправку корзины
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitCart: cart=%s", req.CartID)

	// 1. Получаем сессию корзины
	c, err := uc.cartStore.Get(req.CartID)
	if err != nil {
		uc.logger.Warn("SubmitCart: cart %s not found", req.CartID)
		return nil, ErrCartNotFound
	}

	// 2. Валидация всех строк до единого запроса на создание
	if err := validateCart(c); err != nil {
		uc.logger.Warn("SubmitCart: cart %s validation failed: %v", req.CartID, err)
		return nil, err
	}

	// 3. Группируем строки по мастерам: одна запись на мастера,
	// самое раннее время группы
	drafts, err := c.GroupByStaff()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to group cart rows: %v", ErrInternal, err)
	}

	// 4. Финальная проверка доступности каждой группы по свежей занятости
	now := uc.timeProvider.Now()
	for _, draft := range drafts {
		if err := uc.recheckDraft(ctx, c, draft, now); err != nil {
			uc.logger.Warn("SubmitCart: cart %s draft for staff=%d failed recheck: %v",
				req.CartID, draft.StaffID, err)
			return nil, err
		}
	}

	// 5. Создаем записи; каждая группа — отдельный запрос
	created := make([]CreatedAppointment, 0, len(drafts))
	for _, draft := range drafts {
		appointment, err := uc.salonClient.CreateAppointment(ctx, &salonClient.CreateAppointmentRequest{
			Cliente:       c.ClientID,
			Manicurista:   draft.StaffID,
			Servicios:     draft.ServiceIDs,
			FechaCita:     c.Date.Format(domain.DateFormat),
			HoraCita:      draft.Start.String(),
			Observaciones: req.Notes,
			Estado:        string(domain.StatusPending),
		})
		if err != nil {
			uc.logger.Error("SubmitCart: cart %s create failed for staff=%d after %d created: %v",
				req.CartID, draft.StaffID, len(created), err)
			if len(created) > 0 {
				return nil, fmt.Errorf("%w: %d of %d appointments created: %v",
					ErrPartialSubmit, len(created), len(drafts), err)
			}
			if errors.Is(err, salonClient.ErrSlotConflict) {
				return nil, fmt.Errorf("%w: staff=%d start=%s", ErrSlotConflict, draft.StaffID, draft.Start)
			}
			return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		created = append(created, CreatedAppointment{
			ID:         appointment.ID,
			StaffID:    appointment.StaffID,
			Date:       appointment.Date.Format(domain.DateFormat),
			Start:      appointment.StartTime.String(),
			ServiceIDs: appointment.ServiceIDs,
			Status:     string(appointment.Status),
		})
	}

	// 6. Сессия отработала; маркер обновления для календаря
	uc.cartStore.Discard(req.CartID)
	uc.flags.Set(ctx, refreshflags.TopicAppointments)

	uc.logger.Info("SubmitCart: cart %s submitted, %d appointments created", req.CartID, len(created))
	return &Response{Appointments: created}, nil
}

// recheckDraft проверяет по свежей занятости, что блок группы всё ещё
// помещается целиком: от самого раннего времени группы на суммарную
// длительность её услуг.
func (uc *UseCase) recheckDraft(ctx context.Context, c *cart.Cart, draft cart.AppointmentDraft, now time.Time) error {
	staffID := draft.StaffID
	date := c.Date

	appointments, _ := uc.salonClient.ListAppointmentsWithFallback(ctx, domain.AppointmentsFilter{
		StaffID:    &staffID,
		Date:       &date,
		ActiveOnly: true,
	})
	novelties, _ := uc.salonClient.ListNoveltiesWithFallback(ctx, &staffID, &date)

	occupied := occupancy.OccupiedSlots(staffID, date, appointments, novelties)

	total := 0
	for _, s := range draft.Services {
		total += s.DurationMinutes
	}

	if !availability.CanStartAt(draft.Start, date, total, occupied, now) {
		return fmt.Errorf("%w: staff=%d start=%s", ErrStartNotAvailable, staffID, draft.Start)
	}
	return nil
}
