package carts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/NLS-ScheduleService/internal/availability"
	"github.com/m04kA/NLS-ScheduleService/internal/cart"
	"github.com/m04kA/NLS-ScheduleService/internal/domain"
	salonClient "github.com/m04kA/NLS-ScheduleService/internal/integrations/salonapi"
	"github.com/m04kA/NLS-ScheduleService/internal/occupancy"
	"github.com/m04kA/NLS-ScheduleService/internal/service/carts/models"
	"github.com/m04kA/NLS-ScheduleService/pkg/types"
)

// Service сервис сессий мультисервисной записи. Состояние корзины живёт
// в памяти движка; бэкенд видит только финальную отправку.
type Service struct {
	store        *cart.Store
	salonClient  SalonAPIClient
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса корзин
func NewService(store *cart.Store, salonClient SalonAPIClient, logger Logger) *Service {
	return &Service{
		store:        store,
		salonClient:  salonClient,
		timeProvider: &availability.RealTimeProvider{},
		logger:       logger,
	}
}

// Create открывает сессию корзины для клиента на дату
func (s *Service) Create(ctx context.Context, clientID int64, date time.Time) (*models.CartResponse, error) {
	now := s.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		s.logger.Warn("Create: date %s is in the past", date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	c := s.store.Create(clientID, date)
	s.logger.Info("Create: cart %s opened for client=%d date=%s",
		c.ID, clientID, date.Format(domain.DateFormat))
	return models.FromCart(c), nil
}

// Get возвращает сессию корзины
func (s *Service) Get(ctx context.Context, cartID uuid.UUID) (*models.CartResponse, error) {
	c, err := s.store.Get(cartID)
	if err != nil {
		return nil, ErrCartNotFound
	}
	return models.FromCart(c), nil
}

// AddRow добавляет строку с услугой; мастер и время пока не назначены
func (s *Service) AddRow(ctx context.Context, cartID uuid.UUID, serviceID int64) (*models.CartResponse, error) {
	c, err := s.store.Get(cartID)
	if err != nil {
		return nil, ErrCartNotFound
	}

	service, err := s.salonClient.GetService(ctx, serviceID)
	if err != nil {
		if errors.Is(err, salonClient.ErrServiceNotFound) {
			s.logger.Warn("AddRow: service id=%d not found", serviceID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("AddRow: failed to get service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: AddRow - failed to get service: %v", ErrInternal, err)
	}

	row := c.AddRow(*service)
	s.logger.Info("AddRow: cart %s row %s service=%d (%s)", cartID, row.ID, serviceID, service.Name)
	return models.FromCart(c), nil
}

// RemoveRow удаляет строку из корзины
func (s *Service) RemoveRow(ctx context.Context, cartID, rowID uuid.UUID) (*models.CartResponse, error) {
	c, err := s.store.Get(cartID)
	if err != nil {
		return nil, ErrCartNotFound
	}
	if err := c.RemoveRow(rowID); err != nil {
		return nil, ErrRowNotFound
	}
	s.logger.Info("RemoveRow: cart %s row %s removed", cartID, rowID)
	return models.FromCart(c), nil
}

// AssignStaff назначает мастера строке и пересчитывает её доступные
// времена по свежей занятости плюс отпечаткам других строк корзины.
func (s *Service) AssignStaff(ctx context.Context, cartID, rowID uuid.UUID, staffID int64) (*models.AssignResponse, error) {
	c, err := s.store.Get(cartID)
	if err != nil {
		return nil, ErrCartNotFound
	}

	staff, err := s.salonClient.GetStaff(ctx, staffID)
	if err != nil {
		if errors.Is(err, salonClient.ErrStaffNotFound) {
			s.logger.Warn("AssignStaff: staff id=%d not found", staffID)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("AssignStaff: failed to get staff id=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: AssignStaff - failed to get staff: %v", ErrInternal, err)
	}
	if !staff.Active {
		s.logger.Warn("AssignStaff: staff id=%d is inactive", staffID)
		return nil, ErrStaffInactive
	}

	occupied, degraded := s.occupiedForStaff(ctx, staffID, c.Date)

	row, err := c.AssignStaff(rowID, staffID, staff.Name, occupied, s.timeProvider.Now())
	if err != nil {
		if errors.Is(err, cart.ErrRowNotFound) {
			return nil, ErrRowNotFound
		}
		return nil, fmt.Errorf("%w: AssignStaff - cart error: %v", ErrInternal, err)
	}

	s.logger.Info("AssignStaff: cart %s row %s staff=%d, %d starts available (degraded=%t)",
		cartID, rowID, staffID, len(row.AvailableStarts), degraded)
	return &models.AssignResponse{Row: models.FromCartRow(row), Degraded: degraded}, nil
}

// AssignStart назначает строке время начала
func (s *Service) AssignStart(ctx context.Context, cartID, rowID uuid.UUID, start types.TimeString) (*models.AssignResponse, error) {
	c, err := s.store.Get(cartID)
	if err != nil {
		return nil, ErrCartNotFound
	}

	row, err := c.AssignStart(rowID, start)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrRowNotFound):
			return nil, ErrRowNotFound
		case errors.Is(err, cart.ErrStaffNotAssigned):
			return nil, ErrStaffNotAssigned
		case errors.Is(err, cart.ErrStartNotAvailable):
			s.logger.Warn("AssignStart: cart %s row %s start %s not available", cartID, rowID, start)
			return nil, fmt.Errorf("%w: %s", ErrStartNotAvailable, start)
		default:
			return nil, fmt.Errorf("%w: AssignStart - cart error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("AssignStart: cart %s row %s start=%s", cartID, rowID, start)
	return &models.AssignResponse{Row: models.FromCartRow(row)}, nil
}

// Discard закрывает сессию без побочных эффектов на бэкенде
func (s *Service) Discard(ctx context.Context, cartID uuid.UUID) {
	s.store.Discard(cartID)
	s.logger.Info("Discard: cart %s discarded", cartID)
}

// occupiedForStaff собирает занятость мастера на дату из записей и
// новедад. Деградировавший источник даёт пустой вклад, не полный день.
func (s *Service) occupiedForStaff(ctx context.Context, staffID int64, date time.Time) (occupancy.SlotSet, bool) {
	appointments, apptsDegraded := s.salonClient.ListAppointmentsWithFallback(ctx, domain.AppointmentsFilter{
		StaffID:    &staffID,
		Date:       &date,
		ActiveOnly: true,
	})
	novelties, novsDegraded := s.salonClient.ListNoveltiesWithFallback(ctx, &staffID, &date)

	return occupancy.OccupiedSlots(staffID, date, appointments, novelties), apptsDegraded || novsDegraded
}
