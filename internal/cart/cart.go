package cart

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/NLS-ScheduleService/internal/availability"
	"github.com/m04kA/NLS-ScheduleService/internal/domain"
	"github.com/m04kA/NLS-ScheduleService/internal/occupancy"
	"github.com/m04kA/NLS-ScheduleService/internal/timegrid"
	"github.com/m04kA/NLS-ScheduleService/pkg/types"
)

// Row is one (service, staff, start) assignment being built in a cart.
// Staff and start are unassigned until the user picks them.
type Row struct {
	ID        uuid.UUID
	Service   domain.Service
	StaffID   *int64
	StaffName string
	Start     types.TimeString // zero value = unassigned

	// AvailableStarts is the list computed at the last staff assignment;
	// AssignStart validates against it.
	AvailableStarts []types.TimeString
}

// Complete reports whether the row has both staff and start assigned.
func (r *Row) Complete() bool {
	return r.StaffID != nil && !r.Start.IsZero()
}

// Cart — сессионная корзина мультисервисной записи одного клиента.
// Вся мутация состояния идёт через методы этого типа; сами вычисления
// (сетка, занятость, доступность) остаются чистыми функциями. Корзина
// принадлежит ровно одной сессии UI и не переживает её.
type Cart struct {
	ID        uuid.UUID
	ClientID  int64
	Date      time.Time
	CreatedAt time.Time

	rows []*Row
}

// AppointmentDraft — заготовка одной записи для одного мастера:
// результат группировки строк корзины при отправке.
type AppointmentDraft struct {
	StaffID    int64
	ServiceIDs []int64
	Services   []domain.Service
	Start      types.TimeString // самое раннее время среди строк мастера
}

// New creates an empty cart for a client and date.
func New(clientID int64, date time.Time) *Cart {
	return &Cart{
		ID:        uuid.New(),
		ClientID:  clientID,
		Date:      date,
		CreatedAt: time.Now(),
	}
}

// Rows returns the rows in insertion order.
func (c *Cart) Rows() []*Row {
	return c.rows
}

// AddRow appends a row with unassigned staff and start.
func (c *Cart) AddRow(service domain.Service) *Row {
	row := &Row{
		ID:      uuid.New(),
		Service: service,
	}
	c.rows = append(c.rows, row)
	return row
}

// RemoveRow deletes a row from the cart.
func (c *Cart) RemoveRow(rowID uuid.UUID) error {
	for i, row := range c.rows {
		if row.ID == rowID {
			c.rows = append(c.rows[:i], c.rows[i+1:]...)
			return nil
		}
	}
	return ErrRowNotFound
}

// Row finds a row by id.
func (c *Cart) Row(rowID uuid.UUID) (*Row, error) {
	for _, row := range c.rows {
		if row.ID == rowID {
			return row, nil
		}
	}
	return nil, ErrRowNotFound
}

// AssignStaff назначает мастера строке и пересчитывает её доступные
// времена: к базовой занятости мастера (записи + новедады, уже
// вычисленные вызывающей стороной) добавляются отпечатки ДРУГИХ строк
// этой же корзины, назначенных тому же мастеру — мастер не может быть
// занят дважды одной и той же незаконченной корзиной. Если ранее
// выбранное время перестало быть допустимым, оно сбрасывается.
func (c *Cart) AssignStaff(
	rowID uuid.UUID,
	staffID int64,
	staffName string,
	baseOccupied occupancy.SlotSet,
	now time.Time,
) (*Row, error) {
	row, err := c.Row(rowID)
	if err != nil {
		return nil, err
	}

	row.StaffID = &staffID
	row.StaffName = staffName

	occupied := make(occupancy.SlotSet, len(baseOccupied))
	for slot := range baseOccupied {
		occupied[slot] = struct{}{}
	}
	c.addSiblingFootprints(occupied, rowID, staffID)

	row.AvailableStarts = availability.AvailableStarts(c.Date, row.Service.DurationMinutes, occupied, now)

	if !row.Start.IsZero() && !containsStart(row.AvailableStarts, row.Start) {
		row.Start = ""
	}

	return row, nil
}

// AssignStart назначает строке время начала. Время обязано входить в
// список, вычисленный последним AssignStaff, иначе отказ.
func (c *Cart) AssignStart(rowID uuid.UUID, start types.TimeString) (*Row, error) {
	row, err := c.Row(rowID)
	if err != nil {
		return nil, err
	}
	if row.StaffID == nil {
		return nil, ErrStaffNotAssigned
	}
	if !containsStart(row.AvailableStarts, start) {
		return nil, fmt.Errorf("%w: %s", ErrStartNotAvailable, start)
	}
	row.Start = start
	return row, nil
}

// TotalDurationMinutes возвращает суммарную длительность всех строк.
func (c *Cart) TotalDurationMinutes() int {
	total := 0
	for _, row := range c.rows {
		total += row.Service.DurationMinutes
	}
	return total
}

// Validate проверяет корзину перед отправкой: непустая и каждая строка
// укомплектована. Возвращает ошибку по каждой первой незаполненной
// строке — ни один запрос на создание не должен уйти при неполной корзине.
func (c *Cart) Validate() error {
	if len(c.rows) == 0 {
		return ErrEmptyCart
	}
	for i, row := range c.rows {
		if !row.Complete() {
			return fmt.Errorf("%w: row %d (%s)", ErrRowIncomplete, i+1, row.Service.Name)
		}
	}
	return nil
}

// GroupByStaff группирует укомплектованные строки по мастеру: по одной
// заготовке записи на мастера, со всеми его услугами и самым ранним
// назначенным временем. Порядок групп — порядок первого появления
// мастера в корзине.
func (c *Cart) GroupByStaff() ([]AppointmentDraft, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	byStaff := make(map[int64]*AppointmentDraft)
	order := make([]int64, 0)

	for _, row := range c.rows {
		staffID := *row.StaffID
		draft, ok := byStaff[staffID]
		if !ok {
			draft = &AppointmentDraft{StaffID: staffID, Start: row.Start}
			byStaff[staffID] = draft
			order = append(order, staffID)
		}
		draft.ServiceIDs = append(draft.ServiceIDs, row.Service.ID)
		draft.Services = append(draft.Services, row.Service)
		if row.Start.IsBefore(draft.Start) {
			draft.Start = row.Start
		}
	}

	drafts := make([]AppointmentDraft, 0, len(order))
	for _, staffID := range order {
		drafts = append(drafts, *byStaff[staffID])
	}
	return drafts, nil
}

// addSiblingFootprints добавляет в occupied слоты, занимаемые другими
// строками корзины, назначенными тому же мастеру.
func (c *Cart) addSiblingFootprints(occupied occupancy.SlotSet, excludeRowID uuid.UUID, staffID int64) {
	for _, other := range c.rows {
		if other.ID == excludeRowID || other.StaffID == nil || *other.StaffID != staffID || other.Start.IsZero() {
			continue
		}
		slots, err := timegrid.SlotsForDuration(other.Start, other.Service.DurationMinutes)
		if err != nil {
			continue
		}
		for _, slot := range slots {
			occupied[slot] = struct{}{}
		}
	}
}

func containsStart(starts []types.TimeString, start types.TimeString) bool {
	for _, s := range starts {
		if s == start {
			return true
		}
	}
	return false
}
