package cart

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/NLS-ScheduleService/internal/domain"
	"github.com/m04kA/NLS-ScheduleService/internal/occupancy"
	"github.com/m04kA/NLS-ScheduleService/pkg/types"
)

var (
	cartDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	// now накануне, буфер "сегодня" не действует
	cartNow = time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
)

var (
	manicure = domain.Service{ID: 1, Name: "Manicure tradicional", DurationMinutes: 60, Price: 25000}
	pedicure = domain.Service{ID: 2, Name: "Pedicure spa", DurationMinutes: 90, Price: 40000}
)

func TestAddAndRemoveRow(t *testing.T) {
	c := New(101, cartDate)

	row := c.AddRow(manicure)
	require.Len(t, c.Rows(), 1)
	assert.False(t, row.Complete())

	require.NoError(t, c.RemoveRow(row.ID))
	assert.Empty(t, c.Rows())

	assert.ErrorIs(t, c.RemoveRow(uuid.New()), ErrRowNotFound)
}

func TestAssignStaff_ComputesAvailableStarts(t *testing.T) {
	c := New(101, cartDate)
	row := c.AddRow(manicure)

	occupied := occupancy.SlotSet{"14:00": {}, "14:30": {}}
	got, err := c.AssignStaff(row.ID, 7, "Ana", occupied, cartNow)
	require.NoError(t, err)

	assert.Equal(t, int64(7), *got.StaffID)
	assert.NotContains(t, got.AvailableStarts, types.TimeString("13:30"))
	assert.NotContains(t, got.AvailableStarts, types.TimeString("14:00"))
	assert.Contains(t, got.AvailableStarts, types.TimeString("13:00"))
	assert.Contains(t, got.AvailableStarts, types.TimeString("15:00"))
}

func TestAssignStaff_ExcludesSiblingFootprints(t *testing.T) {
	c := New(101, cartDate)

	first := c.AddRow(manicure)
	_, err := c.AssignStaff(first.ID, 7, "Ana", occupancy.SlotSet{}, cartNow)
	require.NoError(t, err)
	_, err = c.AssignStart(first.ID, "14:00")
	require.NoError(t, err)

	second := c.AddRow(pedicure)
	got, err := c.AssignStaff(second.ID, 7, "Ana", occupancy.SlotSet{}, cartNow)
	require.NoError(t, err)

	// Первая строка держит 14:00-15:00 у того же мастера
	assert.NotContains(t, got.AvailableStarts, types.TimeString("14:00"))
	assert.NotContains(t, got.AvailableStarts, types.TimeString("14:30"))
	assert.NotContains(t, got.AvailableStarts, types.TimeString("13:00"))
	assert.Contains(t, got.AvailableStarts, types.TimeString("15:00"))
}

func TestAssignStaff_DifferentStaffIgnoresSiblings(t *testing.T) {
	c := New(101, cartDate)

	first := c.AddRow(manicure)
	_, err := c.AssignStaff(first.ID, 7, "Ana", occupancy.SlotSet{}, cartNow)
	require.NoError(t, err)
	_, err = c.AssignStart(first.ID, "14:00")
	require.NoError(t, err)

	second := c.AddRow(pedicure)
	got, err := c.AssignStaff(second.ID, 8, "Luz", occupancy.SlotSet{}, cartNow)
	require.NoError(t, err)

	assert.Contains(t, got.AvailableStarts, types.TimeString("14:00"))
}

func TestAssignStaff_ClearsInvalidatedStart(t *testing.T) {
	c := New(101, cartDate)
	row := c.AddRow(manicure)

	_, err := c.AssignStaff(row.ID, 7, "Ana", occupancy.SlotSet{}, cartNow)
	require.NoError(t, err)
	_, err = c.AssignStart(row.ID, "14:00")
	require.NoError(t, err)

	// Смена мастера на занятого в 14:00 сбрасывает выбранное время
	got, err := c.AssignStaff(row.ID, 8, "Luz", occupancy.SlotSet{"14:00": {}}, cartNow)
	require.NoError(t, err)

	assert.True(t, got.Start.IsZero())
}

func TestAssignStart(t *testing.T) {
	c := New(101, cartDate)
	row := c.AddRow(manicure)

	_, err := c.AssignStart(row.ID, "14:00")
	assert.ErrorIs(t, err, ErrStaffNotAssigned)

	_, err = c.AssignStaff(row.ID, 7, "Ana", occupancy.SlotSet{"14:00": {}}, cartNow)
	require.NoError(t, err)

	_, err = c.AssignStart(row.ID, "14:00")
	assert.ErrorIs(t, err, ErrStartNotAvailable)

	got, err := c.AssignStart(row.ID, "15:00")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("15:00"), got.Start)
	assert.True(t, got.Complete())
}

func TestValidate(t *testing.T) {
	c := New(101, cartDate)
	assert.ErrorIs(t, c.Validate(), ErrEmptyCart)

	row := c.AddRow(manicure)
	assert.ErrorIs(t, c.Validate(), ErrRowIncomplete)

	_, err := c.AssignStaff(row.ID, 7, "Ana", occupancy.SlotSet{}, cartNow)
	require.NoError(t, err)
	assert.ErrorIs(t, c.Validate(), ErrRowIncomplete)

	_, err = c.AssignStart(row.ID, "14:00")
	require.NoError(t, err)
	assert.NoError(t, c.Validate())
}

func TestGroupByStaff(t *testing.T) {
	c := New(101, cartDate)

	assign := func(svc domain.Service, staffID int64, name string, start types.TimeString) {
		row := c.AddRow(svc)
		_, err := c.AssignStaff(row.ID, staffID, name, occupancy.SlotSet{}, cartNow)
		require.NoError(t, err)
		_, err = c.AssignStart(row.ID, start)
		require.NoError(t, err)
	}

	assign(manicure, 7, "Ana", "15:00")
	assign(pedicure, 8, "Luz", "14:00")
	assign(domain.Service{ID: 3, Name: "Esmaltado", DurationMinutes: 30}, 7, "Ana", "11:00")

	drafts, err := c.GroupByStaff()
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	// Порядок групп следует первому появлению мастера
	assert.Equal(t, int64(7), drafts[0].StaffID)
	assert.Equal(t, []int64{1, 3}, drafts[0].ServiceIDs)
	// Самое раннее время среди строк мастера
	assert.Equal(t, types.TimeString("11:00"), drafts[0].Start)

	assert.Equal(t, int64(8), drafts[1].StaffID)
	assert.Equal(t, []int64{2}, drafts[1].ServiceIDs)
	assert.Equal(t, types.TimeString("14:00"), drafts[1].Start)
}

func TestGroupByStaff_IncompleteCart(t *testing.T) {
	c := New(101, cartDate)
	c.AddRow(manicure)

	_, err := c.GroupByStaff()
	assert.ErrorIs(t, err, ErrRowIncomplete)
}

func TestStore(t *testing.T) {
	s := NewStore(time.Minute)

	c := s.Create(101, cartDate)
	got, err := s.Get(c.ID)
	require.NoError(t, err)
	assert.Same(t, c, got)

	s.Discard(c.ID)
	_, err = s.Get(c.ID)
	assert.ErrorIs(t, err, ErrCartNotFound)

	// Повторный сброс не ошибка
	s.Discard(c.ID)
}

func TestStore_ExpiresIdleSessions(t *testing.T) {
	s := NewStore(time.Minute)
	c := s.Create(101, cartDate)

	s.mu.Lock()
	s.entries[c.ID].lastUsed = time.Now().Add(-2 * time.Minute)
	s.mu.Unlock()

	_, err := s.Get(c.ID)
	assert.ErrorIs(t, err, ErrCartNotFound)
}
