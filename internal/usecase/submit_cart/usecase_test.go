package submit_cart

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/NLS-ScheduleService/internal/cart"
	"github.com/m04kA/NLS-ScheduleService/internal/domain"
	salonClient "github.com/m04kA/NLS-ScheduleService/internal/integrations/salonapi"
	"github.com/m04kA/NLS-ScheduleService/internal/occupancy"
	"github.com/m04kA/NLS-ScheduleService/pkg/types"
)

var (
	submitNow  = time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	submitDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
)

type fakeSalonClient struct {
	appointments []*domain.Appointment
	novelties    []*domain.Novelty

	createRequests []*salonClient.CreateAppointmentRequest
	// failOn — порядковый номер запроса на создание (с единицы),
	// который должен упасть; 0 означает "не падать"
	failOn  int
	failErr error

	nextID int64
}

func (f *fakeSalonClient) ListAppointmentsWithFallback(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, bool) {
	return f.appointments, false
}

func (f *fakeSalonClient) ListNoveltiesWithFallback(_ context.Context, _ *int64, _ *time.Time) ([]*domain.Novelty, bool) {
	return f.novelties, false
}

func (f *fakeSalonClient) CreateAppointment(_ context.Context, req *salonClient.CreateAppointmentRequest) (*domain.Appointment, error) {
	f.createRequests = append(f.createRequests, req)
	if f.failOn > 0 && len(f.createRequests) == f.failOn {
		return nil, f.failErr
	}
	f.nextID++
	return &domain.Appointment{
		ID:         f.nextID,
		ClientID:   req.Cliente,
		StaffID:    req.Manicurista,
		ServiceIDs: req.Servicios,
		Date:       submitDate,
		StartTime:  types.TimeString(req.HoraCita),
		Status:     domain.AppointmentStatus(req.Estado),
	}, nil
}

type fakeStore struct {
	carts     map[uuid.UUID]*cart.Cart
	discarded []uuid.UUID
}

func newFakeStore(c *cart.Cart) *fakeStore {
	return &fakeStore{carts: map[uuid.UUID]*cart.Cart{c.ID: c}}
}

func (f *fakeStore) Get(id uuid.UUID) (*cart.Cart, error) {
	c, ok := f.carts[id]
	if !ok {
		return nil, cart.ErrCartNotFound
	}
	return c, nil
}

func (f *fakeStore) Discard(id uuid.UUID) {
	f.discarded = append(f.discarded, id)
	delete(f.carts, id)
}

type fakeFlags struct {
	topics []string
}

func (f *fakeFlags) Set(_ context.Context, topic string) {
	f.topics = append(f.topics, topic)
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(store CartStore, client SalonAPIClient, flags RefreshFlags) *UseCase {
	return &UseCase{
		cartStore:    store,
		salonClient:  client,
		flags:        flags,
		timeProvider: &fixedTime{now: submitNow},
		logger:       nopLogger{},
	}
}

func addCompletedRow(t *testing.T, c *cart.Cart, svc domain.Service, staffID int64, start types.TimeString) {
	t.Helper()
	row := c.AddRow(svc)
	_, err := c.AssignStaff(row.ID, staffID, "Staff", occupancy.SlotSet{}, submitNow)
	require.NoError(t, err)
	_, err = c.AssignStart(row.ID, start)
	require.NoError(t, err)
}

func TestExecute_OneAppointmentPerStaff(t *testing.T) {
	c := cart.New(101, submitDate)
	addCompletedRow(t, c, domain.Service{ID: 1, Name: "Manicure", DurationMinutes: 60}, 7, "15:00")
	addCompletedRow(t, c, domain.Service{ID: 2, Name: "Pedicure", DurationMinutes: 60}, 8, "14:00")
	addCompletedRow(t, c, domain.Service{ID: 3, Name: "Esmaltado", DurationMinutes: 30}, 7, "11:00")

	store := newFakeStore(c)
	client := &fakeSalonClient{}
	flags := &fakeFlags{}

	resp, err := newTestUseCase(store, client, flags).Execute(context.Background(), &Request{CartID: c.ID, Notes: "nota"})
	require.NoError(t, err)

	require.Len(t, resp.Appointments, 2)
	require.Len(t, client.createRequests, 2)

	// Группа мастера 7: обе услуги, самое раннее время
	first := client.createRequests[0]
	assert.Equal(t, int64(101), first.Cliente)
	assert.Equal(t, int64(7), first.Manicurista)
	assert.Equal(t, []int64{1, 3}, first.Servicios)
	assert.Equal(t, "11:00", first.HoraCita)
	assert.Equal(t, "2026-09-15", first.FechaCita)
	assert.Equal(t, "pendiente", first.Estado)
	assert.Equal(t, "nota", first.Observaciones)

	second := client.createRequests[1]
	assert.Equal(t, int64(8), second.Manicurista)
	assert.Equal(t, "14:00", second.HoraCita)

	// Сессия закрыта, календарю выставлен маркер обновления
	assert.Contains(t, store.discarded, c.ID)
	assert.Equal(t, []string{"citas"}, flags.topics)
}

func TestExecute_CartNotFound(t *testing.T) {
	store := &fakeStore{carts: map[uuid.UUID]*cart.Cart{}}

	_, err := newTestUseCase(store, &fakeSalonClient{}, &fakeFlags{}).
		Execute(context.Background(), &Request{CartID: uuid.New()})
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestExecute_IncompleteRowCreatesNothing(t *testing.T) {
	c := cart.New(101, submitDate)
	addCompletedRow(t, c, domain.Service{ID: 1, Name: "Manicure", DurationMinutes: 60}, 7, "15:00")
	c.AddRow(domain.Service{ID: 2, Name: "Pedicure", DurationMinutes: 90})

	client := &fakeSalonClient{}
	store := newFakeStore(c)

	_, err := newTestUseCase(store, client, &fakeFlags{}).
		Execute(context.Background(), &Request{CartID: c.ID})

	assert.ErrorIs(t, err, ErrRowIncomplete)
	// Ни один запрос на создание не ушёл, корзина жива
	assert.Empty(t, client.createRequests)
	assert.Empty(t, store.discarded)
}

func TestExecute_EmptyCart(t *testing.T) {
	c := cart.New(101, submitDate)
	client := &fakeSalonClient{}

	_, err := newTestUseCase(newFakeStore(c), client, &fakeFlags{}).
		Execute(context.Background(), &Request{CartID: c.ID})

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, client.createRequests)
}

func TestExecute_RecheckRejectsStaleStart(t *testing.T) {
	c := cart.New(101, submitDate)
	addCompletedRow(t, c, domain.Service{ID: 1, Name: "Manicure", DurationMinutes: 60}, 7, "14:00")

	// Пока корзина собиралась, слот 14:30 заняла чужая запись
	client := &fakeSalonClient{
		appointments: []*domain.Appointment{
			{
				ID:        50,
				StaffID:   7,
				Date:      submitDate,
				StartTime: types.TimeString("14:30"),
				Status:    domain.StatusPending,
				Services:  []domain.Service{{ID: 9, DurationMinutes: 30}},
			},
		},
	}
	store := newFakeStore(c)

	_, err := newTestUseCase(store, client, &fakeFlags{}).
		Execute(context.Background(), &Request{CartID: c.ID})

	assert.ErrorIs(t, err, ErrStartNotAvailable)
	assert.Empty(t, client.createRequests)
	assert.Empty(t, store.discarded)
}

func TestExecute_BackendConflictWithoutCreations(t *testing.T) {
	c := cart.New(101, submitDate)
	addCompletedRow(t, c, domain.Service{ID: 1, Name: "Manicure", DurationMinutes: 60}, 7, "14:00")

	client := &fakeSalonClient{failOn: 1, failErr: salonClient.ErrSlotConflict}
	store := newFakeStore(c)

	_, err := newTestUseCase(store, client, &fakeFlags{}).
		Execute(context.Background(), &Request{CartID: c.ID})

	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Empty(t, store.discarded)
}

func TestExecute_PartialSubmit(t *testing.T) {
	c := cart.New(101, submitDate)
	addCompletedRow(t, c, domain.Service{ID: 1, Name: "Manicure", DurationMinutes: 60}, 7, "14:00")
	addCompletedRow(t, c, domain.Service{ID: 2, Name: "Pedicure", DurationMinutes: 60}, 8, "14:00")

	client := &fakeSalonClient{failOn: 2, failErr: errors.New("backend unavailable")}
	store := newFakeStore(c)

	_, err := newTestUseCase(store, client, &fakeFlags{}).
		Execute(context.Background(), &Request{CartID: c.ID})

	// Первая запись уже создана, это не обычный откат
	assert.ErrorIs(t, err, ErrPartialSubmit)
	assert.Empty(t, store.discarded)
}
