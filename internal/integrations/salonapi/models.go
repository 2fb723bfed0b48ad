package salonapi

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/m04kA/NLS-ScheduleService/internal/domain"
	"github.com/m04kA/NLS-ScheduleService/pkg/types"
)

// Внешние DTO бэкенда салона. Поля и эндпоинты — испанские, формы
// непоследовательны между эндпоинтами (ссылка на мастера то объект, то
// id). Вся нормализация происходит здесь, в одной функции на форму;
// внутренние типы доменных пакетов этих причуд не видят.

// StaffDTO модель мастера из /manicuristas/
type StaffDTO struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	// Некоторые ответы используют nombres вместо nombre
	Nombres string `json:"nombres"`
	Estado  string `json:"estado"`
}

// ToDomain конвертирует DTO мастера во внутреннюю модель
func (d *StaffDTO) ToDomain() *domain.StaffMember {
	name := d.Nombre
	if name == "" {
		name = d.Nombres
	}
	return &domain.StaffMember{
		ID:     d.ID,
		Name:   name,
		Active: d.Estado == "activo",
	}
}

// staffRef принимает ссылку на мастера в любой из форм бэкенда:
// число, строка с числом или вложенный объект {"id": ...}.
type staffRef struct {
	ID int64
}

func (r *staffRef) UnmarshalJSON(data []byte) error {
	var asInt int64
	if err := json.Unmarshal(data, &asInt); err == nil {
		r.ID = asInt
		return nil
	}
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		id, err := strconv.ParseInt(asString, 10, 64)
		if err != nil {
			return err
		}
		r.ID = id
		return nil
	}
	var asObject struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(data, &asObject); err != nil {
		return err
	}
	r.ID = asObject.ID
	return nil
}

// ServiceDTO модель услуги, вложенной в ответы по записям
type ServiceDTO struct {
	ID       int64   `json:"id"`
	Nombre   string  `json:"nombre"`
	Precio   float64 `json:"precio"`
	Duracion int     `json:"duracion"`
}

// ToDomain конвертирует DTO услуги во внутреннюю модель
func (d *ServiceDTO) ToDomain() domain.Service {
	return domain.Service{
		ID:              d.ID,
		Name:            d.Nombre,
		Price:           d.Precio,
		DurationMinutes: d.Duracion,
	}
}

// AppointmentDTO модель записи из /citas
type AppointmentDTO struct {
	ID            int64        `json:"id"`
	Cliente       staffRef     `json:"cliente"`
	Manicurista   staffRef     `json:"manicurista"`
	Servicios     []int64      `json:"servicios"`
	ServiciosInfo []ServiceDTO `json:"servicios_info"`
	FechaCita     string       `json:"fecha_cita"`
	HoraCita      string       `json:"hora_cita"`
	Estado        string       `json:"estado"`
	Observaciones string       `json:"observaciones"`
}

// ToDomain конвертирует DTO записи во внутреннюю модель
func (d *AppointmentDTO) ToDomain() (*domain.Appointment, error) {
	date, err := time.ParseInLocation(domain.DateFormat, d.FechaCita, time.Local)
	if err != nil {
		return nil, err
	}

	// hora_cita приходит как "HH:MM" или "HH:MM:SS"
	hora := d.HoraCita
	if len(hora) > 5 {
		hora = hora[:5]
	}
	start, err := types.NewTimeStringFromString(hora)
	if err != nil {
		return nil, err
	}

	appt := &domain.Appointment{
		ID:         d.ID,
		ClientID:   d.Cliente.ID,
		StaffID:    d.Manicurista.ID,
		ServiceIDs: d.Servicios,
		Date:       date,
		StartTime:  start,
		Notes:      d.Observaciones,
		Status:     domain.AppointmentStatus(d.Estado),
	}

	for _, s := range d.ServiciosInfo {
		appt.Services = append(appt.Services, s.ToDomain())
		if len(d.Servicios) == 0 {
			appt.ServiceIDs = append(appt.ServiceIDs, s.ID)
		}
	}

	return appt, nil
}

// NoveltyDTO модель новедады из /novedades/
type NoveltyDTO struct {
	ID                 int64    `json:"id"`
	Manicurista        staffRef `json:"manicurista"`
	Fecha              string   `json:"fecha"`
	FechaFin           *string  `json:"fecha_fin"`
	Estado             string   `json:"estado"`
	HoraEntrada        *string  `json:"hora_entrada"`
	HoraLlegada        *string  `json:"hora_llegada"`
	TipoAusencia       *string  `json:"tipo_ausencia"`
	HoraInicioAusencia *string  `json:"hora_inicio_ausencia"`
	HoraFinAusencia    *string  `json:"hora_fin_ausencia"`
	Dias               *int     `json:"dias"`
	Turno              *string  `json:"turno"`
	Observaciones      string   `json:"observaciones"`
	Warning            string   `json:"warning"`
}

// ToDomain конвертирует DTO новедады во внутреннюю модель
func (d *NoveltyDTO) ToDomain() (*domain.Novelty, error) {
	date, err := time.ParseInLocation(domain.DateFormat, d.Fecha, time.Local)
	if err != nil {
		return nil, err
	}

	nov := &domain.Novelty{
		ID:           d.ID,
		StaffID:      d.Manicurista.ID,
		Date:         date,
		Kind:         domain.NoveltyKind(d.Estado),
		VacationDays: d.Dias,
		Warning:      d.Warning,
		Notes:        d.Observaciones,
	}

	if d.FechaFin != nil {
		end, err := time.ParseInLocation(domain.DateFormat, *d.FechaFin, time.Local)
		if err == nil {
			nov.EndDate = &end
		}
	} else if d.Dias != nil && (nov.Kind == domain.NoveltyVacation || nov.Kind == domain.NoveltyMedicalLeave) {
		// Бэкенд не всегда шлёт fecha_fin для отпусков; восстанавливаем из dias
		end := date.AddDate(0, 0, *d.Dias-1)
		nov.EndDate = &end
	}

	nov.ScheduledEntry = parseOptionalTime(d.HoraEntrada)
	nov.ActualArrival = parseOptionalTime(d.HoraLlegada)
	nov.AbsenceStart = parseOptionalTime(d.HoraInicioAusencia)
	nov.AbsenceEnd = parseOptionalTime(d.HoraFinAusencia)

	if d.TipoAusencia != nil {
		at := domain.AbsenceType(*d.TipoAusencia)
		nov.AbsenceType = &at
	}
	if d.Turno != nil {
		shift := domain.Shift(*d.Turno)
		nov.Shift = &shift
	}

	return nov, nil
}

func parseOptionalTime(s *string) *types.TimeString {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	if len(v) > 5 {
		v = v[:5]
	}
	ts, err := types.NewTimeStringFromString(v)
	if err != nil {
		return nil
	}
	return &ts
}

// CreateAppointmentRequest тело POST /citas
type CreateAppointmentRequest struct {
	Cliente       int64   `json:"cliente"`
	Manicurista   int64   `json:"manicurista"`
	Servicios     []int64 `json:"servicios"`
	FechaCita     string  `json:"fecha_cita"`
	HoraCita      string  `json:"hora_cita"`
	Observaciones string  `json:"observaciones,omitempty"`
	Estado        string  `json:"estado"`
}

// CreateNoveltyRequest параметры multipart-формы POST /novedades/
type CreateNoveltyRequest struct {
	StaffID int64
	Date    time.Time
	Kind    domain.NoveltyKind

	ScheduledEntry *types.TimeString
	ActualArrival  *types.TimeString
	AbsenceType    *domain.AbsenceType
	AbsenceStart   *types.TimeString
	AbsenceEnd     *types.TimeString
	VacationDays   *int
	Shift          *domain.Shift
	Notes          string
}

// ErrorResponse модель ошибки бэкенда
type ErrorResponse struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// activeAppointmentsResponse ответ /manicuristas/{id}/tiene_citas_activas/
type activeAppointmentsResponse struct {
	TieneCitasActivas bool `json:"tiene_citas_activas"`
}
