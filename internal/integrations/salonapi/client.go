package salonapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/NLS-ScheduleService/internal/domain"
	"github.com/m04kA/NLS-ScheduleService/pkg/types"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с REST API салона (Remote Data Gateway).
// Движок потребляет и производит только DTO через этот клиент; бэкенд
// остаётся источником истины по записям и новедадам.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента API салона
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListStaff получает список мастеров, опционально по статусу ("activo")
func (c *Client) ListStaff(ctx context.Context, estado *string) ([]*domain.StaffMember, error) {
	endpoint := c.baseURL + "/manicuristas/"
	if estado != nil {
		endpoint += "?estado=" + url.QueryEscape(*estado)
	}

	var dtos []StaffDTO
	if err := c.getJSON(ctx, endpoint, &dtos); err != nil {
		return nil, err
	}

	staff := make([]*domain.StaffMember, 0, len(dtos))
	for i := range dtos {
		staff = append(staff, dtos[i].ToDomain())
	}
	return staff, nil
}

// GetStaff получает мастера по ID
func (c *Client) GetStaff(ctx context.Context, id int64) (*domain.StaffMember, error) {
	endpoint := fmt.Sprintf("%s/manicuristas/%d/", c.baseURL, id)

	var dto StaffDTO
	if err := c.getJSON(ctx, endpoint, &dto); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}
	return dto.ToDomain(), nil
}

// HasActiveAppointments проверяет, есть ли у мастера активные записи.
// Используется для гейта деактивации мастера.
func (c *Client) HasActiveAppointments(ctx context.Context, staffID int64) (bool, error) {
	endpoint := fmt.Sprintf("%s/manicuristas/%d/tiene_citas_activas/", c.baseURL, staffID)

	var resp activeAppointmentsResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return false, err
	}
	return resp.TieneCitasActivas, nil
}

// ListServices получает каталог услуг
func (c *Client) ListServices(ctx context.Context) ([]domain.Service, error) {
	var dtos []ServiceDTO
	if err := c.getJSON(ctx, c.baseURL+"/servicios/", &dtos); err != nil {
		return nil, err
	}

	services := make([]domain.Service, 0, len(dtos))
	for i := range dtos {
		services = append(services, dtos[i].ToDomain())
	}
	return services, nil
}

// GetService получает услугу по ID
func (c *Client) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	endpoint := fmt.Sprintf("%s/servicios/%d/", c.baseURL, id)

	var dto ServiceDTO
	if err := c.getJSON(ctx, endpoint, &dto); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	svc := dto.ToDomain()
	return &svc, nil
}

// GetAppointment получает запись по ID
func (c *Client) GetAppointment(ctx context.Context, id int64) (*domain.Appointment, error) {
	endpoint := fmt.Sprintf("%s/citas/%d/", c.baseURL, id)

	var dto AppointmentDTO
	if err := c.getJSON(ctx, endpoint, &dto); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return dto.ToDomain()
}

// ListNovelties получает новедады, опционально по мастеру и дате
func (c *Client) ListNovelties(ctx context.Context, staffID *int64, date *time.Time) ([]*domain.Novelty, error) {
	endpoint := c.baseURL + "/novedades/"
	params := url.Values{}
	if staffID != nil {
		params.Set("manicurista", strconv.FormatInt(*staffID, 10))
	}
	if date != nil {
		params.Set("fecha", date.Format(domain.DateFormat))
	}
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var dtos []NoveltyDTO
	if err := c.getJSON(ctx, endpoint, &dtos); err != nil {
		return nil, err
	}

	novelties := make([]*domain.Novelty, 0, len(dtos))
	for i := range dtos {
		nov, err := dtos[i].ToDomain()
		if err != nil {
			// Кривую запись пропускаем, остальные данные не теряем
			c.log.Warn("ListNovelties: skipping malformed novelty id=%d: %v", dtos[i].ID, err)
			continue
		}
		novelties = append(novelties, nov)
	}
	return novelties, nil
}

// ListAppointments получает записи по фильтру (estado, manicurista, fecha)
func (c *Client) ListAppointments(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	endpoint := c.baseURL + "/citas"
	params := url.Values{}
	if filter.Status != nil {
		params.Set("estado", string(*filter.Status))
	}
	if filter.StaffID != nil {
		params.Set("manicurista", strconv.FormatInt(*filter.StaffID, 10))
	}
	if filter.Date != nil {
		params.Set("fecha_cita", filter.Date.Format(domain.DateFormat))
	}
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var dtos []AppointmentDTO
	if err := c.getJSON(ctx, endpoint, &dtos); err != nil {
		return nil, err
	}

	appointments := make([]*domain.Appointment, 0, len(dtos))
	for i := range dtos {
		appt, err := dtos[i].ToDomain()
		if err != nil {
			c.log.Warn("ListAppointments: skipping malformed appointment id=%d: %v", dtos[i].ID, err)
			continue
		}
		if filter.ActiveOnly && !appt.IsActive() {
			continue
		}
		appointments = append(appointments, appt)
	}
	return appointments, nil
}

// CreateAppointment создает запись со статусом pendiente
func (c *Client) CreateAppointment(ctx context.Context, req *CreateAppointmentRequest) (*domain.Appointment, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/citas", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusConflict:
		// Слот ушёл между показом и отправкой — адресная ошибка, не сброс формы
		return nil, ErrSlotConflict
	case http.StatusBadRequest:
		detail := readErrorDetail(resp.Body)
		return nil, fmt.Errorf("%w: %s", ErrValidation, detail)
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var dto AppointmentDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return dto.ToDomain()
}

// UpdateAppointmentStatus переводит запись в новый статус (PATCH)
func (c *Client) UpdateAppointmentStatus(ctx context.Context, id int64, status domain.AppointmentStatus, notes string) error {
	payload := map[string]string{"estado": string(status)}
	if notes != "" {
		payload["observaciones"] = notes
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	endpoint := fmt.Sprintf("%s/citas/%d/", c.baseURL, id)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrAppointmentNotFound
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrValidation, readErrorDetail(resp.Body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}

// CreateNovelty создает новедаду через multipart-форму.
// Бэкенд может вернуть успешный статус с полем warning — бизнес-правило
// приняло запрос, но заблокировало эффект (например, недостаточный стаж
// для отпуска). Вызывающая сторона обязана проверять Novelty.Warning
// даже при HTTP-успехе.
func (c *Client) CreateNovelty(ctx context.Context, req *CreateNoveltyRequest) (*domain.Novelty, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	fields := map[string]string{
		"fecha":       req.Date.Format(domain.DateFormat),
		"estado":      string(req.Kind),
		"manicurista": strconv.FormatInt(req.StaffID, 10),
	}
	writeOptionalTime(fields, "hora_entrada", req.ScheduledEntry)
	writeOptionalTime(fields, "hora_llegada", req.ActualArrival)
	writeOptionalTime(fields, "hora_inicio_ausencia", req.AbsenceStart)
	writeOptionalTime(fields, "hora_fin_ausencia", req.AbsenceEnd)
	if req.AbsenceType != nil {
		fields["tipo_ausencia"] = string(*req.AbsenceType)
	}
	if req.VacationDays != nil {
		fields["dias"] = strconv.Itoa(*req.VacationDays)
	}
	if req.Shift != nil {
		fields["turno"] = string(*req.Shift)
	}
	if req.Notes != "" {
		fields["observaciones"] = req.Notes
	}

	for name, value := range fields {
		if err := form.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("%w: failed to write form field %s: %v", ErrInternal, name, err)
		}
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("%w: failed to finalize form: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/novedades/", &buf)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку; warning возможен и здесь
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: %s", ErrValidation, readErrorDetail(resp.Body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var dto NoveltyDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return dto.ToDomain()
}

// CancelNovelty аннулирует новедаду; причина обязательна
func (c *Client) CancelNovelty(ctx context.Context, id int64, reason string) error {
	if reason == "" {
		return fmt.Errorf("%w: cancellation reason is required", ErrValidation)
	}

	body, err := json.Marshal(map[string]string{"motivo_anulacion": reason})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	endpoint := fmt.Sprintf("%s/novedades/%d/anular/", c.baseURL, id)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrNoveltyNotFound
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrValidation, readErrorDetail(resp.Body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}

// getJSON выполняет GET и декодирует JSON-ответ
func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return errNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

func readErrorDetail(r io.Reader) string {
	var errResp ErrorResponse
	if err := json.NewDecoder(r).Decode(&errResp); err != nil {
		return "unknown error"
	}
	if errResp.Detail != "" {
		return errResp.Detail
	}
	if errResp.Message != "" {
		return errResp.Message
	}
	return "unknown error"
}

func writeOptionalTime(fields map[string]string, name string, t *types.TimeString) {
	if t != nil && !t.IsZero() {
		fields[name] = t.String()
	}
}
