package clinicapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
)

const (
	pathDoctorList      = "/api/doctor/list"
	pathBookAppointment = "/api/user/book-appointment"
	pathGenerateOTP     = "/api/user/generate-otp"
	pathPhoneLogin      = "/api/user/phone-login"

	// Заголовок, в котором внешний API ожидает токен пользователя
	headerToken = "token"

	maxErrorBody = 512
)

// Метки исхода вызова для метрик
const (
	outcomeSuccess  = "success"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder приемник метрик вызовов внешнего API
type MetricsRecorder interface {
	ObserveClinicAPICall(operation, outcome string, d time.Duration)
}

// Client клиент для работы с внешним API клиники
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    MetricsRecorder
	log        Logger
}

// NewClient создает новый экземпляр клиента API клиники
func NewClient(baseURL string, timeout time.Duration, metrics MetricsRecorder, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		log:     log,
	}
}

// ListDoctors получает список врачей вместе с занятыми слотами
func (c *Client) ListDoctors(ctx context.Context) ([]domain.Doctor, error) {
	var resp doctorListResponse
	if err := c.call(ctx, "list_doctors", http.MethodGet, pathDoctorList, "", nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("%w: doctor list rejected: %s", ErrInvalidResponse, resp.Message)
	}

	doctors := make([]domain.Doctor, 0, len(resp.Doctors))
	for _, dto := range resp.Doctors {
		if dto.ID == "" {
			c.log.Warn("ListDoctors: skipping doctor without id, name=%q", dto.Name)
			continue
		}
		doctors = append(doctors, dto.ToDomain())
	}

	return doctors, nil
}

// GetDoctor получает врача по ID из общего списка
func (c *Client) GetDoctor(ctx context.Context, doctorID string) (*domain.Doctor, error) {
	doctors, err := c.ListDoctors(ctx)
	if err != nil {
		return nil, err
	}
	return FindDoctor(doctors, doctorID)
}

// FindDoctor ищет врача в списке
func FindDoctor(doctors []domain.Doctor, doctorID string) (*domain.Doctor, error) {
	for i := range doctors {
		if doctors[i].ID == doctorID {
			doctor := doctors[i]
			return &doctor, nil
		}
	}
	return nil, ErrDoctorNotFound
}

// BookAppointment отправляет бронирование слота от имени пользователя
// success=false от API не считается ошибкой: решение и сообщение возвращаются в Result
func (c *Client) BookAppointment(ctx context.Context, token string, req BookRequest) (*Result, error) {
	var resp envelope
	if err := c.call(ctx, "book_appointment", http.MethodPost, pathBookAppointment, token, req, &resp); err != nil {
		return nil, err
	}
	c.log.Info("BookAppointment: doctor=%s, date=%s, time=%s, success=%t",
		req.DocID, req.SlotDate, req.SlotTime, resp.Success)
	return &Result{Success: resp.Success, Message: resp.Message}, nil
}

// GenerateOTP запрашивает отправку одноразового кода на телефон
func (c *Client) GenerateOTP(ctx context.Context, phone string) (*Result, error) {
	var resp envelope
	if err := c.call(ctx, "generate_otp", http.MethodPost, pathGenerateOTP, "", generateOTPRequest{Phone: phone}, &resp); err != nil {
		return nil, err
	}
	return &Result{Success: resp.Success, Message: resp.Message}, nil
}

// PhoneLogin проверяет одноразовый код и возвращает токен сессии
func (c *Client) PhoneLogin(ctx context.Context, phone, otp string) (*LoginResult, error) {
	var resp phoneLoginResponse
	if err := c.call(ctx, "phone_login", http.MethodPost, pathPhoneLogin, "", phoneLoginRequest{Phone: phone, OTP: otp}, &resp); err != nil {
		return nil, err
	}
	return &LoginResult{
		Success:  resp.Success,
		Existing: resp.Existing,
		Token:    resp.Token,
		Message:  resp.Message,
	}, nil
}

// call выполняет запрос и декодирует JSON-ответ в out
// Исход (success/rejected) определяется по полю success конверта
func (c *Client) call(ctx context.Context, operation, method, path, token string, body, out interface{}) error {
	started := time.Now()

	err := c.do(ctx, method, path, token, body, out)

	outcome := outcomeSuccess
	switch {
	case err != nil:
		outcome = outcomeError
	case !succeeded(out):
		outcome = outcomeRejected
	}
	c.metrics.ObserveClinicAPICall(operation, outcome, time.Since(started))

	if err != nil {
		c.log.Error("ClinicAPI %s %s failed: %v", method, path, err)
	}
	return err
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(headerToken, token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	default:
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(data))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// succeeded достает флаг success из любого ответа с вложенным конвертом
func succeeded(out interface{}) bool {
	switch v := out.(type) {
	case *envelope:
		return v.Success
	case *doctorListResponse:
		return v.Success
	case *phoneLoginResponse:
		return v.Success
	default:
		return true
	}
}
