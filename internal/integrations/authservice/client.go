package authservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с AuthService.
// AuthService хранит пользователей и их роли по объектам; движок бронирования
// ходит в него только за одним фактом - может ли пользователь модерировать объект.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента AuthService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CanModerate проверяет, что пользователь имеет право модерировать
// бронирования указанного объекта.
// Ошибки доступности AuthService не маскируются под "нет прав":
// решение по бронированию без работающей авторизации принимать нельзя.
func (c *Client) CanModerate(ctx context.Context, userID, facilityID int64) (bool, error) {
	url := fmt.Sprintf("%s/internal/users/%d/facilities/%d/moderator", c.baseURL, userID, facilityID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return false, ErrUserNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return false, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var check ModeratorCheck
	if err := json.NewDecoder(resp.Body).Decode(&check); err != nil {
		return false, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return check.IsModerator, nil
}
