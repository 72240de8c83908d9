package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Client — клиент табличного web‑API. Все действия идут через одну точку
// входа: POST {action, payload} → {success, data|error}.
type Client struct {
	http   *resty.Client
	token  string
	logger *zap.SugaredLogger
}

// NewClient создаёт клиент табличного API. Ретраев нет: повтор — забота
// вызывающей стороны хранилища, не этого слоя.
func NewClient(baseURL, token string, timeout time.Duration, logger *zap.SugaredLogger) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{http: c, token: token, logger: logger}
}

// StoreError — «мягкий» отказ хранилища: ответ success=false с сообщением.
// Сообщение отдаётся клиенту как есть.
type StoreError struct {
	Message string
}

func (e *StoreError) Error() string {
	return e.Message
}

type apiRequest struct {
	Token   string `json:"token,omitempty"`
	Action  string `json:"action"`
	Payload any    `json:"payload,omitempty"`
}

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// call выполняет действие и возвращает сырые данные и сообщение ответа.
func (c *Client) call(ctx context.Context, action string, payload any) (json.RawMessage, string, error) {
	var out apiResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(apiRequest{Token: c.token, Action: action, Payload: payload}).
		SetResult(&out).
		Post("")
	if err != nil {
		return nil, "", fmt.Errorf("sheets api %s: %w", action, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, "", fmt.Errorf("sheets api %s: unexpected status %d", action, resp.StatusCode())
	}
	if !out.Success {
		msg := out.Error
		if msg == "" {
			msg = "spreadsheet api reported failure"
		}
		c.logger.Warnw("sheets api rejected action", "action", action, "error", msg)
		return nil, "", &StoreError{Message: msg}
	}
	return out.Data, out.Message, nil
}
