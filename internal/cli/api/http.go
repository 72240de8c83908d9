package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client — HTTP-клиент серверного API для CLI.
type Client struct {
	http *resty.Client
}

// NewClient создаёт клиент с базовым URL сервера.
func NewClient(serverURL string) *Client {
	c := resty.New().
		SetBaseURL(serverURL).
		SetTimeout(30 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &Client{http: c}
}

// Envelope — конверт ответа сервера: {success, data|error[, message]}.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Call выполняет запрос и разбирает конверт. Если token непуст,
// он передаётся bearer-заголовком.
func (c *Client) Call(ctx context.Context, method, path string, body any, token string) (*Envelope, error) {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}

	var env Envelope
	req.SetResult(&env).SetError(&env)

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = fmt.Sprintf("server status %d", resp.StatusCode())
		}
		return nil, errors.New(msg)
	}
	return &env, nil
}
