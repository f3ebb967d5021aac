// Package push implements the outbound push gateway client used by
// notification dispatch.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/sendloop-inc/sendloop/internal/application/notification/usecases"
	"github.com/sendloop-inc/sendloop/internal/shared/config"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

const (
	defaultTimeout = 10 * time.Second
	// Maximum response body size read from the gateway (16KB)
	maxResponseSize = 16 << 10
)

type pushMessage struct {
	To           string            `json:"to"`
	Notification pushNotification  `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
}

type pushNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Client delivers notification payloads to a device token over HTTP.
type Client struct {
	endpoint   string
	serverKey  string
	httpClient *http.Client
	logger     logger.Interface
}

func NewClient(cfg *config.PushConfig, logger logger.Interface) *Client {
	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	return &Client{
		endpoint:  cfg.Endpoint,
		serverKey: cfg.ServerKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

var _ usecases.PushGateway = (*Client)(nil)

// Push sends one payload to one device token. A non-2xx response is an
// error; the caller decides whether that fails anything.
func (c *Client) Push(ctx context.Context, token string, payload usecases.PushPayload) error {
	if c.endpoint == "" {
		return fmt.Errorf("push gateway endpoint is not configured")
	}

	msg := pushMessage{
		To: token,
		Notification: pushNotification{
			Title: payload.Title,
			Body:  payload.Body,
		},
		Data: map[string]string{
			"type":            payload.Type,
			"notification_id": strconv.FormatUint(uint64(payload.NotificationID), 10),
		},
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode push message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+c.serverKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("push request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
		return fmt.Errorf("push gateway returned status %d: %s", resp.StatusCode, string(snippet))
	}

	// drain so the connection can be reused
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))

	return nil
}
