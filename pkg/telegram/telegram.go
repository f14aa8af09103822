package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"salon-relay-backend/config"
)

// Service sends operator notifications through the Telegram Bot API
type Service struct {
	client  *http.Client
	baseURL string
	token   string
	chatID  string
}

// sendMessageRequest is the Bot API sendMessage payload
type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// apiResponse is the subset of the Bot API envelope needed for error logging
type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// NewService creates a new Telegram service from process configuration
func NewService(cfg *config.Config) *Service {
	return &Service{
		client: &http.Client{
			// A hung upstream must not hold request handling open indefinitely
			Timeout: time.Duration(cfg.TelegramTimeoutSeconds) * time.Second,
		},
		baseURL: cfg.TelegramAPIBaseURL,
		token:   cfg.TelegramBotToken,
		chatID:  cfg.TelegramChatID,
	}
}

// Send posts one sendMessage call for the given text. A single attempt,
// no retries: the caller reports failure to the user immediately.
func (s *Service) Send(ctx context.Context, text string) error {
	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    s.chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return fmt.Errorf("failed to encode telegram payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.baseURL, s.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Surface the Bot API description to the caller's log, not the end user
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var apiResp apiResponse
		if json.Unmarshal(body, &apiResp) == nil && apiResp.Description != "" {
			return fmt.Errorf("telegram responded %d: %s", resp.StatusCode, apiResp.Description)
		}
		return fmt.Errorf("telegram responded %d", resp.StatusCode)
	}

	return nil
}

// IsConfigured checks if the service has the credentials it needs to send
func (s *Service) IsConfigured() bool {
	return s.token != "" && s.chatID != ""
}
