package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Notifier delivers free-text operator notifications. Callers treat
// delivery as best effort: failures are logged, never surfaced.
type Notifier interface {
	Send(ctx context.Context, message string) error
}

// TelegramConfig holds the bot credentials for the Telegram notifier.
type TelegramConfig struct {
	BotToken string
	ChatID   string
}

const telegramAPIBaseURL = "https://api.telegram.org"

type telegramNotifier struct {
	config  TelegramConfig
	client  *http.Client
	baseURL string
}

// NewTelegramNotifier creates a Notifier posting to the Telegram Bot API.
func NewTelegramNotifier(config TelegramConfig) Notifier {
	return &telegramNotifier{
		config:  config,
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: telegramAPIBaseURL,
	}
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

func (n *telegramNotifier) Send(ctx context.Context, message string) error {
	payload, err := json.Marshal(sendMessageRequest{
		ChatID: n.config.ChatID,
		Text:   message,
	})
	if err != nil {
		return fmt.Errorf("failed to encode telegram payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.baseURL, n.config.BotToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram request failed: %w", err)
	}
	defer resp.Body.Close()

	var result sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode telegram response: %w", err)
	}

	if !result.OK {
		return fmt.Errorf("telegram API error: %s", result.Description)
	}

	return nil
}
