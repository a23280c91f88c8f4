// Package telegram implements the notification sink on the Telegram Bot API.
// Every send is best-effort from the caller's perspective: an unconfigured
// bot or channel degrades to a logged no-op, and failures are reported to the
// caller only so the lifecycle can log them.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"jobboard/internal/config"
	"jobboard/internal/domain/job"
)

const defaultBaseURL = "https://api.telegram.org"

var ErrNotConfigured = errors.New("telegram bot not configured")

type Client struct {
	baseURL         string
	botToken        string
	publicChannelID string
	adminChannelID  string
	client          *http.Client
	logger          *log.Logger

	now func() time.Time
}

type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode,omitempty"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview,omitempty"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

func NewClient(cfg config.TelegramConfig, logger *log.Logger) *Client {
	return &Client{
		baseURL:         defaultBaseURL,
		botToken:        strings.TrimSpace(cfg.BotToken),
		publicChannelID: strings.TrimSpace(cfg.PublicChannelID),
		adminChannelID:  strings.TrimSpace(cfg.AdminChannelID),
		client:          &http.Client{Timeout: 5 * time.Second},
		logger:          logger,
		now:             time.Now,
	}
}

// NotifyJobApproved announces an approved posting on the public channel.
func (c *Client) NotifyJobApproved(ctx context.Context, j job.Job) error {
	if c.publicChannelID == "" {
		c.warn("public channel not configured, skipping approval announcement")
		return nil
	}
	return c.sendMessage(ctx, c.publicChannelID, FormatApprovedMessage(j))
}

// NotifyJobSubmitted alerts the admin channel about a new submission.
func (c *Client) NotifyJobSubmitted(ctx context.Context, j job.Job) error {
	if c.adminChannelID == "" {
		c.warn("admin channel not configured, skipping submission alert")
		return nil
	}
	return c.sendMessage(ctx, c.adminChannelID, FormatSubmissionMessage(j, c.now()))
}

// TestConnection calls getMe to verify the bot credential.
func (c *Client) TestConnection(ctx context.Context) error {
	if c.botToken == "" {
		return ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.methodURL("getMe"), nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeAPIError(resp)
}

func (c *Client) sendMessage(ctx context.Context, chatID, text string) error {
	if c.botToken == "" {
		c.warn("bot token not configured, skipping notification")
		return nil
	}

	body := sendMessageRequest{
		ChatID:                chatID,
		Text:                  text,
		ParseMode:             "Markdown",
		DisableWebPagePreview: true,
	}
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.methodURL("sendMessage"), bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeAPIError(resp)
}

func (c *Client) methodURL(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", strings.TrimRight(c.baseURL, "/"), c.botToken, method)
}

func (c *Client) warn(msg string) {
	if c.logger != nil {
		c.logger.Printf("[Telegram] %s", msg)
	}
}

func decodeAPIError(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var out apiResponse
	rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err := json.Unmarshal(rb, &out); err == nil && out.Description != "" {
		return fmt.Errorf("telegram api: status=%d description=%s", resp.StatusCode, out.Description)
	}
	return fmt.Errorf("telegram api: status=%d", resp.StatusCode)
}
