// Package line holds the LINE Messaging API surface: inbound webhook payload
// types and the outbound reply client.
package line

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultReplyEndpoint is the production reply API URL.
const DefaultReplyEndpoint = "https://api.line.me/v2/bot/message/reply"

// Webhook payload as delivered by the LINE platform. Only the fields the
// bot reads are modeled.
type (
	WebhookRequest struct {
		Events []Event `json:"events"`
	}

	Event struct {
		ReplyToken string  `json:"replyToken"`
		Message    Message `json:"message"`
		Source     Source  `json:"source"`
	}

	Message struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}

	Source struct {
		UserID string `json:"userId"`
	}
)

type replyPayload struct {
	ReplyToken string        `json:"replyToken"`
	Messages   []textMessage `json:"messages"`
}

type textMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Client posts replies to the LINE reply endpoint with a channel access
// token. Replies are single-shot: no retry, the reply token is only valid
// once and briefly.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

func NewClient(endpoint, channelToken string) *Client {
	if endpoint == "" {
		endpoint = DefaultReplyEndpoint
	}
	return &Client{
		endpoint: endpoint,
		token:    channelToken,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Reply sends one text message for the given reply token. A non-2xx
// response is an error; callers treat any error as log-only.
func (c *Client) Reply(ctx context.Context, replyToken, text string) error {
	body, err := json.Marshal(replyPayload{
		ReplyToken: replyToken,
		Messages:   []textMessage{{Type: "text", Text: text}},
	})
	if err != nil {
		return fmt.Errorf("marshal reply payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build reply request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post reply: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("reply endpoint returned %d: %s", res.StatusCode, msg)
	}
	return nil
}
