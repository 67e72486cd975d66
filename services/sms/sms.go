package sms

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/promovia/promovia-api/config"
)

// Client sends transactional SMS through the configured gateway.
type Client struct {
	http     *resty.Client
	url      string
	apiKey   string
	senderID string
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		http:     resty.New().SetTimeout(15 * time.Second),
		url:      cfg.SMSGatewayURL,
		apiKey:   cfg.SMSAPIKey,
		senderID: cfg.SMSSenderID,
	}
}

// Send delivers one message to one phone number.
func (c *Client) Send(phone, message string) error {
	resp, err := c.http.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(map[string]string{
			"apiKey":   c.apiKey,
			"senderId": c.senderID,
			"phone":    phone,
			"message":  message,
		}).
		Post(c.url)

	if err != nil {
		return fmt.Errorf("sms gateway request failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("sms gateway returned status %d: %s", resp.StatusCode(), resp.Body())
	}
	return nil
}
