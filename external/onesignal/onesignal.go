package onesignal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/viper"
)

const apiEndpoint = "https://onesignal.com/api/v1"

// NotificationRequest is the payload for creating a notification.
type NotificationRequest struct {
	AppID          string                 `json:"app_id"`
	TemplateID     string                 `json:"template_id,omitempty"`
	Headings       map[string]string      `json:"headings,omitempty"`
	Contents       map[string]string      `json:"contents,omitempty"`
	Filters        []map[string]string    `json:"filters,omitempty"`
	Data           map[string]interface{} `json:"data,omitempty"`
	LocalChannelID string                 `json:"existing_android_channel_id,omitempty"`
}

// OneSignalClient is a minimal client of the onesignal push API.
type OneSignalClient struct {
	httpClient *http.Client
}

func NewClient(client *http.Client) *OneSignalClient {
	return &OneSignalClient{
		httpClient: client,
	}
}

// SendNotification submits a notification creation request.
func (c *OneSignalClient) SendNotification(ctx context.Context, notification *NotificationRequest) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiEndpoint+"/notifications", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+viper.GetString("onesignal.apikey"))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("onesignal responds with status: %d", resp.StatusCode)
	}

	var result struct {
		ID     string      `json:"id"`
		Errors interface{} `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return err
	}
	if result.Errors != nil {
		return fmt.Errorf("onesignal errors: %+v", result.Errors)
	}

	return nil
}
