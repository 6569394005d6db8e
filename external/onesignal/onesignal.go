package onesignal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const defaultEndpoint = "https://onesignal.com/api/v1/notifications"

// NotificationRequest is the body of a onesignal create notification call
type NotificationRequest struct {
	AppID          string                 `json:"app_id"`
	TemplateID     string                 `json:"template_id,omitempty"`
	Headings       map[string]string      `json:"headings,omitempty"`
	Contents       map[string]string      `json:"contents,omitempty"`
	Filters        []map[string]string    `json:"filters,omitempty"`
	Data           map[string]interface{} `json:"data,omitempty"`
	LocalChannelID string                 `json:"android_channel_id,omitempty"`
}

type OneSignalClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

func NewClient(httpClient *http.Client) *OneSignalClient {
	endpoint := viper.GetString("onesignal.endpoint")
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	return &OneSignalClient{
		endpoint:   endpoint,
		apiKey:     viper.GetString("onesignal.apikey"),
		httpClient: httpClient,
	}
}

// SendNotification creates a push notification
func (c *OneSignalClient) SendNotification(ctx context.Context, body *NotificationRequest) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req = req.WithContext(ctx)
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", "Basic "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "sending onesignal notification")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := ioutil.ReadAll(resp.Body)
		log.WithField("prefix", "onesignal").WithField("status", resp.StatusCode).Error(string(respBody))
		return fmt.Errorf("onesignal responded with status %d", resp.StatusCode)
	}

	return nil
}
