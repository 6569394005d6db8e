package background

import (
	"context"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/biggrade/biggrade-api/external/onesignal"
	"github.com/biggrade/biggrade-api/utils"
)

// OneSignalLanguageCode is a mapping between onesignal language code and i18n language code
var OneSignalLanguageCode = map[string]string{
	"zh-Hant": "zh_tw",
	"en":      "en",
}

//go:generate mockgen -destination=../mocks/notification.go -package=mocks github.com/biggrade/biggrade-api/background NotificationCenter

type NotificationCenter interface {
	NotifyUserByText(email string, headings, contents map[string]string, data map[string]interface{}) error
}

type OnesignalNotificationCenter struct {
	appID  string
	client *onesignal.OneSignalClient
}

func NewOnesignalNotificationCenter(appID string, client *onesignal.OneSignalClient) *OnesignalNotificationCenter {
	return &OnesignalNotificationCenter{
		appID:  appID,
		client: client,
	}
}

// NotifyUserByText sends a push to the devices tagged with the user's email
func (o *OnesignalNotificationCenter) NotifyUserByText(email string, headings, contents map[string]string, data map[string]interface{}) error {
	filters := []map[string]string{
		{
			"field":    "tag",
			"key":      "email",
			"relation": "=",
			"value":    email,
		},
	}

	req := &onesignal.NotificationRequest{
		AppID:          o.appID,
		Headings:       headings,
		Contents:       contents,
		Filters:        filters,
		Data:           data,
		LocalChannelID: "important_alert",
	}
	return o.client.SendNotification(context.Background(), req)
}

// localizedTexts renders msg for every language onesignal should deliver
func localizedTexts(msg *i18n.Message, data map[string]interface{}) map[string]string {
	texts := make(map[string]string, len(OneSignalLanguageCode))
	for code, lang := range OneSignalLanguageCode {
		texts[code] = utils.Localize(lang, msg, data)
	}
	return texts
}
