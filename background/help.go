package background

import (
	"fmt"

	"github.com/biggrade/biggrade-api/schema"
	"github.com/biggrade/biggrade-api/utils"
)

// NotifyHelpAccepted is a background job to tell the author of a request
// that a helper accepted it and the session is waiting
func (m *BackgroundManager) NotifyHelpAccepted(helpID, authorEmail, responderName, title string) error {
	data := map[string]interface{}{
		"Name":  responderName,
		"Title": title,
	}

	return m.notificationCenter.NotifyUserByText(authorEmail,
		localizedTexts(utils.MsgHelpAcceptedHeading, nil),
		localizedTexts(utils.MsgHelpAcceptedNotice, data),
		map[string]interface{}{
			"notification_type": schema.NotificationTutorAccepted,
			"help_id":           helpID,
			"redirect":          fmt.Sprintf("/session/%s", helpID),
		})
}
