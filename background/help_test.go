package background

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/biggrade/biggrade-api/mocks"
	"github.com/biggrade/biggrade-api/schema"
)

func TestNotifyHelpAccepted(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	center := mocks.NewMockNotificationCenter(ctl)
	m := &BackgroundManager{notificationCenter: center}

	center.EXPECT().NotifyUserByText("amy@school.edu", gomock.Any(), gomock.Any(), map[string]interface{}{
		"notification_type": schema.NotificationTutorAccepted,
		"help_id":           "gig-1",
		"redirect":          "/session/gig-1",
	}).DoAndReturn(func(email string, headings, contents map[string]string, data map[string]interface{}) error {
		assert.Equal(t, "Your request was accepted", headings["en"])
		assert.Equal(t, "Tara accepted your request \"integrals\". Join the session now.", contents["en"])
		assert.Contains(t, contents, "zh-Hant")
		return nil
	})

	assert.NoError(t, m.NotifyHelpAccepted("gig-1", "amy@school.edu", "Tara", "integrals"))
}
