package utils

import "github.com/nicksnyder/go-i18n/v2/i18n"

// System messages posted into a session chat
var (
	MsgLinkShared = &i18n.Message{
		ID:    "session.link_shared",
		Other: "{{.Name}} shared a meeting link: {{.Link}}",
	}
	MsgSessionEnded = &i18n.Message{
		ID:    "session.ended",
		Other: "Session ended by {{.Name}}. Duration: {{.Minutes}} minutes. Vouching is available.",
	}
	MsgSessionEndedTooShort = &i18n.Message{
		ID:    "session.ended_too_short",
		Other: "Session ended by {{.Name}}. Duration: {{.Minutes}} minutes. Sessions shorter than {{.MinMinutes}} minutes cannot be vouched.",
	}
	MsgPaymentInstructions = &i18n.Message{
		ID:    "payment.instructions",
		Other: "Payment instructions from {{.Name}}: {{.Instructions}}",
	}
	MsgStudentPaid = &i18n.Message{
		ID:    "payment.student_paid",
		Other: "{{.Name}} marked the payment as sent. Waiting for confirmation.",
	}
	MsgPaymentConfirmed = &i18n.Message{
		ID:    "payment.confirmed",
		Other: "{{.Name}} confirmed the payment. The session can continue.",
	}
)

// Notification texts
var (
	MsgHelpAcceptedNotice = &i18n.Message{
		ID:    "notification.help_accepted",
		Other: "{{.Name}} accepted your request \"{{.Title}}\". Join the session now.",
	}
	MsgHelpAcceptedHeading = &i18n.Message{
		ID:    "notification.help_accepted.heading",
		Other: "Your request was accepted",
	}
)
