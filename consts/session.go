package consts

import "time"

const (
	// a session can not be ended before this much time since the session start
	SESSION_END_GATE = 30 * time.Second

	// the helper of a paid tutor session is prompted for payment instructions
	// once this much time has passed without instructions
	PAYMENT_PROMPT_DELAY = 40 * time.Second

	// minimum duration in minutes for a completed session to be vouchable
	DEFAULT_MIN_VOUCH_MINUTES = 3

	// every vouch awards exactly this many points
	VOUCH_POINTS = 5
)

const (
	REQUEST_LIST_LIMIT      = 100
	MESSAGE_LIST_LIMIT      = 100
	NOTIFICATION_LIST_LIMIT = 10
	DIRECTORY_LIST_LIMIT    = 50
)
