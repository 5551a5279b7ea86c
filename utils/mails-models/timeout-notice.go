package mailsmodels

import (
	"time"
)

// TimeoutNotice tells a user their account is suspended until endTime.
func TimeoutNotice(message string, endTime time.Time) []byte {
	return render(
		"Your FunFans account is temporarily suspended",
		"Account suspended",
		message,
		"Access will be restored on "+endTime.UTC().Format("02 Jan 2006 15:04 MST"),
	)
}
