// Relative times, loosely after github.com/dustin/go-humanize/times.go

package format

import (
	"fmt"
	"time"

	"socialnet-cli/shared"
)

const (
	Day  = 24 * time.Hour
	Week = 7 * Day
)

type unit struct {
	size time.Duration
	name string
}

// largest first; anything past the last cutoff is shown as a date
var units = []unit{
	{Day, "day"},
	{time.Hour, "hour"},
	{time.Minute, "minute"},
	{time.Second, "second"},
}

const dateCutoff = 2 * Week

// Time renders a post or token time relative to now, e.g. "3 hours ago".
// Zero times render as an empty string.
func Time(then time.Time) string {
	return relTime(then, time.Now())
}

func relTime(then, now time.Time) string {
	if then.IsZero() {
		return ""
	}

	diff := now.Sub(then)
	future := diff < 0
	if future {
		diff = -diff
	}

	if diff < 5*time.Second {
		return "just now"
	}
	if diff >= dateCutoff {
		return then.Local().Format("Jan 2, 2006")
	}

	for _, u := range units {
		if diff < u.size {
			continue
		}
		n := int(diff / u.size)
		amount := fmt.Sprintf("%d %s", n, shared.Pluralize(n, u.name))
		if future {
			return "in " + amount
		}
		return amount + " ago"
	}

	return "just now"
}
