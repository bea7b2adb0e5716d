// internal/words/daily_exports.go
//
// Target selection for daily mode.
// The dictionary's sorted order is the index space for daily.Calendar, so
// two players with the same list and salt get the same word on the same
// UTC date.

package words

import (
	"time"

	"github.com/robalobadob/wordle-term/internal/daily"
)

// Daily returns the word of the day for t and its index in Words().
func (d *Dictionary) Daily(t time.Time, salt string) (string, int) {
	if d.Len() == 0 {
		return "", 0
	}
	return daily.NewCalendar(salt).Pick(d.list, t)
}
