// Package daily picks the word of the day.
//
// Every player asking on the same UTC date with the same salt gets the
// same word without any shared state. A Calendar keys HMAC-SHA256 with
// the salt, hashes the date and scales the first 64 bits of the digest
// onto the word list.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"math/bits"
	"time"
)

// dayLayout is the date format fed to the MAC.
const dayLayout = "2006-01-02"

// Day returns the UTC calendar date of t as YYYY-MM-DD.
func Day(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

// Calendar maps dates to word indexes for one salt.
type Calendar struct {
	salt []byte
}

// NewCalendar returns a Calendar keyed by salt.
func NewCalendar(salt string) Calendar {
	return Calendar{salt: []byte(salt)}
}

// Index returns the index in [0, n) for the UTC date of t, or 0 if n <= 0.
func (c Calendar) Index(t time.Time, n int) int {
	if n <= 0 {
		return 0
	}
	mac := hmac.New(sha256.New, c.salt)
	mac.Write([]byte(Day(t)))
	digest := mac.Sum(nil)
	hi, _ := bits.Mul64(binary.BigEndian.Uint64(digest[:8]), uint64(n))
	return int(hi)
}

// Pick returns the word for the date of t and its index. words must be in
// a stable order (sorted) for two players to agree.
func (c Calendar) Pick(words []string, t time.Time) (string, int) {
	if len(words) == 0 {
		return "", 0
	}
	i := c.Index(t, len(words))
	return words[i], i
}
