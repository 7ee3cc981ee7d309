package booking

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"

	"roamly/models"
)

const referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewBookingReference produces a human-readable booking reference: a kind
// prefix, the last six digits of the current unix-millisecond clock, and four
// random alphanumerics. Time digits and randomness together keep collisions
// negligible under concurrent creation.
func NewBookingReference(kind models.BookingType) string {
	prefix := "HT"
	if kind == models.BookingTypeFlight {
		prefix = "FL"
	}

	millis := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}

	suffix := make([]byte, 4)
	max := big.NewInt(int64(len(referenceAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken;
			// degrade to a clock-derived index rather than panic.
			n = big.NewInt(time.Now().UnixNano() % int64(len(referenceAlphabet)))
		}
		suffix[i] = referenceAlphabet[n.Int64()]
	}

	return prefix + millis + string(suffix)
}
