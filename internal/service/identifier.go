package service

import (
	"crypto/rand"
	"strconv"
	"strings"
	"time"
)

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func randomBase36(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic(err) // crypto/rand failing means the platform is broken
	}
	for i, b := range buf {
		buf[i] = base36Alphabet[int(b)%len(base36Alphabet)]
	}
	return string(buf)
}

// newID builds record ids as a unix-millisecond timestamp plus a short
// random suffix. Good enough for collision avoidance in a single-process
// store; these ids make no uniqueness guarantee beyond that.
func newID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + randomBase36(6)
}

// newInviteCode returns a short uppercase alphanumeric code. Unique by
// convention only; nothing enforces it globally.
func newInviteCode() string {
	return strings.ToUpper(randomBase36(6))
}

// normalizeEmail lower-cases the identity string the way every stored
// email is normalized.
func normalizeEmail(email string) string {
	return strings.ToLower(email)
}
