package utils

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strconv"
)

const tokenCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRandomToken returns a random token for email-verification and
// password-reset links.
func GenerateRandomToken(length int) string {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	for i := range buf {
		buf[i] = tokenCharset[int(buf[i])%len(tokenCharset)]
	}
	return string(buf)
}

// EncodeUID encodes a user id the way it appears in emailed links.
func EncodeUID(id uint) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.FormatUint(uint64(id), 10)))
}

// DecodeUID reverses EncodeUID.
func DecodeUID(encoded string) (uint, error) {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return 0, errors.New("invalid uid")
	}
	id, err := strconv.ParseUint(string(raw), 10, 32)
	if err != nil {
		return 0, errors.New("invalid uid")
	}
	return uint(id), nil
}
