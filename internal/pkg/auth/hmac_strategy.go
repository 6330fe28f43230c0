package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidToken = errors.New("invalid auth token")

const defaultTokenTTL = 12 * time.Hour

var tokenEncoding = base64.RawURLEncoding

// Options tunes token issuing. Zero values select defaults.
type Options struct {
	TTL   time.Duration
	Clock func() time.Time
}

// HMACStrategy signs "<operator>:<expiry>" payloads with HMAC-SHA256. Tokens
// are "<payload>.<signature>", both parts URL-safe base64, so they fit in a
// cookie or an Authorization header unchanged.
type HMACStrategy struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewHMACStrategy builds HMACStrategy with provided secret and options.
func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	return &HMACStrategy{secret: []byte(secret), ttl: ttl, now: now}
}

// IssueToken generates a signed token for the operator.
func (s *HMACStrategy) IssueToken(operatorID int64) (string, error) {
	payload := fmt.Sprintf("%d:%d", operatorID, s.now().Add(s.ttl).Unix())
	return tokenEncoding.EncodeToString([]byte(payload)) + "." + tokenEncoding.EncodeToString(s.sign(payload)), nil
}

// ParseToken validates token and returns the encoded operator ID.
func (s *HMACStrategy) ParseToken(token string) (int64, error) {
	encPayload, encSig, ok := strings.Cut(token, ".")
	if !ok {
		return 0, ErrInvalidToken
	}
	rawPayload, err := tokenEncoding.DecodeString(encPayload)
	if err != nil {
		return 0, ErrInvalidToken
	}
	sig, err := tokenEncoding.DecodeString(encSig)
	if err != nil {
		return 0, ErrInvalidToken
	}

	payload := string(rawPayload)
	if !hmac.Equal(sig, s.sign(payload)) {
		return 0, ErrInvalidToken
	}

	idPart, expPart, ok := strings.Cut(payload, ":")
	if !ok {
		return 0, ErrInvalidToken
	}
	operatorID, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || operatorID < 1 {
		return 0, ErrInvalidToken
	}
	expires, err := strconv.ParseInt(expPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	if !s.now().Before(time.Unix(expires, 0)) {
		return 0, ErrInvalidToken
	}

	return operatorID, nil
}

func (s *HMACStrategy) Name() string {
	return "hmac"
}

func (s *HMACStrategy) sign(payload string) []byte {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return mac.Sum(nil)
}
