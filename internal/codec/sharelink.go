package codec

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/ameliaholt/weekplan/internal/domain"
)

// ShareParam is the query parameter carrying the encoded schedule payload.
const ShareParam = "s"

// EncodeSharePayload packs the full current schedule into a URL-safe base64
// string. Base64 over raw JSON bytes is UTF-8 safe without any escaping
// dance.
func EncodeSharePayload(s *domain.Schedule) (string, error) {
	data, err := Encode(s)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(data), nil
}

// BuildShareURL attaches the encoded schedule to base as the share
// parameter. The payload always carries the full state, never a partial
// shape.
func BuildShareURL(base string, s *domain.Schedule) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parsing share base URL: %w", err)
	}
	payload, err := EncodeSharePayload(s)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set(ShareParam, payload)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// DecodeShareLink accepts either a full share URL or a bare payload string
// and decodes the schedule it carries. Decode failure is non-fatal for
// callers: they report it and keep their current state.
func DecodeShareLink(link, fallbackTitle string) (*domain.Schedule, error) {
	payload := strings.TrimSpace(link)
	if u, err := url.Parse(payload); err == nil && u.Query().Get(ShareParam) != "" {
		payload = u.Query().Get(ShareParam)
	}
	if payload == "" {
		return nil, fmt.Errorf("share link carries no schedule payload")
	}
	data, err := base64.URLEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decoding share payload: %w", err)
	}
	return Decode(data, fallbackTitle)
}
