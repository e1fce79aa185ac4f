package web

import (
	"encoding/base64"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
)

const (
	flashCookieName = "pg_flash"
	flashContextKey = "flashes"
)

type FlashLevel string

const (
	FlashSuccess FlashLevel = "success"
	FlashInfo    FlashLevel = "info"
	FlashError   FlashLevel = "error"
)

// Flash is a one-time message shown on the next rendered page.
type Flash struct {
	Level   FlashLevel `json:"level"`
	Message string     `json:"message"`
}

// AddFlash queues a message for the next page. Messages added during one
// request accumulate.
func AddFlash(c echo.Context, level FlashLevel, message string) {
	flashes := append(pendingFlashes(c), Flash{Level: level, Message: message})
	c.Set(flashContextKey, flashes)

	encoded, err := encodeFlashes(flashes)
	if err != nil {
		return
	}
	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlashes returns the queued messages and clears the cookie.
func PopFlashes(c echo.Context) []Flash {
	flashes := pendingFlashes(c)
	if len(flashes) == 0 {
		return nil
	}

	c.Set(flashContextKey, []Flash(nil))
	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return flashes
}

func pendingFlashes(c echo.Context) []Flash {
	if flashes, ok := c.Get(flashContextKey).([]Flash); ok {
		return flashes
	}

	cookie, err := c.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	flashes, err := decodeFlashes(cookie.Value)
	if err != nil {
		return nil
	}
	return flashes
}

func encodeFlashes(flashes []Flash) (string, error) {
	raw, err := json.Marshal(flashes)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func decodeFlashes(value string) ([]Flash, error) {
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil, err
	}
	var flashes []Flash
	if err = json.Unmarshal(raw, &flashes); err != nil {
		return nil, err
	}
	return flashes, nil
}
