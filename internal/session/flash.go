package session

import (
	"encoding/base64"
	"net/http"
)

const flashCookieName = "flash"

// SetFlash stores a one-shot status message to be shown on the next
// rendered page. The value is base64-encoded so it survives cookie
// character restrictions.
func SetFlash(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.URLEncoding.EncodeToString([]byte(message)),
		HttpOnly: true,
		Path:     "/",
	})
}

// PopFlash returns the pending flash message, if any, and clears it so it
// is shown exactly once.
func PopFlash(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Path:     "/",
	})

	decoded, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return ""
	}
	return string(decoded)
}
