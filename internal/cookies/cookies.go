package cookies

import (
	"net/http"

	"github.com/ZenKakzi/scholar-book-flow/internal/jwt"
)

func CreateAccessToken(w http.ResponseWriter, id string, secret string) error {
	access_token, err := jwt.CreateJWTToken(id, secret)

	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    access_token,
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   24 * 60 * 60,
	})

	return nil
}

func ClearAccessToken(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
