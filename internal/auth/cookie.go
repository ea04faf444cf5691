package auth

import (
	"net/http"
	"time"
)

const userCookie = "_user"

func VerifyUser(r *http.Request, secret []byte) (string, error) {
	cookie, err := r.Cookie(userCookie)
	if err != nil {
		return "", err
	}
	return GetUser(cookie.Value, secret)
}

func SetAuthCookie(username string, w http.ResponseWriter, secret []byte, TTLSeconds int) error {

	token, err := BuildJWTString(username, secret, time.Duration(TTLSeconds)*time.Second)
	if err != nil {
		return err
	}
	cookie := &http.Cookie{Name: userCookie, Value: token, MaxAge: TTLSeconds, Path: "/", HttpOnly: true}
	http.SetCookie(w, cookie)
	return nil
}
