package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/orderdesk/internal/auth"
	"github.com/wellywell/orderdesk/internal/db"
	"github.com/wellywell/orderdesk/internal/notify"
	"github.com/wellywell/orderdesk/internal/payment"
	"github.com/wellywell/orderdesk/internal/types"
)

type Storage interface {
	CreateUser(ctx context.Context, username string, password string, isAdmin bool) error
	GetUserHashedPassword(ctx context.Context, username string) (string, error)
	GetUser(ctx context.Context, username string) (*types.User, error)
	InsertOrder(ctx context.Context, userID int, items []types.OrderItem) (*types.OrderRecord, error)
	GetOrder(ctx context.Context, id string) (*types.OrderRecord, error)
	GetUserOrders(ctx context.Context, userID int) ([]types.OrderRecord, error)
	GetAllOrders(ctx context.Context) ([]types.OrderRecord, error)
	UpdateOrderStatus(ctx context.Context, id string, from, to types.Status) (*types.OrderRecord, error)
}

type HandlerSet struct {
	secret               []byte
	cookieExpiresSeconds int
	database             Storage
	poller               *payment.Poller
	sessions             *payment.Registry
	notifier             notify.Notifier
	admins               map[string]struct{}
}

var (
	ErrCouldNotParseBody = errors.New("could not parse body")
	ErrAuthDataEmpty     = errors.New("login or password cannot be empty")
)

// NewHandlerSet wires the API. Users registering with a name listed in
// admins get the admin role.
func NewHandlerSet(secret []byte, cookieExpiresSecs int, database Storage, poller *payment.Poller,
	sessions *payment.Registry, notifier notify.Notifier, admins []string) *HandlerSet {

	adminSet := make(map[string]struct{}, len(admins))
	for _, a := range admins {
		adminSet[a] = struct{}{}
	}
	return &HandlerSet{
		secret:               secret,
		cookieExpiresSeconds: cookieExpiresSecs,
		database:             database,
		poller:               poller,
		sessions:             sessions,
		notifier:             notifier,
		admins:               adminSet,
	}
}

func (h *HandlerSet) parseAuthData(body []byte) (username string, password string, err error) {

	var data struct {
		Username string `json:"login"`
		Password string `json:"password"`
	}

	err = json.Unmarshal(body, &data)
	if err != nil {
		return "", "", ErrCouldNotParseBody
	}

	if data.Username == "" || data.Password == "" {
		return "", "", ErrAuthDataEmpty
	}

	return data.Username, data.Password, nil

}

func (h *HandlerSet) handleAuthErrors(err error, w http.ResponseWriter) {

	if errors.Is(err, ErrCouldNotParseBody) {
		http.Error(w, "Could not parse body",
			http.StatusBadRequest)
	} else if errors.Is(err, ErrAuthDataEmpty) {
		http.Error(w, "Login and password cannot be empty",
			http.StatusBadRequest)
	} else {
		http.Error(w, "Unknown error", http.StatusInternalServerError)
	}
}

func (h *HandlerSet) HandleLogin(w http.ResponseWriter, req *http.Request) {

	body, err := io.ReadAll(req.Body)
	if err != nil {
		http.Error(w, "Something went wrong",
			http.StatusInternalServerError)
		return
	}

	username, password, err := h.parseAuthData(body)

	if err != nil {
		h.handleAuthErrors(err, w)
		return
	}

	passwordInDB, err := h.database.GetUserHashedPassword(req.Context(), username)
	if err != nil {
		var userNotFound *db.UserNotFoundError
		if errors.As(err, &userNotFound) {
			http.Error(w, "User not found", http.StatusUnauthorized)
			return
		}
		logger.Error(err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	if !auth.CheckPasswordHash(password, passwordInDB) {
		http.Error(w, "Wrong password", http.StatusUnauthorized)
		return
	}

	h.writeAuthSuccess(w, username)
}

func (h *HandlerSet) HandleRegisterUser(w http.ResponseWriter, req *http.Request) {

	body, err := io.ReadAll(req.Body)
	if err != nil {
		http.Error(w, "Something went wrong",
			http.StatusInternalServerError)
		return
	}

	username, password, err := h.parseAuthData(body)

	if err != nil {
		h.handleAuthErrors(err, w)
		return
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		http.Error(w, "Something went wrong",
			http.StatusInternalServerError)
		return
	}

	_, isAdmin := h.admins[username]
	err = h.database.CreateUser(req.Context(), username, hashed, isAdmin)
	if err != nil {
		var userExists *db.UserExistsError
		if errors.As(err, &userExists) {
			http.Error(w, "User exists", http.StatusConflict)
			return
		}
		logger.Error(err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	h.writeAuthSuccess(w, username)
}

func (h *HandlerSet) writeAuthSuccess(w http.ResponseWriter, username string) {
	err := auth.SetAuthCookie(username, w, h.secret, h.cookieExpiresSeconds)
	if err != nil {
		http.Error(w, "Something went wrong",
			http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain")

	_, err = w.Write([]byte("success"))
	if err != nil {
		logger.Error(err)
	}
}

func (h *HandlerSet) handleAuthorizeUser(w http.ResponseWriter, req *http.Request) (*types.User, error) {
	username, ok := auth.GetAuthenticatedUser(req)
	if !ok {
		http.Error(w, "Something went wrong",
			http.StatusInternalServerError)
		return nil, fmt.Errorf("Authentication error")
	}

	user, err := h.database.GetUser(req.Context(), username)
	if err != nil {
		var userNotFound *db.UserNotFoundError
		if errors.As(err, &userNotFound) {
			http.Error(w, "User not found",
				http.StatusUnauthorized)
			return nil, err
		}
		logger.Error(err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return nil, err
	}
	return user, nil

}

// RequireAdmin lets through only authenticated users holding the admin role.
func (h *HandlerSet) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		user, err := h.handleAuthorizeUser(w, req)
		if err != nil {
			return
		}
		if !user.IsAdmin {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, req)
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	response, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Could not serialize result",
			http.StatusInternalServerError)
		return
	}
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(code)
	_, err = w.Write(response)
	if err != nil {
		logger.Error(err)
	}
}
