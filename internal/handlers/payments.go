package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/wellywell/orderdesk/internal/payment"
	"github.com/wellywell/orderdesk/internal/validate"
)

type paymentView struct {
	payment.State
	IsProcessing bool `json:"is_processing"`
}

func newPaymentView(state payment.State) paymentView {
	return paymentView{State: state, IsProcessing: state.IsProcessing()}
}

func (h *HandlerSet) HandlePostPayment(w http.ResponseWriter, req *http.Request) {

	user, err := h.handleAuthorizeUser(w, req)
	if err != nil {
		return
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		http.Error(w, "Something went wrong",
			http.StatusInternalServerError)
		return
	}

	var data struct {
		Code string `json:"code"`
	}
	err = json.Unmarshal(body, &data)
	if err != nil {
		http.Error(w, "Could not parse body",
			http.StatusBadRequest)
		return
	}
	if !validate.ValidatePaymentCode(data.Code) {
		http.Error(w, "Invalid payment code",
			http.StatusUnprocessableEntity)
		return
	}

	session, err := h.poller.Begin(user.ID, data.Code)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, http.StatusAccepted, newPaymentView(session.Snapshot()))
}

func (h *HandlerSet) HandleGetPayment(w http.ResponseWriter, req *http.Request) {

	user, err := h.handleAuthorizeUser(w, req)
	if err != nil {
		return
	}

	var state payment.State
	if session, ok := h.sessions.Lookup(user.ID); ok {
		state = session.Snapshot()
	}
	writeJSON(w, http.StatusOK, newPaymentView(state))
}

func (h *HandlerSet) HandleDeletePayment(w http.ResponseWriter, req *http.Request) {

	user, err := h.handleAuthorizeUser(w, req)
	if err != nil {
		return
	}

	h.poller.Abandon(user.ID)
	w.WriteHeader(http.StatusNoContent)
}
