package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/orderdesk/internal/db"
	"github.com/wellywell/orderdesk/internal/lifecycle"
	"github.com/wellywell/orderdesk/internal/metrics"
	"github.com/wellywell/orderdesk/internal/notify"
	"github.com/wellywell/orderdesk/internal/types"
	"github.com/wellywell/orderdesk/internal/validate"
)

type orderView struct {
	types.OrderRecord
	Display     lifecycle.Display `json:"display"`
	Transitions []types.Status    `json:"transitions"`
}

type statusView struct {
	Status types.Status `json:"status"`
	lifecycle.Display
	Terminal bool `json:"terminal"`
}

type updateResult struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Order   *orderView `json:"order,omitempty"`
}

func newOrderView(order types.OrderRecord, audience types.Audience, actor types.Actor) orderView {
	next, err := lifecycle.ValidTransitions(order.Status, actor)
	if err != nil {
		// stored status this build does not know: render it, offer nothing
		next = []types.Status{}
	}
	return orderView{
		OrderRecord: order,
		Display:     lifecycle.DisplayInfo(string(order.Status), audience),
		Transitions: next,
	}
}

func (h *HandlerSet) HandleGetStatuses(w http.ResponseWriter, req *http.Request) {
	audience := types.Audience(req.URL.Query().Get("audience"))
	if audience == "" {
		audience = types.CustomerAudience
	}
	table := lifecycle.Table(audience)
	if table == nil {
		http.Error(w, "Unknown audience", http.StatusBadRequest)
		return
	}

	statuses := lifecycle.Statuses()
	result := make([]statusView, 0, len(statuses))
	for _, s := range statuses {
		result = append(result, statusView{Status: s, Display: table[s], Terminal: lifecycle.IsTerminal(s)})
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *HandlerSet) HandlePostUserOrder(w http.ResponseWriter, req *http.Request) {

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
		Items []types.OrderItem `json:"items"`
	}
	err = json.Unmarshal(body, &data)
	if err != nil {
		http.Error(w, "Could not parse body",
			http.StatusBadRequest)
		return
	}
	if !validItems(data.Items) {
		http.Error(w, "Invalid order items",
			http.StatusUnprocessableEntity)
		return
	}

	order, err := h.database.InsertOrder(req.Context(), user.ID, data.Items)
	if err != nil {
		logger.Error(err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, newOrderView(*order, types.CustomerAudience, types.OwnerActor))
}

func validItems(items []types.OrderItem) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if item.Name == "" || item.Quantity <= 0 || item.Price < 0 {
			return false
		}
	}
	return true
}

func (h *HandlerSet) HandleGetUserOrders(w http.ResponseWriter, req *http.Request) {

	user, err := h.handleAuthorizeUser(w, req)
	if err != nil {
		return
	}

	orders, err := h.database.GetUserOrders(req.Context(), user.ID)
	if err != nil {
		logger.Error(err)
		http.Error(w, "Error getting data", http.StatusInternalServerError)
		return
	}
	h.writeOrders(w, orders, types.CustomerAudience, types.OwnerActor)
}

func (h *HandlerSet) HandleAdminGetOrders(w http.ResponseWriter, req *http.Request) {

	orders, err := h.database.GetAllOrders(req.Context())
	if err != nil {
		logger.Error(err)
		http.Error(w, "Error getting data", http.StatusInternalServerError)
		return
	}
	h.writeOrders(w, orders, types.AdminAudience, types.AdminActor)
}

func (h *HandlerSet) writeOrders(w http.ResponseWriter, orders []types.OrderRecord, audience types.Audience, actor types.Actor) {
	if len(orders) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	result := make([]orderView, 0, len(orders))
	for _, o := range orders {
		result = append(result, newOrderView(o, audience, actor))
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *HandlerSet) HandleCancelUserOrder(w http.ResponseWriter, req *http.Request) {

	user, err := h.handleAuthorizeUser(w, req)
	if err != nil {
		return
	}

	order, ok := h.loadOrder(w, req)
	if !ok {
		return
	}
	if order.Owner != user.ID {
		// other users' orders are reported as missing
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	h.transition(w, req, order, types.CancelledStatus, types.OwnerActor, types.CustomerAudience)
}

func (h *HandlerSet) HandleAdminUpdateStatus(w http.ResponseWriter, req *http.Request) {

	body, err := io.ReadAll(req.Body)
	if err != nil {
		http.Error(w, "Something went wrong",
			http.StatusInternalServerError)
		return
	}

	var data struct {
		Status string `json:"status"`
	}
	err = json.Unmarshal(body, &data)
	if err != nil {
		http.Error(w, "Could not parse body",
			http.StatusBadRequest)
		return
	}

	requested, err := lifecycle.ParseStatus(data.Status)
	if err != nil {
		metrics.Transitions.WithLabelValues(string(types.AdminActor), "invalid").Inc()
		writeJSON(w, http.StatusUnprocessableEntity, updateResult{Message: err.Error()})
		return
	}

	order, ok := h.loadOrder(w, req)
	if !ok {
		return
	}

	h.transition(w, req, order, requested, types.AdminActor, types.AdminAudience)
}

func (h *HandlerSet) loadOrder(w http.ResponseWriter, req *http.Request) (*types.OrderRecord, bool) {
	id := chi.URLParam(req, "id")
	if !validate.ValidateOrderID(id) {
		http.Error(w, "Invalid order id",
			http.StatusUnprocessableEntity)
		return nil, false
	}

	order, err := h.database.GetOrder(req.Context(), id)
	if err != nil {
		var notFound *db.OrderNotFoundError
		if errors.As(err, &notFound) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return nil, false
		}
		logger.Error(err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return nil, false
	}
	return order, true
}

// transition validates the step, persists it against the status it was
// validated for and tells the owner about it.
func (h *HandlerSet) transition(w http.ResponseWriter, req *http.Request, order *types.OrderRecord,
	requested types.Status, actor types.Actor, audience types.Audience) {

	next, err := lifecycle.ApplyTransition(order.Status, requested, actor)
	if err != nil {
		code := http.StatusConflict
		result := "illegal"
		if errors.Is(err, lifecycle.ErrInvalidStatus) {
			code = http.StatusUnprocessableEntity
			result = "invalid"
		}
		metrics.Transitions.WithLabelValues(string(actor), result).Inc()
		logger.Infof("Rejected status change of order %s: %s", order.ID, err.Error())
		writeJSON(w, code, updateResult{Message: err.Error()})
		return
	}

	updated, err := h.database.UpdateOrderStatus(req.Context(), order.ID, order.Status, next)
	if err != nil {
		var notFound *db.OrderNotFoundError
		switch {
		case errors.As(err, &notFound):
			writeJSON(w, http.StatusNotFound, updateResult{Message: notFound.Error()})
		case errors.Is(err, db.ErrStatusConflict):
			metrics.Transitions.WithLabelValues(string(actor), "conflict").Inc()
			writeJSON(w, http.StatusConflict, updateResult{Message: "Order status was changed by someone else, reload and retry"})
		default:
			logger.Error(err)
			writeJSON(w, http.StatusInternalServerError, updateResult{Message: "Internal error"})
		}
		return
	}

	metrics.Transitions.WithLabelValues(string(actor), "accepted").Inc()
	logger.Infof("Order %s moved %s -> %s by %s", order.ID, order.Status, next, actor)

	change := notify.StatusChange{
		OrderID: updated.ID,
		Owner:   updated.Owner,
		From:    order.Status,
		To:      next,
		Actor:   actor,
		At:      time.Now().UTC(),
	}
	if err := h.notifier.NotifyStatusChange(req.Context(), change); err != nil {
		logger.Warningf("Could not notify owner of order %s: %s", updated.ID, err.Error())
	}

	view := newOrderView(*updated, audience, actor)
	writeJSON(w, http.StatusOK, updateResult{Success: true, Message: "Order status updated", Order: &view})
}
