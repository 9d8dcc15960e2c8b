package procurement

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/quartermaster-erp/quartermaster/internal/platform/httpx"
	"github.com/quartermaster-erp/quartermaster/internal/shared"
)

// Handler manages purchase order endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers purchase order routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.handleList)
	r.Get("/{id}", h.handleGet)
	r.Post("/", h.handleCreate)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		h.logger.Error("list purchase orders", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"purchase_orders": orders})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed order id")
		return
	}
	po, items, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Problem(w, http.StatusNotFound, "Not Found", "purchase order not found")
			return
		}
		h.logger.Error("get purchase order", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"purchase_order": po, "items": items})
}

// handleCreate accepts the structured JSON payload or, for legacy clients,
// an urlencoded form using the flattened items[i][field] convention.
func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeCreate(w, r)
	if !ok {
		return
	}

	identity := shared.IdentityFromContext(r.Context())
	po, items, err := h.service.CreateOrder(r.Context(), identity, input)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			httpx.ValidationProblem(w, verr.Fields)
			return
		}
		h.logger.Error("create purchase order", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	// Hand the caller off to the detail view of the new order.
	w.Header().Set("Location", "/purchase-orders/"+po.ID.String())
	httpx.JSON(w, http.StatusCreated, map[string]any{"purchase_order": po, "items": items})
}

func (h *Handler) decodeCreate(w http.ResponseWriter, r *http.Request) (CreateOrderInput, bool) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") || strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseForm(); err != nil {
			httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed form data")
			return CreateOrderInput{}, false
		}
		input, errs := ParseOrderForm(r.PostForm)
		if errs.Any() {
			httpx.ValidationProblem(w, errs)
			return CreateOrderInput{}, false
		}
		return input, true
	}

	var input CreateOrderInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed request body")
		return CreateOrderInput{}, false
	}
	return input, true
}
