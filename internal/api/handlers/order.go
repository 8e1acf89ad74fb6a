package handlers

import (
	"net/http"

	"github.com/dom/storefront-api/internal/api/middleware"
	"github.com/dom/storefront-api/internal/domain"
	"github.com/dom/storefront-api/internal/service"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type OrderHandler struct {
	orderService *service.OrderService
	log          *zap.Logger
}

func NewOrderHandler(orderService *service.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{orderService: orderService, log: log}
}

type orderItemRequest struct {
	ProductID string          `json:"productId" validate:"required,uuid"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	Price     decimal.Decimal `json:"price" validate:"gte=0,lt=10000000000"`
}

type orderRequest struct {
	Status domain.OrderStatus `json:"status" validate:"omitempty,oneof=PENDING PAYED SHIPPED DELIVERED"`
	Items  []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

func (h *OrderHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.GetAll(r.Context())
	if err != nil {
		respondError(w, h.log, "order.GetAll", err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderViews(orders))
}

// ByUser handles GET /orders/by-user for the caller.
func (h *OrderHandler) ByUser(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	orders, err := h.orderService.GetByUserID(r.Context(), userID)
	if err != nil {
		respondError(w, h.log, "order.ByUser", err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderViews(orders))
}

func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	var req orderRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, h.log, "order.Place", err)
		return
	}

	items := make([]service.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.OrderItemInput{
			ProductID: uuid.MustParse(item.ProductID),
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	order, err := h.orderService.Place(r.Context(), userID, service.PlaceOrderInput{
		Status: req.Status,
		Items:  items,
	})
	if err != nil {
		respondError(w, h.log, "order.Place", err)
		return
	}

	middleware.ObserveOrderPlaced()
	writeJSON(w, http.StatusOK, toOrderView(order))
}
