package handlers

import (
	"net/http"

	"github.com/dom/storefront-api/internal/service"
	"github.com/dom/storefront-api/internal/websocket"
	ws "github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = ws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS is enforced on the REST surface only
	},
}

// FeedHandler streams placed orders to administrators over a WebSocket.
type FeedHandler struct {
	hub         *websocket.Hub
	authService *service.AuthService
	userService *service.UserService
	log         *zap.Logger
}

func NewFeedHandler(hub *websocket.Hub, authService *service.AuthService, userService *service.UserService, log *zap.Logger) *FeedHandler {
	return &FeedHandler{
		hub:         hub,
		authService: authService,
		userService: userService,
		log:         log,
	}
}

// Handle serves GET /orders/feed?token=. Browsers cannot set headers on a
// WebSocket handshake, so the access token travels in the query string.
func (h *FeedHandler) Handle(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "token required")
		return
	}

	userID, err := h.authService.Authenticate(token)
	if err != nil {
		respondError(w, h.log, "feed.Handle", err)
		return
	}

	user, err := h.userService.GetByID(r.Context(), userID)
	if err != nil {
		respondError(w, h.log, "feed.Handle", err)
		return
	}
	if !user.IsAdmin {
		writeError(w, http.StatusForbidden, "FORBIDDEN", "administrator access required")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := websocket.NewClient(h.hub, conn, userID)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
