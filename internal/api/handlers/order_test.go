package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/dom/storefront-api/internal/testutil"
	"github.com/dom/storefront-api/internal/websocket"
	"github.com/google/uuid"
	ws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderJSON struct {
	ID     string  `json:"id"`
	Status string  `json:"status"`
	UserID string  `json:"userId"`
	Total  float64 `json:"total"`
	Items  []struct {
		ProductID string  `json:"productId"`
		Quantity  int     `json:"quantity"`
		Price     float64 `json:"price"`
	} `json:"items"`
}

func TestOrderHandler_Place(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
	mug := testutil.NewProductBuilder().WithPrice("12.50").Build(t, ts.DB.DB)
	tea := testutil.NewProductBuilder().WithPrice("4.00").Build(t, ts.DB.DB)

	t.Run("places an order with default status", func(t *testing.T) {
		resp := testutil.DoJSON(t, http.MethodPost, ts.URL("/orders"), token, map[string]any{
			"items": []map[string]any{
				{"productId": mug.ID.String(), "quantity": 2, "price": 12.5},
				{"productId": tea.ID.String(), "quantity": 1, "price": 4},
			},
		})
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var order orderJSON
		testutil.AssertJSONResponse(t, resp, &order)
		assert.Equal(t, "PENDING", order.Status)
		assert.Equal(t, user.ID.String(), order.UserID)
		assert.Len(t, order.Items, 2)
		assert.InDelta(t, 29.0, order.Total, 0.001)
	})

	t.Run("requires authentication", func(t *testing.T) {
		resp := testutil.DoJSON(t, http.MethodPost, ts.URL("/orders"), "", map[string]any{})
		testutil.AssertErrorResponse(t, resp, http.StatusUnauthorized, "UNAUTHORIZED")
	})

	tests := []struct {
		name   string
		body   map[string]any
		status int
		code   string
	}{
		{
			name:   "empty items",
			body:   map[string]any{"items": []any{}},
			status: http.StatusBadRequest,
			code:   "VALIDATION_FAILED",
		},
		{
			name: "unknown status",
			body: map[string]any{
				"status": "LOST",
				"items":  []map[string]any{{"productId": mug.ID.String(), "quantity": 1, "price": 1}},
			},
			status: http.StatusBadRequest,
			code:   "VALIDATION_FAILED",
		},
		{
			name: "zero quantity",
			body: map[string]any{
				"items": []map[string]any{{"productId": mug.ID.String(), "quantity": 0, "price": 1}},
			},
			status: http.StatusBadRequest,
			code:   "VALIDATION_FAILED",
		},
		{
			name: "negative price",
			body: map[string]any{
				"items": []map[string]any{{"productId": mug.ID.String(), "quantity": 1, "price": -1}},
			},
			status: http.StatusBadRequest,
			code:   "VALIDATION_FAILED",
		},
		{
			name: "price beyond column range",
			body: map[string]any{
				"items": []map[string]any{{"productId": mug.ID.String(), "quantity": 1, "price": 1e13}},
			},
			status: http.StatusBadRequest,
			code:   "VALIDATION_FAILED",
		},
		{
			name: "fraction of a cent",
			body: map[string]any{
				"items": []map[string]any{{"productId": mug.ID.String(), "quantity": 1, "price": "0.001"}},
			},
			status: http.StatusBadRequest,
			code:   "VALIDATION_FAILED",
		},
		{
			name: "unknown product",
			body: map[string]any{
				"items": []map[string]any{
					{"productId": mug.ID.String(), "quantity": 1, "price": 1},
					{"productId": uuid.NewString(), "quantity": 1, "price": 1},
				},
			},
			status: http.StatusNotFound,
			code:   "NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := testutil.DoJSON(t, http.MethodPost, ts.URL("/orders"), token, tt.body)
			testutil.AssertErrorResponse(t, resp, tt.status, tt.code)
		})
	}

	t.Run("rejected orders are not stored", func(t *testing.T) {
		resp := testutil.DoJSON(t, http.MethodGet, ts.URL("/orders/by-user"), token, nil)
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var orders []orderJSON
		testutil.AssertJSONResponse(t, resp, &orders)
		assert.Len(t, orders, 1)
	})
}

func TestOrderHandler_Listings(t *testing.T) {
	ts := testutil.NewTestServer(t)

	alice, aliceToken := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
	bob, _ := testutil.NewUserBuilder().Build(t, ts.DB.DB)
	_, adminToken := testutil.NewUserBuilder().WithAdmin().BuildAndAuthenticate(t, ts)

	product := testutil.NewProductBuilder().Build(t, ts.DB.DB)
	testutil.SeedOrder(t, ts.DB.DB, alice, 1, product)
	testutil.SeedOrder(t, ts.DB.DB, bob, 3, product)

	t.Run("by user sees only own orders", func(t *testing.T) {
		resp := testutil.DoJSON(t, http.MethodGet, ts.URL("/orders/by-user"), aliceToken, nil)
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var orders []orderJSON
		testutil.AssertJSONResponse(t, resp, &orders)
		require.Len(t, orders, 1)
		assert.Equal(t, alice.ID.String(), orders[0].UserID)
	})

	t.Run("all orders is admin only", func(t *testing.T) {
		resp := testutil.DoJSON(t, http.MethodGet, ts.URL("/orders"), aliceToken, nil)
		testutil.AssertErrorResponse(t, resp, http.StatusForbidden, "FORBIDDEN")

		resp = testutil.DoJSON(t, http.MethodGet, ts.URL("/orders"), adminToken, nil)
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var orders []orderJSON
		testutil.AssertJSONResponse(t, resp, &orders)
		assert.Len(t, orders, 2)
	})
}

func TestOrderFeed(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, adminToken := testutil.NewUserBuilder().WithAdmin().BuildAndAuthenticate(t, ts)
	_, customerToken := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
	product := testutil.NewProductBuilder().WithPrice("7.25").Build(t, ts.DB.DB)

	t.Run("rejects missing token", func(t *testing.T) {
		_, resp, err := ws.DefaultDialer.Dial(ts.WebSocketURL(""), nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("rejects customers", func(t *testing.T) {
		_, resp, err := ws.DefaultDialer.Dial(ts.WebSocketURL(customerToken), nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin receives placed orders", func(t *testing.T) {
		conn, _, err := ws.DefaultDialer.Dial(ts.WebSocketURL(adminToken), nil)
		require.NoError(t, err)
		defer conn.Close()

		require.Eventually(t, func() bool {
			return ts.Hub.ClientCount() == 1
		}, 2*time.Second, 10*time.Millisecond)

		resp := testutil.DoJSON(t, http.MethodPost, ts.URL("/orders"), customerToken, map[string]any{
			"status": "PAYED",
			"items":  []map[string]any{{"productId": product.ID.String(), "quantity": 4, "price": "7.25"}},
		})
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		conn.SetReadDeadline(time.Now().Add(5 * time.Second))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)

		var msg websocket.Message
		require.NoError(t, json.Unmarshal(data, &msg))
		assert.Equal(t, websocket.MessageTypeOrderPlaced, msg.Type)

		var payload struct {
			Order struct {
				Status string `json:"status"`
			} `json:"order"`
			Total string `json:"total"`
		}
		require.NoError(t, json.Unmarshal(msg.Payload, &payload))
		assert.Equal(t, "PAYED", payload.Order.Status)
		assert.Equal(t, "29.00", payload.Total)
	})
}
