package orderControllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tripleAay/FarmApp-backend/models"
	"github.com/tripleAay/FarmApp-backend/store"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.Cart{},
		&models.CartLine{},
		&models.Order{},
		&models.OrderLine{},
	))

	orders := store.NewOrderStore(db)
	r := gin.New()
	r.POST("/orders/place/:userId", PlaceOrderHandler(orders, nil))
	r.GET("/orders/:orderId", GetOrderByIDHandler(orders))
	r.GET("/orders/user/:userId", GetUserOrdersHandler(orders))
	r.PATCH("/orders/status", UpdateOrderStatusesHandler(orders, nil))
	r.POST("/orders/:orderId/payment-proof", UploadPaymentProofHandler(orders, t.TempDir()))
	r.GET("/orders/ws", OrderFeedHandler)
	return r, db
}

func fillCart(t *testing.T, db *gorm.DB, buyerID string, lines map[string]int) {
	t.Helper()
	carts := store.NewCartStore(db)
	for productID, qty := range lines {
		for i := 0; i < qty; i++ {
			_, err := carts.AddLine(buyerID, productID)
			require.NoError(t, err)
		}
	}
}

func seedProduct(t *testing.T, db *gorm.DB, id string, price float64) {
	t.Helper()
	require.NoError(t, db.Create(&models.Product{
		ID:        id,
		Name:      "Yam Tubers",
		Price:     price,
		Thumbnail: "/uploads/" + id + ".jpg",
		FarmerID:  "f1",
	}).Error)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	r, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders/place/buyer-1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotAcceptable, w.Code)
}

func TestPlaceOrderSnapshotsCart(t *testing.T) {
	r, db := setupRouter(t)
	seedProduct(t, db, "p1", 100)
	seedProduct(t, db, "p2", 50)
	fillCart(t, db, "buyer-1", map[string]int{"p1": 2, "p2": 1})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders/place/buyer-1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		Order models.Order `json:"order"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 250.0, resp.Order.TotalPrice)
	assert.Equal(t, models.OrderStatusPending, resp.Order.Status)
	assert.Equal(t, models.PaymentMethodOnDelivery, resp.Order.PaymentMethod)
	require.Len(t, resp.Order.Lines, 2)

	lines, err := store.NewCartStore(db).GetCart("buyer-1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestGetOrderByIDValidation(t *testing.T) {
	r, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders/not-a-uuid", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/orders/7b2e1c4e-9f5a-4f7e-8b1a-3c2d5e6f7a8b", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateOrderStatusesEmptyBatch(t *testing.T) {
	r, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/orders/status", strings.NewReader(`{"updates":[]}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateOrderStatusesBulk(t *testing.T) {
	r, db := setupRouter(t)
	seedProduct(t, db, "p1", 100)
	fillCart(t, db, "buyer-1", map[string]int{"p1": 1})

	orders := store.NewOrderStore(db)
	order, err := orders.Place("buyer-1")
	require.NoError(t, err)

	body, err := json.Marshal(gin.H{"updates": []gin.H{
		{"orderId": order.ID, "status": "Shipped"},
		{"orderId": "11111111-2222-3333-4444-555555555555", "status": "Shipped"},
	}})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/orders/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var result store.BulkResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
	assert.Equal(t, int64(1), result.MatchedCount)
	assert.Equal(t, int64(1), result.ModifiedCount)

	updated, err := orders.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, updated.Status)
	assert.True(t, updated.Paid)
	assert.NotEmpty(t, updated.TransactionID)
}

func TestStatusFeedAnnouncesOnlyWrittenUpdates(t *testing.T) {
	r, db := setupRouter(t)
	seedProduct(t, db, "p1", 100)
	fillCart(t, db, "buyer-1", map[string]int{"p1": 1})

	orders := store.NewOrderStore(db)
	order, err := orders.Place("buyer-1")
	require.NoError(t, err)

	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/orders/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	body, err := json.Marshal(gin.H{"updates": []gin.H{
		{"orderId": "11111111-2222-3333-4444-555555555555", "status": "Shipped"},
		{"orderId": order.ID, "status": "Shipped"},
	}})
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPatch, srv.URL+"/orders/status", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Exactly one frame: the order that was actually written.
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, frame, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg struct {
		Type    string `json:"type"`
		OrderID string `json:"orderId"`
		Status  string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(frame, &msg))
	assert.Equal(t, "status_changed", msg.Type)
	assert.Equal(t, order.ID, msg.OrderID)
	assert.Equal(t, "Shipped", msg.Status)

	// The unmatched id must not produce a frame of its own.
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err = conn.ReadMessage()
	require.Error(t, err)
}

func TestUploadPaymentProof(t *testing.T) {
	r, db := setupRouter(t)
	seedProduct(t, db, "p1", 100)
	fillCart(t, db, "buyer-1", map[string]int{"p1": 1})

	orders := store.NewOrderStore(db)
	order, err := orders.Place("buyer-1")
	require.NoError(t, err)

	// Missing file
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders/"+order.ID+"/payment-proof", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Valid upload
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("paymentProof", "receipt.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/orders/"+order.ID+"/payment-proof", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Order models.Order `json:"order"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "/uploads/"+order.ID+"_receipt.jpg", resp.Order.PaymentImage)
}
