package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/purchasing-admin/backend-go/internal/cache"
	"github.com/purchasing-admin/backend-go/internal/repository/memory"
	"github.com/purchasing-admin/backend-go/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrderRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	orderService := service.NewOrderService(store, cache.NewNoopRecapCache())

	router := gin.New()
	handler := NewOrderHandler(orderService)
	router.POST("/orders", handler.CreateDraft)
	router.GET("/orders/:id", handler.GetDraft)
	router.POST("/orders/:id/lines", handler.AddLine)
	router.PATCH("/orders/:id/lines/:lineID", handler.UpdateLine)
	router.DELETE("/orders/:id/lines/:lineID", handler.RemoveLine)
	router.POST("/orders/:id/submit", handler.Submit)

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()

	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)

	out := map[string]json.RawMessage{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}

	return w, out
}

func draftID(t *testing.T, fields map[string]json.RawMessage) string {
	t.Helper()

	var id string
	require.NoError(t, json.Unmarshal(fields["id"], &id))

	return id
}

func TestOrderEditingFlow(t *testing.T) {
	router := testOrderRouter(t)

	w, fields := doJSON(t, router, http.MethodPost, "/orders", `{"vendor_id":"v-001","description":"pengadaan pipa","urgent":true}`)
	require.Equal(t, http.StatusCreated, w.Code)
	id := draftID(t, fields)

	w, _ = doJSON(t, router, http.MethodPatch, "/orders/"+id+"/lines/1", `{"quantity":3,"unit_price":"1000000"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w, fields = doJSON(t, router, http.MethodPatch, "/orders/"+id+"/lines/1", `{"surcharge":{"name":"shipping","amount":"50000"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var grandTotal decimal.Decimal
	require.NoError(t, json.Unmarshal(fields["grand_total"], &grandTotal))
	assert.True(t, decimal.NewFromInt(3_050_000).Equal(grandTotal), "got %s", grandTotal)

	w, fields = doJSON(t, router, http.MethodPost, "/orders/"+id+"/submit", `{"fee":"100000","category":"kpc"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var total decimal.Decimal
	require.NoError(t, json.Unmarshal(fields["price_total"], &total))
	assert.True(t, decimal.NewFromInt(3_050_000).Equal(total))
}

func TestRemoveLastLineConflict(t *testing.T) {
	router := testOrderRouter(t)

	w, fields := doJSON(t, router, http.MethodPost, "/orders", `{"vendor_id":"v-001"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	id := draftID(t, fields)

	w, _ = doJSON(t, router, http.MethodDelete, "/orders/"+id+"/lines/1", "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestNegativeAmountRejected(t *testing.T) {
	router := testOrderRouter(t)

	w, fields := doJSON(t, router, http.MethodPost, "/orders", `{"vendor_id":"v-001"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	id := draftID(t, fields)

	w, _ = doJSON(t, router, http.MethodPatch, "/orders/"+id+"/lines/1", `{"quantity":-2}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnknownDraft(t *testing.T) {
	router := testOrderRouter(t)

	w, _ := doJSON(t, router, http.MethodGet, "/orders/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
