package export

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atozflooring/po-extract/internal/config"
	"github.com/atozflooring/po-extract/internal/payload"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.DefaultConfig()
	cfg.RFMSBaseURL = server.URL
	cfg.RFMSStoreID = "store-49"
	cfg.RFMSAPIKey = "secret"
	return NewClient(cfg, nil)
}

func TestClientCreateOrder(t *testing.T) {
	var gotPath, gotUser, gotPass string
	var gotBody payload.Order

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]string{"orderId": "RF100"})
	})

	order := &payload.Order{PONumber: "20250342-01", Category: "Order"}
	id, raw, err := client.CreateOrder(context.Background(), order)
	require.NoError(t, err)

	assert.Equal(t, "RF100", id)
	assert.NotEmpty(t, raw)
	assert.Equal(t, "/order", gotPath)
	assert.Equal(t, "store-49", gotUser)
	assert.Equal(t, "secret", gotPass)
	assert.Equal(t, "20250342-01", gotBody.PONumber)
}

func TestClientCreateOrderRemoteError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"duplicate po"}`, http.StatusConflict)
	})

	_, _, err := client.CreateOrder(context.Background(), &payload.Order{PONumber: "X"})
	require.Error(t, err)

	var exportErr *ExportError
	require.ErrorAs(t, err, &exportErr)
	assert.Equal(t, http.StatusConflict, exportErr.StatusCode)
	assert.Contains(t, exportErr.Body, "duplicate po")
}

func TestClientCreateOrderNoIDInResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	_, _, err := client.CreateOrder(context.Background(), &payload.Order{PONumber: "X"})
	var exportErr *ExportError
	require.ErrorAs(t, err, &exportErr)
}

func TestClientLinkOrders(t *testing.T) {
	var gotBody map[string][]string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/order/link", r.URL.Path)
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"result":"ok"}`))
	})

	err := client.LinkOrders(context.Background(), []string{"RF1", "RF2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"RF1", "RF2"}, gotBody["orderIds"])
}

func TestClientCreateCustomer(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customer", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]string{"customerId": "C55"})
	})

	id, err := client.CreateCustomer(context.Background(), &payload.Customer{CustomerType: "INSURANCE"})
	require.NoError(t, err)
	assert.Equal(t, "C55", id)
}
