package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smmstore/internal/auth"
	"smmstore/internal/infrastructure/payment"
	"smmstore/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(successRate float64) *Server {
	gateway := payment.NewGateway(payment.Config{SuccessRate: successRate})
	checkoutSvc := service.NewCheckoutService(gateway, nil, nil)
	identity := auth.NewIdentity(auth.NewMemorySessionStore())
	return NewServer(checkoutSvc, identity)
}

func doRequest(t *testing.T, srv *Server, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)
	return w
}

func paymentBody() map[string]any {
	return map[string]any{
		"amount":        1250,
		"service":       "ig-likes",
		"userData":      map[string]any{"name": "A", "email": "a@a.com"},
		"paymentMethod": "card",
		"quantity":      250,
		"url":           "https://instagram.com/a",
	}
}

func decodePayment(t *testing.T, w *httptest.ResponseRecorder) paymentResponse {
	t.Helper()
	var resp paymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestPaymentSuccessEnvelope(t *testing.T) {
	srv := newTestServer(1)

	w := doRequest(t, srv, http.MethodPost, "/api/payment", paymentBody(), nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodePayment(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, payment.MsgSuccess, resp.Message)
	assert.Regexp(t, `^TXN_\d+_[0-9a-z]{9}$`, resp.TransactionID)
	assert.Equal(t, "completed", string(resp.Status))
}

func TestPaymentDeclineEnvelope(t *testing.T) {
	srv := newTestServer(0)

	w := doRequest(t, srv, http.MethodPost, "/api/payment", paymentBody(), nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodePayment(t, w)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Message)
	assert.NotEmpty(t, resp.TransactionID, "declines carry the transaction id")
	assert.Equal(t, "failed", string(resp.Status))
}

func TestPaymentInvalidAmount(t *testing.T) {
	srv := newTestServer(1)

	body := paymentBody()
	body["amount"] = 0
	w := doRequest(t, srv, http.MethodPost, "/api/payment", body, nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodePayment(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, payment.MsgInvalidAmount, resp.Message)
	assert.Empty(t, resp.TransactionID)
}

func TestPaymentMissingUserData(t *testing.T) {
	srv := newTestServer(1)

	body := paymentBody()
	body["userData"] = map[string]any{"name": "A", "email": ""}
	w := doRequest(t, srv, http.MethodPost, "/api/payment", body, nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodePayment(t, w)
	assert.Equal(t, payment.MsgMissingUserData, resp.Message)
}

func TestPaymentMalformedBody(t *testing.T) {
	srv := newTestServer(1)

	req := httptest.NewRequest(http.MethodPost, "/api/payment", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodePayment(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "failed", string(resp.Status))
}

func TestPaymentMethodNotAllowed(t *testing.T) {
	srv := newTestServer(1)

	w := doRequest(t, srv, http.MethodGet, "/api/payment", nil, nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestPaymentOptionsReturnsOK(t *testing.T) {
	srv := newTestServer(1)

	w := doRequest(t, srv, http.MethodOptions, "/api/payment", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestPaymentPreflightCORS(t *testing.T) {
	srv := newTestServer(1)

	w := doRequest(t, srv, http.MethodOptions, "/api/payment", nil, map[string]string{
		"Origin":                        "https://example.com",
		"Access-Control-Request-Method": "POST",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestServicesFilter(t *testing.T) {
	srv := newTestServer(1)

	w := doRequest(t, srv, http.MethodGet, "/api/services?platform=instagram&category=likes", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Services []serviceDTO `json:"services"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Services, 1)
	assert.Equal(t, "ig-likes", resp.Services[0].ID)
}

func TestServicesWildcard(t *testing.T) {
	srv := newTestServer(1)

	w := doRequest(t, srv, http.MethodGet, "/api/services?platform=all", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Services []serviceDTO `json:"services"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Greater(t, len(resp.Services), 10)
}

func TestConsultation(t *testing.T) {
	srv := newTestServer(1)

	w := doRequest(t, srv, http.MethodPost, "/api/consultation", map[string]any{
		"name": "A", "contact": "@a", "platform": "instagram", "message": "hi",
	}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, srv, http.MethodPost, "/api/consultation", map[string]any{
		"name": "A", "contact": "", "platform": "instagram",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, srv, http.MethodPost, "/api/consultation", map[string]any{
		"name": "A", "contact": "@a", "platform": "myspace",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthFlow(t *testing.T) {
	srv := newTestServer(1)

	w := doRequest(t, srv, http.MethodPost, "/api/auth/signup", map[string]any{
		"email": "a@a.com", "password": "secret", "name": "A",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var signup struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &signup))
	require.NotEmpty(t, signup.Token)

	w = doRequest(t, srv, http.MethodGet, "/api/auth/session", nil, map[string]string{
		"Authorization": "Bearer " + signup.Token,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var session struct {
		Authenticated bool   `json:"authenticated"`
		Name          string `json:"name"`
		Email         string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	assert.True(t, session.Authenticated)
	assert.Equal(t, "A", session.Name)
	assert.Equal(t, "a@a.com", session.Email)

	// wrong password
	w = doRequest(t, srv, http.MethodPost, "/api/auth/signin", map[string]any{
		"email": "a@a.com", "password": "wrong",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// sign out invalidates the token
	w = doRequest(t, srv, http.MethodPost, "/api/auth/signout", nil, map[string]string{
		"Authorization": "Bearer " + signup.Token,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, srv, http.MethodGet, "/api/auth/session", nil, map[string]string{
		"Authorization": "Bearer " + signup.Token,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	assert.False(t, session.Authenticated)
}
