package billing

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

const webhookSecret = "whsec_test_secret"

type recordingLedger struct {
	userID  string
	credits int
	calls   int
}

func (r *recordingLedger) Credit(ctx context.Context, userID string, credits int) error {
	r.calls++
	r.userID = userID
	r.credits = credits
	return nil
}

func setupWebhookRouter(ledger CreditLedger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/webhook/stripe", NewWebhookHandler(webhookSecret, ledger).Handle)
	return r
}

// signPayload builds a Stripe-Signature header the way Stripe signs
// deliveries: HMAC-SHA256 over "<timestamp>.<payload>".
func signPayload(payload []byte, secret string) string {
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func checkoutCompletedEvent() []byte {
	return []byte(`{
		"id": "evt_test_1",
		"object": "event",
		"api_version": "2023-10-16",
		"type": "checkout.session.completed",
		"data": {
			"object": {
				"id": "cs_test_1",
				"object": "checkout.session",
				"amount_total": 999,
				"metadata": {"userId": "test@example.com", "credits": "10"}
			}
		}
	}`)
}

func postWebhook(router *gin.Engine, payload []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/webhook/stripe", bytes.NewReader(payload))
	if signature != "" {
		req.Header.Set("Stripe-Signature", signature)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestWebhook_InvalidSignature(t *testing.T) {
	ledger := &recordingLedger{}
	router := setupWebhookRouter(ledger)

	payload := checkoutCompletedEvent()

	w := postWebhook(router, payload, signPayload(payload, "whsec_wrong_secret"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if ledger.calls != 0 {
		t.Fatal("ledger must not be touched on signature failure")
	}
}

func TestWebhook_MissingSignature(t *testing.T) {
	ledger := &recordingLedger{}
	router := setupWebhookRouter(ledger)

	if w := postWebhook(router, checkoutCompletedEvent(), ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if ledger.calls != 0 {
		t.Fatal("ledger must not be touched without a signature")
	}
}

func TestWebhook_CheckoutCompletedGrantsCredits(t *testing.T) {
	ledger := &recordingLedger{}
	router := setupWebhookRouter(ledger)

	payload := checkoutCompletedEvent()

	w := postWebhook(router, payload, signPayload(payload, webhookSecret))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]bool
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !resp["received"] {
		t.Error("expected {received: true}")
	}

	if ledger.calls != 1 {
		t.Fatalf("expected 1 ledger call, got %d", ledger.calls)
	}
	if ledger.userID != "test@example.com" || ledger.credits != 10 {
		t.Errorf("unexpected grant: user=%q credits=%d", ledger.userID, ledger.credits)
	}
}

func TestWebhook_OtherEventsAcknowledgedWithoutSideEffects(t *testing.T) {
	ledger := &recordingLedger{}
	router := setupWebhookRouter(ledger)

	payload := []byte(`{
		"id": "evt_test_2",
		"object": "event",
		"api_version": "2023-10-16",
		"type": "payment_intent.succeeded",
		"data": {"object": {"id": "pi_test_1", "object": "payment_intent"}}
	}`)

	w := postWebhook(router, payload, signPayload(payload, webhookSecret))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ledger.calls != 0 {
		t.Fatal("ledger must not be touched for non-checkout events")
	}
}
