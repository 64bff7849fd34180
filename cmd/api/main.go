package main

import (
	"context"
	"log"
	"os"
	"os/exec"

	"github.com/Harshi-R/MenuGenV2/internal/billing"
	"github.com/Harshi-R/MenuGenV2/internal/imagegen"
	"github.com/Harshi-R/MenuGenV2/internal/menu"
	"github.com/Harshi-R/MenuGenV2/internal/ocr"
	"github.com/Harshi-R/MenuGenV2/internal/router"
	"github.com/Harshi-R/MenuGenV2/internal/storage"

	"github.com/joho/godotenv"
	"github.com/stripe/stripe-go/v76"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"OPENAI_API_KEY",
		"STRIPE_SECRET_KEY",
		"STRIPE_WEBHOOK_SECRET",
		"APP_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing env var: %s", k)
		}
	}

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	// ───────────────────────── OCR ─────────────────────────
	var ocrClient ocr.Client
	switch os.Getenv("OCR_PROVIDER") {
	case "tesseract":
		mustHaveBinary("tesseract")
		ocrClient = ocr.NewTesseract()
	default:
		if os.Getenv("OCR_API_KEY") == "" {
			log.Fatal("Missing env var: OCR_API_KEY (or set OCR_PROVIDER=tesseract)")
		}
		ocrClient = ocr.NewRemoteClient(os.Getenv("OCR_API_KEY"))
	}

	// ───────────────────────── STORAGE (OPTIONAL) ─────────────────────────
	var archive menu.Archive
	if storage.Configured() {
		r2Client, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("R2 init failed:", err)
		}
		archive = r2Client
		log.Println("R2 archive enabled")
	}

	// ───────────────────────── SERVICES ─────────────────────────
	menuService := menu.NewService(ocrClient, imagegen.NewOpenAIClient(), archive)
	billingService := billing.NewService(billing.StripeSessions{}, os.Getenv("APP_BASE_URL"))

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.NewRouter(router.Deps{
		Menu:    menu.NewHandler(menuService),
		Billing: billing.NewHandler(billingService),
		Webhook: billing.NewWebhookHandler(os.Getenv("STRIPE_WEBHOOK_SECRET"), billing.LogLedger{}),
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("API running at http://localhost:8000")
	r.Run(":8000")
}

// --------------------------------------------------
func mustHaveBinary(name string) {
	if _, err := exec.LookPath(name); err != nil {
		log.Fatalf("Required binary missing: %s", name)
	}
}
