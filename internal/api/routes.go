package api

import (
	"github.com/gin-gonic/gin"

	"github.com/davidpereyra2016/cv-generador/internal/api/middleware"
	"github.com/davidpereyra2016/cv-generador/internal/config"
	"github.com/davidpereyra2016/cv-generador/internal/pdf"
	"github.com/davidpereyra2016/cv-generador/internal/store"
)

// RegisterRoutes wires the CV-builder endpoints. Paths match the original
// form client, without a version prefix.
func RegisterRoutes(
	router *gin.Engine,
	cfg *config.Config,
	gateway PaymentGateway,
	st *store.Store,
	renderer *pdf.Renderer,
	verifier middleware.SignatureVerifier,
) {
	preferenceHandler := NewPreferenceHandler(gateway, cfg.Pricing, cfg.API.PublicBaseURL)
	formHandler := NewFormHandler(st)
	callbackHandler := NewCallbackHandler(gateway, st)
	pdfHandler := NewPDFHandler(st, renderer)

	router.POST("/create_preference", preferenceHandler.CreatePreference)
	router.GET("/get_mp_public_key", preferenceHandler.GetPublicKey)

	router.POST("/save_form_data", formHandler.SaveFormData)

	router.GET("/success", callbackHandler.Success)
	router.GET("/failure", callbackHandler.Failure)
	router.GET("/pending", callbackHandler.Pending)
	router.POST("/webhook", middleware.WebhookSignatureMiddleware(verifier), callbackHandler.Webhook)

	router.POST("/generate_pdf", pdfHandler.GeneratePDF)
	router.POST("/download_pdf", pdfHandler.DownloadPDF)
}
