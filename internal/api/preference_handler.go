package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/davidpereyra2016/cv-generador/internal/api/middleware"
	"github.com/davidpereyra2016/cv-generador/internal/config"
	"github.com/davidpereyra2016/cv-generador/internal/mercadopago"
)

// checkoutItemTitle is the single line item sold per checkout.
const checkoutItemTitle = "Generador de CV"

// PreferenceHandler creates MercadoPago checkout preferences and exposes
// the public key for the client-side widget.
type PreferenceHandler struct {
	gateway       PaymentGateway
	pricing       config.PricingConfig
	publicBaseURL string
}

// NewPreferenceHandler constructs a PreferenceHandler.
func NewPreferenceHandler(gateway PaymentGateway, pricing config.PricingConfig, publicBaseURL string) *PreferenceHandler {
	return &PreferenceHandler{
		gateway:       gateway,
		pricing:       pricing,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

type createPreferenceRequest struct {
	TemplateType      string `json:"template_type" binding:"required"`
	ExternalReference string `json:"external_reference"`
}

// CreatePreference registers a checkout intent for the chosen template tier
// and returns the provider id plus the hosted checkout URL. Provider errors
// surface verbatim with a gateway status; there is no retry.
func (h *PreferenceHandler) CreatePreference(c *gin.Context) {
	var req createPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	pref, err := h.gateway.CreatePreference(c.Request.Context(), mercadopago.PreferenceRequest{
		Title:             checkoutItemTitle,
		UnitPrice:         h.pricing.PriceFor(req.TemplateType),
		CurrencyID:        h.pricing.CurrencyID,
		ExternalReference: req.ExternalReference,
		BackURLs: mercadopago.BackURLs{
			Success: h.publicBaseURL + "/success",
			Failure: h.publicBaseURL + "/failure",
			Pending: h.publicBaseURL + "/pending",
		},
		NotificationURL: h.publicBaseURL + "/webhook",
	})
	if err != nil {
		middleware.LoggerFromContext(c).Error("create preference failed", "error", err)
		BadGateway(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         pref.ID,
		"init_point": pref.InitPoint,
	})
}

// GetPublicKey returns the provider public key used to initialize the
// client-side checkout widget.
func (h *PreferenceHandler) GetPublicKey(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"public_key": h.gateway.PublicKey()})
}
