package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/davidpereyra2016/cv-generador/internal/api/middleware"
	"github.com/davidpereyra2016/cv-generador/internal/cv"
	"github.com/davidpereyra2016/cv-generador/internal/store"
)

// FormHandler persists in-flight form submissions so the hosted-checkout
// redirect can recover them after payment.
type FormHandler struct {
	store *store.Store
}

// NewFormHandler constructs a FormHandler.
func NewFormHandler(st *store.Store) *FormHandler {
	return &FormHandler{store: st}
}

// SaveFormData stores the submission and returns the generated form id,
// which the client round-trips through MercadoPago as external_reference.
func (h *FormHandler) SaveFormData(c *gin.Context) {
	var sub cv.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		BadRequest(c, err.Error())
		return
	}

	// template_type is free text on the wire; collapse it to a known
	// identifier before it reaches pricing, rendering or the success view.
	sub.TemplateType = cv.NormalizeTemplate(sub.TemplateType)

	id, err := h.store.Save(&sub)
	if err != nil {
		middleware.LoggerFromContext(c).Error("save form data failed", "error", err)
		Internal(c, "no se pudo guardar el formulario")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"form_id": id})
}
