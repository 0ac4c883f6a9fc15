package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/davidpereyra2016/cv-generador/internal/api/middleware"
	"github.com/davidpereyra2016/cv-generador/internal/cv"
	"github.com/davidpereyra2016/cv-generador/internal/errcode"
	"github.com/davidpereyra2016/cv-generador/internal/pdf"
	"github.com/davidpereyra2016/cv-generador/internal/store"
)

// PDFHandler renders submissions into downloadable documents.
type PDFHandler struct {
	store    *store.Store
	renderer *pdf.Renderer
}

// NewPDFHandler constructs a PDFHandler.
func NewPDFHandler(st *store.Store, renderer *pdf.Renderer) *PDFHandler {
	return &PDFHandler{store: st, renderer: renderer}
}

type generatePDFRequest struct {
	CVData *cv.Submission `json:"cv_data"`
	FormID string         `json:"form_id"`
}

// GeneratePDF renders an inline submission and returns the document as an
// attachment. Used by pre-payment preview clients.
func (h *PDFHandler) GeneratePDF(c *gin.Context) {
	var req generatePDFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	if req.CVData == nil {
		BadRequest(c, "Datos incompletos")
		return
	}
	if strings.TrimSpace(req.CVData.Nombre) == "" || strings.TrimSpace(req.CVData.Email) == "" {
		BadRequest(c, "Datos incompletos")
		return
	}

	h.render(c, req.CVData)
}

// DownloadPDF renders the stored submission referenced by form_id (query
// parameter or JSON body) and consumes it: the file is deleted best-effort
// once the document has been delivered.
func (h *PDFHandler) DownloadPDF(c *gin.Context) {
	formID := strings.TrimSpace(c.Query("form_id"))
	if formID == "" {
		var req generatePDFRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			formID = strings.TrimSpace(req.FormID)
		}
	}
	if formID == "" {
		BadRequest(c, "form_id requerido")
		return
	}

	sub, err := h.store.Load(formID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.LoggerFromContext(c).Warn("stored submission missing",
				slog.String("form_id", formID),
				slog.Int("code", errcode.ResourceMissing),
			)
			NotFound(c, "datos no encontrados")
			return
		}
		middleware.LoggerFromContext(c).Error("load stored submission failed",
			slog.String("form_id", formID),
			slog.Int("code", errcode.SystemError),
			slog.Any("error", err),
		)
		Internal(c, "no se pudo leer el formulario")
		return
	}

	if h.render(c, sub) {
		h.store.Delete(formID)
	}
}

// render produces the document and writes the attachment response. Reports
// whether delivery succeeded.
func (h *PDFHandler) render(c *gin.Context, sub *cv.Submission) bool {
	log := middleware.LoggerFromContext(c)

	start := time.Now()
	result, err := h.renderer.Render(sub)
	if err != nil {
		log.Error("render cv failed",
			slog.Int("code", errcode.SystemError),
			slog.Any("error", err),
		)
		Internal(c, "no se pudo generar el PDF")
		return false
	}

	log.Info("cv rendered",
		slog.String("template", sub.TemplateType),
		slog.Int("bytes", len(result.PDF)),
		slog.Int("warnings", len(result.Warnings)),
		slog.Duration("elapsed", time.Since(start)),
	)

	filename := fmt.Sprintf("cv_%s.pdf", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", `attachment; filename=`+filename)
	c.Data(http.StatusOK, "application/pdf", result.PDF)
	return true
}
