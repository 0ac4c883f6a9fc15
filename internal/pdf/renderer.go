// Package pdf renders a submitted CV into PDF bytes. The layout is the
// imperative gofpdf walk of the section descriptors built in template.go.
package pdf

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/davidpereyra2016/cv-generador/internal/cv"
	"github.com/davidpereyra2016/cv-generador/internal/errcode"
	"github.com/davidpereyra2016/cv-generador/internal/metrics"
)

// Page geometry in millimeters (A4 portrait).
const (
	pageWidth    = 210.0
	marginX      = 12.0
	contentWidth = pageWidth - 2*marginX

	bandHeightBasico      = 36.0
	bandHeightProfesional = 46.0

	photoBoxMM = 30.0
)

// Warning describes a non-fatal degradation that happened while rendering.
type Warning struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Result carries the rendered document and any degradations.
type Result struct {
	PDF      []byte
	Warnings []Warning
}

// Renderer produces CV documents. Safe for concurrent use; each render
// builds its own gofpdf instance.
type Renderer struct {
	logger *slog.Logger
}

// NewRenderer constructs a Renderer.
func NewRenderer(logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{logger: logger}
}

// Render lays out the submission with the theme selected by its
// (template, color) pair. Photo problems degrade to a warning; any other
// failure aborts and no partial document is returned.
func (r *Renderer) Render(sub *cv.Submission) (*Result, error) {
	start := time.Now()
	theme := LookupTheme(sub.TemplateType, sub.Color)
	header := BuildHeader(sub)
	sections := BuildSections(sub)

	doc := gofpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetTitle(tr("Currículum - "+header.Name), false)
	doc.SetMargins(marginX, marginX, marginX)
	doc.SetAutoPageBreak(true, 16)
	doc.AddPage()

	result := &Result{}
	r.drawBand(doc, tr, sub, header, theme, result)

	doc.SetTextColor(theme.Body.R, theme.Body.G, theme.Body.B)
	for _, section := range sections {
		r.drawSection(doc, tr, section, theme)
	}

	if doc.Err() {
		return nil, fmt.Errorf("render cv document: %w", doc.Error())
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("write cv document: %w", err)
	}

	metrics.DocumentRendered(cv.NormalizeTemplate(sub.TemplateType), time.Since(start))
	result.PDF = buf.Bytes()
	return result, nil
}

// drawBand paints the full-width header rectangle with the name, the
// stacked secondary fields and the one-line primary contact block. The
// profile photo goes top-right, professional template only.
func (r *Renderer) drawBand(doc *gofpdf.Fpdf, tr func(string) string, sub *cv.Submission, header HeaderBlock, theme Theme, result *Result) {
	bandHeight := bandHeightBasico
	if sub.TemplateType == cv.TemplateProfesional {
		bandHeight = bandHeightProfesional
	}

	doc.SetFillColor(theme.Header.R, theme.Header.G, theme.Header.B)
	doc.Rect(0, 0, pageWidth, bandHeight, "F")

	textWidth := contentWidth
	if sub.TemplateType == cv.TemplateProfesional && sub.FotoPerfil != "" {
		if width := r.placePhoto(doc, sub.FotoPerfil, bandHeight, result); width > 0 {
			textWidth -= width + 6
		}
	}

	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Arial", "B", 24)
	doc.SetXY(marginX, 9)
	doc.CellFormat(textWidth, 11, tr(header.Name), "", 1, "L", false, 0, "")

	doc.SetFont("Arial", "", 10)
	for _, line := range header.Secondary {
		doc.SetX(marginX)
		doc.CellFormat(textWidth, 5, tr(line), "", 1, "L", false, 0, "")
	}

	if header.PrimaryLine != "" {
		doc.SetXY(marginX, bandHeight-9)
		doc.CellFormat(textWidth, 5, tr(header.PrimaryLine), "", 1, "L", false, 0, "")
	}

	doc.SetY(bandHeight + 8)
}

// placePhoto embeds the profile photo and returns its rendered width in mm.
// Strictly best-effort: any decode or placement problem is logged, recorded
// as a warning and rendering continues without the photo.
func (r *Renderer) placePhoto(doc *gofpdf.Fpdf, encoded string, bandHeight float64, result *Result) float64 {
	jpegBytes, ratio, err := decodePhoto(encoded)
	if err != nil {
		r.skipPhoto(result, err)
		return 0
	}

	height := photoBoxMM
	width := height * ratio
	if width > photoBoxMM {
		width = photoBoxMM
		height = width / ratio
	}

	opts := gofpdf.ImageOptions{ImageType: "JPG"}
	doc.RegisterImageOptionsReader("foto_perfil", opts, bytes.NewReader(jpegBytes))
	if doc.Err() {
		r.skipPhoto(result, doc.Error())
		doc.ClearError()
		return 0
	}

	x := pageWidth - marginX - width
	y := (bandHeight - height) / 2
	doc.ImageOptions("foto_perfil", x, y, width, height, false, opts, 0, "")
	if doc.Err() {
		r.skipPhoto(result, doc.Error())
		doc.ClearError()
		return 0
	}
	return width
}

func (r *Renderer) skipPhoto(result *Result, err error) {
	r.logger.Warn("profile photo skipped", slog.Any("error", err))
	metrics.PhotoSkipped()
	result.Warnings = append(result.Warnings, Warning{
		Code:    errcode.PhotoInvalid,
		Message: "la foto de perfil no pudo procesarse y fue omitida",
	})
}

// drawSection renders a heading with its horizontal rule, then the entries
// in input order. Empty sections still get their heading.
func (r *Renderer) drawSection(doc *gofpdf.Fpdf, tr func(string) string, section Section, theme Theme) {
	doc.SetFont("Arial", "B", 14)
	doc.SetTextColor(theme.Accent.R, theme.Accent.G, theme.Accent.B)
	doc.CellFormat(contentWidth, 8, tr(section.Title), "", 1, "L", false, 0, "")

	y := doc.GetY()
	doc.SetDrawColor(theme.Accent.R, theme.Accent.G, theme.Accent.B)
	doc.SetLineWidth(0.4)
	doc.Line(marginX, y, pageWidth-marginX, y)
	doc.Ln(3)

	doc.SetTextColor(theme.Body.R, theme.Body.G, theme.Body.B)
	for _, entry := range section.Entries {
		if section.Bulleted {
			doc.SetFont("Arial", "", 11)
			doc.CellFormat(contentWidth, 6, tr("• "+entry.Left), "", 1, "L", false, 0, "")
			continue
		}

		doc.SetFont("Arial", "B", 11)
		doc.CellFormat(contentWidth*0.65, 6, tr(entry.Left), "", 0, "L", false, 0, "")
		doc.SetFont("Arial", "", 11)
		doc.CellFormat(contentWidth*0.35, 6, tr(entry.Right), "", 1, "R", false, 0, "")

		if entry.Sub != "" {
			doc.SetFont("Arial", "I", 11)
			doc.CellFormat(contentWidth, 6, tr(entry.Sub), "", 1, "L", false, 0, "")
		}
		if entry.Body != "" {
			doc.SetFont("Arial", "", 10)
			doc.MultiCell(contentWidth, 5, tr(entry.Body), "", "L", false)
		}
		doc.Ln(2)
	}

	doc.Ln(4)
}
