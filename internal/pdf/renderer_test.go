package pdf

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	ledongpdf "github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidpereyra2016/cv-generador/internal/cv"
)

// extractText pulls the plain text out of rendered PDF bytes so tests can
// assert on content instead of byte offsets.
func extractText(t *testing.T, data []byte) string {
	t.Helper()
	reader, err := ledongpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	textReader, err := reader.GetPlainText()
	require.NoError(t, err)
	text, err := io.ReadAll(textReader)
	require.NoError(t, err)
	return string(text)
}

// testPhotoBase64 builds a small valid PNG and returns it base64-encoded.
func testPhotoBase64(t *testing.T, withDataURI bool) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 120, 160))
	for x := 0; x < 120; x++ {
		for y := 0; y < 160; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	if withDataURI {
		return "data:image/png;base64," + encoded
	}
	return encoded
}

func TestRenderEndToEnd(t *testing.T) {
	sub := &cv.Submission{
		Nombre: "ana gomez",
		Email:  "a@x.com",
		Experiencia: []cv.Experience{
			{Empresa: "acme", Cargo: "dev", Periodo: "2020-2021", Descripcion: "built things"},
		},
		Educacion:    []cv.Education{},
		Habilidades:  []string{"go"},
		TemplateType: cv.TemplateBasico,
	}

	result, err := NewRenderer(nil).Render(sub)
	require.NoError(t, err)
	require.Empty(t, result.Warnings)
	require.True(t, bytes.HasPrefix(result.PDF, []byte("%PDF-")), "output must be a PDF document")

	text := extractText(t, result.PDF)
	assert.Contains(t, text, "Ana Gomez")
	assert.Contains(t, text, "a@x.com")
	assert.Contains(t, text, "Acme")
	assert.Contains(t, text, "2020-2021")
	assert.Contains(t, text, "built things")
	assert.Contains(t, text, "go")
	assert.Contains(t, text, "Experiencia Laboral")
	// Empty sections keep their headings.
	assert.Contains(t, text, "Habilidades")
}

func TestRenderSectionCountsAndOrder(t *testing.T) {
	sub := &cv.Submission{
		Nombre: "ana gomez",
		Email:  "a@x.com",
		Experiencia: []cv.Experience{
			{Empresa: "primera", Cargo: "dev", Periodo: "2018-2019"},
			{Empresa: "segunda", Cargo: "dev", Periodo: "2019-2020"},
			{Empresa: "tercera", Cargo: "dev", Periodo: "2020-2021"},
		},
		Educacion: []cv.Education{
			{Institucion: "uba", Titulo: "grado", Anio: "2017"},
			{Institucion: "utn", Titulo: "posgrado", Anio: "2022"},
		},
		TemplateType: cv.TemplateBasico,
	}

	result, err := NewRenderer(nil).Render(sub)
	require.NoError(t, err)

	text := extractText(t, result.PDF)
	for _, marker := range []string{"Primera", "Segunda", "Tercera", "Uba", "Utn"} {
		assert.Equal(t, 1, strings.Count(text, marker), "marker %q", marker)
	}

	// Input order is preserved in the output.
	assert.Less(t, strings.Index(text, "Primera"), strings.Index(text, "Segunda"))
	assert.Less(t, strings.Index(text, "Segunda"), strings.Index(text, "Tercera"))
	assert.Less(t, strings.Index(text, "Tercera"), strings.Index(text, "Uba"))
	assert.Less(t, strings.Index(text, "Uba"), strings.Index(text, "Utn"))
}

func TestRenderCorruptPhotoDegrades(t *testing.T) {
	sub := &cv.Submission{
		Nombre:       "ana gomez",
		Email:        "a@x.com",
		FotoPerfil:   "!!!not-base64!!!",
		TemplateType: cv.TemplateProfesional,
		Color:        ColorVerde,
	}

	result, err := NewRenderer(nil).Render(sub)
	require.NoError(t, err, "photo failures must never abort rendering")
	require.Len(t, result.Warnings, 1)
	assert.True(t, bytes.HasPrefix(result.PDF, []byte("%PDF-")))
	assert.Contains(t, extractText(t, result.PDF), "Ana Gomez")
}

func TestRenderWithValidPhoto(t *testing.T) {
	sub := &cv.Submission{
		Nombre:       "ana gomez",
		Email:        "a@x.com",
		FotoPerfil:   testPhotoBase64(t, true),
		TemplateType: cv.TemplateProfesional,
	}

	result, err := NewRenderer(nil).Render(sub)
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)
	assert.True(t, bytes.HasPrefix(result.PDF, []byte("%PDF-")))
}

func TestRenderPhotoIgnoredOnBasico(t *testing.T) {
	sub := &cv.Submission{
		Nombre:       "ana gomez",
		Email:        "a@x.com",
		FotoPerfil:   "!!!not-base64!!!",
		TemplateType: cv.TemplateBasico,
	}

	// The basic template never touches the photo, so a corrupt one cannot
	// even produce a warning.
	result, err := NewRenderer(nil).Render(sub)
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)
}
