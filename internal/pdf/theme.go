package pdf

import "github.com/davidpereyra2016/cv-generador/internal/cv"

// RGB is a 0-255 color triple.
type RGB struct {
	R, G, B int
}

// Theme is the fixed color set applied to a rendered document: the header
// band fill, the body text color and the accent used for headings and rules.
type Theme struct {
	Header RGB
	Body   RGB
	Accent RGB
}

// Color variant identifiers for the professional template.
const (
	ColorAzul    = "azul"
	ColorVerde   = "verde"
	ColorBurdeos = "burdeos"
	ColorGris    = "gris"
)

var basicoTheme = Theme{
	Header: RGB{52, 58, 64},
	Body:   RGB{33, 37, 41},
	Accent: RGB{52, 58, 64},
}

var profesionalThemes = map[string]Theme{
	ColorAzul: {
		Header: RGB{21, 67, 96},
		Body:   RGB{33, 37, 41},
		Accent: RGB{31, 97, 141},
	},
	ColorVerde: {
		Header: RGB{20, 90, 50},
		Body:   RGB{33, 37, 41},
		Accent: RGB{30, 132, 73},
	},
	ColorBurdeos: {
		Header: RGB{100, 30, 22},
		Body:   RGB{33, 37, 41},
		Accent: RGB{146, 43, 33},
	},
	ColorGris: {
		Header: RGB{66, 73, 73},
		Body:   RGB{33, 37, 41},
		Accent: RGB{97, 106, 107},
	},
}

// LookupTheme selects the color triple for a (template, color) pair. The
// basic template has a single theme; unrecognized professional colors fall
// back to azul, and unrecognized templates fall back to basico.
func LookupTheme(templateType, color string) Theme {
	if templateType != cv.TemplateProfesional {
		return basicoTheme
	}
	if theme, ok := profesionalThemes[color]; ok {
		return theme
	}
	return profesionalThemes[ColorAzul]
}
