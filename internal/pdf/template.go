package pdf

import (
	"strings"

	"github.com/davidpereyra2016/cv-generador/internal/cv"
)

// The layout is data-driven: a Submission is first projected onto a header
// block plus a fixed list of section descriptors, and only then walked by
// the gofpdf interpreter in renderer.go. Ordering and formatting rules live
// here, where they can be tested without a PDF library.

// HeaderBlock is the content of the top band.
type HeaderBlock struct {
	// Name rendered large and bold on the band.
	Name string
	// Secondary fields stacked under the name (DNI, birth date, age).
	Secondary []string
	// PrimaryLine joins email/phone/address on one line with a separator.
	PrimaryLine string
}

// Entry is one row of a section: a left/right pair sharing a baseline, an
// optional sub-line and optional wrapped body text.
type Entry struct {
	Left  string
	Right string
	Sub   string
	Body  string
}

// Section is a heading plus its entries in input order. Bulleted sections
// (skills) render entries as a simple list.
type Section struct {
	Title    string
	Bulleted bool
	Entries  []Entry
}

// BuildHeader projects the personal-information fields. The capitalization
// policy applies to the name only; contact values pass through verbatim.
func BuildHeader(sub *cv.Submission) HeaderBlock {
	var secondary []string
	if v := strings.TrimSpace(sub.DNI); v != "" {
		secondary = append(secondary, "DNI: "+v)
	}
	if v := strings.TrimSpace(sub.FechaNacimiento); v != "" {
		secondary = append(secondary, "Fecha de nacimiento: "+v)
	}
	if v := strings.TrimSpace(sub.Edad); v != "" {
		secondary = append(secondary, "Edad: "+v)
	}

	var primary []string
	for _, v := range []string{sub.Email, sub.Telefono, sub.Direccion} {
		if v = strings.TrimSpace(v); v != "" {
			primary = append(primary, v)
		}
	}

	return HeaderBlock{
		Name:        cv.CapitalizeWords(sub.Nombre),
		Secondary:   secondary,
		PrimaryLine: strings.Join(primary, " | "),
	}
}

// BuildSections projects the three repeating sections in their fixed order.
// Sections with zero entries keep their heading; suppression is never
// applied.
func BuildSections(sub *cv.Submission) []Section {
	experiencia := Section{Title: "Experiencia Laboral"}
	for _, exp := range sub.Experiencia {
		experiencia.Entries = append(experiencia.Entries, Entry{
			Left:  cv.CapitalizeWords(exp.Empresa),
			Right: strings.TrimSpace(exp.Periodo),
			Sub:   cv.CapitalizeWords(exp.Cargo),
			Body:  strings.TrimSpace(exp.Descripcion),
		})
	}

	educacion := Section{Title: "Educación"}
	for _, edu := range sub.Educacion {
		educacion.Entries = append(educacion.Entries, Entry{
			Left:  cv.CapitalizeWords(edu.Institucion),
			Right: strings.TrimSpace(edu.Anio),
			Sub:   cv.CapitalizeWords(edu.Titulo),
		})
	}

	habilidades := Section{Title: "Habilidades", Bulleted: true}
	for _, skill := range sub.Habilidades {
		if skill = strings.TrimSpace(skill); skill != "" {
			habilidades.Entries = append(habilidades.Entries, Entry{Left: skill})
		}
	}

	return []Section{experiencia, educacion, habilidades}
}
