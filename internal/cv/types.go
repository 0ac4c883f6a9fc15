package cv

// Template identifiers accepted on the wire. Unknown values render with the
// basic theme.
const (
	TemplateBasico      = "basico"
	TemplateProfesional = "profesional"
)

// NormalizeTemplate collapses a wire template identifier to one of the two
// known constants, mapping anything else to TemplateBasico.
func NormalizeTemplate(templateType string) string {
	if templateType == TemplateProfesional {
		return TemplateProfesional
	}
	return TemplateBasico
}

// Submission is the full CV record posted by the form client. Field names
// follow the Spanish wire format the front end has always used.
type Submission struct {
	Nombre          string       `json:"nombre" binding:"required"`
	Email           string       `json:"email" binding:"required"`
	Telefono        string       `json:"telefono"`
	Direccion       string       `json:"direccion"`
	DNI             string       `json:"dni"`
	FechaNacimiento string       `json:"fecha_nacimiento"`
	Edad            string       `json:"edad"`
	Experiencia     []Experience `json:"experiencia"`
	Educacion       []Education  `json:"educacion"`
	Habilidades     []string     `json:"habilidades"`
	// FotoPerfil carries an optional base64-encoded profile photo, with or
	// without a data-URI prefix. Only the professional template renders it.
	FotoPerfil   string `json:"foto_perfil,omitempty"`
	TemplateType string `json:"template_type"`
	Color        string `json:"color,omitempty"`
}

// Experience is one work-history entry. Periodo is free text, not a
// structured date range.
type Experience struct {
	Empresa     string `json:"empresa"`
	Cargo       string `json:"cargo"`
	Periodo     string `json:"periodo"`
	Descripcion string `json:"descripcion"`
}

// Education is one education entry.
type Education struct {
	Institucion string `json:"institucion"`
	Titulo      string `json:"titulo"`
	Anio        string `json:"anio"`
}
