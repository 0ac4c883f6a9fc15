package api

import (
	"fmt"
	"html"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Minimal server-rendered views for the checkout redirect targets. The rest
// of the UI lives in the form client; these pages only close the payment
// loop in the user's browser.

const successViewTemplate = `<!DOCTYPE html>
<html lang="es">
<head><meta charset="utf-8"><title>Pago aprobado</title></head>
<body>
  <h1>¡Pago aprobado!</h1>
  <p>Tu currículum está listo para descargar.</p>
  <form method="post" action="/download_pdf?form_id=%s">
    <button type="submit">Descargar CV (%s)</button>
  </form>
</body>
</html>`

const notFoundViewTemplate = `<!DOCTYPE html>
<html lang="es">
<head><meta charset="utf-8"><title>Datos no encontrados</title></head>
<body>
  <h1>No encontramos los datos de tu formulario</h1>
  <p>El pago fue recibido pero la referencia del formulario no existe o ya fue utilizada.
  Por favor, volvé a completar el formulario; el pago no se cobrará dos veces desde esta página.</p>
</body>
</html>`

const failureView = `<!DOCTYPE html>
<html lang="es">
<head><meta charset="utf-8"><title>Pago rechazado</title></head>
<body><h1>El pago falló</h1><p>Podés intentar nuevamente desde el formulario.</p></body>
</html>`

const pendingView = `<!DOCTYPE html>
<html lang="es">
<head><meta charset="utf-8"><title>Pago pendiente</title></head>
<body><h1>El pago está pendiente</h1><p>Te avisaremos por email cuando se acredite.</p></body>
</html>`

func renderHTML(c *gin.Context, status int, body string) {
	c.Data(status, "text/html; charset=utf-8", []byte(body))
}

// renderSuccessView interpolates stored submission values into HTML; both
// come from client input, so they are escaped.
func renderSuccessView(c *gin.Context, formID, templateType string) {
	renderHTML(c, http.StatusOK, fmt.Sprintf(successViewTemplate,
		html.EscapeString(formID),
		html.EscapeString(templateType),
	))
}
