// Package report serializa listas de agregados a CSV. Es una función pura
// de su entrada: sin filtrado, sin I/O, seguro para uso concurrente.
// Otras herramientas consumen este formato byte a byte; cualquier cambio
// aquí rompe contratos externos.
package report

import (
	"strconv"
	"strings"

	"github.com/jhoicas/expense-review-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Header fila de cabecera del reporte, siempre presente aunque no haya datos.
const Header = "Expense ID,Employee,Amount,Description,Date,Status,Reviewer,Comment,Review Date"

// Generate convierte la lista ordenada de agregados en un único blob CSV.
// Cada fila, incluida la última, termina en salto de línea.
func Generate(list []entity.ExpenseWithUser) string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteByte('\n')
	for _, ewu := range list {
		writeRow(&b, ewu)
	}
	return b.String()
}

// Las 9 columnas fijas, en orden: Expense ID, Employee (username), Amount,
// Description, Date, Status, Reviewer (id o vacío), Comment (o vacío),
// Review Date (o vacío).
func writeRow(b *strings.Builder, ewu entity.ExpenseWithUser) {
	fields := [9]string{
		strconv.FormatInt(ewu.Expense.ID, 10),
		ewu.User.Username,
		formatAmount(ewu.Expense.Amount),
		ewu.Expense.Description,
		ewu.Expense.Date,
		ewu.Approval.Status,
		reviewerField(ewu.Approval.Reviewer),
		stringOrEmpty(ewu.Approval.Comment),
		stringOrEmpty(ewu.Approval.ReviewDate),
	}
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escapeField(f))
	}
	b.WriteByte('\n')
}

// escapeField aplica el escape por campo, de forma independiente: si el valor
// contiene coma, comilla o salto de línea se envuelve en comillas y se doblan
// las comillas interiores; si no, se emite tal cual (incluido solo-espacios).
func escapeField(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// formatAmount renderiza el monto como decimal estable: sin separadores de
// miles y con al menos un dígito fraccionario (100 -> "100.0", 100.50 -> "100.5").
func formatAmount(d decimal.Decimal) string {
	if d.IsInteger() {
		return d.StringFixed(1)
	}
	return d.String()
}

// Un valor ausente es campo vacío, nunca el texto literal "null".
func reviewerField(reviewer *int64) string {
	if reviewer == nil {
		return ""
	}
	return strconv.FormatInt(*reviewer, 10)
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
