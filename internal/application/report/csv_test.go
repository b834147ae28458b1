package report_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/expense-review-api/internal/application/report"
	"github.com/jhoicas/expense-review-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func ptrInt64(v int64) *int64    { return &v }
func ptrString(s string) *string { return &s }

// buildAggregate arma un agregado completo para el reporte.
func buildAggregate(id, userID int64, username, amount, description, date, status string,
	reviewer *int64, comment, reviewDate *string) entity.ExpenseWithUser {
	return entity.ExpenseWithUser{
		Expense: entity.Expense{
			ID:          id,
			UserID:      userID,
			Amount:      decimal.RequireFromString(amount),
			Description: description,
			Date:        date,
		},
		User: entity.User{ID: userID, Username: username, Role: entity.RoleEmployee},
		Approval: entity.Approval{
			ID:         id,
			ExpenseID:  id,
			Status:     status,
			Reviewer:   reviewer,
			Comment:    comment,
			ReviewDate: reviewDate,
		},
	}
}

// splitFields separa una fila CSV respetando campos entre comillas.
func splitFields(t *testing.T, row string) []string {
	t.Helper()
	var fields []string
	var b strings.Builder
	inQuotes := false
	for i := 0; i < len(row); i++ {
		ch := row[i]
		switch {
		case ch == '"':
			inQuotes = !inQuotes
			b.WriteByte(ch)
		case ch == ',' && !inQuotes:
			fields = append(fields, b.String())
			b.Reset()
		default:
			b.WriteByte(ch)
		}
	}
	fields = append(fields, b.String())
	return fields
}

// unescapeField invierte el escape CSV: quita las comillas envolventes y
// des-dobla las comillas interiores.
func unescapeField(s string) string {
	if !strings.HasPrefix(s, `"`) || !strings.HasSuffix(s, `"`) {
		return s
	}
	return strings.ReplaceAll(s[1:len(s)-1], `""`, `"`)
}

// ──────────────────────────────────────────────────────────────────────────────
// Estructura del reporte
// ──────────────────────────────────────────────────────────────────────────────

// Lista vacía: exactamente una línea, la cabecera, terminada en salto de línea.
func TestGenerate_ListaVacia_SoloCabecera(t *testing.T) {
	out := report.Generate(nil)

	assert.Equal(t, report.Header+"\n", out,
		"la lista vacía debe serializar a cabecera + salto de línea, nada más")

	out = report.Generate([]entity.ExpenseWithUser{})
	assert.Equal(t, report.Header+"\n", out)
}

func TestGenerate_CabeceraExacta(t *testing.T) {
	assert.Equal(t,
		"Expense ID,Employee,Amount,Description,Date,Status,Reviewer,Comment,Review Date",
		report.Header,
		"la cabecera es contrato byte a byte con herramientas externas")
}

// Caso de referencia: salida byte a byte para un agregado con comas en tres campos.
func TestGenerate_EjemploReferencia_ByteExacto(t *testing.T) {
	list := []entity.ExpenseWithUser{
		buildAggregate(1, 101, "Doe, John", "100.0", "Office supplies, paper, pens",
			"2024-01-15", "approved", ptrInt64(201), ptrString("Approved, looks good"), ptrString("2024-01-16")),
	}

	out := report.Generate(list)

	want := "Expense ID,Employee,Amount,Description,Date,Status,Reviewer,Comment,Review Date\n" +
		`1,"Doe, John",100.0,"Office supplies, paper, pens",2024-01-15,approved,201,"Approved, looks good",2024-01-16` + "\n"
	assert.Equal(t, want, out)
}

// Toda fila, incluida la última, termina en salto de línea.
func TestGenerate_TodaFilaTerminaEnSaltoDeLinea(t *testing.T) {
	list := []entity.ExpenseWithUser{
		buildAggregate(1, 1, "john.doe", "150.00", "Travel", "2025-11-15", "pending", nil, nil, nil),
		buildAggregate(2, 2, "jane.smith", "85.50", "Office Supplies", "2025-12-01", "pending", nil, nil, nil),
	}

	out := report.Generate(list)

	require.True(t, strings.HasSuffix(out, "\n"), "la última fila también termina en \\n")
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, 3, "cabecera + 2 filas de datos")
}

// Cada fila de datos tiene exactamente 9 campos aunque haya valores nulos.
func TestGenerate_NueveCamposPorFila(t *testing.T) {
	list := []entity.ExpenseWithUser{
		buildAggregate(1, 1, "john.doe", "100.50", "Travel", "2025-12-01", "pending", nil, nil, nil),
		buildAggregate(2, 2, "jane.smith", "250.75", "Office, Supplies", "2025-12-10", "approved",
			ptrInt64(3), ptrString("ok"), ptrString("2025-12-11 10:00:00")),
	}

	out := report.Generate(list)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Len(t, splitFields(t, line), 9, "fila: %s", line)
	}
}

// Una fila pendiente lleva 8 comas sin comillas (ningún campo necesita escape).
func TestGenerate_FilaPendiente_OchoComasCamposVacios(t *testing.T) {
	list := []entity.ExpenseWithUser{
		buildAggregate(2, 102, "jane.smith", "250.75", "Travel expenses", "2024-01-20", "pending", nil, nil, nil),
	}

	out := report.Generate(list)

	row := strings.Split(out, "\n")[1]
	assert.Equal(t, "2,jane.smith,250.75,Travel expenses,2024-01-20,pending,,,", row)
	assert.Equal(t, 8, strings.Count(row, ","))
	assert.NotContains(t, row, "null", "un valor ausente es campo vacío, nunca el texto null")
}

// ──────────────────────────────────────────────────────────────────────────────
// Escape por campo
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerate_EscapaComillasDoblandolas(t *testing.T) {
	list := []entity.ExpenseWithUser{
		buildAggregate(1, 101, `John "Johnny" Doe`, "100.0", `Client said "urgent"`,
			"2024-01-15", "approved", ptrInt64(201), ptrString(`Manager noted "exceptional"`), ptrString("2024-01-16")),
	}

	out := report.Generate(list)

	row := strings.Split(out, "\n")[1]
	assert.Contains(t, row, `"John ""Johnny"" Doe"`)
	assert.Contains(t, row, `"Client said ""urgent"""`)
	assert.Contains(t, row, `"Manager noted ""exceptional"""`)
}

func TestGenerate_SaltosDeLineaQuedanEntreComillas(t *testing.T) {
	list := []entity.ExpenseWithUser{
		buildAggregate(1, 101, "John Doe", "100.0", "Line 1\nLine 2\nLine 3",
			"2024-01-15", "approved", ptrInt64(201), ptrString("Comment line 1\nComment line 2"), ptrString("2024-01-16")),
	}

	out := report.Generate(list)

	assert.Contains(t, out, "\"Line 1\nLine 2\nLine 3\"")
	assert.Contains(t, out, "\"Comment line 1\nComment line 2\"")
}

// Valores de solo espacios se emiten tal cual, sin comillas.
func TestGenerate_SoloEspaciosVaVerbatim(t *testing.T) {
	list := []entity.ExpenseWithUser{
		buildAggregate(1, 101, "john.doe", "10.0", "   ", "2024-01-15", "pending", nil, nil, nil),
	}

	out := report.Generate(list)

	row := strings.Split(out, "\n")[1]
	assert.Equal(t, "1,john.doe,10.0,   ,2024-01-15,pending,,,", row)
}

// Round-trip: escapar y des-escapar reproduce el valor original exacto.
func TestGenerate_RoundTripDeCamposEscapados(t *testing.T) {
	values := []string{
		"Doe, John",
		`quote " inside`,
		"multi\nline\nvalue",
		`mix, of "all"` + "\nthings",
	}
	for _, v := range values {
		list := []entity.ExpenseWithUser{
			buildAggregate(7, 70, "u", "1.0", v, "2024-01-01", "pending", nil, nil, nil),
		}
		out := report.Generate(list)

		body := strings.TrimPrefix(out, report.Header+"\n")
		row := strings.TrimSuffix(body, "\n")
		fields := splitFields(t, row)
		require.Len(t, fields, 9)
		assert.Equal(t, v, unescapeField(fields[3]), "round-trip del valor %q", v)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Render del monto y determinismo
// ──────────────────────────────────────────────────────────────────────────────

// El monto es decimal estable: al menos un dígito fraccionario, sin separadores de miles.
func TestGenerate_FormatoDeMonto(t *testing.T) {
	cases := map[string]string{
		"100":     "100.0",
		"100.0":   "100.0",
		"150.00":  "150.0",
		"100.50":  "100.5",
		"250.75":  "250.75",
		"1234567": "1234567.0",
		"0":       "0.0",
	}
	for in, want := range cases {
		list := []entity.ExpenseWithUser{
			buildAggregate(1, 1, "u", in, "d", "2024-01-01", "pending", nil, nil, nil),
		}
		out := report.Generate(list)
		fields := splitFields(t, strings.Split(out, "\n")[1])
		assert.Equal(t, want, fields[2], "monto de entrada %q", in)
	}
}

// El serializador es idempotente: misma lista, salida byte-idéntica.
func TestGenerate_Idempotente(t *testing.T) {
	list := []entity.ExpenseWithUser{
		buildAggregate(1, 1, "john.doe", "150.00", "Travel - Conference", "2025-11-15", "approved",
			ptrInt64(3), ptrString("Good"), ptrString("2025-11-16 10:00:00")),
		buildAggregate(2, 1, "john.doe", "85.50", "Office Supplies", "2025-12-01", "pending", nil, nil, nil),
	}

	first := report.Generate(list)
	second := report.Generate(list)

	assert.Equal(t, first, second)
}

// El orden de entrada se preserva: el serializador no filtra ni reordena.
func TestGenerate_PreservaElOrdenDeEntrada(t *testing.T) {
	list := []entity.ExpenseWithUser{
		buildAggregate(5, 1, "john.doe", "120.00", "Software License", "2025-12-20", "pending", nil, nil, nil),
		buildAggregate(3, 2, "jane.smith", "300.00", "Travel - Client Meeting", "2025-12-10", "approved",
			ptrInt64(3), ptrString("Approved"), ptrString("2025-12-11 09:00:00")),
	}

	out := report.Generate(list)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "5,"))
	assert.True(t, strings.HasPrefix(lines[2], "3,"))
}
