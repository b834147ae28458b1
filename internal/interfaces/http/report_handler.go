package http

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/expense-review-api/internal/application/dto"
	"github.com/jhoicas/expense-review-api/internal/application/usecase"
	"github.com/jhoicas/expense-review-api/internal/domain"
	"github.com/jhoicas/expense-review-api/internal/domain/entity"
)

// Caracteres admitidos en nombres de archivo de descarga; el resto se
// reemplaza por guion bajo.
var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// ReportHandler expone los reportes CSV filtrados (protegido, solo manager).
// El contenido lo produce el serializador; aquí solo se mapean filtros,
// media type y nombre de archivo.
type ReportHandler struct {
	uc *usecase.ExpenseUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ExpenseUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// AllExpenses godoc
// @Summary      Reporte CSV de todos los gastos
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/reports/expenses/csv [get]
func (h *ReportHandler) AllExpenses(c *fiber.Ctx) error {
	return h.respond(c, "all_expenses_report.csv", func(ctx context.Context) ([]entity.ExpenseWithUser, error) {
		return h.uc.GetAllExpenses(ctx)
	})
}

// PendingExpenses godoc
// @Summary      Reporte CSV de gastos pendientes
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/reports/expenses/pending/csv [get]
func (h *ReportHandler) PendingExpenses(c *fiber.Ctx) error {
	return h.respond(c, "pending_expenses_report.csv", func(ctx context.Context) ([]entity.ExpenseWithUser, error) {
		return h.uc.GetPendingExpenses(ctx)
	})
}

// EmployeeExpenses godoc
// @Summary      Reporte CSV de los gastos de un empleado
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Param        employeeId  path  int  true  "ID del empleado"
// @Success      200  {string}  string
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/expenses/employee/{employeeId}/csv [get]
func (h *ReportHandler) EmployeeExpenses(c *fiber.Ctx) error {
	employeeID, err := c.ParamsInt("employeeId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "employeeId debe ser un entero"})
	}
	filename := fmt.Sprintf("employee_%d_expenses_report.csv", employeeID)
	return h.respond(c, filename, func(ctx context.Context) ([]entity.ExpenseWithUser, error) {
		return h.uc.GetExpensesByEmployee(ctx, int64(employeeID))
	})
}

// CategoryExpenses godoc
// @Summary      Reporte CSV filtrado por categoría (subcadena de la descripción)
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Param        category  path  string  true  "Texto a buscar en la descripción"
// @Success      200  {string}  string
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/expenses/category/{category}/csv [get]
func (h *ReportHandler) CategoryExpenses(c *fiber.Ctx) error {
	category, err := url.PathUnescape(c.Params("category"))
	if err != nil {
		category = c.Params("category")
	}
	filename := "category_" + sanitizeFilename(category) + "_expenses_report.csv"
	return h.respond(c, filename, func(ctx context.Context) ([]entity.ExpenseWithUser, error) {
		return h.uc.GetExpensesByCategory(ctx, category)
	})
}

// DateRangeExpenses godoc
// @Summary      Reporte CSV filtrado por rango de fechas inclusivo
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Param        startDate  query  string  true  "Fecha inicial YYYY-MM-DD"
// @Param        endDate    query  string  true  "Fecha final YYYY-MM-DD"
// @Success      200  {string}  string
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/expenses/daterange/csv [get]
func (h *ReportHandler) DateRangeExpenses(c *fiber.Ctx) error {
	start := c.Query("startDate")
	end := c.Query("endDate")
	if start == "" || end == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "startDate y endDate son requeridos"})
	}
	filename := fmt.Sprintf("daterange_%s_%s_expenses_report.csv", sanitizeFilename(start), sanitizeFilename(end))
	return h.respond(c, filename, func(ctx context.Context) ([]entity.ExpenseWithUser, error) {
		return h.uc.GetExpensesByDateRange(ctx, start, end)
	})
}

// respond resuelve el filtro, serializa y arma la respuesta de descarga.
func (h *ReportHandler) respond(c *fiber.Ctx, filename string, find func(ctx context.Context) ([]entity.ExpenseWithUser, error)) error {
	list, err := find(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtro inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	csv := h.uc.GenerateReport(list)
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.SendString(csv)
}

func sanitizeFilename(s string) string {
	return unsafeFilenameChars.ReplaceAllString(s, "_")
}
