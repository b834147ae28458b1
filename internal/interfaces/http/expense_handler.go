package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/expense-review-api/internal/application/dto"
	"github.com/jhoicas/expense-review-api/internal/application/usecase"
	"github.com/jhoicas/expense-review-api/internal/domain"
)

// ExpenseHandler maneja las peticiones HTTP de revisión de gastos (protegido).
type ExpenseHandler struct {
	uc *usecase.ExpenseUseCase
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *usecase.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// GetPending godoc
// @Summary      Listar gastos pendientes de revisión
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ExpenseListResponse
// @Router       /api/expenses/pending [get]
func (h *ExpenseHandler) GetPending(c *fiber.Ctx) error {
	list, err := h.uc.GetPendingExpenses(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.NewExpenseListResponse(list))
}

// GetAll godoc
// @Summary      Listar todos los gastos
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ExpenseListResponse
// @Router       /api/expenses [get]
func (h *ExpenseHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.uc.GetAllExpenses(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.NewExpenseListResponse(list))
}

// GetByEmployee godoc
// @Summary      Listar gastos de un empleado
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Param        employeeId  path  int  true  "ID del empleado"
// @Success      200  {object}  dto.ExpenseListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/expenses/employee/{employeeId} [get]
func (h *ExpenseHandler) GetByEmployee(c *fiber.Ctx) error {
	employeeID, err := c.ParamsInt("employeeId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "employeeId debe ser un entero"})
	}
	list, err := h.uc.GetExpensesByEmployee(c.Context(), int64(employeeID))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "employeeId debe ser positivo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.NewExpenseListResponse(list))
}

// Approve godoc
// @Summary      Aprobar un gasto pendiente
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        expenseId  path  int  true  "ID del gasto"
// @Param        body  body  dto.DecisionRequest  false  "Comentario opcional"
// @Success      200  {object}  dto.DecisionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/expenses/{expenseId}/approve [post]
func (h *ExpenseHandler) Approve(c *fiber.Ctx) error {
	return h.decide(c, "approved", h.uc.Approve)
}

// Deny godoc
// @Summary      Rechazar un gasto pendiente
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        expenseId  path  int  true  "ID del gasto"
// @Param        body  body  dto.DecisionRequest  false  "Comentario opcional"
// @Success      200  {object}  dto.DecisionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/expenses/{expenseId}/deny [post]
func (h *ExpenseHandler) Deny(c *fiber.Ctx) error {
	return h.decide(c, "denied", h.uc.Deny)
}

type decideFunc func(ctx context.Context, expenseID, managerID int64, comment string) (bool, error)

func (h *ExpenseHandler) decide(c *fiber.Ctx, verb string, fn decideFunc) error {
	expenseID, err := c.ParamsInt("expenseId")
	if err != nil || expenseID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "expenseId debe ser un entero positivo"})
	}
	var in dto.DecisionRequest
	// Cuerpo opcional: un body vacío equivale a decisión sin comentario.
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	managerID := GetUserID(c)
	ok, err := fn(c.Context(), int64(expenseID), managerID, in.Comment)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyDecided) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_DECIDED", Message: "la aprobación ya fue decidida"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "expenseId inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "gasto no encontrado"})
	}
	return c.JSON(dto.DecisionResponse{Success: true, Message: "expense " + verb})
}
