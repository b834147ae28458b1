package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/expense-review-api/internal/application/report"
	"github.com/jhoicas/expense-review-api/internal/domain"
	"github.com/jhoicas/expense-review-api/internal/domain/entity"
	"github.com/jhoicas/expense-review-api/internal/domain/repository"
)

// Formatos de fecha: los filtros usan fecha calendario ISO; review_date
// guarda también la hora de la decisión.
const (
	dateLayout       = "2006-01-02"
	reviewDateLayout = "2006-01-02 15:04:05"
)

// ExpenseUseCase implementa la máquina de estados de aprobación y los
// pass-throughs validados hacia la capa de consultas. No re-verifica
// autorización: managerID es precondición, producido por un guard que
// ya validó rol de manager.
type ExpenseUseCase struct {
	expenses  repository.ExpenseRepository
	approvals repository.ApprovalRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(expenses repository.ExpenseRepository, approvals repository.ApprovalRepository) *ExpenseUseCase {
	return &ExpenseUseCase{expenses: expenses, approvals: approvals}
}

// Approve transiciona pending -> approved. Devuelve true si se actualizó
// exactamente una fila; false, sin error, si el gasto no existe (resultado
// esperado, no fallo del sistema). Si la aprobación ya salió de pending
// devuelve ErrAlreadyDecided: la doble transición se rechaza, no se
// sobreescribe en silencio.
func (uc *ExpenseUseCase) Approve(ctx context.Context, expenseID, managerID int64, comment string) (bool, error) {
	return uc.decide(ctx, expenseID, managerID, comment, entity.StatusApproved)
}

// Deny transiciona pending -> denied. Semántica simétrica a Approve.
func (uc *ExpenseUseCase) Deny(ctx context.Context, expenseID, managerID int64, comment string) (bool, error) {
	return uc.decide(ctx, expenseID, managerID, comment, entity.StatusDenied)
}

func (uc *ExpenseUseCase) decide(ctx context.Context, expenseID, managerID int64, comment, status string) (bool, error) {
	if expenseID <= 0 {
		return false, domain.ErrInvalidInput
	}
	reviewDate := time.Now().Format(reviewDateLayout)
	updated, err := uc.approvals.Decide(ctx, expenseID, status, managerID, nilIfEmpty(comment), reviewDate)
	if err != nil {
		return false, err
	}
	if updated {
		return true, nil
	}
	// Cero filas actualizadas: o el gasto no existe, o ya fue decidido.
	// La aprobación se crea junto con su gasto, así que la existencia del
	// gasto basta para distinguir los dos casos.
	expense, err := uc.expenses.FindByID(ctx, expenseID)
	if err != nil {
		return false, err
	}
	if expense == nil {
		return false, nil
	}
	return false, domain.ErrAlreadyDecided
}

// GetPendingExpenses lista los gastos pendientes, fecha descendente.
func (uc *ExpenseUseCase) GetPendingExpenses(ctx context.Context) ([]entity.ExpenseWithUser, error) {
	return uc.expenses.FindPendingWithUsers(ctx)
}

// GetAllExpenses lista todos los gastos, cualquier estado.
func (uc *ExpenseUseCase) GetAllExpenses(ctx context.Context) ([]entity.ExpenseWithUser, error) {
	return uc.expenses.FindAllWithUsers(ctx)
}

// GetExpensesByEmployee lista los gastos de un empleado. Id desconocido
// devuelve lista vacía; id no positivo es error de validación.
func (uc *ExpenseUseCase) GetExpensesByEmployee(ctx context.Context, employeeID int64) ([]entity.ExpenseWithUser, error) {
	if employeeID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	return uc.expenses.FindByUser(ctx, employeeID)
}

// GetExpensesByCategory filtra por subcadena de la descripción, sin
// distinguir mayúsculas. La categoría vacía o solo espacios se rechaza en
// validación en lugar de delegarla a la semántica de comodines del storage.
func (uc *ExpenseUseCase) GetExpensesByCategory(ctx context.Context, category string) ([]entity.ExpenseWithUser, error) {
	if strings.TrimSpace(category) == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.expenses.FindByCategory(ctx, category)
}

// GetExpensesByDateRange filtra por rango de fechas ISO inclusivo. Ambas
// fechas deben tener formato YYYY-MM-DD y start no puede ser posterior a end.
func (uc *ExpenseUseCase) GetExpensesByDateRange(ctx context.Context, start, end string) ([]entity.ExpenseWithUser, error) {
	if !validDate(start) || !validDate(end) || start > end {
		return nil, domain.ErrInvalidInput
	}
	return uc.expenses.FindByDateRange(ctx, start, end)
}

// GenerateReport serializa la lista ordenada de agregados al CSV del reporte.
func (uc *ExpenseUseCase) GenerateReport(list []entity.ExpenseWithUser) string {
	return report.Generate(list)
}

func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
