package dto

import (
	"github.com/jhoicas/expense-review-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ExpenseResponse datos del gasto dentro del agregado.
type ExpenseResponse struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"userId"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
}

// UserResponse datos públicos del empleado; el password nunca se expone.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// ApprovalResponse estado de la aprobación del gasto.
type ApprovalResponse struct {
	ID         int64   `json:"id"`
	ExpenseID  int64   `json:"expenseId"`
	Status     string  `json:"status"`
	Reviewer   *int64  `json:"reviewer"`
	Comment    *string `json:"comment"`
	ReviewDate *string `json:"reviewDate"`
}

// ExpenseWithUserResponse agregado gasto + empleado + aprobación.
type ExpenseWithUserResponse struct {
	Expense  ExpenseResponse  `json:"expense"`
	User     UserResponse     `json:"user"`
	Approval ApprovalResponse `json:"approval"`
}

// ExpenseListResponse sobre estándar para listados de agregados.
type ExpenseListResponse struct {
	Success bool                      `json:"success"`
	Count   int                       `json:"count"`
	Data    []ExpenseWithUserResponse `json:"data"`
}

// DecisionRequest cuerpo de approve/deny; el comentario es opcional.
type DecisionRequest struct {
	Comment string `json:"comment"`
}

// DecisionResponse resultado de approve/deny.
type DecisionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// FromAggregate convierte un agregado de dominio a su DTO.
func FromAggregate(ewu entity.ExpenseWithUser) ExpenseWithUserResponse {
	return ExpenseWithUserResponse{
		Expense: ExpenseResponse{
			ID:          ewu.Expense.ID,
			UserID:      ewu.Expense.UserID,
			Amount:      ewu.Expense.Amount,
			Description: ewu.Expense.Description,
			Date:        ewu.Expense.Date,
		},
		User: UserResponse{
			ID:       ewu.User.ID,
			Username: ewu.User.Username,
			Role:     ewu.User.Role,
		},
		Approval: ApprovalResponse{
			ID:         ewu.Approval.ID,
			ExpenseID:  ewu.Approval.ExpenseID,
			Status:     ewu.Approval.Status,
			Reviewer:   ewu.Approval.Reviewer,
			Comment:    ewu.Approval.Comment,
			ReviewDate: ewu.Approval.ReviewDate,
		},
	}
}

// NewExpenseListResponse arma el sobre de listado a partir de los agregados.
func NewExpenseListResponse(list []entity.ExpenseWithUser) ExpenseListResponse {
	items := make([]ExpenseWithUserResponse, 0, len(list))
	for _, ewu := range list {
		items = append(items, FromAggregate(ewu))
	}
	return ExpenseListResponse{Success: true, Count: len(items), Data: items}
}
