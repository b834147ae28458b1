package repository

import (
	"context"

	"github.com/jhoicas/expense-review-api/internal/domain/entity"
)

// ExpenseRepository define el puerto de lectura de gastos (DIP).
// Los finders que devuelven agregados reconstruyen exactamente un
// ExpenseWithUser por fila del join; un filtro sin coincidencias
// devuelve lista vacía, nunca error.
type ExpenseRepository interface {
	// FindByID devuelve nil, nil si el gasto no existe.
	FindByID(ctx context.Context, expenseID int64) (*entity.Expense, error)
	FindPendingWithUsers(ctx context.Context) ([]entity.ExpenseWithUser, error)
	FindAllWithUsers(ctx context.Context) ([]entity.ExpenseWithUser, error)
	FindByUser(ctx context.Context, userID int64) ([]entity.ExpenseWithUser, error)
	// FindByCategory hace match de subcadena case-insensitive sobre la descripción.
	FindByCategory(ctx context.Context, text string) ([]entity.ExpenseWithUser, error)
	// FindByDateRange filtra por fecha ISO con ambos extremos inclusivos.
	FindByDateRange(ctx context.Context, start, end string) ([]entity.ExpenseWithUser, error)
}
