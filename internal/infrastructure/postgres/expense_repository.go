package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/expense-review-api/internal/domain"
	"github.com/jhoicas/expense-review-api/internal/domain/entity"
	"github.com/jhoicas/expense-review-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// Lista fija de columnas del join gasto + empleado + aprobación. El mapeo
// fila -> agregado es un Scan estático contra esta lista, en este orden.
const expenseWithUserSelect = `
	SELECT e.id, e.user_id, e.amount, e.description, e.date,
	       u.username, u.role,
	       a.id AS approval_id, a.status, a.reviewer, a.comment, a.review_date
	FROM expenses e
	JOIN users u     ON u.id = e.user_id
	JOIN approvals a ON a.expense_id = e.id`

const expenseWithUserOrder = ` ORDER BY e.date DESC, e.id`

// ExpenseRepo implementación del puerto ExpenseRepository sobre PostgreSQL.
type ExpenseRepo struct {
	pool *pgxpool.Pool
}

// NewExpenseRepository construye el adaptador de lectura de gastos.
func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepo {
	return &ExpenseRepo{pool: pool}
}

// FindByID obtiene un gasto por ID. Devuelve nil, nil si no existe.
func (r *ExpenseRepo) FindByID(ctx context.Context, expenseID int64) (*entity.Expense, error) {
	const query = `
		SELECT id, user_id, amount, description, date
		FROM expenses WHERE id = $1`
	var e entity.Expense
	err := r.pool.QueryRow(ctx, query, expenseID).Scan(
		&e.ID, &e.UserID, &e.Amount, &e.Description, &e.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewRepositoryError("expenses.FindByID", expenseID, err)
	}
	return &e, nil
}

// FindPendingWithUsers lista los gastos pendientes con empleado y aprobación,
// ordenados por fecha del gasto descendente.
func (r *ExpenseRepo) FindPendingWithUsers(ctx context.Context) ([]entity.ExpenseWithUser, error) {
	query := expenseWithUserSelect + ` WHERE a.status = 'pending'` + expenseWithUserOrder
	return r.queryAggregates(ctx, "expenses.FindPendingWithUsers", nil, query)
}

// FindAllWithUsers lista todos los gastos con empleado y aprobación, cualquier estado.
func (r *ExpenseRepo) FindAllWithUsers(ctx context.Context) ([]entity.ExpenseWithUser, error) {
	query := expenseWithUserSelect + expenseWithUserOrder
	return r.queryAggregates(ctx, "expenses.FindAllWithUsers", nil, query)
}

// FindByUser lista los gastos de un empleado; lista vacía para id desconocido.
func (r *ExpenseRepo) FindByUser(ctx context.Context, userID int64) ([]entity.ExpenseWithUser, error) {
	query := expenseWithUserSelect + ` WHERE e.user_id = $1` + expenseWithUserOrder
	return r.queryAggregates(ctx, "expenses.FindByUser", userID, query, userID)
}

// FindByCategory hace match de subcadena case-insensitive sobre la descripción.
// El texto siempre viaja como parámetro con comodines, nunca interpolado en el SQL.
func (r *ExpenseRepo) FindByCategory(ctx context.Context, text string) ([]entity.ExpenseWithUser, error) {
	query := expenseWithUserSelect + ` WHERE LOWER(e.description) LIKE LOWER($1)` + expenseWithUserOrder
	pattern := "%" + text + "%"
	return r.queryAggregates(ctx, "expenses.FindByCategory", text, query, pattern)
}

// FindByDateRange filtra por fecha ISO con ambos extremos inclusivos.
// Con el formato fijo YYYY-MM-DD la comparación lexicográfica es suficiente.
func (r *ExpenseRepo) FindByDateRange(ctx context.Context, start, end string) ([]entity.ExpenseWithUser, error) {
	query := expenseWithUserSelect + ` WHERE e.date BETWEEN $1 AND $2` + expenseWithUserOrder
	return r.queryAggregates(ctx, "expenses.FindByDateRange", start+".."+end, query, start, end)
}

// queryAggregates ejecuta una consulta del join y reconstruye un agregado por fila.
func (r *ExpenseRepo) queryAggregates(ctx context.Context, op string, key any, query string, args ...any) ([]entity.ExpenseWithUser, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.NewRepositoryError(op, key, err)
	}
	defer rows.Close()

	list := make([]entity.ExpenseWithUser, 0)
	for rows.Next() {
		ewu, err := scanExpenseWithUser(rows)
		if err != nil {
			return nil, domain.NewRepositoryError(op, key, err)
		}
		list = append(list, ewu)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewRepositoryError(op, key, err)
	}
	return list, nil
}

// scanExpenseWithUser decodifica una fila del join contra la lista fija de columnas.
// Una fila con alguna parte faltante del join es una condición de integridad de
// datos: el Scan falla y el error sube, no se intenta reparar aquí.
func scanExpenseWithUser(rows pgx.Rows) (entity.ExpenseWithUser, error) {
	var ewu entity.ExpenseWithUser
	err := rows.Scan(
		&ewu.Expense.ID, &ewu.Expense.UserID, &ewu.Expense.Amount,
		&ewu.Expense.Description, &ewu.Expense.Date,
		&ewu.User.Username, &ewu.User.Role,
		&ewu.Approval.ID, &ewu.Approval.Status,
		&ewu.Approval.Reviewer, &ewu.Approval.Comment, &ewu.Approval.ReviewDate,
	)
	if err != nil {
		return entity.ExpenseWithUser{}, err
	}
	ewu.User.ID = ewu.Expense.UserID
	ewu.Approval.ExpenseID = ewu.Expense.ID
	return ewu, nil
}
