package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/expense-review-api/internal/domain"
	"github.com/jhoicas/expense-review-api/internal/domain/repository"
)

var _ repository.ApprovalRepository = (*ApprovalRepo)(nil)

// ApprovalRepo implementación del puerto ApprovalRepository sobre PostgreSQL.
type ApprovalRepo struct {
	pool *pgxpool.Pool
}

// NewApprovalRepository construye el adaptador de aprobaciones.
func NewApprovalRepository(pool *pgxpool.Pool) *ApprovalRepo {
	return &ApprovalRepo{pool: pool}
}

// Decide escribe la decisión en una sola sentencia condicionada a que la
// aprobación siga pendiente. Dos Decide concurrentes sobre el mismo gasto:
// exactamente uno reporta true.
func (r *ApprovalRepo) Decide(ctx context.Context, expenseID int64, status string, reviewerID int64, comment *string, reviewDate string) (bool, error) {
	const query = `
		UPDATE approvals
		SET status = $2, reviewer = $3, comment = $4, review_date = $5
		WHERE expense_id = $1 AND status = 'pending'`
	tag, err := r.pool.Exec(ctx, query, expenseID, status, reviewerID, comment, reviewDate)
	if err != nil {
		return false, domain.NewRepositoryError("approvals.Decide", expenseID, err)
	}
	return tag.RowsAffected() == 1, nil
}
