package repository

import (
	"context"
)

// ApprovalRepository define el puerto de escritura de aprobaciones (DIP).
type ApprovalRepository interface {
	// Decide marca la aprobación del gasto como approved/denied con un solo
	// UPDATE condicionado a status = 'pending' (compare-and-set a nivel de
	// fila). Devuelve true si se actualizó exactamente una fila.
	Decide(ctx context.Context, expenseID int64, status string, reviewerID int64, comment *string, reviewDate string) (bool, error)
}
