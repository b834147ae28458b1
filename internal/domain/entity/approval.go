package entity

// Estados válidos para Approval.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDenied   = "denied"
)

// Approval es la decisión (o la espera de decisión) sobre un gasto.
// Se crea junto con su Expense en estado pending y transiciona una sola
// vez a approved o denied. Invariante: Reviewer, Comment y ReviewDate
// son nil si y solo si Status == pending.
type Approval struct {
	ID         int64
	ExpenseID  int64
	Status     string
	Reviewer   *int64  // id del manager que decidió
	Comment    *string
	ReviewDate *string
}

// IsPending indica si la aprobación sigue a la espera de decisión.
func (a Approval) IsPending() bool {
	return a.Status == StatusPending
}
