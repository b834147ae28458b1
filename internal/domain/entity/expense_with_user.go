package entity

// ExpenseWithUser es la vista compuesta de solo lectura que une un
// gasto, el empleado que lo registró y su aprobación. La arma la capa
// de consultas a partir de un join de tres tablas; nunca se persiste.
type ExpenseWithUser struct {
	Expense  Expense
	User     User
	Approval Approval
}
