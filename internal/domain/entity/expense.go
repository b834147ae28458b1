package entity

import "github.com/shopspring/decimal"

// Expense es un gasto registrado por un empleado. De solo lectura en
// este servicio: la creación ocurre en la aplicación de empleados.
type Expense struct {
	ID          int64
	UserID      int64 // empleado que registró el gasto
	Amount      decimal.Decimal
	Description string
	Date        string // fecha calendario en formato ISO (YYYY-MM-DD)
}
