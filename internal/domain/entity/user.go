package entity

// Roles válidos para User.
const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
)

// User representa un usuario del sistema (empleado que registra gastos
// o manager que los revisa). Se aprovisiona externamente y es inmutable
// una vez referenciado por una aprobación histórica.
type User struct {
	ID       int64
	Username string
	Password string // hash opaco, nunca se serializa ni aparece en reportes
	Role     string // employee, manager
}
