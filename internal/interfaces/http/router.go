package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/expense-review-api/internal/application/auth"
	"github.com/jhoicas/expense-review-api/internal/application/usecase"
	"github.com/jhoicas/expense-review-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ExpenseUC *usecase.ExpenseUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API. Todo lo que muta o lee datos
// sensibles pasa por el guard: token válido + rol manager, antes de
// llegar al motor de aprobaciones.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas: solo managers revisan y exportan gastos
	manager := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleManager))

	expenses := manager.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Get("/", expenseHandler.GetAll)
	expenses.Get("/pending", expenseHandler.GetPending)
	expenses.Get("/employee/:employeeId", expenseHandler.GetByEmployee)
	expenses.Post("/:expenseId/approve", expenseHandler.Approve)
	expenses.Post("/:expenseId/deny", expenseHandler.Deny)

	reports := manager.Group("/reports/expenses")
	reportHandler := NewReportHandler(deps.ExpenseUC)
	reports.Get("/csv", reportHandler.AllExpenses)
	reports.Get("/pending/csv", reportHandler.PendingExpenses)
	reports.Get("/employee/:employeeId/csv", reportHandler.EmployeeExpenses)
	reports.Get("/category/:category/csv", reportHandler.CategoryExpenses)
	reports.Get("/daterange/csv", reportHandler.DateRangeExpenses)
}
