package http_test

// Helpers y fakes compartidos por los tests del paquete: app de Fiber con el
// router real montado sobre repositorios en memoria, y emisión de tokens de
// prueba. Los tests ejercen la cadena completa guard -> caso de uso -> DTO.

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/expense-review-api/internal/application/auth"
	"github.com/jhoicas/expense-review-api/internal/application/usecase"
	"github.com/jhoicas/expense-review-api/internal/domain/entity"
	httpx "github.com/jhoicas/expense-review-api/internal/interfaces/http"
	"github.com/jhoicas/expense-review-api/pkg/jwt"
)

const testSecret = "secret-de-test-con-largo-suficiente"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de repositorios
// ──────────────────────────────────────────────────────────────────────────────

type fakeExpenseRepo struct {
	result []entity.ExpenseWithUser
	byID   *entity.Expense
	err    error
}

func (f *fakeExpenseRepo) FindByID(_ context.Context, _ int64) (*entity.Expense, error) {
	return f.byID, f.err
}
func (f *fakeExpenseRepo) FindPendingWithUsers(_ context.Context) ([]entity.ExpenseWithUser, error) {
	return f.result, f.err
}
func (f *fakeExpenseRepo) FindAllWithUsers(_ context.Context) ([]entity.ExpenseWithUser, error) {
	return f.result, f.err
}
func (f *fakeExpenseRepo) FindByUser(_ context.Context, _ int64) ([]entity.ExpenseWithUser, error) {
	return f.result, f.err
}
func (f *fakeExpenseRepo) FindByCategory(_ context.Context, _ string) ([]entity.ExpenseWithUser, error) {
	return f.result, f.err
}
func (f *fakeExpenseRepo) FindByDateRange(_ context.Context, _, _ string) ([]entity.ExpenseWithUser, error) {
	return f.result, f.err
}

type fakeApprovalRepo struct {
	decideOK  bool
	decideErr error
}

func (f *fakeApprovalRepo) Decide(_ context.Context, _ int64, _ string, _ int64, _ *string, _ string) (bool, error) {
	return f.decideOK, f.decideErr
}

type fakeUserRepo struct {
	user *entity.User
	err  error
}

func (f *fakeUserRepo) Create(_ context.Context, _ *entity.User) error { return nil }
func (f *fakeUserRepo) FindByUsername(_ context.Context, _ string) (*entity.User, error) {
	return f.user, f.err
}

// ──────────────────────────────────────────────────────────────────────────────
// Construcción de la app bajo test
// ──────────────────────────────────────────────────────────────────────────────

type testDeps struct {
	expenses  *fakeExpenseRepo
	approvals *fakeApprovalRepo
	users     *fakeUserRepo
}

func newTestApp(deps testDeps) *fiber.App {
	if deps.expenses == nil {
		deps.expenses = &fakeExpenseRepo{}
	}
	if deps.approvals == nil {
		deps.approvals = &fakeApprovalRepo{}
	}
	if deps.users == nil {
		deps.users = &fakeUserRepo{}
	}
	app := fiber.New()
	httpx.Router(app, httpx.RouterDeps{
		ExpenseUC: usecase.NewExpenseUseCase(deps.expenses, deps.approvals),
		AuthUC: auth.NewAuthUseCase(deps.users, auth.JWTConfig{
			Secret:     testSecret,
			ExpMinutes: 60,
			Issuer:     "expense-review-api",
		}),
		JWTSecret: testSecret,
	})
	return app
}

func managerToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.Generate(testSecret, 3, entity.RoleManager, "expense-review-api", 60)
	require.NoError(t, err)
	return token
}

func employeeToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.Generate(testSecret, 1, entity.RoleEmployee, "expense-review-api", 60)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, method, target, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, target, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func decodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func sampleAggregates() []entity.ExpenseWithUser {
	reviewer := int64(3)
	comment := "Good"
	reviewDate := "2025-11-16 10:00:00"
	return []entity.ExpenseWithUser{
		{
			Expense: entity.Expense{ID: 1, UserID: 1, Amount: decimal.RequireFromString("150.00"), Description: "Travel - Conference", Date: "2025-11-15"},
			User:    entity.User{ID: 1, Username: "john.doe", Role: entity.RoleEmployee},
			Approval: entity.Approval{
				ID: 1, ExpenseID: 1, Status: entity.StatusApproved,
				Reviewer: &reviewer, Comment: &comment, ReviewDate: &reviewDate,
			},
		},
		{
			Expense:  entity.Expense{ID: 2, UserID: 2, Amount: decimal.RequireFromString("85.50"), Description: "Office Supplies", Date: "2025-12-01"},
			User:     entity.User{ID: 2, Username: "jane.smith", Role: entity.RoleEmployee},
			Approval: entity.Approval{ID: 2, ExpenseID: 2, Status: entity.StatusPending},
		},
	}
}
