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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	const query = `
		INSERT INTO users (id, username, password, role)
		VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(ctx, query, user.ID, user.Username, user.Password, user.Role)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return domain.NewRepositoryError("users.Create", user.Username, err)
	}
	return nil
}

// FindByUsername obtiene un usuario por username. Devuelve nil, nil si no existe.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	const query = `
		SELECT id, username, password, role
		FROM users WHERE username = $1`
	return r.scanOne(ctx, "users.FindByUsername", username, query, username)
}

func (r *UserRepo) scanOne(ctx context.Context, op string, key any, query string, args ...any) (*entity.User, error) {
	var u entity.User
	err := r.pool.QueryRow(ctx, query, args...).Scan(&u.ID, &u.Username, &u.Password, &u.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewRepositoryError(op, key, err)
	}
	return &u, nil
}
