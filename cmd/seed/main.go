// Command seed crea las tablas si no existen y carga el fixture de
// demostración: 3 usuarios (uno manager), 5 gastos entre noviembre y
// diciembre y aprobaciones en estados mixtos. Pensado para entornos de
// desarrollo; las inserciones son idempotentes (ON CONFLICT DO NOTHING).
package main

import (
	"context"
	"errors"

	"github.com/jhoicas/expense-review-api/internal/domain"
	"github.com/jhoicas/expense-review-api/internal/domain/entity"
	"github.com/jhoicas/expense-review-api/internal/infrastructure/postgres"
	"github.com/jhoicas/expense-review-api/pkg/config"
	"github.com/jhoicas/expense-review-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id       BIGINT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		role     TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS expenses (
		id          BIGINT PRIMARY KEY,
		user_id     BIGINT NOT NULL REFERENCES users (id),
		amount      NUMERIC(12,2) NOT NULL CHECK (amount >= 0),
		description TEXT NOT NULL,
		date        TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS approvals (
		id          BIGINT PRIMARY KEY,
		expense_id  BIGINT NOT NULL UNIQUE REFERENCES expenses (id),
		status      TEXT NOT NULL,
		reviewer    BIGINT REFERENCES users (id),
		comment     TEXT,
		review_date TEXT
	)`,
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			log.Fatal().Err(err).Msg("crear esquema")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("pass123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear password de demo")
	}

	userRepo := postgres.NewUserRepository(pool)
	users := []entity.User{
		{ID: 1, Username: "john.doe", Password: string(hash), Role: entity.RoleEmployee},
		{ID: 2, Username: "jane.smith", Password: string(hash), Role: entity.RoleEmployee},
		{ID: 3, Username: "manager.bob", Password: string(hash), Role: entity.RoleManager},
	}
	for i := range users {
		err := userRepo.Create(ctx, &users[i])
		// Re-ejecutar el seed no es error: el usuario ya existe.
		if err != nil && !errors.Is(err, domain.ErrUsernameTaken) {
			log.Fatal().Err(err).Str("username", users[i].Username).Msg("insertar usuario")
		}
	}

	expenses := [][]any{
		{int64(1), int64(1), "150.00", "Travel - Conference", "2025-11-15"},
		{int64(2), int64(1), "85.50", "Office Supplies", "2025-12-01"},
		{int64(3), int64(2), "300.00", "Travel - Client Meeting", "2025-12-10"},
		{int64(4), int64(2), "45.75", "Meals", "2025-12-15"},
		{int64(5), int64(1), "120.00", "Software License", "2025-12-20"},
	}
	for _, e := range expenses {
		if _, err := pool.Exec(ctx,
			`INSERT INTO expenses (id, user_id, amount, description, date) VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (id) DO NOTHING`, e...); err != nil {
			log.Fatal().Err(err).Msg("insertar gastos")
		}
	}

	approvals := [][]any{
		{int64(1), int64(1), "approved", int64(3), "Good", "2025-11-16 10:00:00"},
		{int64(2), int64(2), "pending", nil, nil, nil},
		{int64(3), int64(3), "approved", int64(3), "Approved", "2025-12-11 09:00:00"},
		{int64(4), int64(4), "denied", int64(3), "Too high", "2025-12-16 14:00:00"},
		{int64(5), int64(5), "pending", nil, nil, nil},
	}
	for _, a := range approvals {
		if _, err := pool.Exec(ctx,
			`INSERT INTO approvals (id, expense_id, status, reviewer, comment, review_date)
			 VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (id) DO NOTHING`, a...); err != nil {
			log.Fatal().Err(err).Msg("insertar aprobaciones")
		}
	}

	log.Info().Msg("esquema y fixture de demo listos")
}
