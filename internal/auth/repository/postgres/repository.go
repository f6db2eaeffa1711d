package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/angusyg/mean-stack/internal/auth/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxIface is the slice of pgxpool.Pool the repository needs. Kept minimal
// so pgxmock can stand in during tests.
type PgxIface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db PgxIface
}

func NewPostgresRepository(db PgxIface) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, login, password_hash, roles, refresh_token, settings, created_at, updated_at`

// GetByLogin fetches a user by login. Returns (nil, nil) when no user
// matches; errors are store faults only.
func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE login = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, login)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by login: %w", err)
	}

	return user, nil
}

// UpdateRefreshToken overwrites the stored refresh token for a user and
// returns the updated record. A single UPDATE, atomic per row: concurrent
// logins race with last-write-wins but never corrupt the record.
func (r *PostgresRepository) UpdateRefreshToken(ctx context.Context, userID, refreshToken string) (*domain.User, error) {
	query := `
		UPDATE users
		SET refresh_token = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + userColumns + `;
	`
	row := r.db.QueryRow(ctx, query, userID, refreshToken)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update refresh token: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, login, password_hash, roles, refresh_token, settings, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, user.ID, user.Login, user.PasswordHash, user.Roles, user.RefreshToken, user.Settings, user.CreatedAt, user.UpdatedAt)

	return err
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Login, &user.PasswordHash, &user.Roles,
		&user.RefreshToken, &user.Settings, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
