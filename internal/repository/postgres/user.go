package postgres

import (
	"context"
	"fmt"
	"strings"

	"blogapi/internal/domain"
	"blogapi/internal/domain/models"
	"blogapi/internal/domain/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresUserRepository implements the UserRepository interface
type PostgresUserRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewUserRepository creates a new user repository
func NewUserRepository(config *RepositoryConfig) repositories.UserRepository {
	return &PostgresUserRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a new user. The unique constraints on username and email
// are the authoritative backstop for the service-level uniqueness checks;
// a violation here surfaces as a ConflictError naming the field.
func (r *PostgresUserRepository) Create(ctx context.Context, user *models.User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, username, email, first_name, last_name, password_hash, is_staff)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`, r.tables.Users)

	user.ID = uuid.New().String()
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.FirstName,
		user.LastName,
		user.PasswordHash,
		user.IsStaff,
	).Scan(&user.CreatedAt)

	if err != nil {
		if IsPgDuplicateError(err) {
			return conflictFromConstraint(err)
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *PostgresUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if !isValidID(id) {
		return nil, fmt.Errorf("user: %w", domain.ErrNotFound)
	}

	query := fmt.Sprintf(`
		SELECT id, username, email, first_name, last_name, password_hash, is_staff, created_at
		FROM %s
		WHERE id = $1
	`, r.tables.Users)

	return r.scanUser(ctx, query, id)
}

// GetByUsername retrieves a user by username
func (r *PostgresUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT id, username, email, first_name, last_name, password_hash, is_staff, created_at
		FROM %s
		WHERE username = $1
	`, r.tables.Users)

	return r.scanUser(ctx, query, username)
}

func (r *PostgresUserRepository) scanUser(ctx context.Context, query string, arg interface{}) (*models.User, error) {
	var user models.User
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.PasswordHash,
		&user.IsStaff,
		&user.CreatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("user: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

// Update persists email and name changes. Username, password hash and the
// staff flag are deliberately not in the SET list.
func (r *PostgresUserRepository) Update(ctx context.Context, user *models.User) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET email = $1, first_name = $2, last_name = $3
		WHERE id = $4
	`, r.tables.Users)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		user.Email,
		user.FirstName,
		user.LastName,
		user.ID,
	)

	if err != nil {
		if IsPgDuplicateError(err) {
			return conflictFromConstraint(err)
		}
		return fmt.Errorf("update user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", user.ID, domain.ErrNotFound)
	}

	return nil
}

// UsernameExists reports whether any user has the given username
func (r *PostgresUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE username = $1)`, r.tables.Users)

	var exists bool
	executor := GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("check username: %w", err)
	}
	return exists, nil
}

// EmailExists reports whether a user other than excludeUserID has the given email
func (r *PostgresUserRepository) EmailExists(ctx context.Context, email, excludeUserID string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE email = $1 AND ($2 = '' OR id::text <> $2))`, r.tables.Users)

	var exists bool
	executor := GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query, email, excludeUserID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return exists, nil
}

// conflictFromConstraint maps a unique violation to a ConflictError naming
// the conflicting field, based on the violated constraint's name.
func conflictFromConstraint(err error) error {
	constraint := PgConstraintName(err)
	switch {
	case strings.Contains(constraint, "username"):
		return &domain.ConflictError{
			Message:      "a user with this username already exists",
			ResourceType: "user",
			Field:        "username",
		}
	case strings.Contains(constraint, "email"):
		return &domain.ConflictError{
			Message:      "a user with this email already exists",
			ResourceType: "user",
			Field:        "email",
		}
	default:
		return &domain.ConflictError{
			Message:      "user already exists",
			ResourceType: "user",
		}
	}
}
