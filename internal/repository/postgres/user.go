package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/collabsphere/internal/domain"
)

// UserRepository реализует repository.UserRepository для PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository создает новый экземпляр UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `
	id::text, name, email, avatar, university, major, year,
	skills, experience, projects, rating, bio, availability, created_at
`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Avatar, &u.University, &u.Major, &u.Year,
		&u.Skills, &u.Experience, &u.Projects, &u.Rating, &u.Bio, &u.Availability, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// List возвращает все профили, новые первыми
func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// GetByID получает профиль по ID
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id::text = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

// GetByEmail получает профиль по email. Берется первое совпадение:
// уникальность email на этом уровне не гарантируется.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 ORDER BY created_at LIMIT 1`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

// Create создает профиль и возвращает присвоенный ID
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (string, error) {
	query := `
		INSERT INTO users (
			name, email, avatar, university, major, year,
			skills, experience, projects, rating, bio, availability
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id::text
	`

	skills := user.Skills
	if skills == nil {
		skills = []string{}
	}

	var id string
	err := r.db.QueryRow(ctx, query,
		user.Name, user.Email, user.Avatar, user.University, user.Major, user.Year,
		skills, user.Experience, user.Projects, user.Rating, user.Bio, user.Availability,
	).Scan(&id)
	if err != nil {
		return "", err
	}

	return id, nil
}

// Update частично обновляет профиль. NULL-параметры оставляют поле без изменений.
func (r *UserRepository) Update(ctx context.Context, userID string, update *domain.UserUpdate) error {
	query := `
		UPDATE users
		SET name         = COALESCE($2, name),
		    avatar       = COALESCE($3, avatar),
		    university   = COALESCE($4, university),
		    major        = COALESCE($5, major),
		    year         = COALESCE($6, year),
		    skills       = COALESCE($7, skills),
		    experience   = COALESCE($8, experience),
		    projects     = COALESCE($9, projects),
		    rating       = COALESCE($10, rating),
		    bio          = COALESCE($11, bio),
		    availability = COALESCE($12, availability),
		    updated_at   = NOW()
		WHERE id::text = $1
	`

	result, err := r.db.Exec(ctx, query, userID,
		update.Name, update.Avatar, update.University, update.Major, update.Year,
		update.Skills, update.Experience, update.Projects, update.Rating,
		update.Bio, update.Availability,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}
