package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/collabsphere/internal/domain"
)

// TeamRepository реализует repository.TeamRepository для PostgreSQL
type TeamRepository struct {
	db *pgxpool.Pool
}

// NewTeamRepository создает новый экземпляр TeamRepository
func NewTeamRepository(db *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{db: db}
}

const teamColumns = `
	id::text, name, description, idea,
	leader_name, leader_avatar, leader_university, leader_major, leader_id,
	members, max_members, required_skills, current_skills,
	category, stage, commitment, duration, featured, tags,
	member_ids, member_names, created_at
`

func scanTeam(row pgx.Row) (*domain.Team, error) {
	var t domain.Team
	err := row.Scan(
		&t.ID, &t.Name, &t.Description, &t.Idea,
		&t.Leader.Name, &t.Leader.Avatar, &t.Leader.University, &t.Leader.Major, &t.LeaderID,
		&t.Members, &t.MaxMembers, &t.RequiredSkills, &t.CurrentSkills,
		&t.Category, &t.Stage, &t.Commitment, &t.Duration, &t.Featured, &t.Tags,
		&t.MemberIDs, &t.MemberNames, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List возвращает все команды, новые первыми
func (r *TeamRepository) List(ctx context.Context) ([]*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []*domain.Team
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}

// GetByID получает команду по ID
func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE id::text = $1`

	team, err := scanTeam(r.db.QueryRow(ctx, query, teamID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, err
	}

	return team, nil
}

// Create создает команду и возвращает присвоенный ID
func (r *TeamRepository) Create(ctx context.Context, team *domain.Team) (string, error) {
	query := `
		INSERT INTO teams (
			name, description, idea,
			leader_name, leader_avatar, leader_university, leader_major, leader_id,
			members, max_members, required_skills, current_skills,
			category, stage, commitment, duration, featured, tags,
			member_ids, member_names
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		        $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING id::text
	`

	requiredSkills := emptyIfNil(team.RequiredSkills)
	currentSkills := emptyIfNil(team.CurrentSkills)
	tags := emptyIfNil(team.Tags)
	memberIDs := emptyIfNil(team.MemberIDs)
	memberNames := emptyIfNil(team.MemberNames)

	var id string
	err := r.db.QueryRow(ctx, query,
		team.Name, team.Description, team.Idea,
		team.Leader.Name, team.Leader.Avatar, team.Leader.University, team.Leader.Major, team.LeaderID,
		team.Members, team.MaxMembers, requiredSkills, currentSkills,
		team.Category, team.Stage, team.Commitment, team.Duration, team.Featured, tags,
		memberIDs, memberNames,
	).Scan(&id)
	if err != nil {
		return "", err
	}

	return id, nil
}

// Join добавляет пользователя в команду.
// Проверка вместимости, списка участников и лидера выполняется одним
// условным UPDATE: конкурентные вступления не могут превысить лимит.
func (r *TeamRepository) Join(ctx context.Context, teamID, userID, userName string) error {
	query := `
		UPDATE teams
		SET members = members + 1,
		    member_ids = array_append(member_ids, $2),
		    member_names = array_append(member_names, $3)
		WHERE id::text = $1
		  AND members < max_members
		  AND NOT ($2 = ANY(member_ids))
		  AND leader_id <> $2
	`

	result, err := r.db.Exec(ctx, query, teamID, userID, userName)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return r.classifyJoinFailure(ctx, teamID, userID)
	}

	return nil
}

// classifyJoinFailure определяет причину отказа условного UPDATE
func (r *TeamRepository) classifyJoinFailure(ctx context.Context, teamID, userID string) error {
	query := `
		SELECT members >= max_members,
		       $2 = ANY(member_ids) OR leader_id = $2
		FROM teams
		WHERE id::text = $1
	`

	var full, joined bool
	err := r.db.QueryRow(ctx, query, teamID, userID).Scan(&full, &joined)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrTeamNotFound
		}
		return err
	}

	if joined {
		return domain.ErrAlreadyJoined
	}

	return domain.ErrTeamFull
}

// HasJoined проверяет членство пользователя (участник или лидер)
func (r *TeamRepository) HasJoined(ctx context.Context, teamID, userID string) (bool, error) {
	query := `
		SELECT $2 = ANY(member_ids) OR leader_id = $2
		FROM teams
		WHERE id::text = $1
	`

	var joined bool
	err := r.db.QueryRow(ctx, query, teamID, userID).Scan(&joined)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return joined, nil
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
