package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hisarandre/P5-yoga-app/internal/model"
)

type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func (p *Postgres) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	row := p.pool.QueryRow(ctx, `
		INSERT INTO users (email, first_name, last_name, admin, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		RETURNING id, created_at, updated_at
	`, user.Email, user.FirstName, user.LastName, user.Admin, user.PasswordHash)
	if err := row.Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return model.User{}, mapError(err)
	}
	return user, nil
}

func (p *Postgres) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	row := p.pool.QueryRow(ctx, `
		SELECT id, email, first_name, last_name, admin, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
	`, email)
	return scanUser(row)
}

func (p *Postgres) GetUserByID(ctx context.Context, id int64) (model.User, error) {
	row := p.pool.QueryRow(ctx, `
		SELECT id, email, first_name, last_name, admin, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1
	`, id)
	return scanUser(row)
}

func (p *Postgres) DeleteUser(ctx context.Context, id int64) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) CreateTeacher(ctx context.Context, teacher model.Teacher) (model.Teacher, error) {
	row := p.pool.QueryRow(ctx, `
		INSERT INTO teachers (first_name, last_name, created_at, updated_at)
		VALUES ($1, $2, now(), now())
		RETURNING id, created_at, updated_at
	`, teacher.FirstName, teacher.LastName)
	if err := row.Scan(&teacher.ID, &teacher.CreatedAt, &teacher.UpdatedAt); err != nil {
		return model.Teacher{}, mapError(err)
	}
	return teacher, nil
}

func (p *Postgres) ListTeachers(ctx context.Context) ([]model.Teacher, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT id, first_name, last_name, created_at, updated_at
		FROM teachers
		ORDER BY id
	`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	teachers := make([]model.Teacher, 0)
	for rows.Next() {
		var teacher model.Teacher
		if err := rows.Scan(&teacher.ID, &teacher.FirstName, &teacher.LastName, &teacher.CreatedAt, &teacher.UpdatedAt); err != nil {
			return nil, mapError(err)
		}
		teachers = append(teachers, teacher)
	}
	return teachers, rows.Err()
}

func (p *Postgres) GetTeacher(ctx context.Context, id int64) (model.Teacher, error) {
	var teacher model.Teacher
	row := p.pool.QueryRow(ctx, `
		SELECT id, first_name, last_name, created_at, updated_at
		FROM teachers
		WHERE id = $1
	`, id)
	if err := row.Scan(&teacher.ID, &teacher.FirstName, &teacher.LastName, &teacher.CreatedAt, &teacher.UpdatedAt); err != nil {
		return model.Teacher{}, mapError(err)
	}
	return teacher, nil
}

func (p *Postgres) CreateSession(ctx context.Context, session model.Session) (model.Session, error) {
	row := p.pool.QueryRow(ctx, `
		INSERT INTO sessions (name, description, date, teacher_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		RETURNING id, created_at, updated_at
	`, session.Name, session.Description, session.Date, session.TeacherID)
	if err := row.Scan(&session.ID, &session.CreatedAt, &session.UpdatedAt); err != nil {
		return model.Session{}, mapError(err)
	}
	session.Users = []int64{}
	return session, nil
}

func (p *Postgres) ListSessions(ctx context.Context) ([]model.Session, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT id, name, description, date, teacher_id, created_at, updated_at
		FROM sessions
		ORDER BY id
	`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	sessions := make([]model.Session, 0)
	for rows.Next() {
		var session model.Session
		if err := rows.Scan(&session.ID, &session.Name, &session.Description, &session.Date, &session.TeacherID, &session.CreatedAt, &session.UpdatedAt); err != nil {
			return nil, mapError(err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	for i := range sessions {
		users, err := p.attendees(ctx, sessions[i].ID)
		if err != nil {
			return nil, err
		}
		sessions[i].Users = users
	}
	return sessions, nil
}

func (p *Postgres) GetSession(ctx context.Context, id int64) (model.Session, error) {
	var session model.Session
	row := p.pool.QueryRow(ctx, `
		SELECT id, name, description, date, teacher_id, created_at, updated_at
		FROM sessions
		WHERE id = $1
	`, id)
	if err := row.Scan(&session.ID, &session.Name, &session.Description, &session.Date, &session.TeacherID, &session.CreatedAt, &session.UpdatedAt); err != nil {
		return model.Session{}, mapError(err)
	}
	users, err := p.attendees(ctx, id)
	if err != nil {
		return model.Session{}, err
	}
	session.Users = users
	return session, nil
}

func (p *Postgres) UpdateSession(ctx context.Context, id int64, session model.Session) (model.Session, error) {
	row := p.pool.QueryRow(ctx, `
		UPDATE sessions
		SET name = $2, description = $3, date = $4, teacher_id = $5, updated_at = now()
		WHERE id = $1
		RETURNING id, created_at, updated_at
	`, id, session.Name, session.Description, session.Date, session.TeacherID)
	if err := row.Scan(&session.ID, &session.CreatedAt, &session.UpdatedAt); err != nil {
		return model.Session{}, mapError(err)
	}
	users, err := p.attendees(ctx, id)
	if err != nil {
		return model.Session{}, err
	}
	session.Users = users
	return session, nil
}

func (p *Postgres) DeleteSession(ctx context.Context, id int64) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) AddParticipant(ctx context.Context, sessionID, userID int64) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO participate (session_id, user_id)
		VALUES ($1, $2)
	`, sessionID, userID)
	return mapError(err)
}

func (p *Postgres) RemoveParticipant(ctx context.Context, sessionID, userID int64) error {
	tag, err := p.pool.Exec(ctx, `
		DELETE FROM participate
		WHERE session_id = $1 AND user_id = $2
	`, sessionID, userID)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) attendees(ctx context.Context, sessionID int64) ([]int64, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT user_id
		FROM participate
		WHERE session_id = $1
		ORDER BY user_id
	`, sessionID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	users := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, mapError(err)
		}
		users = append(users, id)
	}
	return users, rows.Err()
}

// Migrate creates the schema when it does not exist yet.
func (p *Postgres) Migrate(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			admin BOOLEAN NOT NULL DEFAULT FALSE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS teachers (
			id BIGSERIAL PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS sessions (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			date TIMESTAMPTZ NOT NULL,
			teacher_id BIGINT NOT NULL REFERENCES teachers(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS participate (
			session_id BIGINT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			PRIMARY KEY (session_id, user_id)
		);
	`)
	return err
}

func scanUser(row pgx.Row) (model.User, error) {
	var user model.User
	if err := row.Scan(&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.Admin, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return model.User{}, mapError(err)
	}
	return user, nil
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return ErrDuplicate
		case "23503": // foreign_key_violation
			return ErrNotFound
		}
	}
	return err
}
