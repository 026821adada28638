package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var ErrUserNotFound = errors.New("user not found")

type Repo interface {
	CreateUser(ctx context.Context, user User) (int, error)
	GetUser(ctx context.Context, id int) (User, error)
	GetUserByUid(ctx context.Context, uid string) (User, error)
	UpdateUser(ctx context.Context, userId int, user User) (User, error)
}

type RepoImpl struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) CreateUser(ctx context.Context, user User) (int, error) {
	query := `INSERT INTO users (uid, display_name, google_calendar_id) VALUES ($1, $2, $3) RETURNING id`
	var id int
	err := r.db.QueryRowContext(ctx, query,
		user.Uid,
		user.DisplayName,
		user.Settings.GoogleCalendarId,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

func (r *RepoImpl) GetUser(ctx context.Context, id int) (User, error) {
	query := `SELECT id, uid, display_name, google_calendar_id FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *RepoImpl) GetUserByUid(ctx context.Context, uid string) (User, error) {
	query := `SELECT id, uid, display_name, google_calendar_id FROM users WHERE uid = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, uid))
}

func (r *RepoImpl) UpdateUser(ctx context.Context, userId int, user User) (User, error) {
	query := `UPDATE users SET display_name = $1, google_calendar_id = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, user.DisplayName, user.Settings.GoogleCalendarId, userId)
	if err != nil {
		return User{}, fmt.Errorf("failed to update user: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return User{}, err
	}
	if affected == 0 {
		return User{}, ErrUserNotFound
	}
	user.Id = userId
	return user, nil
}

func (r *RepoImpl) scanUser(row *sql.Row) (User, error) {
	var user User
	err := row.Scan(&user.Id, &user.Uid, &user.DisplayName, &user.Settings.GoogleCalendarId)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("failed to read user: %w", err)
	}
	return user, nil
}
