package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/ImperialKoi/Candit/internal/domain"
	"github.com/ImperialKoi/Candit/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type UserRepositoryImpl struct {
	db *sqlx.DB
}

func CreateUserRepository(db *sqlx.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) GetUserByEmail(ctx context.Context, email string) (res domain.User, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM user_profiles WHERE email = $1 AND deleted_at IS NULL", email)
	err = row.StructScan(&res)
	if err != nil {
		if err == sql.ErrNoRows {
			return res, nil
		}
		log.Error().Err(err).Str("component", "GetUserByEmail").Msg("")
		return res, errs.ErrInternalServer
	}

	return
}

func (r *UserRepositoryImpl) GetUserByID(ctx context.Context, id int64) (data domain.User, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM user_profiles WHERE id = $1 AND deleted_at IS NULL", id)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetUserByID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *UserRepositoryImpl) AddUser(ctx context.Context, data domain.User) (id int64, err error) {
	timestamp := time.Now().Unix()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	nstmt, err := r.db.PrepareNamedContext(ctx, "INSERT INTO user_profiles(name, email, external_id, hashed_password, avatar_url, is_admin, email_confirmed, created_at, updated_at) VALUES (:name, :email, :external_id, :hashed_password, :avatar_url, :is_admin, :email_confirmed, :created_at, :updated_at) returning id")
	if err != nil {
		log.Error().Err(err).Str("component", "AddUser").Msg("")
		return
	}

	err = nstmt.GetContext(ctx, &data.ID, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddUser").Msg("")
		return
	}

	return data.ID, nil
}

func (r *UserRepositoryImpl) UpdateUser(ctx context.Context, data domain.User) (err error) {
	data.UpdatedAt = time.Now().Unix()

	_, err = r.db.NamedExecContext(ctx, "UPDATE user_profiles SET name=:name, avatar_url=:avatar_url, updated_at=:updated_at WHERE id=:id AND deleted_at IS NULL", data)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateUser").Msg("")
		return
	}

	return nil
}

func (r *UserRepositoryImpl) UpdateLastSignIn(ctx context.Context, id int64, signedInAt int64) (err error) {
	_, err = r.db.ExecContext(ctx, "UPDATE user_profiles SET last_sign_in_at = $1, updated_at = $1 WHERE id = $2 AND deleted_at IS NULL", signedInAt, id)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateLastSignIn").Msg("")
		return
	}

	return nil
}
