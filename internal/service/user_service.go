package service

import (
	"context"
	"strings"
	"time"

	"github.com/ImperialKoi/Candit/config"
	"github.com/ImperialKoi/Candit/internal/domain"
	"github.com/ImperialKoi/Candit/internal/dto"
	"github.com/ImperialKoi/Candit/internal/repository"
	"github.com/ImperialKoi/Candit/pkg/errs"
	"github.com/ImperialKoi/Candit/pkg/utils"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	repo   repository.UserRepository
	config *config.Config
}

func CreateUserService(repo repository.UserRepository, config *config.Config) UserService {
	return &UserServiceImpl{repo: repo, config: config}
}

func (s *UserServiceImpl) AddUser(ctx context.Context, req dto.UserRequest) (err error) {
	if req.Name == "" || req.Email == "" || req.Password == "" || !strings.Contains(req.Email, "@") {
		return errs.ErrIncompleteInput
	}

	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return
	}

	if user.ID != 0 {
		return errs.ErrEmailAlreadyUsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	userEnt := domain.User{
		Name:           req.Name,
		Email:          req.Email,
		HashedPassword: string(hash),
		ExternalID:     ulid.Make().String(),
	}

	_, err = s.repo.AddUser(ctx, userEnt)
	if err != nil {
		return err
	}

	return nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req dto.UserRequest) (response dto.LoginResponse, err error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return
	}

	if user.ID == 0 {
		return response, errs.ErrAccountNotFound
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password))
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
		return response, errs.ErrInvalidCredentialsEmail
	}

	token, err := utils.CreateJWTToken(user.ID, user.Name, user.ExternalID, user.IsAdmin, s.config.JWTSecret)
	if err != nil {
		return
	}

	if err := s.repo.UpdateLastSignIn(ctx, user.ID, time.Now().Unix()); err != nil {
		log.Warn().Err(err).Str("component", "Login").Msg("failed to record sign-in time")
	}

	response.Token = token
	response.UserID = user.ID

	return
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID int64) (response dto.UserResponse, err error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return
	}

	if user.ID == 0 {
		return response, errs.ErrAccountNotFound
	}

	return toUserResponse(user), nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, req dto.UserRequest) (err error) {
	user, err := s.repo.GetUserByID(ctx, req.ID)
	if err != nil {
		return
	}

	if user.ID == 0 {
		return errs.ErrAccountNotFound
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.AvatarURL != "" {
		user.AvatarURL = &req.AvatarURL
	}

	return s.repo.UpdateUser(ctx, user)
}

func toUserResponse(user domain.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:             user.ID,
		ExternalID:     user.ExternalID,
		Name:           user.Name,
		Email:          user.Email,
		IsAdmin:        user.IsAdmin,
		EmailConfirmed: user.EmailConfirmed,
		LastSignInAt:   user.LastSignInAt,
		CreatedAt:      user.CreatedAt,
	}
	if user.AvatarURL != nil {
		resp.AvatarURL = *user.AvatarURL
	}

	return resp
}
