package services

import (
	"fmt"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/letterquest/reader_api/dto"
	"github.com/letterquest/reader_api/model"
	"github.com/letterquest/reader_api/shared"
)

// AuthService handles parent account registration and login. A fresh
// account also gets its progression rows so the onboarding flow can record
// the first streak day immediately.
type AuthService struct {
	context.DefaultService

	sqlSvc    *SqliteService
	jwtSvc    *JWTService
	playerSvc *PlayerService
}

const AUTH_SVC = "auth_svc"

func (svc AuthService) Id() string {
	return AUTH_SVC
}

func (svc *AuthService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *AuthService) Start() error {
	svc.sqlSvc = svc.Service(SQLITE_SVC).(*SqliteService)
	svc.jwtSvc = svc.Service(JWT_SVC).(*JWTService)
	svc.playerSvc = svc.Service(PLAYER_SVC).(*PlayerService)
	return nil
}

func (svc *AuthService) Register(req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, shared.NewBadRequestError(err, "Invalid registration request")
	}

	if _, err := svc.sqlSvc.GetUserByEmailOrUsername(req.Email); err == nil {
		return nil, shared.NewConflictError(fmt.Errorf("email taken"), "Email is already registered")
	}
	if _, err := svc.sqlSvc.GetUserByUsername(req.Username); err == nil {
		return nil, shared.NewConflictError(fmt.Errorf("username taken"), "Username is already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to hash password")
	}

	user, err := svc.sqlSvc.CreateUser(&model.User{
		Email:       req.Email,
		Username:    req.Username,
		Password:    string(hash),
		Role:        model.RoleParent,
		DisplayName: req.DisplayName,
		IsActive:    true,
	})
	if err != nil {
		return nil, err
	}

	if err := svc.playerSvc.InitializePlayer(user.ID); err != nil {
		log.WithError(err).WithField("user_id", user.ID).Error("Failed to initialize player profile")
		return nil, err
	}

	return &dto.RegisterResponse{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
	}, nil
}

func (svc *AuthService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, shared.NewBadRequestError(err, "Invalid login request")
	}

	user, err := svc.sqlSvc.GetUserByEmailOrUsername(req.EmailOrUsername)
	if err != nil {
		return nil, shared.NewUnauthorizedError(err, "Invalid credentials")
	}

	if !user.IsActive {
		return nil, shared.NewUnauthorizedError(fmt.Errorf("account inactive"), "Account is inactive")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, shared.NewUnauthorizedError(err, "Invalid credentials")
	}

	pair, err := svc.jwtSvc.GenerateTokenPair(user.ID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to generate token")
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := svc.sqlSvc.UpdateUser(user); err != nil {
		log.WithError(err).WithField("user_id", user.ID).Error("Failed to record login time")
	}

	// Logging in counts as an app open for the streak.
	if _, err := svc.playerSvc.RecordAppOpen(user.ID); err != nil {
		log.WithError(err).WithField("user_id", user.ID).Error("Failed to touch streak on login")
	}

	return &dto.LoginResponse{
		UserID:    user.ID,
		Username:  user.Username,
		TokenPair: *pair,
		LoginAt:   now,
	}, nil
}

func (svc *AuthService) ValidateUser(userID string) (*model.User, error) {
	user, err := svc.sqlSvc.GetUser(userID)
	if err != nil {
		return nil, shared.NewUnauthorizedError(err, "User not found")
	}

	if !user.IsActive {
		return nil, shared.NewUnauthorizedError(fmt.Errorf("account inactive"), "Account is inactive")
	}

	return user, nil
}
