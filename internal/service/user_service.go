package service

import (
	"context"
	"strings"
	"time"

	"panganjawara/internal/api/dto"
	"panganjawara/internal/model"
	"panganjawara/internal/pkg/redis"
	"panganjawara/internal/pkg/security"
	"panganjawara/internal/repository"
)

type UserService interface {
	Login(ctx context.Context, req *dto.LoginDTO) (*dto.LoginResultDTO, error)
	Logout(ctx context.Context, token string) error
	CreateUser(ctx context.Context, req *dto.CreateUserDTO) (*dto.UserDTO, error)
	ChangePassword(ctx context.Context, userID uint64, req *dto.ChangePasswordDTO) error
	GetUser(ctx context.Context, userID uint64) (*dto.UserDTO, error)
	ListUsers(ctx context.Context, page, pageSize int) ([]*dto.UserDTO, error)
	UpdateUser(ctx context.Context, userID uint64, req *dto.UpdateUserDTO) (*dto.UserDTO, error)
	DeleteUser(ctx context.Context, actorID, userID uint64) error
}

type userServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

func (s *userServiceImpl) Login(ctx context.Context, req *dto.LoginDTO) (*dto.LoginResultDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return nil, err
	}
	if user == nil || user.IsBan {
		return nil, ErrPasswordIncorrect
	}

	if err = security.CheckPasswordHash(req.Password, user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}

	token, err := security.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, UnExpectedError
	}

	return &dto.LoginResultDTO{
		Token: token,
		User:  convertToUserDTO(user),
	}, nil
}

// Logout memasukkan tanda tangan token ke blacklist sampai token itu
// kedaluwarsa dengan sendirinya.
func (s *userServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return UnauthorizedError
	}
	return redis.SetWithExpiration(ctx, signature, "1", security.JWTExpirationTime)
}

func (s *userServiceImpl) CreateUser(ctx context.Context, req *dto.CreateUserDTO) (*dto.UserDTO, error) {
	existing, err := s.userRepo.GetUserByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExist
	}

	hashed, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, UnExpectedError
	}

	role := req.Role
	if role == "" {
		role = "editor"
	}

	user := &model.User{
		Username:  strings.TrimSpace(req.Username),
		Email:     strings.TrimSpace(req.Email),
		Password:  hashed,
		Role:      role,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		if isDuplicateError(err) {
			return nil, ErrUserExist
		}
		return nil, err
	}

	return convertToUserDTO(user), nil
}

func (s *userServiceImpl) ChangePassword(ctx context.Context, userID uint64, req *dto.ChangePasswordDTO) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return ErrUserNotFound
	}

	if err = security.CheckPasswordHash(req.OldPassword, user.Password); err != nil {
		return ErrPasswordIncorrect
	}

	hashed, err := security.HashPassword(req.NewPassword)
	if err != nil {
		return UnExpectedError
	}
	return s.userRepo.UpdatePassword(ctx, userID, hashed)
}

func (s *userServiceImpl) GetUser(ctx context.Context, userID uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return convertToUserDTO(user), nil
}

func (s *userServiceImpl) ListUsers(ctx context.Context, page, pageSize int) ([]*dto.UserDTO, error) {
	if page < 1 || pageSize < 1 {
		return nil, ErrPageOutOfRange
	}
	users, err := s.userRepo.ListUsers(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.UserDTO, 0, len(users))
	for _, user := range users {
		list = append(list, convertToUserDTO(user))
	}
	return list, nil
}

// UpdateUser menimpa hanya field yang dikirim; password diganti lewat
// hash baru, field kosong dibiarkan.
func (s *userServiceImpl) UpdateUser(ctx context.Context, userID uint64, req *dto.UpdateUserDTO) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if req.Email != "" {
		user.Email = strings.TrimSpace(req.Email)
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.IsBan != nil {
		user.IsBan = *req.IsBan
	}
	if req.Password != "" {
		hashed, err := security.HashPassword(req.Password)
		if err != nil {
			return nil, UnExpectedError
		}
		user.Password = hashed
	}
	user.UpdatedAt = time.Now()

	if err = s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return convertToUserDTO(user), nil
}

// DeleteUser menolak admin menghapus akunnya sendiri.
func (s *userServiceImpl) DeleteUser(ctx context.Context, actorID, userID uint64) error {
	if actorID == userID {
		return ErrParamInvalid
	}
	if _, err := s.userRepo.GetUserByID(ctx, userID); err != nil {
		return ErrUserNotFound
	}
	return s.userRepo.DeleteUser(ctx, userID)
}

func convertToUserDTO(user *model.User) *dto.UserDTO {
	return &dto.UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
