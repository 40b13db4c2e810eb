package service

import (
	"context"
	"errors"
	"testing"

	"panganjawara/internal/api/dto"
	"panganjawara/internal/model"
)

type mockUserRepo struct {
	users     map[uint64]*model.User
	updated   *model.User
	deletedID uint64
}

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) error {
	user.ID = 1
	return nil
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id uint64) (*model.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return user, nil
}

func (m *mockUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, user := range m.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, id uint64, hashed string) error {
	return nil
}

func (m *mockUserRepo) UpdateUser(ctx context.Context, user *model.User) error {
	m.updated = user
	return nil
}

func (m *mockUserRepo) DeleteUser(ctx context.Context, id uint64) error {
	m.deletedID = id
	return nil
}

func (m *mockUserRepo) ListUsers(ctx context.Context, limit, offset int) ([]*model.User, error) {
	return nil, nil
}

func TestUpdateUserAppliesOnlySentFields(t *testing.T) {
	repo := &mockUserRepo{users: map[uint64]*model.User{
		2: {ID: 2, Username: "editor1", Email: "editor@portal.id", Role: "editor"},
	}}
	svc := NewUserService(repo)

	ban := true
	user, err := svc.UpdateUser(context.Background(), 2, &dto.UpdateUserDTO{Role: "admin", IsBan: &ban})
	if err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}

	if user.Role != "admin" {
		t.Fatalf("expected role admin, got %q", user.Role)
	}
	if repo.updated == nil || !repo.updated.IsBan {
		t.Fatal("ban flag not persisted")
	}
	if repo.updated.Email != "editor@portal.id" {
		t.Fatalf("email must stay untouched, got %q", repo.updated.Email)
	}
	if repo.updated.Username != "editor1" {
		t.Fatalf("username must never change, got %q", repo.updated.Username)
	}
}

func TestUpdateUserUnknownUser(t *testing.T) {
	svc := NewUserService(&mockUserRepo{users: map[uint64]*model.User{}})

	_, err := svc.UpdateUser(context.Background(), 99, &dto.UpdateUserDTO{Role: "admin"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDeleteUserRejectsSelfDeletion(t *testing.T) {
	repo := &mockUserRepo{users: map[uint64]*model.User{
		2: {ID: 2, Username: "admin1", Role: "admin"},
	}}
	svc := NewUserService(repo)

	if err := svc.DeleteUser(context.Background(), 2, 2); !errors.Is(err, ErrParamInvalid) {
		t.Fatalf("expected self-deletion to be rejected, got %v", err)
	}
	if repo.deletedID != 0 {
		t.Fatal("self-deletion must not reach the repo")
	}
}

func TestDeleteUserRemovesOtherAccount(t *testing.T) {
	repo := &mockUserRepo{users: map[uint64]*model.User{
		3: {ID: 3, Username: "editor2", Role: "editor"},
	}}
	svc := NewUserService(repo)

	if err := svc.DeleteUser(context.Background(), 1, 3); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
	if repo.deletedID != 3 {
		t.Fatalf("expected user 3 deleted, got %d", repo.deletedID)
	}
}

func TestLoginRejectsBannedUser(t *testing.T) {
	repo := &mockUserRepo{users: map[uint64]*model.User{
		2: {ID: 2, Username: "editor1", Role: "editor", IsBan: true},
	}}
	svc := NewUserService(repo)

	_, err := svc.Login(context.Background(), &dto.LoginDTO{Username: "editor1", Password: "rahasia123"})
	if !errors.Is(err, ErrPasswordIncorrect) {
		t.Fatalf("banned account must not log in, got %v", err)
	}
}
