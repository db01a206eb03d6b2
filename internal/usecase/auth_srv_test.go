package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"cinerate/internal/data/entity"
	"cinerate/internal/data/repository"
	"cinerate/internal/dto/request"
	"cinerate/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID]; !ok {
		return fmt.Errorf("user %s not found", user.ID.String())
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]*entity.Session)}
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *session
	f.sessions[session.Token] = &clone
	return nil
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		return nil, nil
	}
	session, ok := f.sessions[tokenUUID]
	if !ok || session.RevokedAt != nil {
		return nil, nil
	}
	clone := *session
	return &clone, nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		return fmt.Errorf("session not found or already revoked")
	}
	session, ok := f.sessions[tokenUUID]
	if !ok || session.RevokedAt != nil {
		return fmt.Errorf("session not found or already revoked")
	}
	now := session.CreatedAt
	session.RevokedAt = &now
	return nil
}

func (f *fakeSessionRepo) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, session := range f.sessions {
		if session.UserID == userID && session.RevokedAt == nil {
			now := session.CreatedAt
			session.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeSessionRepo) CleanExpiredSessions(ctx context.Context) error { return nil }

func newAuthServiceForTest() (AuthService, *fakeUserRepo, *fakeSessionRepo) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	repo := &repository.Repository{User: users, Session: sessions}
	config := &utils.Config{Session: utils.SessionConfig{ExpiryHours: 24}}
	return NewAuthService(repo, config, zap.NewNop()), users, sessions
}

func registerReq() *request.RegisterRequest {
	return &request.RegisterRequest{
		Name:     "Ada Lovelace",
		Username: "ada_lovelace",
		Email:    "ada@example.com",
		Password: "correct-horse",
	}
}

func TestRegister_CreatesUserAndSession(t *testing.T) {
	svc, users, _ := newAuthServiceForTest()

	resp, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	assert.Equal(t, "ada_lovelace", resp.Username)
	assert.NotEmpty(t, resp.Token)
	assert.False(t, resp.ExpiresAt.IsZero())

	stored, err := users.FindByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "correct-horse", stored.PasswordHash, "password must be hashed")
}

func TestRegister_DuplicateEmailAndUsername(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	dup := registerReq()
	dup.Username = "someone_else"
	_, err = svc.Register(context.Background(), dup)
	assert.ErrorIs(t, err, ErrEmailTaken)

	dup = registerReq()
	dup.Email = "other@example.com"
	_, err = svc.Register(context.Background(), dup)
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegister_Validation(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	req := registerReq()
	req.Password = "short"
	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)

	req = registerReq()
	req.Username = "tiny" // below the 6 character minimum
	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLogin_ByEmailOrUsername(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	byEmail, err := svc.Login(context.Background(), &request.LoginRequest{
		Username: "ada@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, byEmail.Token)

	byUsername, err := svc.Login(context.Background(), &request.LoginRequest{
		Username: "ada_lovelace",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, byUsername.Token)
	assert.NotEqual(t, byEmail.Token, byUsername.Token)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Username: "ada_lovelace",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Username: "nobody@example.com",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogout_RevokesSession(t *testing.T) {
	svc, _, sessions := newAuthServiceForTest()

	resp, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), resp.Token))

	session, err := sessions.FindValidSession(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Nil(t, session)

	// Second logout fails, the session is already revoked
	assert.Error(t, svc.Logout(context.Background(), resp.Token))
}
