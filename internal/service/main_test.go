package service

import (
	"context"
	"sync"
	"testing"

	"devconnect/internal/auth"
	"devconnect/internal/models"
	"devconnect/internal/notifications"
	"devconnect/internal/repository"
	"devconnect/internal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// recordingPublisher captures published events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []notifications.PostEvent
}

func (p *recordingPublisher) PublishPostEvent(_ context.Context, e notifications.PostEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type testEnv struct {
	db       *gorm.DB
	users    *UserService
	profiles *ProfileService
	posts    *PostService
	events   *recordingPublisher
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)

	userRepo := repository.NewUserRepository(db)
	events := &recordingPublisher{}
	return &testEnv{
		db:       db,
		users:    NewUserService(userRepo, auth.NewHasher(4)),
		profiles: NewProfileService(repository.NewProfileRepository(db)),
		posts:    NewPostService(repository.NewPostRepository(db), userRepo, events),
		events:   events,
	}
}

func (e *testEnv) register(t *testing.T, name, email string) *models.User {
	t.Helper()
	user, err := e.users.Register(context.Background(), RegisterInput{Name: name, Email: email, Password: "secret123"})
	require.NoError(t, err)
	return user
}

func assertKind(t *testing.T, err error, kind models.ErrorKind) {
	t.Helper()
	require.Error(t, err)
	require.Truef(t, models.IsKind(err, kind), "expected kind %v, got %v", kind, err)
}
