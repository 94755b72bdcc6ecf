// Package seed populates the database with fake users, profiles, posts,
// likes and comments for development and testing.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"devconnect/internal/auth"
	"devconnect/internal/middleware"
	"devconnect/internal/models"
	"devconnect/internal/repository"
	"devconnect/internal/service"
	"devconnect/internal/validation"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// DefaultPassword is the password of every seeded user.
const DefaultPassword = "password123"

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	MaxLikes    int
	MaxComments int
	BcryptCost  int
	// Seed fixes the fake data; zero picks a random seed.
	Seed int64
}

// Summary counts what a run created.
type Summary struct {
	Users    int
	Profiles int
	Posts    int
	Likes    int
	Comments int
}

// Seeder writes fake data through the services so hashing, author
// snapshots and like guards apply as they do for API requests.
type Seeder struct {
	db       *gorm.DB
	opts     Options
	faker    *gofakeit.Faker
	users    *service.UserService
	profiles *service.ProfileService
	posts    *service.PostService
}

func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	userRepo := repository.NewUserRepository(db)
	return &Seeder{
		db:       db,
		opts:     opts,
		faker:    gofakeit.New(opts.Seed),
		users:    service.NewUserService(userRepo, auth.NewHasher(opts.BcryptCost)),
		profiles: service.NewProfileService(repository.NewProfileRepository(db)),
		posts:    service.NewPostService(repository.NewPostRepository(db), userRepo, nil),
	}
}

// ClearAll removes every row the seeder can create, children first.
func (s *Seeder) ClearAll() error {
	for _, model := range []any{&models.Comment{}, &models.Like{}, &models.Post{}, &models.Profile{}, &models.User{}} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error; err != nil {
			return fmt.Errorf("clear %T: %w", model, err)
		}
	}
	return nil
}

// Run creates users with profiles, then posts spread across them, then
// likes and comments from random users.
func (s *Seeder) Run(ctx context.Context) (Summary, error) {
	var sum Summary

	users := make([]*models.User, 0, s.opts.NumUsers)
	for i := 0; i < s.opts.NumUsers; i++ {
		user, err := s.users.Register(ctx, service.RegisterInput{
			Name:     s.faker.Name(),
			Email:    fmt.Sprintf("%s.%d@example.com", localPart(s.faker.FirstName()), i+1),
			Password: DefaultPassword,
		})
		if err != nil {
			return sum, fmt.Errorf("register user %d: %w", i+1, err)
		}
		users = append(users, user)
		sum.Users++

		bio := truncate(s.faker.JobTitle()+" at "+s.faker.Company(), validation.MaxBioLength)
		location := truncate(s.faker.City(), validation.MaxLocationLength)
		website := truncate(s.faker.URL(), validation.MaxWebsiteLength)
		if _, err := s.profiles.Upsert(ctx, user.ID, models.ProfileFields{
			Bio:      &bio,
			Location: &location,
			Website:  &website,
		}); err != nil {
			return sum, fmt.Errorf("profile for user %d: %w", user.ID, err)
		}
		sum.Profiles++
	}
	if len(users) == 0 {
		return sum, nil
	}

	for i := 0; i < s.opts.NumPosts; i++ {
		author := users[s.faker.IntRange(0, len(users)-1)]
		post, err := s.posts.CreatePost(ctx, author.ID, s.faker.Sentence(s.faker.IntRange(6, 20)))
		if err != nil {
			return sum, fmt.Errorf("post %d: %w", i+1, err)
		}
		sum.Posts++

		likers := s.faker.IntRange(0, min(s.opts.MaxLikes, len(users)))
		for _, idx := range s.pick(len(users), likers) {
			if _, err := s.posts.LikePost(ctx, post.ID, users[idx].ID); err != nil {
				return sum, fmt.Errorf("like post %d: %w", post.ID, err)
			}
			sum.Likes++
		}

		comments := s.faker.IntRange(0, max(s.opts.MaxComments, 0))
		for j := 0; j < comments; j++ {
			commenter := users[s.faker.IntRange(0, len(users)-1)]
			if _, err := s.posts.AddComment(ctx, post.ID, commenter.ID, s.faker.Sentence(s.faker.IntRange(3, 12))); err != nil {
				return sum, fmt.Errorf("comment on post %d: %w", post.ID, err)
			}
			sum.Comments++
		}
	}

	middleware.Logger.InfoContext(ctx, "seeding complete",
		slog.Int("users", sum.Users),
		slog.Int("posts", sum.Posts),
		slog.Int("likes", sum.Likes),
		slog.Int("comments", sum.Comments),
	)
	return sum, nil
}

// pick returns k distinct indexes in [0, n).
func (s *Seeder) pick(n, k int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	s.faker.ShuffleAnySlice(idx)
	return idx[:k]
}

// localPart keeps the ASCII letters of name, lower-cased.
func localPart(name string) string {
	local := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		}
		return -1
	}, name)
	if local == "" {
		return "user"
	}
	return local
}

func truncate(v string, limit int) string {
	if utf8.RuneCountInString(v) <= limit {
		return v
	}
	return string([]rune(v)[:limit])
}
