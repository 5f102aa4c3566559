package mocks

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/news-comments-api/internal/models"
	"github.com/news-comments-api/internal/repository"
	"github.com/news-comments-api/internal/validation"
)

// MockUserRepository is a map-backed implementation of UserRepository.
// Lookups are case-insensitive, matching the real unique index on
// LOWER(username).
type MockUserRepository struct {
	ByName     map[string]*models.User // keyed by lowercase username
	ByID       map[int64]*models.User
	NextID     int64
	ResolveErr error
	Resolves   int
}

// Verify interface compliance
var _ repository.UserRepository = (*MockUserRepository)(nil)

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		ByName: make(map[string]*models.User),
		ByID:   make(map[int64]*models.User),
		NextID: 1,
	}
}

func (m *MockUserRepository) Resolve(ctx context.Context, username string) (*models.User, error) {
	m.Resolves++
	if err := validation.ValidateUsername(username); err != nil {
		return nil, err
	}
	if m.ResolveErr != nil {
		return nil, m.ResolveErr
	}
	username = strings.TrimSpace(username)

	if user, ok := m.ByName[strings.ToLower(username)]; ok {
		return user, nil
	}

	user := &models.User{
		ID:        m.NextID,
		Username:  username,
		CreatedAt: time.Now(),
	}
	m.NextID++
	m.ByName[strings.ToLower(username)] = user
	m.ByID[user.ID] = user
	return user, nil
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return m.ByName[strings.ToLower(username)], nil
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0, len(m.ByID))
	for _, u := range m.ByID {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	return len(m.ByID), nil
}

// MockCommentRepository is a slice-backed implementation of CommentRepository.
// It joins to a MockUserRepository for the read view, like the real JOIN.
type MockCommentRepository struct {
	Comments  []*models.Comment
	Users     *MockUserRepository
	NextID    int64
	CreateErr error
	ListErr   error

	// NowFunc lets tests pin timestamps; defaults to time.Now
	NowFunc func() time.Time
}

// Verify interface compliance
var _ repository.CommentRepository = (*MockCommentRepository)(nil)

func NewMockCommentRepository(users *MockUserRepository) *MockCommentRepository {
	return &MockCommentRepository{
		Comments: make([]*models.Comment, 0),
		Users:    users,
		NextID:   1,
	}
}

func (m *MockCommentRepository) now() time.Time {
	if m.NowFunc != nil {
		return m.NowFunc()
	}
	return time.Now()
}

func (m *MockCommentRepository) Create(ctx context.Context, userID int64, articleID, body string) (*models.Comment, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}

	comment := &models.Comment{
		ID:        m.NextID,
		UserID:    userID,
		ArticleID: articleID,
		Body:      body,
		CreatedAt: m.now(),
	}
	m.NextID++
	m.Comments = append(m.Comments, comment)
	return comment, nil
}

func (m *MockCommentRepository) ListByArticle(ctx context.Context, articleID string) ([]models.ArticleComment, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	matched := make([]*models.Comment, 0)
	for _, c := range m.Comments {
		if c.ArticleID == articleID {
			matched = append(matched, c)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID < matched[j].ID
		}
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	result := make([]models.ArticleComment, 0, len(matched))
	for _, c := range matched {
		username := ""
		if user, ok := m.Users.ByID[c.UserID]; ok {
			username = user.Username
		}
		result = append(result, models.ArticleComment{
			Username:  username,
			Body:      c.Body,
			CreatedAt: c.CreatedAt,
		})
	}
	return result, nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int, error) {
	return len(m.Comments), nil
}

// MockMetricsRepository computes aggregates from a MockCommentRepository
// using the same rules as the SQL: counts grouped by username sorted by
// count descending then username ascending, and the mean of per-date counts.
type MockMetricsRepository struct {
	Comments *MockCommentRepository
	TopErr   error
	AvgErr   error
}

// Verify interface compliance
var _ repository.MetricsRepository = (*MockMetricsRepository)(nil)

func NewMockMetricsRepository(comments *MockCommentRepository) *MockMetricsRepository {
	return &MockMetricsRepository{Comments: comments}
}

func (m *MockMetricsRepository) TopCommenters(ctx context.Context, n int) ([]models.TopCommenter, error) {
	if m.TopErr != nil {
		return nil, m.TopErr
	}

	counts := make(map[string]int64)
	for _, c := range m.Comments.Comments {
		if user, ok := m.Comments.Users.ByID[c.UserID]; ok {
			counts[user.Username]++
		}
	}

	top := make([]models.TopCommenter, 0, len(counts))
	for username, count := range counts {
		top = append(top, models.TopCommenter{Username: username, CommentCount: count})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].CommentCount == top[j].CommentCount {
			return strings.ToLower(top[i].Username) < strings.ToLower(top[j].Username)
		}
		return top[i].CommentCount > top[j].CommentCount
	})

	if len(top) > n {
		top = top[:n]
	}
	return top, nil
}

func (m *MockMetricsRepository) AverageCommentsPerDay(ctx context.Context) (float64, error) {
	if m.AvgErr != nil {
		return 0, m.AvgErr
	}

	perDay := make(map[string]int)
	for _, c := range m.Comments.Comments {
		perDay[c.CreatedAt.Format("2006-01-02")]++
	}
	if len(perDay) == 0 {
		return 0, nil
	}

	total := 0
	for _, count := range perDay {
		total += count
	}
	return float64(total) / float64(len(perDay)), nil
}
