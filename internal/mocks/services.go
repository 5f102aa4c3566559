package mocks

import (
	"context"

	"github.com/news-comments-api/internal/models"
	"github.com/news-comments-api/internal/service"
	"github.com/news-comments-api/internal/validation"
)

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	SubmitFunc  func(ctx context.Context, req *models.SubmitCommentRequest) (*models.SubmissionResult, error)
	ListFunc    func(ctx context.Context, articleID string) ([]models.ArticleComment, error)
	Submissions []*models.SubmitCommentRequest
}

// Verify interface compliance
var _ service.CommentService = (*MockCommentService)(nil)

func NewMockCommentService() *MockCommentService {
	return &MockCommentService{
		Submissions: make([]*models.SubmitCommentRequest, 0),
	}
}

func (m *MockCommentService) Submit(ctx context.Context, req *models.SubmitCommentRequest) (*models.SubmissionResult, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, req)
	}
	if err := validation.ValidateSubmission(req); err != nil {
		return nil, err
	}
	m.Submissions = append(m.Submissions, req)

	comment := &models.Comment{
		ID:        int64(len(m.Submissions)),
		UserID:    1,
		ArticleID: req.ArticleID.String(),
		Body:      req.Body,
	}
	return &models.SubmissionResult{
		NewComment: comment,
		Comments: []models.ArticleComment{
			{Username: req.Username, Body: req.Body, CreatedAt: comment.CreatedAt},
		},
	}, nil
}

func (m *MockCommentService) ListByArticle(ctx context.Context, articleID string) ([]models.ArticleComment, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, articleID)
	}
	return []models.ArticleComment{}, nil
}

// MockMetricsService is a mock implementation of MetricsService
type MockMetricsService struct {
	Metrics *models.EngagementMetrics
	Err     error
}

// Verify interface compliance
var _ service.MetricsService = (*MockMetricsService)(nil)

func NewMockMetricsService() *MockMetricsService {
	return &MockMetricsService{
		Metrics: &models.EngagementMetrics{TopCommenters: []models.TopCommenter{}},
	}
}

func (m *MockMetricsService) Snapshot(ctx context.Context) (*models.EngagementMetrics, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Metrics, nil
}

// MockFeedService is a mock implementation of FeedService
type MockFeedService struct {
	PageFunc func(ctx context.Context, limit, offset int) (*models.ArticlePage, error)
	Page     *models.ArticlePage
	Err      error
}

// Verify interface compliance
var _ service.FeedService = (*MockFeedService)(nil)

func NewMockFeedService() *MockFeedService {
	return &MockFeedService{
		Page: &models.ArticlePage{Results: []models.Article{}},
	}
}

func (m *MockFeedService) Browse(ctx context.Context, limit, offset int) (*models.ArticlePage, error) {
	if m.PageFunc != nil {
		return m.PageFunc(ctx, limit, offset)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Page, nil
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	Users []models.User
	Err   error
}

// Verify interface compliance
var _ service.UserService = (*MockUserService)(nil)

func NewMockUserService() *MockUserService {
	return &MockUserService{Users: make([]models.User, 0)}
}

func (m *MockUserService) List(ctx context.Context) ([]models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Users, nil
}

// MockHealthChecker fakes the database health probe
type MockHealthChecker struct {
	Err error
}

func (m *MockHealthChecker) HealthCheck(ctx context.Context) error {
	return m.Err
}
