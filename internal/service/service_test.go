package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/news-comments-api/internal/config"
	"github.com/news-comments-api/internal/mocks"
	"github.com/news-comments-api/internal/models"
	"github.com/news-comments-api/internal/repository"
	"github.com/news-comments-api/internal/service"
	"github.com/news-comments-api/internal/validation"
	"github.com/rs/zerolog"
)

type stubPager struct {
	page   *models.ArticlePage
	err    error
	limits []int
}

func (p *stubPager) Page(ctx context.Context, limit, offset int) (*models.ArticlePage, error) {
	p.limits = append(p.limits, limit)
	if p.err != nil {
		return nil, p.err
	}
	return p.page, nil
}

func setupServices(pager service.ArticlePager) (*service.Services, *mocks.MockUserRepository, *mocks.MockCommentRepository, *mocks.MockMetricsRepository) {
	userRepo := mocks.NewMockUserRepository()
	commentRepo := mocks.NewMockCommentRepository(userRepo)
	metricsRepo := mocks.NewMockMetricsRepository(commentRepo)

	repos := &repository.Repositories{
		User:    userRepo,
		Comment: commentRepo,
		Metrics: metricsRepo,
	}

	cfg := &config.Config{
		Feed: config.FeedConfig{PageSize: 10},
	}

	if pager == nil {
		pager = &stubPager{page: &models.ArticlePage{}}
	}

	return service.NewServices(repos, pager, cfg, zerolog.Nop()), userRepo, commentRepo, metricsRepo
}

func TestCommentService_Submit(t *testing.T) {
	services, userRepo, commentRepo, _ := setupServices(nil)
	ctx := context.Background()

	result, err := services.Comment.Submit(ctx, &models.SubmitCommentRequest{
		Username:  "Alice",
		Body:      "Great article!",
		ArticleID: "42",
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if result.NewComment == nil {
		t.Fatal("Expected persisted comment in result")
	}
	if result.NewComment.Body != "Great article!" {
		t.Errorf("Expected comment body preserved, got %q", result.NewComment.Body)
	}
	if result.NewComment.ID == 0 {
		t.Error("Expected server-generated comment id")
	}
	if result.NewComment.ArticleID != "42" {
		t.Errorf("Expected article id '42', got %q", result.NewComment.ArticleID)
	}

	// The snapshot includes the new comment exactly once
	found := 0
	for _, c := range result.Comments {
		if c.Body == "Great article!" && c.Username == "Alice" {
			found++
		}
	}
	if found != 1 {
		t.Errorf("Expected new comment exactly once in snapshot, found %d times", found)
	}

	if count, _ := userRepo.Count(ctx); count != 1 {
		t.Errorf("Expected 1 user created, got %d", count)
	}
	if count, _ := commentRepo.Count(ctx); count != 1 {
		t.Errorf("Expected 1 comment created, got %d", count)
	}
}

func TestCommentService_Submit_ReusesExistingUserAnyCase(t *testing.T) {
	services, userRepo, _, _ := setupServices(nil)
	ctx := context.Background()

	first, err := services.Comment.Submit(ctx, &models.SubmitCommentRequest{
		Username: "Alice", Body: "first", ArticleID: "42",
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	second, err := services.Comment.Submit(ctx, &models.SubmitCommentRequest{
		Username: "ALICE", Body: "second", ArticleID: "99",
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	// Surrounding whitespace doesn't mint a new identity either
	third, err := services.Comment.Submit(ctx, &models.SubmitCommentRequest{
		Username: " Alice ", Body: "third", ArticleID: "99",
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if first.NewComment.UserID != second.NewComment.UserID {
		t.Errorf("Expected same user id for case variants, got %d and %d",
			first.NewComment.UserID, second.NewComment.UserID)
	}
	if first.NewComment.UserID != third.NewComment.UserID {
		t.Errorf("Expected same user id for padded name, got %d and %d",
			first.NewComment.UserID, third.NewComment.UserID)
	}
	if count, _ := userRepo.Count(ctx); count != 1 {
		t.Errorf("Expected exactly 1 user row, got %d", count)
	}
}

func TestCommentService_Submit_ValidationLeavesNoSideEffects(t *testing.T) {
	services, userRepo, commentRepo, _ := setupServices(nil)
	ctx := context.Background()

	_, err := services.Comment.Submit(ctx, &models.SubmitCommentRequest{
		Username: "Alice", Body: "", ArticleID: "42",
	})
	if err == nil {
		t.Fatal("Expected validation error, got nil")
	}

	var ve *validation.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Expected ValidationError, got %T: %v", err, err)
	}

	if count, _ := userRepo.Count(ctx); count != 0 {
		t.Errorf("Expected no user rows after validation failure, got %d", count)
	}
	if count, _ := commentRepo.Count(ctx); count != 0 {
		t.Errorf("Expected no comment rows after validation failure, got %d", count)
	}
}

func TestCommentService_Submit_AppendFailureKeepsUser(t *testing.T) {
	services, userRepo, commentRepo, _ := setupServices(nil)
	ctx := context.Background()

	commentRepo.CreateErr = errors.New("connection reset")

	_, err := services.Comment.Submit(ctx, &models.SubmitCommentRequest{
		Username: "Alice", Body: "hello", ArticleID: "42",
	})
	if err == nil {
		t.Fatal("Expected storage error, got nil")
	}

	var ve *validation.ValidationError
	if errors.As(err, &ve) {
		t.Error("Storage failure must not surface as validation error")
	}

	// The created user is a tolerated partial write, not rolled back
	if count, _ := userRepo.Count(ctx); count != 1 {
		t.Errorf("Expected user row to remain, got %d rows", count)
	}
	if count, _ := commentRepo.Count(ctx); count != 0 {
		t.Errorf("Expected no comment rows, got %d", count)
	}
}

func TestCommentService_ListByArticle_FiltersByArticle(t *testing.T) {
	services, _, _, _ := setupServices(nil)
	ctx := context.Background()

	for _, sub := range []struct{ user, body, article string }{
		{"Alice", "on 42", "42"},
		{"Bob", "on 7", "7"},
		{"Carol", "also on 42", "42"},
	} {
		if _, err := services.Comment.Submit(ctx, &models.SubmitCommentRequest{
			Username: sub.user, Body: sub.body, ArticleID: models.ArticleID(sub.article),
		}); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
	}

	comments, err := services.Comment.ListByArticle(ctx, "42")
	if err != nil {
		t.Fatalf("ListByArticle failed: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("Expected 2 comments for article 42, got %d", len(comments))
	}
	for _, c := range comments {
		if c.Body == "on 7" {
			t.Error("Comment from another article leaked into the list")
		}
	}
}

func TestCommentService_ListByArticle_UnknownArticleIsEmpty(t *testing.T) {
	services, _, _, _ := setupServices(nil)

	comments, err := services.Comment.ListByArticle(context.Background(), "no-such-article")
	if err != nil {
		t.Fatalf("ListByArticle failed: %v", err)
	}
	if comments == nil {
		t.Error("Expected empty list, got nil")
	}
	if len(comments) != 0 {
		t.Errorf("Expected 0 comments, got %d", len(comments))
	}
}

func TestMetricsService_Snapshot_EmptyStore(t *testing.T) {
	services, _, _, _ := setupServices(nil)

	metrics, err := services.Metrics.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if metrics.AverageComments != 0 {
		t.Errorf("Expected 0 average on empty store, got %f", metrics.AverageComments)
	}
	if len(metrics.TopCommenters) != 0 {
		t.Errorf("Expected empty leaderboard, got %d entries", len(metrics.TopCommenters))
	}
}

func TestMetricsService_Snapshot(t *testing.T) {
	services, _, commentRepo, _ := setupServices(nil)
	ctx := context.Background()

	// Pin all comments to one day so the average is exact
	day := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	commentRepo.NowFunc = func() time.Time { return day }

	commenters := map[string]int{"Alice": 5, "Bob": 5, "Carol": 2, "Dave": 1}
	for name, count := range commenters {
		for i := 0; i < count; i++ {
			if _, err := services.Comment.Submit(ctx, &models.SubmitCommentRequest{
				Username: name, Body: "text", ArticleID: "42",
			}); err != nil {
				t.Fatalf("Submit failed: %v", err)
			}
		}
	}

	metrics, err := services.Metrics.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	if len(metrics.TopCommenters) != 3 {
		t.Fatalf("Expected 3 leaderboard entries, got %d", len(metrics.TopCommenters))
	}

	// Alice and Bob tie at 5; username ascending breaks the tie
	if metrics.TopCommenters[0].Username != "Alice" || metrics.TopCommenters[0].CommentCount != 5 {
		t.Errorf("Expected Alice(5) first, got %+v", metrics.TopCommenters[0])
	}
	if metrics.TopCommenters[1].Username != "Bob" || metrics.TopCommenters[1].CommentCount != 5 {
		t.Errorf("Expected Bob(5) second, got %+v", metrics.TopCommenters[1])
	}
	if metrics.TopCommenters[2].Username != "Carol" || metrics.TopCommenters[2].CommentCount != 2 {
		t.Errorf("Expected Carol(2) third, got %+v", metrics.TopCommenters[2])
	}

	// 13 comments on a single day
	if metrics.AverageComments != 13 {
		t.Errorf("Expected average 13, got %f", metrics.AverageComments)
	}
}

func TestFeedService_Browse_DefaultsAndCaps(t *testing.T) {
	pager := &stubPager{page: &models.ArticlePage{Count: 1}}
	services, _, _, _ := setupServices(pager)
	ctx := context.Background()

	// Non-positive limit falls back to the configured page size
	if _, err := services.Feed.Browse(ctx, 0, 0); err != nil {
		t.Fatalf("Browse failed: %v", err)
	}
	if pager.limits[0] != 10 {
		t.Errorf("Expected default limit 10, got %d", pager.limits[0])
	}

	// Oversized limit is capped
	if _, err := services.Feed.Browse(ctx, 99999, 0); err != nil {
		t.Fatalf("Browse failed: %v", err)
	}
	if pager.limits[1] != 100 {
		t.Errorf("Expected capped limit 100, got %d", pager.limits[1])
	}
}

func TestFeedService_Browse_UpstreamError(t *testing.T) {
	pager := &stubPager{err: errors.New("upstream down")}
	services, _, _, _ := setupServices(pager)

	if _, err := services.Feed.Browse(context.Background(), 10, 0); err == nil {
		t.Error("Expected upstream error to propagate")
	}
}

func TestUserService_List(t *testing.T) {
	services, userRepo, _, _ := setupServices(nil)
	ctx := context.Background()

	if _, err := userRepo.Resolve(ctx, "Alice"); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if _, err := userRepo.Resolve(ctx, "Bob"); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	users, err := services.User.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("Expected 2 users, got %d", len(users))
	}
	if users[0].ID > users[1].ID {
		t.Error("Expected users ordered by id ascending")
	}
}
