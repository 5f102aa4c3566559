package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Comment is one persisted annotation on an external article. created_at is
// assigned by the database clock, never by the client.
type Comment struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	ArticleID string    `json:"article_id" db:"article_id"`
	Body      string    `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ArticleComment is the read view of a comment joined to its author,
// as served by GET /api/comments/:articleId.
type ArticleComment struct {
	Username  string    `json:"username" db:"username"`
	Body      string    `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// MaxCommentLength is the maximum allowed characters in a comment body
const MaxCommentLength = 4000

// ArticleID is an opaque reference to an externally sourced article. Clients
// send it as either a JSON string or number; it is stored and served as text.
type ArticleID string

func (a *ArticleID) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty article id")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = ArticleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("article id must be a string or number")
	}
	*a = ArticleID(n.String())
	return nil
}

func (a ArticleID) String() string { return string(a) }

// SubmitCommentRequest is the body of POST /api/comments.
type SubmitCommentRequest struct {
	Username  string    `json:"username"`
	Body      string    `json:"comment"`
	ArticleID ArticleID `json:"articleId"`
}

// SubmissionResult is the 201 response of POST /api/comments: the persisted
// comment with its server-generated identity, plus a best-effort-consistent
// snapshot of the article's full comment list taken after the append.
type SubmissionResult struct {
	NewComment *Comment         `json:"newComment"`
	Comments   []ArticleComment `json:"comments"`
}