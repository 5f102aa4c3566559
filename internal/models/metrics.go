package models

// TopCommenter is one row of the top-commenters leaderboard.
type TopCommenter struct {
	Username     string `json:"username" db:"username"`
	CommentCount int64  `json:"comment_count" db:"comment_count"`
}

// EngagementMetrics is the body of GET /api/metrics.
//
// AverageComments is the mean of per-calendar-date comment counts across all
// dates that have at least one comment, and 0 when the store is empty.
type EngagementMetrics struct {
	TopCommenters   []TopCommenter `json:"topCommenters"`
	AverageComments float64        `json:"averageComments"`
}

// DefaultTopCommenters is how many leaderboard rows the metrics endpoint serves.
const DefaultTopCommenters = 3
