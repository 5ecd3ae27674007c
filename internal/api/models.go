package api

// Story is a story record as served by the story API. The client never mutates it.
type Story struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Preview         string   `json:"preview"`
	Content         string   `json:"content"`
	Mood            string   `json:"mood"`
	QualityScore    *float64 `json:"quality_score"`
	LengthSeconds   *int     `json:"length_seconds"`
	Themes          []string `json:"themes"`
	Source          string   `json:"source"`
	CreatedAt       string   `json:"created_at"`
	Score           *float64 `json:"score"`
	EngagementScore *float64 `json:"engagement_score,omitempty"`
}

type Stats struct {
	TotalStories int     `json:"total_stories"`
	MoodsCount   int     `json:"moods_count"`
	AvgQuality   float64 `json:"avg_quality"`
	LastUpdated  string  `json:"last_updated,omitempty"`
}

// Filters is the wire form of the client's filter state.
type Filters struct {
	Mood       []string `json:"mood"`
	MinQuality int      `json:"min_quality"`
	MinLength  int      `json:"min_length"`
	MaxLength  int      `json:"max_length"`
	Source     string   `json:"source,omitempty"`
}

type SearchRequest struct {
	Query   string  `json:"query"`
	Filters Filters `json:"filters"`
	Limit   int     `json:"limit"`
}
