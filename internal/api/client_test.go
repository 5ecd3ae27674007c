package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", 5*time.Second, nil)
}

func TestSearchSendsRequestBody(t *testing.T) {
	var got map[string]any
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/stories/search" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("expected X-Request-ID header")
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		w.Write([]byte(`[{"id":"a","title":"The Lighthouse","quality_score":7}]`))
	})

	stories, err := c.Search(context.Background(), SearchRequest{
		Query:   "lighthouse",
		Filters: Filters{Mood: []string{}, MinQuality: 6, MinLength: 30, MaxLength: 120},
		Limit:   12,
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(stories) != 1 || stories[0].ID != "a" {
		t.Fatalf("unexpected stories: %+v", stories)
	}
	if stories[0].QualityScore == nil || *stories[0].QualityScore != 7 {
		t.Errorf("quality_score not decoded: %v", stories[0].QualityScore)
	}

	if got["query"] != "lighthouse" || got["limit"] != float64(12) {
		t.Errorf("unexpected body: %v", got)
	}
	filters, ok := got["filters"].(map[string]any)
	if !ok {
		t.Fatalf("filters missing: %v", got)
	}
	if mood, ok := filters["mood"].([]any); !ok || len(mood) != 0 {
		t.Errorf("expected empty mood array, got %v", filters["mood"])
	}
	if _, ok := filters["source"]; ok {
		t.Error("empty source should be omitted")
	}
}

func TestServerErrorMessage(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Query is required"}`))
	})

	_, err := c.Search(context.Background(), SearchRequest{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || apiErr.Message != "Query is required" {
		t.Errorf("unexpected error: %+v", apiErr)
	}
}

func TestServerErrorWithoutBody(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.Top(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Message != "" {
		t.Errorf("expected empty message, got %q", apiErr.Message)
	}
}

func TestRandomAbsent(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`null`))
	})

	story, err := c.Random(context.Background())
	if err != nil {
		t.Fatalf("random: %v", err)
	}
	if story != nil {
		t.Errorf("expected nil story, got %+v", story)
	}
}

func TestStoryEscapesID(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/api/stories/a%2Fb" {
			t.Errorf("unexpected path %q", r.URL.EscapedPath())
		}
		w.Write([]byte(`{"id":"a/b","title":"T"}`))
	})

	story, err := c.Story(context.Background(), "a/b")
	if err != nil {
		t.Fatalf("story: %v", err)
	}
	if story.ID != "a/b" {
		t.Errorf("unexpected id %q", story.ID)
	}
}

func TestStatsAndMoods(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/stats":
			w.Write([]byte(`{"total_stories":42,"moods_count":8,"avg_quality":7.25}`))
		case "/api/moods":
			w.Write([]byte(`["isolation","madness"]`))
		default:
			http.NotFound(w, r)
		}
	})

	stats, err := c.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalStories != 42 || stats.MoodsCount != 8 || stats.AvgQuality != 7.25 {
		t.Errorf("unexpected stats: %+v", stats)
	}

	moods, err := c.Moods(context.Background())
	if err != nil {
		t.Fatalf("moods: %v", err)
	}
	if len(moods) != 2 || moods[0] != "isolation" {
		t.Errorf("unexpected moods: %v", moods)
	}
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := NewClient(srv.URL, time.Second, nil)
	_, err := c.Recent(context.Background())
	if err == nil {
		t.Fatal("expected error from closed server")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Errorf("transport failure should not be an APIError: %v", err)
	}
}
