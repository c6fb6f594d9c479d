package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"dsaquest/internal/domain/model"
	"dsaquest/internal/platform/config"

	"github.com/gosimple/slug"
)

// Client fetches problems from the external problem bank. Injected into the
// problem service so the curated fallback can be exercised in tests.
type Client interface {
	FetchProblems(ctx context.Context, topic model.Topic, difficulty model.Difficulty, page int) ([]model.Problem, error)
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClient() Client {
	return &httpClient{
		baseURL: config.AppConfig.CatalogURL,
		client:  &http.Client{Timeout: config.AppConfig.CatalogRequestTimeout},
	}
}

func NewHTTPClientWithURL(baseURL string, client *http.Client) Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpClient{baseURL: baseURL, client: client}
}

// bankProblem tolerates the two field-naming schemes the bank has used.
type bankProblem struct {
	ProblemName        string   `json:"problem_name"`
	Slug               string   `json:"slug"`
	ProblemTitle       string   `json:"problem_title"`
	Title              string   `json:"title"`
	ProblemDescription string   `json:"problem_description"`
	Description        string   `json:"description"`
	InputFormat        string   `json:"input_format"`
	OutputFormat       string   `json:"output_format"`
	Constraints        string   `json:"constraints"`
	ProblemURL         string   `json:"problem_url"`
	URL                string   `json:"url"`
	Tags               []string `json:"tags"`
	TopicTags          []string `json:"topic_tags"`
}

type bankResponse struct {
	Results  []bankProblem `json:"results"`
	Problems []bankProblem `json:"problems"`
}

func (c *httpClient) FetchProblems(ctx context.Context, topic model.Topic, difficulty model.Difficulty, page int) ([]model.Problem, error) {
	q := url.Values{}
	q.Set("category", topic.CatalogSlug)
	q.Set("difficulty", strings.ToLower(string(difficulty)))
	q.Set("page", strconv.Itoa(page))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("catalog: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog: unexpected status %d", resp.StatusCode)
	}

	var body bankResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("catalog: malformed response: %w", err)
	}

	raw := body.Results
	if len(raw) == 0 {
		raw = body.Problems
	}

	points, _ := model.PointsForDifficulty(difficulty)
	var problems []model.Problem
	for i, p := range raw {
		if i >= 10 {
			break
		}
		title := first(p.ProblemTitle, p.Title, fmt.Sprintf("%s Problem %d", topic.Name, i+1))
		s := first(p.ProblemName, p.Slug, slug.Make(title))
		tags := p.Tags
		if len(tags) == 0 {
			tags = p.TopicTags
		}
		problems = append(problems, model.Problem{
			ID:           s,
			Slug:         s,
			Title:        title,
			Difficulty:   difficulty,
			Topic:        topic.Name,
			Description:  first(p.ProblemDescription, p.Description, "Solve this problem to earn points!"),
			InputFormat:  first(p.InputFormat, "Standard input format"),
			OutputFormat: first(p.OutputFormat, "Standard output format"),
			Constraints:  first(p.Constraints, "Standard constraints apply"),
			Points:       points,
			Link:         first(p.ProblemURL, p.URL),
			Tags:         tags,
		})
	}
	return problems, nil
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
