package adzuna

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/artem13815/joblens/pkg/search"
	"github.com/artem13815/joblens/pkg/vacancy"
)

const DefaultBaseURL = "https://api.adzuna.com/v1/api"

// Client is a minimal Adzuna job search API client.
type Client struct {
	AppID          string
	AppKey         string
	BaseURL        string
	Country        string
	ResultsPerPage int
	httpDo         *http.Client
}

func New(appID, appKey, baseURL, country string, resultsPerPage int, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if country == "" {
		country = "in"
	}
	if resultsPerPage <= 0 {
		resultsPerPage = 20
	}
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &Client{
		AppID:          appID,
		AppKey:         appKey,
		BaseURL:        strings.TrimRight(baseURL, "/"),
		Country:        country,
		ResultsPerPage: resultsPerPage,
		httpDo: &http.Client{
			Timeout: timeout,
		},
	}
}

// APIError is a non-2xx reply from Adzuna.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("adzuna http %d: %s", e.Status, e.Body)
}

type searchResponse struct {
	Count   int         `json:"count"`
	Results []jobResult `json:"results"`
}

type jobResult struct {
	ID           json.Number `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	RedirectURL  string      `json:"redirect_url"`
	Created      string      `json:"created"`
	SalaryMin    float64     `json:"salary_min"`
	SalaryMax    float64     `json:"salary_max"`
	ContractType string      `json:"contract_type"`
	Company      struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
	Category struct {
		Label string `json:"label"`
	} `json:"category"`
}

func (j jobResult) vacancy() vacancy.Vacancy {
	v := vacancy.Vacancy{
		ID:           j.ID.String(),
		Title:        j.Title,
		Company:      j.Company.DisplayName,
		Location:     j.Location.DisplayName,
		Category:     j.Category.Label,
		ContractType: j.ContractType,
		Description:  j.Description,
		URL:          j.RedirectURL,
		SalaryMin:    j.SalaryMin,
		SalaryMax:    j.SalaryMax,
	}
	if t, err := time.Parse(time.RFC3339, j.Created); err == nil {
		v.Created = t.UTC()
	}
	return v
}

// Search runs one search page. Empty What/Where are sent as empty parameters.
func (c *Client) Search(ctx context.Context, q search.Query) (search.Results, error) {
	if c.AppID == "" || c.AppKey == "" {
		return search.Results{}, errors.New("adzuna app id or key is empty")
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	params := url.Values{}
	params.Set("app_id", c.AppID)
	params.Set("app_key", c.AppKey)
	params.Set("results_per_page", strconv.Itoa(c.ResultsPerPage))
	params.Set("what", q.What)
	params.Set("where", q.Where)

	endpoint := fmt.Sprintf("%s/jobs/%s/search/%d?%s", c.BaseURL, url.PathEscape(c.Country), page, params.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return search.Results{}, err
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return search.Results{}, fmt.Errorf("adzuna request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return search.Results{}, &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return search.Results{}, fmt.Errorf("decode adzuna response: %w", err)
	}
	jobs := make([]vacancy.Vacancy, 0, len(out.Results))
	for _, r := range out.Results {
		jobs = append(jobs, r.vacancy())
	}
	return search.Results{Count: out.Count, Jobs: jobs}, nil
}
