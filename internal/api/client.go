// Package api implements the authenticated HTTP client for the Beeminder
// REST API. All calls are synchronous; retry and caching policy is left to
// the caller.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/strickvl/beemind/internal/config"
	"github.com/strickvl/beemind/internal/logging"
	"github.com/strickvl/beemind/internal/models"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://www.beeminder.com/api/v1"

	// DefaultTimeout bounds every request.
	DefaultTimeout = 10 * time.Second
)

// Client talks to the Beeminder API on behalf of a single user.
type Client struct {
	baseURL    string
	apiKey     string
	username   string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient builds a client from the startup configuration.
func NewClient(cfg config.Config) *Client {
	return &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     cfg.APIKey,
		username:   cfg.Username,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     logging.GetLogger(),
	}
}

// SetBaseURL overrides the API endpoint. Used by tests.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = strings.TrimRight(baseURL, "/")
}

// SetTimeout overrides the request timeout.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.httpClient.Timeout = timeout
}

// Username returns the account the client operates on.
func (c *Client) Username() string {
	return c.username
}

// GetAllGoals fetches the full goal collection, in server order.
func (c *Client) GetAllGoals(ctx context.Context) ([]models.Goal, error) {
	var goals []models.Goal
	path := fmt.Sprintf("/users/%s/goals.json", c.username)
	if err := c.get(ctx, "fetch goals", path, nil, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

// GetArchivedGoals fetches the user's archived goals.
func (c *Client) GetArchivedGoals(ctx context.Context) ([]models.Goal, error) {
	var goals []models.Goal
	path := fmt.Sprintf("/users/%s/goals/archived.json", c.username)
	if err := c.get(ctx, "fetch archived goals", path, nil, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

// GetGoal fetches one goal by slug, without its datapoint history.
func (c *Client) GetGoal(ctx context.Context, slug string) (models.Goal, error) {
	var goal models.Goal
	path := fmt.Sprintf("/users/%s/goals/%s.json", c.username, slug)
	params := url.Values{"datapoints": {"false"}}
	if err := c.get(ctx, "fetch goal", path, params, &goal); err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

// CreateGoal creates a new goal for the configured user.
func (c *Client) CreateGoal(ctx context.Context, p GoalParams) (models.Goal, error) {
	form := url.Values{
		"slug":      {p.Slug},
		"title":     {p.Title},
		"goal_type": {p.GoalType},
		"gunits":    {p.GUnits},
	}
	if p.GoalDate != nil {
		form.Set("goaldate", strconv.FormatInt(*p.GoalDate, 10))
	}
	if p.GoalVal != nil {
		form.Set("goalval", strconv.FormatFloat(*p.GoalVal, 'f', -1, 64))
	}
	if p.Rate != nil {
		form.Set("rate", strconv.FormatFloat(*p.Rate, 'f', -1, 64))
	}
	var goal models.Goal
	path := fmt.Sprintf("/users/%s/goals.json", c.username)
	if err := c.post(ctx, "create goal", path, form, &goal); err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

// UpdateGoal modifies an existing goal.
func (c *Client) UpdateGoal(ctx context.Context, slug string, upd GoalUpdate) (models.Goal, error) {
	form := url.Values{}
	if upd.Title != nil {
		form.Set("title", *upd.Title)
	}
	if upd.YAxis != nil {
		form.Set("yaxis", *upd.YAxis)
	}
	if upd.FinePrint != nil {
		form.Set("fineprint", *upd.FinePrint)
	}
	var goal models.Goal
	path := fmt.Sprintf("/users/%s/goals/%s.json", c.username, slug)
	if err := c.post(ctx, "update goal", path, form, &goal); err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

// GetDatapoints lists datapoints for a goal.
func (c *Client) GetDatapoints(ctx context.Context, slug string, q DatapointQuery) ([]models.Datapoint, error) {
	params := url.Values{}
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}
	if q.Count > 0 {
		params.Set("count", strconv.Itoa(q.Count))
	}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Per > 0 {
		params.Set("per", strconv.Itoa(q.Per))
	}
	var points []models.Datapoint
	path := fmt.Sprintf("/users/%s/goals/%s/datapoints.json", c.username, slug)
	if err := c.get(ctx, "fetch datapoints", path, params, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// CreateDatapoint submits a new measurement against a goal. An empty
// comment is omitted from the request.
func (c *Client) CreateDatapoint(ctx context.Context, slug string, value float64, comment string) (models.Datapoint, error) {
	form := url.Values{"value": {strconv.FormatFloat(value, 'f', -1, 64)}}
	if comment != "" {
		form.Set("comment", comment)
	}
	var point models.Datapoint
	path := fmt.Sprintf("/users/%s/goals/%s/datapoints.json", c.username, slug)
	if err := c.post(ctx, "create datapoint", path, form, &point); err != nil {
		return models.Datapoint{}, err
	}
	return point, nil
}

// CreateAllDatapoints submits several datapoints against a goal in one
// request. The server processes each entry independently and reports which
// ones it stored.
func (c *Client) CreateAllDatapoints(ctx context.Context, slug string, points []models.Datapoint) (BulkDatapointResult, error) {
	payload, err := json.Marshal(points)
	if err != nil {
		return BulkDatapointResult{}, &Error{Kind: KindValidation, Op: "bulk create datapoints", Err: err}
	}
	form := url.Values{"datapoints": {string(payload)}}
	var result BulkDatapointResult
	path := fmt.Sprintf("/users/%s/goals/%s/datapoints/create_all.json", c.username, slug)
	if err := c.post(ctx, "bulk create datapoints", path, form, &result); err != nil {
		return BulkDatapointResult{}, err
	}
	return result, nil
}

// UpdateDatapoint modifies an existing datapoint.
func (c *Client) UpdateDatapoint(ctx context.Context, slug, id string, upd DatapointUpdate) (models.Datapoint, error) {
	form := url.Values{}
	if upd.Value != nil {
		form.Set("value", strconv.FormatFloat(*upd.Value, 'f', -1, 64))
	}
	if upd.Timestamp != nil {
		form.Set("timestamp", strconv.FormatInt(*upd.Timestamp, 10))
	}
	if upd.Comment != nil {
		form.Set("comment", *upd.Comment)
	}
	var point models.Datapoint
	path := fmt.Sprintf("/users/%s/goals/%s/datapoints/%s.json", c.username, slug, id)
	if err := c.post(ctx, "update datapoint", path, form, &point); err != nil {
		return models.Datapoint{}, err
	}
	return point, nil
}

// DeleteDatapoint removes a datapoint and returns its final state.
func (c *Client) DeleteDatapoint(ctx context.Context, slug, id string) (models.Datapoint, error) {
	var point models.Datapoint
	path := fmt.Sprintf("/users/%s/goals/%s/datapoints/%s.json", c.username, slug, id)
	if err := c.do(ctx, "delete datapoint", http.MethodDelete, path, url.Values{}, nil, &point); err != nil {
		return models.Datapoint{}, err
	}
	return point, nil
}

// GetUser fetches the account record for the configured username.
func (c *Client) GetUser(ctx context.Context) (models.User, error) {
	var user models.User
	path := fmt.Sprintf("/users/%s.json", c.username)
	if err := c.get(ctx, "fetch user", path, nil, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (c *Client) get(ctx context.Context, op, path string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	return c.do(ctx, op, http.MethodGet, path, params, nil, out)
}

func (c *Client) post(ctx context.Context, op, path string, form url.Values, out any) error {
	return c.do(ctx, op, http.MethodPost, path, url.Values{}, form, out)
}

// apiErrorBody is the error envelope the server uses for 4xx responses.
type apiErrorBody struct {
	Error  string          `json:"error"`
	Errors json.RawMessage `json:"errors"`
}

func (c *Client) do(ctx context.Context, op, method, path string, params url.Values, form url.Values, out any) error {
	params.Set("auth_token", c.apiKey)

	var body io.Reader
	if form != nil {
		form.Set("auth_token", c.apiKey)
		body = strings.NewReader(form.Encode())
	}

	reqURL := c.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return &Error{Kind: KindTransport, Op: op, Err: err}
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("op", op),
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return &Error{Kind: KindTransport, Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindTransport, Op: op, StatusCode: resp.StatusCode, Err: err}
	}

	c.logger.Debug("request completed",
		zap.String("op", op),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(op, resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Kind: KindParse, Op: op, StatusCode: resp.StatusCode, Err: err}
	}
	return nil
}

func (c *Client) statusError(op string, status int, body []byte) error {
	msg := serverMessage(body)
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &Error{Kind: KindAuth, Op: op, StatusCode: status, Message: msg}
	case status == http.StatusNotFound:
		return &Error{Kind: KindNotFound, Op: op, StatusCode: status, Message: msg}
	case status == http.StatusUnprocessableEntity:
		return &Error{Kind: KindValidation, Op: op, StatusCode: status, Message: msg}
	default:
		return &Error{Kind: KindHTTP, Op: op, StatusCode: status, Message: msg}
	}
}

func serverMessage(body []byte) string {
	var envelope apiErrorBody
	if err := json.Unmarshal(body, &envelope); err != nil {
		return strings.TrimSpace(string(body))
	}
	if envelope.Error != "" {
		return envelope.Error
	}
	if len(envelope.Errors) > 0 {
		var msg string
		if err := json.Unmarshal(envelope.Errors, &msg); err == nil {
			return msg
		}
		return string(envelope.Errors)
	}
	return strings.TrimSpace(string(body))
}
