package client

// http_client.go handles HTTP client functionality for the blogify CLI.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"blogify/internal/http-api/dto"
	"blogify/pkg/reactionview"
)

// HTTPClient talks to the blogify API server. With a token set it also
// satisfies reactionview.Client, so the react command can drive a
// reactionview.View directly over it.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// RegisterResponse mirrors the /auth/register payload.
type RegisterResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// MessageResponse mirrors the generic {"message": ...} payloads.
type MessageResponse struct {
	Message string `json:"message"`
}

func NewHTTPClient(apiURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: apiURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SetToken sets the bearer token used for authenticated requests.
func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

// do issues a JSON request and decodes the response body into out (when
// out is non-nil). Non-2xx statuses are turned into errors carrying the
// server's error message when one is present.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	response, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(response.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s: %s", response.Status, apiErr.Error)
		}
		return fmt.Errorf("request failed with status: %s", response.Status)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(response.Body).Decode(out)
}

// --- auth ---

func (c *HTTPClient) Register(request *dto.RegisterRequest) (*RegisterResponse, error) {
	var result RegisterResponse
	if err := c.do(context.Background(), http.MethodPost, "/api/auth/register", request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) Login(request *dto.LoginRequest) (*dto.AuthResponse, error) {
	var result dto.AuthResponse
	if err := c.do(context.Background(), http.MethodPost, "/api/auth/login", request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) RevokeToken(refreshToken string) error {
	request := dto.RevokeTokenRequest{RefreshToken: refreshToken}
	return c.do(context.Background(), http.MethodPost, "/api/auth/revoke", &request, nil)
}

// --- posts ---

func (c *HTTPClient) CreatePost(title, content string) (*dto.PostResponse, error) {
	request := dto.CreatePostDTO{Title: title, Content: content}
	var result dto.PostResponse
	if err := c.do(context.Background(), http.MethodPost, "/api/posts", &request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) GetPost(postID int64) (*dto.PostResponse, error) {
	var result dto.PostResponse
	if err := c.do(context.Background(), http.MethodGet, fmt.Sprintf("/api/posts/%d", postID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) ListPosts(page, pageSize int) (*dto.PaginatedPostResponse, error) {
	var result dto.PaginatedPostResponse
	path := fmt.Sprintf("/api/posts?page=%d&page_size=%d", page, pageSize)
	if err := c.do(context.Background(), http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) UpdatePost(postID int64, title, content string) (*dto.PostResponse, error) {
	request := dto.UpdatePostDTO{Title: title, Content: content}
	var result dto.PostResponse
	if err := c.do(context.Background(), http.MethodPut, fmt.Sprintf("/api/posts/%d", postID), &request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) DeletePost(postID int64) error {
	return c.do(context.Background(), http.MethodDelete, fmt.Sprintf("/api/posts/%d", postID), nil, nil)
}

// --- comments ---

func (c *HTTPClient) CreateComment(postID int64, content string) (*dto.CommentResponse, error) {
	request := dto.CreateCommentDTO{Content: content}
	var result dto.CommentResponse
	if err := c.do(context.Background(), http.MethodPost, fmt.Sprintf("/api/posts/%d/comments", postID), &request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) ListComments(postID int64) (*dto.CommentListResponse, error) {
	var result dto.CommentListResponse
	if err := c.do(context.Background(), http.MethodGet, fmt.Sprintf("/api/posts/%d/comments", postID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) DeleteComment(commentID int64) error {
	return c.do(context.Background(), http.MethodDelete, fmt.Sprintf("/api/comments/%d", commentID), nil, nil)
}

// --- reactions ---

// GetReactions fetches the authoritative per-kind summaries for a post.
func (c *HTTPClient) GetReactions(ctx context.Context, postID int64) ([]reactionview.Summary, error) {
	var result []dto.ReactionSummaryResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/posts/%d/reactions", postID), nil, &result); err != nil {
		return nil, err
	}

	summaries := make([]reactionview.Summary, 0, len(result))
	for _, s := range result {
		summaries = append(summaries, reactionview.Summary{
			Kind:  s.Kind,
			Count: s.Count,
			Users: s.Users,
		})
	}
	return summaries, nil
}

// ToggleReaction toggles the caller's reaction of the given kind on a post.
func (c *HTTPClient) ToggleReaction(ctx context.Context, postID int64, kind string) error {
	request := dto.ToggleReactionDTO{Kind: kind}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/posts/%d/react", postID), &request, nil)
}
