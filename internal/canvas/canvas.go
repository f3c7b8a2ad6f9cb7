// Package canvas is a small client for the Canvas LMS REST API.
//
// It covers what a lab note needs: the user's courses, the assignment
// group holding the labs, the assignments in that group and the HTML
// description of a single assignment.
package canvas

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	ErrUnauthorized = errors.New("canvas rejected the token")
	ErrNotFound     = errors.New("canvas resource not found")
	ErrNoLabGroup   = errors.New("no lab group for this course")
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d, body: %s", e.Code, e.Body)
}

func (e *StatusError) Unwrap() error {
	switch e.Code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}

// Course is an entry of GET /courses.
type Course struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	IsPublic bool   `json:"is_public"`
}

func (c Course) String() string { return c.Name }

// AssignmentGroup is an entry of GET /courses/:id/assignment_groups.
type AssignmentGroup struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Assignment is an entry of an assignment listing.
type Assignment struct {
	ID                      int    `json:"id"`
	Name                    string `json:"name"`
	HasSubmittedSubmissions bool   `json:"has_submitted_submissions"`
}

func (a Assignment) String() string { return a.Name }

// AssignmentData is a single assignment with its HTML description.
type AssignmentData struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Client talks to one Canvas instance with a bearer token.
type Client struct {
	client  *http.Client
	baseURL string
	token   string
}

// NewClient creates a client for the API rooted at baseURL,
// e.g. https://canvas.example.edu/api/v1.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
	}
}

// ListCourses returns the courses visible to the token's user.
func (c *Client) ListCourses(ctx context.Context) ([]Course, error) {
	var raw []json.RawMessage
	if err := c.get(ctx, "/courses", &raw); err != nil {
		return nil, fmt.Errorf("course endpoint failed: %w", err)
	}
	return decodeEach[Course](raw), nil
}

// ListAssignmentGroups returns the assignment groups of a course.
func (c *Client) ListAssignmentGroups(ctx context.Context, courseID int) ([]AssignmentGroup, error) {
	var raw []json.RawMessage
	if err := c.get(ctx, fmt.Sprintf("/courses/%d/assignment_groups", courseID), &raw); err != nil {
		return nil, fmt.Errorf("assignment group endpoint failed: %w", err)
	}
	return decodeEach[AssignmentGroup](raw), nil
}

// ListAssignments returns the assignments of one group.
func (c *Client) ListAssignments(ctx context.Context, courseID, groupID int) ([]Assignment, error) {
	var raw []json.RawMessage
	path := fmt.Sprintf("/courses/%d/assignment_groups/%d/assignments", courseID, groupID)
	if err := c.get(ctx, path, &raw); err != nil {
		return nil, fmt.Errorf("assignment endpoint failed: %w", err)
	}
	return decodeEach[Assignment](raw), nil
}

// LabAssignments returns the assignments of the group named groupName.
func (c *Client) LabAssignments(ctx context.Context, courseID int, groupName string) ([]Assignment, error) {
	groups, err := c.ListAssignmentGroups(ctx, courseID)
	if err != nil {
		return nil, err
	}
	groupID, err := LabGroupID(groups, groupName)
	if err != nil {
		return nil, err
	}
	return c.ListAssignments(ctx, courseID, groupID)
}

// GetAssignment returns one assignment with its description. Assignments
// that are not published yet come back without a description.
func (c *Client) GetAssignment(ctx context.Context, courseID, assignmentID int) (*AssignmentData, error) {
	var data AssignmentData
	path := fmt.Sprintf("/courses/%d/assignments/%d", courseID, assignmentID)
	if err := c.get(ctx, path, &data); err != nil {
		return nil, fmt.Errorf("assignment data endpoint failed: %w", err)
	}
	return &data, nil
}

// LabGroupID finds the group called name.
func LabGroupID(groups []AssignmentGroup, name string) (int, error) {
	for _, g := range groups {
		if g.Name == name {
			return g.ID, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrNoLabGroup, name)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	q := u.Query()
	q.Set("per_page", "100")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeEach decodes every element it can and skips the rest.
func decodeEach[T any](raw []json.RawMessage) []T {
	items := make([]T, 0, len(raw))
	for _, r := range raw {
		var item T
		if err := json.Unmarshal(r, &item); err != nil {
			log.Printf("Skipping malformed entry: %v", err)
			continue
		}
		items = append(items, item)
	}
	return items
}
