// Package client provides an HTTP client for the workout API plus a
// client-side query cache that keeps recently fetched lists warm.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fittrack/fittrack/internal/model"
)

// APIError is an error response returned by the server.
type APIError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *APIError) Error() string {
	return e.Message
}

// DeletedWorkout echoes the core fields of a deleted workout.
type DeletedWorkout struct {
	ID              string `json:"id"`
	WorkoutType     string `json:"workout_type"`
	DurationMinutes int    `json:"duration_minutes"`
	Calories        int    `json:"calories"`
}

// DeleteResult is the server's confirmation of a delete.
type DeleteResult struct {
	Message string         `json:"message"`
	Workout DeletedWorkout `json:"workout"`
}

type createRequest struct {
	WorkoutType     string `json:"workout_type"`
	DurationMinutes int    `json:"duration_minutes"`
	Calories        int    `json:"calories"`
}

// Client talks to the workout API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the API at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// List fetches all workouts, newest first.
func (c *Client) List(ctx context.Context) ([]model.Workout, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/workouts", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var workouts []model.Workout
	if err := json.NewDecoder(resp.Body).Decode(&workouts); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return workouts, nil
}

// Create records a new workout and returns it as stored by the server.
func (c *Client) Create(ctx context.Context, workoutType string, durationMinutes, calories int) (*model.Workout, error) {
	body, err := json.Marshal(createRequest{
		WorkoutType:     workoutType,
		DurationMinutes: durationMinutes,
		Calories:        calories,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/workouts", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, decodeAPIError(resp)
	}

	var workout model.Workout
	if err := json.NewDecoder(resp.Body).Decode(&workout); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &workout, nil
}

// Delete removes the workout with the given ID.
func (c *Client) Delete(ctx context.Context, id string) (*DeleteResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/workouts/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var result DeleteResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}

// decodeAPIError turns a non-success response into an *APIError,
// preserving the server's error message verbatim.
func decodeAPIError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error == "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    body.Error,
		Code:       body.Code,
	}
}
