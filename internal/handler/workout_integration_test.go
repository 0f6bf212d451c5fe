package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fittrack/fittrack/internal/cache"
	"github.com/fittrack/fittrack/internal/handler/dto"
	"github.com/fittrack/fittrack/internal/metrics"
	"github.com/fittrack/fittrack/internal/repository"
	"github.com/fittrack/fittrack/internal/service"
	"github.com/fittrack/fittrack/internal/testutil"
)

func TestWorkouts_CreateListDelete(t *testing.T) {
	_, _, _, router := newWorkoutTestEnv(t)

	before := time.Now().UTC().Add(-time.Second)

	// Create
	body := `{"workout_type": "Running", "duration_minutes": 30, "calories": 300}`
	rec := doRequest(router, http.MethodPost, "/workouts", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created dto.WorkoutResponse
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if created.WorkoutType != "Running" || created.DurationMinutes != 30 || created.Calories != 300 {
		t.Fatalf("unexpected created workout: %+v", created)
	}
	if created.CreatedAt.Before(before) {
		t.Fatalf("created_at %v earlier than request time %v", created.CreatedAt, before)
	}

	// List includes the new workout first
	rec = doRequest(router, http.MethodGet, "/workouts", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var listed []dto.WorkoutResponse
	if err := json.NewDecoder(rec.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listed) == 0 || listed[0].ID != created.ID {
		t.Fatalf("expected new workout first, got %+v", listed)
	}

	// Delete echoes core fields
	rec = doRequest(router, http.MethodDelete, "/workouts/"+created.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var deleted dto.DeleteWorkoutResponse
	if err := json.NewDecoder(rec.Body).Decode(&deleted); err != nil {
		t.Fatalf("decode delete response: %v", err)
	}
	if deleted.Message != "Workout deleted successfully" {
		t.Fatalf("unexpected delete message: %q", deleted.Message)
	}
	if deleted.Workout.ID != created.ID || deleted.Workout.Calories != 300 {
		t.Fatalf("unexpected deleted workout: %+v", deleted.Workout)
	}

	// Gone from subsequent lists
	rec = doRequest(router, http.MethodGet, "/workouts", "")
	if err := json.NewDecoder(rec.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	for _, w := range listed {
		if w.ID == created.ID {
			t.Fatal("deleted workout still listed")
		}
	}

	// Second delete of the same id observes not-found
	rec = doRequest(router, http.MethodDelete, "/workouts/"+created.ID, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 on second delete, got %d", rec.Code)
	}
}

func TestWorkouts_ListOrderingNewestFirst(t *testing.T) {
	ctx, _, svc, router := newWorkoutTestEnv(t)

	for _, workoutType := range []string{"Walking", "Cycling", "Swimming"} {
		if _, err := svc.CreateWorkout(ctx, service.CreateWorkoutInput{
			WorkoutType:     workoutType,
			DurationMinutes: 20,
			Calories:        150,
		}); err != nil {
			t.Fatalf("create workout: %v", err)
		}
	}

	rec := doRequest(router, http.MethodGet, "/workouts", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var listed []dto.WorkoutResponse
	if err := json.NewDecoder(rec.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("expected 3 workouts, got %d", len(listed))
	}
	for i := 1; i < len(listed); i++ {
		if listed[i].CreatedAt.After(listed[i-1].CreatedAt) {
			t.Fatalf("list not newest-first at index %d", i)
		}
	}
	if listed[0].WorkoutType != "Swimming" {
		t.Fatalf("expected most recent workout first, got %s", listed[0].WorkoutType)
	}
}

func TestWorkouts_ValidationPersistsNothing(t *testing.T) {
	_, _, _, router := newWorkoutTestEnv(t)

	bad := []string{
		`{"workout_type": "", "duration_minutes": 30, "calories": 300}`,
		`{"workout_type": "Running", "duration_minutes": 0, "calories": 300}`,
		`{"workout_type": "Running", "duration_minutes": 30, "calories": -5}`,
		`{"duration_minutes": 30, "calories": 300}`,
	}
	for _, body := range bad {
		rec := doRequest(router, http.MethodPost, "/workouts", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400 for %s, got %d", body, rec.Code)
		}
	}

	rec := doRequest(router, http.MethodGet, "/workouts", "")
	var listed []dto.WorkoutResponse
	if err := json.NewDecoder(rec.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("expected empty list, got %d rows", len(listed))
	}
}

func TestWorkouts_EmptyListIsArray(t *testing.T) {
	_, _, _, router := newWorkoutTestEnv(t)

	rec := doRequest(router, http.MethodGet, "/workouts", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Fatalf("expected empty JSON array, got %s", got)
	}
}

func TestWorkouts_DeleteNonexistent(t *testing.T) {
	_, _, _, router := newWorkoutTestEnv(t)

	rec := doRequest(router, http.MethodDelete, "/workouts/01HQZ0000000000000000NOPE0", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}

	var response dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if response.Code != "WORKOUT_NOT_FOUND" {
		t.Fatalf("expected WORKOUT_NOT_FOUND, got %q", response.Code)
	}
}

func TestWorkouts_ListCacheInvalidation(t *testing.T) {
	ctx, recorder, svc, router := newWorkoutTestEnv(t)

	// First list misses and backfills, second hits.
	doRequest(router, http.MethodGet, "/workouts", "")
	doRequest(router, http.MethodGet, "/workouts", "")

	snap := recorder.Snapshot()
	if snap.ListCacheMisses != 1 || snap.ListCacheHits != 1 {
		t.Fatalf("unexpected cache counters: hits=%d misses=%d", snap.ListCacheHits, snap.ListCacheMisses)
	}

	// A create invalidates, so the next list misses again and sees the row.
	created, err := svc.CreateWorkout(ctx, service.CreateWorkoutInput{
		WorkoutType:     "Rowing",
		DurationMinutes: 25,
		Calories:        220,
	})
	if err != nil {
		t.Fatalf("create workout: %v", err)
	}

	rec := doRequest(router, http.MethodGet, "/workouts", "")
	var listed []dto.WorkoutResponse
	if err := json.NewDecoder(rec.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Fatalf("expected fresh list with created workout, got %+v", listed)
	}

	snap = recorder.Snapshot()
	if snap.ListCacheMisses != 2 {
		t.Fatalf("expected second cache miss after invalidation, got %d", snap.ListCacheMisses)
	}
}

func doRequest(router *chi.Mux, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func newWorkoutTestEnv(t *testing.T) (context.Context, *metrics.InMemoryRecorder, *service.WorkoutService, *chi.Mux) {
	t.Helper()

	ctx := context.Background()
	dbURL := testutil.RequireEnv(t, "TEST_DATABASE_URL")
	redisURL := testutil.RequireEnv(t, "TEST_REDIS_URL")

	repo, err := repository.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(repo.Close)

	unlock, err := testutil.AcquireDBLock(ctx, repo.Pool())
	if err != nil {
		t.Fatalf("acquire db lock: %v", err)
	}
	t.Cleanup(func() {
		_ = unlock()
	})

	if err := testutil.ResetWorkoutsSchema(ctx, repo.Pool()); err != nil {
		t.Fatalf("reset schema: %v", err)
	}

	cacheClient, err := cache.New(ctx, redisURL)
	if err != nil {
		t.Fatalf("connect redis: %v", err)
	}
	t.Cleanup(func() {
		_ = cacheClient.Close()
	})

	if err := testutil.FlushRedis(ctx, cacheClient.Client()); err != nil {
		t.Fatalf("flush redis: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	recorder := metrics.NewInMemory()
	svc := service.NewWorkoutService(repo, cacheClient, logger, recorder)

	workoutHandler := NewWorkoutHandler(svc, logger)

	router := chi.NewRouter()
	router.Route("/workouts", func(r chi.Router) {
		r.Get("/", workoutHandler.List)
		r.Post("/", workoutHandler.Create)
		r.Delete("/{id}", workoutHandler.Delete)
	})

	return ctx, recorder, svc, router
}
