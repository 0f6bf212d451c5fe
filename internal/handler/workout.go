package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fittrack/fittrack/internal/handler/dto"
	"github.com/fittrack/fittrack/internal/service"
)

// WorkoutHandler handles HTTP requests for workout operations.
type WorkoutHandler struct {
	svc    *service.WorkoutService
	logger *slog.Logger
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(svc *service.WorkoutService, logger *slog.Logger) *WorkoutHandler {
	return &WorkoutHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /workouts.
func (h *WorkoutHandler) List(w http.ResponseWriter, r *http.Request) {
	workouts, err := h.svc.ListWorkouts(r.Context())
	if err != nil {
		h.logger.Error("internal_error", "error", err)
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch workouts")
		return
	}

	writeJSON(w, http.StatusOK, dto.ToWorkoutListResponse(workouts))
}

// Create handles POST /workouts.
func (h *WorkoutHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	input := service.CreateWorkoutInput{
		WorkoutType:     req.WorkoutType,
		DurationMinutes: req.DurationMinutes,
		Calories:        req.Calories,
	}

	workout, err := h.svc.CreateWorkout(r.Context(), input)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("workout_created",
		"workout_id", workout.ID,
		"workout_type", workout.WorkoutType,
		"duration_minutes", workout.DurationMinutes,
		"calories", workout.Calories,
	)

	writeJSON(w, http.StatusCreated, dto.ToWorkoutResponse(workout))
}

// Delete handles DELETE /workouts/{id}.
func (h *WorkoutHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.writeError(w, http.StatusBadRequest, "MISSING_ID", "Workout ID is required")
		return
	}

	workout, err := h.svc.DeleteWorkout(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("workout_deleted", "workout_id", id)

	writeJSON(w, http.StatusOK, dto.ToDeleteWorkoutResponse(workout))
}

// handleServiceError maps service errors to HTTP responses.
func (h *WorkoutHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingFields):
		h.writeError(w, http.StatusBadRequest, "MISSING_FIELDS", "Missing required fields: workout_type, duration_minutes, calories")
	case errors.Is(err, service.ErrNotPositive):
		h.writeError(w, http.StatusBadRequest, "NOT_POSITIVE", "Duration and calories must be positive numbers")
	case errors.Is(err, service.ErrWorkoutNotFound):
		h.writeError(w, http.StatusNotFound, "WORKOUT_NOT_FOUND", "Workout not found")
	default:
		h.logger.Error("internal_error", "error", err)
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}

// writeError writes an error response.
func (h *WorkoutHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
