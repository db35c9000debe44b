package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/architect/francais-pro/internal/common/errors"
	"github.com/architect/francais-pro/internal/common/middleware"
	"github.com/architect/francais-pro/internal/common/validation"
	"github.com/architect/francais-pro/internal/exercises/models"
	"github.com/architect/francais-pro/internal/exercises/services"
	userrepo "github.com/architect/francais-pro/internal/users/repository"
)

func validationFailure(c *gin.Context, problems []validation.ValidationError) bool {
	if len(problems) == 0 {
		return false
	}
	middleware.JSONErrorResponse(c, errors.Validation("invalid request", problems[0].Message))
	return true
}

// ExerciseHandler serves generation and submission. It carries the
// generator because the provider and breaker are per-process state.
type ExerciseHandler struct {
	generator *services.Generator
}

func NewExerciseHandler(generator *services.Generator) *ExerciseHandler {
	return &ExerciseHandler{generator: generator}
}

// Generate produces one exercise adapted to the caller
func (h *ExerciseHandler) Generate(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		middleware.JSONErrorResponse(c, errors.Unauthorized("authentication required"))
		return
	}

	var req models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid request body", err.Error()))
		return
	}
	if validationFailure(c, validation.FocusSkills(req.Module, req.FocusSkills)) {
		return
	}

	user, err := userrepo.GetUserByID(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	exercise := h.generator.GenerateExercise(c.Request.Context(), user, req)
	c.JSON(http.StatusOK, exercise)
}

// GenerateSeries produces a fixed-length series of exercises
func (h *ExerciseHandler) GenerateSeries(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		middleware.JSONErrorResponse(c, errors.Unauthorized("authentication required"))
		return
	}

	var req models.GenerateSeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid request body", err.Error()))
		return
	}
	if validationFailure(c, validation.FocusSkills(req.Module, req.FocusSkills)) {
		return
	}

	user, err := userrepo.GetUserByID(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	series := h.generator.GenerateSeries(c.Request.Context(), user, req)
	c.JSON(http.StatusOK, gin.H{"exercises": series})
}

// Submit records an answered or timed-out exercise
func (h *ExerciseHandler) Submit(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		middleware.JSONErrorResponse(c, errors.Unauthorized("authentication required"))
		return
	}

	var req models.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid request body", err.Error()))
		return
	}
	if validationFailure(c, validation.SkillID(req.SkillID, models.GeneralSkillID)) {
		return
	}

	signals, err := services.RecordOutcome(userID, req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, signals)
}
