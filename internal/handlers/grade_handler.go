package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursecast/grade-service/internal/services"
	"github.com/coursecast/grade-service/internal/utils"
	"github.com/coursecast/grade-service/internal/validator"
)

type GradeHandler struct {
	BaseHandler
	gradeService services.GradeService
	validator    *validator.Validator
}

func NewGradeHandler(
	gradeService services.GradeService,
	validator *validator.Validator,
	logger utils.Logger,
) *GradeHandler {
	return &GradeHandler{
		BaseHandler:  NewBaseHandler(logger),
		gradeService: gradeService,
		validator:    validator,
	}
}

// Calculate computes the full grade report for a policy+grades snapshot
// @Summary Calculate grade report
// @Description Computes category results, overall percentage, letter grade and scenario projections
// @Tags grades
// @Accept json
// @Produce json
// @Param request body services.CalculateRequest true "Grading policy and grades snapshot"
// @Success 200 {object} SuccessResponse{data=models.CalculationResult}
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /grades/calculate [post]
func (h *GradeHandler) Calculate(c *gin.Context) {
	h.LogRequest(c, "Calculating grade report")

	var req services.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	result, err := h.gradeService.Calculate(c.Request.Context(), &req)
	if err != nil {
		h.LogError(c, err, "Failed to calculate grade report")
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Grade report calculated successfully",
		Data:    result,
	})
}

// WhatIf evaluates hypothetical scores layered over the current snapshot
// @Summary Evaluate what-if scores
// @Tags grades
// @Accept json
// @Produce json
// @Param request body services.WhatIfRequest true "Snapshot plus hypothetical scores"
// @Success 200 {object} SuccessResponse{data=models.CalculationResult}
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /grades/what-if [post]
func (h *GradeHandler) WhatIf(c *gin.Context) {
	h.LogRequest(c, "Evaluating what-if scores")

	var req services.WhatIfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	result, err := h.gradeService.WhatIf(c.Request.Context(), &req)
	if err != nil {
		h.LogError(c, err, "Failed to evaluate what-if scores")
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "What-if report calculated successfully",
		Data:    result,
	})
}

// NeededScores solves for the uniform score required on remaining work
// @Summary Solve needed scores for a target grade
// @Tags grades
// @Accept json
// @Produce json
// @Param request body services.NeededScoresRequest true "Snapshot plus target letter grade"
// @Success 200 {object} SuccessResponse{data=models.NeededScoresResult}
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /grades/needed-scores [post]
func (h *GradeHandler) NeededScores(c *gin.Context) {
	h.LogRequest(c, "Solving needed scores")

	var req services.NeededScoresRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	result, err := h.gradeService.NeededScores(c.Request.Context(), &req)
	if err != nil {
		h.LogError(c, err, "Failed to solve needed scores", "target", req.TargetGrade)
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Needed scores solved successfully",
		Data:    result,
	})
}

// Scenarios projects best-case, worst-case and current-pace outcomes
// @Summary Project grade scenarios
// @Tags grades
// @Accept json
// @Produce json
// @Param request body services.ScenariosRequest true "Grading policy and grades snapshot"
// @Success 200 {object} SuccessResponse{data=models.ScenarioSet}
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /grades/scenarios [post]
func (h *GradeHandler) Scenarios(c *gin.Context) {
	h.LogRequest(c, "Projecting grade scenarios")

	var req services.ScenariosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	result, err := h.gradeService.Scenarios(c.Request.Context(), &req)
	if err != nil {
		h.LogError(c, err, "Failed to project scenarios")
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Scenarios projected successfully",
		Data:    result,
	})
}

// mapServiceError maps service errors to HTTP status codes.
func mapServiceError(c *gin.Context, err error) {
	// Handle custom error types first
	var validationErrors services.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: validationErrors,
			Code:    "VALIDATION_FAILED",
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrInvalidPolicy):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Message: "Grading policy is invalid",
			Details: err.Error(),
			Code:    "INVALID_POLICY",
		})
	case errors.Is(err, services.ErrInvalidGradeItem):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Message: "Grade item is invalid",
			Details: err.Error(),
			Code:    "INVALID_GRADE_ITEM",
		})
	case errors.Is(err, services.ErrUnknownGradeLetter):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Target grade is not in the grade scale",
			Details: err.Error(),
			Code:    "UNKNOWN_GRADE_LETTER",
		})
	case errors.Is(err, services.ErrUnsupportedFormat):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Unsupported file format",
			Details: err.Error(),
			Code:    "UNSUPPORTED_FORMAT",
		})
	case errors.Is(err, services.ErrEmptyImport):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "File contains no grade rows",
			Details: err.Error(),
			Code:    "EMPTY_IMPORT",
		})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
			Code:    "INTERNAL_ERROR",
		})
	}
}
