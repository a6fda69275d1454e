package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursecast/grade-service/internal/models"
	"github.com/coursecast/grade-service/internal/services"
	"github.com/coursecast/grade-service/internal/utils"
)

type PolicyHandler struct {
	BaseHandler
	gradeService services.GradeService
}

func NewPolicyHandler(gradeService services.GradeService, logger utils.Logger) *PolicyHandler {
	return &PolicyHandler{
		BaseHandler:  NewBaseHandler(logger),
		gradeService: gradeService,
	}
}

// ReviewPolicy checks a grading policy and reports non-fatal issues
// @Summary Review grading policy
// @Description Validates a grading policy and reports weight-sum warnings
// @Tags policies
// @Accept json
// @Produce json
// @Param policy body models.GradingPolicy true "Grading policy"
// @Success 200 {object} SuccessResponse{data=services.PolicyReview}
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /policies/review [post]
func (h *PolicyHandler) ReviewPolicy(c *gin.Context) {
	h.LogRequest(c, "Reviewing grading policy")

	var policy models.GradingPolicy
	if err := c.ShouldBindJSON(&policy); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	review, err := h.gradeService.ReviewPolicy(c.Request.Context(), &policy)
	if err != nil {
		h.LogError(c, err, "Failed to review policy", "course", policy.CourseName)
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Policy reviewed successfully",
		Data:    review,
	})
}
