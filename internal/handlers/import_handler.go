package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursecast/grade-service/internal/models"
	"github.com/coursecast/grade-service/internal/services"
	"github.com/coursecast/grade-service/internal/utils"
)

type ImportHandler struct {
	BaseHandler
	importService services.GradeImportService
}

func NewImportHandler(importService services.GradeImportService, logger utils.Logger) *ImportHandler {
	return &ImportHandler{
		BaseHandler:   NewBaseHandler(logger),
		importService: importService,
	}
}

// ImportGrades parses an uploaded gradebook export into a grades snapshot
// @Summary Import grades from file
// @Description Parses a CSV or Excel gradebook export; an optional grading_policy form field groups rows into policy categories
// @Tags grades
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Gradebook export (.csv, .xlsx)"
// @Param grading_policy formData string false "Grading policy JSON for category matching"
// @Success 200 {object} SuccessResponse{data=services.GradeImportResult}
// @Failure 400 {object} ErrorResponse
// @Router /grades/import [post]
func (h *ImportHandler) ImportGrades(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "File is required",
			Details: err.Error(),
		})
		return
	}
	defer file.Close()

	h.LogRequest(c, "Importing grades", "filename", header.Filename, "size", header.Size)

	var policy *models.GradingPolicy
	if raw := c.PostForm("grading_policy"); raw != "" {
		policy = &models.GradingPolicy{}
		if err := json.Unmarshal([]byte(raw), policy); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "Invalid grading_policy field",
				Details: err.Error(),
			})
			return
		}
	}

	result, err := h.importService.ImportFromFile(c.Request.Context(), file, header.Filename, policy)
	if err != nil {
		h.LogError(c, err, "Failed to import grades", "filename", header.Filename)
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Grades imported successfully",
		Data:    result,
	})
}
