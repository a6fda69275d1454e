package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/coursecast/grade-service/internal/services"
	"github.com/coursecast/grade-service/internal/utils"
	"github.com/coursecast/grade-service/internal/validator"
)

type HandlerManager struct {
	gradeHandler  *GradeHandler
	policyHandler *PolicyHandler
	importHandler *ImportHandler
}

func NewHandlerManager(
	gradeService services.GradeService,
	importService services.GradeImportService,
	validator *validator.Validator,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		gradeHandler:  NewGradeHandler(gradeService, validator, logger),
		policyHandler: NewPolicyHandler(gradeService, logger),
		importHandler: NewImportHandler(importService, logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		grades := v1.Group("/grades")
		{
			grades.POST("/calculate", hm.gradeHandler.Calculate)
			grades.POST("/what-if", hm.gradeHandler.WhatIf)
			grades.POST("/needed-scores", hm.gradeHandler.NeededScores)
			grades.POST("/scenarios", hm.gradeHandler.Scenarios)
			grades.POST("/import", hm.importHandler.ImportGrades)
		}

		policies := v1.Group("/policies")
		{
			policies.POST("/review", hm.policyHandler.ReviewPolicy)
		}
	}
}
