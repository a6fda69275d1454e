package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/coursecast/grade-service/internal/cache"
	"github.com/coursecast/grade-service/internal/engine"
	"github.com/coursecast/grade-service/internal/events"
	"github.com/coursecast/grade-service/internal/models"
	"github.com/coursecast/grade-service/internal/validator"
)

// GradeService exposes the calculation engine behind validated request
// snapshots. Every call is stateless: the complete policy+grades input
// arrives in the request and a complete result goes back, so concurrent
// requests need no coordination.
type GradeService interface {
	Calculate(ctx context.Context, req *CalculateRequest) (*models.CalculationResult, error)
	WhatIf(ctx context.Context, req *WhatIfRequest) (*models.CalculationResult, error)
	NeededScores(ctx context.Context, req *NeededScoresRequest) (*models.NeededScoresResult, error)
	Scenarios(ctx context.Context, req *ScenariosRequest) (*models.ScenarioSet, error)
	ReviewPolicy(ctx context.Context, policy *models.GradingPolicy) (*PolicyReview, error)
}

// ===== REQUEST / RESPONSE STRUCTURES =====

type CalculateRequest struct {
	GradingPolicy    *models.GradingPolicy   `json:"grading_policy" validate:"required"`
	GradesByCategory models.GradesByCategory `json:"grades_by_category"`
}

type WhatIfRequest struct {
	GradingPolicy      *models.GradingPolicy                `json:"grading_policy" validate:"required"`
	GradesByCategory   models.GradesByCategory              `json:"grades_by_category"`
	HypotheticalScores map[string]models.HypotheticalScore `json:"hypothetical_scores" validate:"required,min=1,dive"`
}

type NeededScoresRequest struct {
	GradingPolicy    *models.GradingPolicy   `json:"grading_policy" validate:"required"`
	GradesByCategory models.GradesByCategory `json:"grades_by_category"`
	TargetGrade      string                  `json:"target_grade" validate:"required"`

	// RemainingAssignments overrides the derived remaining-work set when
	// present; omitted means derive it from the policy and snapshot.
	RemainingAssignments []models.GradeItem `json:"remaining_assignments"`
}

type ScenariosRequest struct {
	GradingPolicy    *models.GradingPolicy   `json:"grading_policy" validate:"required"`
	GradesByCategory models.GradesByCategory `json:"grades_by_category"`
}

// PolicyReview is the non-fatal health report for an imported policy.
type PolicyReview struct {
	CourseName    string             `json:"course_name"`
	CategoryCount int                `json:"category_count"`
	TotalWeight   float64            `json:"total_weight"`
	GradeScale    map[string]float64 `json:"grade_scale"`
	WeightWarning string             `json:"weight_warning,omitempty"`
}

// ===== SERVICE =====

type gradeService struct {
	ops       *ServiceLogger
	validator *validator.Validator
	cache     cache.CacheService
	publisher events.EventPublisher
	cacheTTL  time.Duration
}

// NewGradeService wires the engine to its ambient collaborators. Cache and
// publisher may be nil; both are optional accelerants, never load-bearing.
func NewGradeService(
	logger *slog.Logger,
	v *validator.Validator,
	cacheService cache.CacheService,
	publisher events.EventPublisher,
	cacheTTL time.Duration,
) GradeService {
	return &gradeService{
		ops:       NewServiceLogger(logger, "grades"),
		validator: v,
		cache:     cacheService,
		publisher: publisher,
		cacheTTL:  cacheTTL,
	}
}

func (s *gradeService) Calculate(ctx context.Context, req *CalculateRequest) (result *models.CalculationResult, err error) {
	start := time.Now()
	defer func() { s.ops.LogOperation(ctx, "calculate", start, err, "course", courseName(req.GradingPolicy)) }()

	if err = s.validator.Validate(req); err != nil {
		return nil, err
	}

	cacheKey := requestDigest("calculate", req)
	if s.cache != nil {
		var cached models.CalculationResult
		if cacheErr := s.cache.Get(ctx, cacheKey, &cached); cacheErr == nil {
			s.ops.Debug("calculation served from cache", "key", cacheKey)
			return &cached, nil
		}
	}

	result, err = engine.Calculate(req.GradingPolicy, req.GradesByCategory)
	if err != nil {
		return nil, err
	}

	scenarios, err := engine.Scenarios(req.GradingPolicy, req.GradesByCategory, nil)
	if err != nil {
		return nil, err
	}
	result.Scenarios = scenarios

	if s.cache != nil {
		if cacheErr := s.cache.Set(ctx, cacheKey, result, s.cacheTTL); cacheErr != nil {
			s.ops.Warn("failed to cache calculation result", "error", cacheErr)
		}
	}
	s.publish(ctx, events.NewReportCalculatedEvent(req.GradingPolicy, result))

	return result, nil
}

func (s *gradeService) WhatIf(ctx context.Context, req *WhatIfRequest) (result *models.CalculationResult, err error) {
	start := time.Now()
	defer func() {
		s.ops.LogOperation(ctx, "what_if", start, err,
			"course", courseName(req.GradingPolicy),
			"hypotheticals", len(req.HypotheticalScores))
	}()

	if err = s.validator.Validate(req); err != nil {
		return nil, err
	}

	result, err = engine.WhatIf(req.GradingPolicy, req.GradesByCategory, req.HypotheticalScores)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.NewWhatIfEvent(req.GradingPolicy, result))

	return result, nil
}

func (s *gradeService) NeededScores(ctx context.Context, req *NeededScoresRequest) (result *models.NeededScoresResult, err error) {
	start := time.Now()
	defer func() {
		s.ops.LogOperation(ctx, "needed_scores", start, err,
			"course", courseName(req.GradingPolicy),
			"target", req.TargetGrade)
	}()

	if err = s.validator.Validate(req); err != nil {
		return nil, err
	}

	result, err = engine.NeededScores(req.GradingPolicy, req.GradesByCategory, req.TargetGrade, req.RemainingAssignments)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *gradeService) Scenarios(ctx context.Context, req *ScenariosRequest) (result *models.ScenarioSet, err error) {
	start := time.Now()
	defer func() { s.ops.LogOperation(ctx, "scenarios", start, err, "course", courseName(req.GradingPolicy)) }()

	if err = s.validator.Validate(req); err != nil {
		return nil, err
	}

	result, err = engine.Scenarios(req.GradingPolicy, req.GradesByCategory, nil)
	return result, err
}

func (s *gradeService) ReviewPolicy(ctx context.Context, policy *models.GradingPolicy) (review *PolicyReview, err error) {
	start := time.Now()
	defer func() { s.ops.LogOperation(ctx, "review_policy", start, err, "course", courseName(policy)) }()

	if err = s.validator.Validate(policy); err != nil {
		return nil, err
	}
	if err = engine.ValidatePolicy(policy); err != nil {
		return nil, err
	}

	review = &PolicyReview{
		CourseName:    policy.CourseName,
		CategoryCount: len(policy.Categories),
		TotalWeight:   policy.TotalWeight(),
		GradeScale:    policy.Scale(),
	}
	if math.Abs(review.TotalWeight-100) > 2 {
		review.WeightWarning = fmt.Sprintf(
			"category weights sum to %.1f%%, not 100%%; review and adjust before relying on projections",
			review.TotalWeight)
	}
	return review, nil
}

// publish sends a report event when a publisher is wired. Event delivery is
// best-effort; a broker outage must not fail a pure computation.
func (s *gradeService) publish(ctx context.Context, event *events.ReportEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishReportEvent(ctx, event); err != nil {
		s.ops.Warn("failed to publish report event", "event_type", event.Type, "error", err)
	}
}

// courseName tolerates the nil policy of a not-yet-validated request.
func courseName(policy *models.GradingPolicy) string {
	if policy == nil {
		return ""
	}
	return policy.CourseName
}

// requestDigest derives a stable cache key from the canonical JSON encoding
// of a request (encoding/json sorts map keys).
func requestDigest(prefix string, req interface{}) string {
	data, err := json.Marshal(req)
	if err != nil {
		return prefix + ":unkeyed"
	}
	sum := sha256.Sum256(data)
	return "grades:" + prefix + ":" + hex.EncodeToString(sum[:])
}
