package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"tripweave/internal/domain"
	"tripweave/internal/dto"
	"tripweave/internal/model"
	"tripweave/internal/planner"
	"tripweave/internal/service"
)

type Controller struct {
	service service.Service
}

func NewController(service service.Service) *Controller {
	return &Controller{
		service: service,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", c.HealthCheck)
	v1 := router.Group("/api/v1")
	{
		v1.POST("/plan", c.Plan)
		v1.POST("/baseline", c.Baseline)
		v1.POST("/evaluate", c.Evaluate)
		v1.GET("/evaluate/runs/:id", c.GetRun)
	}
}

// HealthCheck godoc
// @Summary Show the status of server.
// @Description get the status of server.
// @Tags health
// @Accept */*
// @Produce json
// @Success 200 {object} model.Response
// @Router /health [get]
func (c *Controller) HealthCheck(ctx *gin.Context) {
	log.Info().Msg("Health check")
	ctx.JSON(http.StatusOK, model.NewResponse("OK", nil))
}

// Plan godoc
// @Summary Build a multi-day itinerary
// @Description partition places into days, route each day, and score the result
// @Tags planner
// @Accept json
// @Produce json
// @Param input body domain.PlannerInput true "Planner input"
// @Success 200 {object} model.Response{data=domain.PlannerOutput}
// @Failure 400 {object} model.Response
// @Failure 500 {object} model.Response
// @Router /api/v1/plan [post]
func (c *Controller) Plan(ctx *gin.Context) {
	var input domain.PlannerInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid input", nil))
		return
	}

	out, err := c.service.Plan(input)
	if err != nil {
		status, msg := errorResponse(err)
		ctx.JSON(status, model.NewResponse(msg, out))
		return
	}

	ctx.JSON(http.StatusOK, model.NewResponse("Plan generated successfully", out))
}

// Baseline godoc
// @Summary Generate a random-but-legal baseline schedule
// @Description normalize places and assemble an unoptimized schedule, scored the same way as Plan
// @Tags planner
// @Accept json
// @Produce json
// @Param input body domain.PlannerInput true "Planner input"
// @Success 200 {object} model.Response{data=domain.PlannerOutput}
// @Failure 400 {object} model.Response
// @Failure 500 {object} model.Response
// @Router /api/v1/baseline [post]
func (c *Controller) Baseline(ctx *gin.Context) {
	var input domain.PlannerInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid input", nil))
		return
	}

	out, err := c.service.GenerateBaseline(input)
	if err != nil {
		status, msg := errorResponse(err)
		ctx.JSON(status, model.NewResponse(msg, out))
		return
	}

	ctx.JSON(http.StatusOK, model.NewResponse("Baseline generated successfully", out))
}

// Evaluate godoc
// @Summary Evaluate the planner against a sampled random-baseline population
// @Description run the planner once and numRandomSolutions baselines, report percentile/z-score statistics, and persist the run
// @Tags evaluation
// @Accept json
// @Produce json
// @Param input body dto.EvaluateRequest true "Evaluation request"
// @Success 200 {object} model.Response{data=evaluation.Report}
// @Failure 400 {object} model.Response
// @Failure 500 {object} model.Response
// @Router /api/v1/evaluate [post]
func (c *Controller) Evaluate(ctx *gin.Context) {
	var req dto.EvaluateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid input", nil))
		return
	}

	report, err := c.service.Evaluate(req)
	if err != nil {
		log.Error().Err(err).Msg("failed to persist evaluation run")
		ctx.JSON(http.StatusInternalServerError, model.NewResponse("Failed to persist evaluation run", nil))
		return
	}

	ctx.JSON(http.StatusOK, model.NewResponse("Evaluation completed", report))
}

// GetRun godoc
// @Summary Fetch a persisted evaluation run
// @Tags evaluation
// @Accept json
// @Produce json
// @Param id path string true "Evaluation run ID"
// @Success 200 {object} model.Response{data=model.EvaluationRun}
// @Failure 404 {object} model.Response
// @Router /api/v1/evaluate/runs/{id} [get]
func (c *Controller) GetRun(ctx *gin.Context) {
	id := ctx.Param("id")
	run, err := c.service.GetRun(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, model.NewResponse("Evaluation run not found", nil))
		return
	}
	ctx.JSON(http.StatusOK, model.NewResponse("Evaluation run fetched successfully", run))
}

// errorResponse maps a planner.Error's Kind to an HTTP status, the way the
// teacher's CRUD handlers translate a service error into a status + message.
func errorResponse(err error) (int, string) {
	var perr *planner.Error
	if errors.As(err, &perr) {
		switch perr.Kind() {
		case planner.InputInvalid, planner.NoLodging, planner.CapacityViolation:
			return http.StatusBadRequest, perr.Error()
		}
	}
	return http.StatusInternalServerError, "Failed to generate schedule"
}
