package api

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"cpusched/config"
	"cpusched/internal/core"
	"cpusched/internal/requests"
	"cpusched/internal/responses"
	"cpusched/internal/schedulers"
	"cpusched/internal/store"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	PriorityNonPreemptive(ctx *fiber.Ctx) error
	PriorityPreemptive(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	ListRuns(ctx *fiber.Ctx) error
	GetRun(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config    *config.SchedulerConfig
	simulator *schedulers.Simulator
	store     store.Store // nil disables run history
	logger    *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, simulator *schedulers.Simulator, runs store.Store, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{
		config:    config,
		simulator: simulator,
		store:     runs,
		logger:    logger.With("component", "api"),
	}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestRemainingTimeFirst)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) PriorityNonPreemptive(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityNonPreemptive)
}

func (s *SchedulerHandlerImpl) PriorityPreemptive(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityPreemptive)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, policy schedulers.Policy) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	processes, err := request.Processes()
	if err != nil {
		return s.respondError(ctx, err)
	}

	quantum := request.Quantum(s.config.RoundRobinTimeQuantum)
	timeline, records, err := s.simulator.Run(processes, policy, quantum)
	if err != nil {
		return s.respondError(ctx, err)
	}
	response := schedulers.GenerateResponse(policy, quantum, timeline, records, request.Explain)

	if s.store != nil {
		run := &store.Run{
			Algorithm:   response.Algorithm,
			TimeQuantum: response.TimeQuantum,
			Request:     request,
			Response:    response,
		}
		if err := s.store.CreateRun(ctx.UserContext(), run); err != nil {
			s.logger.Error("save run", "algorithm", response.Algorithm, "error", err)
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not save run"})
		}
		response.RunId = run.ID
	}

	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	processes, err := request.Processes()
	if err != nil {
		return s.respondError(ctx, err)
	}

	quantum := request.Quantum(s.config.RoundRobinTimeQuantum)
	results, err := s.simulator.Compare(processes, quantum)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := responses.CompareResponse{Results: make([]responses.ScheduleResponse, 0, len(results))}
	for _, res := range results {
		response.Results = append(response.Results,
			schedulers.GenerateResponse(res.Policy, quantum, res.Timeline, res.Processes, request.Explain))
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) ListRuns(ctx *fiber.Ctx) error {
	if s.store == nil {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "run history is disabled"})
	}
	runs, total, err := s.store.ListRuns(ctx.UserContext(), ctx.QueryInt("limit"), ctx.QueryInt("offset"))
	if err != nil {
		s.logger.Error("list runs", "error", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not list runs"})
	}

	response := responses.RunListResponse{Runs: make([]responses.RunSummary, 0, len(runs)), Total: total}
	for _, run := range runs {
		response.Runs = append(response.Runs, responses.RunSummary{
			RunId:              run.ID,
			Algorithm:          run.Algorithm,
			TimeQuantum:        run.TimeQuantum,
			ProcessCount:       len(run.Response.Details),
			TotalTime:          run.Response.TotalTime,
			AverageWaitingTime: run.Response.AverageWaitingTime,
			CreatedAt:          run.CreatedAt.Format(time.RFC3339),
		})
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) GetRun(ctx *fiber.Ctx) error {
	if s.store == nil {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "run history is disabled"})
	}
	run, err := s.store.GetRun(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		s.logger.Error("get run", "id", ctx.Params("id"), "error", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not load run"})
	}
	if run == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "run not found"})
	}

	response := run.Response
	response.RunId = run.ID
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

// respondError maps scheduling errors to HTTP statuses. Invariant violations
// are bugs and are logged.
func (s *SchedulerHandlerImpl) respondError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, core.ErrValidation),
		errors.Is(err, core.ErrInvalidConfiguration),
		errors.Is(err, core.ErrUnsupportedPolicy):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	s.logger.Error("simulation failed", "path", ctx.Path(), "error", err)
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
}
