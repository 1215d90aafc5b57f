package api

import (
	"errors"

	"cpu-scheduler-simulator/internal/requests"
	"cpu-scheduler-simulator/internal/schedulers"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingJobFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	PriorityPreemptive(ctx *fiber.Ctx) error
	PriorityNonPreemptive(ctx *fiber.Ctx) error
	MultilevelFeedbackQueue(ctx *fiber.Ctx) error
	Schedule(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Policies(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	registry *schedulers.Registry
	logger   *zap.Logger
}

func NewSchedulerHandlerImpl(registry *schedulers.Registry, logger *zap.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{registry: registry, logger: logger}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) ShortestRemainingJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestRemainingJobFirst)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) PriorityPreemptive(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityPreemptive)
}

func (s *SchedulerHandlerImpl) PriorityNonPreemptive(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityNonPreemptive)
}

func (s *SchedulerHandlerImpl) MultilevelFeedbackQueue(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.MultilevelFeedbackQueue)
}

// Schedule picks the policy from the :policy path parameter.
func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	return s.schedule(ctx, ctx.Params("policy"))
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return s.fail(ctx, fiber.StatusBadRequest, err)
	}
	response, err := s.registry.ScheduleAll(request)
	if err != nil {
		return s.fail(ctx, statusFor(err), err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Policies(ctx *fiber.Ctx) error {
	policies := make([]fiber.Map, 0, len(s.registry.Policies()))
	for _, policy := range s.registry.Policies() {
		policies = append(policies, fiber.Map{"name": policy.Name(), "title": policy.Title()})
	}
	return ctx.JSON(fiber.Map{"policies": policies})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, name string) error {
	policy, err := s.registry.Lookup(name)
	if err != nil {
		return s.fail(ctx, fiber.StatusNotFound, err)
	}
	request, err := parseRequest(ctx)
	if err != nil {
		return s.fail(ctx, fiber.StatusBadRequest, err)
	}
	response, err := policy.Schedule(request)
	if err != nil {
		return s.fail(ctx, statusFor(err), err)
	}
	return ctx.JSON(response)
}

func parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, error) {
	request := new(requests.ScheduleRequests)
	if err := ctx.BodyParser(request); err != nil {
		return nil, errors.New("invalid request format")
	}
	return request, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, schedulers.ErrUnknownPolicy):
		return fiber.StatusNotFound
	case errors.Is(err, schedulers.ErrEmptyInput),
		errors.Is(err, schedulers.ErrInvalidBurstTime),
		errors.Is(err, schedulers.ErrInvalidQuantum):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, status int, err error) error {
	s.logger.Warn("can not process request",
		zap.String("path", ctx.Path()),
		zap.Int("status", status),
		zap.Error(err))
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}
