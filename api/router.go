package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(router fiber.Router, handler SchedulerHandler) {
	v1 := router.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/srjf", handler.ShortestRemainingJobFirst)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/priority", handler.PriorityNonPreemptive)
		v1.Post("/priority-preemptive", handler.PriorityPreemptive)
		v1.Post("/mlfq", handler.MultilevelFeedbackQueue)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Post("/schedule/:policy", handler.Schedule)
		v1.Get("/policies", handler.Policies)
	}
}
