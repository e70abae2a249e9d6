package api

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the v1 API onto the given router.
func RegisterRoutes(router fiber.Router, handler SchedulerHandler) {
	v1 := router.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/priority", handler.Priority)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Get("/snapshot", handler.Snapshot)
		v1.Get("/subnet", handler.Subnet)
	}
}
