package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"

	"cpusched/api"
	"cpusched/config"
	"cpusched/internal/procs"
	"cpusched/internal/render"
	"cpusched/internal/schedulers"
)

func main() {
	demo := flag.Bool("demo", false, "schedule a live process snapshot with every algorithm and print the results")
	flag.Parse()

	cfg := config.GetSchedulerConfig()
	if *demo {
		runDemo(cfg)
		return
	}

	app := fiber.New()
	handler := api.NewSchedulerHandlerImpl(cfg)
	api.RegisterRoutes(app.Group("/api"), handler)

	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}

func runDemo(cfg *config.SchedulerConfig) {
	records := procs.Snapshot(cfg.SnapshotProcessLimit)
	render.Snapshot(os.Stdout, records)

	jobs, err := procs.Jobs(records)
	if err != nil {
		log.Fatalln(err)
	}

	fcfs := schedulers.FirstComeFirstServe(jobs)
	sjf := schedulers.ShortestJobFirst(jobs)
	rr := schedulers.RoundRobin(jobs, cfg.RoundRobinTimeQuantum)
	priority := schedulers.Priority(jobs)

	render.Report(os.Stdout, "First-come, first-serve", fcfs)
	render.Report(os.Stdout, "Shortest-job-first", sjf)
	render.Report(os.Stdout, "Round-robin", rr)
	render.Report(os.Stdout, "Priority", priority)

	render.Summary(os.Stdout, []render.SummaryRow{
		{Algorithm: "FCFS", AverageWaiting: fcfs.AverageWaiting, AverageTurnaround: fcfs.AverageTurnaround},
		{Algorithm: "SJF", AverageWaiting: sjf.AverageWaiting, AverageTurnaround: sjf.AverageTurnaround},
		{Algorithm: "Round Robin", AverageWaiting: rr.AverageWaiting, AverageTurnaround: rr.AverageTurnaround},
		{Algorithm: "Priority", AverageWaiting: priority.AverageWaiting, AverageTurnaround: priority.AverageTurnaround},
	})
}
