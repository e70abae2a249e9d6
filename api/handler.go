package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"cpusched/config"
	"cpusched/internal/core"
	"cpusched/internal/procs"
	"cpusched/internal/requests"
	"cpusched/internal/responses"
	"cpusched/internal/schedulers"
	"cpusched/internal/subnet"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Snapshot(ctx *fiber.Ctx) error
	Subnet(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	jobs, _, err := parseJobs(ctx)
	if err != nil {
		return nil
	}
	return ctx.JSON(toResponse("fcfs", schedulers.FirstComeFirstServe(jobs)))
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	jobs, _, err := parseJobs(ctx)
	if err != nil {
		return nil
	}
	return ctx.JSON(toResponse("sjf", schedulers.ShortestJobFirst(jobs)))
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	jobs, request, err := parseJobs(ctx)
	if err != nil {
		return nil
	}
	return ctx.JSON(toResponse("rr", schedulers.RoundRobin(jobs, s.quantum(request))))
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	jobs, _, err := parseJobs(ctx)
	if err != nil {
		return nil
	}
	return ctx.JSON(toResponse("priority", schedulers.Priority(jobs)))
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	jobs, request, err := parseJobs(ctx)
	if err != nil {
		return nil
	}
	return ctx.JSON(s.runAll(jobs, s.quantum(request)))
}

func (s *SchedulerHandlerImpl) Snapshot(ctx *fiber.Ctx) error {
	records := procs.Snapshot(s.config.SnapshotProcessLimit)
	jobs, err := procs.Jobs(records)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	processes := make([]responses.SnapshotProcessResponse, 0, len(records))
	for _, r := range records {
		processes = append(processes, responses.SnapshotProcessResponse{
			Pid:        r.Pid,
			Command:    r.Command,
			Elapsed:    r.Elapsed,
			Priority:   r.Priority,
			Nice:       r.Nice,
			CpuPercent: r.CpuPercent,
		})
	}
	return ctx.JSON(responses.SnapshotResponse{
		Processes: processes,
		Schedules: s.runAll(jobs, s.config.RoundRobinTimeQuantum),
	})
}

func (s *SchedulerHandlerImpl) Subnet(ctx *fiber.Ctx) error {
	hosts, err := strconv.Atoi(ctx.Query("hosts"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "hosts must be an integer"})
	}
	plan, err := subnet.Split(ctx.Query("cidr"), hosts)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(plan)
}

func (s *SchedulerHandlerImpl) quantum(request requests.ScheduleRequest) int {
	if request.TimeQuantum > 0 {
		return request.TimeQuantum
	}
	return s.config.RoundRobinTimeQuantum
}

func (s *SchedulerHandlerImpl) runAll(jobs []core.Job, quantum int) []responses.ScheduleResponse {
	return []responses.ScheduleResponse{
		toResponse("fcfs", schedulers.FirstComeFirstServe(jobs)),
		toResponse("sjf", schedulers.ShortestJobFirst(jobs)),
		toResponse("rr", schedulers.RoundRobin(jobs, quantum)),
		toResponse("priority", schedulers.Priority(jobs)),
	}
}

// parseJobs decodes the request body and constructs validated jobs. On
// failure it writes the 400 response itself and returns the underlying
// error so handlers can bail out.
func parseJobs(ctx *fiber.Ctx) ([]core.Job, requests.ScheduleRequest, error) {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		_ = ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
		return nil, request, err
	}
	jobs, err := toJobs(request.Jobs)
	if err != nil {
		_ = ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		return nil, request, err
	}
	return jobs, request, nil
}

func toJobs(in []requests.Job) ([]core.Job, error) {
	jobs := make([]core.Job, 0, len(in))
	for _, j := range in {
		job, err := core.NewJob(j.ProcessId, j.Name, j.ArrivalTime, j.BurstTime, j.Priority)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func toResponse(algorithm string, rep core.Report) responses.ScheduleResponse {
	gantt := make([]responses.SegmentResponse, 0, len(rep.Gantt))
	for _, seg := range rep.Gantt {
		gantt = append(gantt, responses.SegmentResponse{ProcessId: seg.Pid, Start: seg.Start, End: seg.End})
	}
	details := make([]responses.ProcessResponse, 0, len(rep.Results))
	for _, r := range rep.Results {
		details = append(details, responses.ProcessResponse{
			ProcessId:      r.Pid,
			Name:           r.Name,
			ArrivalTime:    r.Arrival,
			BurstTime:      r.Burst,
			Priority:       r.Priority,
			StartTime:      r.Start,
			CompletionTime: r.Completion,
			WaitingTime:    r.Waiting,
			TurnAroundTime: r.Turnaround,
		})
	}
	return responses.ScheduleResponse{
		Algorithm:             algorithm,
		Gantt:                 gantt,
		Details:               details,
		AverageWaitingTime:    rep.AverageWaiting,
		AverageTurnAroundTime: rep.AverageTurnaround,
	}
}
