package schedulers

import (
	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/requests"
	"cpu-scheduler-simulator/internal/responses"

	"go.uber.org/zap"
)

// ScheduleFirstComeFirstServe runs jobs to completion in request order.
func ScheduleFirstComeFirstServe(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	if err := validateRequest(request); err != nil {
		return responses.ScheduleResponse{}, err
	}
	zap.L().Debug("running fcfs algorithm", zap.Int("jobs", len(request.Jobs)))

	return runToCompletion(FirstComeFirstServe, core.NewProccesses(request.Jobs)), nil
}

// runToCompletion is the non-preemptive core shared by fcfs, sjf and
// non-preemptive priority: each proccess holds the cpu for its whole burst.
func runToCompletion(algorithm string, proccesses []*core.Proccess) responses.ScheduleResponse {
	cpu := core.NewCpu(algorithm)
	for _, proccess := range proccesses {
		cpu.Execute(proccess, proccess.RemainingTime)
	}
	return generateResponse(cpu, len(proccesses))
}
