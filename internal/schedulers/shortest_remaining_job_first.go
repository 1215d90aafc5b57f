package schedulers

import (
	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/requests"
	"cpu-scheduler-simulator/internal/responses"

	"go.uber.org/zap"
)

// ScheduleShortestRemainingJobFirst preempts every time unit in favour of the
// job with the least remaining time.
func ScheduleShortestRemainingJobFirst(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	if err := validateRequest(request); err != nil {
		return responses.ScheduleResponse{}, err
	}
	zap.L().Debug("running srjf algorithm", zap.Int("jobs", len(request.Jobs)))

	return runPreemptive(ShortestRemainingJobFirst, core.NewProccesses(request.Jobs), remainingTime), nil
}

func remainingTime(proccess *core.Proccess) int {
	return proccess.RemainingTime
}
