package schedulers

import (
	"sort"

	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/requests"
	"cpu-scheduler-simulator/internal/responses"

	"go.uber.org/zap"
)

// ScheduleShortestJobFirst runs jobs to completion by ascending burst time.
// Equal bursts keep request order.
func ScheduleShortestJobFirst(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	if err := validateRequest(request); err != nil {
		return responses.ScheduleResponse{}, err
	}
	zap.L().Debug("running sjf algorithm", zap.Int("jobs", len(request.Jobs)))

	proccesses := sortShortestJob(core.NewProccesses(request.Jobs))
	return runToCompletion(ShortestJobFirst, proccesses), nil
}

func sortShortestJob(proccesses []*core.Proccess) []*core.Proccess {
	sort.SliceStable(proccesses, func(i, j int) bool {
		return proccesses[i].Job.BurstTime < proccesses[j].Job.BurstTime
	})
	return proccesses
}
