package schedulers

import (
	"sort"

	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/requests"
	"cpu-scheduler-simulator/internal/responses"

	"go.uber.org/zap"
)

// SchedulePriorityPreemptive re-selects the highest priority (lowest value)
// uncompleted job every time unit.
func SchedulePriorityPreemptive(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	if err := validateRequest(request); err != nil {
		return responses.ScheduleResponse{}, err
	}
	zap.L().Debug("running preemptive priority algorithm", zap.Int("jobs", len(request.Jobs)))

	return runPreemptive(PriorityPreemptive, core.NewProccesses(request.Jobs), priority), nil
}

// SchedulePriorityNonPreemptive runs jobs to completion by ascending priority
// value. Equal priorities keep request order.
func SchedulePriorityNonPreemptive(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	if err := validateRequest(request); err != nil {
		return responses.ScheduleResponse{}, err
	}
	zap.L().Debug("running non-preemptive priority algorithm", zap.Int("jobs", len(request.Jobs)))

	proccesses := sortByPriority(core.NewProccesses(request.Jobs))
	return runToCompletion(PriorityNonPreemptive, proccesses), nil
}

func priority(proccess *core.Proccess) int {
	return proccess.Job.Priority
}

func sortByPriority(proccesses []*core.Proccess) []*core.Proccess {
	sort.SliceStable(proccesses, func(i, j int) bool {
		return proccesses[i].Job.Priority < proccesses[j].Job.Priority
	})
	return proccesses
}
