package schedulers

import (
	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/requests"
	"cpu-scheduler-simulator/internal/responses"

	"github.com/gammazero/deque"
	"go.uber.org/zap"
)

// ScheduleRoundRobin rotates jobs through a FIFO queue, giving each at most
// timeQuantum units per turn before sending it to the tail.
func ScheduleRoundRobin(request *requests.ScheduleRequests, timeQuantum int) (responses.ScheduleResponse, error) {
	if err := validateRequest(request); err != nil {
		return responses.ScheduleResponse{}, err
	}
	if err := validateTimeQuantum(timeQuantum); err != nil {
		return responses.ScheduleResponse{}, err
	}
	zap.L().Debug("running roundRobin algorithm", zap.Int("jobs", len(request.Jobs)), zap.Int("time_quantum", timeQuantum))

	proccesses := core.NewProccesses(request.Jobs)
	cpu := core.NewCpu(RoundRobin)

	var roundRobinQueue deque.Deque[*core.Proccess]
	for _, proccess := range proccesses {
		roundRobinQueue.PushBack(proccess)
	}

	for roundRobinQueue.Len() > 0 {
		proccess := roundRobinQueue.PopFront()
		if !cpu.Execute(proccess, timeQuantum) {
			zap.L().Debug("time quantum expired", zap.Int("pid", proccess.Job.ProcessId), zap.Int("clock", cpu.Now()))
			roundRobinQueue.PushBack(proccess)
		}
	}

	return generateResponse(cpu, len(proccesses)), nil
}
