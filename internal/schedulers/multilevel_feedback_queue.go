package schedulers

import (
	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/requests"
	"cpu-scheduler-simulator/internal/responses"

	"github.com/gammazero/deque"
	"go.uber.org/zap"
)

// ScheduleMultilevelFeedbackQueue uses one round robin level per entry of
// timeQuantumList followed by a final fcfs level. Every job starts on the
// first level and drops one level each time it uses up its quantum. The
// highest non-empty level is always served first.
func ScheduleMultilevelFeedbackQueue(request *requests.ScheduleRequests, timeQuantumList []int) (responses.ScheduleResponse, error) {
	if err := validateRequest(request); err != nil {
		return responses.ScheduleResponse{}, err
	}
	for _, timeQuantum := range timeQuantumList {
		if err := validateTimeQuantum(timeQuantum); err != nil {
			return responses.ScheduleResponse{}, err
		}
	}
	zap.L().Debug("running mlfq algorithm", zap.Int("jobs", len(request.Jobs)), zap.Ints("levels_time_quantum", timeQuantumList))

	proccesses := core.NewProccesses(request.Jobs)
	cpu := core.NewCpu(MultilevelFeedbackQueue)

	levels := make([]deque.Deque[*core.Proccess], len(timeQuantumList)+1)
	for _, proccess := range proccesses {
		levels[0].PushBack(proccess)
	}

	for {
		level := highestReadyLevel(levels)
		if level < 0 {
			break
		}
		proccess := levels[level].PopFront()

		timeQuantum := proccess.RemainingTime // fcfs level
		if level < len(timeQuantumList) {
			timeQuantum = timeQuantumList[level]
		}
		if !cpu.Execute(proccess, timeQuantum) {
			next := getNextLevel(level, len(levels))
			zap.L().Debug("proccess demoted", zap.Int("pid", proccess.Job.ProcessId), zap.Int("level", next))
			levels[next].PushBack(proccess)
		}
	}

	return generateResponse(cpu, len(proccesses)), nil
}

func highestReadyLevel(levels []deque.Deque[*core.Proccess]) int {
	for i := range levels {
		if levels[i].Len() > 0 {
			return i
		}
	}
	return -1
}

// getNextLevel keeps the last level for proccesses already on it.
func getNextLevel(level, levelCount int) int {
	if level+1 < levelCount {
		return level + 1
	}
	return levelCount - 1
}
