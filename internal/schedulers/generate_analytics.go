package schedulers

import (
	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/responses"
	"cpu-scheduler-simulator/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// generateResponse assembles the result of a finished run. Every policy ends
// with it so averages are computed in exactly one place.
func generateResponse(cpu *core.Cpu, processCount int) responses.ScheduleResponse {
	completed := cpu.Completed()
	proccessDetails := make([]responses.ProcessResponse, 0, len(completed))
	for _, proccess := range completed {
		proccessDetails = append(proccessDetails, generateProcessDetails(proccess))
	}

	averageWaitingTime, averageResponseTime, averageTimeAroundTime := util.CalculateAverage(proccessDetails)
	waitingTimeStdDev, turnAroundTimeStdDev := util.CalculateStdDev(proccessDetails)

	metric := cpu.Metric()
	var utilization, throughput float64
	if metric.TotalTime > 0 {
		utilization = float64(metric.UtilizationTime) / float64(metric.TotalTime)
		throughput = float64(processCount) / float64(metric.TotalTime)
	}

	response := responses.ScheduleResponse{
		RunId:                 uuid.New().String(),
		Algorithm:             cpu.Algorithm(),
		TotalTime:             metric.TotalTime,
		IdleTime:              metric.IdleTime,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		WaitingTimeStdDev:     waitingTimeStdDev,
		TurnAroundTimeStdDev:  turnAroundTimeStdDev,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		ContextSwitches:       cpu.ContextSwitches(),
		Timeline:              cpu.Timeline(),
		Details:               proccessDetails,
	}
	zap.L().Debug("schedule finished",
		zap.String("algorithm", response.Algorithm),
		zap.String("run_id", response.RunId),
		zap.Float64("average_waiting_time", averageWaitingTime),
		zap.Float64("average_turn_around_time", averageTimeAroundTime))
	return response
}

func generateProcessDetails(proccess *core.Proccess) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      proccess.Job.ProcessId,
		BurstTime:      proccess.Job.BurstTime,
		Priority:       proccess.Job.Priority,
		WaitingTime:    proccess.WaitingTime(),
		TurnAroundTime: proccess.TurnAroundTime(),
		ResponseTime:   proccess.ResponseTime(),
		CompletionTime: proccess.CompletionTime,
	}
}
