package util

import (
	"cpu-scheduler-simulator/internal/responses"

	"gonum.org/v1/gonum/stat"
)

// CalculateAverage returns zero averages for an empty slice.
func CalculateAverage(proccessDetails []responses.ProcessResponse) (averageWaitingTime, averageResponseTime, averageTimeAroundTime float64) {
	if len(proccessDetails) == 0 {
		return
	}
	waitingTimes, responseTimes, turnAroundTimes := columns(proccessDetails)

	averageWaitingTime = stat.Mean(waitingTimes, nil)
	averageResponseTime = stat.Mean(responseTimes, nil)
	averageTimeAroundTime = stat.Mean(turnAroundTimes, nil)
	return
}

// CalculateStdDev returns the population standard deviation of waiting and
// turnaround times.
func CalculateStdDev(proccessDetails []responses.ProcessResponse) (waitingTimeStdDev, turnAroundTimeStdDev float64) {
	if len(proccessDetails) == 0 {
		return
	}
	waitingTimes, _, turnAroundTimes := columns(proccessDetails)

	_, waitingTimeStdDev = stat.PopMeanStdDev(waitingTimes, nil)
	_, turnAroundTimeStdDev = stat.PopMeanStdDev(turnAroundTimes, nil)
	return
}

func columns(proccessDetails []responses.ProcessResponse) (waitingTimes, responseTimes, turnAroundTimes []float64) {
	waitingTimes = make([]float64, len(proccessDetails))
	responseTimes = make([]float64, len(proccessDetails))
	turnAroundTimes = make([]float64, len(proccessDetails))
	for i, proccess := range proccessDetails {
		waitingTimes[i] = float64(proccess.WaitingTime)
		responseTimes[i] = float64(proccess.ResponseTime)
		turnAroundTimes[i] = float64(proccess.TurnAroundTime)
	}
	return
}
