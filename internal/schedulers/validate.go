package schedulers

import (
	"fmt"

	"cpu-scheduler-simulator/internal/requests"
)

// MaxTotalBurstTime caps the summed burst time of one request. The preemptive
// policies step the clock one unit at a time, so the cap bounds their work
// and keeps the clock far from integer overflow.
const MaxTotalBurstTime = 1_000_000

func validateRequest(request *requests.ScheduleRequests) error {
	if request == nil || len(request.Jobs) == 0 {
		return ErrEmptyInput
	}
	totalBurstTime := 0
	for _, job := range request.Jobs {
		if job.BurstTime < 0 {
			return fmt.Errorf("%w: pid %d has burst time %d", ErrInvalidBurstTime, job.ProcessId, job.BurstTime)
		}
		if job.BurstTime > MaxTotalBurstTime-totalBurstTime {
			return fmt.Errorf("%w: total burst time exceeds %d at pid %d", ErrInvalidBurstTime, MaxTotalBurstTime, job.ProcessId)
		}
		totalBurstTime += job.BurstTime
	}
	return nil
}

func validateTimeQuantum(timeQuantum int) error {
	if timeQuantum <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantum, timeQuantum)
	}
	return nil
}
