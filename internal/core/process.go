package core

import "cpu-scheduler-simulator/internal/requests"

const notStarted = -1

// Proccess is the simulator's private, mutable copy of a job.
type Proccess struct {
	Job            requests.Job
	RemainingTime  int
	Index          int // position in the request, used for tie-breaks
	FirstExecution int
	CompletionTime int
}

// NewProccesses copies jobs so a run never mutates the caller's request.
func NewProccesses(jobs []requests.Job) []*Proccess {
	proccesses := make([]*Proccess, len(jobs))
	for i, job := range jobs {
		proccesses[i] = &Proccess{
			Job:            job,
			RemainingTime:  job.BurstTime,
			Index:          i,
			FirstExecution: notStarted,
			CompletionTime: notStarted,
		}
	}
	return proccesses
}

func (p *Proccess) Completed() bool {
	return p.CompletionTime != notStarted
}

func (p *Proccess) TurnAroundTime() int {
	return p.CompletionTime
}

func (p *Proccess) WaitingTime() int {
	return p.CompletionTime - p.Job.BurstTime
}

func (p *Proccess) ResponseTime() int {
	return p.FirstExecution
}
