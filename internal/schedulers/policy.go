package schedulers

import (
	"fmt"
	"strings"

	"cpu-scheduler-simulator/internal/requests"
	"cpu-scheduler-simulator/internal/responses"
)

const (
	FirstComeFirstServe       = "fcfs"
	ShortestJobFirst          = "sjf"
	ShortestRemainingJobFirst = "srjf"
	RoundRobin                = "rr"
	PriorityNonPreemptive     = "priority"
	PriorityPreemptive        = "priority-preemptive"
	MultilevelFeedbackQueue   = "mlfq"
)

// Policy is one scheduling algorithm bound to its parameters.
type Policy interface {
	Name() string
	Title() string
	Schedule(request *requests.ScheduleRequests) (responses.ScheduleResponse, error)
}

type simplePolicy struct {
	name     string
	title    string
	schedule func(request *requests.ScheduleRequests) (responses.ScheduleResponse, error)
}

func (p simplePolicy) Name() string  { return p.name }
func (p simplePolicy) Title() string { return p.title }

func (p simplePolicy) Schedule(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	return p.schedule(request)
}

// roundRobinPolicy uses the request's quantum when present.
type roundRobinPolicy struct {
	timeQuantum int
}

func (p roundRobinPolicy) Name() string  { return RoundRobin }
func (p roundRobinPolicy) Title() string { return "Round Robin (RR)" }

func (p roundRobinPolicy) Schedule(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	timeQuantum := p.timeQuantum
	if request != nil && request.TimeQuantum != nil {
		timeQuantum = *request.TimeQuantum
	}
	return ScheduleRoundRobin(request, timeQuantum)
}

type multilevelFeedbackQueuePolicy struct {
	levelsTimeQuantum []int
}

func (p multilevelFeedbackQueuePolicy) Name() string  { return MultilevelFeedbackQueue }
func (p multilevelFeedbackQueuePolicy) Title() string { return "Multilevel Feedback Queue (MLFQ)" }

func (p multilevelFeedbackQueuePolicy) Schedule(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	levelsTimeQuantum := p.levelsTimeQuantum
	if request != nil && request.LevelsTimeQuantum != nil {
		levelsTimeQuantum = request.LevelsTimeQuantum
	}
	return ScheduleMultilevelFeedbackQueue(request, levelsTimeQuantum)
}

// Registry holds every policy in menu order.
type Registry struct {
	policies []Policy
}

func NewRegistry(timeQuantum int, levelsTimeQuantum []int) *Registry {
	return &Registry{policies: []Policy{
		simplePolicy{FirstComeFirstServe, "First-Come, First-Served (FCFS)", ScheduleFirstComeFirstServe},
		simplePolicy{ShortestJobFirst, "Shortest Job First (SJF)", ScheduleShortestJobFirst},
		simplePolicy{ShortestRemainingJobFirst, "Shortest Remaining Job First (SRJF)", ScheduleShortestRemainingJobFirst},
		simplePolicy{PriorityNonPreemptive, "Priority Scheduling (Non-Preemptive)", SchedulePriorityNonPreemptive},
		simplePolicy{PriorityPreemptive, "Priority Scheduling (Preemptive)", SchedulePriorityPreemptive},
		roundRobinPolicy{timeQuantum: timeQuantum},
		multilevelFeedbackQueuePolicy{levelsTimeQuantum: levelsTimeQuantum},
	}}
}

func (r *Registry) Policies() []Policy {
	return r.policies
}

func (r *Registry) Lookup(name string) (Policy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, policy := range r.policies {
		if policy.Name() == name {
			return policy, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// ScheduleAll runs every policy on the same request. The first failure
// aborts the comparison.
func (r *Registry) ScheduleAll(request *requests.ScheduleRequests) (responses.CompareResponse, error) {
	results := make([]responses.ScheduleResponse, 0, len(r.policies))
	for _, policy := range r.policies {
		response, err := policy.Schedule(request)
		if err != nil {
			return responses.CompareResponse{}, fmt.Errorf("%s: %w", policy.Name(), err)
		}
		results = append(results, response)
	}
	return responses.CompareResponse{Results: results}, nil
}
