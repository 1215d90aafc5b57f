package schedulers

import (
	"testing"

	"cpu-scheduler-simulator/internal/requests"

	"github.com/stretchr/testify/require"
)

func TestRegistryLookup(t *testing.T) {
	registry := NewRegistry(3, []int{5, 8})

	names := make([]string, 0)
	for _, policy := range registry.Policies() {
		names = append(names, policy.Name())
		found, err := registry.Lookup(policy.Name())
		require.NoError(t, err)
		require.Equal(t, policy.Name(), found.Name())
		require.NotEmpty(t, found.Title())
	}
	require.Equal(t, []string{"fcfs", "sjf", "srjf", "priority", "priority-preemptive", "rr", "mlfq"}, names)

	policy, err := registry.Lookup(" RR ")
	require.NoError(t, err)
	require.Equal(t, RoundRobin, policy.Name())

	_, err = registry.Lookup("lottery")
	require.ErrorIs(t, err, ErrUnknownPolicy)
}

func TestRoundRobinPolicyQuantumOverride(t *testing.T) {
	policy, err := NewRegistry(100, nil).Lookup(RoundRobin)
	require.NoError(t, err)

	response, err := policy.Schedule(threeJobs())
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, pids(response))

	timeQuantum := 3
	request := threeJobs()
	request.TimeQuantum = &timeQuantum
	response, err = policy.Schedule(request)
	require.NoError(t, err)
	require.Equal(t, []int{2, 1, 3}, pids(response))

	timeQuantum = 0
	_, err = policy.Schedule(request)
	require.ErrorIs(t, err, ErrInvalidQuantum)
}

func TestMultilevelFeedbackQueuePolicyLevelsOverride(t *testing.T) {
	policy, err := NewRegistry(3, []int{100}).Lookup(MultilevelFeedbackQueue)
	require.NoError(t, err)

	request := &requests.ScheduleRequests{
		Jobs: []requests.Job{
			{ProcessId: 1, BurstTime: 5},
			{ProcessId: 2, BurstTime: 3},
			{ProcessId: 3, BurstTime: 1},
		},
	}
	response, err := policy.Schedule(request)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, pids(response))

	request.LevelsTimeQuantum = []int{2}
	response, err = policy.Schedule(request)
	require.NoError(t, err)
	require.Equal(t, []int{3, 1, 2}, pids(response))
}

func TestScheduleAll(t *testing.T) {
	registry := NewRegistry(3, []int{5, 8})
	compare, err := registry.ScheduleAll(threeJobs())
	require.NoError(t, err)
	require.Len(t, compare.Results, len(registry.Policies()))
	for i, policy := range registry.Policies() {
		require.Equal(t, policy.Name(), compare.Results[i].Algorithm)
	}

	_, err = registry.ScheduleAll(&requests.ScheduleRequests{})
	require.ErrorIs(t, err, ErrEmptyInput)
}
