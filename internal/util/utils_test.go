package util

import (
	"testing"

	"cpu-scheduler-simulator/internal/responses"

	"github.com/stretchr/testify/require"
)

func TestCalculateAverage(t *testing.T) {
	details := []responses.ProcessResponse{
		{WaitingTime: 0, ResponseTime: 0, TurnAroundTime: 5},
		{WaitingTime: 5, ResponseTime: 5, TurnAroundTime: 8},
		{WaitingTime: 8, ResponseTime: 8, TurnAroundTime: 16},
	}
	averageWaitingTime, averageResponseTime, averageTimeAroundTime := CalculateAverage(details)
	require.InDelta(t, 13.0/3.0, averageWaitingTime, 1e-9)
	require.InDelta(t, 13.0/3.0, averageResponseTime, 1e-9)
	require.InDelta(t, 29.0/3.0, averageTimeAroundTime, 1e-9)
}

func TestCalculateAverageEmpty(t *testing.T) {
	averageWaitingTime, averageResponseTime, averageTimeAroundTime := CalculateAverage(nil)
	require.Zero(t, averageWaitingTime)
	require.Zero(t, averageResponseTime)
	require.Zero(t, averageTimeAroundTime)
}

func TestCalculateStdDev(t *testing.T) {
	details := []responses.ProcessResponse{
		{WaitingTime: 2, TurnAroundTime: 4},
		{WaitingTime: 4, TurnAroundTime: 4},
		{WaitingTime: 4, TurnAroundTime: 4},
		{WaitingTime: 4, TurnAroundTime: 4},
		{WaitingTime: 5, TurnAroundTime: 4},
		{WaitingTime: 5, TurnAroundTime: 4},
		{WaitingTime: 7, TurnAroundTime: 4},
		{WaitingTime: 9, TurnAroundTime: 4},
	}
	waitingTimeStdDev, turnAroundTimeStdDev := CalculateStdDev(details)
	require.InDelta(t, 2.0, waitingTimeStdDev, 1e-9)
	require.Zero(t, turnAroundTimeStdDev)

	waitingTimeStdDev, turnAroundTimeStdDev = CalculateStdDev(nil)
	require.Zero(t, waitingTimeStdDev)
	require.Zero(t, turnAroundTimeStdDev)
}
