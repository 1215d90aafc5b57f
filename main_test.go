package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"cpu-scheduler-simulator/internal/schedulers"

	"github.com/stretchr/testify/require"
)

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,burst,priority\n1,5,2\n2,3,1\n3,8,3\n"), 0o644))
	registry := schedulers.NewRegistry(3, []int{5, 8})

	var out bytes.Buffer
	require.NoError(t, runFile(&out, registry, path, "sjf"))
	require.Contains(t, out.String(), "Shortest Job First (SJF)")
	require.NotContains(t, out.String(), "Round Robin (RR)")

	out.Reset()
	require.NoError(t, runFile(&out, registry, path, "all"))
	for _, policy := range registry.Policies() {
		require.Contains(t, out.String(), policy.Title())
	}

	require.ErrorIs(t, runFile(&out, registry, path, "lottery"), schedulers.ErrUnknownPolicy)
}

func TestRunFileReportsScheduleErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,-5\n"), 0o644))

	var out bytes.Buffer
	err := runFile(&out, schedulers.NewRegistry(3, nil), path, "all")
	require.ErrorIs(t, err, schedulers.ErrInvalidBurstTime)
}
