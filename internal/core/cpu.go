package core

import (
	"cpu-scheduler-simulator/internal/responses"

	"go.uber.org/zap"
)

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Cpu is a single simulated core driven by a logical clock. Exactly one
// process runs at any instant; the clock only moves forward.
type Cpu struct {
	algorithm       string
	clock           int
	utilizationTime int
	timeline        []responses.TimeSlice
	completed       []*Proccess
	lastDispatched  *Proccess
	contextSwitches int
	logger          *zap.Logger
}

func NewCpu(algorithm string) *Cpu {
	return &Cpu{
		algorithm: algorithm,
		timeline:  make([]responses.TimeSlice, 0),
		completed: make([]*Proccess, 0),
		logger:    zap.L().With(zap.String("algorithm", algorithm)),
	}
}

func (c *Cpu) Algorithm() string {
	return c.algorithm
}

func (c *Cpu) Now() int {
	return c.clock
}

// Execute runs proccess for up to units time units and reports whether it
// completed. A proccess with nothing left completes without the clock moving.
func (c *Cpu) Execute(proccess *Proccess, units int) bool {
	if proccess.Completed() {
		return true
	}
	if units > proccess.RemainingTime {
		units = proccess.RemainingTime
	}
	if units < 0 {
		units = 0
	}
	c.dispatch(proccess)
	if proccess.FirstExecution == notStarted {
		proccess.FirstExecution = c.clock
	}

	if units > 0 {
		c.record(proccess.Job.ProcessId, c.clock, c.clock+units)
		proccess.RemainingTime -= units
		c.clock += units
		c.utilizationTime += units
		c.logger.Debug("proccess executed",
			zap.Int("pid", proccess.Job.ProcessId),
			zap.Int("units", units),
			zap.Int("remaining", proccess.RemainingTime),
			zap.Int("clock", c.clock))
	}

	if proccess.RemainingTime == 0 {
		proccess.CompletionTime = c.clock
		c.completed = append(c.completed, proccess)
		c.logger.Debug("proccess completed",
			zap.Int("pid", proccess.Job.ProcessId),
			zap.Int("waiting_time", proccess.WaitingTime()),
			zap.Int("turn_around_time", proccess.TurnAroundTime()))
		return true
	}
	return false
}

// dispatch counts a context switch whenever the cpu is handed to a different
// proccess, including one that completes without running.
func (c *Cpu) dispatch(proccess *Proccess) {
	if c.lastDispatched != nil && c.lastDispatched != proccess {
		c.contextSwitches++
	}
	c.lastDispatched = proccess
}

// record appends a slice to the timeline, extending the last one when the
// same proccess keeps the cpu.
func (c *Cpu) record(pid, start, end int) {
	if n := len(c.timeline); n > 0 {
		last := &c.timeline[n-1]
		if last.ProcessId == pid && last.End == start {
			last.End = end
			return
		}
	}
	c.timeline = append(c.timeline, responses.TimeSlice{ProcessId: pid, Start: start, End: end})
}

// Completed returns proccesses in completion order.
func (c *Cpu) Completed() []*Proccess {
	return c.completed
}

func (c *Cpu) Timeline() []responses.TimeSlice {
	return c.timeline
}

// ContextSwitches counts dispatches, not timeline slices: a zero-burst
// proccess run between two turns of another still costs two switches even
// though the timeline shows one slice.
func (c *Cpu) ContextSwitches() int {
	return c.contextSwitches
}

func (c *Cpu) Metric() CpuMetric {
	return CpuMetric{
		TotalTime:       c.clock,
		UtilizationTime: c.utilizationTime,
		IdleTime:        c.clock - c.utilizationTime,
	}
}
