package schedulers

import (
	"cmp"

	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/responses"

	"github.com/addrummond/heap"
)

type readyProccess struct {
	key      int
	proccess *core.Proccess
}

// Cmp orders by key, then by request position so the earliest job wins ties.
func (a *readyProccess) Cmp(b *readyProccess) int {
	if c := cmp.Compare(a.key, b.key); c != 0 {
		return c
	}
	return cmp.Compare(a.proccess.Index, b.proccess.Index)
}

// runPreemptive advances the clock one unit at a time, always giving the cpu
// to the uncompleted proccess with the smallest key. Completed proccesses
// leave the heap, so only ready ones are ever compared.
func runPreemptive(algorithm string, proccesses []*core.Proccess, key func(*core.Proccess) int) responses.ScheduleResponse {
	cpu := core.NewCpu(algorithm)

	var readyHeap heap.Heap[readyProccess, heap.Min]
	for _, proccess := range proccesses {
		heap.PushOrderable(&readyHeap, readyProccess{key: key(proccess), proccess: proccess})
	}

	for {
		next, ok := heap.PopOrderable(&readyHeap)
		if !ok {
			break
		}
		if cpu.Execute(next.proccess, 1) {
			continue
		}
		heap.PushOrderable(&readyHeap, readyProccess{key: key(next.proccess), proccess: next.proccess})
	}

	return generateResponse(cpu, len(proccesses))
}
