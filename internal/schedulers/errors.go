package schedulers

type constError string

func (e constError) Error() string {
	return string(e)
}

const ErrEmptyInput = constError("no processes to schedule")
const ErrInvalidQuantum = constError("time quantum must be greater than zero")
const ErrInvalidBurstTime = constError("burst time must not be negative")
const ErrUnknownPolicy = constError("invalid selection")
