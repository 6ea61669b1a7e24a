package gallery

import (
	"math/rand"
	"time"
)

// TaskKind identifies deferred work requested by the controller.
type TaskKind int

const (
	// TaskReveal completes RevealMore or RevealAll.
	TaskReveal TaskKind = iota
	// TaskReset completes ResetToInitial.
	TaskReset
	// TaskResize applies a settled viewport width.
	TaskResize
	// TaskMarkLoaded marks an intersecting slot as loaded.
	TaskMarkLoaded
)

func (k TaskKind) String() string {
	switch k {
	case TaskReveal:
		return "reveal"
	case TaskReset:
		return "reset"
	case TaskResize:
		return "resize"
	case TaskMarkLoaded:
		return "mark-loaded"
	default:
		return "unknown"
	}
}

// Task is a unit of deferred work. The host waits Delay and hands the task
// back through Controller.Complete, which drops it if the context it was
// scheduled under has moved on.
type Task struct {
	Kind       TaskKind
	Delay      time.Duration
	Generation uint64
	Seq        uint64
	Count      int
	Width      int
	Key        string
}

func randomStagger() time.Duration {
	return time.Duration(rand.Int63n(int64(MaxStagger)))
}
