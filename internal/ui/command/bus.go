package command

import (
	"fmt"
	"time"

	"github.com/atomicstack/gallery-browser/internal/gallery"
	"github.com/atomicstack/gallery-browser/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// TaskDueMsg is delivered when a scheduled gallery task's delay has elapsed.
type TaskDueMsg struct {
	Task gallery.Task
}

// Action performs a side effect and returns the message to deliver.
type Action func() tea.Msg

// Request encapsulates an action invocation.
type Request struct {
	ID      string
	Label   string
	Handler Action
}

// Bus turns gallery tasks and side-effecting actions into Bubble Tea commands.
type Bus struct {
	immediate bool
}

// Option configures a Bus.
type Option func(*Bus)

// WithImmediate delivers scheduled tasks without waiting for their delay.
func WithImmediate() Option {
	return func(b *Bus) { b.immediate = true }
}

// New initialises a command bus instance.
func New(opts ...Option) *Bus {
	b := &Bus{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Schedule returns a command that yields TaskDueMsg after task.Delay.
func (b *Bus) Schedule(task gallery.Task) tea.Cmd {
	events.Task.Schedule(task.Kind.String(), task.Delay.Milliseconds(), task.Generation)
	if b.immediate || task.Delay <= 0 {
		return func() tea.Msg { return TaskDueMsg{Task: task} }
	}
	return tea.Tick(task.Delay, func(time.Time) tea.Msg {
		return TaskDueMsg{Task: task}
	})
}

// ScheduleAll batches Schedule over tasks. It returns nil for an empty slice.
func (b *Bus) ScheduleAll(tasks []gallery.Task) tea.Cmd {
	if len(tasks) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(tasks))
	for _, task := range tasks {
		cmds = append(cmds, b.Schedule(task))
	}
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// Execute wraps an action into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Handler == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		msg := req.Handler()
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
