package events

import "github.com/atomicstack/gallery-browser/internal/logging"

type UITracer struct{}

type JumpTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Jump    = JumpTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (UITracer) View(mode string) {
	logging.Trace("ui.view", map[string]interface{}{"mode": mode})
}

func (UITracer) Cursor(mode string, cursor, offset int) {
	logging.Trace("ui.cursor", map[string]interface{}{"mode": mode, "cursor": cursor, "offset": offset})
}

func (UITracer) Resize(cols, rows int) {
	logging.Trace("ui.resize", map[string]interface{}{"cols": cols, "rows": rows})
}

func (UITracer) Home() {
	logging.Trace("ui.home", nil)
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (JumpTracer) Open() {
	logging.Trace("jump.open", nil)
}

func (JumpTracer) Query(query string, matches int) {
	logging.Trace("jump.query", map[string]interface{}{"query": query, "matches": matches})
}

func (JumpTracer) Select(label string) {
	logging.Trace("jump.select", map[string]interface{}{"label": label})
}

func (JumpTracer) Cancel() {
	logging.Trace("jump.cancel", nil)
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
