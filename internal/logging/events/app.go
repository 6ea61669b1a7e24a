package events

import "github.com/atomicstack/gallery-browser/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Stop(reason string) {
	logging.Trace("app.stop", map[string]interface{}{"reason": reason})
}

func (AppTracer) DataSource(source string, categories, videos int) {
	logging.Trace("app.data", map[string]interface{}{
		"source":     source,
		"categories": categories,
		"videos":     videos,
	})
}
