package events

import "github.com/atomicstack/scrolling-list/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Seed(source string, steps int) {
	logging.Trace("app.seed", map[string]interface{}{"source": source, "steps": steps})
}

func (AppTracer) Selected(index int, item map[string]string) {
	logging.Trace("app.selected", map[string]interface{}{"index": index, "item": item})
}
