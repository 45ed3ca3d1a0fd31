package events

import "github.com/atomicstack/scrolling-list/internal/logging"

type UITracer struct{}

var UI = UITracer{}

func (UITracer) Click(x, y int, hit bool) {
	logging.Trace("ui.click", map[string]interface{}{"x": x, "y": y, "hit": hit})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (UITracer) Quit(reason string) {
	logging.Trace("ui.quit", map[string]interface{}{"reason": reason})
}
