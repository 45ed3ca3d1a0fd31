package events

import "github.com/atomicstack/scrolling-list/internal/logging"

type ListTracer struct{}

var List = ListTracer{}

func (ListTracer) Mutate(op string, index, length int) {
	logging.Trace("list.mutate", map[string]interface{}{"op": op, "index": index, "len": length})
}

func (ListTracer) Rebuild(rows int) {
	logging.Trace("list.rebuild", map[string]interface{}{"rows": rows})
}

func (ListTracer) Select(index int, approved bool) {
	logging.Trace("list.select", map[string]interface{}{"index": index, "approved": approved})
}

func (ListTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("list.error", map[string]interface{}{"error": err.Error()})
}
