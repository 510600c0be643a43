package events

import "github.com/atomicstack/tabstrip/internal/logging"

type TabsTracer struct{}

type DropdownTracer struct{}

type AccentTracer struct{}

var (
	Tabs     = TabsTracer{}
	Dropdown = DropdownTracer{}
	Accent   = AccentTracer{}
)

func (TabsTracer) Add(label string, count int) {
	logging.Trace("tabs.add", map[string]interface{}{"label": label, "count": count})
}

func (TabsTracer) Remove(label string, wasActive bool) {
	logging.Trace("tabs.remove", map[string]interface{}{"label": label, "wasActive": wasActive})
}

func (TabsTracer) Select(previous, next string) {
	logging.Trace("tabs.select", map[string]interface{}{"previous": previous, "next": next})
}

func (TabsTracer) Rejected(op, label string, err error) {
	payload := map[string]interface{}{"op": op, "label": label}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("tabs.rejected", payload)
}

func (TabsTracer) Layout(width, inline, overflow int) {
	logging.Trace("tabs.layout", map[string]interface{}{
		"width":    width,
		"inline":   inline,
		"overflow": overflow,
	})
}

func (DropdownTracer) Open(rows int) {
	logging.Trace("dropdown.open", map[string]interface{}{"rows": rows})
}

func (DropdownTracer) Close() {
	logging.Trace("dropdown.close", nil)
}

func (DropdownTracer) Filter(query string, matches int) {
	logging.Trace("dropdown.filter", map[string]interface{}{"query": query, "matches": matches})
}

func (DropdownTracer) Pick(label string) {
	logging.Trace("dropdown.pick", map[string]interface{}{"label": label})
}

func (AccentTracer) Set(hex string, subscribers int) {
	logging.Trace("accent.set", map[string]interface{}{"color": hex, "subscribers": subscribers})
}
