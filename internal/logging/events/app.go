package events

import "github.com/atomicstack/tabstrip/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) ColorProfile(profile string, dark bool) {
	logging.Trace("app.color-profile", map[string]interface{}{"profile": profile, "darkBackground": dark})
}
