package events

import "github.com/atomicstack/tabstrip/internal/logging"

type UITracer struct{}

type CardTracer struct{}

var (
	UI   = UITracer{}
	Card = CardTracer{}
)

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (UITracer) Sort(criteria string, cards int) {
	logging.Trace("ui.sort", map[string]interface{}{"criteria": criteria, "cards": cards})
}

func (UITracer) Quit() {
	logging.Trace("ui.quit", nil)
}

func (CardTracer) Hover(title string) {
	logging.Trace("card.hover", map[string]interface{}{"title": title})
}

func (CardTracer) Preview(title string, playing bool) {
	logging.Trace("card.preview", map[string]interface{}{"title": title, "playing": playing})
}
