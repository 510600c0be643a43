package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tabstrip/internal/panel"
	"github.com/atomicstack/tabstrip/internal/tabs"
)

const (
	// PreviewLength is how long a preview plays before stopping on its own.
	PreviewLength = 10 * time.Second
	previewTick   = 100 * time.Millisecond
)

type previewTickMsg struct {
	seq int
}

type cardFrameMsg struct {
	seq int
}

// togglePreview stops card when it is playing, otherwise starts it and stops
// whatever played before.
func (m *Model) togglePreview(card *panel.Card) tea.Cmd {
	if m.playing == card {
		m.stopPreview()
		return nil
	}
	m.stopPreview()
	m.playing = card
	m.previewStart = m.clock()
	m.previewSeq++
	card.SetPlaying(true)
	m.infoMsg = "previewing " + card.Title()
	return m.previewTickCmd()
}

func (m *Model) stopPreview() {
	if m.playing == nil {
		return
	}
	m.playing.SetPlaying(false)
	m.playing = nil
	m.previewSeq++
	m.infoMsg = ""
}

func (m *Model) handlePreviewTickMsg(msg tea.Msg) tea.Cmd {
	tick := msg.(previewTickMsg)
	if tick.seq != m.previewSeq || m.playing == nil {
		return nil
	}
	elapsed := m.clock().Sub(m.previewStart)
	if elapsed >= PreviewLength {
		m.stopPreview()
		return nil
	}
	m.playing.SetPreviewProgress(float64(elapsed) / float64(PreviewLength))
	return m.previewTickCmd()
}

func (m *Model) previewTickCmd() tea.Cmd {
	seq := m.previewSeq
	return tea.Tick(previewTick, func(time.Time) tea.Msg {
		return previewTickMsg{seq: seq}
	})
}

func (m *Model) handleCardFrameMsg(msg tea.Msg) tea.Cmd {
	if msg.(cardFrameMsg).seq == m.frameSeq {
		m.framing = false
	}
	return nil
}

// cardFrameCmd keeps frames coming while a card border is fading.
func (m *Model) cardFrameCmd() tea.Cmd {
	if m.framing {
		return nil
	}
	now := m.clock()
	animating := false
	for _, card := range m.cards {
		if card.Animating(now) {
			animating = true
			break
		}
	}
	if !animating {
		return nil
	}
	m.framing = true
	m.frameSeq++
	seq := m.frameSeq
	return tea.Tick(tabs.FrameInterval, func(time.Time) tea.Msg {
		return cardFrameMsg{seq: seq}
	})
}
