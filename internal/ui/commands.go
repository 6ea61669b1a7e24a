package ui

import (
	"fmt"

	"github.com/atomicstack/gallery-browser/internal/logging"
	"github.com/atomicstack/gallery-browser/internal/logging/events"
	"github.com/atomicstack/gallery-browser/internal/ui/command"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cli/browser"
)

var (
	openURLFn   = browser.OpenURL
	clipboardFn = clipboard.WriteAll
)

// actionResultMsg reports the outcome of a side-effecting action.
type actionResultMsg struct {
	id   string
	info string
	err  error
}

// currentTarget resolves the media URL for the open modal, or for the card
// under the cursor when no modal is open.
func (m *Model) currentTarget() (id, label, target string, ok bool) {
	if m.mode == ModeVideos {
		video, found := m.videoView.Current()
		if !found {
			video, found = m.currentVideo()
		}
		if !found {
			return "", "", "", false
		}
		return video.ID, video.Title, video.PlayURL(), video.PlayURL() != ""
	}
	item, found := m.controller.Preview().Current()
	if !found {
		item, found = m.currentItem()
	}
	if !found {
		return "", "", "", false
	}
	return item.ID, item.Title, item.Image, item.Image != ""
}

func (m *Model) openCurrentURL() tea.Cmd {
	id, label, target, ok := m.currentTarget()
	if !ok {
		m.errMsg = "nothing to open"
		return nil
	}
	m.errMsg = ""
	return m.bus.Execute(command.Request{
		ID:    "open:" + id,
		Label: label,
		Handler: func() tea.Msg {
			if err := openURLFn(target); err != nil {
				return actionResultMsg{id: id, err: fmt.Errorf("open %s: %w", target, err)}
			}
			return actionResultMsg{id: id, info: "Opened " + target}
		},
	})
}

func (m *Model) copyCurrentURL() tea.Cmd {
	id, label, target, ok := m.currentTarget()
	if !ok {
		m.errMsg = "nothing to copy"
		return nil
	}
	m.errMsg = ""
	return m.bus.Execute(command.Request{
		ID:    "copy:" + id,
		Label: label,
		Handler: func() tea.Msg {
			if err := clipboardFn(target); err != nil {
				return actionResultMsg{id: id, err: fmt.Errorf("copy link: %w", err)}
			}
			return actionResultMsg{id: id, info: "Copied " + target}
		},
	})
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(actionResultMsg)
	if !ok {
		return nil
	}
	if result.err != nil {
		m.errMsg = result.err.Error()
		m.forceClearInfo()
		events.Action.Error(result.err)
		logging.Error(result.err)
		return nil
	}
	m.errMsg = ""
	m.setInfo(result.info)
	events.Action.Success(result.info)
	logging.Info("%s", result.info)
	return nil
}
