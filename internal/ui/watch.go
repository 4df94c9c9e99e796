// SPDX-License-Identifier: EPL-2.0

package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ik5/audpeak"
	"github.com/ik5/audpeak/internal/cli"
	"github.com/ik5/audpeak/internal/config"
)

// tickMsg drives one decode pass over every track
type tickMsg time.Time

// WatchModel shows tracks being decoded: a progress bar, the status and
// the waveform built so far. Every tea.Tick decodes one pass of each
// track still reading; the program quits once none is.
type WatchModel struct {
	tracks   []*audpeak.Track
	progress progress.Model
	width    int
	labelW   int
	done     bool
}

// NewWatchModel creates the model for tracks. Tracks that failed to open
// are shown as Failed.
func NewWatchModel(tracks []*audpeak.Track) *WatchModel {
	p := progress.New(
		progress.WithSolidFill(config.WaveColor),
		progress.WithWidth(30),
		progress.WithoutPercentage(),
	)

	labelW := 0
	for _, t := range tracks {
		labelW = max(labelW, lipgloss.Width(filepath.Base(t.Path)))
	}

	return &WatchModel{
		tracks:   tracks,
		progress: p,
		width:    80,
		labelW:   labelW,
	}
}

// Done reports whether every track has finished, one way or the other.
func (m *WatchModel) Done() bool { return m.done }

func tick() tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the tick chain
func (m *WatchModel) Init() tea.Cmd {
	return tick()
}

// Update handles messages
func (m *WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = min(max(msg.Width-m.labelW-16, 10), 50)
		return m, nil

	case tickMsg:
		reading := false
		for _, t := range m.tracks {
			if t.Status() != audpeak.StatusReading {
				continue
			}
			// failures land in the track's status
			_, _ = t.Tick()
			reading = reading || t.Status() == audpeak.StatusReading
		}
		if !reading {
			m.done = true
			return m, tea.Quit
		}
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the UI
func (m *WatchModel) View() string {
	var s strings.Builder

	s.WriteString(cli.TitleStyle.Render("audpeak"))
	s.WriteString("\n\n")

	label := lipgloss.NewStyle().Foreground(cli.LabelColor).Width(m.labelW)
	waveW := max(m.width-2, 1)

	for _, t := range m.tracks {
		s.WriteString(label.Render(filepath.Base(t.Path)))
		s.WriteString("  ")
		s.WriteString(m.progress.ViewAs(t.Progress()))
		s.WriteString("  ")
		s.WriteString(statusStyle(t.Status()).Render(t.Status().String()))
		s.WriteString("\n")

		if t.Status() == audpeak.StatusFailed && t.Err() != nil {
			s.WriteString("  ")
			s.WriteString(cli.KeyStyle.Render(t.Err().Error()))
		} else {
			s.WriteString("  ")
			s.WriteString(cli.WaveStyle.Render(RenderWave(t.Envelope(), waveW)))
		}
		s.WriteString("\n")
	}

	if !m.done {
		s.WriteString("\n")
		s.WriteString(cli.KeyStyle.Render(fmt.Sprintf("%d file(s), q to quit", len(m.tracks))))
		s.WriteString("\n")
	}

	return s.String()
}

func statusStyle(st audpeak.Status) lipgloss.Style {
	switch st {
	case audpeak.StatusReady:
		return cli.WaveStyle
	case audpeak.StatusFailed:
		return cli.ErrorStyle
	default:
		return cli.KeyStyle
	}
}
