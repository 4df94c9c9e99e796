// SPDX-License-Identifier: EPL-2.0

package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ik5/audpeak"
	"github.com/ik5/audpeak/internal/audiotest"
	"github.com/ik5/audpeak/source"
	"github.com/ik5/audpeak/storage"
)

func TestWatchModel_TicksUntilReady(t *testing.T) {
	t.Parallel()

	mem := storage.NewMemoryBackend()
	mem.Add("tone.wav", audiotest.WAV(8000, 1, 16, audiotest.Sine(16000, 1, 32767, 40)))

	good, err := audpeak.NewTrack(source.New(mem), "tone.wav")
	if err != nil {
		t.Fatalf("NewTrack() error = %v", err)
	}
	bad, _ := audpeak.NewTrack(source.New(mem), "notes.txt")

	m := NewWatchModel([]*audpeak.Track{good, bad})
	if m.Init() == nil {
		t.Fatal("Init() returned no tick")
	}

	var cmd tea.Cmd
	for range 10 {
		_, cmd = m.Update(tickMsg{})
		if m.Done() {
			break
		}
	}

	if !m.Done() {
		t.Fatal("model never finished")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("last Update() did not quit")
	}
	if good.Status() != audpeak.StatusReady {
		t.Errorf("Status() = %v, want Ready", good.Status())
	}
	if mem.OpenHandles() != 0 {
		t.Errorf("OpenHandles() = %d, want 0", mem.OpenHandles())
	}

	view := m.View()
	for _, want := range []string{"tone.wav", "Ready", "notes.txt", "Failed", "█"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() lacks %q", want)
		}
	}
}

func TestWatchModel_Quit(t *testing.T) {
	t.Parallel()

	m := NewWatchModel(nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("Update(q) returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Update(q) did not quit")
	}
	if m.Done() {
		t.Error("Done() after quitting early")
	}
}
