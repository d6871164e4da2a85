package main

import (
	"testing"
	"time"

	"go-battle-city/internal/config"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietSettings() config.Settings {
	s := config.Default()
	s.Audio.Enabled = false
	s.Storage.Type = "memory"
	return s
}

func TestPlayQuitsFromMenuOnEscape(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()

	finished := make(chan struct{})
	go func() {
		play(screen, quietSettings(), zerolog.Nop())
		close(finished)
	}()

	// первый шаг часов тиков не даёт, клавиша держится окно удержания
	time.Sleep(50 * time.Millisecond)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("session did not quit from the menu")
	}
}

func TestPlayDrawsMenu(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(80, 30)

	finished := make(chan struct{})
	go func() {
		play(screen, quietSettings(), zerolog.Nop())
		close(finished)
	}()
	time.Sleep(100 * time.Millisecond)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	<-finished

	cells, w, _ := screen.GetContents()
	require.Positive(t, w)
	text := ""
	for _, c := range cells {
		if len(c.Runes) > 0 {
			text += string(c.Runes[0])
		}
	}
	assert.Contains(t, text, "1 PLAYER")
}
