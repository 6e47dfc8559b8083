package app

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestWindowTitle(t *testing.T) {
	assert.Equal(t, "retrochip8 - pong.ch8", WindowTitle("/roms/games/pong.ch8"))
	assert.Equal(t, "retrochip8 - maze.ch8", WindowTitle("maze.ch8"))
}

func TestPrint(t *testing.T) {
	logger := log.NewTestLogger(t)
	opts := options.New()
	opts.Input = "pong.ch8"

	PrintBanner(logger, opts, "1.0.0", "abcdef0123", "2026-01-01")
	PrintInfo(logger, opts, 246)

	opts.Quiet = true
	PrintBanner(logger, opts, "dev", "", "")
	PrintInfo(logger, opts, 246)
}
