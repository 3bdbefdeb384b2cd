package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/polytone/internal/config"
	"github.com/olivier-w/polytone/internal/export"
	"github.com/olivier-w/polytone/internal/logx"
	"github.com/olivier-w/polytone/internal/scene"
	"github.com/olivier-w/polytone/internal/tone"
	"github.com/olivier-w/polytone/internal/ui"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, config.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) > 0 && args[0] == "render" {
		return runRender(args[1:], stdout, stderr)
	}

	cfg, err := config.Parse(args, stderr)
	if err != nil {
		return err
	}
	mode, err := scene.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}

	closer, err := logx.Setup(cfg.LogPath)
	if err != nil {
		return err
	}
	defer closer.Close()
	logx.Info("starting", logx.Fields{"mode": mode.String(), "scale": cfg.Scale.String(), "muted": cfg.Muted})

	model := ui.New(ui.Options{
		Mode:   mode,
		Scale:  cfg.Scale,
		Player: tone.NewPlayer(cfg.Muted),
		OutDir: cfg.OutDir,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

// runRender draws the settled shape and tone for a text without a terminal UI.
func runRender(args []string, stdout, stderr io.Writer) error {
	r, err := config.ParseRender(args, stderr)
	if err != nil {
		return err
	}
	mode, err := scene.ParseMode(r.Mode)
	if err != nil {
		return err
	}

	if r.PNG != "" {
		if err := export.WritePNG(r.PNG, r.Text, mode, r.Size); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "wrote %s\n", r.PNG)
	}
	if r.WAV != "" {
		if err := export.WriteWAV(r.WAV, r.Text, r.Scale); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "wrote %s\n", r.WAV)
	}
	return nil
}
