package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/atomicstack/gallery-browser/internal/catalog"
	"github.com/atomicstack/gallery-browser/internal/logging"
	"github.com/atomicstack/gallery-browser/internal/logging/events"
	"github.com/atomicstack/gallery-browser/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cli/browser"
)

// Config describes user-provided application options.
type Config struct {
	View          string
	DataDir       string
	Width         int
	Height        int
	InitialWidth  int
	InitialHeight int
	CellWidth     int
	CellHeight    int
	ShowFooter    bool
	Verbose       bool
	Style         string
}

const builtinSource = "builtin"

// LoadData builds the gallery tree and video list, either from the embedded
// sources or from dataDir when set. The returned source names where the data
// came from.
func LoadData(dataDir string) (catalog.Tree, catalog.VideoList, string, error) {
	if dataDir == "" {
		sources, err := catalog.BuiltinSources()
		if err != nil {
			return catalog.Tree{}, catalog.VideoList{}, "", fmt.Errorf("builtin sources: %w", err)
		}
		videos, err := catalog.BuiltinVideos()
		if err != nil {
			return catalog.Tree{}, catalog.VideoList{}, "", fmt.Errorf("builtin videos: %w", err)
		}
		return catalog.Load(sources...), videos, builtinSource, nil
	}
	sources, videos, err := catalog.LoadDir(dataDir)
	if err != nil {
		return catalog.Tree{}, catalog.VideoList{}, "", fmt.Errorf("data dir: %w", err)
	}
	return catalog.Load(sources...), videos, dataDir, nil
}

// Options maps the runtime configuration onto model options.
func (cfg Config) Options(tree catalog.Tree, videos catalog.VideoList) ui.Options {
	return ui.Options{
		Tree:          tree,
		Videos:        videos,
		Width:         cfg.Width,
		Height:        cfg.Height,
		InitialWidth:  cfg.InitialWidth,
		InitialHeight: cfg.InitialHeight,
		CellWidth:     cfg.CellWidth,
		CellHeight:    cfg.CellHeight,
		View:          ui.ParseMode(cfg.View),
		ShowFooter:    cfg.ShowFooter,
		Style:         cfg.Style,
	}
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	tree, videos, source, err := LoadData(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("load gallery data: %w", err)
	}
	events.App.DataSource(source, len(tree.Categories), len(videos.Videos))
	logging.SetVerbose(cfg.Verbose)

	// The system browser must not write over the alternate screen.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	model := ui.NewModel(cfg.Options(tree, videos))
	defer model.Shutdown()
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
