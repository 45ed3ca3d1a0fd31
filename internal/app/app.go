package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/scrolling-list/internal/logging/events"
	"github.com/atomicstack/scrolling-list/internal/rows"
	"github.com/atomicstack/scrolling-list/internal/scrollinglist"
	"github.com/atomicstack/scrolling-list/internal/seed"
	"github.com/atomicstack/scrolling-list/internal/theme"
	"github.com/atomicstack/scrolling-list/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultTitle = "Scrollable List"

// Config describes user-provided application options.
type Config struct {
	Title      string
	Width      int
	Height     int
	PadX       int
	PadY       int
	ShowFooter bool
	Colors     theme.Colors
	ItemsFile  string
	Select     string
}

// Build creates the list, applies the seed script and wraps both in the UI
// model. It does not touch the terminal.
func Build(cfg Config) (*ui.Model, error) {
	script := seed.Demo()
	source := "demo"
	if strings.TrimSpace(cfg.ItemsFile) != "" {
		loaded, err := seed.Load(cfg.ItemsFile)
		if err != nil {
			return nil, err
		}
		script = loaded
		source = cfg.ItemsFile
	}

	title := strings.TrimSpace(cfg.Title)
	if title == "" {
		title = strings.TrimSpace(script.Title)
	}
	if title == "" {
		title = defaultTitle
	}

	colors := cfg.Colors.WithDefaults()

	var model *ui.Model
	approve := func(index int, item scrollinglist.Item) bool {
		events.App.Selected(index, item)
		if model != nil {
			model.SetInfo(fmt.Sprintf("Selected index: %d %v", index, map[string]string(item)))
		}
		return true
	}

	list := scrollinglist.New(scrollinglist.Config{
		Title:  title,
		Colors: colors,
	}, rows.Detail(colors.Normal), approve)

	if err := script.Apply(list); err != nil {
		return nil, err
	}
	events.App.Seed(source, script.Len())

	model = ui.NewModel(list, ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		PadX:       cfg.PadX,
		PadY:       cfg.PadY,
		ShowFooter: cfg.ShowFooter,
	})

	if query := strings.TrimSpace(cfg.Select); query != "" {
		matches := list.Find(rows.TextKey, query)
		if len(matches) == 0 {
			model.SetError(fmt.Sprintf("no item matches %q", query))
		} else if err := list.Select(matches[0]); err != nil {
			return nil, err
		}
	}
	return model, nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model, err := Build(cfg)
	if err != nil {
		return fmt.Errorf("build list: %w", err)
	}
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
