package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/countrytable/internal/config"
	"github.com/rshade/countrytable/internal/logging"
	"github.com/rshade/countrytable/internal/pipeline"
	"github.com/rshade/countrytable/internal/tui"
)

// ErrNotInteractive is returned when browse is run without a terminal.
var ErrNotInteractive = errors.New("browse requires an interactive terminal; use 'countrytable list' instead")

// NewBrowseCmd creates the interactive "browse" command.
func NewBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive country table",
		Long: `Open a full-screen table of countries.

Keys: s sort by name, z edit the size filter, r edit the region filter,
digits or arrows or PgUp/PgDn change page, esc clear filters, q quit.
Logs are written to a file so they do not disturb the screen.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationLogToFile: "true"},
		RunE:        runBrowse,
	}
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return ErrNotInteractive
	}

	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	cfg := config.GetGlobalConfig()

	locale, err := cfg.Display.Tag()
	if err != nil {
		return err
	}

	ctrl := pipeline.New(
		pipeline.WithLogger(logging.ComponentLogger(log, "pipeline")),
		pipeline.WithLocale(locale),
	)
	model := tui.NewCountryListModel(ctx, ctrl, newProvider(cmd, cfg), locale)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, runErr := p.Run()

	// Whatever ended the program, a fetch still in flight must not land.
	ctrl.Deactivate()

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("failed to run interactive TUI: %w", runErr)
	}
	return nil
}
