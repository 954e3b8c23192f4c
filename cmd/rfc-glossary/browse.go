package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/evanschultz/rfc-glossary/pkg/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the terminal glossary and article browser",
	Args:  cobra.NoArgs,
	RunE:  runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cfg)
	if err != nil {
		return err
	}

	model := tui.NewModel(a.glossary, a.tags, a.articles, a.renderer)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "run browser")
	}
	return nil
}
