package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/strickvl/beemind/internal/api"
	"github.com/strickvl/beemind/internal/config"
	"github.com/strickvl/beemind/internal/logging"
	"github.com/strickvl/beemind/internal/tui"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	client := api.NewClient(cfg)
	model := tui.NewModel(client, cfg.Username)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
