package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nnl3336/QuickNote/internal/config"
	"github.com/nnl3336/QuickNote/internal/i18n"
	"github.com/nnl3336/QuickNote/internal/store"
	"github.com/nnl3336/QuickNote/internal/ui"
	"golang.org/x/term"
)

func main() {
	configPath := config.DefaultConfigPath()

	// First run: pick a language and write the default config
	if !config.ConfigExists(configPath) {
		if err := firstTimeSetup(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Setup error: %v\n", err)
			os.Exit(1)
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Language != "" {
		i18n.SetLanguage(i18n.Language(cfg.Language))
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "quicknote requires an interactive terminal")
		os.Exit(1)
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", i18n.T().Error, err)
		os.Exit(1)
	}
	defer st.Close()

	m := ui.NewModel(st, cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", i18n.T().Error, err)
		os.Exit(1)
	}
}

func firstTimeSetup(configPath string) error {
	fmt.Println("  Welcome to QuickNote! / QuickNoteへようこそ!")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)

	fmt.Println("  Select language / 言語を選択:")
	fmt.Println("  [1] English")
	fmt.Println("  [2] 日本語")
	fmt.Print("  > ")

	choice, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	choice = strings.TrimSpace(choice)

	language := "en"
	if choice == "2" {
		language = "ja"
	}

	i18n.SetLanguage(i18n.Language(language))

	cfg := &config.Config{
		DBPath:   config.DefaultDBPath(),
		Language: language,
		Theme:    "dark",
	}

	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	if language == "ja" {
		fmt.Println("  設定を作成しました。config.ymlで変更できます。")
	} else {
		fmt.Println("  Configuration created! Edit config.yml to customize.")
	}
	fmt.Println()

	return nil
}
