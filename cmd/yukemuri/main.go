package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/appengine-ltd/yukemuri/internal/game"
	"github.com/appengine-ltd/yukemuri/internal/ui"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		configPath  string
		resortName  string
		historyPath string
		seed        int64
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&configPath, "config", "", "path to a YAML balance config (defaults apply when empty)")
	flag.StringVar(&resortName, "name", "Yukemuri Onsen", "resort name")
	flag.StringVar(&historyPath, "history", defaultHistoryPath(), "path to the day archive (empty disables it)")
	flag.Int64Var(&seed, "seed", 0, "simulation seed (0 picks a fresh one)")
	flag.Parse()

	if showVersion {
		fmt.Printf("Yukemuri %s (%s) %s\n", version, commit, date)
		return
	}

	cfg := game.DefaultConfig()
	if configPath != "" {
		loaded, err := game.LoadConfig(configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	app := ui.NewApp(ui.AppConfig{
		Version:     version,
		Commit:      commit,
		BuildDate:   date,
		ResortName:  resortName,
		GameConfig:  cfg,
		HistoryPath: historyPath,
	})

	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultHistoryPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "yukemuri-history.db"
	}
	return filepath.Join(dir, "yukemuri", "history.db")
}
