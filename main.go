package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/ytget/health-diary/internal/config"
	"github.com/ytget/health-diary/internal/diary"
	"github.com/ytget/health-diary/internal/platform"
	"github.com/ytget/health-diary/internal/storage"
	"github.com/ytget/health-diary/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.health-diary"
	AppName = "Health Diary"
)

type options struct {
	configPath string
	backend    string
	dbPath     string
}

func main() {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "healthdiary",
		Short:        "Personal food and health diary",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	cmd.Version = version
	cmd.SetVersionTemplate(AppName + " v{{.Version}}\n")
	cmd.Flags().BoolP("version", "v", false, "Show version and exit")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to config.yaml (default <data dir>/config.yaml)")
	cmd.Flags().StringVar(&opts.backend, "backend", "", "Storage backend: preferences or sqlite")
	cmd.Flags().StringVar(&opts.dbPath, "db", "", "SQLite database file (sqlite backend only)")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(opts *options) error {
	log.Printf("%s v%s starting...", AppName, version)

	dataDir, err := platform.DataDir()
	if err != nil {
		return err
	}
	if err := platform.CreateDirectoryIfNotExists(dataDir); err != nil {
		log.Printf("Warning: failed to create data directory %s: %v", dataDir, err)
	}

	configPath := opts.configPath
	if configPath == "" {
		if configPath, err = platform.DefaultConfigPath(config.DefaultConfigFile); err != nil {
			return err
		}
	}
	cfg, err := config.Load(configPath, dataDir)
	if err != nil {
		return err
	}
	if opts.backend != "" {
		if opts.backend != config.BackendPreferences && opts.backend != config.BackendSQLite {
			return fmt.Errorf("unknown storage backend %q", opts.backend)
		}
		cfg.Storage.Backend = opts.backend
	}
	if opts.dbPath != "" {
		cfg.Storage.Path = opts.dbPath
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewDiaryTheme())

	backend, closeBackend := openBackend(myApp, cfg.Storage)
	defer closeBackend()

	// Initialize services
	store := storage.NewStore(backend)
	settings := config.NewSettings(store, ui.ResolveLanguage(cfg.Language))
	diarySvc := diary.NewService(store)
	state := diary.NewState(diarySvc, settings, time.Now)

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	// Create and setup UI
	ui.NewRootUI(myWindow, state, dataDir)

	// Show and run
	myWindow.ShowAndRun()
	return nil
}

// openBackend returns the configured backend. An unusable SQLite file falls
// back to the app preferences.
func openBackend(a fyne.App, cfg config.StorageConfig) (storage.Backend, func()) {
	if cfg.Backend == config.BackendSQLite {
		db, err := storage.OpenSQLite(cfg.Path)
		if err == nil {
			log.Printf("Using SQLite storage at %s", cfg.Path)
			return db, func() {
				if err := db.Close(); err != nil {
					log.Printf("Warning: failed to close database: %v", err)
				}
			}
		}
		log.Printf("Warning: %v, falling back to preferences", err)
	}
	return storage.NewPreferencesBackend(a), func() {}
}
