// Package main provides the entry point for the Paintr image editor.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"paintr/internal/app"
	"paintr/internal/version"
	"paintr/ui/mainwindow"
	"paintr/ui/prefs"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

const appID = "io.paintr.editor"

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level, _ := cfg.SlogLevel()
	app.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	app.Logger().Info("starting", "version", version.Version, "commit", version.GitCommit)

	fyneApp := fyneapp.NewWithID(appID)
	fyneApp.Settings().SetTheme(&app.PaintrTheme{})

	appState := app.NewState(cfg.NewClipboard(), cfg.HistoryLimit)
	appPrefs := prefs.Load()

	win := mainwindow.New(fyneApp, appState, appPrefs)
	win.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))

	// Handle command line arguments
	if len(os.Args) > 1 {
		imagePath := os.Args[1]
		if err := appState.OpenImage(imagePath); err != nil {
			app.Logger().Error("failed to open image", "path", imagePath, "err", err)
		}
	}

	win.ShowAndRun()
}
