package main

import (
	"errors"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	yearsort "github.com/Nomadcxx/yearsort/internal/app"
	"github.com/Nomadcxx/yearsort/internal/config"
	"github.com/Nomadcxx/yearsort/internal/logging"
	"github.com/Nomadcxx/yearsort/internal/organizer"
	"github.com/Nomadcxx/yearsort/internal/tui"
	flag "github.com/spf13/pflag"
)

type App struct {
	fyneApp       fyne.App
	window        fyne.Window
	core          *yearsort.App
	progressBar   *widget.ProgressBar
	progressLabel *widget.Label
	browseBtn     *widget.Button
}

func main() {
	cfgFile := flag.String("config", "", "config file (default: ~/.config/yearsort/config.toml)")
	verbose := flag.BoolP("verbose", "v", false, "debug logging")
	flag.Parse()

	cfg, err := config.LoadFrom(*cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	core, err := yearsort.Init(cfg, yearsort.Options{Console: true, Verbose: *verbose})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start: %v\n", err)
		os.Exit(1)
	}
	defer core.Close()

	myApp := app.New()
	myWindow := myApp.NewWindow("Organize Files by Year")
	myWindow.Resize(fyne.NewSize(400, 300))

	gui := &App{
		fyneApp: myApp,
		window:  myWindow,
		core:    core,
	}
	gui.loadIcon(cfg.GUI.Icon)
	gui.setupUI()

	myWindow.ShowAndRun()
}

// loadIcon sets the window icon when the file exists. A missing icon is
// only logged.
func (a *App) loadIcon(path string) {
	if path == "" {
		return
	}
	if _, err := os.Stat(path); err != nil {
		a.core.Logger.Warn("gui", "icon not found", logging.F("path", path))
		return
	}
	icon, err := fyne.LoadResourceFromPath(path)
	if err != nil {
		a.core.Logger.Warn("gui", "unable to load icon", logging.F("path", path), logging.F("error", err.Error()))
		return
	}
	a.fyneApp.SetIcon(icon)
	a.window.SetIcon(icon)
}

func (a *App) setupUI() {
	a.browseBtn = widget.NewButton("Browse Folder", a.selectFolder)
	historyBtn := widget.NewButton("View History", a.showHistory)
	exitBtn := widget.NewButton("Exit", a.fyneApp.Quit)

	a.progressBar = widget.NewProgressBar()
	a.progressLabel = widget.NewLabel("0%")

	content := container.NewVBox(
		a.browseBtn,
		a.progressBar,
		a.progressLabel,
		historyBtn,
		exitBtn,
	)

	a.window.SetContent(container.NewPadded(content))
}

func (a *App) selectFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		a.browseBtn.Disable()
		a.setProgress(0)

		// Run on a goroutine so the window keeps repainting
		go a.organize(uri.Path())
	}, a.window)
}

func (a *App) organize(folder string) {
	defer a.browseBtn.Enable()

	reporter := organizer.ProgressFunc(func(current, total int) {
		a.setProgress(organizer.Percent(current, total))
	})

	result, err := a.core.Organizer.Organize(folder, reporter)
	if err != nil {
		dialog.ShowError(errors.New(tui.ErrorPrefix+err.Error()), a.window)
		return
	}
	if result.FolderMissing {
		return
	}
	dialog.ShowInformation("Success", tui.SuccessText, a.window)
}

func (a *App) setProgress(percent int) {
	a.progressBar.SetValue(float64(percent) / 100)
	a.progressLabel.SetText(fmt.Sprintf("%d%%", percent))
}

func (a *App) showHistory() {
	folders, err := a.core.History.Load()
	if err != nil {
		dialog.ShowError(errors.New(tui.ErrorPrefix+err.Error()), a.window)
		return
	}

	historyWindow := a.fyneApp.NewWindow("History")
	historyWindow.Resize(fyne.NewSize(500, 300))

	var body fyne.CanvasObject
	if len(folders) == 0 {
		body = widget.NewLabel(tui.EmptyHistory)
	} else {
		body = widget.NewList(
			func() int { return len(folders) },
			func() fyne.CanvasObject { return widget.NewLabel("") },
			func(id widget.ListItemID, obj fyne.CanvasObject) {
				obj.(*widget.Label).SetText(folders[id])
			},
		)
	}

	closeBtn := widget.NewButton("Close", historyWindow.Close)
	historyWindow.SetContent(container.NewBorder(nil, closeBtn, nil, nil, body))
	historyWindow.Show()
}
