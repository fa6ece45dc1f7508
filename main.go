package main

import (
	"flag"
	"io/fs"
	"log"
	"os"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"

	"versusbank/assets"
	"versusbank/config"
	"versusbank/engine/asset"
	"versusbank/scenes"
)

func main() {
	configPath := flag.String("config", "versusbank.yaml", "yaml config file (optional)")
	debug := flag.Bool("debug", false, "enable debug overlay")
	watchDir := flag.String("watch", "", "watch an asset directory and hot-reload changed files")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *debug {
		cfg.Debug = true
	}

	fsys, watcher := assetSource(*watchDir)
	manager, err := asset.NewManager(fsys, asset.DefaultCodecs())
	if err != nil {
		log.Fatal(err)
	}
	defer manager.Close()

	if len(cfg.Assets) > 0 {
		loaded := manager.LoadBatch(cfg.Assets)
		p := manager.Progress()
		log.Printf("asset: preloaded %d/%d (failed %d)", len(loaded), p.Total, p.Failed)
	}

	if runtime.GOOS != "js" {
		if err := clipboard.Init(); err != nil {
			log.Printf("clipboard unavailable: %v", err)
		}
	}

	game := NewGame(cfg, manager, watcher)
	if err := scenes.RegisterAll(game.Scenes()); err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// assetSource picks the asset filesystem: embedded by default, the
// watched directory (with hot reload) when -watch is set.
func assetSource(watchDir string) (fs.FS, *asset.Watcher) {
	if watchDir == "" {
		return assets.FS, nil
	}
	watcher, err := asset.NewWatcher(watchDir)
	if err != nil {
		log.Printf("asset: watch %s: %v", watchDir, err)
		return os.DirFS(watchDir), nil
	}
	return os.DirFS(watchDir), watcher
}
