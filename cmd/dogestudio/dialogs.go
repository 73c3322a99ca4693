package main

import (
	"strings"
	"time"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/dogemark/internal/engine/debug"
	"github.com/Faultbox/dogemark/internal/engine/geometry"
)

type fileKind int

const (
	kindMesh fileKind = iota
	kindSnapshot
)

type pendingFile struct {
	kind fileKind
	path string
}

// openSaveDialog shows a native save dialog without blocking the UI. The
// chosen path is handled on the main thread by processPending.
func (app *App) openSaveDialog(kind fileKind) {
	go func() {
		b := dialog.File()
		switch kind {
		case kindMesh:
			b = b.Filter("Wavefront OBJ", "obj").
				Filter("Compressed OBJ", "zst").
				Title("Export mesh").
				SetStartFile("doge.obj")
		case kindSnapshot:
			b = b.Filter("PNG image", "png").
				Title("Save snapshot").
				SetStartFile("doge.png")
		}

		path, err := b.Save()
		if err != nil {
			if err != dialog.ErrCancelled {
				app.log.Error("file dialog failed", zap.Error(err))
			}
			return
		}

		app.pending <- pendingFile{kind: kind, path: path}
	}()
}

func (app *App) processPending(now time.Time) {
	for {
		select {
		case p := <-app.pending:
			app.save(p)
		default:
			return
		}
	}
}

func (app *App) save(p pendingFile) {
	var err error
	switch p.kind {
	case kindMesh:
		path := p.path
		if !strings.HasSuffix(path, ".obj") && !strings.HasSuffix(path, ".zst") {
			path += ".obj"
		}
		err = geometry.WriteOBJ(path, app.scene.Mesh(), "doge")
		p.path = path

	case kindSnapshot:
		img, serr := app.fb.Snapshot()
		if serr == nil {
			serr = debug.SavePNG(p.path, img)
		}
		err = serr
	}

	if err != nil {
		app.log.Error("save failed", zap.String("path", p.path), zap.Error(err))
		app.setStatus("Save failed: " + err.Error())
		return
	}
	app.log.Info("saved", zap.String("path", p.path))
	app.setStatus("Saved " + p.path)
}
