package main

import (
	"flag"
	"time"

	"scene-editor/internal/commands"
	"scene-editor/internal/debug"
	"scene-editor/internal/editor"
	"scene-editor/internal/editorconfig"
	"scene-editor/internal/env"
	"scene-editor/internal/graphics"
	"scene-editor/internal/logger"
	"scene-editor/internal/primitives"
	"scene-editor/internal/render"
	"scene-editor/internal/scene"
	"scene-editor/internal/store"
	"scene-editor/internal/terminal"
	"scene-editor/internal/ui"
)

func main() {
	configPath := flag.String("config", editorconfig.DefaultPath, "editor preferences (JSON)")
	envPath := flag.String("env", ".env", "KEY=VALUE overrides loaded before the config")
	flag.Parse()

	envErr := env.Load(*envPath)
	prefs, prefsErr := editorconfig.Load(*configPath)
	prefs.ApplyEnv()

	log := logger.New(prefs.LogPath)
	if envErr != nil {
		log.Logf("env: %v", envErr)
	}
	if prefsErr != nil {
		log.Logf("config: %v (using defaults)", prefsErr)
	}

	prims, err := primitives.Load(prefs.AssetsDir)
	if err != nil {
		log.Logf("primitives: %v", err)
	}
	cache, err := store.NewOS(prefs.CachePath)
	if err != nil {
		log.Log(terminal.Describe(err))
	}

	renderer := render.NewRenderer(prims)
	renderer.SetGridVisible(prefs.GridVisible)

	ed := editor.New(editor.Options{
		Log:        log,
		Store:      cache,
		Primitives: prims,
		Grid:       renderer,
		SpinSpeed:  prefs.SpinSpeed,
	})
	ed.Start()

	reg := commands.NewRegistry()
	ed.RegisterCommands(reg)
	term := terminal.New(log, reg)

	styles := ui.New()
	if err := styles.LoadCSS(prefs.StylePath); err != nil {
		log.Logf("ui: %v", err)
	}
	inspector := ui.NewInspector()
	overlay := debug.New()
	overlay.ShowFPS = prefs.ShowFPS
	overlay.ShowMemAlloc = prefs.ShowMemAlloc
	overlay.ShowScene = prefs.ShowFPS || prefs.ShowMemAlloc

	controls := render.Controls{MoveSpeed: prefs.MoveSpeed, YawSpeed: prefs.YawSpeed}
	var nodes []*ui.Node
	var renderErr error

	log.Log("press ESC for the terminal, then: cmd help")
	graphics.Run(graphics.Window{
		Title:        "scene editor",
		Width:        prefs.WindowWidth,
		Height:       prefs.WindowHeight,
		TickInterval: time.Duration(prefs.SpinIntervalMS) * time.Millisecond,
	}, graphics.Loop{
		Init: func() {
			if prefs.FontPath == "" {
				return
			}
			font, err := styles.LoadFont(prefs.FontPath)
			if err != nil {
				log.Logf("ui: %v", err)
				return
			}
			term.SetFont(font)
		},
		Update: func(dt float32) {
			term.Update()
			if !term.IsOpen() {
				controls.Update(ed.Camera(), dt)
			}
		},
		Tick: ed.Tick,
		Draw: func() {
			w, h := graphics.ScreenSize()
			renderer.Draw(ed.Frame(render.Viewport{Width: w, Height: h}))
			if err := renderer.Err(); err != nil && err != renderErr {
				renderErr = err
				log.Logf("%v", err)
			}

			nodes = append(nodes[:0], inspector.Nodes(true, listing(ed.Scene()))...)
			nodes = append(nodes, overlay.Nodes(debug.Stats{
				FPS:     graphics.FPS(),
				Objects: ed.Scene().Len(),
				Camera:  ed.Camera().Position,
				Spin:    ed.Spinner().Speed(),
			})...)
			styles.SetNodes(nodes)
			styles.Draw()
			term.Draw()
		},
		Close: func() {
			if err := ed.Close(); err != nil {
				log.Log(terminal.Describe(err))
			}
			renderer.Unload()
		},
	})
}

// listing describes the scene for the inspector panel.
func listing(s *scene.Scene) ui.Listing {
	l := ui.Listing{Selected: s.SelectedIndex()}
	for _, obj := range s.Objects() {
		l.Names = append(l.Names, obj.Name)
	}
	if obj, err := s.Selected(); err == nil {
		l.Fields = append(l.Fields,
			ui.Field{Label: "Name", Value: obj.Name},
			ui.Field{Label: "Kind", Value: obj.Kind().String()},
		)
		for _, f := range scene.Fields {
			l.Fields = append(l.Fields, ui.Field{Label: f.String(), Value: scene.FormatVector(obj.Vector(f))})
		}
	}
	return l
}
