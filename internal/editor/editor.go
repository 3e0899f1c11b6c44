// Package editor is the application component: it owns the scene, the camera and the spinner, and
// applies edits coming from the terminal. Every edit reports failures as errors; nothing here aborts
// the process.
package editor

import (
	"errors"
	"fmt"

	"scene-editor/internal/glmath"
	"scene-editor/internal/logger"
	"scene-editor/internal/primitives"
	"scene-editor/internal/render"
	"scene-editor/internal/scene"
	"scene-editor/internal/store"
)

// ErrNoStore is returned by Save and Load when the editor was built without a cache.
var ErrNoStore = errors.New("no scene cache configured")

// GridToggler shows or hides the editor grid.
type GridToggler interface {
	SetGridVisible(visible bool)
	GridVisible() bool
}

// Options configures New. Log is required; the rest may be left zero.
type Options struct {
	Log        *logger.Logger
	Store      *store.Store
	Primitives *primitives.Registry // default colors for new objects; nil uses the built-ins
	Grid       GridToggler
	SpinSpeed  glmath.Vec3
}

// Editor holds the editing session. It is not safe for concurrent use; the frame loop drives it.
type Editor struct {
	scene  *scene.Scene
	camera *scene.Camera
	spin   *render.Spinner
	store  *store.Store
	prims  *primitives.Registry
	grid   GridToggler
	log    *logger.Logger
}

// New returns an editor with an empty scene and the default camera.
func New(opts Options) *Editor {
	prims := opts.Primitives
	if prims == nil {
		prims = primitives.Builtin()
	}
	return &Editor{
		scene:  scene.New(),
		camera: scene.NewCamera(),
		spin:   render.NewSpinner(opts.SpinSpeed),
		store:  opts.Store,
		prims:  prims,
		grid:   opts.Grid,
		log:    opts.Log,
	}
}

func (e *Editor) Scene() *scene.Scene { return e.scene }

func (e *Editor) Camera() *scene.Camera { return e.camera }

func (e *Editor) Spinner() *render.Spinner { return e.spin }

// Start loads the cached scene. Any failure leaves the scene empty and is logged; a missing cache
// is the normal first run.
func (e *Editor) Start() {
	if e.store == nil {
		return
	}
	objs, err := e.store.Load()
	if err != nil {
		var perr *store.PersistenceError
		if errors.As(err, &perr) && perr.NotExist() {
			e.log.Logf("no saved scene at %s, starting empty", perr.Path)
		} else {
			e.log.Logf("could not load saved scene, starting empty: %v", err)
			if bad, err := e.store.SetAside(); err != nil {
				e.log.Logf("%v", err)
			} else {
				e.log.Logf("unreadable cache moved to %s", bad)
			}
		}
		e.scene.Clear()
		return
	}
	e.scene.Replace(objs)
	e.log.Logf("loaded %d object(s) from %s", len(objs), e.store.Path())
}

// Close saves the scene. Called once when the window closes.
func (e *Editor) Close() error {
	if e.store == nil {
		return nil
	}
	return e.Save()
}

// AddObject appends an object of the given kind, colored with the kind's default, and selects it.
func (e *Editor) AddObject(kind scene.Kind) *scene.Object {
	obj := e.scene.Add(kind)
	if c, ok := e.prims.DefaultColor(kind); ok {
		obj.Color = c
	}
	return obj
}

// Select makes the object at index i current.
func (e *Editor) Select(i int) error {
	return e.scene.Select(i)
}

// DeleteSelected removes the selected object.
func (e *Editor) DeleteSelected() error {
	return e.scene.DeleteSelected()
}

// Rename sets the selected object's name. An empty name is ignored.
func (e *Editor) Rename(name string) error {
	obj, err := e.scene.Selected()
	if err != nil {
		return err
	}
	if name == "" {
		return nil
	}
	obj.Name = name
	return nil
}

// SetField parses text as a vector and stores it in field f of the selected object. On a
// *scene.ParseError the field keeps its value. Blank text is ignored.
func (e *Editor) SetField(f scene.Field, text string) error {
	obj, err := e.scene.Selected()
	if err != nil {
		return err
	}
	v, err := scene.ParseVector(text)
	if errors.Is(err, scene.ErrEmptyInput) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", f, err)
	}
	obj.SetVector(f, v)
	return nil
}

// SetSpin parses text as the spinner's per-tick speed in degrees.
func (e *Editor) SetSpin(text string) error {
	v, err := scene.ParseVector(text)
	if errors.Is(err, scene.ErrEmptyInput) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("spin: %w", err)
	}
	e.spin.SetSpeed(v)
	if v == (glmath.Vec3{}) {
		e.spin.Reset()
	}
	return nil
}

// Save writes the whole object list to the cache.
func (e *Editor) Save() error {
	if e.store == nil {
		return ErrNoStore
	}
	return e.store.Save(e.scene.Snapshot())
}

// Load replaces the scene with the cached one. On failure the current scene is kept.
func (e *Editor) Load() error {
	if e.store == nil {
		return ErrNoStore
	}
	objs, err := e.store.Load()
	if err != nil {
		return err
	}
	e.scene.Replace(objs)
	return nil
}

// Tick advances the spinner one step.
func (e *Editor) Tick() {
	e.spin.Tick()
}

// Frame composes the draw list for the current state. The renderer gets copies of the objects.
func (e *Editor) Frame(vp render.Viewport) render.Frame {
	return render.Compose(e.scene.Snapshot(), e.camera, vp, e.spin.Angles())
}
