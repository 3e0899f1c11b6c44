package editor

import (
	"flag"
	"strconv"
	"strings"

	"scene-editor/internal/commands"
	"scene-editor/internal/scene"
)

// RegisterCommands adds the editing subcommands to reg. Handlers log what they changed; failures are
// returned for the terminal to report.
func (e *Editor) RegisterCommands(reg *commands.Registry) {
	var addCmd *commands.Command
	addCmd = reg.Register("add", "add cube|sphere", nil, func(args []string) error {
		if len(args) != 1 {
			return addCmd.Usagef("expected one kind")
		}
		kind, err := scene.ParseKind(args[0])
		if err != nil {
			return err
		}
		obj := e.AddObject(kind)
		e.log.Logf("added %q at index %d", obj.Name, e.scene.SelectedIndex())
		return nil
	})

	reg.Register("delete", "delete", nil, func([]string) error {
		obj, err := e.scene.Selected()
		if err != nil {
			return err
		}
		name := obj.Name
		if err := e.DeleteSelected(); err != nil {
			return err
		}
		e.log.Logf("deleted %q", name)
		return nil
	})

	var selectCmd *commands.Command
	selectCmd = reg.Register("select", "select <index>", nil, func(args []string) error {
		if len(args) != 1 {
			return selectCmd.Usagef("expected one index")
		}
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return selectCmd.Usagef("index %q is not a number", args[0])
		}
		if err := e.Select(i); err != nil {
			return err
		}
		obj, _ := e.scene.Selected()
		e.log.Logf("selected %d: %s", i, obj.Name)
		return nil
	})

	reg.Register("list", "list", nil, func([]string) error {
		objs := e.scene.Objects()
		if len(objs) == 0 {
			e.log.Log("scene is empty")
			return nil
		}
		sel := e.scene.SelectedIndex()
		for i, obj := range objs {
			mark := " "
			if i == sel {
				mark = "*"
			}
			e.log.Logf("%s%d %s", mark, i, obj)
		}
		return nil
	})

	reg.Register("name", "name <text>", nil, func(args []string) error {
		if err := e.Rename(strings.Join(args, " ")); err != nil {
			return err
		}
		obj, _ := e.scene.Selected()
		e.log.Logf("name: %s", obj.Name)
		return nil
	})

	for _, f := range scene.Fields {
		reg.Register(f.String(), f.String()+" <x,y,z>", nil, func(args []string) error {
			if err := e.SetField(f, strings.Join(args, " ")); err != nil {
				return err
			}
			obj, _ := e.scene.Selected()
			e.log.Logf("%s: %s", f, scene.FormatVector(obj.Vector(f)))
			return nil
		})
	}

	reg.Register("spin", "spin <x,y,z>", nil, func(args []string) error {
		if err := e.SetSpin(strings.Join(args, " ")); err != nil {
			return err
		}
		e.log.Logf("spin: %s degrees per tick", scene.FormatVector(e.spin.Speed()))
		return nil
	})

	reg.Register("save", "save", nil, func([]string) error {
		if err := e.Save(); err != nil {
			return err
		}
		e.log.Logf("saved %d object(s)", e.scene.Len())
		return nil
	})

	reg.Register("load", "load", nil, func([]string) error {
		if err := e.Load(); err != nil {
			return err
		}
		e.log.Logf("loaded %d object(s)", e.scene.Len())
		return nil
	})

	gridFlags := flag.NewFlagSet("grid", flag.ContinueOnError)
	show := gridFlags.Bool("show", false, "show the editor grid")
	hide := gridFlags.Bool("hide", false, "hide the editor grid")
	var gridCmd *commands.Command
	gridCmd = reg.Register("grid", "grid --show|--hide", gridFlags, func([]string) error {
		if e.grid == nil {
			return gridCmd.Usagef("no grid to toggle")
		}
		switch {
		case *show && *hide:
			return gridCmd.Usagef("--show and --hide are exclusive")
		case *show:
			e.grid.SetGridVisible(true)
		case *hide:
			e.grid.SetGridVisible(false)
		default:
			return gridCmd.Usagef("expected --show or --hide")
		}
		e.log.Logf("grid visible: %t", e.grid.GridVisible())
		return nil
	})

	reg.Register("help", "help", nil, func([]string) error {
		for _, line := range reg.Help() {
			e.log.Log(line)
		}
		return nil
	})
}
