package cmd

import (
	"fmt"
	"strconv"
)

func init() {
	RegisterCommand(&Command{
		Name:  "press",
		Short: "Send pen presses to the scene",
		Long: `Press the screen at one or more points and report which icon, if any,
took each press. Points are given as X Y pairs in screen pixels.

Flags:
  --scene PATH   Scene file (default: nearest pixkit.yaml)`,
		Usage: "pixkit press [--scene PATH] X Y [X Y ...]",
		Run:   runPress,
	})
}

func runPress(args []string) error {
	scenePath, args, err := sceneFlag(args)
	if err != nil {
		return err
	}
	if len(args) == 0 || len(args)%2 != 0 {
		return fmt.Errorf("expected X Y coordinate pairs\n\nUsage: pixkit press X Y [X Y ...]")
	}

	points := make([][2]int, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		x, errX := strconv.Atoi(args[i])
		y, errY := strconv.Atoi(args[i+1])
		if errX != nil || errY != nil {
			return fmt.Errorf("invalid point %q %q", args[i], args[i+1])
		}
		points = append(points, [2]int{x, y})
	}

	scene, err := resolveScene(scenePath)
	if err != nil {
		return err
	}
	ls := buildScene(scene)

	var pushed []string
	for _, name := range ls.order {
		name := name // per-iteration copy (Go < 1.22 loop semantics)
		ls.icons[name].RegisterPushCallback(func() { pushed = append(pushed, name) })
	}

	for _, p := range points {
		pushed = pushed[:0]
		hit := ls.screen.PenDown(p[0], p[1])
		switch {
		case hit == nil:
			fmt.Fprintf(stdout, "(%d, %d): nothing\n", p[0], p[1])
		case len(pushed) > 0:
			fmt.Fprintf(stdout, "(%d, %d): pushed %s\n", p[0], p[1], pushed[0])
		default:
			fmt.Fprintf(stdout, "(%d, %d): hit %s\n", p[0], p[1], ls.nameOf(hit))
		}
	}
	return nil
}
