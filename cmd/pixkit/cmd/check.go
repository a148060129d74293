package cmd

import (
	"fmt"
)

func init() {
	RegisterCommand(&Command{
		Name:  "check",
		Short: "Validate a scene file",
		Long: `Load and validate a scene file, then list its icons.

Flags:
  --scene PATH   Scene file (default: nearest pixkit.yaml)`,
		Usage: "pixkit check [--scene PATH]",
		Run:   runCheck,
	})
}

func runCheck(args []string) error {
	scenePath, args, err := sceneFlag(args)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument %q", args[0])
	}

	scene, err := resolveScene(scenePath)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Scene: %s\n", scene.Path)
	fmt.Fprintf(stdout, "Screen: %dx%d, %d buffer(s)\n", scene.Width, scene.Height, scene.Buffers)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Icons:")
	for _, ic := range scene.Icons {
		state := "visible"
		if !ic.Visible {
			state = "hidden"
		}
		fmt.Fprintf(stdout, "  %-12s %3d,%-3d %3dx%-3d %04x -> %04x  %s\n",
			ic.Name, ic.X, ic.Y, ic.Width, ic.Height, uint16(ic.Top), uint16(ic.Bottom), state)
	}
	return nil
}
