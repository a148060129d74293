package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-drift/pixkit/pkg/errors"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render the scene to a BMP file",
		Long: `Render every visible icon of the scene into a framebuffer and save it
as a BMP image.

Flags:
  --scene PATH   Scene file (default: nearest pixkit.yaml)
  --out PATH     Output file (default: frame.bmp)
  --scale N      Enlarge each pixel N times (default: 1)`,
		Usage: "pixkit render [--scene PATH] [--out PATH] [--scale N]",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	scenePath, args, err := sceneFlag(args)
	if err != nil {
		return err
	}

	out := "frame.bmp"
	scale := 1
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--out":
			if i+1 >= len(args) {
				return fmt.Errorf("--out requires a file path")
			}
			out = args[i+1]
			i++
		case "--scale":
			if i+1 >= len(args) {
				return fmt.Errorf("--scale requires a number")
			}
			scale, err = strconv.Atoi(args[i+1])
			if err != nil || scale < 1 {
				return fmt.Errorf("invalid scale %q", args[i+1])
			}
			i++
		default:
			return fmt.Errorf("unexpected argument %q", args[i])
		}
	}

	scene, err := resolveScene(scenePath)
	if err != nil {
		return err
	}
	frame := buildScene(scene).screen.DrawAll()
	if frame == nil {
		return &errors.PixError{Op: "cmd.render", Kind: errors.KindRender, Err: fmt.Errorf("nothing was drawn")}
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := frame.EncodeBMP(f, scale); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Rendered %d icons (%dx%d, scale %d) to %s\n",
		len(scene.Icons), scene.Width, scene.Height, scale, out)
	return nil
}
