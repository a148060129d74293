package cmd

import (
	"fmt"

	"github.com/go-drift/pixkit/cmd/pixkit/internal/config"
	"github.com/go-drift/pixkit/pkg/engine"
	"github.com/go-drift/pixkit/pkg/framebuffer"
	"github.com/go-drift/pixkit/pkg/widgets"
)

// loadedScene is a scene wired into a live screen.
type loadedScene struct {
	scene  *config.Scene
	screen *engine.Screen
	icons  map[string]*widgets.GradientIcon
	order  []string
}

func resolveScene(path string) (*config.Scene, error) {
	if path == "" {
		found, err := config.FindSceneFile(config.DefaultFile)
		if err != nil {
			return nil, err
		}
		path = found
	}
	return config.Resolve(path)
}

func buildScene(scene *config.Scene) *loadedScene {
	buffers := make([]*framebuffer.Buffer, scene.Buffers)
	for i := range buffers {
		buffers[i] = framebuffer.New(scene.Width, scene.Height)
	}
	sel := framebuffer.NewSelector(buffers...)

	var opts []engine.ScreenOption
	if scene.Clear {
		opts = append(opts, engine.WithBackground(scene.Background))
	}
	if scene.Buffers > 1 {
		opts = append(opts, engine.WithPageFlip())
	}

	ls := &loadedScene{
		scene:  scene,
		screen: engine.NewScreen(sel, opts...),
		icons:  make(map[string]*widgets.GradientIcon, len(scene.Icons)),
	}
	for _, ic := range scene.Icons {
		icon := widgets.NewGradientIcon(ic.X, ic.Y, ic.Width, ic.Height, ic.Top, ic.Bottom, ic.Mask.Words(), sel,
			widgets.WithRamp(ic.Ramp), widgets.WithVisible(ic.Visible))
		ls.screen.Add(icon)
		ls.icons[ic.Name] = icon
		ls.order = append(ls.order, ic.Name)
	}
	return ls
}

// nameOf returns the scene name of a widget on the screen.
func (ls *loadedScene) nameOf(w widgets.Widget) string {
	for name, icon := range ls.icons {
		if widgets.Widget(icon) == w {
			return name
		}
	}
	return fmt.Sprintf("%T", w)
}
