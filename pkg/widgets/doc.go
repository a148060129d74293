// Package widgets contains the pixkit widgets.
//
// Widgets draw straight into a framebuffer chosen through a
// [framebuffer.Selector] and receive pen presses in absolute screen
// coordinates. Drawing and input handling happen on the UI loop; widgets
// are not safe for concurrent use.
//
// Example:
//
//	fb := framebuffer.NewSelector(framebuffer.New(256, 192))
//	icon := widgets.NewGradientIcon(10, 10, 16, 16,
//	    graphics.Color15White, graphics.RGB15(0, 0, 12), iconWords, fb)
//	icon.RegisterPushCallback(func() { startGame() })
//	icon.PleaseDraw()
package widgets
