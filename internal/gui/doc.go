// Package gui is the raylib window: the wave scene on a responsive canvas
// with the control panel beneath it.
//
//	Space - Play/Pause
//	R     - Reset the clock
//	1 / 2 - Single or double slit
//	Tab   - Select slider (Shift+Tab backwards)
//	←/→   - Adjust selected slider
//	Q     - Quit
package gui
