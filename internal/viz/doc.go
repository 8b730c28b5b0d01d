// Package viz renders the wave optics scene in a terminal.
//
//   - [Canvas]: braille grid with 2x4 dots per cell
//   - [Surface]: scene.Surface on a Canvas, with dithered fills and labels
//   - [IntensityColumn]: shaded block column for the screen pattern
//   - Themes for the chrome around the scene
package viz
