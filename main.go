// Command quadloco launches the quad target viewer: a small window for
// loading a PGM raster, running the detector, and inspecting the
// top candidate center.
package main

import (
	"log"

	"fyne.io/fyne/v2/app"

	"quadloco/internal/version"
	"quadloco/ui/quadview"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("quadloco %s (build %s, commit %s)", version.Version, version.BuildTime, version.GitCommit)

	a := app.New()
	win := quadview.New(a)
	win.Show()
	a.Run()
}
