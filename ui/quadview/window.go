// Package quadview provides a minimal fyne window for loading a PGM
// image, running the quad target detector, and overlaying the top
// candidate's center, axes, and footprint on the raster.
package quadview

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"quadloco/internal/quad/eval"
	"quadloco/internal/quad/gridops"
	"quadloco/internal/quad/qconfig"
	"quadloco/internal/quad/target"
	"quadloco/internal/rasterio"
	"quadloco/ui/prefs"
)

// footprintHalfSize is the half-width, in pixels, of the oriented
// footprint square drawn around the best candidate.
const footprintHalfSize = 12.0

// Window is the main viewer window.
type Window struct {
	win fyne.Window

	pathLabel   *widget.Label
	resultLabel *widget.Label
	image       *canvas.Image
	overlay     *fyne.Container

	params qconfig.Params
	prefs  *prefs.Prefs
}

// New builds the viewer window within app.
func New(app fyne.App) *Window {
	win := app.NewWindow("QuadLoco Viewer")

	p := prefs.Load()
	params := qconfig.Default()
	params.SupportRatio = p.FloatWithFallback("support_ratio", params.SupportRatio)

	w := &Window{
		win:         win,
		pathLabel:   widget.NewLabel(p.String("last_path")),
		resultLabel: widget.NewLabel(""),
		params:      params,
		prefs:       p,
	}

	openBtn := widget.NewButton("Open PGM...", w.onOpen)

	w.image = canvas.NewImageFromResource(nil)
	w.image.FillMode = canvas.ImageFillContain
	w.image.SetMinSize(fyne.NewSize(400, 400))
	w.overlay = container.NewWithoutLayout()

	content := container.NewBorder(
		container.NewVBox(openBtn, w.pathLabel),
		w.resultLabel,
		nil, nil,
		container.NewStack(w.image, w.overlay),
	)

	win.SetContent(content)
	win.Resize(fyne.NewSize(480, 560))
	return w
}

// Show displays the window.
func (w *Window) Show() {
	w.win.Show()
}

func (w *Window) onOpen() {
	dialog.ShowFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, w.win)
			return
		}
		if rc == nil {
			return
		}
		defer rc.Close()
		w.runOn(rc.URI())
	}, w.win)
}

func (w *Window) runOn(uri fyne.URI) {
	path := uri.Path()
	w.pathLabel.SetText(path)

	byteGrid, err := rasterio.ReadPGMFile(path)
	if err != nil {
		dialog.ShowError(err, w.win)
		return
	}

	w.prefs.SetString("last_path", path)
	if err := w.prefs.Save(); err != nil {
		log.Printf("quadview: saving preferences: %v", err)
	}

	raster := image.NewGray(image.Rect(0, 0, byteGrid.Wide(), byteGrid.High()))
	copy(raster.Pix, byteGrid.Raw())
	w.image.Image = raster
	w.image.Refresh()

	floatGrid := gridops.ByteToFloat(byteGrid)
	candidates := eval.SigQuadWeights(floatGrid, w.params)

	if len(candidates) == 0 {
		w.resultLabel.SetText("no candidate found")
		w.overlay.Objects = nil
		w.overlay.Refresh()
		log.Printf("quadview: no candidate found in %s", path)
		return
	}

	best := candidates[0]
	w.resultLabel.SetText(fmt.Sprintf(
		"center=(%.2f, %.2f) weight=%.4f candidates=%d",
		best.Item.Center.Row, best.Item.Center.Col, best.Weight, len(candidates),
	))
	w.drawCandidate(best.Item)
}

// drawCandidate overlays a crosshair at q's center plus its oriented
// footprint square, so the viewer shows the axes the detector found,
// not just a point.
func (w *Window) drawCandidate(q target.QuadTarget) {
	col, row := float32(q.Center.Col), float32(q.Center.Row)
	across := canvas.NewLine(color.RGBA{R: 255, A: 255})
	across.StrokeWidth = 2
	across.Position1 = fyne.NewPos(col-5, row)
	across.Position2 = fyne.NewPos(col+5, row)
	down := canvas.NewLine(color.RGBA{R: 255, A: 255})
	down.StrokeWidth = 2
	down.Position1 = fyne.NewPos(col, row-5)
	down.Position2 = fyne.NewPos(col, row+5)

	objects := []fyne.CanvasObject{across, down}
	corners := q.Footprint(footprintHalfSize)
	for i := range corners {
		a := corners[i]
		b := corners[(i+1)%len(corners)]
		line := canvas.NewLine(color.RGBA{R: 255, A: 255})
		line.StrokeWidth = 1
		line.Position1 = fyne.NewPos(float32(a.X), float32(a.Y))
		line.Position2 = fyne.NewPos(float32(b.X), float32(b.Y))
		objects = append(objects, line)
	}

	w.overlay.Objects = objects
	w.overlay.Refresh()
}
