// Package dialogs provides application dialogs.
package dialogs

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// MaxImageSide bounds each side of a new image.
const MaxImageSide = 16384

// NewImageDialog asks for the size of a new blank image.
type NewImageDialog struct {
	window fyne.Window
	width  int
	height int

	widthEntry  *widget.Entry
	heightEntry *widget.Entry

	// Callback
	onCreate func(width, height int)
}

// NewNewImageDialog creates the dialog with the given initial size, e.g.
// the size of the image on the clipboard.
func NewNewImageDialog(width, height int, window fyne.Window, onCreate func(width, height int)) *NewImageDialog {
	return &NewImageDialog{
		window:   window,
		width:    width,
		height:   height,
		onCreate: onCreate,
	}
}

// Show displays the dialog.
func (d *NewImageDialog) Show() {
	d.widthEntry = widget.NewEntry()
	d.heightEntry = widget.NewEntry()
	if d.width > 0 && d.height > 0 {
		d.widthEntry.SetText(strconv.Itoa(d.width))
		d.heightEntry.SetText(strconv.Itoa(d.height))
	}
	d.widthEntry.Validator = validateSide
	d.heightEntry.Validator = validateSide

	items := []*widget.FormItem{
		widget.NewFormItem("Width", d.widthEntry),
		widget.NewFormItem("Height", d.heightEntry),
	}

	dlg := dialog.NewForm("New Image", "Create", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		w, h, err := ParseSize(d.widthEntry.Text, d.heightEntry.Text)
		if err != nil {
			dialog.ShowError(err, d.window)
			return
		}
		if d.onCreate != nil {
			d.onCreate(w, h)
		}
	}, d.window)
	dlg.Resize(fyne.NewSize(300, 180))
	dlg.Show()
}

// ParseSize validates the width and height fields.
func ParseSize(width, height string) (int, int, error) {
	w, err := parseSide("width", width)
	if err != nil {
		return 0, 0, err
	}
	h, err := parseSide("height", height)
	if err != nil {
		return 0, 0, err
	}
	return w, h, nil
}

func parseSide(name, text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", name)
	}
	if n <= 0 || n > MaxImageSide {
		return 0, fmt.Errorf("%s must be between 1 and %d", name, MaxImageSide)
	}
	return n, nil
}

func validateSide(text string) error {
	_, err := parseSide("value", text)
	return err
}
