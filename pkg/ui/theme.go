package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Palette.
var (
	colorScreen     = color.RGBA{R: 0x1d, G: 0x3b, B: 0x53, A: 0xff} // sea blue behind every screen
	colorPanel      = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xb4}
	colorDialog     = color.NRGBA{R: 0xf4, G: 0xe4, B: 0xc1, A: 0xf0} // parchment
	colorButton     = color.NRGBA{R: 0xb3, G: 0x5c, B: 0x1e, A: 0xff} // brick
	colorButtonOver = color.NRGBA{R: 0xc9, G: 0x70, B: 0x2c, A: 0xff}
	colorButtonDown = color.NRGBA{R: 0x8c, G: 0x45, B: 0x12, A: 0xff}
	colorText       = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorDialogText = color.NRGBA{R: 0x2b, G: 0x1d, B: 0x0e, A: 0xff}
	colorSpeaker    = color.NRGBA{R: 0x8c, G: 0x45, B: 0x12, A: 0xff}
)

func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    solidNineSlice(colorButton),
		Hover:   solidNineSlice(colorButtonOver),
		Pressed: solidNineSlice(colorButtonDown),
	}
}

func buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{Idle: colorText}
}

// newButton builds a themed button of the given size.
func newButton(label string, face *text.Face, w, h int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, face, buttonTextColor()),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(w, h),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

// newLabel builds a text widget centered in a row layout.
func newLabel(label string, face *text.Face, c color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, face, c),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

// newColumn builds a vertical row-layout container.
func newColumn(spacing, padding int, bg *image.NineSlice, opts ...widget.WidgetOpt) *widget.Container {
	containerOpts := []widget.ContainerOpt{
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(spacing),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: padding, Bottom: padding, Left: padding, Right: padding}),
		)),
		widget.ContainerOpts.WidgetOpts(opts...),
	}
	if bg != nil {
		containerOpts = append(containerOpts, widget.ContainerOpts.BackgroundImage(bg))
	}
	return widget.NewContainer(containerOpts...)
}

// newRow builds a horizontal row-layout container.
func newRow(spacing int, opts ...widget.WidgetOpt) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
		widget.ContainerOpts.WidgetOpts(opts...),
	)
}

// anchored positions a widget inside an anchor layout.
func anchored(h, v widget.AnchorLayoutPosition) widget.WidgetOpt {
	return widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
		HorizontalPosition: h,
		VerticalPosition:   v,
	})
}

// fullScreen stretches a widget over its anchor layout parent.
func fullScreen() widget.WidgetOpt {
	return widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchHorizontal:  true,
		StretchVertical:    true,
	})
}

func setVisible(w widget.HasWidget, visible bool) {
	if visible {
		w.GetWidget().Visibility = widget.Visibility_Show
	} else {
		w.GetWidget().Visibility = widget.Visibility_Hide
	}
}
