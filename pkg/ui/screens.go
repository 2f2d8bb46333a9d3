package ui

import (
	"fmt"
	"image/color"

	"github.com/decker502/catan/pkg/config"
	"github.com/decker502/catan/pkg/content"
	"github.com/decker502/catan/pkg/tutorial"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// BoardImageID is shown in the board container of the practice screen.
const BoardImageID = "IMAGE_BOARD"

// Build creates every screen. Panels start hidden; the navigation
// controller decides which one shows.
func (p *Presenter) Build(lib *content.Library, ctrl Controller) {
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))

	root.AddChild(p.buildTitle(ctrl))
	root.AddChild(p.buildChapterSelect(lib, ctrl))
	root.AddChild(p.buildSectionSelect(ctrl))
	root.AddChild(p.buildGame(ctrl))
	root.AddChild(p.buildGameMenu(ctrl))
	root.AddChild(p.buildPractice(ctrl))
	root.AddChild(p.buildVideo(ctrl))

	p.ui = &ebitenui.UI{Container: root}

	for panel, w := range p.panels {
		setVisible(w, p.visible[panel])
	}
}

// screen creates a full-screen anchor container registered as panel.
func (p *Presenter) screen(panel tutorial.Panel, bg color.Color) *widget.Container {
	opts := []widget.ContainerOpt{
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.WidgetOpts(fullScreen()),
	}
	if bg != nil {
		opts = append(opts, widget.ContainerOpts.BackgroundImage(solidNineSlice(bg)))
	}
	c := widget.NewContainer(opts...)
	p.panels[panel] = c
	return c
}

func (p *Presenter) text(field tutorial.Field, c color.Color) *widget.Text {
	t := newLabel("", &p.face, c)
	p.texts[field] = t
	return t
}

func (p *Presenter) graphic(field tutorial.Field, w, h int) *widget.Graphic {
	g := widget.NewGraphic(
		widget.GraphicOpts.Image(ebiten.NewImage(1, 1)),
		widget.GraphicOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(w, h),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
	)
	p.graphics[field] = g
	return g
}

func (p *Presenter) buildTitle(ctrl Controller) *widget.Container {
	s := p.screen(tutorial.PanelTitle, nil)

	col := newColumn(config.PanelSpacing*2, config.PanelPadding, solidNineSlice(colorPanel),
		anchored(widget.AnchorLayoutPositionCenter, widget.AnchorLayoutPositionCenter))
	col.AddChild(newLabel("The Settlers of Catan", &p.face, colorText))
	col.AddChild(newLabel("Tutorial", &p.face, colorText))
	col.AddChild(newButton("Start", &p.face, config.ButtonWidth, config.ButtonHeight, ctrl.GoToChapterSelect))
	s.AddChild(col)
	return s
}

func (p *Presenter) buildChapterSelect(lib *content.Library, ctrl Controller) *widget.Container {
	s := p.screen(tutorial.PanelChapterSelect, nil)

	col := newColumn(config.PanelSpacing, config.PanelPadding, solidNineSlice(colorPanel),
		anchored(widget.AnchorLayoutPositionCenter, widget.AnchorLayoutPositionCenter))
	col.AddChild(newLabel("Choose a chapter", &p.face, colorText))

	p.chapterList = newColumn(config.PanelSpacing, 0, nil,
		widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}))
	p.addChapterButtons(lib, ctrl)
	col.AddChild(p.chapterList)

	s.AddChild(col)
	return s
}

func (p *Presenter) buildSectionSelect(ctrl Controller) *widget.Container {
	s := p.screen(tutorial.PanelSectionSelect, nil)

	col := newColumn(config.PanelSpacing, config.PanelPadding, solidNineSlice(colorPanel),
		anchored(widget.AnchorLayoutPositionCenter, widget.AnchorLayoutPositionCenter))
	col.AddChild(p.text(tutorial.FieldSectionTitle, colorText))

	p.sectionButtons = make([]*widget.Button, p.sectionSlots)
	for slot := range p.sectionSlots {
		b := newButton(fmt.Sprintf("Section %d", slot+1), &p.face, config.ButtonWidth, config.ButtonHeight, func() {
			if h := p.sectionHandlers[slot]; h != nil {
				h()
			}
		})
		setVisible(b, false)
		p.sectionButtons[slot] = b
		col.AddChild(b)
	}

	col.AddChild(newButton("Back", &p.face, config.NavButtonWidth, config.ButtonHeight, ctrl.GoToChapterSelect))
	s.AddChild(col)
	return s
}

func (p *Presenter) buildGame(ctrl Controller) *widget.Container {
	s := p.screen(tutorial.PanelGame, nil)

	header := newColumn(0, config.PanelSpacing, solidNineSlice(colorPanel),
		widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionStart,
			StretchHorizontal:  true,
		}))
	header.AddChild(p.text(tutorial.FieldHeader, colorText))
	s.AddChild(header)

	center := newColumn(0, 0, nil, anchored(widget.AnchorLayoutPositionCenter, widget.AnchorLayoutPositionCenter))
	center.AddChild(p.graphic(tutorial.FieldCenterImage, 1, 1))
	s.AddChild(center)

	dialog := newColumn(config.PanelSpacing/2, config.PanelPadding, solidNineSlice(colorDialog),
		widget.WidgetOpts.MinSize(0, config.DialogHeight),
		widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionEnd,
			StretchHorizontal:  true,
		}))
	speaker := p.text(tutorial.FieldSpeaker, colorSpeaker)
	speaker.GetWidget().LayoutData = widget.RowLayoutData{Position: widget.RowLayoutPositionStart}
	dialog.AddChild(speaker)
	message := p.text(tutorial.FieldMessage, colorDialogText)
	message.GetWidget().LayoutData = widget.RowLayoutData{Position: widget.RowLayoutPositionStart}
	dialog.AddChild(message)

	nav := newRow(config.PanelSpacing, widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionEnd}))
	prev := newButton("Prev", &p.face, config.NavButtonWidth, config.ButtonHeight, ctrl.OnClickPrev)
	p.panels[tutorial.PanelPrevButton] = prev
	nav.AddChild(prev)
	nav.AddChild(newButton("Next", &p.face, config.NavButtonWidth, config.ButtonHeight, ctrl.OnClickNext))
	practice := newButton("Practice", &p.face, config.NavButtonWidth, config.ButtonHeight, ctrl.GoToPractice)
	p.panels[tutorial.PanelPracticeButton] = practice
	nav.AddChild(practice)
	nav.AddChild(newButton("Menu", &p.face, config.NavButtonWidth, config.ButtonHeight, ctrl.OpenGameMenu))
	dialog.AddChild(nav)

	s.AddChild(dialog)
	return s
}

func (p *Presenter) buildGameMenu(ctrl Controller) *widget.Container {
	s := p.screen(tutorial.PanelGameMenu, colorPanel)

	col := newColumn(config.PanelSpacing, config.PanelPadding, solidNineSlice(colorPanel),
		anchored(widget.AnchorLayoutPositionCenter, widget.AnchorLayoutPositionCenter))
	col.AddChild(newLabel("Menu", &p.face, colorText))
	col.AddChild(newButton("Resume", &p.face, config.ButtonWidth, config.ButtonHeight, ctrl.CloseGameMenu))
	col.AddChild(newButton("Sections", &p.face, config.ButtonWidth, config.ButtonHeight, ctrl.OnClickBackToSection))
	col.AddChild(newButton("Chapters", &p.face, config.ButtonWidth, config.ButtonHeight, ctrl.OnClickBackToChapter))
	s.AddChild(col)
	return s
}

func (p *Presenter) buildPractice(ctrl Controller) *widget.Container {
	s := p.screen(tutorial.PanelPractice, nil)

	col := newColumn(config.PanelSpacing, config.PanelPadding, solidNineSlice(colorPanel),
		anchored(widget.AnchorLayoutPositionCenter, widget.AnchorLayoutPositionCenter))
	col.AddChild(p.text(tutorial.FieldGuide, colorText))

	dice := newRow(config.DieSpacing, widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}))
	dice.AddChild(p.graphic(tutorial.FieldDie1, config.DieSize, config.DieSize))
	dice.AddChild(p.graphic(tutorial.FieldDie2, config.DieSize, config.DieSize))
	p.panels[tutorial.PanelDiceContainer] = dice
	col.AddChild(dice)

	board := newColumn(0, 0, nil, widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}))
	board.AddChild(widget.NewGraphic(
		widget.GraphicOpts.Image(p.fitted(BoardImageID, config.CenterImageMaxWidth, config.CenterImageMaxHeight)),
	))
	p.panels[tutorial.PanelBoardContainer] = board
	col.AddChild(board)

	roll := newButton("Roll", &p.face, config.ButtonWidth, config.ButtonHeight, ctrl.OnClickRoll)
	p.panels[tutorial.PanelRollButton] = roll
	col.AddChild(roll)

	col.AddChild(newButton("Back", &p.face, config.NavButtonWidth, config.ButtonHeight, ctrl.OnClickBackToSection))
	s.AddChild(col)
	return s
}

func (p *Presenter) buildVideo(ctrl Controller) *widget.Container {
	s := p.screen(tutorial.PanelVideo, nil)

	skip := newButton("Skip", &p.face, config.NavButtonWidth, config.ButtonHeight, ctrl.SkipVideo)
	skip.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionEnd,
	}
	s.AddChild(skip)
	return s
}
