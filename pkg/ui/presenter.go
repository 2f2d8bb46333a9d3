// Package ui implements tutorial.Presenter with ebitenui widgets.
package ui

import (
	"log"

	"github.com/decker502/catan/pkg/config"
	"github.com/decker502/catan/pkg/content"
	"github.com/decker502/catan/pkg/game"
	"github.com/decker502/catan/pkg/tutorial"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Controller receives the button clicks. NavigationController implements it.
type Controller interface {
	GoToChapterSelect()
	OnClickChapter(chapterID int)
	OnClickNext()
	OnClickPrev()
	OpenGameMenu()
	CloseGameMenu()
	OnClickBackToSection()
	OnClickBackToChapter()
	GoToPractice()
	OnClickRoll()
	SkipVideo()
}

// scaledKey identifies a resized copy of a resource image.
type scaledKey struct {
	id   string
	w, h int
}

// Presenter draws the tutorial screens.
//
// Widgets are created by Build. Panel visibility and section click handlers
// set before Build are kept; text, labels and center images set before
// Build are dropped.
type Presenter struct {
	ui        *ebitenui.UI
	resources *game.ResourceManager
	audio     *game.AudioManager
	face      text.Face

	sectionSlots int

	panels   map[tutorial.Panel]widget.HasWidget
	texts    map[tutorial.Field]*widget.Text
	graphics map[tutorial.Field]*widget.Graphic

	chapterList     *widget.Container
	sectionButtons  []*widget.Button
	sectionHandlers []func()

	// full-screen images drawn under the widgets
	background *ebiten.Image
	videoFrame *ebiten.Image
	scaled     map[scaledKey]*ebiten.Image

	visible map[tutorial.Panel]bool
}

var _ tutorial.Presenter = (*Presenter)(nil)

// NewPresenter creates a presenter. Call Build before the first frame.
func NewPresenter(rm *game.ResourceManager, am *game.AudioManager, face text.Face, sectionSlots int) *Presenter {
	if sectionSlots <= 0 {
		sectionSlots = tutorial.DefaultSectionSlots
	}
	return &Presenter{
		resources:       rm,
		audio:           am,
		face:            face,
		sectionSlots:    sectionSlots,
		panels:          make(map[tutorial.Panel]widget.HasWidget),
		texts:           make(map[tutorial.Field]*widget.Text),
		graphics:        make(map[tutorial.Field]*widget.Graphic),
		sectionHandlers: make([]func(), sectionSlots),
		scaled:          make(map[scaledKey]*ebiten.Image),
		visible:         make(map[tutorial.Panel]bool),
	}
}

// SetPanelVisible implements tutorial.Presenter.
func (p *Presenter) SetPanelVisible(panel tutorial.Panel, visible bool) {
	p.visible[panel] = visible
	if w, ok := p.panels[panel]; ok {
		setVisible(w, visible)
	}
}

// SetText implements tutorial.Presenter.
func (p *Presenter) SetText(field tutorial.Field, s string) {
	t, ok := p.texts[field]
	if !ok {
		log.Printf("[UI] Warning: no text widget for field %d", field)
		return
	}
	if field == tutorial.FieldMessage || field == tutorial.FieldGuide {
		s = wrapText(s, p.face, float64(config.GameWindowWidth-4*config.PanelPadding))
	}
	t.Label = s
}

// SetImage implements tutorial.Presenter.
func (p *Presenter) SetImage(field tutorial.Field, imageID string) {
	switch field {
	case tutorial.FieldBackground:
		p.background = p.resources.ImageByID(imageID)
	case tutorial.FieldVideoFrame:
		p.videoFrame = p.resources.ImageByID(imageID)
	case tutorial.FieldCenterImage:
		p.setGraphic(field, imageID, config.CenterImageMaxWidth, config.CenterImageMaxHeight)
	case tutorial.FieldDie1, tutorial.FieldDie2:
		p.setGraphic(field, imageID, config.DieSize, config.DieSize)
	default:
		log.Printf("[UI] Warning: field %d does not show images", field)
	}
}

func (p *Presenter) setGraphic(field tutorial.Field, imageID string, maxW, maxH int) {
	g, ok := p.graphics[field]
	if !ok {
		return
	}
	g.Image = p.fitted(imageID, maxW, maxH)
	if p.ui != nil {
		p.ui.Container.RequestRelayout()
	}
}

// fitted returns the image for id scaled down to fit maxW x maxH.
func (p *Presenter) fitted(id string, maxW, maxH int) *ebiten.Image {
	src := p.resources.ImageByID(id)
	b := src.Bounds()
	w, h := config.FitSize(b.Dx(), b.Dy(), maxW, maxH)
	if w == b.Dx() && h == b.Dy() {
		return src
	}

	key := scaledKey{id: id, w: w, h: h}
	if img, ok := p.scaled[key]; ok {
		return img
	}
	img := ebiten.NewImage(max(w, 1), max(h, 1))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	op.Filter = ebiten.FilterLinear
	img.DrawImage(src, op)
	p.scaled[key] = img
	return img
}

// PlayAudio implements tutorial.Presenter.
func (p *Presenter) PlayAudio(soundID string) {
	if p.audio != nil {
		p.audio.Play(soundID)
	}
}

// StopAudio implements tutorial.Presenter.
func (p *Presenter) StopAudio() {
	if p.audio != nil {
		p.audio.StopAll()
	}
}

// BindSectionButton implements tutorial.Presenter.
func (p *Presenter) BindSectionButton(slot int, label string, onClick func()) {
	if slot < 0 || slot >= p.sectionSlots {
		log.Printf("[UI] Warning: section slot %d out of range", slot)
		return
	}
	p.sectionHandlers[slot] = onClick
	if slot < len(p.sectionButtons) {
		b := p.sectionButtons[slot]
		if t := b.Text(); t != nil {
			t.Label = label
		}
		setVisible(b, true)
	}
}

// HideSectionButton implements tutorial.Presenter.
func (p *Presenter) HideSectionButton(slot int) {
	if slot < 0 || slot >= p.sectionSlots {
		return
	}
	p.sectionHandlers[slot] = nil
	if slot < len(p.sectionButtons) {
		setVisible(p.sectionButtons[slot], false)
	}
}

// Update runs the widget input handling.
func (p *Presenter) Update() {
	if p.ui != nil {
		p.ui.Update()
	}
}

// Draw draws the full-screen images, then the widgets.
func (p *Presenter) Draw(screen *ebiten.Image) {
	screen.Fill(colorScreen)

	switch {
	case p.visible[tutorial.PanelVideo]:
		drawFullScreen(screen, p.videoFrame)
	case p.visible[tutorial.PanelGame]:
		drawFullScreen(screen, p.background)
	}

	if p.ui != nil {
		p.ui.Draw(screen)
	}
}

// drawFullScreen scales img to cover the screen.
func drawFullScreen(screen, img *ebiten.Image) {
	if img == nil {
		return
	}
	b := img.Bounds()
	sb := screen.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sb.Dx())/float64(b.Dx()), float64(sb.Dy())/float64(b.Dy()))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// RebuildChapters replaces the chapter buttons after a content reload.
func (p *Presenter) RebuildChapters(lib *content.Library, ctrl Controller) {
	if p.chapterList == nil {
		return
	}
	p.chapterList.RemoveChildren()
	p.addChapterButtons(lib, ctrl)
	p.ui.Container.RequestRelayout()
}

func (p *Presenter) addChapterButtons(lib *content.Library, ctrl Controller) {
	for id, ch := range lib.Chapters {
		p.chapterList.AddChild(newButton(ch.Name, &p.face, config.ButtonWidth*3/2, config.ButtonHeight, func() {
			ctrl.OnClickChapter(id)
		}))
	}
}
