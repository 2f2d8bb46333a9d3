package tutorial

import (
	"fmt"
	"log"

	"github.com/decker502/catan/pkg/content"
)

// PracticeChapterID is the only chapter with a practice flow bound to it.
const PracticeChapterID = 1

// DefaultSectionSlots is the number of section buttons on the section
// select screen when the caller does not configure one.
const DefaultSectionSlots = 6

// Screen is the top-level screen the tutorial is showing.
type Screen int

const (
	ScreenTitle Screen = iota
	ScreenChapterSelect
	ScreenSectionSelect
	ScreenGame
	ScreenPractice
	ScreenVideo
)

// String returns the screen name.
func (s Screen) String() string {
	switch s {
	case ScreenTitle:
		return "Title"
	case ScreenChapterSelect:
		return "ChapterSelect"
	case ScreenSectionSelect:
		return "SectionSelect"
	case ScreenGame:
		return "Game"
	case ScreenPractice:
		return "Practice"
	case ScreenVideo:
		return "Video"
	default:
		return "Unknown"
	}
}

// panel returns the top-level panel that shows the screen.
func (s Screen) panel() Panel {
	switch s {
	case ScreenChapterSelect:
		return PanelChapterSelect
	case ScreenSectionSelect:
		return PanelSectionSelect
	case ScreenGame:
		return PanelGame
	case ScreenPractice:
		return PanelPractice
	case ScreenVideo:
		return PanelVideo
	default:
		return PanelTitle
	}
}

// NavigationState is the in-memory selection state. It lives as long as the
// process and is never persisted.
type NavigationState struct {
	Screen       Screen
	ChapterID    int
	SectionIndex int
	MenuOpen     bool
}

// NavigationController owns the current screen and selection and wires the
// slide player, the practice flow and the intro clip together.
type NavigationController struct {
	presenter Presenter
	library   *content.Library

	slides   *SlidePlayer
	practice *DicePracticeFlow
	intro    *IntroVideo

	state        NavigationState
	sectionSlots int
}

// NavigationOptions configures NewNavigationController.
type NavigationOptions struct {
	// SectionSlots is the number of section buttons the UI provides.
	// 0 means DefaultSectionSlots.
	SectionSlots int

	// Video plays the intro clip; nil skips straight to chapter select.
	Video VideoPlayer

	// Practice overrides the dice flow (tests inject a seeded one).
	Practice *DicePracticeFlow
}

// NewNavigationController creates a controller on the Title screen.
// Nothing is rendered until ShowTitle is called.
func NewNavigationController(p Presenter, lib *content.Library, opts NavigationOptions) *NavigationController {
	slots := opts.SectionSlots
	if slots <= 0 {
		slots = DefaultSectionSlots
	}

	practice := opts.Practice
	if practice == nil {
		practice = NewDicePracticeFlow(p, nil)
	}

	n := &NavigationController{
		presenter:    p,
		library:      lib,
		slides:       NewSlidePlayer(p),
		practice:     practice,
		sectionSlots: slots,
		state:        NavigationState{Screen: ScreenTitle},
	}
	n.intro = NewIntroVideo(opts.Video, n.GoToChapterSelect)
	return n
}

// State returns a copy of the navigation state.
func (n *NavigationController) State() NavigationState { return n.state }

// Slides returns the slide player.
func (n *NavigationController) Slides() *SlidePlayer { return n.slides }

// Practice returns the practice flow.
func (n *NavigationController) Practice() *DicePracticeFlow { return n.practice }

// SetLibrary swaps in reloaded content. A scenario already playing keeps
// its own (immutable) data; the section select screen is rebuilt if it is
// on screen.
func (n *NavigationController) SetLibrary(lib *content.Library) {
	n.library = lib
	log.Printf("[Navigation] Content replaced (%d chapters)", lib.ChapterCount())
	if n.state.Screen == ScreenSectionSelect {
		n.GoToSectionSelect(n.state.ChapterID)
	}
}

// switchTo hides every screen panel and shows the one for s.
func (n *NavigationController) switchTo(s Screen) {
	if n.state.Screen == ScreenPractice && s != ScreenPractice {
		n.practice.Stop()
	}

	for _, p := range screenPanels {
		n.presenter.SetPanelVisible(p, false)
	}
	n.presenter.SetPanelVisible(s.panel(), true)

	if n.state.Screen != s {
		log.Printf("[Navigation] %s -> %s", n.state.Screen, s)
	}
	n.state.Screen = s
}

// ShowTitle shows the title screen.
func (n *NavigationController) ShowTitle() {
	n.switchTo(ScreenTitle)
}

// GoToChapterSelect shows the chapter list and stops any narration.
func (n *NavigationController) GoToChapterSelect() {
	n.presenter.StopAudio()
	n.switchTo(ScreenChapterSelect)
}

// OnClickChapter handles a chapter button. Chapter 0 plays the intro clip,
// which returns to chapter select when it ends or is skipped.
func (n *NavigationController) OnClickChapter(chapterID int) {
	n.state.ChapterID = chapterID

	if chapterID == content.IntroChapterID {
		log.Printf("[Navigation] Playing intro")
		n.presenter.StopAudio()
		n.switchTo(ScreenVideo)
		n.intro.Start()
		return
	}

	n.GoToSectionSelect(chapterID)
}

// SkipVideo skips the intro clip. Extra calls are no-ops.
func (n *NavigationController) SkipVideo() {
	n.intro.Skip()
}

// GoToSectionSelect shows the sections of a chapter.
//
// An out-of-range chapter is logged as ErrOutOfRange; the title and the
// section buttons keep whatever they showed before.
func (n *NavigationController) GoToSectionSelect(chapterID int) {
	n.state.ChapterID = chapterID
	n.switchTo(ScreenSectionSelect)

	ch, err := n.library.Chapter(chapterID)
	if err != nil {
		log.Printf("[Navigation] Warning: section select: %v", err)
		return
	}

	n.presenter.SetText(FieldSectionTitle, ch.Name)

	for slot := 0; slot < n.sectionSlots; slot++ {
		if slot >= len(ch.Scenarios) {
			n.presenter.HideSectionButton(slot)
			continue
		}
		label := fmt.Sprintf("Section %d", slot+1)
		if sc := ch.Scenarios[slot]; sc != nil {
			label = sc.Title
		}
		n.presenter.BindSectionButton(slot, label, func() {
			n.StartGame(chapterID, slot)
		})
	}

	if len(ch.Scenarios) > n.sectionSlots {
		log.Printf("[Navigation] Warning: chapter %d has %d sections, only %d buttons",
			chapterID, len(ch.Scenarios), n.sectionSlots)
	}
}

// StartGame opens a section's scenario on the game screen.
//
// Bad indices are reported as ErrContentNotFound and leave the game panel
// showing with no content; a previously playing scenario is dropped.
func (n *NavigationController) StartGame(chapterID, sectionIndex int) error {
	n.state.ChapterID = chapterID
	n.state.SectionIndex = sectionIndex
	n.switchTo(ScreenGame)
	n.presenter.SetPanelVisible(PanelPracticeButton, chapterID == PracticeChapterID)

	sc, err := n.library.Scenario(chapterID, sectionIndex)
	if err != nil {
		log.Printf("[Navigation] Error: scenario not found: %v", err)
		n.slides.reset()
		return err
	}
	return n.slides.StartScenario(sc)
}

// OpenGameMenu shows the in-game menu overlay. Nothing is paused.
func (n *NavigationController) OpenGameMenu() {
	n.state.MenuOpen = true
	n.presenter.SetPanelVisible(PanelGameMenu, true)
}

// CloseGameMenu hides the in-game menu overlay.
func (n *NavigationController) CloseGameMenu() {
	n.state.MenuOpen = false
	n.presenter.SetPanelVisible(PanelGameMenu, false)
}

// ToggleGameMenu opens or closes the overlay.
func (n *NavigationController) ToggleGameMenu() {
	if n.state.MenuOpen {
		n.CloseGameMenu()
		return
	}
	n.OpenGameMenu()
}

// OnClickBackToSection closes the menu and returns to the remembered chapter.
func (n *NavigationController) OnClickBackToSection() {
	n.CloseGameMenu()
	n.GoToSectionSelect(n.state.ChapterID)
}

// OnClickBackToChapter closes the menu and returns to the chapter list.
func (n *NavigationController) OnClickBackToChapter() {
	n.CloseGameMenu()
	n.GoToChapterSelect()
}

// GoToPractice switches from the game screen to the practice screen.
// Only PracticeChapterID has a practice flow; other chapters stay put.
func (n *NavigationController) GoToPractice() {
	if n.state.ChapterID != PracticeChapterID {
		log.Printf("[Navigation] No practice for chapter %d", n.state.ChapterID)
		return
	}
	n.CloseGameMenu()
	n.switchTo(ScreenPractice)
	n.practice.StartPractice(n.state.SectionIndex)
}

// OnClickNext forwards to the slide player.
func (n *NavigationController) OnClickNext() {
	if n.state.Screen == ScreenGame {
		n.slides.OnNext()
	}
}

// OnClickPrev forwards to the slide player.
func (n *NavigationController) OnClickPrev() {
	if n.state.Screen == ScreenGame {
		n.slides.OnPrev()
	}
}

// OnClickRoll forwards to the practice flow.
func (n *NavigationController) OnClickRoll() {
	n.practice.OnClickRoll()
}

// Update ticks the practice flow. Called once per host frame.
func (n *NavigationController) Update(dt float64) {
	if n.state.Screen == ScreenPractice {
		n.practice.Update(dt)
	}
}
