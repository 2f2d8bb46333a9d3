// Package tutorial holds the state machines behind the Catan tutorial:
// screen navigation, slide playback, the dice practice flow and the intro
// clip hand-off.
//
// Nothing in this package draws. Every visible change goes through the
// Presenter interface, which the ui package implements on top of ebitenui
// and the tests implement with a recording fake.
package tutorial

// Panel identifies a toggleable part of the UI.
type Panel int

const (
	PanelTitle Panel = iota
	PanelChapterSelect
	PanelSectionSelect
	PanelGame
	PanelGameMenu
	PanelPractice
	PanelVideo

	// controls and containers inside the panels above
	PanelPrevButton
	PanelPracticeButton
	PanelDiceContainer
	PanelBoardContainer
	PanelRollButton
)

// String returns the panel name used in log lines.
func (p Panel) String() string {
	switch p {
	case PanelTitle:
		return "Title"
	case PanelChapterSelect:
		return "ChapterSelect"
	case PanelSectionSelect:
		return "SectionSelect"
	case PanelGame:
		return "Game"
	case PanelGameMenu:
		return "GameMenu"
	case PanelPractice:
		return "Practice"
	case PanelVideo:
		return "Video"
	case PanelPrevButton:
		return "PrevButton"
	case PanelPracticeButton:
		return "PracticeButton"
	case PanelDiceContainer:
		return "DiceContainer"
	case PanelBoardContainer:
		return "BoardContainer"
	case PanelRollButton:
		return "RollButton"
	default:
		return "Unknown"
	}
}

// screenPanels are the top-level panels; exactly one of them is visible
// after any screen transition.
var screenPanels = []Panel{
	PanelTitle,
	PanelChapterSelect,
	PanelSectionSelect,
	PanelGame,
	PanelPractice,
	PanelVideo,
}

// Field identifies a text or image slot.
type Field int

const (
	FieldSectionTitle Field = iota // chapter name on the section select screen
	FieldHeader                    // scenario title above the slides
	FieldSpeaker
	FieldMessage
	FieldBackground
	FieldCenterImage
	FieldGuide // practice instructions
	FieldDie1
	FieldDie2
	FieldVideoFrame
)

// Presenter is the rendering side of the tutorial.
// All calls happen on the game loop goroutine.
type Presenter interface {
	SetPanelVisible(panel Panel, visible bool)
	SetText(field Field, text string)
	SetImage(field Field, imageID string)

	// PlayAudio plays a one-shot clip by sound resource ID.
	PlayAudio(soundID string)
	// StopAudio stops every clip started with PlayAudio.
	StopAudio()

	// BindSectionButton shows section slot `slot` labelled `label`;
	// clicking it calls onClick.
	BindSectionButton(slot int, label string, onClick func())
	HideSectionButton(slot int)
}
