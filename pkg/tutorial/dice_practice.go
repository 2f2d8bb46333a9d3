package tutorial

import (
	"fmt"
	"log"
	"math"
	"math/rand/v2"
)

const (
	// DiceRollDuration is how long the faces keep flickering (seconds).
	DiceRollDuration = 1.5
	// DiceTickInterval is the time between two random faces (seconds).
	DiceTickInterval = 0.1
	// DiceResultHold is how long the result stays up before completion (seconds).
	DiceResultHold = 2.0

	// The roll is scripted: the player always ends on 5 + 6 and becomes the
	// start player.
	RiggedDie1 = 5
	RiggedDie2 = 6
)

// diceTickCount is the number of random face changes in one roll.
var diceTickCount = int(math.Round(DiceRollDuration / DiceTickInterval))

const (
	diceGuideText   = "Practice 1: Turn order\nIn Catan everyone rolls the dice first,\nand the highest roll becomes the start player.\n\nPress \"Roll\"."
	diceRollingText = "Rolling the dice..."
	diceResultText  = "You rolled %d!\nThat is the highest number.\nYou are the first player."
)

// Practice sections of chapter 1.
const (
	PracticeSectionDice       = 0
	PracticeSectionSettlement = 1
)

// PracticePhase is the dice flow's position in its sequence.
type PracticePhase int

const (
	// PracticeIdle nothing running (initial state, after Stop, or a placeholder section)
	PracticeIdle PracticePhase = iota
	// PracticeAwaitingInput roll control shown, waiting for OnClickRoll
	PracticeAwaitingInput
	// PracticeAnimating random faces flicker every DiceTickInterval
	PracticeAnimating
	// PracticeShowingResult rigged faces and result text shown for DiceResultHold
	PracticeShowingResult
	// PracticeDone practice complete
	PracticeDone
)

// String returns the phase name.
func (p PracticePhase) String() string {
	switch p {
	case PracticeIdle:
		return "Idle"
	case PracticeAwaitingInput:
		return "AwaitingInput"
	case PracticeAnimating:
		return "Animating"
	case PracticeShowingResult:
		return "ShowingResult"
	case PracticeDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// DieFaceImageID returns the image resource ID for a die face in [1,6].
func DieFaceImageID(face int) string {
	return fmt.Sprintf("IMAGE_DIE_%d", face)
}

// DicePracticeFlow is the "roll for turn order" exercise of chapter 1.
//
// The flow never blocks: the host loop calls Update every frame and the
// flow advances at most one step per call, so each face change is drawn
// before the next one is computed.
type DicePracticeFlow struct {
	presenter Presenter
	rollDie   func() int

	phase     PracticePhase
	isRolling bool
	elapsed   float64 // animation time consumed so far
	wait      float64 // time left until the next step
	ticks     int
	faces     [2]int

	onComplete func()
}

// NewDicePracticeFlow creates an idle flow. rng may be nil, in which case
// the global math/rand/v2 source is used.
func NewDicePracticeFlow(p Presenter, rng *rand.Rand) *DicePracticeFlow {
	roll := func() int { return rand.IntN(6) + 1 }
	if rng != nil {
		roll = func() int { return rng.IntN(6) + 1 }
	}
	return &DicePracticeFlow{
		presenter: p,
		rollDie:   roll,
	}
}

// SetOnComplete registers the practice-complete callback.
func (f *DicePracticeFlow) SetOnComplete(fn func()) {
	f.onComplete = fn
}

// Phase returns the current phase.
func (f *DicePracticeFlow) Phase() PracticePhase { return f.phase }

// IsRolling reports whether the roll control has been pressed.
func (f *DicePracticeFlow) IsRolling() bool { return f.isRolling }

// Elapsed returns the animation time consumed so far.
func (f *DicePracticeFlow) Elapsed() float64 { return f.elapsed }

// Faces returns the faces currently on screen (0 before the first tick).
func (f *DicePracticeFlow) Faces() (int, int) { return f.faces[0], f.faces[1] }

// StartPractice hides both practice containers and starts the sub-flow for
// sectionIndex. Section 1 (settlement placement) is not built yet and is a
// deliberate no-op, as is any unknown section.
func (f *DicePracticeFlow) StartPractice(sectionIndex int) {
	f.Stop()

	f.presenter.SetPanelVisible(PanelDiceContainer, false)
	f.presenter.SetPanelVisible(PanelBoardContainer, false)
	f.presenter.SetPanelVisible(PanelRollButton, false)
	f.presenter.SetText(FieldGuide, "")

	switch sectionIndex {
	case PracticeSectionDice:
		f.startDice()
	case PracticeSectionSettlement:
		log.Printf("[DicePracticeFlow] Settlement practice is not available yet")
	default:
		log.Printf("[DicePracticeFlow] No practice for section %d", sectionIndex)
	}
}

func (f *DicePracticeFlow) startDice() {
	f.presenter.SetPanelVisible(PanelDiceContainer, true)
	f.presenter.SetText(FieldGuide, diceGuideText)
	f.presenter.SetPanelVisible(PanelRollButton, true)

	f.phase = PracticeAwaitingInput
	log.Printf("[DicePracticeFlow] Waiting for roll")
}

// OnClickRoll marks the roll as requested. Calling it again is harmless.
func (f *DicePracticeFlow) OnClickRoll() {
	f.isRolling = true
}

// Stop abandons whatever is running. The screen owning the flow calls it
// when it is torn down; there is no other way to cancel a pending roll.
func (f *DicePracticeFlow) Stop() {
	if f.phase != PracticeIdle && f.phase != PracticeDone {
		log.Printf("[DicePracticeFlow] Stopped in phase %s", f.phase)
	}
	f.phase = PracticeIdle
	f.isRolling = false
	f.elapsed = 0
	f.wait = 0
	f.ticks = 0
}

// Update advances the flow by dt seconds of host time.
func (f *DicePracticeFlow) Update(dt float64) {
	switch f.phase {
	case PracticeAwaitingInput:
		if f.isRolling {
			f.beginRoll()
		}

	case PracticeAnimating:
		f.wait -= dt
		if f.wait > 0 {
			return
		}
		if f.ticks < diceTickCount {
			f.tick()
			f.wait += DiceTickInterval
			return
		}
		f.showResult()

	case PracticeShowingResult:
		f.wait -= dt
		if f.wait <= 0 {
			f.finish()
		}
	}
}

func (f *DicePracticeFlow) beginRoll() {
	f.presenter.SetPanelVisible(PanelRollButton, false)
	f.presenter.SetText(FieldGuide, diceRollingText)

	f.phase = PracticeAnimating
	f.elapsed = 0
	f.ticks = 0

	// the first face change happens on the same frame as the click
	f.tick()
	f.wait = DiceTickInterval
}

func (f *DicePracticeFlow) tick() {
	f.setFaces(f.rollDie(), f.rollDie())
	f.ticks++
	f.elapsed += DiceTickInterval
}

func (f *DicePracticeFlow) showResult() {
	f.setFaces(RiggedDie1, RiggedDie2)
	f.presenter.SetText(FieldGuide, fmt.Sprintf(diceResultText, RiggedDie1+RiggedDie2))

	f.phase = PracticeShowingResult
	f.wait = DiceResultHold
	log.Printf("[DicePracticeFlow] Result shown: %d + %d", RiggedDie1, RiggedDie2)
}

func (f *DicePracticeFlow) finish() {
	f.phase = PracticeDone
	f.isRolling = false
	log.Printf("[DicePracticeFlow] Practice 1 clear")
	if f.onComplete != nil {
		f.onComplete()
	}
}

func (f *DicePracticeFlow) setFaces(a, b int) {
	f.faces = [2]int{a, b}
	f.presenter.SetImage(FieldDie1, DieFaceImageID(a))
	f.presenter.SetImage(FieldDie2, DieFaceImageID(b))
}
