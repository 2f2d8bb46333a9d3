package tutorial

import (
	"fmt"
	"log"

	"github.com/decker502/catan/pkg/content"
)

// SlidePlayer plays a scenario one step at a time.
//
// State machine:
//
//	idle --StartScenario--> playing --OnNext at last step--> playing (completion emitted)
//
// While playing, 0 <= stepIndex < len(steps) always holds and every
// navigation call moves the index by exactly one.
type SlidePlayer struct {
	presenter Presenter

	scenario  *content.Scenario
	stepIndex int

	// onComplete fires each time Next is pressed on the last step.
	// Screen changes after completion are left to the caller.
	onComplete func(*content.Scenario)
}

// NewSlidePlayer creates an idle player.
func NewSlidePlayer(p Presenter) *SlidePlayer {
	return &SlidePlayer{presenter: p}
}

// SetOnComplete registers the scenario completion callback.
func (sp *SlidePlayer) SetOnComplete(fn func(*content.Scenario)) {
	sp.onComplete = fn
}

// Scenario returns the active scenario, nil when idle.
func (sp *SlidePlayer) Scenario() *content.Scenario {
	return sp.scenario
}

// StepIndex returns the current 0-based step index.
func (sp *SlidePlayer) StepIndex() int {
	return sp.stepIndex
}

// CurrentStep returns the step on screen, or nil when there is none.
func (sp *SlidePlayer) CurrentStep() *content.Step {
	if sp.scenario.StepCount() == 0 {
		return nil
	}
	return &sp.scenario.Steps[sp.stepIndex]
}

// StartScenario resets playback to the first step of s.
//
// A nil scenario returns ErrNullContent and leaves the previous playback
// state, including what is on screen, unchanged.
func (sp *SlidePlayer) StartScenario(s *content.Scenario) error {
	if s == nil {
		log.Printf("[SlidePlayer] Error: received null scenario")
		return fmt.Errorf("start scenario: %w", content.ErrNullContent)
	}

	sp.scenario = s
	sp.stepIndex = 0

	sp.presenter.SetText(FieldHeader, s.Title)

	log.Printf("[SlidePlayer] Started scenario %q (%d steps)", s.Title, len(s.Steps))

	sp.RenderStep()
	return nil
}

// RenderStep publishes the current step.
//
// Background and center images are sticky: a step that does not supply one
// leaves the previous image on screen.
func (sp *SlidePlayer) RenderStep() {
	step := sp.CurrentStep()
	if step == nil {
		return
	}

	sp.presenter.SetText(FieldSpeaker, step.Speaker)
	sp.presenter.SetText(FieldMessage, step.Text)

	if step.Background != "" {
		sp.presenter.SetImage(FieldBackground, step.Background)
	}
	if step.Center != "" {
		sp.presenter.SetImage(FieldCenterImage, step.Center)
	}

	if step.Voice != "" {
		sp.presenter.PlayAudio(step.Voice)
	}
	if step.Sfx != "" {
		sp.presenter.PlayAudio(step.Sfx)
	}

	sp.presenter.SetPanelVisible(PanelPrevButton, sp.stepIndex > 0)
}

// OnNext advances one step. On the last step it emits one completion event
// and keeps the index where it is.
func (sp *SlidePlayer) OnNext() {
	if sp.scenario == nil {
		return
	}

	if sp.stepIndex >= len(sp.scenario.Steps)-1 {
		log.Printf("[SlidePlayer] Scenario %q finished", sp.scenario.Title)
		if sp.onComplete != nil {
			sp.onComplete(sp.scenario)
		}
		return
	}

	sp.stepIndex++
	sp.RenderStep()
}

// OnPrev goes back one step; no-op on the first step.
func (sp *SlidePlayer) OnPrev() {
	if sp.scenario == nil || sp.stepIndex <= 0 {
		return
	}
	sp.stepIndex--
	sp.RenderStep()
}

// reset drops the active scenario and blanks the slide texts.
func (sp *SlidePlayer) reset() {
	sp.scenario = nil
	sp.stepIndex = 0
	sp.presenter.SetText(FieldHeader, "")
	sp.presenter.SetText(FieldSpeaker, "")
	sp.presenter.SetText(FieldMessage, "")
	sp.presenter.SetPanelVisible(PanelPrevButton, false)
}
