package tutorial

import (
	"errors"
	"testing"

	"github.com/decker502/catan/pkg/content"
)

// TestStartScenarioShowsFirstStep verifies step 0 is on screen with Prev hidden.
func TestStartScenarioShowsFirstStep(t *testing.T) {
	p := newFakePresenter()
	sp := NewSlidePlayer(p)
	sc := newTestScenario("basics", 4)

	if err := sp.StartScenario(sc); err != nil {
		t.Fatalf("StartScenario() failed: %v", err)
	}

	if sp.StepIndex() != 0 {
		t.Errorf("Expected step index 0, got %d", sp.StepIndex())
	}
	if got := p.texts[FieldHeader]; got != "basics" {
		t.Errorf("Expected header %q, got %q", "basics", got)
	}
	if got := p.texts[FieldMessage]; got != sc.Steps[0].Text {
		t.Errorf("Expected message %q, got %q", sc.Steps[0].Text, got)
	}
	if got := p.texts[FieldSpeaker]; got != "Guide" {
		t.Errorf("Expected speaker Guide, got %q", got)
	}
	if got := p.images[FieldBackground]; got != "IMAGE_BG_0" {
		t.Errorf("Expected background IMAGE_BG_0, got %q", got)
	}
	if got := p.images[FieldCenterImage]; got != "IMAGE_CENTER_0" {
		t.Errorf("Expected center IMAGE_CENTER_0, got %q", got)
	}
	if p.visible[PanelPrevButton] {
		t.Error("Prev button should be hidden on the first step")
	}
	if len(p.audio) != 1 || p.audio[0] != "SOUND_VOICE_0" {
		t.Errorf("Expected voice clip to play once, got %v", p.audio)
	}
}

// TestStartScenarioNullKeepsState verifies a nil scenario is rejected
// without touching playback or the screen.
func TestStartScenarioNullKeepsState(t *testing.T) {
	p := newFakePresenter()
	sp := NewSlidePlayer(p)
	sc := newTestScenario("basics", 3)
	_ = sp.StartScenario(sc)
	sp.OnNext()

	callsBefore := p.calls
	err := sp.StartScenario(nil)

	if !errors.Is(err, content.ErrNullContent) {
		t.Fatalf("Expected ErrNullContent, got %v", err)
	}
	if sp.Scenario() != sc {
		t.Error("Active scenario changed after null StartScenario")
	}
	if sp.StepIndex() != 1 {
		t.Errorf("Expected step index 1, got %d", sp.StepIndex())
	}
	if p.calls != callsBefore {
		t.Errorf("Expected no presenter calls, got %d", p.calls-callsBefore)
	}
}

// TestOnNextWalksSteps verifies the index after i Next calls and the Prev
// control visibility at every position.
func TestOnNextWalksSteps(t *testing.T) {
	const steps = 5
	for i := 0; i <= steps-1; i++ {
		p := newFakePresenter()
		sp := NewSlidePlayer(p)
		sc := newTestScenario("walk", steps)
		_ = sp.StartScenario(sc)

		for n := 0; n < i; n++ {
			sp.OnNext()
		}

		if sp.StepIndex() != i {
			t.Errorf("After %d Next calls: expected index %d, got %d", i, i, sp.StepIndex())
		}
		if got := p.texts[FieldMessage]; got != sc.Steps[i].Text {
			t.Errorf("After %d Next calls: expected message %q, got %q", i, sc.Steps[i].Text, got)
		}
		if p.visible[PanelPrevButton] != (i > 0) {
			t.Errorf("After %d Next calls: Prev visible = %v, want %v", i, p.visible[PanelPrevButton], i > 0)
		}
	}
}

// TestOnPrevAtFirstStepIsNoop verifies Prev on step 0 changes nothing.
func TestOnPrevAtFirstStepIsNoop(t *testing.T) {
	p := newFakePresenter()
	sp := NewSlidePlayer(p)
	_ = sp.StartScenario(newTestScenario("prev", 3))

	callsBefore := p.calls
	sp.OnPrev()

	if sp.StepIndex() != 0 {
		t.Errorf("Expected index 0, got %d", sp.StepIndex())
	}
	if p.calls != callsBefore {
		t.Errorf("Expected no presenter calls, got %d", p.calls-callsBefore)
	}
}

func TestOnPrevGoesBack(t *testing.T) {
	p := newFakePresenter()
	sp := NewSlidePlayer(p)
	sc := newTestScenario("prev", 3)
	_ = sp.StartScenario(sc)
	sp.OnNext()
	sp.OnNext()

	sp.OnPrev()

	if sp.StepIndex() != 1 {
		t.Fatalf("Expected index 1, got %d", sp.StepIndex())
	}
	if got := p.texts[FieldMessage]; got != sc.Steps[1].Text {
		t.Errorf("Expected message %q, got %q", sc.Steps[1].Text, got)
	}
	if !p.visible[PanelPrevButton] {
		t.Error("Prev button should be visible on step 1")
	}
}

// TestOnNextAtLastStepCompletes verifies Next on the last step keeps the
// index and emits exactly one completion per call.
func TestOnNextAtLastStepCompletes(t *testing.T) {
	p := newFakePresenter()
	sp := NewSlidePlayer(p)
	sc := newTestScenario("end", 2)

	completions := 0
	sp.SetOnComplete(func(got *content.Scenario) {
		if got != sc {
			t.Errorf("Completion reported wrong scenario %q", got.Title)
		}
		completions++
	})

	_ = sp.StartScenario(sc)
	sp.OnNext() // step 1, the last one
	if completions != 0 {
		t.Fatalf("Completion fired early")
	}

	sp.OnNext()
	if sp.StepIndex() != 1 {
		t.Errorf("Expected index to stay at 1, got %d", sp.StepIndex())
	}
	if completions != 1 {
		t.Errorf("Expected 1 completion, got %d", completions)
	}

	sp.OnNext()
	if completions != 2 {
		t.Errorf("Expected one completion per call, got %d after two calls", completions)
	}
}

// TestRenderStepStickyImages verifies steps without images keep the
// previous ones.
func TestRenderStepStickyImages(t *testing.T) {
	p := newFakePresenter()
	sp := NewSlidePlayer(p)
	_ = sp.StartScenario(newTestScenario("sticky", 3))

	sp.OnNext() // step 1: no background, no center

	if got := p.images[FieldBackground]; got != "IMAGE_BG_0" {
		t.Errorf("Expected background to stay IMAGE_BG_0, got %q", got)
	}
	if got := p.images[FieldCenterImage]; got != "IMAGE_CENTER_0" {
		t.Errorf("Expected center to stay IMAGE_CENTER_0, got %q", got)
	}
	if p.imageSet[FieldBackground] != 1 {
		t.Errorf("Expected background set once, got %d", p.imageSet[FieldBackground])
	}

	sp.OnNext() // step 2: new background
	if got := p.images[FieldBackground]; got != "IMAGE_BG_2" {
		t.Errorf("Expected background IMAGE_BG_2, got %q", got)
	}
}

func TestRenderStepEmptyScenario(t *testing.T) {
	p := newFakePresenter()
	sp := NewSlidePlayer(p)

	if err := sp.StartScenario(&content.Scenario{Title: "empty"}); err != nil {
		t.Fatalf("StartScenario() failed: %v", err)
	}

	if _, ok := p.texts[FieldMessage]; ok {
		t.Error("Expected no message for a scenario without steps")
	}
	if sp.CurrentStep() != nil {
		t.Error("Expected CurrentStep() to be nil")
	}

	// must not panic
	sp.OnPrev()
	sp.RenderStep()
}

func TestNavigationBeforeStartIsNoop(t *testing.T) {
	p := newFakePresenter()
	sp := NewSlidePlayer(p)

	sp.OnNext()
	sp.OnPrev()

	if p.calls != 0 {
		t.Errorf("Expected no presenter calls, got %d", p.calls)
	}
}

func TestRenderStepPlaysSfx(t *testing.T) {
	p := newFakePresenter()
	sp := NewSlidePlayer(p)
	sc := &content.Scenario{Title: "sfx", Steps: []content.Step{
		{Text: "a"},
		{Text: "b", Sfx: "SOUND_PAGE", Voice: "SOUND_VOICE_B"},
	}}
	_ = sp.StartScenario(sc)
	if len(p.audio) != 0 {
		t.Fatalf("Expected no audio on step 0, got %v", p.audio)
	}

	sp.OnNext()

	want := []string{"SOUND_VOICE_B", "SOUND_PAGE"}
	if len(p.audio) != len(want) {
		t.Fatalf("Expected audio %v, got %v", want, p.audio)
	}
	for i := range want {
		if p.audio[i] != want[i] {
			t.Errorf("audio[%d] = %q, want %q", i, p.audio[i], want[i])
		}
	}
}
