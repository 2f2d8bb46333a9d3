package tutorial

import (
	"fmt"

	"github.com/decker502/catan/pkg/content"
)

// sectionButton is the recorded state of one section slot.
type sectionButton struct {
	label   string
	visible bool
	onClick func()
}

// fakePresenter records everything the core asks the UI to do.
type fakePresenter struct {
	visible  map[Panel]bool
	shown    map[Panel]int // number of SetPanelVisible(p, true) calls
	texts    map[Field]string
	images   map[Field]string
	imageSet map[Field]int
	sections map[int]sectionButton
	audio    []string
	stops    int
	calls    int
}

func newFakePresenter() *fakePresenter {
	return &fakePresenter{
		visible:  make(map[Panel]bool),
		shown:    make(map[Panel]int),
		texts:    make(map[Field]string),
		images:   make(map[Field]string),
		imageSet: make(map[Field]int),
		sections: make(map[int]sectionButton),
	}
}

func (f *fakePresenter) SetPanelVisible(p Panel, v bool) {
	f.calls++
	f.visible[p] = v
	if v {
		f.shown[p]++
	}
}

func (f *fakePresenter) SetText(field Field, text string) {
	f.calls++
	f.texts[field] = text
}

func (f *fakePresenter) SetImage(field Field, id string) {
	f.calls++
	f.images[field] = id
	f.imageSet[field]++
}

func (f *fakePresenter) PlayAudio(id string) {
	f.calls++
	f.audio = append(f.audio, id)
}

func (f *fakePresenter) StopAudio() {
	f.calls++
	f.stops++
}

func (f *fakePresenter) BindSectionButton(slot int, label string, onClick func()) {
	f.calls++
	f.sections[slot] = sectionButton{label: label, visible: true, onClick: onClick}
}

func (f *fakePresenter) HideSectionButton(slot int) {
	f.calls++
	b := f.sections[slot]
	b.visible = false
	f.sections[slot] = b
}

// visibleScreens returns the top-level panels currently visible.
func (f *fakePresenter) visibleScreens() []Panel {
	var out []Panel
	for _, p := range screenPanels {
		if f.visible[p] {
			out = append(out, p)
		}
	}
	return out
}

// newTestScenario builds a scenario with n steps. Even steps carry a
// background, step 0 carries a center image and a voice clip.
func newTestScenario(title string, n int) *content.Scenario {
	sc := &content.Scenario{Title: title}
	for i := 0; i < n; i++ {
		step := content.Step{
			Speaker: "Guide",
			Text:    fmt.Sprintf("%s step %d", title, i),
		}
		if i%2 == 0 {
			step.Background = fmt.Sprintf("IMAGE_BG_%d", i)
		}
		if i == 0 {
			step.Center = "IMAGE_CENTER_0"
			step.Voice = "SOUND_VOICE_0"
		}
		sc.Steps = append(sc.Steps, step)
	}
	return sc
}

// newTestLibrary builds: chapter 0 intro (no scenarios), chapter 1 with two
// scenarios, chapter 2 with three scenarios where the last one is null.
func newTestLibrary() *content.Library {
	return &content.Library{
		Chapters: []*content.Chapter{
			{Name: "Introduction"},
			{Name: "Chapter 1", Scenarios: []*content.Scenario{
				newTestScenario("1-1", 3),
				newTestScenario("1-2", 2),
			}},
			{Name: "Chapter 2", Scenarios: []*content.Scenario{
				newTestScenario("2-1", 4),
				newTestScenario("2-2", 1),
				nil,
			}},
		},
	}
}

// fakeSubscription counts cancellations.
type fakeSubscription struct {
	cancelled int
}

func (s *fakeSubscription) Cancel() { s.cancelled++ }

// fakeVideoPlayer captures callbacks so tests decide when the clip
// becomes ready or finishes. Callbacks of a cancelled subscription are
// dropped, as a real player must.
type fakeVideoPlayer struct {
	onReady    func()
	onFinished func()
	sub        *fakeSubscription
	prepares   int
	plays      int
	stops      int
}

func (p *fakeVideoPlayer) Prepare(onReady, onFinished func()) Subscription {
	p.prepares++
	p.onReady = onReady
	p.onFinished = onFinished
	p.sub = &fakeSubscription{}
	return p.sub
}

func (p *fakeVideoPlayer) Play() { p.plays++ }
func (p *fakeVideoPlayer) Stop() { p.stops++ }

func (p *fakeVideoPlayer) ready() {
	if p.sub != nil && p.sub.cancelled == 0 && p.onReady != nil {
		p.onReady()
	}
}

func (p *fakeVideoPlayer) finish() {
	if p.sub != nil && p.sub.cancelled == 0 && p.onFinished != nil {
		p.onFinished()
	}
}
