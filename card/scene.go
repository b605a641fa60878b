package card

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/simukka/valentine/common"
	"github.com/simukka/valentine/config"
	"github.com/simukka/valentine/dom"
)

// SceneState is the section currently on screen.
type SceneState int

const (
	Question1 SceneState = iota + 1
	Question2
	Question3
	Celebration
)

var sceneNames = map[SceneState]string{
	Question1:   "question1",
	Question2:   "question2",
	Question3:   "question3",
	Celebration: "celebration",
}

func (s SceneState) String() string {
	if name, ok := sceneNames[s]; ok {
		return name
	}
	return "unknown"
}

func sectionID(n int) string {
	return "question" + strconv.Itoa(n)
}

// Scene moves between the question sections and the celebration.
type Scene struct {
	cfg   *config.Config
	b     *Bindings
	rng   common.Source
	log   *zap.SugaredLogger
	state SceneState
}

// NewScene starts on the first question, which the page shows initially.
func NewScene(cfg *config.Config, b *Bindings, rng common.Source, log *zap.SugaredLogger) *Scene {
	return &Scene{cfg: cfg, b: b, rng: rng, log: log, state: Question1}
}

// State returns the current section.
func (s *Scene) State() SceneState {
	return s.state
}

func (s *Scene) hideQuestions() {
	for _, section := range s.b.QuestionSections() {
		section.AddClass(dom.ClassHidden)
	}
}

// ShowQuestion hides every question section and reveals question n. An
// unknown n leaves all sections hidden. After the celebration it does
// nothing.
func (s *Scene) ShowQuestion(n int) {
	if s.state == Celebration {
		return
	}
	s.hideQuestions()
	section, ok := s.b.Section(sectionID(n))
	if !ok {
		s.log.Debugw("No section for question", "question", n)
		return
	}
	section.RemoveClass(dom.ClassHidden)
	s.state = SceneState(n)
	s.log.Debugw("Showing question", "question", n)
}

// MoveEvasiveButton jumps button to a random spot where it still fits
// entirely inside the viewport.
func (s *Scene) MoveEvasiveButton(button dom.Element) {
	if button == nil {
		return
	}
	vw, vh := s.b.Document().Viewport()
	bw, bh := button.Size()
	x := common.RandomFloat(s.rng, 0, vw-bw)
	y := common.RandomFloat(s.rng, 0, vh-bh)

	button.SetStyle("position", "fixed")
	button.SetStyle("left", formatFloat(x)+"px")
	button.SetStyle("top", formatFloat(y)+"px")
}

// Celebrate switches to the celebration section, fills in its texts and
// sets off the heart explosion. Calling it again keeps the same sections
// visible and adds another explosion.
func (s *Scene) Celebrate() {
	s.hideQuestions()
	if section, ok := s.b.Get(TargetCelebration); ok {
		section.RemoveClass(dom.ClassHidden)
	}
	s.state = Celebration

	c := s.cfg.ResolvedCelebration()
	if el, ok := s.b.Get(TargetCelebrationTitle); ok {
		el.SetText(c.Title)
	}
	if el, ok := s.b.Get(TargetCelebrationMessage); ok {
		el.SetText(c.Message)
	}
	if el, ok := s.b.Get(TargetCelebrationEmojis); ok {
		el.SetText(c.Emojis)
	}

	n := HeartExplosion(s.cfg, s.b, s.rng)
	s.log.Infow("Celebrating", "hearts", n)
}
