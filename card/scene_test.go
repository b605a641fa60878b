package card

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simukka/valentine/common"
	"github.com/simukka/valentine/config"
	"github.com/simukka/valentine/dom/domtest"
	"github.com/simukka/valentine/logging"
)

func newScene(cfg *config.Config, doc *domtest.Document) *Scene {
	return NewScene(cfg, Bind(doc), common.NewSeededRNG(1), logging.Nop())
}

func visibleQuestions(doc *domtest.Document) []string {
	var ids []string
	for _, n := range []int{1, 2, 3} {
		if el := doc.Get("question" + strconv.Itoa(n)); el != nil && !el.Hidden() {
			ids = append(ids, el.ID)
		}
	}
	return ids
}

func TestShowQuestion_OnlyOneVisible(t *testing.T) {
	doc := domtest.CardPage()
	s := newScene(config.Default(), doc)
	require.Equal(t, Question1, s.State())

	s.ShowQuestion(2)
	assert.Equal(t, []string{"question2"}, visibleQuestions(doc))
	assert.Equal(t, Question2, s.State())

	s.ShowQuestion(3)
	assert.Equal(t, []string{"question3"}, visibleQuestions(doc))
	assert.Equal(t, Question3, s.State())
}

func TestShowQuestion_UnknownHidesEverything(t *testing.T) {
	doc := domtest.CardPage()
	s := newScene(config.Default(), doc)

	assert.NotPanics(t, func() { s.ShowQuestion(7) })
	assert.Empty(t, visibleQuestions(doc))
	assert.Equal(t, Question1, s.State())

	assert.NotPanics(t, func() { s.ShowQuestion(7) })
	assert.Empty(t, visibleQuestions(doc))
}

func TestShowQuestion_AfterCelebrationIsIgnored(t *testing.T) {
	doc := domtest.CardPage()
	s := newScene(config.Default(), doc)
	s.Celebrate()

	s.ShowQuestion(1)

	assert.Empty(t, visibleQuestions(doc))
	assert.Equal(t, Celebration, s.State())
	assert.False(t, doc.Get(TargetCelebration).Hidden())
}

func TestCelebrate_Idempotent(t *testing.T) {
	doc := domtest.CardPage()
	s := newScene(config.Default(), doc)
	s.ShowQuestion(3)

	s.Celebrate()
	s.Celebrate()

	assert.Empty(t, visibleQuestions(doc))
	visible := 0
	for _, el := range doc.ByClass("celebration") {
		if !el.(*domtest.Element).Hidden() {
			visible++
		}
	}
	assert.Equal(t, 1, visible)
	assert.Len(t, doc.FloatingContainer().Children, 2*ExplosionHearts)
}

func TestCelebrate_BindsTexts(t *testing.T) {
	doc := domtest.CardPage()
	cfg := config.Default()
	cfg.Celebration.Message = "See you Friday"
	s := newScene(cfg, doc)

	s.Celebrate()

	assert.Equal(t, cfg.Celebration.Title, doc.Get(TargetCelebrationTitle).Text())
	assert.Equal(t, "See you Friday", doc.Get(TargetCelebrationMessage).Text())
	assert.Equal(t, cfg.Celebration.Emojis, doc.Get(TargetCelebrationEmojis).Text())
}

func TestCelebrate_Fallbacks(t *testing.T) {
	doc := domtest.CardPage()
	doc.Get(TargetCelebrationMessage).SetText("stale")
	s := newScene(&config.Config{}, doc)

	s.Celebrate()

	assert.Equal(t, "Yay!", doc.Get(TargetCelebrationTitle).Text())
	assert.Equal(t, "", doc.Get(TargetCelebrationMessage).Text())
	assert.Equal(t, "💖", doc.Get(TargetCelebrationEmojis).Text())
	for _, heart := range doc.FloatingContainer().Children {
		assert.Equal(t, "❤️", heart.Text())
	}
}

func TestCelebrate_StrippedPage(t *testing.T) {
	doc := domtest.NewDocument()
	s := newScene(config.Default(), doc)

	assert.NotPanics(t, s.Celebrate)
	assert.Equal(t, Celebration, s.State())
}

func TestMoveEvasiveButton_StaysInViewport(t *testing.T) {
	doc := domtest.CardPage()
	s := newScene(config.Default(), doc)
	button := doc.Get(TargetNoBtn1)
	button.Width, button.Height = 80, 40

	for i := 0; i < 500; i++ {
		s.MoveEvasiveButton(button)

		require.Equal(t, "fixed", button.Style("position"))
		x := pixels(t, button.Style("left"))
		y := pixels(t, button.Style("top"))
		assert.GreaterOrEqual(t, x, 0.0)
		assert.Less(t, x, doc.Width-80)
		assert.GreaterOrEqual(t, y, 0.0)
		assert.Less(t, y, doc.Height-40)
	}
}

func TestMoveEvasiveButton_LargerThanViewport(t *testing.T) {
	doc := domtest.CardPage()
	doc.Width, doc.Height = 50, 50
	s := newScene(config.Default(), doc)
	button := doc.Get(TargetNoBtn3)
	button.Width, button.Height = 100, 100

	s.MoveEvasiveButton(button)

	assert.Equal(t, "0px", button.Style("left"))
	assert.Equal(t, "0px", button.Style("top"))
}

func TestMoveEvasiveButton_Nil(t *testing.T) {
	s := newScene(config.Default(), domtest.CardPage())
	assert.NotPanics(t, func() { s.MoveEvasiveButton(nil) })
}

func pixels(t *testing.T, v string) float64 {
	t.Helper()
	require.True(t, len(v) > 2 && v[len(v)-2:] == "px", "not a px value: %q", v)
	f, err := strconv.ParseFloat(v[:len(v)-2], 64)
	require.NoError(t, err)
	return f
}
