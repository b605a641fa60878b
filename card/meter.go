package card

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/simukka/valentine/config"
	"github.com/simukka/valentine/dom"
)

// Love meter range. Values above MeterNormalMax are "extra love".
const (
	MeterMin       = 0
	MeterNormalMax = 100
	MeterMax       = 10000

	// Thresholds for the overflow captions.
	HighThreshold    = 1000 // exclusive
	ExtremeThreshold = 5000 // inclusive

	// OverflowViewportShare is how much of the viewport the bar may grow
	// past its track at MeterMax.
	OverflowViewportShare = 0.8
)

// Tier selects the overflow caption.
type Tier int

const (
	TierNone Tier = iota
	TierNormal
	TierHigh
	TierExtreme
)

func (t Tier) String() string {
	switch t {
	case TierNormal:
		return "normal"
	case TierHigh:
		return "high"
	case TierExtreme:
		return "extreme"
	default:
		return "none"
	}
}

// TierFor returns the caption tier for a meter value. Values within the
// normal range have no tier.
func TierFor(value int) Tier {
	switch {
	case value <= MeterNormalMax:
		return TierNone
	case value >= ExtremeThreshold:
		return TierExtreme
	case value > HighThreshold:
		return TierHigh
	default:
		return TierNormal
	}
}

// OverflowWidth is how many pixels the bar grows past 100% for value.
func OverflowWidth(value int, viewportWidth float64) float64 {
	if value <= MeterNormalMax {
		return 0
	}
	share := float64(value-MeterNormalMax) / float64(MeterMax-MeterNormalMax)
	return share * viewportWidth * OverflowViewportShare
}

// MeterWidth is the CSS width of the bar for value.
func MeterWidth(value int, viewportWidth float64) string {
	if value <= MeterNormalMax {
		return "100%"
	}
	return "calc(100% + " + formatFloat(OverflowWidth(value, viewportWidth)) + "px)"
}

var leadingInt = regexp.MustCompile(`^\s*[+-]?[0-9]+`)

// ParseMeterValue reads the integer prefix of a range input value; text
// without one reads as 0. Prefixes too large for an int clamp to the meter
// range.
func ParseMeterValue(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(leadingInt.FindString(s)))
	var numErr *strconv.NumError
	switch {
	case errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange):
		if n < 0 {
			return MeterMin
		}
		return MeterMax
	case err != nil:
		return 0
	}
	return n
}

// LoveMeter is the range input on the second question together with its
// value label and overflow caption.
type LoveMeter struct {
	b        *Bindings
	meter    dom.Element
	label    dom.Element
	extra    dom.Element
	messages config.LoveMessages
}

// NewLoveMeter binds the meter elements. Without the input or its label
// the widget is inert.
func NewLoveMeter(cfg *config.Config, b *Bindings) *LoveMeter {
	m := &LoveMeter{b: b, messages: cfg.ResolvedLoveMessages()}
	m.meter, _ = b.Get(TargetLoveMeter)
	m.label, _ = b.Get(TargetLoveValue)
	m.extra, _ = b.Get(TargetExtraLove)
	return m
}

// Ready reports whether the input and its label are on the page.
func (m *LoveMeter) Ready() bool {
	return m.meter != nil && m.label != nil
}

// Reset puts the meter back to 100 with no overflow.
func (m *LoveMeter) Reset() {
	if !m.Ready() {
		return
	}
	m.meter.SetValue(strconv.Itoa(MeterNormalMax))
	m.label.SetText(strconv.Itoa(MeterNormalMax))
	m.meter.SetStyle("width", "100%")
	if m.extra != nil {
		m.extra.AddClass(dom.ClassHidden)
		m.extra.RemoveClass(dom.ClassSuperLove)
	}
}

// Attach resets the meter and follows its input events.
func (m *LoveMeter) Attach() {
	if !m.Ready() {
		return
	}
	m.Reset()
	m.meter.On("input", func() {
		m.Update(ParseMeterValue(m.meter.Value()))
	})
}

// Update redraws the widget for value.
func (m *LoveMeter) Update(value int) {
	if !m.Ready() {
		return
	}
	m.label.SetText(strconv.Itoa(value))

	vw, _ := m.b.Document().Viewport()
	tier := TierFor(value)
	if tier == TierNone {
		if m.extra != nil {
			m.extra.AddClass(dom.ClassHidden)
			m.extra.RemoveClass(dom.ClassSuperLove)
		}
		m.meter.SetStyle("width", "100%")
		return
	}

	m.meter.SetStyle("width", MeterWidth(value, vw))
	m.meter.SetStyle("transition", "width 0.3s")
	if m.extra == nil {
		return
	}
	m.extra.RemoveClass(dom.ClassHidden)
	switch tier {
	case TierExtreme:
		m.extra.AddClass(dom.ClassSuperLove)
		m.extra.SetText(m.messages.Extreme)
	case TierHigh:
		m.extra.RemoveClass(dom.ClassSuperLove)
		m.extra.SetText(m.messages.High)
	default:
		m.extra.RemoveClass(dom.ClassSuperLove)
		m.extra.SetText(m.messages.Normal)
	}
}
