package config

import (
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2/unstable"
	"gopkg.in/yaml.v3"
)

// Number is a numeric setting as the author wrote it. A value that is not
// a number still decodes: it is kept verbatim and reported as not numeric,
// so one odd knob does not cost the rest of the card.
type Number struct {
	value   float64
	raw     string
	numeric bool
	set     bool
}

// NumberOf returns a Number holding v.
func NumberOf(v float64) Number {
	return Number{value: v, numeric: true, set: true}
}

// Float returns the value and whether the setting is a number.
func (n Number) Float() (float64, bool) {
	return n.value, n.numeric
}

// IsSet reports whether the setting appears in the card at all.
func (n Number) IsSet() bool {
	return n.set
}

func (n Number) String() string {
	switch {
	case !n.set:
		return ""
	case n.numeric:
		return strconv.FormatFloat(n.value, 'f', -1, 64)
	default:
		return n.raw
	}
}

// UnmarshalYAML accepts any node. Only plain !!int and !!float scalars are
// numbers; quoted strings stay text even when they look numeric.
func (n *Number) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		*n = Number{}
		return nil
	}
	*n = Number{raw: node.Value, set: true}
	if node.Kind != yaml.ScalarNode {
		return nil
	}
	switch node.ShortTag() {
	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err == nil {
			n.value, n.numeric, n.raw = f, true, ""
		}
	}
	return nil
}

// UnmarshalTOML accepts any single value. Integers and floats are numbers.
func (n *Number) UnmarshalTOML(node *unstable.Node) error {
	*n = Number{raw: string(node.Data), set: true}
	text := strings.ReplaceAll(string(node.Data), "_", "")
	switch node.Kind {
	case unstable.Integer:
		i, err := strconv.ParseInt(text, 0, 64)
		if err == nil {
			n.value, n.numeric, n.raw = float64(i), true, ""
		}
	case unstable.Float:
		f, err := strconv.ParseFloat(text, 64)
		if err == nil {
			n.value, n.numeric, n.raw = f, true, ""
		}
	}
	return nil
}
