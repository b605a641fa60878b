//go:build js
// +build js

package main

import (
	"strings"

	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/valentine/card"
	"github.com/simukka/valentine/common"
	"github.com/simukka/valentine/config"
	"github.com/simukka/valentine/dom"
	"github.com/simukka/valentine/logging"
)

func main() {
	debug := strings.Contains(js.Global.Get("location").Get("search").String(), "debug")
	log := logging.NewBrowser(debug)

	cfg, err := config.Embedded()
	if err != nil {
		log.Errorw("Could not read card configuration, using defaults", "error", err)
		cfg = config.Default()
	}

	var c *card.Card
	start := func() {
		c = card.New(cfg, dom.Browser(), common.NewClockRNG(), log)
		c.Start()
	}

	// Inline handlers in the markup call these before or after startup;
	// calls that arrive before DOMContentLoaded are dropped.
	js.Global.Set("showNextQuestion", func(n int) {
		if c != nil {
			c.ShowQuestion(n)
		}
	})
	js.Global.Set("moveButton", func(button *js.Object) {
		if c != nil {
			c.MoveButton(dom.Wrap(button))
		}
	})
	js.Global.Set("celebrate", func() {
		if c != nil {
			c.Celebrate()
		}
	})

	if js.Global.Get("document").Get("readyState").String() == "loading" {
		js.Global.Call("addEventListener", "DOMContentLoaded", start)
	} else {
		start()
	}
}
