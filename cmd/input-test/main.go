// Command input-test is an interactive probe for the input pipeline.
// Each key press is shown as the decoder saw it, as a binding token,
// and as the action a sample registry resolves it to. Useful for
// checking what escape sequences a terminal emulator actually sends.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/termkit/input"
	"github.com/lixenwraith/termkit/screen"
	"github.com/lixenwraith/termkit/terminal"
	"github.com/lixenwraith/termkit/tui"
)

var (
	timeoutFlag = flag.Duration("timeout", 50*time.Millisecond, "Standalone ESC resolution deadline")
	colorFlag   = flag.String("color", "auto", "Color mode: auto, 256, 16")
)

func main() {
	flag.Parse()

	var mode terminal.ColorMode
	switch *colorFlag {
	case "16":
		mode = terminal.ColorMode16
	case "256":
		mode = terminal.ColorMode256
	default:
		mode = terminal.DetectColorMode()
	}

	term := terminal.New(mode)
	term.SetEscapeTimeout(*timeoutFlag)
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	defer term.Fini()

	reg := sampleRegistry()
	th := tui.DefaultTheme
	buf := screen.New(term)
	buf.SetFill(th.Base())

	const maxLog = 64
	var lines []string
	addLog := func(s string) {
		if len(lines) >= maxLog {
			copy(lines, lines[1:])
			lines = lines[:maxLog-1]
		}
		lines = append(lines, s)
	}

	count := 0
	render := func() {
		buf.BeginFrame()
		root := tui.NewRegion(buf)
		root.Clear(th.Base())

		hdr := root.Sub(0, 0, root.W, 1)
		hdr.Fill(' ', th.Header())
		hdr.Text(1, 0, "input-test", th.Header())
		hdr.TextCenter(0, "press keys, ctrl+c or ctrl+q quits", th.Header())
		root.HLine(1, tui.LineSingle, th.BorderStyle())

		// Newest events at the bottom, like a tail
		visible := root.H - 4
		if visible < 0 {
			visible = 0
		}
		start := len(lines) - visible
		if start < 0 {
			start = 0
		}
		for i, s := range lines[start:] {
			root.Text(1, 2+i, s, th.Base())
		}

		w, h := root.W, root.H
		root.StatusBar(root.H-1, []tui.BarSection{
			{Label: "Size: ", Value: fmt.Sprintf("%dx%d", w, h), Priority: 2},
			{Label: "Esc timeout: ", Value: timeoutFlag.String(), Priority: 1},
			{Label: "Events: ", Value: strconv.Itoa(count), Priority: 3},
		}, tui.DefaultBarOpts(th))

		buf.EndFrame()
	}

	render()
	for {
		ev := term.PollEvent()
		switch ev.Type {
		case terminal.EventKey:
			if ev.Key == terminal.KeyCtrlC || ev.Key == terminal.KeyCtrlQ {
				return
			}
			count++
			addLog(formatKey(ev, reg))
		case terminal.EventResize:
			addLog(fmt.Sprintf("RESIZE %dx%d", ev.Width, ev.Height))
		case terminal.EventError:
			addLog(fmt.Sprintf("ERROR %v", ev.Err))
		case terminal.EventClosed:
			return
		}
		render()
	}
}

// sampleRegistry carries a few bindings so matches show up in the log
func sampleRegistry() *input.Registry {
	reg := input.NewRegistry()
	for _, b := range []struct {
		combo, action string
	}{
		{"F1", "app.help"},
		{"shift+F5", "view.refresh.hard"},
		{"ctrl+r", "view.refresh"},
		{"alt+x", "app.command"},
		{"g", "nav.top"},
		{"space", "item.toggle"},
	} {
		c, err := input.ParseCombo(b.combo)
		if err != nil {
			panic(err)
		}
		reg.Register(input.Binding{Combo: c, Action: b.action, Description: b.action, Category: "probe"})
	}
	return reg
}

// formatKey lines up the raw decode, the combo token, and the registry
// match for one key event
func formatKey(ev terminal.Event, reg *input.Registry) string {
	raw := describeKey(ev)

	token := "-"
	if c, ok := input.FromEvent(ev); ok {
		token = c.Token()
	}

	action := "-"
	if b, ok := reg.Match(ev); ok {
		action = b.Action
	}

	return fmt.Sprintf("%-24s token=%-20s action=%s", raw, token, action)
}

func describeKey(ev terminal.Event) string {
	var mods string
	if ev.Modifiers&terminal.ModShift != 0 {
		mods += "SHIFT+"
	}
	if ev.Modifiers&terminal.ModAlt != 0 {
		mods += "ALT+"
	}
	if ev.Modifiers&terminal.ModCtrl != 0 {
		mods += "CTRL+"
	}

	name := terminal.KeyName(ev.Key)
	if ev.Key == terminal.KeyRune {
		if ev.Rune >= 0x20 && ev.Rune < 0x7f {
			name = fmt.Sprintf("'%c'", ev.Rune)
		} else {
			name = fmt.Sprintf("U+%04X", ev.Rune)
		}
	}
	if name == "" {
		name = fmt.Sprintf("KEY(%d)", ev.Key)
	}

	return "KEY " + mods + name
}
