// Command tui-demo is a two-panel directory browser exercising the full
// widget stack: themed panels, list scrolling, status and key bars, a
// help overlay, and TOML keymap overrides.
//
// Usage:
//
//	tui-demo [flags] [dir] [dir2]
//	  -color string   color mode: auto, 256, 16 (default "auto")
//	  -theme string   theme TOML file
//	  -keymap string  keymap TOML file
//	  -debug          write debug log to logs/debug.log
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/lixenwraith/termkit/core"
	"github.com/lixenwraith/termkit/input"
	"github.com/lixenwraith/termkit/screen"
	"github.com/lixenwraith/termkit/terminal"
	"github.com/lixenwraith/termkit/tui"
)

var (
	colorFlag  = flag.String("color", "auto", "Color mode: auto, 256, 16")
	themeFlag  = flag.String("theme", "", "Theme TOML file")
	keymapFlag = flag.String("keymap", "", "Keymap TOML file")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/debug.log")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	th := tui.DefaultTheme
	if *themeFlag != "" {
		data, err := os.ReadFile(*themeFlag)
		if err == nil {
			th, err = tui.LoadTheme(data, th)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "theme %s: %v\n", *themeFlag, err)
			os.Exit(1)
		}
	}

	reg, err := buildRegistry(*keymapFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "keymap %s: %v\n", *keymapFlag, err)
		os.Exit(1)
	}

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
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal init: %v\n", err)
		os.Exit(1)
	}
	defer term.Fini()

	core.RegisterTerminal(term)
	defer func() {
		core.HandleCrash(recover())
	}()

	left := "."
	if flag.NArg() > 0 {
		left = flag.Arg(0)
	}
	right := left
	if flag.NArg() > 1 {
		right = flag.Arg(1)
	}
	if abs, err := filepath.Abs(left); err == nil {
		left = abs
	}
	if abs, err := filepath.Abs(right); err == nil {
		right = abs
	}

	a := newApp(term, th, reg)
	a.loadPanel(0, left, "")
	a.loadPanel(1, right, "")

	loop := &tui.Loop{
		Term:    term,
		OnEvent: a.handleEvent,
		OnFrame: a.draw,
	}
	a.loop = loop

	log.Printf("starting: color=%s left=%s right=%s", *colorFlag, left, right)
	if err := loop.Run(); err != nil {
		term.Fini()
		fmt.Fprintf(os.Stderr, "input error: %v\n", err)
		os.Exit(1)
	}
}

// buildRegistry assembles the default bindings and applies keymap
// overrides from path when it is non-empty
func buildRegistry(path string) (*input.Registry, error) {
	reg := defaultBindings()
	if path == "" {
		return reg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	km, err := input.LoadKeymap(data)
	if err != nil {
		return nil, err
	}
	return input.ApplyKeymap(reg, km)
}

func defaultBindings() *input.Registry {
	reg := input.NewRegistry()
	bind := func(combo, action, desc, cat string, pri int) {
		c, err := input.ParseCombo(combo)
		if err != nil {
			panic("bad default binding " + combo + ": " + err.Error())
		}
		reg.Register(input.Binding{Combo: c, Action: action, Description: desc, Category: cat, Priority: pri})
	}

	// The fkeys category feeds the bottom key bar, priority = slot order
	bind("F1", "app.help", "Help", "fkeys", 1)
	bind("F5", "view.refresh", "Reread", "fkeys", 5)
	bind("F10", "app.quit", "Quit", "fkeys", 10)

	bind("ctrl+q", "app.quit", "Quit", "app", 0)
	bind("ctrl+c", "app.quit", "Quit", "app", 0)
	bind("ctrl+r", "view.refresh", "Reread panels", "app", 0)
	bind("tab", "panel.switch", "Switch panel", "app", 0)

	bind("up", "nav.up", "Move up", "nav", 0)
	bind("k", "nav.up", "Move up", "nav", 0)
	bind("down", "nav.down", "Move down", "nav", 0)
	bind("j", "nav.down", "Move down", "nav", 0)
	bind("page_up", "nav.pageup", "Page up", "nav", 0)
	bind("page_down", "nav.pagedown", "Page down", "nav", 0)
	bind("home", "nav.top", "First entry", "nav", 0)
	bind("end", "nav.bottom", "Last entry", "nav", 0)
	bind("enter", "nav.open", "Open directory", "nav", 0)
	bind("backspace", "nav.parent", "Parent directory", "nav", 0)

	return reg
}

// entry is one row in a directory panel
type entry struct {
	name  string
	size  int64
	isDir bool
}

// panel holds one directory view. Loads happen off the UI goroutine,
// results land on app.loads and are folded in at frame start.
type panel struct {
	path    string
	entries []entry
	scroll  *tui.ScrollState
	loading bool
}

type loadResult struct {
	panel      int
	path       string
	selectName string
	entries    []entry
	err        error
}

type app struct {
	term terminal.Terminal
	buf  *screen.Buffer
	th   tui.Theme
	reg  *input.Registry
	loop *tui.Loop

	panels [2]panel
	active int
	help   bool
	status string

	loads chan loadResult
}

func newApp(term terminal.Terminal, th tui.Theme, reg *input.Registry) *app {
	a := &app{
		term:  term,
		buf:   screen.New(term),
		th:    th,
		reg:   reg,
		loads: make(chan loadResult, 8),
	}
	a.buf.SetFill(th.Base())
	for i := range a.panels {
		a.panels[i].scroll = tui.NewScrollState(0, 0)
	}
	return a
}

// loadPanel reads a directory in the background. selectName picks the
// entry to land the selection on once the load completes.
func (a *app) loadPanel(idx int, path, selectName string) {
	a.panels[idx].path = path
	a.panels[idx].loading = true
	core.Go(func() {
		entries, err := readDir(path)
		a.loads <- loadResult{panel: idx, path: path, selectName: selectName, entries: entries, err: err}
	})
}

func (a *app) drainLoads() {
	for {
		select {
		case res := <-a.loads:
			p := &a.panels[res.panel]
			p.loading = false
			if res.err != nil {
				a.status = res.err.Error()
				log.Printf("load %s: %v", res.path, res.err)
				continue
			}
			p.path = res.path
			p.entries = res.entries
			p.scroll.SetTotal(len(p.entries))
			p.scroll.ScrollTo(0)
			sel := 0
			if res.selectName != "" {
				for i, e := range p.entries {
					if e.name == res.selectName {
						sel = i
						break
					}
				}
			}
			p.scroll.Select(sel)
			a.status = ""
		default:
			return
		}
	}
}

func readDir(path string) ([]entry, error) {
	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	entries := make([]entry, 0, len(dirents)+1)
	if filepath.Dir(path) != path {
		entries = append(entries, entry{name: "..", isDir: true})
	}
	for _, d := range dirents {
		e := entry{name: d.Name(), isDir: d.IsDir()}
		if info, err := d.Info(); err == nil {
			e.size = info.Size()
		}
		entries = append(entries, e)
	}

	// Directories first, names within each group. ".." sorts ahead of
	// every letter so it stays on top.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].isDir != entries[j].isDir {
			return entries[i].isDir
		}
		return entries[i].name < entries[j].name
	})
	return entries, nil
}

func (a *app) handleEvent(ev terminal.Event) {
	if ev.Type != terminal.EventKey {
		return
	}
	// Any key dismisses the help overlay
	if a.help {
		a.help = false
		return
	}
	if b, ok := a.reg.Match(ev); ok {
		log.Printf("action %s (%s)", b.Action, b.Combo.Token())
		a.dispatch(b.Action)
	}
}

func (a *app) dispatch(action string) {
	p := &a.panels[a.active]
	switch action {
	case "app.quit":
		a.loop.Quit()
	case "app.help":
		a.help = true
	case "panel.switch":
		a.active = 1 - a.active
	case "view.refresh":
		for i := range a.panels {
			a.reload(i)
		}
	case "nav.up":
		p.scroll.SelectPrev()
	case "nav.down":
		p.scroll.SelectNext()
	case "nav.pageup":
		p.scroll.Select(p.scroll.Selection - tui.PageDelta(p.scroll.Visible))
	case "nav.pagedown":
		p.scroll.Select(p.scroll.Selection + tui.PageDelta(p.scroll.Visible))
	case "nav.top":
		p.scroll.Select(0)
	case "nav.bottom":
		p.scroll.Select(p.scroll.Total - 1)
	case "nav.open":
		a.open(a.active)
	case "nav.parent":
		a.parent(a.active)
	}
}

func (a *app) open(idx int) {
	p := &a.panels[idx]
	if p.scroll.Selection < 0 || p.scroll.Selection >= len(p.entries) {
		return
	}
	e := p.entries[p.scroll.Selection]
	if !e.isDir {
		a.status = e.name + ": not a directory"
		return
	}
	if e.name == ".." {
		a.parent(idx)
		return
	}
	a.loadPanel(idx, filepath.Join(p.path, e.name), "")
}

func (a *app) parent(idx int) {
	p := &a.panels[idx]
	dir := filepath.Dir(p.path)
	if dir == p.path {
		return
	}
	// Land the selection on the directory we came from
	a.loadPanel(idx, dir, filepath.Base(p.path))
}

func (a *app) reload(idx int) {
	p := &a.panels[idx]
	sel := ""
	if p.scroll.Selection >= 0 && p.scroll.Selection < len(p.entries) {
		sel = p.entries[p.scroll.Selection].name
	}
	a.loadPanel(idx, p.path, sel)
}

func (a *app) draw() {
	a.drainLoads()

	a.buf.BeginFrame()
	root := tui.NewRegion(a.buf)
	root.Clear(a.th.Base())

	if root.H > 2 {
		content := root.Sub(0, 0, root.W, root.H-2)
		for i, pr := range tui.SplitHEqual(content, 2, 0) {
			a.drawPanel(pr, i)
		}
	}

	a.drawStatus(root)
	root.KeyBar(root.H-1, a.reg.ByCategory("fkeys"), tui.DefaultKeyBarOpts(a.th))

	if a.help {
		a.drawHelp(root)
	}

	a.buf.EndFrame()
}

func (a *app) drawPanel(r tui.Region, idx int) {
	p := &a.panels[idx]
	border := a.th.BorderStyle()

	// Long paths keep their tail visible
	title := tui.TruncateLeft(p.path, r.W-4)
	inner := r.Card(title, tui.LineDouble, border)

	listArea, bar := tui.SplitHFixed(inner, inner.W-1)
	p.scroll.SetVisible(listArea.H)
	p.scroll.SetTotal(len(p.entries))

	items := make([]tui.ListItem, len(p.entries))
	for i, e := range p.entries {
		items[i] = tui.ListItem{Text: formatEntry(e, listArea.W)}
		if e.isDir {
			items[i].Style = terminal.Style{Attrs: terminal.AttrBold}
		}
	}

	opts := tui.DefaultListOpts(a.th)
	if idx != a.active {
		// Only the active panel shows the selection bar
		opts.Cursor = opts.Base
	}
	listArea.List(items, p.scroll.Selection, p.scroll.Offset, opts)
	bar.ScrollBar(0, p.scroll.Offset, p.scroll.Visible, p.scroll.Total, border)

	if p.loading {
		r.TextRight(0, " … ", a.th.Hint())
	}
}

// formatEntry lays out one panel row: name left, size column right.
// Directories carry a leading slash and no size.
func formatEntry(e entry, width int) string {
	const sizeW = 8
	name := e.name
	if e.isDir && e.name != ".." {
		name = "/" + name
	}

	var size string
	switch {
	case e.name == "..":
		size = "UP--DIR"
	case e.isDir:
		size = ""
	default:
		size = formatSize(e.size)
	}

	if width <= sizeW+2 {
		return tui.Truncate(name, width)
	}
	nameW := width - sizeW - 1
	return tui.PadRight(tui.Truncate(name, nameW), nameW) + " " + tui.PadLeft(size, sizeW)
}

func formatSize(n int64) string {
	switch {
	case n < 1<<10:
		return fmt.Sprintf("%d", n)
	case n < 1<<20:
		return fmt.Sprintf("%dK", n>>10)
	case n < 1<<30:
		return fmt.Sprintf("%dM", n>>20)
	default:
		return fmt.Sprintf("%dG", n>>30)
	}
}

func (a *app) drawStatus(root tui.Region) {
	p := &a.panels[a.active]

	var name string
	if p.scroll.Selection >= 0 && p.scroll.Selection < len(p.entries) {
		name = p.entries[p.scroll.Selection].name
	}

	sections := []tui.BarSection{
		{Value: name, Priority: 2},
		{Label: "Pos: ", Value: fmt.Sprintf("%d/%d", p.scroll.Selection+1, p.scroll.Total), Priority: 1},
	}
	if a.status != "" {
		errSec := tui.BarSection{
			Value:      a.status,
			ValueStyle: terminal.Style{Fg: a.th.ErrorFg, Attrs: terminal.AttrBold},
			Priority:   3,
		}
		sections = append([]tui.BarSection{errSec}, sections...)
	}

	root.StatusBar(root.H-2, sections, tui.DefaultBarOpts(a.th))
}

func (a *app) drawHelp(root tui.Region) {
	bindings := a.reg.Bindings()

	const comboW = 14
	w := 44
	h := len(bindings) + 4
	if w > root.W {
		w = root.W
	}
	if h > root.H {
		h = root.H
	}

	box := tui.Center(root, w, h)
	box.Clear(a.th.Base())
	inner := box.Card("Keys", tui.LineDouble, a.th.BorderStyle())

	y := 0
	for _, b := range bindings {
		if y >= inner.H-1 {
			break
		}
		inner.Text(0, y, tui.PadRight(b.Combo.Token(), comboW), a.th.TitleStyle())
		inner.Text(comboW, y, b.Description, a.th.Base())
		y++
	}
	inner.TextCenter(inner.H-1, "press any key", a.th.Hint())
}
