package input

import (
	"github.com/lixenwraith/termkit/terminal"
)

// Binding associates a key combination with a named action. Description
// and Category feed help surfaces; Priority orders display only and
// never participates in matching
type Binding struct {
	Combo       Combo
	Action      string
	Description string
	Category    string
	Priority    int
}

// Registry is an ordered binding collection. Registration order is the
// only match order: the first binding registered for a combo wins and
// later conflicting registrations are shadowed, never rejected
type Registry struct {
	bindings []Binding
	index    map[Combo]int
}

// NewRegistry returns an empty binding registry
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[Combo]int),
	}
}

// Register appends a binding. Invalid combos are stored but can never
// match; multiple bindings may share an action (aliases)
func (r *Registry) Register(b Binding) {
	r.bindings = append(r.bindings, b)
	if _, taken := r.index[b.Combo]; !taken {
		r.index[b.Combo] = len(r.bindings) - 1
	}
}

// Match resolves a decoded key event to its binding
func (r *Registry) Match(ev terminal.Event) (Binding, bool) {
	c, ok := FromEvent(ev)
	if !ok {
		return Binding{}, false
	}
	return r.matchCombo(c)
}

// MatchToken resolves a combo token ("CTRL_Q", "ctrl+q") to its binding
func (r *Registry) MatchToken(token string) (Binding, bool) {
	c, err := ParseCombo(token)
	if err != nil {
		return Binding{}, false
	}
	return r.matchCombo(c)
}

func (r *Registry) matchCombo(c Combo) (Binding, bool) {
	if !c.Valid() {
		return Binding{}, false
	}
	i, ok := r.index[c]
	if !ok {
		return Binding{}, false
	}
	return r.bindings[i], true
}

// ByAction returns all bindings for an action in registration order
func (r *Registry) ByAction(action string) []Binding {
	var out []Binding
	for _, b := range r.bindings {
		if b.Action == action {
			out = append(out, b)
		}
	}
	return out
}

// ByCategory returns all bindings in a category in registration order
func (r *Registry) ByCategory(category string) []Binding {
	var out []Binding
	for _, b := range r.bindings {
		if b.Category == category {
			out = append(out, b)
		}
	}
	return out
}

// Actions returns the distinct action names in first-registered order
func (r *Registry) Actions() []string {
	seen := make(map[string]struct{}, len(r.bindings))
	var out []string
	for _, b := range r.bindings {
		if _, ok := seen[b.Action]; ok {
			continue
		}
		seen[b.Action] = struct{}{}
		out = append(out, b.Action)
	}
	return out
}

// Bindings returns a snapshot of all bindings in registration order
func (r *Registry) Bindings() []Binding {
	out := make([]Binding, len(r.bindings))
	copy(out, r.bindings)
	return out
}

// Len returns the number of registered bindings
func (r *Registry) Len() int {
	return len(r.bindings)
}
