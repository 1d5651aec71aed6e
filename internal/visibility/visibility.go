// Package visibility describes how each section animates when it scrolls
// into view.
package visibility

// Mode selects how a trigger reacts to the section leaving the viewport.
type Mode string

const (
	// Once reveals the section on first entry and never hides it again.
	Once Mode = "once"
	// Repeat follows every entry and exit.
	Repeat Mode = "repeat"
)

// State is the animation state of a section.
type State string

const (
	Hidden  State = "hidden"
	Visible State = "visible"
)

// DefaultThreshold is the visible fraction that counts as "in view".
const DefaultThreshold = 0.1

// Trigger is the per-section reveal state machine.
type Trigger struct {
	Mode      Mode
	Threshold float64
	state     State
}

// NewTrigger starts hidden.
func NewTrigger(mode Mode, threshold float64) *Trigger {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Trigger{Mode: mode, Threshold: threshold, state: Hidden}
}

// State returns the current state.
func (t *Trigger) State() State { return t.state }

// Observe feeds one intersection observation and returns the new state.
func (t *Trigger) Observe(inView bool) State {
	switch {
	case inView:
		t.state = Visible
	case t.Mode == Repeat:
		t.state = Hidden
	}
	return t.state
}


// Section pairs a page section with its reveal behavior.
type Section struct {
	ID        string
	Mode      Mode
	Threshold float64
}

// Attr is the data-reveal attribute value the browser script reads.
func (s Section) Attr() string { return string(s.Mode) }

// Initial is the state a section is rendered in on first page load, before
// the browser has observed it.
func (s Section) Initial() State {
	return NewTrigger(s.Mode, s.Threshold).State()
}

// InView is the state of a section re-rendered in response to an
// interaction inside it, which means it is on screen.
func (s Section) InView() State {
	return NewTrigger(s.Mode, s.Threshold).Observe(true)
}

// Sections lists the reveal behavior per section. Only the project grid
// re-animates on every pass.
var Sections = map[string]Section{
	"about":      {ID: "about", Mode: Once, Threshold: DefaultThreshold},
	"skills":     {ID: "skills", Mode: Once, Threshold: DefaultThreshold},
	"experience": {ID: "experience", Mode: Once, Threshold: DefaultThreshold},
	"projects":   {ID: "projects", Mode: Repeat, Threshold: DefaultThreshold},
	"services":   {ID: "services", Mode: Once, Threshold: DefaultThreshold},
	"contact":    {ID: "contact", Mode: Once, Threshold: DefaultThreshold},
}

// For returns the behavior of section id, defaulting to Once.
func For(id string) Section {
	if s, ok := Sections[id]; ok {
		return s
	}
	return Section{ID: id, Mode: Once, Threshold: DefaultThreshold}
}
