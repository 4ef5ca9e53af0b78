package optsearch

import "strings"

// Option is one selectable value in a filter chip: an underlying raw value
// plus the display text shown next to its checkbox.
type Option struct {
	Value   string
	Label   string
	Checked bool
}

// ChipConfig describes a filter chip. The option list is supplied
// explicitly at construction; the chip never introspects the control it was
// bound to (use goquery.ParseSelect to adapt legacy select markup).
type ChipConfig struct {
	// Key is the filter key this chip narrows, e.g. "arch".
	Key string

	// Label is the field label shown in the selection summary. Defaults
	// to Key.
	Label string

	// Conjunction joins the last two labels in a multi-value summary.
	// Defaults to "or".
	Conjunction string

	// Options is the candidate value list, in display order.
	Options []Option

	// OnApply is invoked with the confirmed selection, in option order,
	// whenever a commit changes it. May be nil.
	OnApply func(selected []string)
}

// Chip is the multi-select filter widget for one filterable field. It is a
// purely synchronous state machine with two states:
//
//	Closed -> (Toggle) -> Open -> (Toggle or Submit) -> Closed
//
// OnApply fires on the closing edge only, and only when the confirmed
// selection differs from the previously applied one; repeated open/close
// cycles with no change never re-trigger downstream recomputation.
// Selection state is local to the chip until a commit.
type Chip struct {
	key         string
	label       string
	conjunction string
	onApply     func([]string)

	options []Option
	applied map[string]struct{}
	open    bool
	search  string
}

// NewChip validates the configuration and constructs a chip. A missing key
// or an empty or malformed option list is a configuration error: the chip
// fails fast with EINVALID so the caller can refuse to render it and leave
// the underlying control usable.
func NewChip(cfg ChipConfig) (*Chip, error) {
	if cfg.Key == "" {
		return nil, Errorf(EINVALID, "chip filter key required")
	}
	if len(cfg.Options) == 0 {
		return nil, Errorf(EINVALID, "chip %q has no options", cfg.Key)
	}
	seen := make(map[string]struct{}, len(cfg.Options))
	for _, opt := range cfg.Options {
		if opt.Value == "" {
			return nil, Errorf(EINVALID, "chip %q has an option without a value", cfg.Key)
		}
		if _, ok := seen[opt.Value]; ok {
			return nil, Errorf(EINVALID, "chip %q has duplicate option value %q", cfg.Key, opt.Value)
		}
		seen[opt.Value] = struct{}{}
	}

	c := &Chip{
		key:         cfg.Key,
		label:       cfg.Label,
		conjunction: cfg.Conjunction,
		onApply:     cfg.OnApply,
	}
	if c.label == "" {
		c.label = cfg.Key
	}
	if c.conjunction == "" {
		c.conjunction = "or"
	}
	c.setOptions(cfg.Options)
	// The initial checked set counts as already applied, so the first
	// commit without changes is a no-op.
	c.applied = c.checkedSet()
	return c, nil
}

// Key returns the filter key this chip narrows.
func (c *Chip) Key() string {
	return c.key
}

// Update resynchronizes the chip from the bound control's current option
// set. The supplied options are authoritative, including checked state;
// this tolerates external mutation of the underlying control.
func (c *Chip) Update(options []Option) {
	c.setOptions(options)
}

func (c *Chip) setOptions(options []Option) {
	c.options = make([]Option, len(options))
	copy(c.options, options)
}

// Check programmatically sets a named option's state without firing the
// apply callback. Unknown values return ENOTFOUND.
func (c *Chip) Check(value string, checked bool) error {
	for i := range c.options {
		if c.options[i].Value == value {
			c.options[i].Checked = checked
			return nil
		}
	}
	return Errorf(ENOTFOUND, "chip %q has no option %q", c.key, value)
}

// Checked returns the currently checked values in option order.
func (c *Chip) Checked() []string {
	var values []string
	for _, opt := range c.options {
		if opt.Checked {
			values = append(values, opt.Value)
		}
	}
	return values
}

func (c *Chip) checkedSet() map[string]struct{} {
	set := make(map[string]struct{})
	for _, opt := range c.options {
		if opt.Checked {
			set[opt.Value] = struct{}{}
		}
	}
	return set
}

// Open reports whether the dropdown is expanded.
func (c *Chip) Open() bool {
	return c.open
}

// Toggle flips the dropdown state. Closing commits the selection.
func (c *Chip) Toggle() {
	if c.open {
		c.commit()
		c.open = false
		c.search = ""
		return
	}
	c.open = true
}

// Submit commits the selection and closes the dropdown. No-op when closed.
func (c *Chip) Submit() {
	if !c.open {
		return
	}
	c.Toggle()
}

// commit compares the checked set against the last applied one and fires
// OnApply only on an actual change.
func (c *Chip) commit() {
	current := c.checkedSet()
	if setsEqual(current, c.applied) {
		return
	}
	c.applied = current
	if c.onApply != nil {
		c.onApply(c.Checked())
	}
}

func setsEqual(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for v := range a {
		if _, ok := b[v]; !ok {
			return false
		}
	}
	return true
}

// Summary returns the chip's selection summary text: the field label alone
// for an empty selection, "<value> <label>" for a single one, and a
// comma-joined list with the conjunction before the last value and a
// pluralized label for several.
func (c *Chip) Summary() string {
	checked := c.Checked()
	switch len(checked) {
	case 0:
		return c.label
	case 1:
		return checked[0] + " " + c.label
	default:
		head := strings.Join(checked[:len(checked)-1], ", ")
		return head + " " + c.conjunction + " " + checked[len(checked)-1] + " " + c.label + "s"
	}
}

// SetSearch sets the embedded text-box query that narrows the visible
// option labels. Hidden options retain their checked state.
func (c *Chip) SetSearch(query string) {
	c.search = query
}

// Search returns the current label query.
func (c *Chip) Search() string {
	return c.search
}

// Visible returns the options whose labels match the current query:
// case-insensitive substring match, except a single-character query matches
// only labels starting with that character.
func (c *Chip) Visible() []Option {
	q := strings.ToLower(c.search)
	if q == "" {
		return c.Options()
	}
	var visible []Option
	for _, opt := range c.options {
		label := strings.ToLower(opt.Label)
		if len([]rune(q)) == 1 {
			if strings.HasPrefix(label, q) {
				visible = append(visible, opt)
			}
			continue
		}
		if strings.Contains(label, q) {
			visible = append(visible, opt)
		}
	}
	return visible
}

// Options returns a copy of the full option list in display order.
func (c *Chip) Options() []Option {
	options := make([]Option, len(c.options))
	copy(options, c.options)
	return options
}
