package vga

// Divider derives the pixel tick from the system tick. It counts system
// ticks and toggles its output flag every period ticks; each toggle is one
// pixel tick.
type Divider struct {
	period int
	count  int
	flag   bool
}

// NewDivider returns a divider that toggles every period system ticks.
// A period below one is treated as one.
func NewDivider(period int) *Divider {
	return &Divider{period: max(period, 1)}
}

// NewLegacyDivider returns the divider of the second hardware variant. Its
// threshold compare is off by one, so it toggles every PixelDivide+1 ticks.
func NewLegacyDivider() *Divider {
	return NewDivider(PixelDivide + 1)
}

// Period returns the number of system ticks per pixel tick.
func (d *Divider) Period() int {
	return d.period
}

// Tick advances the divider by one system tick and reports whether the flag
// toggled on this tick.
func (d *Divider) Tick() bool {
	d.count++
	if d.count < d.period {
		return false
	}
	d.count = 0
	d.flag = !d.flag
	return true
}

// Level returns the current state of the toggling flag.
func (d *Divider) Level() bool {
	return d.flag
}

// Reset returns the divider to its power-on state.
func (d *Divider) Reset() {
	d.count = 0
	d.flag = false
}
