package view

import "slices"

// Dropdowns owns the togglable filter panels of a page. At most one panel
// is open after Toggle/Open; the last call wins. The inline script of the
// listing page implements the same operations in the browser.
type Dropdowns struct {
	ids  []string
	open map[string]bool
}

// NewDropdowns registers the panel ids, all closed.
func NewDropdowns(ids ...string) *Dropdowns {
	return &Dropdowns{ids: slices.Clone(ids), open: map[string]bool{}}
}

// IDs returns the registered ids in registration order.
func (d *Dropdowns) IDs() []string {
	return slices.Clone(d.ids)
}

// Open opens id and closes every other panel. Unknown ids are ignored.
func (d *Dropdowns) Open(id string) {
	if !d.has(id) {
		return
	}
	d.CloseAllExcept(id)
	d.open[id] = true
}

// Close closes id.
func (d *Dropdowns) Close(id string) {
	delete(d.open, id)
}

// CloseAllExcept closes every panel but keep. An empty or unknown keep
// closes all of them (a click outside every panel).
func (d *Dropdowns) CloseAllExcept(keep string) {
	for id := range d.open {
		if id != keep {
			delete(d.open, id)
		}
	}
}

// Toggle flips id, closing the others when it opens.
func (d *Dropdowns) Toggle(id string) {
	if d.IsOpen(id) {
		d.Close(id)
		return
	}
	d.Open(id)
}

// IsOpen reports whether id is open.
func (d *Dropdowns) IsOpen(id string) bool {
	return d.open[id]
}

func (d *Dropdowns) has(id string) bool {
	return slices.Contains(d.ids, id)
}
