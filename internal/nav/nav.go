package nav

// DefaultActivationOffset compensates for the fixed header height.
const DefaultActivationOffset = 100

// Section is a vertically stacked block of the page, addressable by ID.
type Section struct {
	ID    string `koanf:"id" json:"id"`
	Label string `koanf:"label" json:"label"`
}

// Offset is the measured document offset of a mounted section.
type Offset struct {
	ID  string
	Top float64
}

// Item is a view model for rendering the navigation menu.
type Item struct {
	ID     string
	Label  string
	Href   string
	Active bool
}

// ActiveID maps a scroll position to the section the viewport has most
// recently scrolled past. Sections are scanned from last to first and the first
// one whose top is at or above scrollY+activationOffset wins. Sections with no
// measured offset are skipped. When nothing qualifies the first section is
// returned; an empty section list yields "".
func ActiveID(sections []Section, offsets []Offset, scrollY, activationOffset float64) string {
	if len(sections) == 0 {
		return ""
	}
	tops := make(map[string]float64, len(offsets))
	for _, o := range offsets {
		tops[o.ID] = o.Top
	}
	threshold := scrollY + activationOffset
	for i := len(sections) - 1; i >= 0; i-- {
		top, ok := tops[sections[i].ID]
		if ok && top <= threshold {
			return sections[i].ID
		}
	}
	return sections[0].ID
}

// Items renders the menu with activeID highlighted.
func Items(sections []Section, activeID string) []Item {
	items := make([]Item, 0, len(sections))
	for _, s := range sections {
		items = append(items, Item{
			ID:     s.ID,
			Label:  s.Label,
			Href:   "#" + s.ID,
			Active: s.ID == activeID,
		})
	}
	return items
}

// Contains reports whether id names one of sections.
func Contains(sections []Section, id string) bool {
	for _, s := range sections {
		if s.ID == id {
			return true
		}
	}
	return false
}
