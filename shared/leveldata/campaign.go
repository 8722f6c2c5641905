package leveldata

import (
	"fmt"
	"io/fs"
	"strings"
)

// Campaign is a set of layouts chained through their Next names.
type Campaign struct {
	layouts map[string]*Layout
	names   []string
}

// NewCampaign builds a campaign from layouts in the given order. It fails
// when a layout names a next layout that is not part of the set.
func NewCampaign(layouts ...*Layout) (*Campaign, error) {
	if len(layouts) == 0 {
		return nil, fmt.Errorf("campaign has no layouts")
	}
	c := &Campaign{layouts: make(map[string]*Layout, len(layouts))}
	for _, l := range layouts {
		if _, dup := c.layouts[l.Name]; dup {
			return nil, fmt.Errorf("duplicate layout %q", l.Name)
		}
		c.layouts[l.Name] = l
		c.names = append(c.names, l.Name)
	}
	for _, l := range layouts {
		if l.Next != "" && c.layouts[l.Next] == nil {
			return nil, fmt.Errorf("layout %s: next level %q not found", l.Name, l.Next)
		}
	}
	return c, nil
}

// LoadCampaign loads every layout in dir as one campaign.
func LoadCampaign(fsys fs.FS, dir string) (*Campaign, error) {
	layouts, names, err := LoadAllLayouts(fsys, dir)
	if err != nil {
		return nil, err
	}
	ordered := make([]*Layout, 0, len(names))
	for _, name := range names {
		ordered = append(ordered, layouts[name])
	}
	return NewCampaign(ordered...)
}

// Names lists the layouts in load order.
func (c *Campaign) Names() []string {
	return c.names
}

// Get looks a layout up by name. A ".tmx" suffix is ignored.
func (c *Campaign) Get(name string) (*Layout, bool) {
	l, ok := c.layouts[strings.TrimSuffix(name, ".tmx")]
	return l, ok
}

// First returns the first layout in load order.
func (c *Campaign) First() *Layout {
	return c.layouts[c.names[0]]
}

// Next returns the layout played after l, false when l is the last one.
func (c *Campaign) Next(l *Layout) (*Layout, bool) {
	if l == nil || l.Next == "" {
		return nil, false
	}
	next, ok := c.layouts[l.Next]
	return next, ok
}
