package builders

import "builder-generator/warehouse"

// DockBuilder is written by hand; generated builders pick it up for lists
// of warehouse.Dock.
type DockBuilder struct {
	dock warehouse.Dock
}

func NewDockBuilder(source warehouse.Dock) DockBuilder {
	return DockBuilder{dock: source}
}

func (b *DockBuilder) SetName(name string) {
	b.dock.Name = name
}

func (b *DockBuilder) SetDoor(door int) {
	b.dock.Door = door
}

func (b *DockBuilder) Build() warehouse.Dock {
	return b.dock
}
