package composite

import "strings"

// Graphic is the component interface shared by primitives and groups.
type Graphic interface {
	// Render returns the textual rendering of this graphic.
	Render() string
}

// Ellipse is a leaf graphic.
type Ellipse struct{}

// Render draws the ellipse.
func (Ellipse) Render() string { return "Ellipse" }

// Group is the composite: a graphic made of other graphics.
type Group struct {
	children []Graphic
}

// NewGroup returns an empty Group.
func NewGroup() *Group {
	return &Group{}
}

// Add appends graphics to the group, leaves and subgroups alike.
func (g *Group) Add(graphics ...Graphic) {
	g.children = append(g.children, graphics...)
}

// Remove drops the most recently added child. No-op on an empty group.
func (g *Group) Remove() {
	if n := len(g.children); n > 0 {
		g.children = g.children[:n-1]
	}
}

// Len reports the number of direct children.
func (g *Group) Len() int { return len(g.children) }

// Render concatenates the renderings of all children, depth first.
func (g *Group) Render() string {
	var sb strings.Builder
	for _, child := range g.children {
		sb.WriteString(child.Render())
	}

	return sb.String()
}
