package layout

// Edge is a bit set of cell or grid edges.
type Edge uint8

const (
	EdgeTop Edge = 1 << iota
	EdgeLeft
	EdgeBottom
	EdgeRight
	// EdgeInsideH and EdgeInsideV only apply to grid-level borders.
	EdgeInsideH
	EdgeInsideV

	EdgesOuter = EdgeTop | EdgeLeft | EdgeBottom | EdgeRight
	EdgesAll   = EdgesOuter | EdgeInsideH | EdgeInsideV
)

// BorderKind is the line style of a border.
type BorderKind int

const (
	// BorderInherit leaves the edge to the enclosing grid or style.
	BorderInherit BorderKind = iota
	// BorderNone explicitly suppresses the edge.
	BorderNone
	BorderSingle
)

// BorderStyle describes one edge line.
type BorderStyle struct {
	Kind  BorderKind
	Size  int    // eighths of a point
	Color string // RRGGBB
}

var (
	// Thin is the uniform separator used around content-bearing cells.
	Thin = BorderStyle{Kind: BorderSingle, Size: 4, Color: "A6A6A6"}
	// Hairline is used inside data grids.
	Hairline = BorderStyle{Kind: BorderSingle, Size: 4, Color: "000000"}
	NoBorder = BorderStyle{Kind: BorderNone}
)

// Borders holds a style per edge. Zero value inherits every edge.
type Borders struct {
	Top, Left, Bottom, Right BorderStyle
	InsideH, InsideV         BorderStyle
}

// Set applies style to each edge in edges.
func (b *Borders) Set(edges Edge, style BorderStyle) {
	if edges&EdgeTop != 0 {
		b.Top = style
	}
	if edges&EdgeLeft != 0 {
		b.Left = style
	}
	if edges&EdgeBottom != 0 {
		b.Bottom = style
	}
	if edges&EdgeRight != 0 {
		b.Right = style
	}
	if edges&EdgeInsideH != 0 {
		b.InsideH = style
	}
	if edges&EdgeInsideV != 0 {
		b.InsideV = style
	}
}

// IsZero reports whether every edge inherits.
func (b Borders) IsZero() bool { return b == Borders{} }

// Margins is cell padding.
type Margins struct {
	Top, Bottom, Left, Right Length
}

// Cell is one cell of a grid. It holds blocks of its own, including nested
// grids.
type Cell struct {
	container
	Borders Borders
	Margins *Margins
	VAlign  VAlign
}

// SetBorder styles the given outer edges of the cell. Inside edges are
// ignored on cells.
func (c *Cell) SetBorder(edges Edge, style BorderStyle) *Cell {
	c.Borders.Set(edges&EdgesOuter, style)
	return c
}

// SetMargins sets cell padding.
func (c *Cell) SetMargins(top, bottom, left, right Length) *Cell {
	c.Margins = &Margins{Top: top, Bottom: bottom, Left: left, Right: right}
	return c
}

// SetVerticalAlign sets vertical alignment of the cell content.
func (c *Cell) SetVerticalAlign(v VAlign) *Cell {
	c.VAlign = v
	return c
}

// Grid is a fixed-width table. Every row has exactly len(Widths) cells.
type Grid struct {
	Widths  []Length
	Rows    [][]*Cell
	Borders Borders
}

// NewGrid returns a rows × len(widths) grid with empty cells.
func NewGrid(rows int, widths ...Length) *Grid {
	g := &Grid{Widths: append([]Length(nil), widths...)}
	for i := 0; i < rows; i++ {
		g.AddRow()
	}
	return g
}

// AddRow appends a row of empty cells and returns it.
func (g *Grid) AddRow() []*Cell {
	row := make([]*Cell, len(g.Widths))
	for i := range row {
		row[i] = &Cell{}
	}
	g.Rows = append(g.Rows, row)
	return row
}

// Cell returns the cell at row r, column c.
func (g *Grid) Cell(r, c int) *Cell { return g.Rows[r][c] }

// SetBorder styles grid-level edges, including inside edges.
func (g *Grid) SetBorder(edges Edge, style BorderStyle) *Grid {
	g.Borders.Set(edges, style)
	return g
}

// Width is the total of the column widths.
func (g *Grid) Width() Length {
	var w Length
	for _, cw := range g.Widths {
		w += cw
	}
	return w
}

// EdgeBorder resolves the effective style of one outer edge of cell (r, c):
// the cell's own style wins, otherwise the grid's outer or inside border
// applies depending on where the cell sits.
func (g *Grid) EdgeBorder(r, c int, edge Edge) BorderStyle {
	cell := g.Rows[r][c]
	var own, outer, inside BorderStyle
	var atOuter bool
	switch edge {
	case EdgeTop:
		own, outer, inside, atOuter = cell.Borders.Top, g.Borders.Top, g.Borders.InsideH, r == 0
	case EdgeBottom:
		own, outer, inside, atOuter = cell.Borders.Bottom, g.Borders.Bottom, g.Borders.InsideH, r == len(g.Rows)-1
	case EdgeLeft:
		own, outer, inside, atOuter = cell.Borders.Left, g.Borders.Left, g.Borders.InsideV, c == 0
	case EdgeRight:
		own, outer, inside, atOuter = cell.Borders.Right, g.Borders.Right, g.Borders.InsideV, c == len(g.Widths)-1
	default:
		return BorderStyle{}
	}
	if own.Kind != BorderInherit {
		return own
	}
	if atOuter {
		return outer
	}
	return inside
}
