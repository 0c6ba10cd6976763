package maze

import (
	"io"
	"strings"
)

// String renders the maze as a text diagram. The first line is the top
// border; every grid row then contributes a line of EAST-wall markers between
// cells, and all rows but the last add a line of SOUTH-wall markers with a
// corner filler after each. A read-only projection of wall state.
func (m *Maze) String() string {
	var b strings.Builder
	m.render(&b)
	return b.String()
}

// Render writes the text diagram to w.
func (m *Maze) Render(w io.Writer) error {
	var b strings.Builder
	m.render(&b)
	_, err := io.WriteString(w, b.String())
	return err
}

func (m *Maze) render(b *strings.Builder) {
	b.WriteByte(' ')
	b.WriteString(strings.Repeat("_", m.size.Width*2-1))
	b.WriteByte('\n')

	for row := 0; row < m.size.Height; row++ {
		b.WriteByte('|')
		for col := 0; col < m.size.Width-1; col++ {
			b.WriteByte(' ')
			if m.IsWallEnabled(Coord{Col: col, Row: row}, East) {
				b.WriteByte('#')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString(" |\n")

		if row == m.size.Height-1 {
			continue
		}
		b.WriteByte('|')
		for col := 0; col < m.size.Width-1; col++ {
			if m.IsWallEnabled(Coord{Col: col, Row: row}, South) {
				b.WriteByte('#')
			} else {
				b.WriteByte(' ')
			}
			b.WriteByte('#')
		}
		b.WriteString("#|\n")
	}
}
