package engine

// NameEntry is a cursor-addressed text buffer for the player's name.
type NameEntry struct {
	input  []rune
	cursor int
}

// Insert puts r at the cursor and moves the cursor past it.
func (n *NameEntry) Insert(r rune) {
	n.input = append(n.input[:n.cursor], append([]rune{r}, n.input[n.cursor:]...)...)
	n.MoveCursor(1)
}

// Delete removes the rune before the cursor.
func (n *NameEntry) Delete() {
	if n.cursor == 0 {
		return
	}
	n.input = append(n.input[:n.cursor-1], n.input[n.cursor:]...)
	n.MoveCursor(-1)
}

// MoveCursor shifts the cursor by step, clamped to the buffer.
func (n *NameEntry) MoveCursor(step int) {
	n.cursor = min(max(n.cursor+step, 0), len(n.input))
}

// Reset empties the buffer.
func (n *NameEntry) Reset() {
	n.input = nil
	n.cursor = 0
}

func (n *NameEntry) Value() string { return string(n.input) }
func (n *NameEntry) Cursor() int   { return n.cursor }
