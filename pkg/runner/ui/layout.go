package ui

// Layout places every element of the view for a screen of Width x Height
// cells. It holds no state beyond the size, so a new one is built for each
// frame.
type Layout struct {
	Width  int
	Height int
}

// sidebar is the width reserved on the left for the year and month list.
const sidebar = 12

// Column returns the x position of weekday column i.
func (l Layout) Column(i int) int {
	w := l.Width - sidebar
	return sidebar + w/14 + w/7*i
}

// Line returns the y position of grid line n. Line 0 is the weekday header.
func (l Layout) Line(n int) int {
	return l.Height/14 + l.Height/7*n
}

func (l Layout) sidebarTop() int {
	return max(0, (l.Height-14)/2)
}

// Year returns the position of the year label.
func (l Layout) Year() (x, y int) {
	return 1, l.sidebarTop()
}

// Month returns the position of month i, 0 being January.
func (l Layout) Month(i int) (x, y int) {
	return 1, l.sidebarTop() + 2 + i
}

// Status returns where a status line of n cells starts so it is centered on
// the bottom row.
func (l Layout) Status(n int) (x, y int) {
	return max(0, (l.Width-n)/2), l.Height - 1
}
