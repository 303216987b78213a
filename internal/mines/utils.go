package mines

const (
	todoAbsent = -2
	todoEnd    = -1
)

// celltodo is a FIFO of cell indices threaded through a next array with one
// slot per cell, so a cell is never queued twice at the same time.
type celltodo struct {
	next       []int
	head, tail int
}

func newCellTodo(n int) *celltodo {
	next := make([]int, n)
	for i := range next {
		next[i] = todoAbsent
	}
	return &celltodo{next: next, head: todoEnd, tail: todoEnd}
}

func (std *celltodo) add(i int) bool {
	if std.next[i] != todoAbsent {
		return false /* already on it */
	}
	if std.tail >= 0 {
		std.next[std.tail] = i
	} else {
		std.head = i
	}
	std.tail = i
	std.next[i] = todoEnd
	return true
}

func (std *celltodo) pop() (int, bool) {
	if std.head < 0 {
		return 0, false
	}
	i := std.head
	std.head = std.next[i]
	if std.head < 0 {
		std.tail = todoEnd
	}
	std.next[i] = todoAbsent
	return i, true
}

func (std *celltodo) empty() bool {
	return std.head < 0
}
