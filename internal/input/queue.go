package input

// Queue is a FIFO of pending commands. It is owned by the loop goroutine
// and is not safe for concurrent use.
type Queue struct {
	pending []Command
}

func NewQueue() *Queue {
	return &Queue{pending: make([]Command, 0, 8)}
}

// Push appends c unless it is None.
func (q *Queue) Push(c Command) {
	if c == None {
		return
	}
	q.pending = append(q.pending, c)
}

// Drain returns every pending command in arrival order and empties the
// queue. It returns nil when nothing is pending.
func (q *Queue) Drain() []Command {
	if len(q.pending) == 0 {
		return nil
	}
	out := make([]Command, len(q.pending))
	copy(out, q.pending)
	q.pending = q.pending[:0]
	return out
}

// Len returns the number of pending commands.
func (q *Queue) Len() int { return len(q.pending) }
