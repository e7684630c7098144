package queuelog

// entryQueue is an unbounded FIFO of entries. It does no locking of its own;
// every call must be made with Service.mu held.
type entryQueue struct {
	items []Entry
	spare []Entry
}

func (q *entryQueue) push(e Entry) {
	q.items = append(q.items, e)
}

// takeAll hands back every pending entry in FIFO order and leaves the queue
// empty. The returned slice stays valid until it is passed to recycle.
func (q *entryQueue) takeAll() []Entry {
	batch := q.items
	q.items = q.spare[:0]
	q.spare = nil
	return batch
}

// recycle returns a processed batch so its backing array can be reused.
func (q *entryQueue) recycle(batch []Entry) {
	clear(batch)
	if q.spare == nil {
		q.spare = batch[:0]
	}
}

func (q *entryQueue) len() int {
	return len(q.items)
}
