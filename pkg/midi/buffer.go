package midi

import "sort"

// Buffer is the per-block list of MIDI messages, ordered by sample offset.
// Messages with equal offsets keep insertion order.
type Buffer struct {
	messages []Message
}

// NewBuffer creates a buffer with room for capacity messages.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{messages: make([]Message, 0, capacity)}
}

// Add inserts a message at its sample position.
func (b *Buffer) Add(m Message) {
	i := sort.Search(len(b.messages), func(i int) bool {
		return b.messages[i].Offset > m.Offset
	})
	b.messages = append(b.messages, Message{})
	copy(b.messages[i+1:], b.messages[i:])
	b.messages[i] = m
}

// Messages returns every message in the block. The slice is owned by the buffer.
func (b *Buffer) Messages() []Message {
	return b.messages
}

// InRange returns the messages with start <= offset < end.
func (b *Buffer) InRange(start, end int32) []Message {
	lo := sort.Search(len(b.messages), func(i int) bool {
		return b.messages[i].Offset >= start
	})
	hi := sort.Search(len(b.messages), func(i int) bool {
		return b.messages[i].Offset >= end
	})
	if lo >= hi {
		return nil
	}
	return b.messages[lo:hi]
}

// Len returns the number of messages.
func (b *Buffer) Len() int {
	return len(b.messages)
}

// IsEmpty reports whether the block carries no MIDI.
func (b *Buffer) IsEmpty() bool {
	return len(b.messages) == 0
}

// Clear drops all messages and keeps the allocation.
func (b *Buffer) Clear() {
	b.messages = b.messages[:0]
}
