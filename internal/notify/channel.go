// Package notify is a single-event publish/subscribe list.
//
// A Channel carries exactly one kind of event ("changed"); it has no payload.
// Dispatch is synchronous: Notify returns only after every callback ran.
// Channels are not safe for concurrent use; callers own a single goroutine.
package notify

// CancelFunc removes a subscription. Calling it more than once is a no-op.
type CancelFunc func()

type subscriber struct {
	id int
	fn func()
}

// Channel is the zero-value-ready callback list.
type Channel struct {
	subs   []subscriber
	nextID int
}

// Subscribe registers fn and returns the handle that removes it.
// A nil fn is accepted and ignored.
func (c *Channel) Subscribe(fn func()) CancelFunc {
	if fn == nil {
		return func() {}
	}
	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, subscriber{id: id, fn: fn})
	return func() { c.remove(id) }
}

func (c *Channel) remove(id int) {
	for i, s := range c.subs {
		if s.id == id {
			c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
			return
		}
	}
}

// Notify calls every registered callback in registration order.
// The list is snapshotted first so callbacks may subscribe or cancel freely.
func (c *Channel) Notify() {
	if len(c.subs) == 0 {
		return
	}
	snapshot := make([]subscriber, len(c.subs))
	copy(snapshot, c.subs)
	for _, s := range snapshot {
		s.fn()
	}
}
