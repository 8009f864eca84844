package handler

import (
	"sync"

	"anonpairbot/pkg/telegram"
)

// Dispatcher fans updates out to one buffered queue per user, so a single
// user's actions apply in receipt order while unrelated users are handled
// concurrently.
type Dispatcher struct {
	mu     sync.Mutex
	queues map[int64]chan telegram.Update
	handle func(telegram.Update)
}

func NewDispatcher(handle func(telegram.Update)) *Dispatcher {
	return &Dispatcher{
		queues: make(map[int64]chan telegram.Update),
		handle: handle,
	}
}

func (d *Dispatcher) Dispatch(update telegram.Update) {
	key := dispatchKey(update)

	d.mu.Lock()
	q, ok := d.queues[key]
	if !ok {
		q = make(chan telegram.Update, 64)
		d.queues[key] = q
		go func() {
			for u := range q {
				d.handle(u)
			}
		}()
	}
	d.mu.Unlock()

	q <- update
}

func dispatchKey(u telegram.Update) int64 {
	switch {
	case u.Message != nil && u.Message.From != nil:
		return u.Message.From.ID
	case u.CallbackQuery != nil && u.CallbackQuery.From != nil:
		return u.CallbackQuery.From.ID
	}
	return 0
}
