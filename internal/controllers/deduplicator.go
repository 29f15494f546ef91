package controllers

import (
	"context"
	"strings"
	"sync"
	"time"
)

// RequestDeduplicator отсекает повторную отправку публичной формы с тем же ключом в течение ttl.
type RequestDeduplicator struct {
	locks sync.Map
	ttl   time.Duration
	now   func() time.Time
}

func NewRequestDeduplicator(ttl time.Duration) *RequestDeduplicator {
	return &RequestDeduplicator{ttl: ttl, now: time.Now}
}

func submissionKey(parts ...string) string {
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return strings.Join(parts, "|")
}

// TryAcquire: false, если такой же ключ уже был принят и ещё не истёк.
func (d *RequestDeduplicator) TryAcquire(key string) bool {
	if d == nil || d.ttl <= 0 {
		return true
	}
	now := d.now()
	expiry := now.Add(d.ttl)

	for {
		val, loaded := d.locks.LoadOrStore(key, expiry)
		if !loaded {
			return true
		}
		if now.Before(val.(time.Time)) {
			return false
		}
		if d.locks.CompareAndSwap(key, val, expiry) {
			return true
		}
	}
}

// Release снимает блокировку, если отправка не удалась и повтор допустим.
func (d *RequestDeduplicator) Release(key string) {
	if d == nil {
		return
	}
	d.locks.Delete(key)
}

func (d *RequestDeduplicator) Cleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := d.now()
			d.locks.Range(func(key, value interface{}) bool {
				if now.After(value.(time.Time)) {
					d.locks.Delete(key)
				}
				return true
			})
		}
	}
}
