// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ratelimit implements the per-client admission gate in front of the
// session. It never queues or delays a request; it only says yes or no.
package ratelimit

import (
	"sync"
	"time"
)

// Option configures a [Limiter].
type Option func(*Limiter)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

// Limiter admits at most limit calls per identity within any window.
// It is safe for concurrent use.
type Limiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu   sync.Mutex
	hits map[string][]time.Time
}

// New returns a limiter admitting limit calls per window per identity.
func New(limit int, window time.Duration, opts ...Option) *Limiter {
	l := &Limiter{
		limit:  limit,
		window: window,
		now:    time.Now,
		hits:   make(map[string][]time.Time),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Admit reports whether identity may make another call now. A timestamp is
// recorded only for admitted calls.
func (l *Limiter) Admit(identity string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	recent := l.prune(l.hits[identity], now)
	if len(recent) >= l.limit {
		l.hits[identity] = recent
		recordRejection()
		return false
	}

	l.hits[identity] = append(recent, now)
	return true
}

// Sweep forgets identities with no timestamps left inside the window and
// returns how many were dropped.
func (l *Limiter) Sweep() int {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	dropped := 0
	for identity, stamps := range l.hits {
		recent := l.prune(stamps, now)
		if len(recent) == 0 {
			delete(l.hits, identity)
			dropped++
			continue
		}
		l.hits[identity] = recent
	}
	return dropped
}

// Window returns the admission window.
func (l *Limiter) Window() time.Duration {
	return l.window
}

// Tracked returns the number of identities currently held in memory.
func (l *Limiter) Tracked() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.hits)
}

// prune drops timestamps that are at least one window old. Timestamps are
// appended in order, so the kept ones form a suffix.
func (l *Limiter) prune(stamps []time.Time, now time.Time) []time.Time {
	i := 0
	for i < len(stamps) && now.Sub(stamps[i]) >= l.window {
		i++
	}
	return stamps[i:]
}
