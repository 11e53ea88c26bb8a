package clock

import (
	"sync"
	"time"
)

type Clock struct {
	loc *time.Location
}

func New() *Clock {
	return &Clock{}
}

func NewWithLocation(loc *time.Location) *Clock {
	return &Clock{loc: loc}
}

func (c *Clock) Now() time.Time {
	now := time.Now()
	if c.loc != nil {
		now = now.In(c.loc)
	}
	return now
}

type Mock struct {
	mx    sync.Mutex
	value func() time.Time
}

func NewMock(value time.Time) *Mock {
	return &Mock{
		value: func() time.Time {
			return value
		},
	}
}

func NewMockF(value func() time.Time) *Mock {
	return &Mock{
		value: value,
	}
}

func (m *Mock) Now() time.Time {
	m.mx.Lock()
	defer m.mx.Unlock()
	return m.value()
}

func (m *Mock) Set(t time.Time) {
	m.SetF(func() time.Time {
		return t
	})
}

func (m *Mock) SetF(value func() time.Time) {
	m.mx.Lock()
	defer m.mx.Unlock()
	m.value = value
}

// Advance moves the mocked time forward by d and returns the new value.
func (m *Mock) Advance(d time.Duration) time.Time {
	m.mx.Lock()
	defer m.mx.Unlock()

	next := m.value().Add(d)
	m.value = func() time.Time {
		return next
	}
	return next
}
