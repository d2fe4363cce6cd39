package circuitbreaker

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBroker = errors.New("broker unavailable")

// fakeClock 手动推进的时钟，避免测试中sleep
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newTestBreaker(cfg Config) (*CircuitBreaker, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	cb := NewCircuitBreaker("test", cfg)
	cb.now = clock.Now
	cb.resetExpiry(clock.Now())
	return cb, clock
}

func fail() error    { return errBroker }
func succeed() error { return nil }

func TestCircuitBreaker_ClosedState(t *testing.T) {
	cb, _ := newTestBreaker(Config{Timeout: time.Minute, ReadyToTrip: ConsecutiveFailures(3)})

	for i := 0; i < 10; i++ {
		require.NoError(t, cb.Execute(succeed))
	}
	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, uint32(10), cb.Counts().TotalSuccesses)

	// 失败被成功打断，不会熔断
	_ = cb.Execute(fail)
	_ = cb.Execute(fail)
	require.NoError(t, cb.Execute(succeed))
	_ = cb.Execute(fail)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_OpenState(t *testing.T) {
	cb, _ := newTestBreaker(Config{Timeout: time.Minute, ReadyToTrip: ConsecutiveFailures(3)})

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, cb.Execute(fail), errBroker)
	}
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrOpenState)
	assert.False(t, called, "熔断时不应调用下游")
}

func TestCircuitBreaker_HalfOpen(t *testing.T) {
	var transitions []string
	cb, clock := newTestBreaker(Config{
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: ConsecutiveFailures(1),
		OnStateChange: func(name string, from, to State) {
			transitions = append(transitions, from.String()+"->"+to.String())
		},
	})

	_ = cb.Execute(fail)
	require.Equal(t, StateOpen, cb.State())

	t.Run("超时后进入半开，探测失败回到打开", func(t *testing.T) {
		clock.Advance(31 * time.Second)
		assert.Equal(t, StateHalfOpen, cb.State())
		_ = cb.Execute(fail)
		assert.Equal(t, StateOpen, cb.State())
	})

	t.Run("探测成功后关闭", func(t *testing.T) {
		clock.Advance(31 * time.Second)
		require.NoError(t, cb.Execute(succeed))
		assert.Equal(t, StateClosed, cb.State())
	})

	assert.Equal(t, []string{
		"CLOSED->OPEN",
		"OPEN->HALF_OPEN",
		"HALF_OPEN->OPEN",
		"OPEN->HALF_OPEN",
		"HALF_OPEN->CLOSED",
	}, transitions)
}

func TestCircuitBreaker_HalfOpenLimit(t *testing.T) {
	cb, clock := newTestBreaker(Config{MaxRequests: 1, Timeout: time.Second, ReadyToTrip: ConsecutiveFailures(1)})
	_ = cb.Execute(fail)
	clock.Advance(2 * time.Second)

	// 第一个探测请求执行期间，第二个请求被拒绝
	err := cb.Execute(func() error {
		assert.ErrorIs(t, cb.Execute(succeed), ErrOpenState)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_IntervalReset(t *testing.T) {
	cb, clock := newTestBreaker(Config{
		Interval:    10 * time.Second,
		Timeout:     time.Minute,
		ReadyToTrip: ConsecutiveFailures(3),
	})

	_ = cb.Execute(fail)
	_ = cb.Execute(fail)
	clock.Advance(11 * time.Second)
	_ = cb.Execute(fail)

	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, uint32(1), cb.Counts().ConsecutiveFailures)
}

func TestCircuitBreaker_Defaults(t *testing.T) {
	cb := NewCircuitBreaker("defaults", Config{Timeout: time.Minute})
	assert.Equal(t, "defaults", cb.Name())

	for i := 0; i < 4; i++ {
		_ = cb.Execute(fail)
	}
	assert.Equal(t, StateClosed, cb.State())
	_ = cb.Execute(fail)
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_Concurrent(t *testing.T) {
	cb := NewCircuitBreaker("concurrent", Config{Timeout: time.Minute, ReadyToTrip: ConsecutiveFailures(1000)})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				_ = cb.Execute(succeed)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint32(1000), cb.Counts().TotalSuccesses)
}
