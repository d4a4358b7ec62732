package critical

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo(t *testing.T) {
	const (
		routineCount   = 10
		incrementCount = 100
	)

	var (
		wg    = new(sync.WaitGroup)
		value int
	)

	wg.Add(routineCount)
	for i := 0; i < routineCount; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < incrementCount; j++ {
				Do(func() {
					value++
				})
			}
		}()
	}

	wg.Wait()
	assert.Equal(t, routineCount*incrementCount, value)
}

func TestNesting(t *testing.T) {
	var (
		assert = assert.New(t)
		outer  = Enter()
	)

	inner := outer.Enter()
	assert.Same(outer, inner)
	inner.Exit()

	// still held after the nested exit: another level can be entered
	outer.Enter()
	outer.Exit()

	outer.Exit()

	// the region must be free again
	next := Enter()
	next.Exit()
}

func TestUnbalancedExit(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		r       = Enter()
	)

	require.NotNil(r)
	r.Exit()

	assert.Panics(func() {
		r.Exit()
	})
}

func TestExclusion(t *testing.T) {
	var (
		assert = assert.New(t)
		inside = make(chan struct{})
		done   = make(chan struct{})

		r = Enter()
	)

	go func() {
		defer close(done)
		close(inside)
		Do(func() {})
	}()

	<-inside
	select {
	case <-done:
		assert.Fail("a region was entered while another was active")
	default:
		// the other goroutine is blocked, as expected
	}

	r.Exit()
	<-done
}
