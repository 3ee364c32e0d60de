// internal/event/event_test.go
package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	name string
	log  *[]string
}

func (r *recorder) OnEvent(e Event) {
	*r.log = append(*r.log, r.name+":"+string(e.Type))
}

func TestDispatchDeliversInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var log []string
	d.Subscribe(EnemyKilled, &recorder{name: "a", log: &log})
	d.Subscribe(EnemyKilled, &recorder{name: "b", log: &log})
	d.Subscribe(EnemyLeaked, &recorder{name: "c", log: &log})

	d.Dispatch(Event{Type: EnemyKilled})
	d.Dispatch(Event{Type: EnemyLeaked})
	d.Dispatch(Event{Type: GameWon}) // no subscribers: silently dropped

	assert.Equal(t, []string{"a:EnemyKilled", "b:EnemyKilled", "c:EnemyLeaked"}, log)
}

func TestDispatchCarriesPayload(t *testing.T) {
	d := NewDispatcher()
	var got any
	d.Subscribe(WaveStarted, listenerFunc(func(e Event) { got = e.Data }))

	d.Dispatch(Event{Type: WaveStarted, Data: 3})
	assert.Equal(t, 3, got)
}

type listenerFunc func(Event)

func (f listenerFunc) OnEvent(e Event) { f(e) }
