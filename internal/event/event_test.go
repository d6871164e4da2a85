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

func TestDispatchOrder(t *testing.T) {
	var log []string
	d := NewDispatcher()
	a := &recorder{name: "a", log: &log}
	b := &recorder{name: "b", log: &log}
	d.Subscribe(BulletFired, a)
	d.Subscribe(BulletFired, b)
	d.Subscribe(BaseDestroyed, b)

	d.Dispatch(Event{Type: BulletFired})
	d.Dispatch(Event{Type: BaseDestroyed})
	d.Dispatch(Event{Type: GameOver})

	assert.Equal(t, []string{"a:BulletFired", "b:BulletFired", "b:BaseDestroyed"}, log)
}

func TestUnsubscribe(t *testing.T) {
	var log []string
	d := NewDispatcher()
	a := &recorder{name: "a", log: &log}
	b := &recorder{name: "b", log: &log}
	d.SubscribeAll(a, EnemyDestroyed, PowerUpPicked)
	d.Subscribe(EnemyDestroyed, b)

	d.Unsubscribe(EnemyDestroyed, a)
	d.Dispatch(Event{Type: EnemyDestroyed, Data: EnemyDestroyedData{Score: 100}})
	d.Dispatch(Event{Type: PowerUpPicked})

	assert.Equal(t, []string{"b:EnemyDestroyed", "a:PowerUpPicked"}, log)
}

func TestNilDispatcherIsNoop(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() { d.Dispatch(Event{Type: GameOver}) })
}
