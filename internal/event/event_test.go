package event

import (
	"testing"
)

type recorder struct {
	name  string
	calls *[]string
	reply bool
}

func (r recorder) OnEvent(e Event) bool {
	*r.calls = append(*r.calls, r.name+":"+string(e.Name))
	return r.reply
}

func TestPublishBroadcastsInRegistrationOrder(t *testing.T) {
	bus := NewBus()
	var calls []string
	bus.Subscribe("b", recorder{name: "b", calls: &calls, reply: true})
	bus.Subscribe("a", recorder{name: "a", calls: &calls, reply: true})
	bus.Subscribe("c", recorder{name: "c", calls: &calls, reply: false})

	bus.Publish(New(EnemyDied, nil))

	want := []string{"b:enemy_died", "a:enemy_died", "c:enemy_died"}
	if len(calls) != len(want) {
		t.Fatalf("Expected %d calls, got %d: %v", len(want), len(calls), calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("Call %d: expected %s, got %s", i, want[i], calls[i])
		}
	}
}

func TestPublishAssignsID(t *testing.T) {
	bus := NewBus()
	var seen string
	bus.Subscribe("x", HandlerFunc(func(e Event) bool {
		seen = e.ID
		return true
	}))

	first := bus.Publish(New(SpawnEnemy, nil))
	if first.ID == "" || seen != first.ID {
		t.Errorf("Expected generated id to reach subscribers, got %q / %q", first.ID, seen)
	}
	second := bus.Publish(New(SpawnEnemy, nil))
	if second.ID == first.ID {
		t.Errorf("Expected unique ids, got %q twice", first.ID)
	}
	kept := bus.Publish(Event{Name: SpawnEnemy, ID: "fixed"})
	if kept.ID != "fixed" {
		t.Errorf("Expected existing id to be kept, got %q", kept.ID)
	}
}

func TestPublishWithoutSubscribers(t *testing.T) {
	bus := NewBus()
	e := bus.Publish(New(EnemyEscaped, Args{ArgDamage: 3}))
	if e.ID == "" {
		t.Errorf("Expected id even without subscribers")
	}
}

func TestUnsubscribe(t *testing.T) {
	bus := NewBus()
	count := 0
	bus.Subscribe("x", HandlerFunc(func(Event) bool { count++; return true }))
	if !bus.Unsubscribe("x") {
		t.Errorf("Expected Unsubscribe to report removal")
	}
	if bus.Unsubscribe("x") {
		t.Errorf("Expected second Unsubscribe to report nothing removed")
	}
	bus.Publish(New(EnemyDied, nil))
	if count != 0 {
		t.Errorf("Expected no calls after unsubscribe, got %d", count)
	}
	if bus.Len() != 0 {
		t.Errorf("Expected empty bus, got %d", bus.Len())
	}
}

func TestSubscribeReplaceKeepsPosition(t *testing.T) {
	bus := NewBus()
	var calls []string
	bus.Subscribe("first", recorder{name: "old", calls: &calls})
	bus.Subscribe("second", recorder{name: "second", calls: &calls})
	bus.Subscribe("first", recorder{name: "new", calls: &calls})

	bus.Publish(New(TowerPlaced, nil))
	if len(calls) != 2 || calls[0] != "new:tower_placed" || calls[1] != "second:tower_placed" {
		t.Errorf("Expected replaced handler in original slot, got %v", calls)
	}
}

func TestNestedPublishCompletesBeforeReturn(t *testing.T) {
	bus := NewBus()
	var order []string
	bus.Subscribe("relay", HandlerFunc(func(e Event) bool {
		if e.Name == EnemyDied {
			order = append(order, "relay:start")
			bus.Publish(New(AddCombatText, nil))
			order = append(order, "relay:end")
			return true
		}
		return false
	}))
	bus.Subscribe("sink", HandlerFunc(func(e Event) bool {
		order = append(order, "sink:"+string(e.Name))
		return true
	}))

	bus.Publish(New(EnemyDied, nil))

	want := []string{"relay:start", "sink:add_combat_text", "relay:end", "sink:enemy_died"}
	if len(order) != len(want) {
		t.Fatalf("Expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Step %d: expected %s, got %s", i, want[i], order[i])
		}
	}
}

func TestSubscribeDuringPublishAppliesNextTime(t *testing.T) {
	bus := NewBus()
	late := 0
	bus.Subscribe("adder", HandlerFunc(func(Event) bool {
		bus.Subscribe("late", HandlerFunc(func(Event) bool { late++; return true }))
		return true
	}))
	bus.Publish(New(TowerPlaced, nil))
	if late != 0 {
		t.Errorf("Expected late subscriber to miss the in-flight event, got %d calls", late)
	}
	bus.Publish(New(TowerPlaced, nil))
	if late != 1 {
		t.Errorf("Expected late subscriber on next publish, got %d calls", late)
	}
}

func TestUnsubscribeDuringPublishAppliesNextTime(t *testing.T) {
	bus := NewBus()
	var calls []string
	bus.Subscribe("remover", HandlerFunc(func(Event) bool {
		bus.Unsubscribe("victim")
		bus.Subscribe("swapped", HandlerFunc(func(Event) bool { calls = append(calls, "new-swapped"); return true }))
		return true
	}))
	bus.Subscribe("victim", recorder{name: "victim", calls: &calls})
	bus.Subscribe("swapped", recorder{name: "old-swapped", calls: &calls})

	bus.Publish(New(TowerPlaced, nil))
	want := []string{"victim:tower_placed", "old-swapped:tower_placed"}
	if len(calls) != len(want) || calls[0] != want[0] || calls[1] != want[1] {
		t.Fatalf("Expected in-flight publish to use the subscribers it started with %v, got %v", want, calls)
	}

	calls = nil
	bus.Publish(New(TowerPlaced, nil))
	if len(calls) != 1 || calls[0] != "new-swapped" {
		t.Errorf("Expected only the replacement on the next publish, got %v", calls)
	}
}

func TestGet(t *testing.T) {
	e := New(WaveNumberChanged, Args{ArgWaveNumber: 4})
	if n, ok := Get[int](e, ArgWaveNumber); !ok || n != 4 {
		t.Errorf("Expected 4, got %d (%v)", n, ok)
	}
	if _, ok := Get[string](e, ArgWaveNumber); ok {
		t.Errorf("Expected type mismatch to fail")
	}
	if _, ok := Get[int](New(WaveNumberChanged, nil), ArgWaveNumber); ok {
		t.Errorf("Expected missing args to fail")
	}
}
