package events

import "testing"

func TestHubPublishReachesSubscriber(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe(nil)
	defer cancel()

	h.Publish("slots", OpInsert)

	ev := <-ch
	if ev.Table != "slots" || ev.Op != OpInsert {
		t.Errorf("event = %+v, want slots/insert", ev)
	}
	if ev.Seq != 1 {
		t.Errorf("seq = %d, want 1", ev.Seq)
	}
}

func TestHubSeqMonotonicAcrossTables(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe(nil)
	defer cancel()

	h.Publish("slots", OpInsert)
	h.Publish("attendance", OpUpdate)
	h.Publish("settings", OpDelete)

	var last uint64
	for i := 0; i < 3; i++ {
		ev := <-ch
		if ev.Seq <= last {
			t.Errorf("seq %d after %d, want strictly increasing", ev.Seq, last)
		}
		last = ev.Seq
	}
}

func TestHubTableFilter(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe([]string{"attendance"})
	defer cancel()

	h.Publish("slots", OpInsert)
	h.Publish("attendance", OpInsert)

	ev := <-ch
	if ev.Table != "attendance" {
		t.Errorf("table = %q, want %q", ev.Table, "attendance")
	}
	select {
	case extra := <-ch:
		t.Errorf("unexpected extra event %+v", extra)
	default:
	}
}

func TestHubCancelStopsDelivery(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe(nil)
	cancel()
	// Idempotent.
	cancel()

	h.Publish("slots", OpInsert)

	if ev, ok := <-ch; ok {
		t.Errorf("got event %+v on cancelled subscription", ev)
	}
}

func TestHubSlowConsumerDropsInsteadOfBlocking(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe(nil)
	defer cancel()

	// Overfill the buffer; Publish must never block.
	for i := 0; i < 40; i++ {
		h.Publish("registrations", OpInsert)
	}

	n := 0
	for {
		select {
		case <-ch:
			n++
			continue
		default:
		}
		break
	}
	if n != cap(ch) {
		t.Errorf("delivered = %d, want buffer size %d", n, cap(ch))
	}
}
