package platform

import "testing"

func TestLoopRunsPostsInOrder(t *testing.T) {
	l := NewLoop()
	var got []int
	for i := 1; i <= 3; i++ {
		i := i
		l.Post(func() { got = append(got, i) })
	}
	l.Post(l.Quit)
	l.Run()
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("got %v", got)
	}
}

func TestLoopNestedPump(t *testing.T) {
	l := NewLoop()
	var order []string
	l.Post(func() {
		order = append(order, "outer")
		inner := false
		l.Post(func() {
			order = append(order, "inner")
			inner = true
		})
		// The nested pump dispatches the inner post before returning.
		l.RunNested(func() bool { return inner })
		order = append(order, "resumed")
		l.Quit()
	})
	l.Run()

	want := []string{"outer", "inner", "resumed"}
	if len(order) != len(want) {
		t.Fatalf("order = %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestLoopCallSync(t *testing.T) {
	l := NewLoop()
	go l.Run()
	defer l.Quit()

	ran := false
	l.CallSync(func() { ran = true })
	if !ran {
		t.Fatalf("CallSync returned before fn ran")
	}
}

func TestLoopQuitStopsNestedPumps(t *testing.T) {
	l := NewLoop()
	l.Post(func() {
		l.Post(l.Quit)
		// Quit must unwind this pump even though its condition never holds.
		l.RunNested(func() bool { return false })
	})
	l.Run()
	if !l.Quitting() {
		t.Fatalf("loop should report quitting")
	}
}
