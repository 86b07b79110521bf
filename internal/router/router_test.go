package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/arjun/mcqgen/internal/screen"
)

// fakeScreen records lifecycle calls so tests can observe routing.
type fakeScreen struct {
	name    string
	inits   int
	lastMsg tea.Msg
}

func (f *fakeScreen) Init() tea.Cmd {
	f.inits++
	return nil
}

func (f *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	f.lastMsg = msg
	return f, nil
}

func (f *fakeScreen) View(int, int) string { return "[" + f.name + "]" }
func (f *fakeScreen) Title() string        { return f.name }

func TestPushAndPop(t *testing.T) {
	home := &fakeScreen{name: "home"}
	detail := &fakeScreen{name: "detail"}
	r := New(home)

	r.Push(detail)
	if got := r.Depth(); got != 2 {
		t.Fatalf("Depth() = %d, want 2", got)
	}
	if r.Active() != screen.Screen(detail) {
		t.Fatalf("Active() = %s, want detail", r.Active().Title())
	}
	if detail.inits != 1 {
		t.Errorf("pushed screen Init ran %d times, want 1", detail.inits)
	}

	r.Pop()
	if r.Active() != screen.Screen(home) {
		t.Fatalf("Active() after pop = %s, want home", r.Active().Title())
	}
}

func TestPopKeepsBottomScreen(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)

	r.Pop()
	if got := r.Depth(); got != 1 {
		t.Fatalf("Depth() after popping bottom = %d, want 1", got)
	}
}

func TestUpdateForwardsToActiveScreen(t *testing.T) {
	home := &fakeScreen{name: "home"}
	detail := &fakeScreen{name: "detail"}
	r := New(home)
	r.Push(detail)

	r.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})

	key, ok := detail.lastMsg.(tea.KeyPressMsg)
	if !ok || key.Text != "j" {
		t.Errorf("active screen saw %v, want the j key press", detail.lastMsg)
	}
	if home.lastMsg != nil {
		t.Errorf("buried screen saw %v, want nothing", home.lastMsg)
	}
}

func TestNavigationMessages(t *testing.T) {
	home := &fakeScreen{name: "home"}
	detail := &fakeScreen{name: "detail"}
	r := New(home)

	r.Update(PushScreenMsg{Screen: detail})
	if r.Active() != screen.Screen(detail) {
		t.Fatalf("Active() after PushScreenMsg = %s, want detail", r.Active().Title())
	}
	if detail.inits != 1 {
		t.Errorf("Init ran %d times, want 1", detail.inits)
	}

	r.Update(PopScreenMsg{})
	if r.Active() != screen.Screen(home) {
		t.Fatalf("Active() after PopScreenMsg = %s, want home", r.Active().Title())
	}
	if home.lastMsg != nil || detail.lastMsg != nil {
		t.Error("navigation message leaked to a screen")
	}
}

func TestViewRendersActiveScreen(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	r.Push(&fakeScreen{name: "detail"})

	if got := r.View(80, 24); got != "[detail]" {
		t.Errorf("View() = %q, want %q", got, "[detail]")
	}
}
