package widget

import "testing"

// TestToggleHandleInput exercises the click handling without a window: the
// hover flag is what Render would have computed from the cursor.
func TestToggleHandleInput(t *testing.T) {
	var fired []bool
	tg := NewToggle("Wireframe", 0, 0, 40, 18, false, func(on bool) { fired = append(fired, on) })

	tg.IsHovered = true
	if !tg.HandleInput(nil, true) {
		t.Fatal("hovered click should be consumed")
	}
	if !tg.IsOn {
		t.Error("hovered click did not flip the toggle on")
	}

	tg.IsHovered = false
	if tg.HandleInput(nil, true) {
		t.Error("click away from the widget should be ignored")
	}

	tg.IsHovered = true
	if tg.HandleInput(nil, false) {
		t.Error("hover without a fresh press should be ignored")
	}

	if len(fired) != 1 || !fired[0] {
		t.Errorf("callback fired with %v, want a single true", fired)
	}
}
