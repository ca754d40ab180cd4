package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestKeyEventDrivesAction(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	if !im.IsActive(ActionThrottleUp) {
		t.Fatal("throttle up not active after W press")
	}
	if !im.JustPressed(ActionThrottleUp) {
		t.Fatal("throttle up not edge-detected on press")
	}

	im.PostUpdate()
	if im.JustPressed(ActionThrottleUp) {
		t.Fatal("edge flag survived PostUpdate")
	}
	if !im.IsActive(ActionThrottleUp) {
		t.Fatal("held key went inactive after PostUpdate")
	}

	im.HandleKeyEvent(glfw.KeyW, glfw.Release)
	if im.IsActive(ActionThrottleUp) {
		t.Fatal("throttle up still active after release")
	}
	if !im.JustReleased(ActionThrottleUp) {
		t.Fatal("release edge not detected")
	}
}

func TestMultipleKeysOneAction(t *testing.T) {
	im := NewInputManager()

	// A and Left both steer left by default
	im.HandleKeyEvent(glfw.KeyLeft, glfw.Press)
	if !im.IsActive(ActionSteerLeft) {
		t.Fatal("left arrow did not steer left")
	}
	im.HandleKeyEvent(glfw.KeyLeft, glfw.Release)

	im.HandleKeyEvent(glfw.KeyA, glfw.Press)
	if !im.IsActive(ActionSteerLeft) {
		t.Fatal("A did not steer left")
	}
}

func TestRebinding(t *testing.T) {
	im := NewInputManager()

	im.UnbindKey(glfw.KeyF)
	im.HandleKeyEvent(glfw.KeyF, glfw.Press)
	if im.IsActive(ActionToggleWireframe) {
		t.Fatal("unbound key still drives action")
	}

	im.BindKey(glfw.KeyG, ActionToggleWireframe)
	im.HandleKeyEvent(glfw.KeyG, glfw.Press)
	if !im.IsActive(ActionToggleWireframe) {
		t.Fatal("rebound key does not drive action")
	}
}

func TestOutOfRangeActionIgnored(t *testing.T) {
	im := NewInputManager()

	im.BindKey(glfw.KeyH, Action(-1))
	im.BindKey(glfw.KeyH, ActionCount)
	im.HandleKeyEvent(glfw.KeyH, glfw.Press)

	if im.IsActive(Action(-1)) || im.IsActive(ActionCount) {
		t.Fatal("out-of-range action reported active")
	}
}

func TestMouseButtonAction(t *testing.T) {
	im := NewInputManager()

	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Press)
	if !im.JustPressed(ActionMouseLeft) {
		t.Fatal("left click not edge-detected")
	}
	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Release)
	if im.IsActive(ActionMouseLeft) {
		t.Fatal("left click still active after release")
	}
}
