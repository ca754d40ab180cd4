package main

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"openwater/internal/boat"
	"openwater/internal/graphics/renderer"
	"openwater/internal/input"
)

func setupInputHandlers(window *glfw.Window, r *renderer.Renderer, gameLoop *GameLoop, cam *boat.FollowCamera, im *input.InputManager) {
	// Mouse position drives the orbit camera unless the panel owns the cursor
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if !gameLoop.PanelOpen() {
			cam.HandleMouseMovement(w, xpos, ypos)
		}
	})

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)
	})

	// Scroll zooms the follow camera
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		if !gameLoop.PanelOpen() {
			cam.HandleScroll(yoff)
		}
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})

	// Framebuffer size callback
	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		winW, winH := w.GetSize()
		r.UpdateViewport(winW, winH)
	})

	// Window size callback
	window.SetSizeCallback(func(w *glfw.Window, width, height int) {
		r.UpdateViewport(width, height)
	})
}
