package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/lunarforge/glint/internal/engine/audio"
)

// ShowStats renders the frame statistics overlay in the top-left corner.
func ShowStats(state *State, au *audio.Manager) {
	if !state.ShowStats {
		return
	}

	imgui.SetNextWindowPos(imgui.NewVec2(10, 10))
	imgui.SetNextWindowSize(imgui.NewVec2(240, 0))
	imgui.SetNextWindowBgAlpha(0.65)

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoSavedSettings | imgui.WindowFlagsNoFocusOnAppearing

	if imgui.BeginV("##Stats", nil, flags) {
		io := imgui.CurrentIO()
		fps := io.Framerate()
		size := io.DisplaySize()

		imgui.Text(fmt.Sprintf("FPS: %.1f", fps))
		imgui.Text(fmt.Sprintf("Frame: %.2f ms", frameMillis(fps)))
		imgui.Text(fmt.Sprintf("Display: %.0f x %.0f", size.X, size.Y))

		imgui.Separator()

		if au != nil {
			muted := au.Muted()
			if imgui.Checkbox("Mute music", &muted) {
				au.SetMuted(muted)
			}
		}
		imgui.Checkbox("ImGui demo", &state.ShowDemo)
	}
	imgui.End()

	if state.ShowDemo {
		imgui.ShowDemoWindowV(&state.ShowDemo)
	}
}

// frameMillis converts an FPS estimate to milliseconds per frame.
func frameMillis(fps float32) float32 {
	if fps <= 0 {
		return 0
	}
	return 1000 / fps
}
