package ui

import (
	"fmt"
	"math"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lunarforge/glint/internal/engine/camera"
	"github.com/lunarforge/glint/internal/engine/scene"
)

// Widget ranges for camera projection parameters. The camera itself
// accepts any value; only the inspector clamps.
const (
	nearClipMin = 0.001
	nearClipMax = 100.0
	farClipMin  = 10.0
	farClipMax  = 1000.0
	fovDegMin   = 0.01
	fovDegMax   = 180.0
)

// ShowInspector renders the scene inspector window with camera and
// entity tabs.
func ShowInspector(state *State, cam *camera.Camera, entities []*scene.Entity) {
	if !state.ShowInspector {
		return
	}

	imgui.SetNextWindowSizeV(imgui.NewVec2(340, 420), imgui.CondFirstUseEver)
	if imgui.BeginV("Scene Inspector", &state.ShowInspector, imgui.WindowFlagsNone) {
		if imgui.BeginTabBar("InspectorTabs") {
			if imgui.BeginTabItem("Camera") {
				editCamera(cam)
				imgui.EndTabItem()
			}
			if imgui.BeginTabItem(fmt.Sprintf("Entities (%d)", len(entities))) {
				editEntities(entities)
				imgui.EndTabItem()
			}
			imgui.EndTabBar()
		}
	}
	imgui.End()
}

func editCamera(cam *camera.Camera) {
	t := cam.Transform()

	pos := vec3ToArray(t.Position())
	if imgui.DragFloat3V("Position", &pos, 0.01, 0, 0, "%.2f", imgui.SliderFlagsNone) {
		t.SetPosition(arrayToVec3(pos))
	}

	pitch, yaw, roll := t.PitchYawRoll()
	rot := [3]float32{pitch, yaw, roll}
	if imgui.DragFloat3V("Rotation", &rot, 0.01, 0, 0, "%.2f", imgui.SliderFlagsNone) {
		t.SetPitchYawRoll(rot[0], rot[1], rot[2])
	}

	imgui.Separator()

	near := cam.NearClip()
	if imgui.DragFloatV("Near clip", &near, 0.01, nearClipMin, nearClipMax, "%.3f", imgui.SliderFlagsNone) {
		cam.SetNearClip(clampf(near, nearClipMin, nearClipMax))
	}

	far := cam.FarClip()
	if imgui.DragFloatV("Far clip", &far, 1.0, farClipMin, farClipMax, "%.1f", imgui.SliderFlagsNone) {
		cam.SetFarClip(clampf(far, farClipMin, farClipMax))
	}

	fovDeg := radToDeg(cam.Fov())
	if imgui.SliderFloatV("FOV", &fovDeg, fovDegMin, fovDegMax, "%.1f deg", imgui.SliderFlagsNone) {
		cam.SetFov(degToRad(clampf(fovDeg, fovDegMin, fovDegMax)))
	}
}

func editEntities(entities []*scene.Entity) {
	for i, e := range entities {
		imgui.PushIDInt(int32(i))
		if imgui.TreeNodeExStrV(e.Name(), imgui.TreeNodeFlagsNone) {
			t := e.Transform()

			pos := vec3ToArray(t.Position())
			if imgui.DragFloat3V("Position", &pos, 0.01, 0, 0, "%.2f", imgui.SliderFlagsNone) {
				t.SetPosition(arrayToVec3(pos))
			}

			pitch, yaw, roll := t.PitchYawRoll()
			rot := [3]float32{pitch, yaw, roll}
			if imgui.DragFloat3V("Rotation", &rot, 0.01, 0, 0, "%.2f", imgui.SliderFlagsNone) {
				t.SetPitchYawRoll(rot[0], rot[1], rot[2])
			}

			scl := vec3ToArray(t.Scale())
			if imgui.DragFloat3V("Scale", &scl, 0.01, 0, 0, "%.2f", imgui.SliderFlagsNone) {
				t.SetScale(arrayToVec3(scl))
			}

			if mesh := e.Mesh(); mesh != nil {
				imgui.Text(fmt.Sprintf("Indices: %d", mesh.IndexCount()))
			}
			if mat := e.Material(); mat != nil {
				imgui.Text(fmt.Sprintf("Material: %s", mat.Name()))
			}
			imgui.TreePop()
		}
		imgui.PopID()
	}
}

func vec3ToArray(v mgl32.Vec3) [3]float32 {
	return [3]float32{v.X(), v.Y(), v.Z()}
}

func arrayToVec3(a [3]float32) mgl32.Vec3 {
	return mgl32.Vec3{a[0], a[1], a[2]}
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func radToDeg(rad float32) float32 {
	return rad * 180 / float32(math.Pi)
}

func degToRad(deg float32) float32 {
	return deg * float32(math.Pi) / 180
}
