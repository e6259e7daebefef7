package lighting

// Buffer holds scene lights packed for uniform-array upload. Capacity is
// fixed at MaxLights; extra lights are dropped on add.
type Buffer struct {
	Lights []Light
}

// NewBuffer creates an empty light buffer.
func NewBuffer() *Buffer {
	return &Buffer{Lights: make([]Light, 0, MaxLights)}
}

// Count returns the number of lights in the buffer.
func (b *Buffer) Count() int32 { return int32(len(b.Lights)) }

// Clear removes all lights.
func (b *Buffer) Clear() { b.Lights = b.Lights[:0] }

// Add appends a light. Returns false when the buffer is full.
func (b *Buffer) Add(l Light) bool {
	if len(b.Lights) >= MaxLights {
		return false
	}
	b.Lights = append(b.Lights, l)
	return true
}

// SetLights replaces the buffer contents, truncating to MaxLights.
func (b *Buffer) SetLights(lights []Light) {
	b.Clear()
	n := len(lights)
	if n > MaxLights {
		n = MaxLights
	}
	b.Lights = append(b.Lights, lights[:n]...)
}

// Types returns light types as a flat int32 slice sized MaxLights.
func (b *Buffer) Types() []int32 {
	out := make([]int32, MaxLights)
	for i, l := range b.Lights {
		out[i] = int32(l.Type)
	}
	return out
}

// Directions returns directions as a flat float32 slice: x0 y0 z0 x1 ...
func (b *Buffer) Directions() []float32 {
	out := make([]float32, MaxLights*3)
	for i, l := range b.Lights {
		out[i*3+0] = l.Direction.X()
		out[i*3+1] = l.Direction.Y()
		out[i*3+2] = l.Direction.Z()
	}
	return out
}

// Positions returns positions as a flat float32 slice.
func (b *Buffer) Positions() []float32 {
	out := make([]float32, MaxLights*3)
	for i, l := range b.Lights {
		out[i*3+0] = l.Position.X()
		out[i*3+1] = l.Position.Y()
		out[i*3+2] = l.Position.Z()
	}
	return out
}

// Colors returns colors as a flat float32 slice.
func (b *Buffer) Colors() []float32 {
	out := make([]float32, MaxLights*3)
	for i, l := range b.Lights {
		out[i*3+0] = l.Color.X()
		out[i*3+1] = l.Color.Y()
		out[i*3+2] = l.Color.Z()
	}
	return out
}

// Intensities returns intensities as a flat float32 slice.
func (b *Buffer) Intensities() []float32 {
	out := make([]float32, MaxLights)
	for i, l := range b.Lights {
		out[i] = l.Intensity
	}
	return out
}

// Ranges returns falloff ranges as a flat float32 slice.
func (b *Buffer) Ranges() []float32 {
	out := make([]float32, MaxLights)
	for i, l := range b.Lights {
		out[i] = l.Range
	}
	return out
}
