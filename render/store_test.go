package render

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestMemoryStoreUploadDraw(t *testing.T) {
	s := NewMemoryStore()

	verts := []float32{0, 0, 1, 0, 1, 1} // three position vertices
	if err := s.Upload("tri", verts, StridePosition, Triangles); err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if !s.Has("tri") || s.Len() != 1 {
		t.Fatal("buffer not stored")
	}
	if got := s.VertexCount("tri"); got != 3 {
		t.Errorf("VertexCount = %d, want 3", got)
	}
	if got := s.Mode("tri"); got != Triangles {
		t.Errorf("Mode = %v, want Triangles", got)
	}

	// Upload copies; mutating the caller's slice must not leak in.
	verts[0] = 99
	if got := s.Data("tri")[0]; got != 0 {
		t.Errorf("stored data aliases caller slice: got %v", got)
	}

	if err := s.Draw("tri"); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if err := s.Draw("tri"); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if got := s.DrawCount("tri"); got != 2 {
		t.Errorf("DrawCount = %d, want 2", got)
	}
}

func TestMemoryStoreReupload(t *testing.T) {
	s := NewMemoryStore()
	if err := s.Upload("b", []float32{0, 0, 1, 1}, StridePosition, Lines); err != nil {
		t.Fatal(err)
	}
	s.Draw("b")

	// Re-upload replaces data and keeps the key.
	if err := s.Upload("b", make([]float32, 12), StridePositionColor, Triangles); err != nil {
		t.Fatal(err)
	}
	if got := s.VertexCount("b"); got != 2 {
		t.Errorf("VertexCount after reupload = %d, want 2", got)
	}
	if got := s.Mode("b"); got != Triangles {
		t.Errorf("Mode after reupload = %v, want Triangles", got)
	}
}

func TestMemoryStoreErrors(t *testing.T) {
	s := NewMemoryStore()

	if err := s.Upload("bad", []float32{1, 2, 3}, StridePosition, Lines); err == nil {
		t.Error("Upload accepted a partial vertex")
	}
	if err := s.Upload("bad", []float32{1, 2}, 0, Lines); err == nil {
		t.Error("Upload accepted zero stride")
	}
	if err := s.Draw("missing"); err == nil {
		t.Error("Draw of unknown buffer did not fail")
	}

	// Release is idempotent.
	s.Release("missing")
	if err := s.Upload("b", []float32{0, 0}, StridePosition, LineStrip); err != nil {
		t.Fatal(err)
	}
	s.Release("b")
	s.Release("b")
	if s.Has("b") {
		t.Error("Release did not drop buffer")
	}
}

func TestFixedTarget(t *testing.T) {
	target := NewFixedTarget(800, 600)
	if target.Width() != 800 || target.Height() != 600 {
		t.Errorf("target size = %dx%d", target.Width(), target.Height())
	}
	if got := target.Format(); got != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format = %v, want RGBA8Unorm", got)
	}
}

func TestPrimitiveModeString(t *testing.T) {
	tests := []struct {
		mode PrimitiveMode
		want string
	}{
		{mode: Triangles, want: "triangles"},
		{mode: Lines, want: "lines"},
		{mode: LineStrip, want: "line-strip"},
		{mode: PrimitiveMode(99), want: "unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", int(tt.mode), got, tt.want)
		}
	}
}
