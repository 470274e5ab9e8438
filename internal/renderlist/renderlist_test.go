package renderlist

import (
	"testing"

	"github.com/bigfoot71/pixelforge/internal/geometry"
	"github.com/bigfoot71/pixelforge/internal/lighting"
	"github.com/bigfoot71/pixelforge/internal/mathkernel"
	"github.com/bigfoot71/pixelforge/internal/pixelcodec"
)

func triangleCall() DrawCall {
	return DrawCall{
		Mode:          geometry.Triangles,
		FrontMaterial: lighting.DefaultMaterial(),
		BackMaterial:  lighting.DefaultMaterial(),
		Positions:     []mathkernel.Vec4{{}, {}, {}},
		TexCoords:     []mathkernel.Vec2{{}, {}, {}},
		Normals:       []mathkernel.Vec3{{}, {}, {}},
		Colors:        []pixelcodec.Color{{}, {}, {}},
	}
}

func TestNewListThenAppendThenEndList(t *testing.T) {
	tbl := NewTable()
	backup := Backup{Color: pixelcodec.Color{R: 1}}

	if err := tbl.NewList(1, backup); err != nil {
		t.Fatalf("NewList: %v", err)
	}
	if h, open := tbl.Recording(); !open || h != 1 {
		t.Fatalf("Recording() = (%v, %v), want (1, true)", h, open)
	}

	if err := tbl.Append(triangleCall()); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := tbl.EndList()
	if err != nil {
		t.Fatalf("EndList: %v", err)
	}
	if got != backup {
		t.Fatalf("EndList backup = %+v, want %+v", got, backup)
	}
	if _, open := tbl.Recording(); open {
		t.Fatal("expected Recording() to report not-open after EndList")
	}

	list, ok := tbl.Get(1)
	if !ok {
		t.Fatal("Get(1) not found")
	}
	if len(list.Calls) != 1 {
		t.Fatalf("len(Calls) = %d, want 1", len(list.Calls))
	}
}

func TestNewListRejectsNesting(t *testing.T) {
	tbl := NewTable()
	if err := tbl.NewList(1, Backup{}); err != nil {
		t.Fatalf("NewList(1): %v", err)
	}
	if err := tbl.NewList(2, Backup{}); err != ErrAlreadyRecording {
		t.Fatalf("NewList(2) while recording = %v, want ErrAlreadyRecording", err)
	}
}

func TestAppendWithoutRecordingFails(t *testing.T) {
	tbl := NewTable()
	if err := tbl.Append(triangleCall()); err != ErrNotRecording {
		t.Fatalf("Append without NewList = %v, want ErrNotRecording", err)
	}
}

func TestEndListWithoutRecordingFails(t *testing.T) {
	tbl := NewTable()
	if _, err := tbl.EndList(); err != ErrNotRecording {
		t.Fatalf("EndList without NewList = %v, want ErrNotRecording", err)
	}
}

func TestAppendRejectsMismatchedSequenceLengths(t *testing.T) {
	tbl := NewTable()
	if err := tbl.NewList(1, Backup{}); err != nil {
		t.Fatalf("NewList: %v", err)
	}
	bad := triangleCall()
	bad.Colors = bad.Colors[:2]
	if err := tbl.Append(bad); err != ErrSequenceLengthMismatch {
		t.Fatalf("Append(bad) = %v, want ErrSequenceLengthMismatch", err)
	}
}

func TestNewListReinitializesExistingHandle(t *testing.T) {
	tbl := NewTable()
	if err := tbl.NewList(1, Backup{}); err != nil {
		t.Fatalf("NewList: %v", err)
	}
	if err := tbl.Append(triangleCall()); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if _, err := tbl.EndList(); err != nil {
		t.Fatalf("EndList: %v", err)
	}

	if err := tbl.NewList(1, Backup{}); err != nil {
		t.Fatalf("NewList (reopen): %v", err)
	}
	list, _ := tbl.Get(1)
	if len(list.Calls) != 0 {
		t.Fatalf("expected reinitialized list to start empty, got %d calls", len(list.Calls))
	}
	if _, err := tbl.EndList(); err != nil {
		t.Fatalf("EndList: %v", err)
	}
}

func TestDeleteRemovesList(t *testing.T) {
	tbl := NewTable()
	tbl.NewList(1, Backup{})
	tbl.EndList()
	tbl.Delete(1)
	if _, ok := tbl.Get(1); ok {
		t.Fatal("expected Get(1) to fail after Delete")
	}
}
