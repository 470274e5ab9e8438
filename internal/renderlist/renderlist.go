// Package renderlist implements the render list of §4.9: an ordered,
// named sequence of draw calls that can be recorded once and replayed
// many times. The teacher (gogpu-gg) has the same shape one layer up —
// recording.Recorder captures typed Command structs into a Recording for
// later Playback to a Backend — generalized here from vector-path/brush
// commands to the one command PixelForge needs: a captured primitive
// draw. The teacher's separate ResourcePool (path/brush/image
// deduplication via reference handles) has no counterpart: a DrawCall's
// attribute sequences are plain value slices, not references into a
// shared pool, since PixelForge attributes are small fixed-size structs
// rather than teacher paths/gradients worth deduplicating.
package renderlist

import (
	"errors"

	"github.com/bigfoot71/pixelforge/internal/geometry"
	"github.com/bigfoot71/pixelforge/internal/lighting"
	"github.com/bigfoot71/pixelforge/internal/mathkernel"
	"github.com/bigfoot71/pixelforge/internal/pixelcodec"
	"github.com/bigfoot71/pixelforge/internal/texture"
)

// Handle identifies a render list, caller-assigned the way gen_texture
// handles are (§4.9 "new_list(handle)").
type Handle uint32

// ErrAlreadyRecording is returned by NewList when a different list is
// already being recorded (§4.9 "Nested recording is not supported;
// calling new_list while recording sets InvalidOperation").
var ErrAlreadyRecording = errors.New("renderlist: a list is already being recorded")

// ErrNotRecording is returned by Append and EndList when no list is
// currently being recorded.
var ErrNotRecording = errors.New("renderlist: no list is being recorded")

// ErrSequenceLengthMismatch is returned when a DrawCall's four parallel
// attribute sequences do not all have the same length (§4.9 invariant).
var ErrSequenceLengthMismatch = errors.New("renderlist: attribute sequences must have equal length")

// DrawCall is one captured primitive draw: the draw mode, the bound
// texture, both face materials, and the four parallel per-vertex
// attribute sequences (§3 Render list). Positions/TexCoords/Normals/
// Colors must all have the same length.
type DrawCall struct {
	Mode DrawMode

	Texture *texture.Texture

	FrontMaterial lighting.Material
	BackMaterial  lighting.Material
	LightModel    lighting.Model

	Positions []mathkernel.Vec4
	TexCoords []mathkernel.Vec2
	Normals   []mathkernel.Vec3
	Colors    []pixelcodec.Color
}

// DrawMode is an alias so callers of this package don't need to import
// internal/geometry just to build a DrawCall.
type DrawMode = geometry.DrawMode

// Validate checks the equal-length invariant on d's four attribute
// sequences.
func (d DrawCall) Validate() error {
	n := len(d.Positions)
	if len(d.TexCoords) != n || len(d.Normals) != n || len(d.Colors) != n {
		return ErrSequenceLengthMismatch
	}
	return nil
}

// Backup is the context state new_list snapshots and end_list
// restores: both face materials, the current texcoord/normal/color
// latches, the bound texture, and the enable bitset (§4.9 "new_list...
// snapshots the following context fields into a backup slot"). The
// renderlist package does not interpret these fields — it only carries
// them for the caller (the root context) to apply.
type Backup struct {
	FrontMaterial lighting.Material
	BackMaterial  lighting.Material
	TexCoord      mathkernel.Vec2
	Normal        mathkernel.Vec3
	Color         pixelcodec.Color
	Texture       *texture.Texture
	Enabled       uint32
}

// List is one named render list: its recorded calls plus the backup
// captured at new_list time. A List is immutable after EndList until the
// next NewList targeting the same handle (§4.9 invariant).
type List struct {
	Calls  []DrawCall
	backup Backup
	open   bool
}

// Backup returns the context snapshot captured when this list was opened.
func (l *List) Backup() Backup { return l.backup }

// Table owns every render list a context has created, plus the single
// recording-in-progress slot (§4.9 "Nested recording is not supported").
type Table struct {
	lists     map[Handle]*List
	recording Handle
	isOpen    bool
}

// NewTable returns an empty render list table.
func NewTable() *Table {
	return &Table{lists: make(map[Handle]*List)}
}

// NewList begins recording into the list named by h, (re)initializing it
// and storing backup for the eventual EndList restore. It fails
// with ErrAlreadyRecording if another list is currently open.
func (t *Table) NewList(h Handle, backup Backup) error {
	if t.isOpen {
		return ErrAlreadyRecording
	}
	t.lists[h] = &List{backup: backup, open: true}
	t.recording = h
	t.isOpen = true
	return nil
}

// Recording reports the handle currently being recorded, if any.
func (t *Table) Recording() (Handle, bool) {
	return t.recording, t.isOpen
}

// Append records call into the list currently being recorded.
func (t *Table) Append(call DrawCall) error {
	if !t.isOpen {
		return ErrNotRecording
	}
	if err := call.Validate(); err != nil {
		return err
	}
	l := t.lists[t.recording]
	l.Calls = append(l.Calls, call)
	return nil
}

// EndList stops recording, marks the list immutable, and returns the
// backup the caller should now restore.
func (t *Table) EndList() (Backup, error) {
	if !t.isOpen {
		return Backup{}, ErrNotRecording
	}
	l := t.lists[t.recording]
	l.open = false
	t.isOpen = false
	t.recording = 0
	return l.backup, nil
}

// Get returns the list for h, or nil if h has never been recorded.
func (t *Table) Get(h Handle) (*List, bool) {
	l, ok := t.lists[h]
	return l, ok
}

// Delete removes the list for h.
func (t *Table) Delete(h Handle) {
	delete(t.lists, h)
}
