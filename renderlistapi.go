package pixelforge

import (
	"github.com/bigfoot71/pixelforge/internal/renderlist"
	"github.com/bigfoot71/pixelforge/internal/texture"
)

// GenList allocates a fresh render list handle (§4.9 "gen_list").
func (c *Context) GenList() Handle {
	c.nextListHandle++
	return c.nextListHandle
}

// DeleteList frees handle's render list, if any.
func (c *Context) DeleteList(handle Handle) {
	c.lists.Delete(renderlist.Handle(handle))
}

// NewList opens handle for recording, snapshotting the materials, the
// texcoord/normal/color latches, the bound texture, and the enable
// bitset (§4.9 "new_list(handle) ... snapshots the following context
// fields into a backup slot"). Calling NewList while a list is already
// being recorded sets InvalidOperation and leaves the open list
// untouched.
func (c *Context) NewList(handle Handle) {
	backup := renderlist.Backup{
		FrontMaterial: c.materials[0],
		BackMaterial:  c.materials[1],
		TexCoord:      c.currentTexCoord,
		Normal:        c.currentNormal,
		Color:         c.currentColor,
		Texture:       c.boundTexture(),
		Enabled:       uint32(c.enabled),
	}
	if err := c.lists.NewList(renderlist.Handle(handle), backup); err != nil {
		c.setError(InvalidOperation)
	}
}

// EndList closes the list opened by NewList and restores the context
// fields NewList snapshotted (§4.9 "end_list ... restores them").
func (c *Context) EndList() {
	backup, err := c.lists.EndList()
	if err != nil {
		c.setError(InvalidOperation)
		return
	}
	c.restoreBackup(backup)
}

// CallList replays handle's recorded draw calls against the pipeline
// (§4.9 "call_list(handle) replays ... restoring per-call materials and
// texture binding and issuing the recorded primitive draw"), restoring
// the caller's own materials and texture binding once finished so the
// call is observationally side-effect-free on that state.
func (c *Context) CallList(handle Handle) {
	list, ok := c.lists.Get(renderlist.Handle(handle))
	if !ok {
		c.setError(InvalidValue)
		return
	}

	savedFront, savedBack := c.materials[0], c.materials[1]
	savedTex := c.boundTexHandle

	for _, call := range list.Calls {
		c.materials[0] = call.FrontMaterial
		c.materials[1] = call.BackMaterial
		c.bindTextureValue(call.Texture)
		c.executeDrawCall(call)
	}

	c.materials[0], c.materials[1] = savedFront, savedBack
	c.bindTextureHandle(savedTex)
}

// restoreBackup applies a renderlist.Backup to the context, the common
// tail of EndList (§4.9 end_list restore) — call_list instead restores
// only materials/texture per call, handled inline in CallList.
func (c *Context) restoreBackup(b renderlist.Backup) {
	c.materials[0] = b.FrontMaterial
	c.materials[1] = b.BackMaterial
	c.currentTexCoord = b.TexCoord
	c.currentNormal = b.Normal
	c.currentColor = b.Color
	c.bindTextureValue(b.Texture)
	c.enabled = StateBit(b.Enabled)
}

// bindTextureValue rebinds to whichever handle currently maps to tex in
// the texture table, or unbinds if tex is nil or no longer registered —
// render lists and backups carry texture pointers, not handles (§4.9
// Backup is "the renderlist package does not interpret these fields").
func (c *Context) bindTextureValue(tex *texture.Texture) {
	if tex == nil {
		c.boundTexHandle = 0
		return
	}
	for h, t := range c.textures {
		if t == tex {
			c.boundTexHandle = h
			return
		}
	}
	c.boundTexHandle = 0
}

func (c *Context) bindTextureHandle(h Handle) {
	c.boundTexHandle = h
}
