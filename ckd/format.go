// Package ckd implements a decoder and encoder for the cooked (binary)
// encoding of UbiArt tapes, clips and curves.
//
// Every value is big-endian. Each clip begins with a 4-byte magic number
// selecting its kind, followed by a 4-byte size constant that depends only on
// the kind. The size is not a byte count; the decoder checks it as a
// signature of the layout, and fails with a structural mismatch when it
// differs. Strings and lists are prefixed by a 4-byte length.
package ckd

import (
	ubiart "github.com/Kriskras99/ferris-dancing-sub001"
)

// clipFormat describes the binary layout of a clip kind.
type clipFormat struct {
	Kind  ubiart.ClipKind
	Magic uint32
	Size  uint32
}

// Clip kinds in the order of their declaration by the engine.
var clipFormats = []clipFormat{
	{Kind: ubiart.ClipAlpha, Magic: 0x8607D582, Size: 0x2C},
	{Kind: ubiart.ClipColor, Magic: 0xF61B3A75, Size: 0x74},
	{Kind: ubiart.ClipMotion, Magic: 0x955384A1, Size: 0x60},
	{Kind: ubiart.ClipPictogram, Magic: 0x52EC8962, Size: 0x38},
	{Kind: ubiart.ClipTapeReference, Magic: 0x0E1E8158, Size: 0x2C},
	{Kind: ubiart.ClipSpawnActor, Magic: 0xA247B5D3, Size: 0x60},
	{Kind: ubiart.ClipGoldEffect, Magic: 0xFD69B110, Size: 0x1C},
	{Kind: ubiart.ClipKaraoke, Magic: 0x68552A41, Size: 0x48},
	{Kind: ubiart.ClipSoundSet, Magic: 0x2D8C885B, Size: 0x38},
	{Kind: ubiart.ClipHideUserInterface, Magic: 0x52E06A9A, Size: 0x30},
	{Kind: ubiart.ClipGameplayEvent, Magic: 0xC0AC5326, Size: 0x30},
	{Kind: ubiart.ClipVibration, Magic: 0x1C91E431, Size: 0x40},
	{Kind: ubiart.ClipTranslation, Magic: 0x36A3CB72, Size: 0x68},
	{Kind: ubiart.ClipRotation, Magic: 0x3FE6CFAB, Size: 0x68},
	{Kind: ubiart.ClipSize, Magic: 0x393EA0C0, Size: 0x4C},
	{Kind: ubiart.ClipProportion, Magic: 0x4D7A4F26, Size: 0x4C},
	{Kind: ubiart.ClipText, Magic: 0x6C7AF7E4, Size: 0x38},
	{Kind: ubiart.ClipTextAreaSize, Magic: 0xD3BD9CF4, Size: 0x84},
	{Kind: ubiart.ClipMaterialGraphicDiffuseAlpha, Magic: 0x500D33C5, Size: 0x38},
	{Kind: ubiart.ClipMaterialGraphicDiffuseColor, Magic: 0x9B4A5E3C, Size: 0x70},
	{Kind: ubiart.ClipMaterialGraphicUVTranslation, Magic: 0xF0A1A23B, Size: 0x54},
	{Kind: ubiart.ClipMaterialGraphicUVRotation, Magic: 0x2FC3D4B8, Size: 0x38},
	{Kind: ubiart.ClipTapeLauncher, Magic: 0x0CEA1A7F, Size: 0x30},
	{Kind: ubiart.ClipFX, Magic: 0x9D3C3D5A, Size: 0x30},
	{Kind: ubiart.ClipSlot, Magic: 0x7A9A2F2B, Size: 0x34},
	{Kind: ubiart.ClipCommunityDancer, Magic: 0x3D89FFB4, Size: 0x34},
}

// Clip kinds known by magic whose layout is not implemented.
var unsupportedClips = map[uint32]string{
	0x1A3C5C3D: "SoundwichClip",
	0x7B0C0C52: "SoundwichComboClip",
	0xBC52A1F3: "MaterialGraphicUVScaleClip",
	0xE9BC7C0D: "LipSyncClip",
}

var (
	formatByMagic = map[uint32]clipFormat{}
	formatByKind  = map[ubiart.ClipKind]clipFormat{}
)

func init() {
	for _, f := range clipFormats {
		formatByMagic[f.Magic] = f
		formatByKind[f.Kind] = f
	}
}

// Magic returns the magic number of a clip kind, and whether the kind has a
// binary layout.
func Magic(kind ubiart.ClipKind) (magic uint32, ok bool) {
	f, ok := formatByKind[kind]
	return f.Magic, ok
}

// KindOf returns the clip kind of a magic number, or ClipInvalid.
func KindOf(magic uint32) ubiart.ClipKind {
	return formatByMagic[magic].Kind
}

// Curve discriminants and size constants.
const (
	curveEmpty    uint32 = 0xFFFFFFFF
	curveConstant uint32 = 0xB7914191
	curveLinear   uint32 = 0x4DE6D871
	curveMulti    uint32 = 0xE2BC4FB2

	sizeConstant uint32 = 0x08
	sizeLinear   uint32 = 0x24
	sizeMulti    uint32 = 0x10
	sizeKey      uint32 = 0x1C
)

// tapeVersion begins every cooked tape.
const tapeVersion = 1
