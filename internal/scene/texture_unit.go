package scene

import "github.com/go-gl/mathgl/mgl32"

// Texture environment values, numerically identical to the OpenGL ES 1.1
// enums so shaders written against fixed-function combiners can compare
// them directly.
const (
	TexModeReplace  int32 = 0x1E01
	TexModeModulate int32 = 0x2100
	TexModeDecal    int32 = 0x2101
	TexModeBlend    int32 = 0x0BE2
	TexModeAdd      int32 = 0x0104
	TexModeCombine  int32 = 0x8570

	CombineReplace     int32 = 0x1E01
	CombineModulate    int32 = 0x2100
	CombineAdd         int32 = 0x0104
	CombineAddSigned   int32 = 0x8574
	CombineInterpolate int32 = 0x8575
	CombineSubtract    int32 = 0x84E7
	CombineDot3RGB     int32 = 0x86AE
	CombineDot3RGBA    int32 = 0x86AF

	SourceTexture      int32 = 0x1702
	SourceConstant     int32 = 0x8576
	SourcePrimaryColor int32 = 0x8577
	SourcePrevious     int32 = 0x8578

	OperandSrcColor         int32 = 0x0300
	OperandOneMinusSrcColor int32 = 0x0301
	OperandSrcAlpha         int32 = 0x0302
	OperandOneMinusSrcAlpha int32 = 0x0303
)

// TextureUnit is the combiner configuration of one texture unit.
type TextureUnit struct {
	TextureID     uint32
	Mode          int32
	ConstantColor mgl32.Vec4

	CombineRGB   int32
	SourceRGB    [3]int32
	OperandRGB   [3]int32
	CombineAlpha int32
	SourceAlpha  [3]int32
	OperandAlpha [3]int32
}

// InertTextureUnit returns the OpenGL defaults for a texture unit. They are
// used for units a shader declares beyond those bound in the scene.
func InertTextureUnit() TextureUnit { return inertTextureUnit }

var inertTextureUnit = TextureUnit{
	Mode:         TexModeModulate,
	CombineRGB:   CombineModulate,
	SourceRGB:    [3]int32{SourceTexture, SourcePrevious, SourceConstant},
	OperandRGB:   [3]int32{OperandSrcColor, OperandSrcColor, OperandSrcAlpha},
	CombineAlpha: CombineModulate,
	SourceAlpha:  [3]int32{SourceTexture, SourcePrevious, SourceConstant},
	OperandAlpha: [3]int32{OperandSrcAlpha, OperandSrcAlpha, OperandSrcAlpha},
}

// NewTextureUnit returns a unit with default combiner state bound to texture id.
func NewTextureUnit(id uint32) *TextureUnit {
	tu := InertTextureUnit()
	tu.TextureID = id
	return &tu
}
