// Package scriptfile stores boxdraw scripts as HCL.
//
// A script file holds exactly one canvas block followed by any number of rect
// blocks, which are drawn in the order they appear:
//
//	canvas {
//	  width      = 7
//	  height     = 5
//	  background = "."
//	}
//
//	rect {
//	  x    = 1
//	  y    = 1
//	  w    = canvas.width - 2
//	  h    = 3
//	  fill = "b"
//	}
//
// Expressions within rect blocks may refer to canvas.width, canvas.height and
// canvas.background.
//
// HCL normalizes strings to NFC, so a glyph like U+212B (Kelvin's Å) can't be
// written as a string. fill_code and background_code give a glyph by its code
// point instead, and Encode uses them for such glyphs.
package scriptfile

import (
	"fmt"
	"os"
	"unicode/utf8"

	"mtoohey.com/boxdraw"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// canvasFile is decoded first, so that the canvas is known when rect
// expressions are evaluated.
type canvasFile struct {
	Canvas canvasBlock `hcl:"canvas,block"`
	Remain hcl.Body    `hcl:",remain"`
}

type canvasBlock struct {
	Width          uint32  `hcl:"width"`
	Height         uint32  `hcl:"height"`
	Background     *string `hcl:"background,optional"`
	BackgroundCode *uint32 `hcl:"background_code,optional"`

	DefRange hcl.Range `hcl:",def_range"`
}

type rectsFile struct {
	Rects []rectBlock `hcl:"rect,block"`
}

type rectBlock struct {
	X        uint32  `hcl:"x"`
	Y        uint32  `hcl:"y"`
	W        uint32  `hcl:"w"`
	H        uint32  `hcl:"h"`
	Fill     *string `hcl:"fill,optional"`
	FillCode *uint32 `hcl:"fill_code,optional"`

	DefRange hcl.Range `hcl:",def_range"`
}

// glyph returns the only rune in s.
func glyph(s string) (rune, bool) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}

	r, _ := utf8.DecodeRuneInString(s)
	return r, true
}

// decodeGlyph returns the glyph given by either the string attribute name or
// its code point counterpart name_code. If neither is set, def is returned
// when present.
func decodeGlyph(name string, s *string, code *uint32, def *rune) (rune, error) {
	switch {
	case s != nil && code != nil:
		return 0, fmt.Errorf("only one of %s and %s_code may be set", name, name)

	case code != nil:
		r := rune(*code)
		if !utf8.ValidRune(r) {
			return 0, fmt.Errorf("%s_code %d is not a valid character", name, *code)
		}
		return r, nil

	case s != nil:
		r, ok := glyph(*s)
		if !ok {
			return 0, fmt.Errorf("%s must be a single character, got %q", name, *s)
		}
		return r, nil

	case def != nil:
		return *def, nil
	}

	return 0, fmt.Errorf("one of %s and %s_code must be set", name, name)
}

// setGlyph sets the attribute name to r, using name_code when r can't be
// stored as a string unchanged.
func setGlyph(body *hclwrite.Body, name string, r rune) {
	if s := string(r); utf8.ValidRune(r) && cty.StringVal(s).AsString() == s {
		body.SetAttributeValue(name, cty.StringVal(s))
		return
	}

	body.SetAttributeValue(name+"_code", cty.NumberIntVal(int64(r)))
}

// Load decodes the script held by src. filename is only used in error
// messages. Commands that don't fit on the canvas are reported as errors.
func Load(filename string, src []byte) (*boxdraw.Script, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse script %s: %w", filename, diags)
	}

	var cf canvasFile
	if diags := gohcl.DecodeBody(file.Body, nil, &cf); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode canvas of %s: %w", filename, diags)
	}

	def := boxdraw.DefaultBackground
	bg, err := decodeGlyph("background", cf.Canvas.Background, cf.Canvas.BackgroundCode, &def)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cf.Canvas.DefRange, err)
	}

	ctx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"canvas": cty.ObjectVal(map[string]cty.Value{
				"width":      cty.NumberUIntVal(uint64(cf.Canvas.Width)),
				"height":     cty.NumberUIntVal(uint64(cf.Canvas.Height)),
				"background": cty.StringVal(string(bg)),
			}),
		},
	}

	var rf rectsFile
	if diags := gohcl.DecodeBody(cf.Remain, ctx, &rf); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode rects of %s: %w", filename, diags)
	}

	s := boxdraw.NewScriptBackgroundCommands(cf.Canvas.Width, cf.Canvas.Height, bg)
	for _, r := range rf.Rects {
		fill, err := decodeGlyph("fill", r.Fill, r.FillCode, nil)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.DefRange, err)
		}

		c := boxdraw.Command{X: r.X, Y: r.Y, W: r.W, H: r.H, Fill: fill}
		if err := s.Validate(c); err != nil {
			return nil, fmt.Errorf("%s: %w", r.DefRange, err)
		}
		s.Append(c)
	}

	return &s, nil
}

// LoadFile reads and decodes the script at path.
func LoadFile(path string) (*boxdraw.Script, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	return Load(path, src)
}

// Encode returns the HCL representation of s, which Load decodes back into an
// equivalent script. Glyphs must be valid characters.
func Encode(s boxdraw.Script) []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	canvas := body.AppendNewBlock("canvas", nil).Body()
	canvas.SetAttributeValue("width", cty.NumberUIntVal(uint64(s.Width)))
	canvas.SetAttributeValue("height", cty.NumberUIntVal(uint64(s.Height)))
	setGlyph(canvas, "background", s.Background)

	for _, c := range s.Commands() {
		body.AppendNewline()
		rect := body.AppendNewBlock("rect", nil).Body()
		rect.SetAttributeValue("x", cty.NumberUIntVal(uint64(c.X)))
		rect.SetAttributeValue("y", cty.NumberUIntVal(uint64(c.Y)))
		rect.SetAttributeValue("w", cty.NumberUIntVal(uint64(c.W)))
		rect.SetAttributeValue("h", cty.NumberUIntVal(uint64(c.H)))
		setGlyph(rect, "fill", c.Fill)
	}

	return hclwrite.Format(f.Bytes())
}
