// Package plan stores install plans as HCL files.
//
//	copy {
//	  source      = "Mods/Foo/skin.ini"
//	  destination = "3dmigoto/Mods/Mods/Foo/skin.ini"
//	}
//
//	generatefile {
//	  destination = "3dmigoto/d3dx.ini"
//	  data        = "[Loader]\nlaunch = ..."
//	}
package plan

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/tie/gimi/models"
)

type File struct {
	Copies    []Copy         `hcl:"copy,block"`
	Generated []GenerateFile `hcl:"generatefile,block"`
}

type Copy struct {
	Source      string `hcl:"source,attr"`
	Destination string `hcl:"destination,attr"`
}

type GenerateFile struct {
	Destination string `hcl:"destination,attr"`
	Data        string `hcl:"data,attr"`
}

// Writer appends plan instructions to an HCL body.
type Writer struct {
	*hclwrite.Body
	Length int
}

func (w *Writer) Add(i models.Instruction) error {
	var block *hclwrite.Block
	switch i.Type {
	case models.TypeCopy:
		block = hclwrite.NewBlock("copy", nil)
		src := cty.StringVal(i.Source)
		dst := cty.StringVal(i.Destination)
		block.Body().SetAttributeValue("source", src)
		block.Body().SetAttributeValue("destination", dst)
	case models.TypeGenerateFile:
		block = hclwrite.NewBlock("generatefile", nil)
		dst := cty.StringVal(i.Destination)
		data := cty.StringVal(string(i.Data))
		block.Body().SetAttributeValue("destination", dst)
		block.Body().SetAttributeValue("data", data)
	default:
		return fmt.Errorf("%q: %w", i.Type, models.ErrUnknownInstruction)
	}
	if w.Length > 0 {
		w.AppendNewline()
	}
	w.Length++
	w.AppendBlock(block)
	return nil
}

func Encode(p models.Plan) ([]byte, error) {
	f := hclwrite.NewEmptyFile()
	w := Writer{Body: f.Body()}
	for _, i := range p {
		if err := w.Add(i); err != nil {
			return nil, err
		}
	}
	return f.Bytes(), nil
}

// Decode parses a plan file. Copies come back before generated files,
// which is the only order plans are built in.
func Decode(parser *hclparse.Parser, src []byte, filename string) (models.Plan, hcl.Diagnostics) {
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diags
	}

	var f File
	decodeDiags := gohcl.DecodeBody(file.Body, nil, &f)
	diags = append(diags, decodeDiags...)
	if diags.HasErrors() {
		return nil, diags
	}

	p := make(models.Plan, 0, len(f.Copies)+len(f.Generated))
	for _, c := range f.Copies {
		p = append(p, models.Copy(c.Source, c.Destination))
	}
	for _, g := range f.Generated {
		p = append(p, models.GenerateFile(g.Destination, []byte(g.Data)))
	}
	return p, diags
}
