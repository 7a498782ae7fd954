package models

import (
	"path"
	"strings"
)

const (
	TypeCopy         = "copy"
	TypeGenerateFile = "generatefile"
)

// Classification is the kind of archive a file list represents.
type Classification int

const (
	Unsupported Classification = iota
	LoaderPackage
	ContentMod
)

func (c Classification) String() string {
	switch c {
	case LoaderPackage:
		return "loader"
	case ContentMod:
		return "content"
	}
	return "unsupported"
}

// Instruction is a single step of an install plan.
type Instruction struct {
	// Type is either TypeCopy or TypeGenerateFile.
	Type string

	// Source is the archive-relative path of a copied file.
	// Empty for generated files.
	Source string

	// Destination is relative to the mod install root.
	Destination string

	// Data is the content of a generated file.
	Data []byte
}

func Copy(source, destination string) Instruction {
	return Instruction{
		Type:        TypeCopy,
		Source:      source,
		Destination: destination,
	}
}

func GenerateFile(destination string, data []byte) Instruction {
	return Instruction{
		Type:        TypeGenerateFile,
		Destination: destination,
		Data:        data,
	}
}

// Plan is an ordered list of instructions. Copy instructions
// always precede generated files.
type Plan []Instruction

// Copies returns copy instructions in plan order.
func (p Plan) Copies() []Instruction {
	var out []Instruction
	for _, i := range p {
		if i.Type == TypeCopy {
			out = append(out, i)
		}
	}
	return out
}

// TestResult is returned by installer tests.
type TestResult struct {
	Supported     bool
	RequiredFiles []string
}

// SlashPath converts both Windows and Unix separators to slashes.
// Archive listings from the host may use either.
func SlashPath(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// IsDirMarker reports whether the archive entry represents a directory.
func IsDirMarker(p string) bool {
	l := len(p)
	if l <= 0 {
		return false
	}
	return p[l-1] == '/' || p[l-1] == '\\'
}

// Base returns the last element of an archive path.
func Base(p string) string {
	return path.Base(SlashPath(p))
}

// Dir returns the containing directory of an archive path,
// or an empty string for top-level entries.
func Dir(p string) string {
	d := path.Dir(SlashPath(p))
	if d == "." {
		return ""
	}
	return d
}

// Ext returns the lower-cased extension of an archive path.
func Ext(p string) string {
	return strings.ToLower(path.Ext(SlashPath(p)))
}

// Under reports whether the archive path p lives beneath root.
// An empty root contains everything.
func Under(p, root string) bool {
	if root == "" {
		return true
	}
	sp := strings.ToLower(SlashPath(p))
	r := strings.ToLower(SlashPath(root))
	return strings.HasPrefix(sp, r+"/")
}

// Escapes reports whether a relative destination would leave its root.
func Escapes(dst string) bool {
	d := SlashPath(dst)
	if path.IsAbs(d) {
		return true
	}
	// Drive-qualified Windows paths.
	if len(d) >= 2 && d[1] == ':' {
		return true
	}
	for _, elem := range strings.Split(d, "/") {
		if elem == ".." {
			return true
		}
	}
	return false
}
