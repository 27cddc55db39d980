// Package fonts resolves the font face used for icon labels.
//
// Faces are looked up in a fixed order: explicit file paths, then fonts found
// by file name in the platform font directories (via go-findfont), then the Go
// Bold font compiled into the binary, and finally the fixed-size basicfont
// face. Every failed step is logged at debug level and never returned, so
// text rendering always has a face.
package fonts

import (
	"golang.org/x/image/font/gofont/gobold"
)

// DefaultPath is the conventional location of DejaVu Sans Bold on Debian and
// Ubuntu systems.
const DefaultPath = "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"

// DefaultNames are bold sans-serif file names searched for in the platform
// font directories when no explicit path loads.
var DefaultNames = []string{
	"DejaVuSans-Bold.ttf",
	"Arial Bold.ttf",
	"arialbd.ttf",
	"LiberationSans-Bold.ttf",
	"Helvetica-Bold.ttf",
}

// GoBoldTTF returns the embedded Go Bold TrueType data.
func GoBoldTTF() []byte {
	return gobold.TTF
}
