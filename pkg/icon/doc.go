// Package icon draws the Save2MD toolbar icon at arbitrary pixel sizes.
//
// An icon is a blue rounded-rectangle document with a white page inset into
// it. Sizes at or above [TextThreshold] carry an "MD" label and a green
// download arrow in the bottom-right of the page; smaller sizes carry three
// short strokes that suggest lines of text instead.
//
// All geometry is an integer function of the edge length, computed by
// [NewSpec]. Rendering is deterministic for a given size, palette and font.
//
// # Usage
//
//	r := icon.NewRenderer(icon.DefaultPalette(), fonts.NewLoader(logger), logger)
//	ic, err := r.Render(128)
//	if err != nil {
//	    return err
//	}
//	data, err := icon.Encode(ic.Image)
package icon
