package editor

import (
	"fmt"
	"log"
	"strings"

	"github.com/unidoc/unioffice/color"
	"github.com/unidoc/unioffice/measurement"

	"github.com/louisbranch/docsmith/internal/platform/errors"
)

const defaultParagraphStyle = "Normal (default)"

// ParagraphInfo summarizes an appended paragraph for the caller. It is a
// transient description, not stored state.
type ParagraphInfo struct {
	Text  string
	Style string
}

// HeadingInfo summarizes an appended heading.
type HeadingInfo struct {
	Text  string
	Level int
}

// TextRun is one contiguous span of styled text inside a paragraph.
// FontColorRGB is an R,G,B triple in 0-255; malformed triples are skipped
// with a logged warning rather than failing the paragraph.
type TextRun struct {
	Text         string
	Bold         bool
	Italic       bool
	FontSizePt   *float64
	FontName     string
	FontColorRGB []int
}

// AddParagraph appends a paragraph with an optional named style. Unknown
// style names fail with STYLE_UNKNOWN.
func (e *Editor) AddParagraph(text, style string) (ParagraphInfo, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireDocument(); err != nil {
		return ParagraphInfo{}, err
	}

	applied := defaultParagraphStyle
	styleID := ""
	if style != "" {
		resolved, err := resolveParagraphStyle(e.doc, style)
		if err != nil {
			return ParagraphInfo{}, err
		}
		styleID = resolved
		applied = style
	}

	para := e.doc.AddParagraph()
	if styleID != "" {
		para.SetStyle(styleID)
	}
	para.AddRun().AddText(text)
	return ParagraphInfo{Text: text, Style: applied}, nil
}

// AddHeading appends a heading at the given level. Level 0 is the document
// title; levels 1-9 map to the built-in heading styles.
func (e *Editor) AddHeading(text string, level int) (HeadingInfo, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireDocument(); err != nil {
		return HeadingInfo{}, err
	}
	if level < 0 || level > 9 {
		return HeadingInfo{}, errors.WithMetadata(errors.CodeHeadingLevelInvalid,
			"heading level must be between 0 and 9",
			map[string]string{"level": fmt.Sprintf("%d", level)})
	}

	styleID := "Title"
	if level > 0 {
		styleID = fmt.Sprintf("Heading%d", level)
	}
	para := e.doc.AddParagraph()
	para.SetStyle(styleID)
	para.AddRun().AddText(text)
	return HeadingInfo{Text: text, Level: level}, nil
}

// AddStyledParagraph appends one paragraph built from an ordered sequence of
// text runs and returns the concatenated run text.
func (e *Editor) AddStyledParagraph(runs []TextRun, paragraphStyle string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireDocument(); err != nil {
		return "", err
	}

	styleID := ""
	if paragraphStyle != "" {
		resolved, err := resolveParagraphStyle(e.doc, paragraphStyle)
		if err != nil {
			return "", err
		}
		styleID = resolved
	}

	para := e.doc.AddParagraph()
	if styleID != "" {
		para.SetStyle(styleID)
	}

	var full strings.Builder
	for _, tr := range runs {
		run := para.AddRun()
		run.AddText(tr.Text)
		full.WriteString(tr.Text)

		props := run.Properties()
		if tr.Bold {
			props.SetBold(true)
		}
		if tr.Italic {
			props.SetItalic(true)
		}
		if tr.FontSizePt != nil {
			props.SetSize(measurement.Distance(*tr.FontSizePt) * measurement.Point)
		}
		if tr.FontName != "" {
			props.SetFontFamily(tr.FontName)
		}
		if tr.FontColorRGB != nil {
			if r, g, b, ok := rgbTriple(tr.FontColorRGB); ok {
				props.SetColor(color.RGB(r, g, b))
			} else {
				log.Printf("invalid font_color_rgb %v for run %q, expected [R,G,B] in 0-255; color skipped", tr.FontColorRGB, tr.Text)
			}
		}
	}
	return full.String(), nil
}

// AddPageBreak appends a hard page break.
func (e *Editor) AddPageBreak() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireDocument(); err != nil {
		return err
	}
	e.doc.AddParagraph().AddRun().AddPageBreak()
	return nil
}

// rgbTriple validates a color triple and converts it to byte components.
func rgbTriple(rgb []int) (r, g, b uint8, ok bool) {
	if len(rgb) != 3 {
		return 0, 0, 0, false
	}
	for _, v := range rgb {
		if v < 0 || v > 255 {
			return 0, 0, 0, false
		}
	}
	return uint8(rgb[0]), uint8(rgb[1]), uint8(rgb[2]), true
}
