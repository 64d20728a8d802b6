package editor

import (
	"fmt"

	"github.com/unidoc/unioffice/document"
	"github.com/unidoc/unioffice/schema/soo/wml"

	"github.com/louisbranch/docsmith/internal/platform/errors"
)

// resolveParagraphStyle maps a user-supplied style name to a style ID
// defined in the document's style table. Both the style ID ("BodyText") and
// the display name ("Body Text") are accepted, mirroring named-style lookup
// in word processors.
func resolveParagraphStyle(doc *document.Document, name string) (string, error) {
	for _, st := range doc.Styles.X().Style {
		if st.TypeAttr != wml.ST_StyleTypeUnset && st.TypeAttr != wml.ST_StyleTypeParagraph {
			continue
		}
		id := ""
		if st.StyleIdAttr != nil {
			id = *st.StyleIdAttr
		}
		if id != "" && id == name {
			return id, nil
		}
		if st.Name != nil && st.Name.ValAttr == name {
			if id == "" {
				id = name
			}
			return id, nil
		}
	}
	return "", errors.WithMetadata(errors.CodeStyleUnknown,
		fmt.Sprintf("paragraph style %q is not defined in this document", name),
		map[string]string{"style": name})
}

// applyTableStyle references a named table style on the table. The reference
// is written verbatim: table styles resolve at render time and word
// processors ignore unknown ones, so freshly created documents can still use
// stock names like "TableGrid".
func applyTableStyle(tbl document.Table, styleID string) {
	tblPr := tbl.Properties().X()
	tblPr.TblStyle = wml.NewCT_String()
	tblPr.TblStyle.ValAttr = styleID
}
