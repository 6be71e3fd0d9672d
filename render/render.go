package render

import "github.com/zeptools/billgen/formstate"

// BuilderFunc builds a document from current form values.
type BuilderFunc func(values formstate.Values) *Document

var builders = NewStore[BuilderFunc]()

func init() {
	builders.Store("driver", driverDocument)
	builders.Store("playo", playoDocument)
	builders.Store("petrol", petrolDocument)
	builders.Store("airtel", airtelDocument)
}

// Preview - pure mapping (template id, values) -> document.
// Unknown template id yields a single "template not found" notice,
// never a partial render.
func Preview(templateID string, values formstate.Values) *Document {
	build, ok := builders.Get(templateID)
	if !ok {
		return notFoundDocument(templateID)
	}
	return build(values)
}

func notFoundDocument(templateID string) *Document {
	return &Document{
		TemplateID:  templateID,
		Title:       "Template not found",
		PageWidthPx: 595,
		Blocks: []Block{
			{Kind: BlockTitle, Text: "Template not found"},
			note("The template \"" + templateID + "\" doesn't exist."),
		},
	}
}
