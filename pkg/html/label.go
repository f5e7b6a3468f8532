package html

// Label is a standalone <label> element. Rendering is pure: the same label
// always produces the same markup.
type Label struct {
	Text  string
	Attrs Attributes
}

// NewLabel constructs a label with optional attributes.
func NewLabel(text string, attrs Attributes) *Label {
	return &Label{Text: text, Attrs: attrs.Clone()}
}

// Render returns <label {attrs}>{text}</label>. A label without attributes
// still keeps the separating space: <label >Text</label>.
func (l *Label) Render() string {
	if l == nil {
		return ""
	}
	return l.RenderWith(l.Text, l.Attrs.String("for"))
}

// RenderWith renders the label with text and for overrides. Empty overrides
// fall back to nothing, not to the stored values.
func (l *Label) RenderWith(text, forID string) string {
	return l.Wrap(Escape(text), forID)
}

// Wrap renders the label around already serialized markup, used when a
// control is nested inside its label.
func (l *Label) Wrap(content, forID string) string {
	var attrs Attributes
	if l != nil {
		attrs = l.Attrs.Clone()
	} else {
		attrs = Attributes{}
	}
	if forID != "" {
		attrs["for"] = forID
	} else {
		delete(attrs, "for")
	}
	return "<label " + attrs.Flatten() + ">" + content + "</label>"
}

// Clone returns a deep copy of the label.
func (l *Label) Clone() *Label {
	if l == nil {
		return nil
	}
	return &Label{Text: l.Text, Attrs: l.Attrs.Clone()}
}

// String implements fmt.Stringer.
func (l *Label) String() string {
	return l.Render()
}
