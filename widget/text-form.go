package widget

import (
	"strings"

	"gioui.org/layout"
	"gioui.org/widget"
	"gioui.org/x/component"
)

// TextForm holds the theme-independent state of a simple form that
// allows a user to provide a single text value. It can be submitted with
// either the submit button or pressing enter on the keyboard.
type TextForm struct {
	submitted bool
	TextField component.TextField
	// Submit button for the form.
	SubmitButton widget.Clickable
}

// Layout processes input events. It draws nothing.
func (c *TextForm) Layout(gtx layout.Context) layout.Dimensions {
	c.submitted = false
	c.TextField.SingleLine = true
	c.TextField.Submit = true
	for _, e := range c.TextField.Editor.Events() {
		if _, ok := e.(widget.SubmitEvent); ok {
			c.submitted = true
		}
	}
	if c.SubmitButton.Clicked() {
		c.submitted = true
	}
	return layout.Dimensions{}
}

// Submitted reports whether the form was submitted during the last
// Layout.
func (c *TextForm) Submitted() bool {
	return c.submitted
}

// Value returns the current text without surrounding whitespace.
func (c *TextForm) Value() string {
	return strings.TrimSpace(c.TextField.Text())
}

// SetValue replaces the current text.
func (c *TextForm) SetValue(text string) {
	c.TextField.SetText(text)
}
