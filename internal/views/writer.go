package views

import (
	"io"

	"github.com/a-h/templ"
)

// htmlWriter keeps the first write error so components can render linearly.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

func (hw *htmlWriter) attr(name, value string) {
	hw.raw(" " + name + "=\"" + templ.EscapeString(value) + "\"")
}

func (hw *htmlWriter) flag(name string, on bool) {
	if on {
		hw.raw(" " + name)
	}
}
