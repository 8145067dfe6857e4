package html

import (
	"io"
	"strings"

	xhtml "golang.org/x/net/html"

	"github.com/docsift/docsift/internal/core/ports/driven"
)

// openElement is one entry on the rewriter's element stack.
type openElement struct {
	name    string // upper-case input name
	mapped  string // canonical output name, "" when suppressed
	discard bool   // this element roots a discarded subtree
}

// rewriter consumes the tokenizer's event stream and produces the
// filtered outputs: plain text and safe-vocabulary markup. Per-element
// decisions come from the injected ElementMapper; the rewriter itself
// only tracks "am I inside a discarded subtree", which is positional
// state the pure mapper cannot carry.
type rewriter struct {
	mapper driven.ElementMapper

	stack        []openElement
	discardDepth int
	inTitle      bool

	title  strings.Builder
	text   strings.Builder
	markup strings.Builder
}

func newRewriter(mapper driven.ElementMapper) *rewriter {
	return &rewriter{mapper: mapper}
}

// run tokenises r and rewrites the event stream. Tokenisation errors
// other than end-of-stream are I/O errors from the underlying reader
// and are returned as-is.
func (w *rewriter) run(r io.Reader) error {
	z := xhtml.NewTokenizer(r)
	for {
		switch z.Next() {
		case xhtml.ErrorToken:
			err := z.Err()
			if err == io.EOF {
				w.closeAll()
				return nil
			}
			return err

		case xhtml.StartTagToken:
			name, _ := z.TagName()
			w.startElement(strings.ToUpper(string(name)), false)

		case xhtml.SelfClosingTagToken:
			name, _ := z.TagName()
			w.startElement(strings.ToUpper(string(name)), true)

		case xhtml.EndTagToken:
			name, _ := z.TagName()
			w.endElement(strings.ToUpper(string(name)))

		case xhtml.TextToken:
			w.characters(string(z.Text()))

			// Comments and doctypes are dropped.
		}
	}
}

// startElement classifies the element and opens it on the stack. The
// mapper is consulted for both decisions on every element: mapping and
// discarding are independent.
func (w *rewriter) startElement(name string, selfClosing bool) {
	mapped := w.mapper.MapSafeElement(name)
	discard := w.mapper.IsDiscardElement(name)

	if selfClosing {
		if discard || w.discardDepth > 0 {
			return
		}
		if mapped != "" {
			w.markup.WriteString("<" + mapped + "/>")
			w.text.WriteByte('\n')
		}
		return
	}

	w.stack = append(w.stack, openElement{name: name, mapped: mapped, discard: discard})
	if discard {
		w.discardDepth++
		return
	}
	if name == "TITLE" {
		w.inTitle = true
	}
	if w.discardDepth == 0 && mapped != "" {
		w.markup.WriteString("<" + mapped + ">")
		w.text.WriteByte('\n')
	}
}

// endElement pops the stack down to the matching open element,
// implicitly closing anything mis-nested above it. End tags with no
// matching open element are ignored.
func (w *rewriter) endElement(name string) {
	idx := -1
	for i := len(w.stack) - 1; i >= 0; i-- {
		if w.stack[i].name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	for i := len(w.stack) - 1; i >= idx; i-- {
		w.closeElement(w.stack[i])
	}
	w.stack = w.stack[:idx]
}

// closeAll closes any elements left open at end of input.
func (w *rewriter) closeAll() {
	for i := len(w.stack) - 1; i >= 0; i-- {
		w.closeElement(w.stack[i])
	}
	w.stack = nil
}

func (w *rewriter) closeElement(e openElement) {
	if e.discard {
		w.discardDepth--
		return
	}
	if e.name == "TITLE" {
		w.inTitle = false
	}
	if w.discardDepth == 0 && e.mapped != "" {
		w.markup.WriteString("</" + e.mapped + ">")
		w.text.WriteByte('\n')
	}
}

// characters handles a text event. Text inside a discarded subtree
// contributes nothing; title text is captured separately from body
// content.
func (w *rewriter) characters(data string) {
	if w.discardDepth > 0 {
		return
	}
	if w.inTitle {
		w.title.WriteString(data)
		return
	}
	w.text.WriteString(data)
	w.markup.WriteString(xhtml.EscapeString(data))
}
