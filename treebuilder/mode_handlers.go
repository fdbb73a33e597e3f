package treebuilder

import (
	"strings"

	"github.com/kestrel-parse/html5core/dom"
	"github.com/kestrel-parse/html5core/errors"
	"github.com/kestrel-parse/html5core/internal/constants"
	"github.com/kestrel-parse/html5core/tokenizer"
)

// These handlers are a growing implementation of the HTML5 tree construction
// insertion modes. They focus on correctness and non-panicking behavior.

func (tb *TreeBuilder) processInitial(tok tokenizer.Token) ProcessResult {
	switch tok.Type {
	case tokenizer.Character:
		if isAllWhitespace(tok.Data) {
			return Done
		}
		tb.document.QuirksMode = dom.Quirks
		tb.mode = BeforeHTML
		return tb.reprocess(tok)
	case tokenizer.Comment:
		tb.document.AppendChild(dom.NewComment(tok.Data))
		return Done
	case tokenizer.DOCTYPE:
		tb.document.Doctype = dom.NewDocumentType(tok.Name, ptrToString(tok.PublicID), ptrToString(tok.SystemID))
		tb.setQuirksModeFromDoctype(tok.Name, tok.PublicID, tok.SystemID, tok.ForceQuirks)
		tb.mode = BeforeHTML
		return Done
	default:
		tb.document.QuirksMode = dom.Quirks
		tb.mode = BeforeHTML
		return tb.reprocess(tok)
	}
}

func (tb *TreeBuilder) processBeforeHTML(tok tokenizer.Token) ProcessResult {
	switch tok.Type {
	case tokenizer.Character:
		if isAllWhitespace(tok.Data) {
			return Done
		}
		// Strip leading whitespace so that implicit root creation behaves like the spec.
		tok.Data = strings.TrimLeft(tok.Data, "\t\n\f\r ")
	case tokenizer.Comment:
		tb.document.AppendChild(dom.NewComment(tok.Data))
		return Done
	case tokenizer.StartTag:
		if tok.Name == "html" {
			tb.insertElement("html", tok.Attrs)
			tb.mode = BeforeHead
			return Done
		}
	case tokenizer.EndTag:
		// "head", "body", "html", "br" trigger implicit root creation and reprocess.
		if tok.Name == "head" || tok.Name == "body" || tok.Name == "html" || tok.Name == "br" {
			tb.insertElement("html", nil)
			tb.mode = BeforeHead
			return tb.reprocess(tok)
		}
		return Done
	case tokenizer.EOF:
		tb.insertElement("html", nil)
		tb.mode = BeforeHead
		return tb.reprocess(tok)
	}

	// Create implicit <html> element.
	tb.insertElement("html", nil)
	tb.mode = BeforeHead
	return tb.reprocess(tok)
}

func (tb *TreeBuilder) processBeforeHead(tok tokenizer.Token) ProcessResult {
	switch tok.Type {
	case tokenizer.Character:
		if isAllWhitespace(tok.Data) {
			return Done
		}
	case tokenizer.Comment:
		tb.insertComment(tok.Data)
		return Done
	case tokenizer.StartTag:
		switch tok.Name {
		case "html":
			// Duplicate <html>: merge attributes into the existing root.
			if len(tb.openElements) > 0 && tb.openElements[0].TagName == "html" {
				tb.addMissingAttributes(tb.openElements[0], tok.Attrs)
			}
			return Done
		case "head":
			tb.headElement = tb.insertElement("head", tok.Attrs)
			tb.mode = InHead
			return Done
		}
	case tokenizer.EndTag:
		// Ignore most end tags here.
		return Done
	}

	// Implicit <head>.
	tb.headElement = tb.insertElement("head", nil)
	tb.mode = InHead
	return tb.reprocess(tok)
}

func (tb *TreeBuilder) processInHead(tok tokenizer.Token) ProcessResult {
	switch tok.Type {
	case tokenizer.Character:
		if isAllWhitespace(tok.Data) {
			tb.insertText(tok.Data)
			return Done
		}
	case tokenizer.Comment:
		tb.insertComment(tok.Data)
		return Done
	case tokenizer.StartTag:
		switch tok.Name {
		case "html":
			// Delegate to InBody rules for attribute merge behavior.
			tb.mode = InBody
			return tb.reprocess(tok)
		case "title", "textarea":
			tb.insertElement(tok.Name, tok.Attrs)
			tb.originalMode = tb.mode
			tb.mode = Text
			tb.tokenizer.SetLastStartTag(tok.Name)
			tb.tokenizer.SetState(tokenizer.RCDATAState)
			return tb.toRawData(RawDataRCDATA)
		case "script", "style", "xmp", "iframe", "noembed", "noframes":
			tb.insertElement(tok.Name, tok.Attrs)
			tb.originalMode = tb.mode
			tb.mode = Text
			tb.tokenizer.SetLastStartTag(tok.Name)
			if tok.Name == "script" {
				tb.tokenizer.SetState(tokenizer.ScriptDataState)
				return tb.toRawData(RawDataScriptData)
			}
			tb.tokenizer.SetState(tokenizer.RAWTEXTState)
			return tb.toRawData(RawDataRawtext)
		case "noscript":
			tb.insertElement(tok.Name, tok.Attrs)
			tb.mode = InHeadNoscript
			return Done
		case "base", "basefont", "bgsound", "link", "meta":
			// Void-ish head elements; do not stay on stack.
			tb.insertElement(tok.Name, tok.Attrs)
			tb.popCurrent()
			if tok.SelfClosing {
				return DoneAckSelfClosing
			}
			return Done
		case "template":
			tb.insertElement("template", tok.Attrs)
			tb.mode = InTemplate
			return Done
		case "head":
			// Ignore additional heads.
			return Done
		}
	case tokenizer.EndTag:
		switch tok.Name {
		case "head":
			tb.popUntil("head")
			tb.mode = AfterHead
			return Done
		case "template":
			// If no template element is open, ignore.
			if !tb.elementInStack("template") {
				return Done
			}
			tb.popUntil("template")
			tb.mode = InHead
			return Done
		}
	case tokenizer.EOF:
		tb.popUntil("head")
		tb.mode = AfterHead
		return tb.reprocess(tok)
	}

	// Anything else: close head and reprocess in after head.
	tb.popUntil("head")
	tb.mode = AfterHead
	return tb.reprocess(tok)
}

func (tb *TreeBuilder) processInHeadNoscript(tok tokenizer.Token) ProcessResult {
	switch tok.Type {
	case tokenizer.Character:
		if isAllWhitespace(tok.Data) {
			return tb.processInHead(tok)
		}
		tb.popUntil("noscript")
		tb.mode = InHead
		return tb.reprocess(tok)
	case tokenizer.Comment:
		return tb.processInHead(tok)
	case tokenizer.StartTag:
		switch tok.Name {
		case "html":
			tb.mode = InBody
			return tb.reprocess(tok)
		case "basefont", "bgsound", "link", "meta", "noframes", "style":
			return tb.processInHead(tok)
		case "head", "noscript":
			return Done
		default:
			tb.popUntil("noscript")
			tb.mode = InHead
			return tb.reprocess(tok)
		}
	case tokenizer.EndTag:
		switch tok.Name {
		case "noscript":
			tb.popUntil("noscript")
			tb.mode = InHead
			return Done
		case "br":
			tb.popUntil("noscript")
			tb.mode = InHead
			return tb.reprocess(tok)
		default:
			return Done
		}
	case tokenizer.EOF:
		tb.popUntil("noscript")
		tb.mode = InHead
		return tb.reprocess(tok)
	default:
		return Done
	}
}

func (tb *TreeBuilder) processAfterHead(tok tokenizer.Token) ProcessResult {
	switch tok.Type {
	case tokenizer.Character:
		if isAllWhitespace(tok.Data) {
			tb.insertText(tok.Data)
			return Done
		}
	case tokenizer.Comment:
		tb.insertComment(tok.Data)
		return Done
	case tokenizer.StartTag:
		switch tok.Name {
		case "html":
			tb.mode = InBody
			return tb.reprocess(tok)
		case "body":
			tb.insertElement("body", tok.Attrs)
			tb.framesetOK = false
			tb.mode = InBody
			return Done
		case "frameset":
			tb.insertElement("frameset", tok.Attrs)
			tb.mode = InFrameset
			return Done
		case "head":
			// Parse error; ignore token.
			return Done
		}
	case tokenizer.EndTag:
		if tok.Name == "html" {
			tb.mode = InBody
			return tb.reprocess(tok)
		}
	case tokenizer.EOF:
		tb.insertElement("body", nil)
		tb.mode = InBody
		return tb.reprocess(tok)
	}

	// Implicit <body>.
	tb.insertElement("body", nil)
	tb.framesetOK = false
	tb.mode = InBody
	return tb.reprocess(tok)
}

func (tb *TreeBuilder) processText(tok tokenizer.Token) ProcessResult {
	switch tok.Type {
	case tokenizer.Character:
		tb.insertText(tok.Data)
		return Done
	case tokenizer.EndTag:
		scriptEl := tb.currentElement()
		tb.popUntil(tok.Name)
		tb.mode = tb.originalMode
		tb.tokenizer.SetState(tokenizer.DataState)
		if tok.Name == "script" && scriptEl != nil {
			return scriptResult(scriptEl)
		}
		return Done
	case tokenizer.EOF:
		tb.mode = tb.originalMode
		tb.tokenizer.SetState(tokenizer.DataState)
		return tb.reprocess(tok)
	default:
		return Done
	}
}

func (tb *TreeBuilder) processInBody(tok tokenizer.Token) ProcessResult {
	switch tok.Type {
	case tokenizer.Character:
		tb.reconstructActiveFormattingElements()
		if tok.Data != "" {
			if !isAllWhitespace(tok.Data) {
				tb.framesetOK = false
			}
			tb.insertText(tok.Data)
		}
		return Done
	case tokenizer.Comment:
		tb.insertComment(tok.Data)
		return Done
	case tokenizer.DOCTYPE:
		return Done
	case tokenizer.StartTag:
		switch tok.Name {
		case "html":
			if len(tb.openElements) > 0 && tb.openElements[0].TagName == "html" {
				tb.addMissingAttributes(tb.openElements[0], tok.Attrs)
			}
			return Done
		case "base", "basefont", "bgsound", "link", "meta":
			// Per spec ยง13.2.6.4.7: process using the rules for "in head".
			// These are void elements - insert and immediately pop.
			tb.insertElement(tok.Name, tok.Attrs)
			tb.popCurrent()
			if tok.SelfClosing {
				return DoneAckSelfClosing
			}
			return Done
		case "body":
			// If a body element already exists, merge attrs.
			if body := tb.document.Body(); body != nil {
				tb.addMissingAttributes(body, tok.Attrs)
				tb.framesetOK = false
				return Done
			}
			tb.insertElement("body", tok.Attrs)
			tb.framesetOK = false
			return Done
		case "svg":
			tb.reconstructActiveFormattingElements()
			tb.insertForeignElement("svg", dom.NamespaceSVG, prepareForeignAttributes(dom.NamespaceSVG, tok.Attrs), tok.SelfClosing)
			tb.framesetOK = false
			if tok.SelfClosing {
				return DoneAckSelfClosing
			}
			return Done
		case "math":
			tb.reconstructActiveFormattingElements()
			tb.insertForeignElement("math", dom.NamespaceMathML, prepareForeignAttributes(dom.NamespaceMathML, tok.Attrs), tok.SelfClosing)
			tb.framesetOK = false
			if tok.SelfClosing {
				return DoneAckSelfClosing
			}
			return Done
		case "plaintext":
			if tb.hasElementInScope("p", constants.ButtonScope) {
				tb.popUntil("p")
			}
			tb.insertElement("plaintext", tok.Attrs)
			tb.tokenizer.SetState(tokenizer.PLAINTEXTState)
			return ToPlaintext
		case "a":
			if tb.hasActiveFormattingEntry("a") {
				tb.adoptionAgency("a")
				tb.removeLastActiveFormattingByName("a")
				tb.removeLastOpenElementByName("a")
			}
			tb.reconstructActiveFormattingElements()
			node := tb.insertElement("a", tok.Attrs)
			tb.appendActiveFormattingEntry("a", tok.Attrs, node)
			tb.framesetOK = false
			return Done
		case "table":
			tb.insertElement("table", tok.Attrs)
			tb.framesetOK = false
			tb.mode = InTable
			return Done
		case "select":
			tb.reconstructActiveFormattingElements()
			tb.insertElement("select", tok.Attrs)
			tb.framesetOK = false
			tb.mode = InSelect
			return Done
		case "textarea", "title":
			tb.insertElement(tok.Name, tok.Attrs)
			tb.originalMode = tb.mode
			tb.mode = Text
			tb.tokenizer.SetLastStartTag(tok.Name)
			tb.tokenizer.SetState(tokenizer.RCDATAState)
			return tb.toRawData(RawDataRCDATA)
		case "script", "style":
			tb.insertElement(tok.Name, tok.Attrs)
			tb.originalMode = tb.mode
			tb.mode = Text
			tb.tokenizer.SetLastStartTag(tok.Name)
			if tok.Name == "script" {
				tb.tokenizer.SetState(tokenizer.ScriptDataState)
				return tb.toRawData(RawDataScriptData)
			}
			tb.tokenizer.SetState(tokenizer.RAWTEXTState)
			return tb.toRawData(RawDataRawtext)
		case "p":
			if tb.hasElementInScope("p", constants.ButtonScope) {
				tb.popUntil("p")
			}
			tb.reconstructActiveFormattingElements()
			tb.insertElement("p", tok.Attrs)
			tb.framesetOK = false
			return Done
		case "br":
			tb.insertElement("br", tok.Attrs)
			tb.popCurrent()
			tb.framesetOK = false
			if tok.SelfClosing {
				return DoneAckSelfClosing
			}
			return Done
		}

		if constants.FormattingElements[tok.Name] {
			if tok.Name == "nobr" && tb.hasElementInScope("nobr", constants.DefaultScope) {
				tb.adoptionAgency("nobr")
				tb.removeLastActiveFormattingByName("nobr")
				tb.removeLastOpenElementByName("nobr")
			}
			tb.reconstructActiveFormattingElements()
			if dup, ok := tb.findActiveFormattingDuplicate(tok.Name, tok.Attrs); ok {
				tb.removeFormattingEntry(dup)
			}
			node := tb.insertElement(tok.Name, tok.Attrs)
			tb.appendActiveFormattingEntry(tok.Name, tok.Attrs, node)
			tb.framesetOK = false
			return Done
		}

		tb.reconstructActiveFormattingElements()
		el := tb.insertElement(tok.Name, tok.Attrs)
		if constants.VoidElements[tok.Name] {
			tb.popCurrent()
			_ = el
			if tok.SelfClosing {
				return DoneAckSelfClosing
			}
			return Done
		}
		if tok.Name != "" && !isAllWhitespace(tok.Name) {
			tb.framesetOK = false
		}
		return Done
	case tokenizer.EndTag:
		switch tok.Name {
		case "body":
			if tb.hasElementInScope("body", constants.DefaultScope) {
				tb.popUntil("body")
				tb.mode = AfterBody
			}
			return Done
		case "html":
			if tb.hasElementInScope("body", constants.DefaultScope) {
				tb.mode = AfterBody
				return tb.reprocess(tok)
			}
			return Done
		case "p":
			if !tb.hasElementInScope("p", constants.ButtonScope) {
				tb.insertElement("p", nil)
			}
			tb.popUntil("p")
			return Done
		default:
			if constants.FormattingElements[tok.Name] {
				tb.adoptionAgency(tok.Name)
				return Done
			}
			tb.anyOtherEndTag(tok.Name)
			return Done
		}
	case tokenizer.EOF:
		return Done
	default:
		return Done
	}
}

func (tb *TreeBuilder) processInTable(tok tokenizer.Token) ProcessResult {
	switch tok.Type {
	case tokenizer.Character:
		// Switch to "in table text" and reprocess.
		mode := tb.mode
		tb.tableTextOriginalMode = &mode
		tb.pendingTableText = tb.pendingTableText[:0]
		tb.mode = InTableText
		return tb.reprocess(tok)
	case tokenizer.Comment:
		tb.insertComment(tok.Data)
		return Done
	case tokenizer.StartTag:
		switch tok.Name {
		case "caption":
			tb.insertElement("caption", tok.Attrs)
			tb.mode = InCaption
			return Done
		case "colgroup":
			tb.insertElement("colgroup", tok.Attrs)
			tb.mode = InColumnGroup
			return Done
		case "tbody", "thead", "tfoot":
			tb.insertElement(tok.Name, tok.Attrs)
			tb.mode = InTableBody
			return Done
		case "tr":
			tb.insertElement("tbody", nil)
			tb.mode = InTableBody
			return tb.reprocess(tok)
		case "td", "th":
			tb.insertElement("tbody", nil)
			tb.mode = InTableBody
			return tb.reprocess(tok)
		case "table":
			tb.popUntil("table")
			tb.mode = InBody
			return tb.reprocess(tok)
		case "select":
			tb.insertElement("select", tok.Attrs)
			tb.mode = InSelectInTable
			return Done
		case "template":
			tb.insertElement("template", tok.Attrs)
			tb.mode = InTemplate
			return Done
		}
		// Default: foster parent character data handling is not implemented yet,
		// so fall back to InBody processing.
		tb.mode = InBody
		return tb.reprocess(tok)
	case tokenizer.EndTag:
		switch tok.Name {
		case "table":
			tb.popUntil("table")
			tb.mode = InBody
			return Done
		case "body", "caption", "col", "colgroup", "html", "tbody", "tfoot", "thead", "tr", "td", "th":
			return Done
		}
	case tokenizer.EOF:
		return Done
	}
	return Done
}

func (tb *TreeBuilder) processInTableText(tok tokenizer.Token) ProcessResult {
	switch tok.Type {
	case tokenizer.Character:
		tb.pendingTableText = append(tb.pendingTableText, tok.Data)
		return Done
	default:
		// Flush pending table text. Each buffered run is split at its
		// leading whitespace/non-whitespace boundary: the whitespace prefix
		// stays in place, the non-whitespace remainder gets foster-parented.
		for _, s := range tb.pendingTableText {
			ws, rest := splitLeadingWhitespace(s)
			if ws != "" {
				tb.insertText(ws)
			}
			if rest == "" {
				continue
			}
			tb.reportError(errors.NonSpaceCharacterInTableText)
			tb.insertFosterText(rest)
		}
		tb.pendingTableText = tb.pendingTableText[:0]
		if tb.tableTextOriginalMode != nil {
			tb.mode = *tb.tableTextOriginalMode
			tb.tableTextOriginalMode = nil
		} else {
			tb.mode = InTable
		}
		return tb.reprocess(tok)
	}
}

func (tb *TreeBuilder) processInCaption(tok tokenizer.Token) ProcessResult {
	switch tok.Type {
	case tokenizer.EndTag:
		if tok.Name == "caption" {
			tb.popUntil("caption")
			tb.mode = InTable
			return Done
		}
		if tok.Name == "table" {
			tb.popUntil("caption")
			tb.mode = InTable
			return tb.reprocess(tok)
		}
	case tokenizer.StartTag:
		if tok.Name == "table" {
			tb.popUntil("caption")
			tb.mode = InTable
			return tb.reprocess(tok)
		}
	}
	tb.mode = InBody
	return tb.reprocess(tok)
}

func (tb *TreeBuilder) processInColumnGroup(tok tokenizer.Token) ProcessResult {
	switch tok.Type {
	case tokenizer.Character:
		if isAllWhitespace(tok.Data) {
			tb.insertText(tok.Data)
			return Done
		}
	case tokenizer.Comment:
		tb.insertComment(tok.Data)
		return Done
	case tokenizer.StartTag:
		switch tok.Name {
		case "col":
			tb.insertElement("col", tok.Attrs)
			tb.popCurrent()
			if tok.SelfClosing {
				return DoneAckSelfClosing
			}
			return Done
		case "template":
			tb.insertElement("template", tok.Attrs)
			tb.mode = InTemplate
			return Done
		}
	case tokenizer.EndTag:
		if tok.Name == "colgroup" {
			tb.popUntil("colgroup")
			tb.mode = InTable
			return Done
		}
	case tokenizer.EOF:
		return Done
	}

	// Close colgroup and reprocess in table.
	tb.popUntil("colgroup")
	tb.mode = InTable
	return tb.reprocess(tok)
}

func (tb *TreeBuilder) processInTableBody(tok tokenizer.Token) ProcessResult {
	switch tok.Type {
	case tokenizer.StartTag:
		switch tok.Name {
		case "tr":
			tb.insertElement("tr", tok.Attrs)
			tb.mode = InRow
			return Done
		case "td", "th":
			tb.insertElement("tr", nil)
			tb.mode = InRow
			return tb.reprocess(tok)
		}
	case tokenizer.EndTag:
		switch tok.Name {
		case "tbody", "thead", "tfoot":
			tb.popUntil(tok.Name)
			tb.mode = InTable
			return Done
		case "table":
			tb.popUntil("tbody")
			tb.mode = InTable
			return tb.reprocess(tok)
		}
	}
	tb.mode = InTable
	return tb.reprocess(tok)
}

func (tb *TreeBuilder) processInRow(tok tokenizer.Token) ProcessResult {
	switch tok.Type {
	case tokenizer.StartTag:
		if tok.Name == "td" || tok.Name == "th" {
			tb.insertElement(tok.Name, tok.Attrs)
			tb.mode = InCell
			return Done
		}
		if tok.Name == "tr" {
			tb.popUntil("tr")
			tb.mode = InTableBody
			return tb.reprocess(tok)
		}
	case tokenizer.EndTag:
		switch tok.Name {
		case "tr":
			tb.popUntil("tr")
			tb.mode = InTableBody
			return Done
		case "table":
			tb.popUntil("tr")
			tb.mode = InTableBody
			return tb.reprocess(tok)
		}
	}
	tb.mode = InTableBody
	return tb.reprocess(tok)
}

func (tb *TreeBuilder) processInCell(tok tokenizer.Token) ProcessResult {
	switch tok.Type {
	case tokenizer.EndTag:
		if tok.Name == "td" || tok.Name == "th" {
			tb.popUntil(tok.Name)
			tb.mode = InRow
			return Done
		}
		if tok.Name == "tr" || tok.Name == "table" {
			tb.popUntilAnyCell()
			tb.mode = InRow
			return tb.reprocess(tok)
		}
	case tokenizer.StartTag:
		if tok.Name == "td" || tok.Name == "th" {
			tb.popUntilAnyCell()
			tb.mode = InRow
			return tb.reprocess(tok)
		}
	}
	tb.mode = InBody
	return tb.reprocess(tok)
}

func (tb *TreeBuilder) popUntilAnyCell() {
	for len(tb.openElements) > 0 {
		name := tb.currentElement().TagName
		tb.popCurrent()
		if name == "td" || name == "th" {
			return
		}
	}
}

func (tb *TreeBuilder) processInSelect(tok tokenizer.Token) ProcessResult {
	switch tok.Type {
	case tokenizer.Character:
		tb.insertText(tok.Data)
		return Done
	case tokenizer.Comment:
		tb.insertComment(tok.Data)
		return Done
	case tokenizer.StartTag:
		switch tok.Name {
		case "html":
			tb.mode = InBody
			return tb.reprocess(tok)
		case "option":
			// If current node is option, pop it.
			if tb.currentElement() != nil && tb.currentElement().TagName == "option" {
				tb.popCurrent()
			}
			tb.insertElement("option", tok.Attrs)
			return Done
		case "optgroup":
			if tb.currentElement() != nil && tb.currentElement().TagName == "option" {
				tb.popCurrent()
			}
			if tb.currentElement() != nil && tb.currentElement().TagName == "optgroup" {
				tb.popCurrent()
			}
			tb.insertElement("optgroup", tok.Attrs)
			return Done
		case "select":
			// Close the current select.
			tb.popUntil("select")
			tb.mode = InBody
			return tb.reprocess(tok)
		}
	case tokenizer.EndTag:
		switch tok.Name {
		case "option":
			if tb.currentElement() != nil && tb.currentElement().TagName == "option" {
				tb.popCurrent()
			}
			return Done
		case "optgroup":
			if tb.currentElement() != nil && tb.currentElement().TagName == "option" {
				tb.popCurrent()
			}
			if tb.currentElement() != nil && tb.currentElement().TagName == "optgroup" {
				tb.popCurrent()
			}
			return Done
		case "select":
			tb.popUntil("select")
			tb.mode = InBody
			return Done
		}
	case tokenizer.EOF:
		return Done
	}
	return Done
}

func (tb *TreeBuilder) processInSelectInTable(tok tokenizer.Token) ProcessResult {
	// If we see a table-affecting token, pop select and reprocess.
	if tok.Type == tokenizer.StartTag {
		switch tok.Name {
		case "caption", "table", "tbody", "tfoot", "thead", "tr", "td", "th":
			tb.popUntil("select")
			tb.mode = InTable
			return tb.reprocess(tok)
		}
	}
	if tok.Type == tokenizer.EndTag {
		switch tok.Name {
		case "caption", "table", "tbody", "tfoot", "thead", "tr", "td", "th":
			tb.popUntil("select")
			tb.mode = InTable
			return tb.reprocess(tok)
		}
	}
	return tb.processInSelect(tok)
}

func (tb *TreeBuilder) processInTemplate(tok tokenizer.Token) ProcessResult {
	switch tok.Type {
	case tokenizer.EndTag:
		if tok.Name == "template" {
			tb.popUntil("template")
			tb.mode = InHead
			return Done
		}
	case tokenizer.EOF:
		return Done
	}
	// For now, treat template contents like "in body".
	tb.mode = InBody
	return tb.reprocess(tok)
}

func (tb *TreeBuilder) processAfterBody(tok tokenizer.Token) ProcessResult {
	switch tok.Type {
	case tokenizer.Character:
		if isAllWhitespace(tok.Data) {
			tb.mode = InBody
			return tb.reprocess(tok)
		}
	case tokenizer.Comment:
		// Comments after body attach to the <html> element.
		if len(tb.openElements) > 0 {
			tb.openElements[0].AppendChild(dom.NewComment(tok.Data))
		} else {
			tb.document.AppendChild(dom.NewComment(tok.Data))
		}
		return Done
	case tokenizer.StartTag:
		if tok.Name == "html" {
			tb.mode = InBody
			return tb.reprocess(tok)
		}
	case tokenizer.EndTag:
		if tok.Name == "html" {
			tb.mode = AfterAfterBody
			return Done
		}
	case tokenizer.EOF:
		return Done
	}
	tb.mode = InBody
	return tb.reprocess(tok)
}

func (tb *TreeBuilder) processInFrameset(tok tokenizer.Token) ProcessResult {
	switch tok.Type {
	case tokenizer.Character:
		if isAllWhitespace(tok.Data) {
			tb.insertText(tok.Data)
		}
		return Done
	case tokenizer.Comment:
		tb.insertComment(tok.Data)
		return Done
	case tokenizer.StartTag:
		switch tok.Name {
		case "frameset":
			tb.insertElement("frameset", tok.Attrs)
			return Done
		case "frame":
			tb.insertElement("frame", tok.Attrs)
			tb.popCurrent()
			if tok.SelfClosing {
				return DoneAckSelfClosing
			}
			return Done
		case "noframes":
			tb.mode = InBody
			return tb.reprocess(tok)
		}
	case tokenizer.EndTag:
		if tok.Name == "frameset" {
			tb.popUntil("frameset")
			if !tb.elementInStack("frameset") {
				tb.mode = AfterFrameset
			}
			return Done
		}
	case tokenizer.EOF:
		return Done
	}
	return Done
}

func (tb *TreeBuilder) processAfterFrameset(tok tokenizer.Token) ProcessResult {
	switch tok.Type {
	case tokenizer.Character:
		if isAllWhitespace(tok.Data) {
			tb.insertText(tok.Data)
		}
		return Done
	case tokenizer.Comment:
		tb.insertComment(tok.Data)
		return Done
	case tokenizer.StartTag:
		if tok.Name == "html" {
			tb.mode = InBody
			return tb.reprocess(tok)
		}
		if tok.Name == "noframes" {
			tb.mode = InBody
			return tb.reprocess(tok)
		}
	case tokenizer.EndTag:
		if tok.Name == "html" {
			tb.mode = AfterAfterFrameset
			return Done
		}
	case tokenizer.EOF:
		return Done
	}
	return Done
}

func (tb *TreeBuilder) processAfterAfterBody(tok tokenizer.Token) ProcessResult {
	switch tok.Type {
	case tokenizer.Comment:
		tb.document.AppendChild(dom.NewComment(tok.Data))
		return Done
	case tokenizer.Character:
		if isAllWhitespace(tok.Data) {
			tb.mode = InBody
			return tb.reprocess(tok)
		}
	case tokenizer.StartTag:
		if tok.Name == "html" {
			tb.mode = InBody
			return tb.reprocess(tok)
		}
	case tokenizer.EOF:
		return Done
	}
	tb.mode = InBody
	return tb.reprocess(tok)
}

func (tb *TreeBuilder) processAfterAfterFrameset(tok tokenizer.Token) ProcessResult {
	switch tok.Type {
	case tokenizer.Comment:
		tb.document.AppendChild(dom.NewComment(tok.Data))
		return Done
	case tokenizer.Character:
		if isAllWhitespace(tok.Data) {
			tb.mode = InFrameset
			return tb.reprocess(tok)
		}
	case tokenizer.StartTag:
		if tok.Name == "html" {
			tb.mode = InBody
			return tb.reprocess(tok)
		}
	case tokenizer.EOF:
		return Done
	}
	tb.mode = InBody
	return tb.reprocess(tok)
}
