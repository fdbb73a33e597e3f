package driver

import (
	"testing"

	"github.com/kestrel-parse/html5core/dom"
	"github.com/kestrel-parse/html5core/treebuilder"
	"github.com/kestrel-parse/html5core/tokenizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReachesEOF(t *testing.T) {
	tok := tokenizer.New("<html><body><p>hi</p></body></html>")
	tb := treebuilder.New(tok)
	d := New(tok, tb)

	result := d.Run()
	assert.Equal(t, treebuilder.ResultDone, result.Kind)

	doc := tb.Document()
	require.NotNil(t, doc)
}

func TestFeedReportsEOF(t *testing.T) {
	tok := tokenizer.New("")
	tb := treebuilder.New(tok)
	d := New(tok, tb)

	var lastEOF bool
	for i := 0; i < 100; i++ {
		_, eof := d.Feed()
		lastEOF = eof
		if eof {
			break
		}
	}
	assert.True(t, lastEOF, "Feed never reported EOF on empty input")
}

func TestOnScriptInvokedWhenScriptCloses(t *testing.T) {
	tok := tokenizer.New("<html><body><script>var x = 1;</script></body></html>")
	tb := treebuilder.New(tok)
	d := New(tok, tb)

	var seen *dom.Element
	d.OnScript = func(el *dom.Element) {
		seen = el
	}
	d.Run()

	require.NotNil(t, seen, "OnScript was never invoked")
	assert.Equal(t, "script", seen.TagName)
}
