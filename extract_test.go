package webdigest_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/webdigest"
	"github.com/stretchr/testify/assert"
)

func TestValidContent(t *testing.T) {
	t.Parallel()

	t.Run("accepts content at the floor", func(t *testing.T) {
		t.Parallel()
		assert.True(t, webdigest.ValidContent(strings.Repeat("字", 50)))
	})

	t.Run("rejects content below the floor", func(t *testing.T) {
		t.Parallel()
		assert.False(t, webdigest.ValidContent(strings.Repeat("字", 49)))
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		t.Parallel()
		// 49 CJK runes span 147 bytes and must still fail the gate.
		assert.False(t, webdigest.ValidContent(strings.Repeat("中", 49)))
	})

	t.Run("trims before counting", func(t *testing.T) {
		t.Parallel()
		assert.False(t, webdigest.ValidContent(strings.Repeat("字", 49)+"\n\t   "))
	})

	t.Run("rejects whitespace-only content", func(t *testing.T) {
		t.Parallel()
		assert.False(t, webdigest.ValidContent("   \n\t  "))
	})
}

func TestRecordValidate(t *testing.T) {
	t.Parallel()

	t.Run("summary record requires title, summary and URL", func(t *testing.T) {
		t.Parallel()

		valid := webdigest.SummaryRecord{Title: "t", Summary: "s", SourceURL: "https://e.com"}
		assert.NoError(t, valid.Validate())

		for name, r := range map[string]webdigest.SummaryRecord{
			"missing title":   {Summary: "s", SourceURL: "https://e.com"},
			"missing summary": {Title: "t", SourceURL: "https://e.com"},
			"missing URL":     {Title: "t", Summary: "s"},
		} {
			err := r.Validate()
			assert.Equal(t, webdigest.EINVALID, webdigest.ErrorCode(err), name)
		}
	})

	t.Run("manual record requires title and content", func(t *testing.T) {
		t.Parallel()

		valid := webdigest.ManualRecord{Title: "t", Content: "c"}
		assert.NoError(t, valid.Validate())

		for name, r := range map[string]webdigest.ManualRecord{
			"missing title":   {Content: "c"},
			"missing content": {Title: "t"},
		} {
			err := r.Validate()
			assert.Equal(t, webdigest.EINVALID, webdigest.ErrorCode(err), name)
		}
	})
}
