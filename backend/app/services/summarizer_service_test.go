package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	prompt string
	out    string
	err    error
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.out, f.err
}

// writeBook writes n pages whose text is "page <i>".
func writeBook(t *testing.T, n int) string {
	t.Helper()
	pages := make([]string, n)
	for i := range pages {
		pages[i] = fmt.Sprintf("page %d", i+1)
	}
	path := filepath.Join(t.TempDir(), "econ.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(pages, "\f")), 0o600))
	return path
}

func TestChapters_Catalog(t *testing.T) {
	s := NewSummarizerService("", &fakeGenerator{})
	chapters := s.Chapters()
	require.Len(t, chapters, 39)
	assert.Equal(t, "1", chapters[0].ID)
	assert.Equal(t, "The nature of the economic problem", chapters[0].Title)
	assert.Equal(t, "Current account of balance of payments", chapters[38].Title)

	chapters[0].Title = "mutated"
	assert.Equal(t, "The nature of the economic problem", s.Chapters()[0].Title)
}

func TestSummarize_UsesChapterPages(t *testing.T) {
	gen := &fakeGenerator{out: "- bullet"}
	s := NewSummarizerService(writeBook(t, 300), gen)

	ch, summary, err := s.Summarize(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "Opportunity cost", ch.Title)
	assert.Equal(t, "- bullet", summary)

	assert.True(t, strings.HasPrefix(gen.prompt, summaryPrompt))
	body := strings.TrimPrefix(gen.prompt, summaryPrompt)
	assert.Equal(t, "page 11\npage 12\npage 13", body)
}

func TestSummarize_Errors(t *testing.T) {
	ctx := context.Background()

	_, _, err := NewSummarizerService(writeBook(t, 10), &fakeGenerator{}).Summarize(ctx, "99")
	require.ErrorIs(t, err, ErrInvalidChapter)

	_, _, err = NewSummarizerService(filepath.Join(t.TempDir(), "missing.txt"), &fakeGenerator{}).Summarize(ctx, "1")
	require.ErrorIs(t, err, ErrSourceMissing)

	_, _, err = NewSummarizerService(writeBook(t, 10), &fakeGenerator{}).Summarize(ctx, "39")
	require.ErrorIs(t, err, ErrExtractFailed)

	_, _, err = NewSummarizerService(writeBook(t, 10), &fakeGenerator{err: errors.New("quota")}).Summarize(ctx, "1")
	require.ErrorIs(t, err, ErrSummaryFailed)
}

func TestJoinPages(t *testing.T) {
	pages := []string{"a", "b", "c"}
	assert.Equal(t, "a\nb", joinPages(pages, 1, 2))
	assert.Equal(t, "b\nc", joinPages(pages, 2, 10))
	assert.Equal(t, "a", joinPages(pages, 0, 1))
	assert.Equal(t, "", joinPages(pages, 4, 5))
}

// writePDF writes a minimal PDF with one Helvetica text line per page.
func writePDF(t *testing.T, pages []string) string {
	t.Helper()
	objs := []string{"<< /Type /Catalog /Pages 2 0 R >>"}
	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}
	objs = append(objs,
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	)
	for i, text := range pages {
		stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		objs = append(objs,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 5+2*i),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
		)
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objs))
	for i, o := range objs {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, o)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objs)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xref)

	path := filepath.Join(t.TempDir(), "Econ.pdf")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	return path
}

func TestSummarize_ReadsPDFPages(t *testing.T) {
	pages := make([]string, 15)
	for i := range pages {
		pages[i] = fmt.Sprintf("page %d", i+1)
	}
	gen := &fakeGenerator{out: "- bullet"}
	s := NewSummarizerService(writePDF(t, pages), gen)

	ch, _, err := s.Summarize(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "Opportunity cost", ch.Title)

	body := strings.TrimPrefix(gen.prompt, summaryPrompt)
	for _, want := range []string{"page 11", "page 12", "page 13"} {
		assert.Contains(t, body, want)
	}
	assert.NotContains(t, body, "page 10")
	assert.NotContains(t, body, "page 14")
}

func TestSummarize_BrokenPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Econ.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0o600))

	_, _, err := NewSummarizerService(path, &fakeGenerator{}).Summarize(context.Background(), "1")
	require.ErrorIs(t, err, ErrExtractFailed)
}
