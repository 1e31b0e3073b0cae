package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"edurev/backend/global"

	"github.com/ledongthuc/pdf"
)

type Chapter struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	StartPage int    `json:"-"`
	EndPage   int    `json:"-"`
}

// Page ranges refer to the IGCSE Economics textbook export.
var economicsChapters = []Chapter{
	{"1", "The nature of the economic problem", 2, 5},
	{"2", "The factors of production", 6, 10},
	{"3", "Opportunity cost", 11, 13},
	{"4", "Production possibility curve", 14, 19},
	{"5", "Microeconomics and macroeconomics", 20, 23},
	{"6", "The role of markets in allocating resources", 24, 27},
	{"7", "Demand", 28, 33},
	{"8", "Supply", 34, 38},
	{"9", "Price determination", 39, 41},
	{"10", "Price changes", 42, 45},
	{"11", "Price elasticity of demand", 46, 56},
	{"12", "Price elasticity of supply", 57, 62},
	{"13", "Market economic system", 63, 66},
	{"14", "Market failure", 67, 72},
	{"15", "Mixed economic system", 73, 85},
	{"16", "Money and banking", 86, 95},
	{"17", "Households", 96, 107},
	{"18", "Workers", 108, 122},
	{"19", "Trade unions", 123, 129},
	{"20", "Firms", 130, 144},
	{"21", "Firms and production", 145, 154},
	{"22", "Firms' costs, revenue and objectives", 155, 161},
	{"23", "Market structure", 162, 169},
	{"24", "The role of government", 170, 172},
	{"25", "The macroeconomic aims of government", 173, 177},
	{"26", "Fiscal policy", 178, 188},
	{"27", "Monetary policy", 189, 192},
	{"28", "Supply-side policy", 193, 197},
	{"29", "Economic growth", 198, 205},
	{"30", "Employment and unemployment", 206, 215},
	{"31", "Inflation and deflation", 216, 229},
	{"32", "Living standards", 230, 234},
	{"33", "Poverty", 235, 242},
	{"34", "Population", 243, 253},
	{"35", "Differences in economic development between countries", 254, 261},
	{"36", "International specialisation", 262, 266},
	{"37", "Globalisation, free trade and protection", 267, 275},
	{"38", "Foreign exchange rates", 276, 283},
	{"39", "Current account of balance of payments", 284, 292},
}

const summaryPrompt = "Summarize the following IGCSE Economics content, " +
	"the summary should be at least 100 words in bullet points, " +
	"and it should be as students usually make notes:\n\n"

// Generator turns a prompt into model output.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type SummarizerService struct {
	sourcePath string
	chapters   []Chapter
	gen        Generator
}

func NewSummarizerService(sourcePath string, gen Generator) *SummarizerService {
	return &SummarizerService{sourcePath: sourcePath, chapters: economicsChapters, gen: gen}
}

func (s *SummarizerService) Chapters() []Chapter {
	out := make([]Chapter, len(s.chapters))
	copy(out, s.chapters)
	return out
}

func (s *SummarizerService) chapter(id string) (Chapter, bool) {
	id = strings.TrimSpace(id)
	for _, c := range s.chapters {
		if c.ID == id {
			return c, true
		}
	}
	return Chapter{}, false
}

func (s *SummarizerService) Summarize(ctx context.Context, chapterID string) (Chapter, string, error) {
	ch, ok := s.chapter(chapterID)
	if !ok {
		return Chapter{}, "", ErrInvalidChapter
	}
	if _, err := os.Stat(s.sourcePath); errors.Is(err, fs.ErrNotExist) {
		return Chapter{}, "", ErrSourceMissing
	}
	text, err := readPages(s.sourcePath, ch.StartPage, ch.EndPage)
	if err != nil {
		global.Logger.Error().Err(err).Str("chapter", ch.ID).Str("source", s.sourcePath).Msg("text extraction failed")
		return Chapter{}, "", ErrExtractFailed
	}
	if text == "" {
		return Chapter{}, "", ErrExtractFailed
	}
	summary, err := s.gen.Generate(ctx, summaryPrompt+text)
	if err != nil {
		global.Logger.Error().Err(err).Str("chapter", ch.ID).Msg("summary generation failed")
		return Chapter{}, "", ErrSummaryFailed
	}
	return ch, summary, nil
}

// readPages returns the text of the 1-based inclusive page range. PDFs are read
// page by page; any other file is a text export with form-feed page breaks.
func readPages(path string, start, end int) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return readPDFPages(path, start, end)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	return joinPages(strings.Split(string(raw), "\f"), start, end), nil
}

func readPDFPages(path string, start, end int) (text string, err error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()
	// the pdf reader panics on malformed objects
	defer func() {
		if p := recover(); p != nil {
			text, err = "", fmt.Errorf("read pdf: %v", p)
		}
	}()

	if start < 1 {
		start = 1
	}
	end = min(end, r.NumPage())
	pages := make([]string, 0, max(end-start+1, 0))
	for i := start; i <= end; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		pages = append(pages, content)
	}
	return joinPages(pages, 1, len(pages)), nil
}

// joinPages joins the 1-based inclusive range of pages.
func joinPages(pages []string, start, end int) string {
	if start < 1 {
		start = 1
	}
	if end > len(pages) {
		end = len(pages)
	}
	if start > end {
		return ""
	}
	return strings.TrimSpace(strings.Join(pages[start-1:end], "\n"))
}
