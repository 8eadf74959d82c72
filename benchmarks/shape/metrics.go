// ABOUTME: Metrics for generated paragraphs
// ABOUTME: Tracks sentence length and comma statistics plus invariant violations

package shape

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sophiekoonin/anything-ipsum/internal/core"
	"github.com/sophiekoonin/anything-ipsum/internal/models"
)

// Metrics summarizes a batch of paragraphs
type Metrics struct {
	Paragraphs            int      `json:"paragraphs"`
	Sentences             int      `json:"sentences"`
	MeanSentenceLength    float64  `json:"mean_sentence_length"`
	StdDevSentenceLength  float64  `json:"stddev_sentence_length"`
	MinSentenceLength     int      `json:"min_sentence_length"`
	MaxSentenceLength     int      `json:"max_sentence_length"`
	MeanCommasPerSentence float64  `json:"mean_commas_per_sentence"`
	MinParagraphWords     int      `json:"min_paragraph_words"`
	MaxParagraphWords     int      `json:"max_paragraph_words"`
	Violations            int      `json:"violations"`
	ViolationSamples      []string `json:"violation_samples,omitempty"`
}

// maxSamples caps stored violation descriptions
const maxSamples = 10

// MetricsCalculator accumulates Metrics over paragraphs
type MetricsCalculator struct {
	lengths []int
	commas  int
	m       Metrics
}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{
		m: Metrics{MinSentenceLength: math.MaxInt, MinParagraphWords: math.MaxInt},
	}
}

// Add records one paragraph
func (mc *MetricsCalculator) Add(p models.Paragraph) {
	mc.m.Paragraphs++

	words := p.WordCount()
	mc.m.MinParagraphWords = min(mc.m.MinParagraphWords, words)
	mc.m.MaxParagraphWords = max(mc.m.MaxParagraphWords, words)
	if words < models.MinParagraphWords || words > models.MaxParagraphWords {
		mc.violation("paragraph has %d words", words)
	}

	previous := ""
	for _, s := range p.Sentences {
		n := s.Len()
		mc.m.Sentences++
		mc.lengths = append(mc.lengths, n)
		mc.m.MinSentenceLength = min(mc.m.MinSentenceLength, n)
		mc.m.MaxSentenceLength = max(mc.m.MaxSentenceLength, n)

		text := s.String()
		mc.commas += strings.Count(text, ",")

		if n < core.MinPunctuatedLength {
			mc.violation("short sentence %q", text)
			continue
		}
		if strings.Count(text, ".") != 1 || !strings.HasSuffix(text, ".") {
			mc.violation("bad period in %q", text)
		}
		if r, _ := utf8.DecodeRuneInString(s.Tokens[0]); !unicode.IsUpper(r) {
			mc.violation("lowercase start in %q", text)
		}
		if strings.HasSuffix(s.Tokens[0], ",") || strings.Contains(s.Tokens[n-1], ",") {
			mc.violation("edge comma in %q", text)
		}

		for _, tok := range s.Tokens {
			w := strings.ToLower(strings.TrimRight(tok, ".,"))
			if w == previous {
				mc.violation("adjacent repeat of %q", w)
			}
			previous = w
		}
	}
}

// Result finalizes the accumulated metrics
func (mc *MetricsCalculator) Result() Metrics {
	m := mc.m
	if m.Sentences == 0 {
		m.MinSentenceLength = 0
		m.MinParagraphWords = 0
		return m
	}

	sum := 0
	for _, n := range mc.lengths {
		sum += n
	}
	mean := float64(sum) / float64(len(mc.lengths))

	variance := 0.0
	for _, n := range mc.lengths {
		d := float64(n) - mean
		variance += d * d
	}
	variance /= float64(len(mc.lengths))

	m.MeanSentenceLength = mean
	m.StdDevSentenceLength = math.Sqrt(variance)
	m.MeanCommasPerSentence = float64(mc.commas) / float64(m.Sentences)
	return m
}

// Evaluate decides PASS or FAIL for a scenario's metrics
func Evaluate(s Scenario, m Metrics) (string, map[string]interface{}) {
	drift := math.Abs(m.MeanSentenceLength - core.AverageSentenceLength)
	details := map[string]interface{}{
		"mean_sentence_drift": drift,
		"max_drift":           s.MaxMeanSentenceDrift,
		"max_violations":      s.MaxViolations,
	}

	if m.Violations > s.MaxViolations || drift > s.MaxMeanSentenceDrift {
		return "FAIL", details
	}
	return "PASS", details
}

func (mc *MetricsCalculator) violation(format string, args ...interface{}) {
	mc.m.Violations++
	if len(mc.m.ViolationSamples) < maxSamples {
		mc.m.ViolationSamples = append(mc.m.ViolationSamples, fmt.Sprintf(format, args...))
	}
}
