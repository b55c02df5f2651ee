package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/studyez/studyez_backend/apperrors"
	config "github.com/studyez/studyez_backend/configs"
	"github.com/studyez/studyez_backend/models"
)

const mcqOptionCount = 4

// GeneratedExamItem is one question as produced by the generator. It is
// transient: the exam service turns accepted items into persisted questions,
// options and exam links.
type GeneratedExamItem struct {
	Type          string
	QuestionText  string
	CorrectAnswer string
	Options       []string
	Order         int
	Points        float64
	ModuleIndex   int
}

type GeneratedExamResult struct {
	Title string
	Items []GeneratedExamItem
}

// ModuleContent is the slice of course material the prompt is built from.
type ModuleContent struct {
	Title           string
	OriginalContent string
}

type chatFunc func(ctx context.Context, model string, messages []ChatMessage) (string, error)

// ExamGenerator builds a prompt from course material, performs one chat call
// and coerces the response into a type-balanced item list. It never writes to
// storage.
type ExamGenerator struct {
	chat  chatFunc
	model string
}

func NewExamGenerator(client *AIClient, model string) *ExamGenerator {
	return &ExamGenerator{chat: client.Chat, model: model}
}

var defaultGenerator *ExamGenerator

// DefaultExamGenerator returns the process-wide generator configured from the
// environment.
func DefaultExamGenerator() *ExamGenerator {
	if defaultGenerator == nil {
		defaultGenerator = NewExamGenerator(NewAIClientFromEnv(), config.Config("AI_EXAM_MODEL"))
	}
	return defaultGenerator
}

// Intermediate decode targets: every field optional so one malformed item
// never aborts the whole generation.
type aiExamResponse struct {
	Title *string      `json:"title"`
	Items []aiExamItem `json:"items"`
}

type aiExamItem struct {
	Type          *string  `json:"type"`
	QuestionText  *string  `json:"questionText"`
	CorrectAnswer *string  `json:"correctAnswer"`
	Options       []string `json:"options"`
	Order         *int     `json:"order"`
	ModuleIndex   *int     `json:"moduleIndex"`
}

// Generate creates a course-wide exam blueprint: 70% multiple-choice, 20%
// true-false, remainder short-answer, one point per question.
func (g *ExamGenerator) Generate(ctx context.Context, courseName string, modules []ModuleContent, totalQuestions int) (*GeneratedExamResult, error) {
	// Per-type targets; the 70/20 splits round half away from zero and
	// short-answer absorbs the remainder.
	mcq := int(math.Round(float64(totalQuestions) * 0.70))
	tf := int(math.Round(float64(totalQuestions) * 0.20))
	sa := totalQuestions - mcq - tf

	prompt := buildExamPrompt(courseName, modules, totalQuestions, mcq, tf, sa)

	raw, err := g.chat(ctx, g.model, []ChatMessage{
		{Role: "system", Content: "Return STRICT JSON only (no extra text)."},
		{Role: "user", Content: prompt},
	})
	if err != nil {
		return nil, err
	}

	var resp aiExamResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, apperrors.InvalidExamGeneration("AI returned invalid JSON")
	}

	items := make([]GeneratedExamItem, 0, len(resp.Items))
	for _, el := range resp.Items {
		item, ok := acceptItem(el)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, apperrors.InvalidExamGeneration("no usable questions in AI response")
	}

	result := &GeneratedExamResult{Items: Rebalance(items, mcq, tf, sa)}
	if resp.Title != nil {
		result.Title = strings.TrimSpace(*resp.Title)
	}
	return result, nil
}

// acceptItem validates one decoded item. Type, question text, correct answer
// and order are required; an item missing any of them is rejected, not fatal.
func acceptItem(el aiExamItem) (GeneratedExamItem, bool) {
	if el.Type == nil || strings.TrimSpace(*el.Type) == "" {
		return GeneratedExamItem{}, false
	}
	if el.QuestionText == nil || strings.TrimSpace(*el.QuestionText) == "" {
		return GeneratedExamItem{}, false
	}
	if el.CorrectAnswer == nil || strings.TrimSpace(*el.CorrectAnswer) == "" {
		return GeneratedExamItem{}, false
	}
	if el.Order == nil {
		return GeneratedExamItem{}, false
	}

	item := GeneratedExamItem{
		Type:          strings.TrimSpace(*el.Type),
		QuestionText:  *el.QuestionText,
		CorrectAnswer: *el.CorrectAnswer,
		Order:         *el.Order,
		Points:        1,
		ModuleIndex:   1,
	}
	if el.ModuleIndex != nil {
		item.ModuleIndex = *el.ModuleIndex
	}

	// Multiple-choice items carry exactly four options: truncate extras, pad
	// a short list with empty strings.
	if item.Type == models.WireMultipleChoice && len(el.Options) > 0 {
		item.Options = padOptions(el.Options)
	}
	return item, true
}

func padOptions(options []string) []string {
	out := make([]string, mcqOptionCount)
	copy(out, options)
	return out
}

func buildExamPrompt(courseName string, modules []ModuleContent, total, mcq, tf, sa int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "COURSE: %s\n\n", courseName)
	sb.WriteString("MODULES (original content):\n")

	for i, m := range modules {
		fmt.Fprintf(&sb, "### MODULE %d: %s\n", i+1, m.Title)
		sb.WriteString(m.OriginalContent)
		sb.WriteString("\n\n")
	}

	fmt.Fprintf(&sb, `TASK:
Create a single course-wide exam strictly from the content above.

Constraints:
- Total questions: %d
- Distribution: %d multiple-choice, %d true-false, %d short-answer.
- Each question is worth exactly 1 point.
- For multiple-choice, include exactly 4 options with one correct answer.
- Keep 'order' sequential starting at 1.
- No external facts; only information from provided modules.
- Each question MUST include a `+"`moduleIndex`"+` field set to the MODULE number (1-based) that best matches that question.

Return STRICT JSON in this schema (no extra text):
{
  "title": "string or null",
  "items": [
    {
      "type": "multiple-choice" | "true-false" | "short-answer",
      "questionText": "string (<=1000)",
      "correctAnswer": "string (<=1000)",
      "options": ["A","B","C","D"] | null,
      "order": number,
      "moduleIndex": number
    }
  ]
}
`, total, mcq, tf, sa)

	return sb.String()
}
