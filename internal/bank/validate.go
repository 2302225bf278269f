package bank

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a question source.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question bank validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// New trims and validates questions and returns them as an immutable bank.
// Either every question is valid or no bank is returned.
func New(questions []Question) (*Bank, error) {
	return build(questions, nil)
}

// FromSource validates decoded records. A record without an answer is rejected
// rather than defaulting to the first choice.
func FromSource(source Source) (*Bank, error) {
	questions := make([]Question, 0, len(source.Questions))
	unanswered := map[int]bool{}
	for i, record := range source.Questions {
		question := Question{Text: record.Text, Choice: record.Choice, Image: record.Image}
		if record.Answer == nil {
			unanswered[i] = true
		} else {
			question.Answer = *record.Answer
		}
		questions = append(questions, question)
	}
	return build(questions, unanswered)
}

func build(questions []Question, unanswered map[int]bool) (*Bank, error) {
	collector := &issueCollector{}
	if len(questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	normalized := make([]Question, 0, len(questions))
	for i, question := range questions {
		prefix := fmt.Sprintf("questions[%d]", i)

		question.Text = strings.TrimSpace(question.Text)
		if question.Text == "" {
			collector.add(prefix+".text", "is required")
		}

		question.Choice = normalizeStringSlice(question.Choice)
		if len(question.Choice) != ChoiceCount {
			collector.add(prefix+".choice", fmt.Sprintf("must have exactly %d entries, got %d", ChoiceCount, len(question.Choice)))
		}
		for choiceIndex, choice := range question.Choice {
			if choice == "" {
				collector.add(fmt.Sprintf("%s.choice[%d]", prefix, choiceIndex), "is required")
			}
		}

		if unanswered[i] {
			collector.add(prefix+".answer", "is required")
		} else if question.Answer < 0 || question.Answer >= len(question.Choice) {
			collector.add(prefix+".answer", fmt.Sprintf("index %d out of range for %d choices", question.Answer, len(question.Choice)))
		}

		question.Image = strings.TrimSpace(question.Image)
		normalized = append(normalized, question)
	}

	if err := collector.result(); err != nil {
		return nil, err
	}
	return &Bank{questions: normalized}, nil
}

func normalizeStringSlice(values []string) []string {
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		normalized = append(normalized, strings.TrimSpace(value))
	}
	return normalized
}
