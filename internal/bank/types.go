package bank

// ChoiceCount is the number of choices every question carries.
const ChoiceCount = 3

// Question is a single multiple-choice question.
type Question struct {
	Text   string
	Choice []string
	Answer int
	Image  string
}

// HasImage reports whether the question references an image asset.
func (q Question) HasImage() bool {
	return q.Image != ""
}

// IsCorrect reports whether choice is the correct answer index.
func (q Question) IsCorrect(choice int) bool {
	return choice == q.Answer
}

// Record is a question as written in a source document. Answer is nil when the
// document omits it.
type Record struct {
	Text   string   `json:"text" yaml:"text"`
	Choice []string `json:"choice" yaml:"choice"`
	Answer *int     `json:"answer" yaml:"answer"`
	Image  string   `json:"image,omitempty" yaml:"image,omitempty"`
}

// Source is the document shape shared by the XML, YAML, and JSON question formats.
type Source struct {
	Questions []Record `json:"questions" yaml:"questions"`
}

// Bank is an immutable, ordered question collection.
type Bank struct {
	questions []Question
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	if b == nil {
		return 0
	}
	return len(b.questions)
}

// Question returns a copy of the question at index.
func (b *Bank) Question(index int) (Question, bool) {
	if b == nil || index < 0 || index >= len(b.questions) {
		return Question{}, false
	}
	q := b.questions[index]
	q.Choice = append([]string(nil), q.Choice...)
	return q, true
}

// ImageKeys returns the distinct image keys referenced by the bank in first-use order.
func (b *Bank) ImageKeys() []string {
	if b == nil {
		return nil
	}
	seen := map[string]struct{}{}
	keys := make([]string, 0)
	for _, q := range b.questions {
		if !q.HasImage() {
			continue
		}
		if _, ok := seen[q.Image]; ok {
			continue
		}
		seen[q.Image] = struct{}{}
		keys = append(keys, q.Image)
	}
	return keys
}
