package testutil

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"testing"

	"examtrainer/internal/bank"
)

// Bank builds a validated bank whose question i has correct answer answers[i].
func Bank(t testing.TB, answers ...int) *bank.Bank {
	t.Helper()
	questions := make([]bank.Question, 0, len(answers))
	for i, answer := range answers {
		questions = append(questions, bank.Question{
			Text:   fmt.Sprintf("Question %d", i),
			Choice: []string{fmt.Sprintf("Q%d choice A", i), fmt.Sprintf("Q%d choice B", i), fmt.Sprintf("Q%d choice C", i)},
			Answer: answer,
		})
	}
	b, err := bank.New(questions)
	if err != nil {
		t.Fatalf("build bank: %v", err)
	}
	return b
}

// BankOfSize builds a bank of n questions that all have answer 0.
func BankOfSize(t testing.TB, n int) *bank.Bank {
	t.Helper()
	return Bank(t, make([]int, n)...)
}

// PNG encodes a solid-color image of the given size.
func PNG(t testing.TB, width, height int, fill color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, fill)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}
