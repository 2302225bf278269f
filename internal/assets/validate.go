package assets

import (
	"fmt"
	"strings"
)

// ImageKeyer lists the image keys a question bank references.
type ImageKeyer interface {
	ImageKeys() []string
}

// Issue captures a problem with the asset manifest or its files.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more asset issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for asset failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("image assets invalid: %s", strings.Join(parts, "; "))
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

// Validate checks that every image key referenced by the bank resolves.
func (c *Catalog) Validate(bank ImageKeyer) error {
	collector := &issueCollector{}
	for _, key := range bank.ImageKeys() {
		if _, ok := c.Lookup(key); !ok {
			collector.add(key, "no asset registered for key")
		}
	}
	return collector.result()
}
