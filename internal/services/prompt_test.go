package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildInterviewPrompt(t *testing.T) {
	prompt := NewPromptBuilder().BuildInterviewPrompt("Amazon", "Jane Doe Experience Skills")

	assert.Contains(t, prompt, "interviewer from **Amazon**")
	assert.Contains(t, prompt, "Jane Doe Experience Skills")
	assert.Contains(t, prompt, "3 DSA questions")
	assert.Contains(t, prompt, "5 to 6")
	assert.Contains(t, prompt, "only one question at a time")
	assert.Contains(t, prompt, outcomeMarkerSelected)
	assert.Contains(t, prompt, outcomeMarkerNotSelected)
	assert.NotContains(t, prompt, "%!")
	assert.Equal(t, 4, strings.Count(prompt, "Amazon"))
}

func TestPromptMarkersAreDetected(t *testing.T) {
	d := NewCompletionDetector(false)

	outcome, _ := d.Detect("Feedback\n" + outcomeMarkerSelected)
	assert.Equal(t, "accepted", string(outcome))

	outcome, _ = d.Detect("Feedback\n" + outcomeMarkerNotSelected)
	assert.Equal(t, "rejected", string(outcome))
}
