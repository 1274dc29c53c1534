package services

import (
	"regexp"
	"strings"

	"alfredoptarigan/interview-fever/internal/models"
)

const (
	phraseSelected    = "you are selected"
	phraseNotSelected = "not selected"
)

// outcomeLine matches the verdict line the interviewer is told to finish with.
// Markdown emphasis around it is tolerated.
var outcomeLine = regexp.MustCompile(`(?im)^[ \t*_\[>]*OUTCOME\s*:\s*(NOT[ _-]?SELECTED|SELECTED)[ \t*_\].]*\r?$`)

// CompletionDetector decides whether a reply ends the interview.
type CompletionDetector struct {
	matchPhrases bool
}

// NewCompletionDetector returns a detector that honours the OUTCOME line and,
// when matchPhrases is set, falls back to the verdict phrases.
func NewCompletionDetector(matchPhrases bool) *CompletionDetector {
	return &CompletionDetector{matchPhrases: matchPhrases}
}

// Detect returns the outcome signalled by reply (OutcomeNone if the interview
// continues) and the reply text to show the candidate, with the OUTCOME line removed.
func (d *CompletionDetector) Detect(reply string) (models.Outcome, string) {
	if m := outcomeLine.FindAllStringSubmatch(reply, -1); len(m) > 0 {
		verdict := strings.ToUpper(m[len(m)-1][1])
		outcome := models.OutcomeAccepted
		if strings.HasPrefix(verdict, "NOT") {
			outcome = models.OutcomeRejected
		}

		display := strings.TrimSpace(outcomeLine.ReplaceAllString(reply, ""))
		if display == "" {
			display = strings.TrimSpace(reply)
		}
		return outcome, display
	}

	if d == nil || !d.matchPhrases {
		return models.OutcomeNone, reply
	}

	lower := strings.ToLower(reply)
	switch {
	case strings.Contains(lower, phraseNotSelected):
		return models.OutcomeRejected, reply
	case strings.Contains(lower, phraseSelected):
		return models.OutcomeAccepted, reply
	}
	return models.OutcomeNone, reply
}
