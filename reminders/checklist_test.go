package reminders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(description string) []string {
	items := BuildChecklist(description)
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Label)
	}
	return out
}

func TestBuildChecklistFromBullets(t *testing.T) {
	description := "Requirements:\n- Official transcript\n* Two references\n1. Personal essay (500 words)\n2) Proof of enrolment\n-"

	assert.Equal(t, []string{
		"Official transcript",
		"Two references",
		"Personal essay (500 words)",
		"Proof of enrolment",
		submitLabel,
	}, labels(description))
}

func TestBuildChecklistFromKeywords(t *testing.T) {
	assert.Equal(t, []string{
		"Upload your latest transcript",
		"Write the scholarship essay",
		submitLabel,
	}, labels("Applicants send an ESSAY together with their transcript."))
}

func TestBuildChecklistAssignsIDs(t *testing.T) {
	items := BuildChecklist("")
	require.Len(t, items, 1)
	assert.Equal(t, "item-1", items[0].ID)
	assert.False(t, items[0].Completed)
}
