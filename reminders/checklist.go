package reminders

import (
	"fmt"
	"strings"

	"scholarhub/models"
)

var keywordItems = []struct {
	keyword string
	label   string
}{
	{"transcript", "Upload your latest transcript"},
	{"essay", "Write the scholarship essay"},
	{"recommendation", "Request a recommendation letter"},
	{"certificate", "Upload supporting certificates"},
	{"interview", "Prepare for the interview"},
}

const submitLabel = "Submit the application before the deadline"

// BuildChecklist turns a scholarship description into checklist items. Bullet or
// numbered lines become items verbatim; otherwise known keywords are mapped to items.
func BuildChecklist(description string) []models.ChecklistItem {
	var labels []string
	for _, line := range strings.Split(description, "\n") {
		if label, ok := bulletLabel(line); ok {
			labels = append(labels, label)
		}
	}

	if len(labels) == 0 {
		lower := strings.ToLower(description)
		for _, k := range keywordItems {
			if strings.Contains(lower, k.keyword) {
				labels = append(labels, k.label)
			}
		}
	}
	labels = append(labels, submitLabel)

	items := make([]models.ChecklistItem, 0, len(labels))
	for i, label := range labels {
		items = append(items, models.ChecklistItem{ID: fmt.Sprintf("item-%d", i+1), Label: label})
	}
	return items
}

func bulletLabel(line string) (string, bool) {
	line = strings.TrimSpace(line)
	for _, prefix := range []string{"- ", "* ", "• "} {
		if strings.HasPrefix(line, prefix) {
			label := strings.TrimSpace(strings.TrimPrefix(line, prefix))
			return label, label != ""
		}
	}
	// "1. foo" or "1) foo"
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i > 0 && i+1 < len(line) && (line[i] == '.' || line[i] == ')') && line[i+1] == ' ' {
		label := strings.TrimSpace(line[i+1:])
		return label, label != ""
	}
	return "", false
}
