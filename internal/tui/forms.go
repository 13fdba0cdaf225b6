package tui

import "github.com/charmbracelet/huh"

// ReflectionForm asks whether the reflection was done and for free-text notes.
func ReflectionForm(completed *bool, notes *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Did you take a moment to reflect on your day?").
				Affirmative("Yes").
				Negative("Not today").
				Value(completed),
			huh.NewText().
				Title("Notes").
				Description("What went well? What was hard? (optional)").
				CharLimit(2000).
				Value(notes),
		),
	)
}
