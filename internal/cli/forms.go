package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/lancer/internal/cli/formatter"
	"github.com/charmbracelet/huh"
)

// lancerHuhTheme returns the huh form theme matching the formatter palette.
func lancerHuhTheme() *huh.Theme {
	t := huh.ThemeBase()
	t.Focused.Title = t.Focused.Title.Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Background(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(formatter.ColorGreen)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(formatter.ColorFg)
	t.Blurred.Title = t.Blurred.Title.Foreground(formatter.ColorDim)
	return t
}

func validateRequired(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

// credentialsForm collects email and password for login.
func credentialsForm(email, password *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Value(email).
				Validate(validateRequired("email")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(password).
				Validate(validateRequired("password")),
		),
	).WithTheme(lancerHuhTheme()).WithShowHelp(false)
}

// signupForm collects the fields for a new account.
func signupForm(name, email, password *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Display Name").
				Value(name),
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Value(email).
				Validate(validateRequired("email")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(password).
				Validate(validateRequired("password")),
		),
	).WithTheme(lancerHuhTheme()).WithShowHelp(false)
}
