package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// RunClientForm asks for the name of a new API client
func RunClientForm() (string, error) {
	var name string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Client name").
				Description("Shown in logs next to requests signed by this client").
				Placeholder("zazz-ios").
				Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("client name is required")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeCatppuccin())

	if err := form.Run(); err != nil {
		return "", err
	}

	return strings.TrimSpace(name), nil
}
