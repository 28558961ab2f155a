package render

import (
	"github.com/fatih/color"
)

// FormatError formats an error for the terminal in the %+v form, so errors
// carrying a stack print it below the message.
func FormatError(err error) string {
	return color.New(color.FgRed).Sprintf("Error: %+v", err)
}
