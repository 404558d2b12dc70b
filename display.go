package travelbuddy

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
)

// TextDisplayer renders model replies for the terminal.
type TextDisplayer interface {
	Display(content string) error
}

// RawTextDisplay prints content as-is.
type RawTextDisplay struct{}

func (r *RawTextDisplay) Display(content string) error {
	fmt.Println(content)
	return nil
}

// GlamourTextDisplay renders markdown through glamour, falling back to raw
// output when rendering fails.
type GlamourTextDisplay struct {
	fallback RawTextDisplay
}

func NewGlamourTextDisplay() *GlamourTextDisplay {
	return &GlamourTextDisplay{}
}

func (g *GlamourTextDisplay) Display(content string) error {
	rendered, err := glamour.RenderWithEnvironmentConfig(content)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Glamour rendering failed: %v. Falling back to raw display.\n", err)
		return g.fallback.Display(content)
	}
	fmt.Println(rendered)
	return nil
}
