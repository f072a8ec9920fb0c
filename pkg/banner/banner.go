// Package banner renders short strings as large block letters.
package banner

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/arthur-debert/tagline/pkg/errors"
)

// Render returns text drawn in big block letters, one trailing newline.
func Render(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.New(errors.ErrInvalidInput, "banner text cannot be empty")
	}

	out, err := pterm.DefaultBigText.WithLetters(putils.LettersFromString(text)).Srender()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrRenderFailed, "failed to render banner")
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out, nil
}
