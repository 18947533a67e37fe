// Package translate localizes the diagnostic text of the assembler and emulator.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer *message.Printer
	current language.Tag
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("vc8000: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	use(message.MatchLanguage(locales...))
}

func use(tag language.Tag) {
	current = tag
	printer = message.NewPrinter(tag)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Language returns the language diagnostics are rendered in.
func Language() language.Tag {
	return current
}

// SetLanguage renders all further diagnostics for a BCP 47 language tag.
func SetLanguage(tag string) (err error) {
	lang, err := language.Parse(tag)
	if err != nil {
		return
	}

	use(lang)

	return
}
