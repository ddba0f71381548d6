// Package translate formats user-facing bfvm messages for the host locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("bfvm: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Logf writes a translated en-US format to logger, or the default logger if nil.
func Logf(logger *log.Logger, key message.Reference, args ...any) {
	if logger == nil {
		logger = log.Default()
	}
	logger.Print(printer.Sprintf(key, args...))
}
