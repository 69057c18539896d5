// Package report surfaces unrecoverable host errors. A GUI process has no
// useful stderr, so fatal errors also raise a native message box before the
// process exits.
package report

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/sqweek/dialog"
)

// Dialogs can be disabled for headless runs and tests.
var ShowDialogs = true

// Fatalf logs the formatted message with its call site, shows it in an
// error dialog, and exits.
func Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if _, file, line, ok := runtime.Caller(1); ok {
		log.Printf("%s:%d: %s", file, line, msg)
	} else {
		log.Print(msg)
	}
	if ShowDialogs {
		dialog.Message("%s", msg).Title("Fatal error").Error()
	}
	os.Exit(1)
}

// Check is the guard wrapped around host calls that must not fail.
func Check(err error, op string) {
	if err == nil {
		return
	}
	msg := fmt.Sprintf("%s: %v", op, err)
	if _, file, line, ok := runtime.Caller(1); ok {
		log.Printf("%s:%d: %s", file, line, msg)
	} else {
		log.Print(msg)
	}
	if ShowDialogs {
		dialog.Message("%s", msg).Title("Fatal error").Error()
	}
	os.Exit(1)
}
