// Package osutil holds operating system specific values
package osutil

import "runtime"

const Windows = "windows"

type ExitCode int

const (
	ExitOK    ExitCode = 0
	ExitError ExitCode = 1
)

// DefaultEditor is the editor used for the config file when neither VISUAL
// nor EDITOR is set.
func DefaultEditor() string {
	if runtime.GOOS == Windows {
		return "C:\\Windows\\system32\\notepad.exe"
	}

	return "nano"
}
