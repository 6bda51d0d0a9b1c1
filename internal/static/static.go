// Package static embeds the default cue sound into the binary
package static

import (
	"embed"
	"io/fs"
	"path"
)

const (
	filesDir = "files"

	// CueSound is the name of the embedded pre-expiry sound.
	CueSound = "clock.wav"
)

//go:embed files/*
var Files embed.FS

// FilePath returns the path of an embedded file within Files.
func FilePath(name string) string {
	return path.Join(filesDir, name)
}

// Open opens an embedded file by name.
func Open(name string) (fs.File, error) {
	return Files.Open(FilePath(name))
}
