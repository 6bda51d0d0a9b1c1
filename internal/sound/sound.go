// Package sound plays the audio cue that warns of the end of a phase
package sound

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/ayoisaiah/pomodoro/internal/apperr"
	"github.com/ayoisaiah/pomodoro/internal/pathutil"
	"github.com/ayoisaiah/pomodoro/internal/static"
)

var (
	errInvalidSoundFormat = &apperr.Error{
		Message: "sound file must be in mp3, ogg, flac, or wav format",
	}

	errOpenSound = &apperr.Error{
		Message: "unable to open sound %s",
	}

	errDecodeSound = &apperr.Error{
		Message: "unable to decode sound %s",
	}

	errSpeaker = &apperr.Error{
		Message: "unable to initialise the speaker",
	}
)

// bufferSize is the speaker buffer as a fraction of a second.
const bufferSize = 10

// Off is a cue that stays silent.
type Off struct{}

func (Off) Play() error { return nil }

// Cue plays a short sound once per call. The sound is decoded into memory and
// the speaker initialised on first use.
type Cue struct {
	buf  *beep.Buffer
	err  error
	file string
	once sync.Once
}

// New returns a cue for the sound at file, or for the embedded clock sound if
// file is empty.
func New(file string) *Cue {
	return &Cue{file: file}
}

// Name is the display name of the cue sound.
func (c *Cue) Name() string {
	if c.file == "" {
		return pathutil.StripExtension(static.CueSound)
	}

	return pathutil.StripExtension(filepath.Base(c.file))
}

// Load decodes the sound and prepares the speaker. Calling it is optional;
// Play loads on demand.
func (c *Cue) Load() error {
	c.once.Do(func() {
		var format beep.Format

		c.buf, format, c.err = decode(c.file)
		if c.err != nil {
			return
		}

		err := speaker.Init(
			format.SampleRate,
			format.SampleRate.N(time.Second/bufferSize),
		)
		if err != nil {
			c.err = errSpeaker.Wrap(err)
		}
	})

	return c.err
}

// Play starts the sound without waiting for it to finish.
func (c *Cue) Play() error {
	if err := c.Load(); err != nil {
		return err
	}

	speaker.Play(c.buf.Streamer(0, c.buf.Len()))

	return nil
}

// decode reads a whole sound into memory. An empty file selects the embedded
// cue.
func decode(file string) (*beep.Buffer, beep.Format, error) {
	var (
		rc     io.ReadCloser
		err    error
		stream beep.StreamSeekCloser
		format beep.Format
	)

	name := file

	if file == "" {
		name = static.CueSound
		rc, err = static.Open(name)
	} else {
		rc, err = os.Open(file)
	}

	if err != nil {
		return nil, format, errOpenSound.Fmt(name).Wrap(err)
	}

	defer func() {
		_ = rc.Close()
	}()

	switch strings.ToLower(filepath.Ext(name)) {
	case ".ogg":
		stream, format, err = vorbis.Decode(rc)
	case ".mp3":
		stream, format, err = mp3.Decode(rc)
	case ".flac":
		stream, format, err = flac.Decode(rc)
	case ".wav":
		stream, format, err = wav.Decode(rc)
	default:
		return nil, format, errInvalidSoundFormat
	}

	if err != nil {
		return nil, format, errDecodeSound.Fmt(name).Wrap(err)
	}

	defer func() {
		_ = stream.Close()
	}()

	buf := beep.NewBuffer(format)
	buf.Append(stream)

	if err := stream.Err(); err != nil {
		return nil, format, errDecodeSound.Fmt(name).Wrap(err)
	}

	return buf, format, nil
}
