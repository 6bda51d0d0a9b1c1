package config

import "github.com/ayoisaiah/pomodoro/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errDecodeConfig = &apperr.Error{
		Message: "decoding config failed",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errMissingSoundFile = &apperr.Error{
		Message: "sound file does not exist: %s",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "log level must be one of debug, info, warn, or error, got %q",
	}

	errInvalidLogRotation = &apperr.Error{
		Message: "log max_size must be positive and max_backups must not be negative",
	}
)
