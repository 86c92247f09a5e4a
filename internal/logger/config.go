package logger

import "go.uber.org/zap/zapcore"

// Config holds the settings to configure a root logger instance.
type Config struct {
	// Level is the minimum enabled logging level.
	// The default is "warn".
	Level string `json:"level"`
	// DisableCaller stops annotating logs with the calling function's file name and line number.
	// By default, callers are not annotated.
	DisableCaller bool `json:"disableCaller"`
	// DisableStacktrace disables automatic stacktrace capturing.
	DisableStacktrace bool `json:"disableStacktrace"`
	// Encoding sets the logger's encoding. Valid values are "json" and "console".
	// The default is "console".
	Encoding string `json:"encoding"`
	// OutputPaths is a list of URLs, file paths or stdout/stderr to write logging output to.
	// The default is ["stderr"], stdout carries the converted value.
	OutputPaths []string `json:"outputPaths"`
}

// DefaultCfg is the configuration used by the CLI unless --verbose is given.
var DefaultCfg = Config{
	Level:             "warn",
	DisableCaller:     true,
	DisableStacktrace: true,
	Encoding:          "console",
	OutputPaths:       []string{"stderr"},
}

// VerboseCfg logs everything down to debug level, with callers.
var VerboseCfg = Config{
	Level:       "debug",
	Encoding:    "console",
	OutputPaths: []string{"stderr"},
}

var defaultEncoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	EncodeLevel:    zapcore.CapitalLevelEncoder,    // level in upper case
	EncodeTime:     zapcore.RFC3339TimeEncoder,     // timestamp according to RFC3339
	EncodeDuration: zapcore.SecondsDurationEncoder, // duration in seconds
	EncodeCaller:   zapcore.ShortCallerEncoder,     // caller according to package/file:line
}
