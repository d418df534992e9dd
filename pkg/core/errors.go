package core

import "fmt"

// ConfigurationError reports a missing or invalid setting. It is fatal and
// reported once at startup.
type ConfigurationError struct {
	Key string
	Msg string
}

func (e *ConfigurationError) Error() string {
	if e.Key == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Key, e.Msg)
}

// ParseError reports schema text that could not be turned into change records.
// It aborts the run for one event only.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse schema: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IOError reports a file that could not be read. A per-file IOError never
// aborts scanning of the remaining files.
type IOError struct {
	Path string
	Op   string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
