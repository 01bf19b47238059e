/*
 * Copyright 2022 The Gremlins Authors
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *        http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

// Package execution defines the error kinds that can abort a run before it
// starts, each mapped to a specific process exit code.
package execution

// ErrorType is the type of the error that can generate a specific exit status.
type ErrorType int

const (
	// ConfigError is raised for an unknown language name or other
	// configuration that cannot be resolved before a run starts.
	ConfigError ErrorType = iota

	// DiscoveryError is raised when the source root cannot be found or
	// contains no matching files.
	DiscoveryError

	// NoTokensError is raised when tokenisation of the discovered files
	// yields no mutable operators.
	NoTokensError
)

// String produces the human readable sentence for the ErrorType.
func (e ErrorType) String() string {
	switch e {
	case ConfigError:
		return "configuration error"
	case DiscoveryError:
		return "no source files found"
	case NoTokensError:
		return "no mutable tokens found"
	}
	panic("this should not happen")
}

var errorMapping = map[ErrorType]int{
	ConfigError:    1,
	DiscoveryError: 2,
	NoTokensError:  3,
}

// ExitError is a special Error that is raised when special conditions require
// ferox to exit with a specific errorCode.
// If this error is returned and/or properly wrapped, it will reach the main
// function. In the main, the exitCode will be set as the exit code of the
// execution.
type ExitError struct {
	errorType ErrorType
	exitCode  int
	detail    string
}

// NewExitErr instantiates a new ExitError, optionally carrying a detail
// message appended to the ErrorType's human readable sentence.
func NewExitErr(et ErrorType, detail string) *ExitError {
	exitCode := errorMapping[et]

	return &ExitError{exitCode: exitCode, errorType: et, detail: detail}
}

// Error is the implementation of the Error interface and returns
// the ErrorType human readable message.
func (e *ExitError) Error() string {
	if e.detail == "" {
		return e.errorType.String()
	}

	return e.errorType.String() + ": " + e.detail
}

// ExitCode returns the exit code associated with the specific ErrorType.
func (e *ExitError) ExitCode() int {
	return e.exitCode
}
