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

// Package log provides a singleton, colorized logger used across ferox.
package log

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

var (
	fgRed     = color.New(color.FgRed).SprintFunc()
	fgGreen   = color.New(color.FgGreen).SprintFunc()
	fgYellow  = color.New(color.FgYellow).SprintFunc()
	fgHiBlack = color.New(color.FgHiBlack).SprintFunc()
)

type log struct {
	out io.Writer
	err io.Writer
}

var mutex = &sync.Mutex{}
var instance *log

// Init initializes the singleton logger with the given writers. out receives
// Infof/Infoln output, err receives Errorf/Errorln output. If the logger
// hasn't been initialized when one of the logging functions is called, the
// call is a no-op.
func Init(out, err io.Writer) {
	if out == nil || err == nil {
		return
	}
	mutex.Lock()
	defer mutex.Unlock()
	if instance == nil {
		instance = &log{out: out, err: err}
	}
}

// Reset removes the current log instance.
func Reset() {
	mutex.Lock()
	defer mutex.Unlock()
	instance = nil
}

// Infof logs an information line using format.
func Infof(f string, args ...any) {
	if instance == nil {
		return
	}
	_, _ = fmt.Fprintf(instance.out, f, args...)
}

// Infoln logs an information line.
func Infoln(a any) {
	if instance == nil {
		return
	}
	_, _ = fmt.Fprintln(instance.out, a)
}

// Errorf logs an error using format.
func Errorf(f string, args ...any) {
	if instance == nil {
		return
	}
	msg := fmt.Sprintf(f, args...)
	_, _ = fmt.Fprintf(instance.err, "%s: %s", fgRed("ERROR"), msg)
}

// Errorln logs an error line.
func Errorln(a any) {
	if instance == nil {
		return
	}
	_, _ = fmt.Fprintf(instance.err, "%s: %s\n", fgRed("ERROR"), a)
}

// StatusWord colorizes a status string for console display: green for
// Killed, red for Survived, yellow for Unbuildable, grey otherwise.
func StatusWord(status, word string) string {
	switch status {
	case "Killed":
		return fgGreen(word)
	case "Survived":
		return fgRed(word)
	case "Unbuildable":
		return fgYellow(word)
	default:
		return fgHiBlack(word)
	}
}

// Padding returns the spaces needed to right-align a status word within a
// column of the given width.
func Padding(word string, width int) string {
	padLen := width - len(word)
	if padLen <= 0 {
		return ""
	}
	pad := make([]byte, padLen)
	for i := range pad {
		pad[i] = ' '
	}

	return string(pad)
}
