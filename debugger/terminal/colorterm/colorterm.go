// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package colorterm implements the Terminal interface for the debugger. It
// supports line editing, a command history that persists between sessions,
// and coloured output.
package colorterm

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/version"
	"github.com/mattn/go-colorable"
	"github.com/mgutz/ansi"
	"github.com/shibukawa/configdir"
)

// the name of the history file in the user's cache folder
const historyFile = "history"

// ColorTerminal implements debugger UI interface with a basic ANSI terminal.
type ColorTerminal struct {
	rl     *readline.Instance
	output io.Writer
}

// Initialise implements the terminal.Terminal interface.
func (ct *ColorTerminal) Initialise() error {
	// the history file is optional. if the cache folder can't be created
	// then the history will not persist
	var historyPath string
	cacheDir := configdir.New(version.ApplicationName, "debugger").QueryCacheFolder()
	if err := cacheDir.MkdirAll(); err == nil {
		historyPath = filepath.Join(cacheDir.Path, historyFile)
	} else {
		logger.Log(logger.Allow, "colorterm", err)
	}

	ct.output = colorable.NewColorableStdout()

	var err error
	ct.rl, err = readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     historyPath,
		InterruptPrompt: "^C",
		EOFPrompt:       "",
		Stdout:          ct.output,
	})
	if err != nil {
		return curated.Errorf("colorterm: %v", err)
	}

	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (ct *ColorTerminal) CleanUp() {
	if ct.rl != nil {
		ct.rl.Close()
	}
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt string) (string, error) {
	ct.rl.SetPrompt(ansi.Color(prompt, promptStyle))

	s, err := ct.rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) {
			return "", curated.Errorf(terminal.UserInterrupt)
		}
		if errors.Is(err, io.EOF) {
			return "", curated.Errorf(terminal.UserAbort)
		}
		return "", curated.Errorf("colorterm: %v", err)
	}

	return s, nil
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if style == terminal.StyleError {
		s = fmt.Sprintf("* %s", s)
	}
	fmt.Fprintln(ct.output, colorise(style, s))
}
