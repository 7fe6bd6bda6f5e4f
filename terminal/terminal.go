/*
 *    Copyright (c) 2026 The ViKey-Bridge Authors
 *
 *    This file is part of ViKey-Bridge.
 *
 *    ViKey-Bridge is free software: you can redistribute it and/or modify
 *    it under the terms of the GNU General Public License as published by
 *    the Free Software Foundation, either version 3 of the License, or
 *    (at your option) any later version.
 *
 *    ViKey-Bridge is distributed in the hope that it will be useful,
 *    but WITHOUT ANY WARRANTY; without even the implied warranty of
 *    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 *    GNU General Public License for more details.
 *
 *    You should have received a copy of the GNU General Public License
 *    along with ViKey-Bridge.  If not, see <http://www.gnu.org/licenses/>.
 */

package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	ForegroundWhite = "\x1b[97m"
	ForegroundReset = "\x1b[39m"
	BackgroundBlack = "\x1b[40m"
	BackgroundReset = "\x1b[49m"
)

func SupportsColor(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

func SetTitle(title string) bool {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}
	os.Stdout.Write([]byte("\x1b]2;" + title + "\x07"))
	os.Stdout.Sync()
	return true
}
