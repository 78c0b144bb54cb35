// seehuhn.de/go/layout - a document layout analysis library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNonWhitespaceLettersDropsBlankAndSpaceRuns(t *testing.T) {
	p := &Page{
		Letters: []Letter{
			{Value: "A"},
			{Value: " "},
			{Value: "\t\n"},
			{Value: ""},
			{Value: "b"},
		},
	}
	got := p.NonWhitespaceLetters()
	assert.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Value)
	assert.Equal(t, "b", got[1].Value)
}

func TestNonWhitespaceLettersEmptyPage(t *testing.T) {
	p := &Page{}
	assert.Empty(t, p.NonWhitespaceLetters())
}
