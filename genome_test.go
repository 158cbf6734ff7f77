/* Copyright (C) 2022 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package rnamaps

/* -------------------------------------------------------------------------- */

import "strings"
import "testing"

/* -------------------------------------------------------------------------- */

func TestReadGenome(t *testing.T) {
  input :=
    "chr1 248956422\n" +
    "chr2 242193529\n"

  genome := Genome{}
  if err := genome.Read(strings.NewReader(input)); err != nil {
    t.Error(err)
  }
  if genome.Length() != 2 {
    t.Error("TestReadGenome failed!")
  }
  if n, err := genome.SeqLength("chr2"); err != nil || n != 242193529 {
    t.Error("TestReadGenome failed!")
  }
  if _, err := genome.SeqLength("chrX"); err == nil {
    t.Error("TestReadGenome failed!")
  }
}
