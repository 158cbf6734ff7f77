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

func TestReadBed6(t *testing.T) {
  input :=
    "chr1\t12\t13\t.\t3\t+\n" +
    "chr1\t20\t21\t.\t1\t-\n"

  sites := Sites{}
  if err := sites.ReadBed6(strings.NewReader(input)); err != nil {
    t.Error(err)
  }
  if sites.Length() != 2 {
    t.Error("TestReadBed6 failed!")
  }
  if sites.Seqnames[0] != "chr1" || sites.Positions[0] != 12 || sites.Scores[0] != 3 || sites.Strand[0] != '+' {
    t.Error("TestReadBed6 failed!")
  }
  if sites.Positions[1] != 20 || sites.Scores[1] != 1 || sites.Strand[1] != '-' {
    t.Error("TestReadBed6 failed!")
  }
}

func TestReadBed6Malformed(t *testing.T) {
  // rows with less than six columns are skipped
  input :=
    "chr1\t12\t13\t.\t3\t+\n" +
    "chr1\t20\t21\n"

  sites := Sites{}
  if err := sites.ReadBed6(strings.NewReader(input)); err != nil {
    t.Error(err)
  }
  if sites.Length() != 1 {
    t.Error("TestReadBed6Malformed failed!")
  }
}
