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

func TestReadUCSCGenes(t *testing.T) {
  input :=
    "geneA chr1 + 100 400 150 350 100,250, 200,400,\n" +
    "ncA   chr2 -  50 150  50  50 50,       150,\n"

  genes := Genes{}
  if err := genes.ReadUCSC(strings.NewReader(input)); err != nil {
    t.Error(err)
  }
  if genes.Length() != 2 {
    t.Error("TestReadUCSCGenes failed!")
  }
  if genes.Names[0] != "geneA" || genes.Seqnames[0] != "chr1" || genes.Strand[0] != '+' {
    t.Error("TestReadUCSCGenes failed!")
  }
  if genes.Tx[0] != NewRange(100, 400) || genes.Cds[0] != NewRange(150, 350) {
    t.Error("TestReadUCSCGenes failed!")
  }
  if len(genes.Exons[0]) != 2 || genes.Exons[0][0] != NewRange(100, 200) || genes.Exons[0][1] != NewRange(250, 400) {
    t.Error("TestReadUCSCGenes failed!")
  }
  if genes.Coding(0) != true {
    t.Error("TestReadUCSCGenes failed!")
  }
  if genes.Coding(1) != false {
    t.Error("TestReadUCSCGenes failed!")
  }
}

func TestReadUCSCGenesInvalid(t *testing.T) {
  // mismatching exon start and end lists
  input := "geneA chr1 + 100 400 150 350 100,250, 200,\n"

  genes := Genes{}
  if err := genes.ReadUCSC(strings.NewReader(input)); err == nil {
    t.Error("TestReadUCSCGenesInvalid failed!")
  }
}

func TestParseCommaInts(t *testing.T) {
  values, err := parseCommaInts("100,250,")
  if err != nil {
    t.Error(err)
  }
  if len(values) != 2 || values[0] != 100 || values[1] != 250 {
    t.Error("TestParseCommaInts failed!")
  }
  if _, err := parseCommaInts("100,abc"); err == nil {
    t.Error("TestParseCommaInts failed!")
  }
}
