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

//import "fmt"

/* -------------------------------------------------------------------------- */

// Container for gene models. Tx contains the transcription start and end
// positions, Cds the coding region and Exons the exon structure of each
// gene. A gene with an empty coding region is treated as noncoding.
type Genes struct {
  Names    []string
  Seqnames []string
  Tx       []Range
  Cds      []Range
  Exons    [][]Range
  Strand   []byte
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewGenes(names, seqnames []string, tx, cds []Range, exons [][]Range, strand []byte) Genes {
  n := len(names)
  if len(seqnames) != n || len(tx) != n || len(cds) != n || len(exons) != n || len(strand) != n {
    panic("NewGenes(): invalid arguments!")
  }
  for i := 0; i < n; i++ {
    if strand[i] != '+' && strand[i] != '-' {
      panic("NewGenes(): invalid strand!")
    }
  }
  return Genes{names, seqnames, tx, cds, exons, strand}
}

/* -------------------------------------------------------------------------- */

func (genes Genes) Length() int {
  return len(genes.Names)
}

// A gene is coding if its coding region is non-empty.
func (genes Genes) Coding(i int) bool {
  return genes.Cds[i].From < genes.Cds[i].To
}
