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
import "testing"

/* -------------------------------------------------------------------------- */

type segmentExpectation struct {
  seqname string
  from    int
  to      int
  strand  byte
  kind    RegionKind
}

func checkSegmentation(t *testing.T, name string, regions Regions, expected []segmentExpectation) {
  if regions.Length() != len(expected) {
    t.Errorf("%s failed: expected %d regions, got %d!", name, len(expected), regions.Length())
    return
  }
  for i, e := range expected {
    if regions.Seqnames[i]    != e.seqname ||
       regions.Ranges[i].From != e.from    ||
       regions.Ranges[i].To   != e.to      ||
       regions.Strand[i]      != e.strand  ||
       regions.Kinds[i]       != e.kind {
      t.Errorf("%s failed at region %d!", name, i)
    }
  }
}

/* -------------------------------------------------------------------------- */

func TestSegmentCodingGene(t *testing.T) {
  genes := NewGenes(
    []string{"geneA"},
    []string{"chr1"},
    []Range{NewRange(100, 400)},
    []Range{NewRange(150, 350)},
    [][]Range{{NewRange(100, 200), NewRange(250, 400)}},
    []byte{'+'})
  genome := NewGenome([]string{"chr1"}, []int{1000})

  regions := Segment(genes, genome)

  checkSegmentation(t, "TestSegmentCodingGene", regions, []segmentExpectation{
    {"chr1",    0,  100, '+', KindIntergenic},
    {"chr1",    0, 1000, '-', KindIntergenic},
    {"chr1",  100,  150, '+', KindUTR5},
    {"chr1",  150,  200, '+', KindCDS},
    {"chr1",  200,  250, '+', KindIntron},
    {"chr1",  250,  350, '+', KindCDS},
    {"chr1",  350,  400, '+', KindUTR3},
    {"chr1",  400, 1000, '+', KindIntergenic},
  })
}

func TestSegmentNoncodingGene(t *testing.T) {
  genes := NewGenes(
    []string{"ncA"},
    []string{"chr1"},
    []Range{NewRange(500, 700)},
    []Range{NewRange(500, 500)},
    [][]Range{{NewRange(500, 600), NewRange(620, 700)}},
    []byte{'-'})
  genome := NewGenome([]string{"chr1"}, []int{1000})

  regions := Segment(genes, genome)

  checkSegmentation(t, "TestSegmentNoncodingGene", regions, []segmentExpectation{
    {"chr1",    0,  500, '-', KindIntergenic},
    {"chr1",    0, 1000, '+', KindIntergenic},
    {"chr1",  500,  600, '-', KindNcRNA},
    {"chr1",  600,  620, '-', KindIntron},
    {"chr1",  620,  700, '-', KindNcRNA},
    {"chr1",  700, 1000, '-', KindIntergenic},
  })
}

func TestSegmentMinusStrandUTR(t *testing.T) {
  // on the minus strand the five prime UTR is on the high coordinate side
  genes := NewGenes(
    []string{"geneB"},
    []string{"chr1"},
    []Range{NewRange(100, 400)},
    []Range{NewRange(150, 350)},
    [][]Range{{NewRange(100, 400)}},
    []byte{'-'})
  genome := NewGenome([]string{"chr1"}, []int{500})

  regions := Segment(genes, genome)

  checkSegmentation(t, "TestSegmentMinusStrandUTR", regions, []segmentExpectation{
    {"chr1",    0,  100, '-', KindIntergenic},
    {"chr1",    0,  500, '+', KindIntergenic},
    {"chr1",  100,  150, '-', KindUTR3},
    {"chr1",  150,  350, '-', KindCDS},
    {"chr1",  350,  400, '-', KindUTR5},
    {"chr1",  400,  500, '-', KindIntergenic},
  })
}

func TestSegmentOverlappingGenes(t *testing.T) {
  genes := NewGenes(
    []string{"geneA", "geneB"},
    []string{"chr1", "chr1"},
    []Range{NewRange(100, 400), NewRange(300, 500)},
    []Range{NewRange(100, 400), NewRange(300, 500)},
    [][]Range{{NewRange(100, 400)}, {NewRange(300, 500)}},
    []byte{'+', '+'})
  genome := NewGenome([]string{"chr1"}, []int{1000})

  regions := Segment(genes, genome)

  // the second gene overlaps the first and is skipped
  checkSegmentation(t, "TestSegmentOverlappingGenes", regions, []segmentExpectation{
    {"chr1",    0,  100, '+', KindIntergenic},
    {"chr1",    0, 1000, '-', KindIntergenic},
    {"chr1",  100,  400, '+', KindCDS},
    {"chr1",  400, 1000, '+', KindIntergenic},
  })
}

/* -------------------------------------------------------------------------- */

func TestSegmentLandmarks(t *testing.T) {
  // segmentation output feeds directly into the landmark builder
  genes := NewGenes(
    []string{"geneA"},
    []string{"chr1"},
    []Range{NewRange(300, 800)},
    []Range{NewRange(400, 700)},
    [][]Range{{NewRange(300, 500), NewRange(660, 800)}},
    []byte{'+'})
  genome := NewGenome([]string{"chr1"}, []int{2000})

  regions := Segment(genes, genome)

  landmarks := BuildLandmarks(regions, GeneStart)

  if landmarks.Length() != 1 {
    t.Error("TestSegmentLandmarks failed!")
  } else {
    if landmarks.Positions[0] != 300 || landmarks.Strand[0] != '+' {
      t.Error("TestSegmentLandmarks failed!")
    }
  }
}
