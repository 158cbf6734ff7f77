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

import "log"
import "sort"

/* -------------------------------------------------------------------------- */

type segmentation struct {
  seqnames []string
  from     []int
  to       []int
  strand   []byte
  kinds    []RegionKind
}

func (s *segmentation) push(seqname string, from, to int, strand byte, kind RegionKind) {
  if from >= to {
    return
  }
  s.seqnames = append(s.seqnames, seqname)
  s.from     = append(s.from,     from)
  s.to       = append(s.to,       to)
  s.strand   = append(s.strand,   strand)
  s.kinds    = append(s.kinds,    kind)
}

/* -------------------------------------------------------------------------- */

// Split one exon at the coding region boundaries. Parts outside the coding
// region are annotated as UTR, with the five prime UTR on the low coordinate
// side for the plus strand and on the high coordinate side for the minus
// strand.
func (s *segmentation) pushExon(seqname string, exon, cds Range, strand byte) {
  utrLow  := KindUTR5
  utrHigh := KindUTR3
  if strand == '-' {
    utrLow  = KindUTR3
    utrHigh = KindUTR5
  }
  s.push(seqname, exon.From, iMin(exon.To, cds.From), strand, utrLow)
  s.push(seqname, iMax(exon.From, cds.From), iMin(exon.To, cds.To), strand, KindCDS)
  s.push(seqname, iMax(exon.From, cds.To), exon.To, strand, utrHigh)
}

func (s *segmentation) pushGene(genes Genes, i int) {
  seqname := genes.Seqnames[i]
  strand  := genes.Strand[i]
  coding  := genes.Coding(i)

  exons := genes.Exons[i]
  if len(exons) == 0 {
    exons = []Range{genes.Tx[i]}
  }
  for j := 0; j < len(exons); j++ {
    if j > 0 {
      s.push(seqname, exons[j-1].To, exons[j].From, strand, KindIntron)
    }
    if coding {
      s.pushExon(seqname, exons[j], genes.Cds[i], strand)
    } else {
      s.push(seqname, exons[j].From, exons[j].To, strand, KindNcRNA)
    }
  }
}

/* -------------------------------------------------------------------------- */

// Derive an annotation of non-overlapping, gap-free regions from gene
// models. Each chromosome strand is split into intergenic, UTR5, CDS,
// intron, UTR3, and ncRNA segments. Genes overlapping a preceding gene on
// the same strand are skipped with a warning, the segmentation relies on
// genes being disjoint along each strand.
func Segment(genes Genes, genome Genome) Regions {
  s := segmentation{}

  byStrand := map[byte][]int{}
  for i := 0; i < genes.Length(); i++ {
    if _, err := genome.SeqLength(genes.Seqnames[i]); err != nil {
      log.Printf("warning: skipping gene `%s' on unknown sequence `%s'", genes.Names[i], genes.Seqnames[i])
      continue
    }
    byStrand[genes.Strand[i]] = append(byStrand[genes.Strand[i]], i)
  }

  for _, seqname := range genome.Seqnames {
    length, _ := genome.SeqLength(seqname)

    for _, strand := range []byte{'+', '-'} {
      idx := []int{}
      for _, i := range byStrand[strand] {
        if genes.Seqnames[i] == seqname {
          idx = append(idx, i)
        }
      }
      sort.Slice(idx, func(i, j int) bool {
        return genes.Tx[idx[i]].From < genes.Tx[idx[j]].From
      })

      cursor := 0
      for _, i := range idx {
        if genes.Tx[i].From < cursor {
          log.Printf("warning: skipping gene `%s' overlapping a preceding gene", genes.Names[i])
          continue
        }
        s.push(seqname, cursor, genes.Tx[i].From, strand, KindIntergenic)
        s.pushGene(genes, i)
        cursor = genes.Tx[i].To
      }
      s.push(seqname, cursor, length, strand, KindIntergenic)
    }
  }
  regions := NewRegions(s.seqnames, s.from, s.to, s.strand, s.kinds)

  return regions.Sort()
}
