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

import "bufio"
import "bytes"
import "fmt"
import "compress/gzip"
import "io"
import "log"
import "os"
import "sort"
import "strconv"
import "strings"

/* region kinds
 * -------------------------------------------------------------------------- */

type RegionKind int

const (
  KindCDS        RegionKind = iota
  KindUTR5
  KindUTR3
  KindIntron
  KindIntergenic
  KindNcRNA
  KindOther
)

func ParseRegionKind(str string) RegionKind {
  switch str {
  case "CDS"       : return KindCDS
  case "UTR5"      : return KindUTR5
  case "UTR3"      : return KindUTR3
  case "intron"    : return KindIntron
  case "intergenic": return KindIntergenic
  case "ncRNA"     : return KindNcRNA
  default          : return KindOther
  }
}

func (kind RegionKind) String() string {
  switch kind {
  case KindCDS       : return "CDS"
  case KindUTR5      : return "UTR5"
  case KindUTR3      : return "UTR3"
  case KindIntron    : return "intron"
  case KindIntergenic: return "intergenic"
  case KindNcRNA     : return "ncRNA"
  default            : return "other"
  }
}

/* -------------------------------------------------------------------------- */

// Container for annotated genomic regions. Regions on one chromosome and
// strand are expected to be non-overlapping and sorted by start position.
type Regions struct {
  Seqnames []string
  Ranges   []Range
  Strand   []byte
  Kinds    []RegionKind
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewRegions(seqnames []string, from, to []int, strand []byte, kinds []RegionKind) Regions {
  n := len(seqnames)
  if len(from) != n || len(to) != n || len(strand) != n || len(kinds) != n {
    panic("NewRegions(): invalid arguments!")
  }
  ranges := make([]Range, n)
  for i := 0; i < n; i++ {
    ranges[i] = NewRange(from[i], to[i])
    if strand[i] != '+' && strand[i] != '-' && strand[i] != '*' {
      panic("NewRegions(): invalid strand!")
    }
  }
  return Regions{seqnames, ranges, strand, kinds}
}

/* -------------------------------------------------------------------------- */

func (regions Regions) Length() int {
  return len(regions.Ranges)
}

func (regions Regions) Subset(indices []int) Regions {
  n := len(indices)
  seqnames := make([]string, n)
  from     := make([]int, n)
  to       := make([]int, n)
  strand   := make([]byte, n)
  kinds    := make([]RegionKind, n)

  for i := 0; i < n; i++ {
    seqnames[i] = regions.Seqnames[indices[i]]
    from    [i] = regions.Ranges  [indices[i]].From
    to      [i] = regions.Ranges  [indices[i]].To
    strand  [i] = regions.Strand  [indices[i]]
    kinds   [i] = regions.Kinds   [indices[i]]
  }
  return NewRegions(seqnames, from, to, strand, kinds)
}

func (regions Regions) FilterStrand(strand byte) Regions {
  idx := []int{}
  for i := 0; i < regions.Length(); i++ {
    if regions.Strand[i] == strand {
      idx = append(idx, i)
    }
  }
  return regions.Subset(idx)
}

/* sorting
 * -------------------------------------------------------------------------- */

type regionsSort struct {
  Regions
  indices []int
}

func (r regionsSort) Len() int {
  return r.Length()
}

func (r regionsSort) Less(i, j int) bool {
  si := r.Seqnames[r.indices[i]]
  sj := r.Seqnames[r.indices[j]]
  if si != sj {
    return si < sj
  }
  fi := r.Ranges[r.indices[i]].From
  fj := r.Ranges[r.indices[j]].From
  if fi != fj {
    return fi < fj
  }
  return r.Ranges[r.indices[i]].To < r.Ranges[r.indices[j]].To
}

func (r regionsSort) Swap(i, j int) {
  r.indices[i], r.indices[j] = r.indices[j], r.indices[i]
}

// Sort regions by chromosome name and start position.
func (regions Regions) Sort() Regions {
  indices := make([]int, regions.Length())
  for i := 0; i < len(indices); i++ {
    indices[i] = i
  }
  s := regionsSort{regions, indices}
  sort.Sort(s)
  return regions.Subset(s.indices)
}

/* i/o
 * -------------------------------------------------------------------------- */

// Read regions from GTF (gene transfer format). The first eight columns are
// seqname, source, feature, start, end, score, strand, and frame. Start and
// end positions are 1-based and closed; they are converted to 0-based
// half-open intervals. Rows with less than eight columns are skipped with
// a warning.
func (regions *Regions) ReadGTF(reader io.Reader) error {
  seqnames := []string{}
  from     := []int{}
  to       := []int{}
  strand   := []byte{}
  kinds    := []RegionKind{}

  scanner := bufio.NewScanner(reader)
  for scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) < 8 {
      log.Printf("warning: skipping GTF record with %d columns (expected at least 8)", len(fields))
      continue
    }
    v1, err := strconv.ParseInt(fields[3], 10, 64); if err != nil {
      return err
    }
    v2, err := strconv.ParseInt(fields[4], 10, 64); if err != nil {
      return err
    }
    seqnames = append(seqnames, fields[0])
    from     = append(from,     int(v1)-1)
    to       = append(to,       int(v2))
    strand   = append(strand,   fields[6][0])
    kinds    = append(kinds,    ParseRegionKind(fields[2]))
  }
  if err := scanner.Err(); err != nil {
    return err
  }
  *regions = NewRegions(seqnames, from, to, strand, kinds)

  return nil
}

// Import regions from a GTF file. The file may be gzip compressed.
func (regions *Regions) ImportGTF(filename string) error {
  f, err := os.Open(filename)
  if err != nil {
    return err
  }
  defer f.Close()

  if isGzip(filename) {
    g, err := gzip.NewReader(f)
    if err != nil {
      return err
    }
    defer g.Close()
    return regions.ReadGTF(g)
  }
  return regions.ReadGTF(f)
}

/* -------------------------------------------------------------------------- */

// Write regions as GTF with positions converted back to 1-based closed
// intervals.
func (regions Regions) WriteGTF(writer io.Writer) error {
  w := bufio.NewWriter(writer)

  for i := 0; i < regions.Length(); i++ {
    fmt.Fprintf(w,   "%s", regions.Seqnames[i])
    fmt.Fprintf(w, "\t%s", ".")
    fmt.Fprintf(w, "\t%s", regions.Kinds[i])
    fmt.Fprintf(w, "\t%d", regions.Ranges[i].From+1)
    fmt.Fprintf(w, "\t%d", regions.Ranges[i].To)
    fmt.Fprintf(w, "\t%s", ".")
    fmt.Fprintf(w, "\t%c", regions.Strand[i])
    fmt.Fprintf(w, "\t%s", ".")
    fmt.Fprintf(w, "\t%s", ".")
    fmt.Fprintf(w, "\n")
  }
  return w.Flush()
}

func (regions Regions) ExportGTF(filename string, compress bool) error {
  var buffer bytes.Buffer

  if err := regions.WriteGTF(&buffer); err != nil {
    return err
  }
  return writeFile(filename, &buffer, compress)
}
