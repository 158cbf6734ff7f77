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
import "compress/gzip"
import "io"
import "log"
import "os"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// Container for crosslink sites. A site is a single nucleotide position with
// a non-negative score. Sites are expected to be sorted by chromosome name
// and position.
type Sites struct {
  Seqnames  []string
  Positions []int
  Strand    []byte
  Scores    []int
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewSites(seqnames []string, positions []int, strand []byte, scores []int) Sites {
  n := len(seqnames)
  if len(positions) != n || len(strand) != n || len(scores) != n {
    panic("NewSites(): invalid arguments!")
  }
  return Sites{seqnames, positions, strand, scores}
}

/* -------------------------------------------------------------------------- */

func (sites Sites) Length() int {
  return len(sites.Positions)
}

/* i/o
 * -------------------------------------------------------------------------- */

// Read crosslink sites from a six column bed file. Column four (name) is
// ignored. Rows with less than six columns are skipped with a warning.
func (sites *Sites) ReadBed6(reader io.Reader) error {
  seqnames  := []string{}
  positions := []int{}
  strand    := []byte{}
  scores    := []int{}

  scanner := bufio.NewScanner(reader)
  for scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) < 6 {
      log.Printf("warning: skipping bed record with %d columns (expected at least 6)", len(fields))
      continue
    }
    t1, err := strconv.ParseInt(fields[1], 10, 64); if err != nil {
      return err
    }
    t2, err := strconv.ParseInt(fields[4], 10, 64); if err != nil {
      return err
    }
    seqnames  = append(seqnames,  fields[0])
    positions = append(positions, int(t1))
    strand    = append(strand,    fields[5][0])
    scores    = append(scores,    int(t2))
  }
  if err := scanner.Err(); err != nil {
    return err
  }
  *sites = NewSites(seqnames, positions, strand, scores)

  return nil
}

// Import crosslink sites from a bed file. The file may be gzip compressed.
func (sites *Sites) ImportBed6(filename string) error {
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
    return sites.ReadBed6(g)
  }
  return sites.ReadBed6(f)
}
