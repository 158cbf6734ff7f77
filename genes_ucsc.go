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
import "fmt"
import "compress/gzip"
import "database/sql"
import "io"
import "os"
import "strconv"
import "strings"

import _ "github.com/go-sql-driver/mysql"

/* -------------------------------------------------------------------------- */

// Parse a comma separated list of integers as found in the exonStarts and
// exonEnds columns of UCSC gene tables. A trailing comma is permitted.
func parseCommaInts(str string) ([]int, error) {
  result := []int{}

  for _, field := range strings.Split(strings.TrimSuffix(str, ","), ",") {
    if field == "" {
      continue
    }
    v, err := strconv.ParseInt(field, 10, 64)
    if err != nil {
      return nil, err
    }
    result = append(result, int(v))
  }
  return result, nil
}

func exonRanges(startsStr, endsStr string) ([]Range, error) {
  starts, err := parseCommaInts(startsStr)
  if err != nil {
    return nil, err
  }
  ends, err := parseCommaInts(endsStr)
  if err != nil {
    return nil, err
  }
  if len(starts) != len(ends) {
    return nil, fmt.Errorf("exon start and end lists have different lengths")
  }
  exons := make([]Range, len(starts))
  for i := 0; i < len(starts); i++ {
    exons[i] = NewRange(starts[i], ends[i])
  }
  return exons, nil
}

/* import genes from ucsc
 * -------------------------------------------------------------------------- */

// Read gene models from a UCSC text file. The format is a whitespace
// separated table with columns: Name, Seqname, Strand, TxStart, TxEnd,
// CdsStart, CdsEnd, ExonStarts, and ExonEnds. Exon starts and ends are
// comma separated lists.
func (genes *Genes) ReadUCSC(reader io.Reader) error {
  names    := []string{}
  seqnames := []string{}
  tx       := []Range{}
  cds      := []Range{}
  exons    := [][]Range{}
  strand   := []byte{}

  scanner := bufio.NewScanner(reader)
  for scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) != 9 {
      return fmt.Errorf("file must have nine columns")
    }
    t1, e := strconv.ParseInt(fields[3], 10, 64)
    if e != nil {
      return e
    }
    t2, e := strconv.ParseInt(fields[4], 10, 64)
    if e != nil {
      return e
    }
    t3, e := strconv.ParseInt(fields[5], 10, 64)
    if e != nil {
      return e
    }
    t4, e := strconv.ParseInt(fields[6], 10, 64)
    if e != nil {
      return e
    }
    r, e := exonRanges(fields[7], fields[8])
    if e != nil {
      return e
    }
    names    = append(names,    fields[0])
    seqnames = append(seqnames, fields[1])
    tx       = append(tx,       NewRange(int(t1), int(t2)))
    cds      = append(cds,      NewRange(int(t3), int(t4)))
    exons    = append(exons,    r)
    strand   = append(strand,   fields[2][0])
  }
  if err := scanner.Err(); err != nil {
    return err
  }
  *genes = NewGenes(names, seqnames, tx, cds, exons, strand)

  return nil
}

func (genes *Genes) ImportUCSC(filename string) error {
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
    return genes.ReadUCSC(g)
  }
  return genes.ReadUCSC(f)
}

/* -------------------------------------------------------------------------- */

// Import gene models directly from the UCSC MySQL server, e.g. with
// genome "hg38" and table "refGene".
func ImportGenesFromUCSC(genome, table string) (Genes, error) {
  genes := Genes{}
  /* variables for storing a single database row */
  var i_name, i_seqname, i_strand string
  var i_txFrom, i_txTo, i_cdsFrom, i_cdsTo int
  var i_exonStarts, i_exonEnds string

  names    := []string{}
  seqnames := []string{}
  tx       := []Range{}
  cds      := []Range{}
  exons    := [][]Range{}
  strand   := []byte{}

  /* open connection */
  db, err := sql.Open("mysql",
    fmt.Sprintf("genome@tcp(genome-mysql.cse.ucsc.edu:3306)/%s", genome))
  if err != nil {
    return genes, err
  }
  defer db.Close()

  err = db.Ping()
  if err != nil {
    return genes, err
  }

  /* receive data */
  rows, err := db.Query(
    fmt.Sprintf("SELECT name, chrom, strand, txStart, txEnd, cdsStart, cdsEnd, exonStarts, exonEnds FROM %s", table))
  if err != nil {
    return genes, err
  }
  defer rows.Close()
  for rows.Next() {
    err := rows.Scan(&i_name, &i_seqname, &i_strand, &i_txFrom, &i_txTo, &i_cdsFrom, &i_cdsTo, &i_exonStarts, &i_exonEnds)
    if err != nil {
      return genes, err
    }
    r, err := exonRanges(i_exonStarts, i_exonEnds)
    if err != nil {
      return genes, err
    }
    names    = append(names,    i_name)
    seqnames = append(seqnames, i_seqname)
    tx       = append(tx,       NewRange(i_txFrom, i_txTo))
    cds      = append(cds,      NewRange(i_cdsFrom, i_cdsTo))
    exons    = append(exons,    r)
    strand   = append(strand,   i_strand[0])
  }
  return NewGenes(names, seqnames, tx, cds, exons, strand), nil
}
