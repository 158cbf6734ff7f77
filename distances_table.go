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
import "os"
import "sort"
import "strconv"
import "strings"

/* i/o
 * -------------------------------------------------------------------------- */

// Write the distance table as tab separated text. The first line holds the
// normalization total. Each following line holds one locus with its
// distance:score pairs, loci sorted lexicographically and distances in
// ascending order.
func (distances DistanceTable) WriteTable(writer io.Writer, totalCdna int) error {
  w := bufio.NewWriter(writer)

  fmt.Fprintf(w, "total_cdna:%d\n", totalCdna)

  loci := []string{}
  for locus := range distances {
    loci = append(loci, locus)
  }
  sort.Strings(loci)

  for _, locus := range loci {
    positions := []int{}
    for d := range distances[locus] {
      positions = append(positions, d)
    }
    sort.Ints(positions)

    fmt.Fprintf(w, "%s", locus)
    for _, d := range positions {
      fmt.Fprintf(w, "\t%d:%d", d, distances[locus][d])
    }
    fmt.Fprintf(w, "\n")
  }
  return w.Flush()
}

func (distances DistanceTable) ExportTable(filename string, totalCdna int, compress bool) error {
  var buffer bytes.Buffer

  if err := distances.WriteTable(&buffer, totalCdna); err != nil {
    return err
  }
  return writeFile(filename, &buffer, compress)
}

/* -------------------------------------------------------------------------- */

func readTableHeader(scanner *bufio.Scanner) (int, error) {
  if !scanner.Scan() {
    return 0, fmt.Errorf("distance table is empty")
  }
  fields := strings.SplitN(strings.TrimSpace(scanner.Text()), ":", 2)
  if len(fields) != 2 || fields[0] != "total_cdna" {
    return 0, fmt.Errorf("invalid distance table header `%s'", scanner.Text())
  }
  total, err := strconv.ParseInt(fields[1], 10, 64)
  if err != nil {
    return 0, err
  }
  return int(total), nil
}

func parseTableRow(line string) (string, map[int]int, error) {
  fields := strings.Split(line, "\t")

  histogram := map[int]int{}
  for _, field := range fields[1:] {
    pair := strings.SplitN(field, ":", 2)
    if len(pair) != 2 {
      return "", nil, fmt.Errorf("invalid distance record `%s'", field)
    }
    d, err := strconv.ParseInt(pair[0], 10, 64)
    if err != nil {
      return "", nil, err
    }
    score, err := strconv.ParseInt(pair[1], 10, 64)
    if err != nil {
      return "", nil, err
    }
    histogram[int(d)] = int(score)
  }
  return fields[0], histogram, nil
}

// Read a distance table and merge all loci into one combined histogram,
// keeping only distances d with upLimit <= d <= downLimit. Returns the
// combined histogram, the number of loci that contributed at least one
// in-range record, and the normalization total.
func ReadTable(reader io.Reader, upLimit, downLimit int) (map[int]int, int, int, error) {
  data  := map[int]int{}
  count := 0

  scanner := bufio.NewScanner(reader)

  totalCdna, err := readTableHeader(scanner)
  if err != nil {
    return nil, 0, 0, err
  }
  for scanner.Scan() {
    if len(strings.TrimSpace(scanner.Text())) == 0 {
      continue
    }
    _, histogram, err := parseTableRow(scanner.Text())
    if err != nil {
      return nil, 0, 0, err
    }
    contributing := false
    for d, score := range histogram {
      if upLimit <= d && d <= downLimit {
        data[d] += score
        contributing = true
      }
    }
    if contributing {
      count++
    }
  }
  if err := scanner.Err(); err != nil {
    return nil, 0, 0, err
  }
  return data, count, totalCdna, nil
}

// Read a distance table keeping loci separate. Loci without any in-range
// record are dropped.
func ReadTableLoci(reader io.Reader, upLimit, downLimit int) ([]string, []map[int]int, int, error) {
  loci   := []string{}
  curves := []map[int]int{}

  scanner := bufio.NewScanner(reader)

  totalCdna, err := readTableHeader(scanner)
  if err != nil {
    return nil, nil, 0, err
  }
  for scanner.Scan() {
    if len(strings.TrimSpace(scanner.Text())) == 0 {
      continue
    }
    locus, histogram, err := parseTableRow(scanner.Text())
    if err != nil {
      return nil, nil, 0, err
    }
    curve := map[int]int{}
    for d, score := range histogram {
      if upLimit <= d && d <= downLimit {
        curve[d] = score
      }
    }
    if len(curve) > 0 {
      loci   = append(loci,   locus)
      curves = append(curves, curve)
    }
  }
  if err := scanner.Err(); err != nil {
    return nil, nil, 0, err
  }
  return loci, curves, totalCdna, nil
}

func importTable(filename string, f func(io.Reader) error) error {
  file, err := os.Open(filename)
  if err != nil {
    return err
  }
  defer file.Close()

  if isGzip(filename) {
    g, err := gzip.NewReader(file)
    if err != nil {
      return err
    }
    defer g.Close()
    return f(g)
  }
  return f(file)
}

func ImportTable(filename string, upLimit, downLimit int) (map[int]int, int, int, error) {
  var data      map[int]int
  var count     int
  var totalCdna int

  err := importTable(filename, func(reader io.Reader) error {
    var err error
    data, count, totalCdna, err = ReadTable(reader, upLimit, downLimit)
    return err
  })
  return data, count, totalCdna, err
}

func ImportTableLoci(filename string, upLimit, downLimit int) ([]string, []map[int]int, int, error) {
  var loci      []string
  var curves    []map[int]int
  var totalCdna int

  err := importTable(filename, func(reader io.Reader) error {
    var err error
    loci, curves, totalCdna, err = ReadTableLoci(reader, upLimit, downLimit)
    return err
  })
  return loci, curves, totalCdna, err
}

/* -------------------------------------------------------------------------- */

// Normalize scores to counts per million, i.e. score/total * 10^6. Applied
// only for display, the table format always stores raw scores.
func NormalizeCPM(data map[int]int, totalCdna int) map[int]float64 {
  normalized := map[int]float64{}
  for d, score := range data {
    normalized[d] = float64(score)/float64(totalCdna)*1e6
  }
  return normalized
}
