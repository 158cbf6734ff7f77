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

import "fmt"
import "sort"

import "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

// Distance histograms per landmark. The map is keyed by locus, i.e. the
// string `chrom_strand_position' identifying one landmark, and maps signed
// distances to accumulated scores. Distances are signed such that positive
// values are downstream of the landmark in transcription direction.
type DistanceTable map[string]map[int]int

func (distances DistanceTable) add(locus string, distance, score int) {
  if _, ok := distances[locus]; !ok {
    distances[locus] = map[int]int{}
  }
  distances[locus][distance] += score
}

func (distances DistanceTable) merge(other DistanceTable) {
  for locus, histogram := range other {
    for distance, score := range histogram {
      distances.add(locus, distance, score)
    }
  }
}

/* -------------------------------------------------------------------------- */

type chromStrand struct {
  seqname string
  strand  byte
}

type distanceGroup struct {
  landmarks []int
  sites     []int
  scores    []int
}

// Find the index of the element in positions closest to pos. Positions must
// be sorted in ascending order. If two elements are equally close, the one
// with the smaller coordinate is returned.
func nearestPosition(positions []int, pos int) int {
  i := sort.SearchInts(positions, pos)
  if i == 0 {
    return 0
  }
  if i == len(positions) {
    return len(positions)-1
  }
  if iAbs(pos - positions[i-1]) <= iAbs(positions[i] - pos) {
    return i-1
  }
  return i
}

func (group distanceGroup) compute(key chromStrand, maxWidth int) (DistanceTable, int) {
  distances := DistanceTable{}
  totalCdna := 0

  for i := 0; i < len(group.sites); i++ {
    j := nearestPosition(group.landmarks, group.sites[i])
    d := group.sites[i] - group.landmarks[j]
    if key.strand == '-' {
      d = -d
    }
    // every site with a candidate landmark counts towards the
    // normalization total, even if it is farther than maxWidth
    totalCdna += group.scores[i]

    if iAbs(d) > maxWidth {
      continue
    }
    locus := fmt.Sprintf("%s_%c_%d", key.seqname, key.strand, group.landmarks[j])

    distances.add(locus, d, group.scores[i])
  }
  return distances, totalCdna
}

/* -------------------------------------------------------------------------- */

// For every crosslink site find the nearest landmark on the same chromosome
// and strand and accumulate the site score in the distance histogram of that
// landmark. Landmarks and sites must be sorted. Sites on a chromosome and
// strand without any landmark are dropped, they neither contribute to a
// histogram nor to the returned normalization total. Chromosome and strand
// combinations are independent and are processed in parallel on the given
// number of threads.
func ComputeDistances(landmarks Landmarks, sites Sites, maxWidth, threads int) (DistanceTable, int) {
  groups := map[chromStrand]*distanceGroup{}

  for i := 0; i < landmarks.Length(); i++ {
    if landmarks.Strand[i] != '+' && landmarks.Strand[i] != '-' {
      continue
    }
    key := chromStrand{landmarks.Seqnames[i], landmarks.Strand[i]}
    if _, ok := groups[key]; !ok {
      groups[key] = &distanceGroup{}
    }
    groups[key].landmarks = append(groups[key].landmarks, landmarks.Positions[i])
  }
  for i := 0; i < sites.Length(); i++ {
    key := chromStrand{sites.Seqnames[i], sites.Strand[i]}
    if group, ok := groups[key]; ok {
      group.sites  = append(group.sites,  sites.Positions[i])
      group.scores = append(group.scores, sites.Scores[i])
    }
  }
  keys := []chromStrand{}
  for key := range groups {
    keys = append(keys, key)
  }
  sort.Slice(keys, func(i, j int) bool {
    if keys[i].seqname != keys[j].seqname {
      return keys[i].seqname < keys[j].seqname
    }
    return keys[i].strand < keys[j].strand
  })

  if threads < 1 {
    threads = 1
  }
  pool := threadpool.New(threads, 100*threads)

  partial := make([]DistanceTable, len(keys))
  totals  := make([]int, len(keys))

  pool.RangeJob(0, len(keys), func(i int, pool threadpool.ThreadPool, erf func() error) error {
    partial[i], totals[i] = groups[keys[i]].compute(keys[i], maxWidth)
    return nil
  })

  distances := DistanceTable{}
  totalCdna := 0
  for i := 0; i < len(keys); i++ {
    distances.merge(partial[i])
    totalCdna += totals[i]
  }
  return distances, totalCdna
}
