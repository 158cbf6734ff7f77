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

import "sort"

/* landmark types
 * -------------------------------------------------------------------------- */

// A landmark type describes a junction between two adjacent region kinds.
// A landmark is only emitted if the upstream and downstream regions are
// strictly longer than the respective limits. The optional plot widths
// restrict the displayed window; if zero, the size limits are used instead.
type LandmarkType struct {
  Name            string
  UpstreamKinds   []RegionKind
  UpstreamLimit   int
  DownstreamKinds []RegionKind
  DownstreamLimit int
  UpstreamWidth   int
  DownstreamWidth int
}

func (t LandmarkType) PlotUpLimit() int {
  if t.UpstreamWidth != 0 {
    return t.UpstreamWidth
  }
  return t.UpstreamLimit
}

func (t LandmarkType) PlotDownLimit() int {
  if t.DownstreamWidth != 0 {
    return t.DownstreamWidth
  }
  return t.DownstreamLimit
}

/* -------------------------------------------------------------------------- */

var (
  ExonIntron = LandmarkType{
    Name           : "exon-intron",
    UpstreamKinds  : []RegionKind{KindCDS, KindUTR5},
    UpstreamLimit  : 50,
    DownstreamKinds: []RegionKind{KindIntron},
    DownstreamLimit: 150,
    DownstreamWidth: 100 }
  IntronExon = LandmarkType{
    Name           : "intron-exon",
    UpstreamKinds  : []RegionKind{KindIntron},
    UpstreamLimit  : 150,
    UpstreamWidth  : 100,
    DownstreamKinds: []RegionKind{KindCDS, KindUTR3},
    DownstreamLimit: 50 }
  GeneStart = LandmarkType{
    Name           : "gene-start",
    UpstreamKinds  : []RegionKind{KindIntergenic},
    UpstreamLimit  : 200,
    DownstreamKinds: []RegionKind{KindUTR5, KindCDS},
    DownstreamLimit: 50 }
  GeneEnd = LandmarkType{
    Name           : "gene-end",
    UpstreamKinds  : []RegionKind{KindCDS, KindUTR3},
    UpstreamLimit  : 200,
    DownstreamKinds: []RegionKind{KindIntergenic},
    DownstreamLimit: 200 }
  TranslationStart = LandmarkType{
    Name           : "translation-start",
    UpstreamKinds  : []RegionKind{KindUTR5},
    UpstreamLimit  : 50,
    DownstreamKinds: []RegionKind{KindCDS},
    DownstreamLimit: 50 }
  TranslationEnd = LandmarkType{
    Name           : "translation-end",
    UpstreamKinds  : []RegionKind{KindCDS},
    UpstreamLimit  : 50,
    DownstreamKinds: []RegionKind{KindUTR3},
    DownstreamLimit: 200 }
  NoncodingGeneStart = LandmarkType{
    Name           : "noncoding-gene-start",
    UpstreamKinds  : []RegionKind{KindIntergenic},
    UpstreamLimit  : 200,
    DownstreamKinds: []RegionKind{KindNcRNA},
    DownstreamLimit: 100 }
  NoncodingGeneEnd = LandmarkType{
    Name           : "noncoding-gene-end",
    UpstreamKinds  : []RegionKind{KindNcRNA},
    UpstreamLimit  : 100,
    DownstreamKinds: []RegionKind{KindIntergenic},
    DownstreamLimit: 200 }
)

// Registry of all landmark types. The slice may be replaced or reordered by
// callers that only need a subset of the maps.
var LandmarkTypes = []LandmarkType{
  ExonIntron,
  IntronExon,
  GeneStart,
  GeneEnd,
  TranslationStart,
  TranslationEnd,
  NoncodingGeneStart,
  NoncodingGeneEnd,
}

func FindLandmarkType(name string) (LandmarkType, bool) {
  for _, t := range LandmarkTypes {
    if t.Name == name {
      return t, true
    }
  }
  return LandmarkType{}, false
}

/* -------------------------------------------------------------------------- */

// Container for landmarks. A landmark is a single genomic position marking
// the junction between two adjacent regions.
type Landmarks struct {
  Seqnames  []string
  Positions []int
  Strand    []byte
}

func (landmarks Landmarks) Length() int {
  return len(landmarks.Positions)
}

/* sorting
 * -------------------------------------------------------------------------- */

type landmarksSort struct {
  Landmarks
}

func (r landmarksSort) Len() int {
  return r.Length()
}

func (r landmarksSort) Less(i, j int) bool {
  if r.Seqnames[i] != r.Seqnames[j] {
    return r.Seqnames[i] < r.Seqnames[j]
  }
  if r.Positions[i] != r.Positions[j] {
    return r.Positions[i] < r.Positions[j]
  }
  return r.Strand[i] < r.Strand[j]
}

func (r landmarksSort) Swap(i, j int) {
  r.Seqnames [i], r.Seqnames [j] = r.Seqnames [j], r.Seqnames [i]
  r.Positions[i], r.Positions[j] = r.Positions[j], r.Positions[i]
  r.Strand   [i], r.Strand   [j] = r.Strand   [j], r.Strand   [i]
}

/* -------------------------------------------------------------------------- */

func hasKind(kinds []RegionKind, kind RegionKind) bool {
  for _, k := range kinds {
    if k == kind {
      return true
    }
  }
  return false
}

/* -------------------------------------------------------------------------- */

// Scan adjacent region pairs and collect all landmarks of the given type.
// Both strands are processed independently. On the plus strand the landmark
// is placed on the first position of the downstream region. Since coordinate
// order and transcription order are reversed on the minus strand, the kind
// constraints are inverted there and the landmark is placed on the last
// position of the preceding region. The result is sorted by chromosome and
// position with exact duplicates removed.
func BuildLandmarks(regions Regions, landmarkType LandmarkType) Landmarks {
  seqnames  := []string{}
  positions := []int{}
  strand    := []byte{}

  for _, s := range []byte{'+', '-'} {
    stranded := regions.FilterStrand(s)

    for i := 1; i < stranded.Length(); i++ {
      if stranded.Seqnames[i-1] != stranded.Seqnames[i] {
        continue
      }
      prev := stranded.Ranges[i-1]
      curr := stranded.Ranges[i]

      if s == '+' {
        if !hasKind(landmarkType.UpstreamKinds,   stranded.Kinds[i-1]) ||
           !hasKind(landmarkType.DownstreamKinds, stranded.Kinds[i  ]) {
          continue
        }
        if prev.Length() <= landmarkType.UpstreamLimit || curr.Length() <= landmarkType.DownstreamLimit {
          continue
        }
        seqnames  = append(seqnames,  stranded.Seqnames[i])
        positions = append(positions, prev.To)
        strand    = append(strand,    s)
      } else {
        if !hasKind(landmarkType.DownstreamKinds, stranded.Kinds[i-1]) ||
           !hasKind(landmarkType.UpstreamKinds,   stranded.Kinds[i  ]) {
          continue
        }
        if prev.Length() <= landmarkType.DownstreamLimit || curr.Length() <= landmarkType.UpstreamLimit {
          continue
        }
        seqnames  = append(seqnames,  stranded.Seqnames[i])
        positions = append(positions, prev.To-1)
        strand    = append(strand,    s)
      }
    }
  }
  landmarks := Landmarks{seqnames, positions, strand}

  sort.Sort(landmarksSort{landmarks})

  return deduplicateLandmarks(landmarks)
}

func deduplicateLandmarks(landmarks Landmarks) Landmarks {
  seqnames  := []string{}
  positions := []int{}
  strand    := []byte{}

  for i := 0; i < landmarks.Length(); i++ {
    if i > 0 &&
       landmarks.Seqnames [i] == landmarks.Seqnames [i-1] &&
       landmarks.Positions[i] == landmarks.Positions[i-1] &&
       landmarks.Strand   [i] == landmarks.Strand   [i-1] {
      continue
    }
    seqnames  = append(seqnames,  landmarks.Seqnames [i])
    positions = append(positions, landmarks.Positions[i])
    strand    = append(strand,    landmarks.Strand   [i])
  }
  return Landmarks{seqnames, positions, strand}
}
