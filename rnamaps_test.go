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
import "os"
import "path/filepath"
import "strings"
import "testing"

/* -------------------------------------------------------------------------- */

func TestRun(t *testing.T) {
  regionsGTF := strings.Join([]string{
    "chr1\t.\tintergenic\t1\t210\t.\t+\t.\t.",
    "chr1\t.\tUTR5\t211\t270\t.\t+\t.\t.",
    "chr1\t.\tCDS\t271\t330\t.\t+\t.\t.",
    "chr1\t.\tintron\t331\t490\t.\t+\t.\t.",
    "chr1\t.\tCDS\t491\t550\t.\t+\t.\t.",
    "chr1\t.\tUTR3\t551\t760\t.\t+\t.\t.",
    "chr1\t.\tintergenic\t761\t1100\t.\t+\t.\t.",
    "chr1\t.\tintergenic\t1\t300\t.\t-\t.\t.",
    "chr1\t.\tncRNA\t301\t500\t.\t-\t.\t.",
    "chr1\t.\tintron\t501\t600\t.\t-\t.\t.",
    "chr1\t.\tncRNA\t601\t750\t.\t-\t.\t.",
    "chr1\t.\tintergenic\t751\t1000\t.\t-\t.\t.",
  }, "\n")

  regions := Regions{}
  if err := regions.ReadGTF(strings.NewReader(regionsGTF)); err != nil {
    t.Error(err)
  }
  regions = regions.Sort()

  sites := NewSites(
    []string{"chr1", "chr1", "chr1", "chr1"},
    []int{120, 350, 550, 750},
    []byte{'+', '+', '+', '-'},
    []int{1, 1, 1, 1})

  outdir := t.TempDir()

  if err := Run(DefaultConfig(), sites, regions, LandmarkTypes, outdir, "sites"); err != nil {
    t.Error(err)
  }
  // the fixture produces landmarks and in-range sites for all eight types
  for _, landmarkType := range LandmarkTypes {
    filename := filepath.Join(outdir, fmt.Sprintf("sites_%s.tsv", landmarkType.Name))

    info, err := os.Stat(filename)
    if err != nil {
      t.Errorf("TestRun failed: missing output for %s!", landmarkType.Name)
      continue
    }
    if info.Size() <= int64(len("total_cdna:0\n")) {
      t.Errorf("TestRun failed: trivial output for %s!", landmarkType.Name)
    }
  }
}

func TestRunNoLandmarks(t *testing.T) {
  // regions that yield no landmarks must not produce output files
  regions := NewRegions(
    []string{"chr1"},
    []int{0},
    []int{1000},
    []byte{'+'},
    []RegionKind{KindIntergenic})

  sites := NewSites(
    []string{"chr1"},
    []int{120},
    []byte{'+'},
    []int{1})

  outdir := t.TempDir()

  if err := Run(DefaultConfig(), sites, regions, LandmarkTypes, outdir, "sites"); err != nil {
    t.Error(err)
  }
  entries, err := os.ReadDir(outdir)
  if err != nil {
    t.Error(err)
  }
  if len(entries) != 0 {
    t.Error("TestRunNoLandmarks failed!")
  }
}

func TestRunNoDistances(t *testing.T) {
  // landmarks exist but all sites are out of range; the type is skipped
  regionsGTF := strings.Join([]string{
    "chr1\t.\tUTR5\t101\t270\t.\t+\t.\t.",
    "chr1\t.\tCDS\t271\t400\t.\t+\t.\t.",
  }, "\n")

  regions := Regions{}
  if err := regions.ReadGTF(strings.NewReader(regionsGTF)); err != nil {
    t.Error(err)
  }
  sites := NewSites(
    []string{"chr1"},
    []int{5000},
    []byte{'+'},
    []int{1})

  outdir := t.TempDir()

  config := DefaultConfig()
  config.MaxWidth = 100

  if err := Run(config, sites, regions, []LandmarkType{TranslationStart}, outdir, "sites"); err != nil {
    t.Error(err)
  }
  entries, err := os.ReadDir(outdir)
  if err != nil {
    t.Error(err)
  }
  if len(entries) != 0 {
    t.Error("TestRunNoDistances failed!")
  }
}
