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

/* -------------------------------------------------------------------------- */

type Config struct {
  MaxWidth int
  Threads  int
  Verbose  int
}

func DefaultConfig() Config {
  return Config{MaxWidth: 500, Threads: 1}
}

/* i/o
 * -------------------------------------------------------------------------- */

func printStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

// Compute the distribution of crosslink sites relative to all landmark types
// and write one distance table per type to the output directory. Landmark
// types without landmarks or without any site within MaxWidth are skipped,
// they never abort processing of the remaining types. A table file is only
// written after the aggregation for that type completed.
func Run(config Config, sites Sites, regions Regions, landmarkTypes []LandmarkType, outdir, basename string) error {
  if err := os.MkdirAll(outdir, 0777); err != nil {
    return err
  }
  for _, landmarkType := range landmarkTypes {
    printStderr(config, 1, "Creating landmarks for %s... ", landmarkType.Name)
    landmarks := BuildLandmarks(regions, landmarkType)
    if landmarks.Length() == 0 {
      printStderr(config, 1, "none found, skipping\n")
      continue
    }
    printStderr(config, 1, "done (%d landmarks)\n", landmarks.Length())

    printStderr(config, 1, "Computing distances for %s... ", landmarkType.Name)
    distances, totalCdna := ComputeDistances(landmarks, sites, config.MaxWidth, config.Threads)
    if len(distances) == 0 {
      printStderr(config, 1, "warning: no sites within %d of any landmark, skipping\n", config.MaxWidth)
      continue
    }
    printStderr(config, 1, "done\n")

    filename := filepath.Join(outdir, fmt.Sprintf("%s_%s.tsv", basename, landmarkType.Name))
    if err := distances.ExportTable(filename, totalCdna, false); err != nil {
      return err
    }
    printStderr(config, 1, "Wrote distance table to `%s'\n", filename)
  }
  return nil
}
