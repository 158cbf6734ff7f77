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

package main

/* -------------------------------------------------------------------------- */

import   "fmt"
import   "log"
import   "os"
import   "path/filepath"
import   "sort"
import   "strings"

import   "github.com/montanaflynn/stats"
import   "github.com/pborman/getopt"
import   "github.com/pbenner/rnamaps"

import   "gonum.org/v1/plot"
import   "gonum.org/v1/plot/palette"
import   "gonum.org/v1/plot/plotter"
import   "gonum.org/v1/plot/plotutil"
import   "gonum.org/v1/plot/vg"

/* -------------------------------------------------------------------------- */

type Config struct {
  UpLimit   int
  DownLimit int
  Smoothing int
  TopN      int
  NBins     int
  BinSize   int
  ImgFormat string
  Verbose   int
}

/* i/o
 * -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* utility
 * -------------------------------------------------------------------------- */

func guessMapType(filename string) string {
  for _, landmarkType := range rnamaps.LandmarkTypes {
    if strings.HasSuffix(filename, fmt.Sprintf("_%s.tsv", landmarkType.Name)) {
      return landmarkType.Name
    }
  }
  return filepath.Base(filename)
}

func outputName(filename, suffix, imgFormat string) string {
  base := strings.TrimSuffix(filename, ".tsv")
  return fmt.Sprintf("%s_%s.%s", base, suffix, imgFormat)
}

/* distribution plot
 * -------------------------------------------------------------------------- */

func distroCurve(config Config, filename string) (plotter.XYs, string, error) {
  data, count, totalCdna, err := rnamaps.ImportTable(filename, config.UpLimit, config.DownLimit)
  if err != nil {
    return nil, "", err
  }
  if len(data) == 0 {
    return nil, "", nil
  }
  normalized := rnamaps.NormalizeCPM(data, totalCdna)

  positions := []int{}
  for d := range normalized {
    positions = append(positions, d)
  }
  sort.Ints(positions)

  values := make([]float64, len(positions))
  for i, d := range positions {
    values[i] = normalized[d]
  }
  values = rnamaps.Smooth(values, config.Smoothing)

  xy := make(plotter.XYs, len(positions))
  for i := 0; i < len(positions); i++ {
    xy[i].X = float64(positions[i])
    xy[i].Y = values[i]
  }
  label := fmt.Sprintf("%s (%d landmarks)", guessMapType(filename), count)

  return xy, label, nil
}

func plotDistro(config Config, filenames []string, outfile string) {
  p := plot.New()
  p.Title.Text   = "RNA-map"
  p.X.Label.Text = "position"
  p.Y.Label.Text = "score [CPM]"
  p.X.Min = float64(config.UpLimit)
  p.X.Max = float64(config.DownLimit)

  args := []interface{}{}
  for _, filename := range filenames {
    xy, label, err := distroCurve(config, filename)
    if err != nil {
      log.Fatal(err)
    }
    if xy == nil {
      PrintStderr(config, 1, "No distances in `%s', skipping\n", filename)
      continue
    }
    args = append(args, label, xy)
  }
  if len(args) == 0 {
    log.Fatal("no data to plot")
  }
  if err := plotutil.AddLines(p, args...); err != nil {
    log.Fatal(err)
  }
  if err := p.Save(8*vg.Inch, 4*vg.Inch, outfile); err != nil {
    log.Fatal(err)
  }
  PrintStderr(config, 1, "Wrote distribution plot to `%s'\n", outfile)
}

/* heatmap
 * -------------------------------------------------------------------------- */

type heatGrid struct {
  data    [][]float64
  upLimit int
  binSize int
}

func (grid heatGrid) Dims() (int, int) {
  if len(grid.data) == 0 {
    return 0, 0
  }
  return len(grid.data[0]), len(grid.data)
}

func (grid heatGrid) Z(c, r int) float64 {
  return grid.data[r][c]
}

func (grid heatGrid) X(c int) float64 {
  return float64(grid.upLimit + c*grid.binSize)
}

func (grid heatGrid) Y(r int) float64 {
  return float64(r)
}

/* -------------------------------------------------------------------------- */

func topLoci(curves []map[int]int, n int) []int {
  totals := make([]int, len(curves))
  for i, curve := range curves {
    for _, score := range curve {
      totals[i] += score
    }
  }
  idx := make([]int, len(curves))
  for i := 0; i < len(idx); i++ {
    idx[i] = i
  }
  sort.Slice(idx, func(i, j int) bool {
    return totals[idx[i]] > totals[idx[j]]
  })
  if n < len(idx) {
    idx = idx[0:n]
  }
  return idx
}

func binCurves(config Config, curves []map[int]int, idx []int, totalCdna int) heatGrid {
  width   := config.DownLimit - config.UpLimit + 1
  binSize := config.BinSize
  if binSize == 0 {
    binSize = (width + config.NBins - 1)/config.NBins
  }
  nBins := (width + binSize - 1)/binSize

  data := make([][]float64, len(idx))
  for r, i := range idx {
    data[r] = make([]float64, nBins)
    for d, score := range curves[i] {
      j := (d - config.UpLimit)/binSize
      data[r][j] += float64(score)/float64(totalCdna)*1e6
    }
  }
  return heatGrid{data, config.UpLimit, binSize}
}

func plotHeatmap(config Config, filename, outfile string) {
  _, curves, totalCdna, err := rnamaps.ImportTableLoci(filename, config.UpLimit, config.DownLimit)
  if err != nil {
    log.Fatal(err)
  }
  if len(curves) == 0 {
    PrintStderr(config, 1, "No distances in `%s', skipping heatmap\n", filename)
    return
  }
  grid := binCurves(config, curves, topLoci(curves, config.TopN), totalCdna)

  heatmap := plotter.NewHeatMap(grid, palette.Heat(16, 1))
  heatmap.Min = 0
  // cap the color scale at the 99th percentile so that a few hot bins do
  // not wash out the rest of the map
  values := stats.Float64Data{}
  for _, row := range grid.data {
    values = append(values, row...)
  }
  if max, err := stats.Percentile(values, 99); err == nil && max > 0 {
    heatmap.Max = max
  }

  p := plot.New()
  p.Title.Text   = fmt.Sprintf("RNA-map %s", guessMapType(filename))
  p.X.Label.Text = "position"
  p.Y.Label.Text = "landmark"
  p.Add(heatmap)

  if err := p.Save(8*vg.Inch, 6*vg.Inch, outfile); err != nil {
    log.Fatal(err)
  }
  PrintStderr(config, 1, "Wrote heatmap to `%s'\n", outfile)
}

/* -------------------------------------------------------------------------- */

func main() {
  options := getopt.New()
  options.SetProgram(fmt.Sprintf("%s", os.Args[0]))

  optOutput    := options.StringLong("output",      0 ,     "", "output file for the distribution plot [default: <first input>_distro.<format>]")
  optUpLimit   := options.   IntLong("up-limit",    0 ,    100, "upstream plot limit")
  optDownLimit := options.   IntLong("down-limit",  0 ,    100, "downstream plot limit")
  optSmoothing := options.   IntLong("smoothing",   0 ,      1, "smoothing half-window")
  optTopN      := options.   IntLong("top-n",       0 ,    100, "plot heatmap for the top-n best covered landmarks")
  optNBins     := options.   IntLong("nbins",       0 ,      0, "number of heatmap bins [default: 50]")
  optBinSize   := options.   IntLong("bin-size",    0 ,      0, "heatmap bin size")
  optImgFormat := options.StringLong("img-format",  0 ,  "png", "output image format [default: png]")

  optHelp      := options.   BoolLong("help",      'h',         "print help")
  optVerbose   := options.CounterLong("verbose",   'v',         "verbose level [-v or -vv]")

  options.SetParameters("<table.tsv>...")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) == 0 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  // either the number of bins or the bin size may be given, but not both
  if *optNBins != 0 && *optBinSize != 0 {
    log.Fatal("options --nbins and --bin-size are mutually exclusive")
  }
  config := Config{}
  config.UpLimit   = -iAbs(*optUpLimit)
  config.DownLimit =  iAbs(*optDownLimit)
  config.Smoothing = *optSmoothing
  config.TopN      = *optTopN
  config.NBins     = *optNBins
  config.BinSize   = *optBinSize
  config.ImgFormat = *optImgFormat
  config.Verbose   = *optVerbose

  if config.NBins == 0 && config.BinSize == 0 {
    config.NBins = 50
  }
  filenames := options.Args()

  outfile := *optOutput
  if outfile == "" {
    outfile = outputName(filenames[0], "distro", config.ImgFormat)
  }
  plotDistro(config, filenames, outfile)

  for _, filename := range filenames {
    plotHeatmap(config, filename, outputName(filename, "heatmap", config.ImgFormat))
  }
}

/* -------------------------------------------------------------------------- */

func iAbs(a int) int {
  if a < 0 {
    return -a
  } else {
    return a
  }
}
