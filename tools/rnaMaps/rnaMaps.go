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
import   "strings"

import   "github.com/pborman/getopt"

import . "github.com/pbenner/rnamaps"

/* i/o
 * -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* utility
 * -------------------------------------------------------------------------- */

func removeExtension(filename string, extensions []string) string {
  base := filepath.Base(filename)
  for _, extension := range extensions {
    if strings.HasSuffix(base, extension) {
      return strings.TrimSuffix(base, extension)
    }
  }
  return base
}

/* -------------------------------------------------------------------------- */

func rnaMaps(config Config, filenameSites, filenameRegions, outdir string) {
  sites := Sites{}
  PrintStderr(config, 1, "Reading crosslink sites from `%s'... ", filenameSites)
  if err := sites.ImportBed6(filenameSites); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")

  regions := Regions{}
  PrintStderr(config, 1, "Reading regions from `%s'... ", filenameRegions)
  if err := regions.ImportGTF(filenameRegions); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")

  regions = regions.Sort()

  basename := removeExtension(filenameSites, []string{".bed.gz", ".bed"})

  if err := Run(config, sites, regions, LandmarkTypes, outdir, basename); err != nil {
    log.Fatal(err)
  }
}

/* -------------------------------------------------------------------------- */

func main() {
  options := getopt.New()
  options.SetProgram(fmt.Sprintf("%s", os.Args[0]))

  optOutdir   := options.StringLong("output-dir",  0 ,  "", "output directory [default: rnamaps_<sites>]")
  optMaxWidth := options.   IntLong("max-width",   0 , 500, "maximal distance between crosslink site and landmark")
  optThreads  := options.   IntLong("threads",    't',   1, "number of threads")

  optHelp     := options.  BoolLong("help",       'h',      "print help")
  optVerbose  := options.CounterLong("verbose",   'v',      "be verbose")

  options.SetParameters("<sites.bed> <regions.gtf>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 2 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  filenameSites   := options.Args()[0]
  filenameRegions := options.Args()[1]

  config := DefaultConfig()
  config.MaxWidth = *optMaxWidth
  config.Threads  = *optThreads
  config.Verbose  = *optVerbose

  outdir := *optOutdir
  if outdir == "" {
    outdir = fmt.Sprintf("rnamaps_%s", removeExtension(filenameSites, []string{".bed.gz", ".bed"}))
  }
  rnaMaps(config, filenameSites, filenameRegions, outdir)
}
