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
import   "strings"

import   "github.com/pborman/getopt"

import . "github.com/pbenner/rnamaps"

/* i/o
 * -------------------------------------------------------------------------- */

func PrintStderr(verbose int, level int, format string, args ...interface{}) {
  if verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func importGenes(verbose int, filenameGenes, ucscGenome, ucscTable string) Genes {
  genes := Genes{}

  if filenameGenes != "" {
    PrintStderr(verbose, 1, "Reading genes from `%s'... ", filenameGenes)
    if err := genes.ImportUCSC(filenameGenes); err != nil {
      PrintStderr(verbose, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(verbose, 1, "done\n")
  } else {
    PrintStderr(verbose, 1, "Importing table `%s' from UCSC genome `%s'... ", ucscTable, ucscGenome)
    g, err := ImportGenesFromUCSC(ucscGenome, ucscTable)
    if err != nil {
      PrintStderr(verbose, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(verbose, 1, "done\n")
    genes = g
  }
  return genes
}

func segmentGenome(verbose int, filenameGenome, filenameGenes, ucscGenome, ucscTable, filenameOut string) {
  genome := Genome{}
  PrintStderr(verbose, 1, "Reading chromosome sizes from `%s'... ", filenameGenome)
  if err := genome.Import(filenameGenome); err != nil {
    PrintStderr(verbose, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(verbose, 1, "done\n")

  genes := importGenes(verbose, filenameGenes, ucscGenome, ucscTable)

  regions := Segment(genes, genome)

  PrintStderr(verbose, 1, "Writing regions to `%s'... ", filenameOut)
  if err := regions.ExportGTF(filenameOut, strings.HasSuffix(filenameOut, ".gz")); err != nil {
    PrintStderr(verbose, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(verbose, 1, "done\n")
}

/* -------------------------------------------------------------------------- */

func main() {
  options := getopt.New()
  options.SetProgram(fmt.Sprintf("%s", os.Args[0]))

  optGenes      := options.StringLong("genes",       0 ,        "", "UCSC gene table as text file")
  optUcscGenome := options.StringLong("ucsc-genome", 0 ,        "", "import genes from the UCSC MySQL server, e.g. hg38")
  optUcscTable  := options.StringLong("ucsc-table",  0 , "refGene", "UCSC MySQL table name [default: refGene]")

  optHelp       := options.   BoolLong("help",      'h',            "print help")
  optVerbose    := options.CounterLong("verbose",   'v',            "be verbose")

  options.SetParameters("<genome.sizes> <output.gtf>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 2 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  if (*optGenes == "") == (*optUcscGenome == "") {
    log.Fatal("exactly one of --genes and --ucsc-genome must be given")
  }
  filenameGenome := options.Args()[0]
  filenameOut    := options.Args()[1]

  segmentGenome(*optVerbose, filenameGenome, *optGenes, *optUcscGenome, *optUcscTable, filenameOut)
}
