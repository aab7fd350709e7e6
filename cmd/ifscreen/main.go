/*
 * main.go, part of ifscreen.
 *
 *
 * Copyright 2024 Ana Avila anadotavilaatuvdotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

//ifscreen screens a directory of multimer prediction jobs for credible
//inter-chain interfaces and writes a summary table with pDockQ/mpDockQ
//scores for the jobs that have one.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/avila-lab/ifscreen/pipeline"
)

func main() {
	var (
		outputDir    = flag.String("output_dir", "", "directory where predicted models are stored (required)")
		cutoff       = flag.Float64("cutoff", 5.0, "cutoff value of PAE; only pae<cutoff counts as a confident pair")
		surfaceThres = flag.Int("surface_thres", 2, "surface threshold passed to the pi-score tool")
		plotFile     = flag.String("plot", "", "optional image file for a histogram of dock-quality scores")
		piScoreCmd   = flag.String("pi_score_cmd", "", "optional external physicochemical scorer executable")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s -output_dir DIR [options]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(0)
	if *outputDir == "" {
		flag.Usage()
		os.Exit(2)
	}
	c := pipeline.DefaultConfig(*outputDir)
	c.Cutoff = *cutoff
	c.SurfaceThres = *surfaceThres
	c.PlotFile = *plotFile
	c.PIScoreCmd = *piScoreCmd
	if _, err := pipeline.Run(c); err != nil {
		log.Fatal(err)
	}
	//per-job failures were already logged and survived; reaching this
	//point is a successful run even if the table came out empty.
}
