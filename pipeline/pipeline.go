/*
 * pipeline.go, part of ifscreen.
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

//Package pipeline runs the interface screen over a batch of prediction job
//directories. Each job is processed in full before the next one starts, and
//every per-job failure is logged and survived: a single bad job never aborts
//the batch.
package pipeline

import (
	"log"
	"os"
	"path/filepath"

	"github.com/avila-lab/ifscreen/dockq"
	"github.com/avila-lab/ifscreen/pae"
	"github.com/avila-lab/ifscreen/piscore"
	"github.com/avila-lab/ifscreen/structure"
)

//ModelFile is the coordinate file of the top-ranked model of a job.
const ModelFile = "ranked_0.pdb"

//Config carries the whole configuration of one batch run, passed by value
//into Run. There is no process-wide state.
type Config struct {
	OutDir       string  //directory holding one subdirectory per job
	Cutoff       float64 //PAE under this counts as a confident pair
	SurfaceThres int     //surface threshold, passed through to the pi-score tool
	ContactDist  float64 //Cbeta-Cbeta contact distance, Angstrom
	PlotFile     string  //optional histogram of dock-quality scores
	PIScoreCmd   string  //optional external physicochemical scorer command
}

//DefaultConfig returns the standard configuration for the given output
//directory: PAE cutoff 5.0, surface threshold 2, contacts at 8 Angstrom.
func DefaultConfig(outdir string) Config {
	return Config{
		OutDir:       outdir,
		Cutoff:       5.0,
		SurfaceThres: 2,
		ContactDist:  dockq.ContactDist,
	}
}

//state of one job inside the batch loop.
type state int

const (
	discovered state = iota
	candidate        //ranking metadata read, best model known
	accepted         //confident inter-chain region found
	reported         //score computed, summary row appended
	skipped          //artifact or parse failure, job dropped
	noInterface      //legitimate negative outcome, no row, no error
)

func (s state) String() string {
	return [...]string{"discovered", "candidate", "accepted", "reported", "skipped", "no-interface"}[s]
}

//processJob runs one job through the screen. It returns the state the job
//reached; a non-nil error means the job is skipped at that state, and is
//never allowed past the per-job boundary in Run.
func processJob(c Config, dir, job string) (Row, state, error) {
	none := Row{}
	st := discovered
	rank, err := ReadRanking(dir)
	if err != nil {
		return none, st, err
	}
	if !rank.Multimer() {
		return none, st, Error{"No interface scores in ranking metadata (monomer run?)", filepath.Join(dir, RankingFile), []string{"processJob"}, true}
	}
	st = candidate
	best := rank.Best()
	res, err := pae.LoadResult(dir, best, pae.DefaultProbes())
	if err != nil {
		return none, st, err
	}
	mol, err := structure.ReadPDBFile(filepath.Join(dir, ModelFile))
	if err != nil {
		return none, st, err
	}
	ok, err := pae.HasConfidentInterface(res.PAE, mol.ChainLengths(), c.Cutoff)
	if err != nil {
		return none, st, err
	}
	if !ok {
		return none, noInterface, nil
	}
	st = accepted
	log.Printf("%s is %s: confident inter-chain region found, scoring", job, st)
	//the result blob's pLDDT array supersedes the B-factor column when
	//present; on a mismatch we keep the coordinates' own values.
	if res.PLDDT != nil {
		if err := mol.SplitConfidence(res.PLDDT); err != nil {
			log.Printf("%s: %v; keeping B-factor confidences", job, err)
		}
	}
	row := Row{Job: job}
	if v, ok := rank.CombinedScore(best); ok {
		row.IptmPtm = Some(v)
	}
	if v, ok := rank.IsolatedScore(best); ok {
		row.Iptm = Some(v)
	} else if res.HasIPTM {
		row.Iptm = Some(res.IPTM)
	}
	if v, ok := dockq.DockQuality(mol, c.ContactDist); ok {
		row.DockQ = Some(v)
	}
	if mp, ml, ok := dockq.InterfaceStats(mol, res.PAE, c.ContactDist); ok {
		row.MeanIfPAE = Some(mp)
		row.MeanIfPLDDT = Some(ml)
	}
	st = reported
	return row, st, nil
}

//Run screens every job directory under c.OutDir, in enumeration order, and
//returns the summary table. Per-job failures are logged and skipped; only a
//failure to enumerate the batch itself, or to persist a non-empty table, is
//returned as an error. An empty table is a valid result: a notice naming the
//cutoff is logged and nothing is written.
func Run(c Config) (*Table, error) {
	entries, err := os.ReadDir(c.OutDir)
	if err != nil {
		return nil, Error{NoOutDir + ": " + err.Error(), c.OutDir, []string{"Run"}, true}
	}
	table := &Table{Cutoff: c.Cutoff}
	var acceptedJobs []string
	count := 0
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		job := e.Name()
		count++
		log.Printf("now processing %s", job)
		row, st, err := processJob(c, filepath.Join(c.OutDir, job), job)
		if err != nil {
			log.Printf("skipping %s (was %s): %v", job, st, err)
			st = skipped
		} else if st == reported {
			table.Append(row)
			acceptedJobs = append(acceptedJobs, job)
		}
		//a noInterface job is a valid negative result, reported only by
		//its omission from the table.
		log.Printf("done for %s (%s), %d of %d finished", job, st, count, len(entries))
	}
	if table.Empty() {
		log.Printf("none of the models had an inter-chain PAE below the cutoff %v; consider a larger cutoff", c.Cutoff)
		return table, nil
	}
	out := filepath.Join(c.OutDir, TableFile)
	if err := table.WriteCSV(out); err != nil {
		return table, err
	}
	log.Printf("wrote %d rows to %s", len(table.Rows), out)
	if c.PlotFile != "" {
		if err := Histogram(table, c.PlotFile); err != nil {
			log.Printf("could not plot score histogram: %v", err)
		}
	}
	if c.PIScoreCmd != "" {
		runPIScore(c, acceptedJobs)
	}
	return table, nil
}

//runPIScore hands every accepted job to the external physicochemical scorer.
//The tool's own outputs stay in its scratch directory; merging them into the
//table is the consumer's business, not ours.
func runPIScore(c Config, jobs []string) {
	scratch := filepath.Join(c.OutDir, "pi_score_outputs")
	if err := piscore.ScratchDir(scratch); err != nil {
		log.Printf("pi-score scratch directory: %v", err)
		return
	}
	r := &piscore.Runner{Command: c.PIScoreCmd, SurfaceThres: c.SurfaceThres}
	for _, job := range jobs {
		pdb := filepath.Join(c.OutDir, job, ModelFile)
		out := filepath.Join(scratch, job)
		log.Printf("pi-score output for %s will be stored at %s", job, out)
		if err := r.Run(pdb, out); err != nil {
			log.Printf("pi-score failed for %s: %v", job, err)
		}
	}
}
