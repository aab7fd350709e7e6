/*
 * piscore.go, part of ifscreen.
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

//Package piscore invokes the external physicochemical interface scorer on
//accepted models. Only the invocation side lives here; the tool's outputs
//and their interpretation belong to the tool and its consumers.
package piscore

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
)

//ScratchDir creates the scorer's scratch directory, clearing any leftover
//from a previous run first. Errors are returned, never swallowed.
func ScratchDir(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("clearing scratch directory %s: %w", path, err)
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("creating scratch directory %s: %w", path, err)
	}
	return nil
}

//Runner invokes the external scorer once per model.
type Runner struct {
	Command      string //the scorer executable
	SurfaceThres int    //surface-area threshold handed to the tool
}

//Run scores the model at pdbPath, writing the tool's results under outDir.
//It waits for the tool to finish; stdout and stderr are captured to a log
//file next to the results.
func (R *Runner) Run(pdbPath, outDir string) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}
	logf, err := os.Create(filepath.Join(outDir, "pi_score.log"))
	if err != nil {
		return err
	}
	defer logf.Close()
	command := exec.Command(R.Command, "-p", pdbPath, "-o", outDir, "-s", strconv.Itoa(R.SurfaceThres), "-ps", "10")
	command.Stdout = logf
	command.Stderr = logf
	return command.Run()
}
