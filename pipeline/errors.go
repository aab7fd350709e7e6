/*
 * errors.go, part of ifscreen.
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

package pipeline

import (
	"fmt"
)

//Error is the structure for per-job pipeline errors. It fulfills
//screen.Error and screen.FileError. Every pipeline error is job-fatal by
//construction; none may escape the per-job boundary of the batch loop.
type Error struct {
	message  string
	filename string //the artifact that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("pipeline error: %s", err.message)
	}
	return fmt.Sprintf("pipeline error on %s: %s", err.filename, err.message)
}

//Decorate adds new information to the error.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file associated to the error, or an empty string.
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error ends the enclosing job.
func (err Error) Critical() bool { return err.critical }

const (
	NoRanking   = "No ranking file in job directory"
	EmptyOrder  = "Ranking file has an empty model order"
	WrongFormat = "Wrong format in ranking file"
	NoOutDir    = "Cannot read the output directory"
)
