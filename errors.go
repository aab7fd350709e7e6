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

package ifscreen

// Error is the interface for errors that all packages in this library implement.
// The Decorate method allows to add and retrieve info from the error without
// changing its type or wrapping it around something else. The decoration slice
// should contain a list of the functions in the calling stack, plus, for each
// function, any relevant information, or nothing. If passed an empty string,
// Decorate should just return the current value, not add the empty string to
// the slice.
type Error interface {
	Error() string
	Decorate(string) []string
}

// FileError is the interface for errors tied to one artifact file of a
// prediction job. Critical distinguishes errors that end the job (the batch
// itself survives every per-job error) from recoverable ones, such as one
// artifact probe missing its file while a later probe can still succeed.
type FileError interface {
	Error
	FileName() string
	Critical() bool
}
