/*
 * doc.go, part of ifscreen.
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

//Package ifscreen screens batches of predicted multimeric protein structures
//for credible inter-chain interfaces. For every prediction job it inspects the
//predicted aligned error (PAE) matrix of the best-ranked model and, when at
//least one inter-chain residue pair falls under an error cutoff, computes a
//docking-quality score for the complex: pDockQ for dimers, mpDockQ for larger
//assemblies. Results over the whole batch are collected into a single summary
//table.
//
//The subpackages follow the stages of that screen: structure reads the atomic
//models, pae handles the error-matrix artifacts, dockq does the contact
//geometry and the quality regressions, and pipeline drives the per-job loop.
package ifscreen
