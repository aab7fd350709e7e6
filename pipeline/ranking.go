/*
 * ranking.go, part of ifscreen.
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
	"encoding/json"
	"os"
	"path/filepath"
)

//RankingFile is the metadata file a prediction run writes per job, with the
//candidate models in rank order.
const RankingFile = "ranking_debug.json"

//Ranking is the decoded ranking metadata of one job: the ordered model names
//and, for multimer runs, the per-model confidence maps. Monomer runs carry
//neither map.
type Ranking struct {
	Order   []string           `json:"order"`
	IptmPtm map[string]float64 `json:"iptm+ptm"`
	Iptm    map[string]float64 `json:"iptm"`
}

//ReadRanking decodes the ranking file of the given job directory. A missing
//file is a job-fatal error, which the batch loop reports and survives.
func ReadRanking(dir string) (*Ranking, error) {
	name := filepath.Join(dir, RankingFile)
	f, err := os.Open(name)
	if os.IsNotExist(err) {
		return nil, Error{NoRanking, name, []string{"ReadRanking"}, true}
	}
	if err != nil {
		return nil, Error{err.Error(), name, []string{"ReadRanking"}, true}
	}
	defer f.Close()
	r := new(Ranking)
	if err := json.NewDecoder(f).Decode(r); err != nil {
		return nil, Error{WrongFormat + ": " + err.Error(), name, []string{"ReadRanking"}, true}
	}
	if len(r.Order) == 0 {
		return nil, Error{EmptyOrder, name, []string{"ReadRanking"}, true}
	}
	return r, nil
}

//Best returns the name of the top-ranked model.
func (R *Ranking) Best() string {
	return R.Order[0]
}

//Multimer reports whether the run carried interface confidence scores at
//all; monomer predictions do not, and cannot have an inter-chain interface.
func (R *Ranking) Multimer() bool {
	return R.IptmPtm != nil || R.Iptm != nil
}

//CombinedScore returns the combined interface+overall confidence (ipTM+pTM)
//of the given model, falling back on the isolated ipTM map when the run did
//not write a combined one.
func (R *Ranking) CombinedScore(model string) (float64, bool) {
	if R.IptmPtm != nil {
		v, ok := R.IptmPtm[model]
		return v, ok
	}
	if R.Iptm != nil {
		v, ok := R.Iptm[model]
		return v, ok
	}
	return 0, false
}

//IsolatedScore returns the isolated interface confidence (ipTM) of the
//given model, if the ranking metadata carries one. The result blob is the
//fallback source for this score; see pae.Result.
func (R *Ranking) IsolatedScore(model string) (float64, bool) {
	if R.Iptm != nil {
		v, ok := R.Iptm[model]
		return v, ok
	}
	return 0, false
}
