/*
 * colvar.go, part of goqmmm.
 *
 * Copyright 2021 Raul Mera <rmera{at}usachDOTcl>
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
 * goqmmm is developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package meta

import (
	"fmt"
	"strconv"
	"strings"
)

//ColVar is a named reaction coordinate: a geometric function of a
//fixed, ordered set of atoms. It is immutable once parsed.
type ColVar struct {
	kind  string
	atoms []int //1-based indexes into the structure
}

//the number of atoms each collective-variable type requires.
var cvAtoms = map[string]int{
	"distance": 2,
	"angle":    3,
	"dihedral": 4,
}

//ParseColVar parses a collective-variable specification string of the
//form "<type> <atom> [<atom> ...]", with 1-based atom indexes, e.g.
//"distance 5 12". Supported types are distance (2 atoms), angle (3)
//and dihedral (4).
func ParseColVar(spec string) (*ColVar, error) {
	fields := strings.Fields(spec)
	if len(fields) < 2 {
		return nil, Error{fmt.Sprintf("malformed collective variable specification: %q", spec), []string{"ParseColVar"}, true}
	}
	kind := strings.ToLower(fields[0])
	want, ok := cvAtoms[kind]
	if !ok {
		return nil, Error{fmt.Sprintf("unknown collective variable type: %q", fields[0]), []string{"ParseColVar"}, true}
	}
	if len(fields)-1 != want {
		return nil, Error{fmt.Sprintf("collective variable %q takes %d atoms, got %d", kind, want, len(fields)-1), []string{"ParseColVar"}, true}
	}
	cv := &ColVar{kind: kind, atoms: make([]int, 0, want)}
	for _, tok := range fields[1:] {
		i, err := strconv.Atoi(tok)
		if err != nil || i < 1 {
			return nil, Error{fmt.Sprintf("bad atom index %q in collective variable specification", tok), []string{"ParseColVar"}, true}
		}
		cv.atoms = append(cv.atoms, i)
	}
	return cv, nil
}

//Kind returns the type tag of the collective variable.
func (C *ColVar) Kind() string {
	return C.kind
}

//Atoms returns a copy of the 1-based atom indexes the collective
//variable depends on.
func (C *ColVar) Atoms() []int {
	ret := make([]int, len(C.atoms))
	copy(ret, C.atoms)
	return ret
}

func (C *ColVar) String() string {
	s := make([]string, 1, len(C.atoms)+1)
	s[0] = C.kind
	for _, v := range C.atoms {
		s = append(s, strconv.Itoa(v))
	}
	return strings.Join(s, " ")
}
