/*
 * errors.go, part of goqmmm.
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

package qmmm

//Error is the interface for errors that all packages in this library
//implement. The Decorate method allows to add and retrieve info from
//the error, without changing its type or wrapping it around something
//else. The decoration slice should contain a list of the functions in
//the calling stack, plus, for each function, any relevant information,
//in the format "FunctionName: Extra info".
type Error interface {
	Error() string
	Decorate(string) []string
}

//CError is the concrete error type for the qmmm package. It fulfills
//the Error interface.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

//Decorate adds the dec string to the decoration slice of strings of
//the error, and returns the resulting slice. If dec is empty, it just
//returns the current decoration.
func (err CError) Decorate(dec string) []string {
	//Even though this method does not use a pointer receiver, and tries to alter the receiver,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//errDecorate asserts that err implements Error, decorates it with the
//caller's name and returns it.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}
