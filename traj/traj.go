/*
 * traj.go, part of goqmmm.
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

/*Package traj implements a compressed, line-oriented text format for
the collective-variable trajectory of a metadynamics run. Each record
is one integration step: the step number, the collective-variable
value and the instantaneous bias energy. The compression is selected
from the last letter of the file name: 'z' for gzip, 'r' for raw
flate, anything else (the recommended suffix is .cvs) for zstd.*/
package traj

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//Writer writes a collective-variable trajectory file.
type Writer struct {
	f         *os.File
	h         io.WriteCloser
	filename  string
	writeable bool
}

//NewWriter creates the file name and returns a Writer to it. The
//key/values of header, if given, are written as "k=v" lines before the
//records (only the first map is read).
func NewWriter(name string, header ...map[string]string) (*Writer, error) {
	W := new(Writer)
	var err error
	W.f, err = os.Create(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"NewWriter"}, true}
	}
	zstdwriter := func(a io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(a, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
	gzipwriter := func(a io.Writer) (io.WriteCloser, error) { return gzip.NewWriterLevel(a, gzip.BestCompression) }
	flatewriter := func(a io.Writer) (io.WriteCloser, error) { return flate.NewWriter(a, flate.BestCompression) }
	var AnyNewWriter func(io.Writer) (io.WriteCloser, error)
	switch strings.ToLower(name)[len(name)-1] {
	case 'z':
		AnyNewWriter = gzipwriter
	case 'r':
		AnyNewWriter = flatewriter
	default:
		AnyNewWriter = zstdwriter
	}
	W.h, err = AnyNewWriter(W.f)
	if err != nil {
		return nil, Error{"can't set up compression: " + err.Error(), name, []string{"NewWriter"}, true}
	}
	if len(header) > 0 && header[0] != nil {
		for k, v := range header[0] {
			W.h.Write([]byte(fmt.Sprintf("%s=%v\n", k, v)))
		}
	}
	W.h.Write([]byte("**\n"))
	W.filename = name
	W.writeable = true
	return W, nil
}

//WNext writes the record for one integration step. It satisfies
//meta.StepWriter.
func (W *Writer) WNext(step int, cv, bias float64) error {
	if !W.writeable {
		return Error{TrajUnIniWrite, W.filename, []string{"WNext"}, true}
	}
	_, err := W.h.Write([]byte(fmt.Sprintf("%d %.6f %.6f\n", step, cv, bias)))
	if err != nil {
		return Error{"can't write record: " + err.Error(), W.filename, []string{"WNext"}, true}
	}
	return nil
}

//Close closes the trajectory. The Writer can not be used after this
//call.
func (W *Writer) Close() {
	if W == nil || !W.writeable {
		return
	}
	W.h.Close()
	W.f.Close()
	W.writeable = false
}

//Reader reads a collective-variable trajectory file.
type Reader struct {
	f        *os.File
	z        io.ReadCloser
	h        *bufio.Reader
	filename string
	readable bool
}

//The things I have to do so *zstd.Decoder satisfies io.ReadCloser.
type stdql struct {
	closeql func()
	*zstd.Decoder
}

func (s stdql) Close() error {
	s.closeql()
	return nil
}

//New opens a collective-variable trajectory for reading. It returns
//the handle, a map with the header metadata (or nil if there is none)
//and error or nil.
func New(name string) (*Reader, map[string]string, error) {
	R := new(Reader)
	var err error
	R.filename = name
	R.f, err = os.Open(name)
	if err != nil {
		return nil, nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"New"}, true}
	}
	zstdreader := func(a io.Reader) (io.ReadCloser, error) {
		r, err := zstd.NewReader(a)
		if err != nil {
			return nil, err
		}
		return &stdql{r.Close, r}, nil
	}
	gzreader := func(a io.Reader) (io.ReadCloser, error) { return gzip.NewReader(a) }
	flatereader := func(a io.Reader) (io.ReadCloser, error) { return flate.NewReader(a), nil }
	var AnyNewReader func(io.Reader) (io.ReadCloser, error)
	switch strings.ToLower(name)[len(name)-1] {
	case 'z':
		AnyNewReader = gzreader
	case 'r':
		AnyNewReader = flatereader
	default:
		AnyNewReader = zstdreader
	}
	R.z, err = AnyNewReader(bufio.NewReader(R.f))
	if err != nil {
		return nil, nil, Error{"can't read header: " + err.Error(), name, []string{"New"}, true}
	}
	R.h = bufio.NewReader(R.z)
	var m map[string]string
	for {
		str, err := R.h.ReadString('\n')
		if err != nil {
			return nil, nil, Error{"can't read header: " + err.Error(), name, []string{"New"}, true}
		}
		str = strings.TrimSuffix(str, "\n")
		if strings.HasPrefix(str, "**") {
			break
		}
		kv := strings.SplitN(str, "=", 2)
		if len(kv) != 2 {
			return nil, nil, Error{fmt.Sprintf("malformed header line %q", str), name, []string{"New"}, true}
		}
		if m == nil {
			m = make(map[string]string)
		}
		m[kv[0]] = kv[1]
	}
	R.readable = true
	return R, m, nil
}

//Readable returns true if it is possible to call Next on the handle.
func (R *Reader) Readable() bool {
	return R.readable
}

//Next returns the next record of the trajectory: the step number, the
//collective-variable value and the bias energy at that step. At the
//end of the trajectory it closes the handle and returns an error for
//which IsLastRecord is true; that is a normal termination, not an
//actual problem.
func (R *Reader) Next() (int, float64, float64, error) {
	if !R.readable {
		return 0, 0, 0, Error{TrajUnIniRead, R.filename, []string{"Next"}, true}
	}
	line, err := R.h.ReadString('\n')
	if err != nil {
		if strings.Contains(err.Error(), "EOF") && line == "" {
			//nothing bad happened here, the trajectory just ended.
			R.Close()
			return 0, 0, 0, newlastRecordError(R.filename, "Next")
		}
		return 0, 0, 0, Error{ReadError + ": " + err.Error(), R.filename, []string{"Next"}, true}
	}
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return 0, 0, 0, Error{fmt.Sprintf("ill-formed record %q", strings.TrimSpace(line)), R.filename, []string{"Next"}, true}
	}
	step, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, 0, Error{"can't parse step number: " + err.Error(), R.filename, []string{"Next"}, true}
	}
	cv, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, 0, Error{"can't parse coordinate value: " + err.Error(), R.filename, []string{"Next"}, true}
	}
	bias, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return 0, 0, 0, Error{"can't parse bias energy: " + err.Error(), R.filename, []string{"Next"}, true}
	}
	return step, cv, bias, nil
}

//Close closes the handle, and marks it as unreadable.
func (R *Reader) Close() {
	if !R.readable {
		return
	}
	R.z.Close()
	R.readable = false
}

//Errors

//Error is the general error type for collective-variable trajectories.
//It fulfills the qmmm.Error interface.
type Error struct {
	message  string
	filename string //the file that has problems, or an empty string if none
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("cv trajectory file %s error: %s", err.filename, err.message)
}

//Decorate adds new information to the error.
func (err Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer receiver, and tries to alter the receiver,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file to which the failing trajectory was
//associated.
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

const (
	TrajUnIniRead  = "trajectory object uninitialized to read"
	TrajUnIniWrite = "trajectory object uninitialized to write"
	ReadError      = "error reading record"
	UnableToOpen   = "unable to open file"
)

//lastRecordError signals the normal end of a trajectory.
type lastRecordError struct {
	deco     []string
	fileName string
}

//NormalLastRecordTermination does nothing, it just separates this type
//from other trajectory errors in a type switch.
func (err *lastRecordError) NormalLastRecordTermination() {}

func (err *lastRecordError) FileName() string { return err.fileName }

func (err *lastRecordError) Error() string { return "EOF" }

func (err *lastRecordError) Critical() bool { return false }

func (err *lastRecordError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func newlastRecordError(filename string, caller string) *lastRecordError {
	e := new(lastRecordError)
	e.fileName = filename
	e.deco = []string{caller}
	return e
}

//IsLastRecord returns true if err just signals the normal end of a
//trajectory.
func IsLastRecord(err error) bool {
	_, ok := err.(interface{ NormalLastRecordTermination() })
	return ok
}
