// SPDX-License-Identifier: MIT

package dispatch

import (
	"bufio"
	"io"
	"strconv"
)

// Encoder writes a request stream that Dispatcher.Run accepts.
// Call Flush when done.
type Encoder struct {
	w   *bufio.Writer
	buf []byte
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: bufio.NewWriter(w)}
}

// Header writes the "N K" line.
func (e *Encoder) Header(n, k int) error {
	e.buf = strconv.AppendInt(e.buf[:0], int64(n), 10)
	e.buf = append(e.buf, ' ')
	e.buf = strconv.AppendInt(e.buf, int64(k), 10)
	e.buf = append(e.buf, '\n')
	_, err := e.w.Write(e.buf)

	return err
}

// Submit writes a submit command followed by the matrix, one comma-separated row per line.
func (e *Encoder) Submit(m [][]uint64) error {
	if _, err := e.w.WriteString(CmdSubmit + "\n"); err != nil {
		return err
	}
	for _, row := range m {
		e.buf = e.buf[:0]
		for j, v := range row {
			if j > 0 {
				e.buf = append(e.buf, ',')
			}
			e.buf = strconv.AppendUint(e.buf, v, 10)
		}
		e.buf = append(e.buf, '\n')
		if _, err := e.w.Write(e.buf); err != nil {
			return err
		}
	}

	return nil
}

// Report writes a report command.
func (e *Encoder) Report() error {
	_, err := e.w.WriteString(CmdReport + "\n")

	return err
}

// Flush flushes buffered output.
func (e *Encoder) Flush() error { return e.w.Flush() }
