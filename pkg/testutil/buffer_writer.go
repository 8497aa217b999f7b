/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package testutil

import (
	"bytes"
	"io"
	"sync"
	"time"
)

// BufferWriter is an io.WriteCloser that keeps everything written to it in memory.
// Every write operation is tracked and timestamped, and can be retrieved using Chunks().
// Writes fail after the writer is closed.
// All methods are goroutine-safe.
type BufferWriter struct {
	data   []byte
	chunks []Chunk
	lock   sync.Mutex
	closed bool
}

type Chunk struct {
	Offset    int
	Length    int
	Timestamp time.Time
}

func NewBufferWriter() *BufferWriter {
	return &BufferWriter{}
}

func (bw *BufferWriter) Write(p []byte) (n int, err error) {
	bw.lock.Lock()
	defer bw.lock.Unlock()

	if bw.closed {
		return 0, io.ErrClosedPipe
	}

	bw.chunks = append(bw.chunks, Chunk{
		Offset:    len(bw.data),
		Length:    len(p),
		Timestamp: time.Now(),
	})
	bw.data = append(bw.data, p...)
	return len(p), nil
}

func (bw *BufferWriter) Bytes() []byte {
	bw.lock.Lock()
	defer bw.lock.Unlock()
	return bytes.Clone(bw.data)
}

func (bw *BufferWriter) String() string {
	return string(bw.Bytes())
}

func (bw *BufferWriter) Close() error {
	bw.lock.Lock()
	defer bw.lock.Unlock()
	bw.closed = true
	return nil
}

func (bw *BufferWriter) IsClosed() bool {
	bw.lock.Lock()
	defer bw.lock.Unlock()
	return bw.closed
}

func (bw *BufferWriter) Chunks() []Chunk {
	bw.lock.Lock()
	defer bw.lock.Unlock()
	if bw.chunks == nil {
		return nil
	}
	return append([]Chunk{}, bw.chunks...) // make a copy
}

var _ io.WriteCloser = (*BufferWriter)(nil)
