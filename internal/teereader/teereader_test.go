// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package teereader

import (
	"io"
	"strings"
	"sync"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsReader(t *testing.T) {
	tests := []struct {
		name            string
		input           string
		expectedLines   int
		expectedLast    string
	}{
		{
			name:          "single line with newline",
			input:         "hello world\n",
			expectedLines: 1,
			expectedLast:  "hello world",
		},
		{
			name:          "unterminated line counts at EOF",
			input:         "hello world",
			expectedLines: 1,
			expectedLast:  "hello world",
		},
		{
			name:  "empty string",
			input: "",
		},
		{
			name:          "just newline",
			input:         "\n",
			expectedLines: 1,
			expectedLast:  "",
		},
		{
			name:          "multiple lines",
			input:         "one\ntwo\nthree\n",
			expectedLines: 3,
			expectedLast:  "three",
		},
		{
			name:          "crlf",
			input:         "one\r\ntwo\r\n",
			expectedLines: 2,
			expectedLast:  "two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sr := New(strings.NewReader(tt.input))

			data, err := io.ReadAll(sr)
			require.NoError(t, err)
			assert.Equal(t, tt.input, string(data))

			stats := sr.Stats()
			assert.Equal(t, int64(len(tt.input)), stats.Bytes)
			assert.Equal(t, tt.expectedLines, stats.Lines)
			assert.Equal(t, tt.expectedLast, stats.LastLine)
		})
	}
}

func TestStatsReader_SmallReads(t *testing.T) {
	sr := New(iotest.OneByteReader(strings.NewReader("alpha\nbeta\ngam")))

	buf := make([]byte, 1)
	for range 8 {
		_, err := sr.Read(buf)
		require.NoError(t, err)
	}

	assert.Equal(t, "alpha", sr.LastLine(0))
	assert.Equal(t, 1, sr.Stats().Lines)

	_, err := io.ReadAll(sr)
	require.NoError(t, err)

	assert.Equal(t, "gam", sr.LastLine(0))
	assert.Equal(t, 3, sr.Stats().Lines)
}

func TestStatsReader_LastLineTruncation(t *testing.T) {
	sr := New(strings.NewReader("a very long line of output\n"))

	_, err := io.ReadAll(sr)
	require.NoError(t, err)

	assert.Equal(t, "a very...", sr.LastLine(9))
	assert.Equal(t, "a very long line of output", sr.LastLine(0))
}

func TestStatsReader_LongLineCapped(t *testing.T) {
	long := strings.Repeat("x", MaxLineLength+100)
	sr := New(strings.NewReader(long + "\n"))

	_, err := io.ReadAll(sr)
	require.NoError(t, err)

	assert.Len(t, sr.LastLine(0), MaxLineLength)
	assert.Equal(t, int64(len(long)+1), sr.Stats().Bytes)
}

func TestStatsReader_ConcurrentAccess(t *testing.T) {
	pr, pw := io.Pipe()
	sr := New(pr)

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		_, _ = io.Copy(io.Discard, sr)
	}()

	for range 4 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 100 {
				_ = sr.Stats()
				_ = sr.LastLine(10)
			}
		}()
	}

	for range 100 {
		_, err := pw.Write([]byte("line\n"))
		require.NoError(t, err)
	}

	require.NoError(t, pw.Close())
	wg.Wait()

	assert.Equal(t, 100, sr.Stats().Lines)
}
