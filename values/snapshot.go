// SPDX-License-Identifier: MIT

package values

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/symgeo/scalar"
)

// Snapshot layout, little-endian, inside a single zstd frame:
//
//	magic     "SGV\x01"
//	precision 'd' | 'f'
//	count     uint32
//	count × { keyLen uint16, key [keyLen]byte, dim uint32 }
//	payload   StorageDim scalars, 8 bytes ('d') or 4 bytes ('f') each
const snapshotMagic = "SGV\x01"

// Limits applied while reading untrusted snapshots. The payload is decoded in
// chunks of payloadChunk scalars, so memory tracks the bytes actually present
// rather than the sizes the entry table claims.
const (
	maxSnapshotEntries = 1 << 16
	maxSnapshotDim     = 1 << 22
	maxDecoderMemory   = 64 << 20
	payloadChunk       = 4096
)

// WriteSnapshot writes v as a compressed checkpoint to w.
// Scalars are written bit-exact, so ReadSnapshot restores NaN payloads and
// signed zeros unchanged.
// Errors: ErrBadSnapshot for keys longer than 65535 bytes or containers past
// the reader's limits (65536 entries, 4194304 scalars); write errors from w.
func (v *Values[T]) WriteSnapshot(w io.Writer) error {
	if len(v.entries) > maxSnapshotEntries || v.dim > maxSnapshotDim {
		return fmt.Errorf("%w: %d entries, %d scalars exceed the readable limits", ErrBadSnapshot, len(v.entries), v.dim)
	}

	var hdr bytes.Buffer
	hdr.WriteString(snapshotMagic)
	hdr.WriteByte(scalar.Tag[T]()[0])
	hdr.Write(binary.LittleEndian.AppendUint32(nil, uint32(len(v.entries))))
	for _, e := range v.entries {
		if len(e.key) > math.MaxUint16 {
			return fmt.Errorf("%w: key of %d bytes", ErrBadSnapshot, len(e.key))
		}
		hdr.Write(binary.LittleEndian.AppendUint16(nil, uint16(len(e.key))))
		hdr.WriteString(e.key)
		hdr.Write(binary.LittleEndian.AppendUint32(nil, uint32(len(e.data))))
	}

	width := scalar.Bits[T]() / 8
	payload := make([]byte, 0, v.dim*width)
	for _, e := range v.entries {
		for _, x := range e.data {
			payload = appendScalar(payload, x)
		}
	}

	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("values: snapshot encoder: %w", err)
	}
	if _, err = enc.Write(hdr.Bytes()); err == nil {
		_, err = enc.Write(payload)
	}
	if err != nil {
		_ = enc.Close()

		return fmt.Errorf("values: writing snapshot: %w", err)
	}
	if err = enc.Close(); err != nil {
		return fmt.Errorf("values: writing snapshot: %w", err)
	}

	return nil
}

// ReadSnapshot restores a container written by WriteSnapshot at the same
// precision. Keys, order and numbers come back exactly.
// Errors: ErrBadSnapshot for corrupt, truncated or wrong-precision input.
func ReadSnapshot[T scalar.Float](r io.Reader) (*Values[T], error) {
	dec, err := zstd.NewReader(r, zstd.WithDecoderMaxMemory(maxDecoderMemory))
	if err != nil {
		return nil, badSnapshot("stream", err)
	}
	defer dec.Close()

	head := make([]byte, len(snapshotMagic)+1)
	if _, err = io.ReadFull(dec, head); err != nil {
		return nil, badSnapshot("header", err)
	}
	if string(head[:len(snapshotMagic)]) != snapshotMagic {
		return nil, fmt.Errorf("%w: bad magic", ErrBadSnapshot)
	}
	if want := scalar.Tag[T]()[0]; head[len(snapshotMagic)] != want {
		return nil, fmt.Errorf("%w: precision %q, want %q", ErrBadSnapshot, head[len(snapshotMagic)], want)
	}

	var count uint32
	if err = binary.Read(dec, binary.LittleEndian, &count); err != nil {
		return nil, badSnapshot("entry count", err)
	}
	if count > maxSnapshotEntries {
		return nil, fmt.Errorf("%w: %d entries", ErrBadSnapshot, count)
	}

	out := New[T]()
	var dims []int
	for i := uint32(0); i < count; i++ {
		var keyLen uint16
		if err = binary.Read(dec, binary.LittleEndian, &keyLen); err != nil {
			return nil, badSnapshot("key length", err)
		}
		key := make([]byte, keyLen)
		if _, err = io.ReadFull(dec, key); err != nil {
			return nil, badSnapshot("key", err)
		}
		var dim uint32
		if err = binary.Read(dec, binary.LittleEndian, &dim); err != nil {
			return nil, badSnapshot("dimension", err)
		}
		if keyLen == 0 {
			return nil, fmt.Errorf("%w: entry %d has an empty key", ErrBadSnapshot, i)
		}
		if _, dup := out.index[string(key)]; dup {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrBadSnapshot, key)
		}
		if out.dim+int(dim) > maxSnapshotDim {
			return nil, fmt.Errorf("%w: storage dimension exceeds %d", ErrBadSnapshot, maxSnapshotDim)
		}

		out.index[string(key)] = len(out.entries)
		out.entries = append(out.entries, entry[T]{key: string(key)})
		dims = append(dims, int(dim))
		out.dim += int(dim)
	}

	for i := range out.entries {
		if out.entries[i].data, err = readScalars[T](dec, dims[i]); err != nil {
			return nil, badSnapshot("payload", err)
		}
	}

	if n, _ := dec.Read(make([]byte, 1)); n != 0 {
		return nil, fmt.Errorf("%w: trailing data", ErrBadSnapshot)
	}

	return out, nil
}

func badSnapshot(what string, err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}

	return fmt.Errorf("%w: reading %s: %w", ErrBadSnapshot, what, err)
}

// readScalars decodes n scalars from r, growing the result only as bytes arrive.
func readScalars[T scalar.Float](r io.Reader, n int) ([]T, error) {
	width := scalar.Bits[T]() / 8
	out := make([]T, 0, min(n, payloadChunk))
	buf := make([]byte, min(n, payloadChunk)*width)
	for len(out) < n {
		k := min(n-len(out), payloadChunk)
		if _, err := io.ReadFull(r, buf[:k*width]); err != nil {
			return nil, err
		}
		for j := 0; j < k; j++ {
			out = append(out, readScalar[T](buf[j*width:]))
		}
	}

	return out, nil
}

func appendScalar[T scalar.Float](b []byte, x T) []byte {
	if scalar.Bits[T]() == 32 {
		return binary.LittleEndian.AppendUint32(b, math.Float32bits(float32(x)))
	}

	return binary.LittleEndian.AppendUint64(b, math.Float64bits(float64(x)))
}

func readScalar[T scalar.Float](b []byte) T {
	if scalar.Bits[T]() == 32 {
		return T(math.Float32frombits(binary.LittleEndian.Uint32(b)))
	}

	return T(math.Float64frombits(binary.LittleEndian.Uint64(b)))
}
