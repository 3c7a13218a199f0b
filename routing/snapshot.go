package routing

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/katalvlaran/shgat/shgat"
)

// snapshotMagic/snapshotVersion tag the encoded format so loadParams can
// reject a foreign or stale-shape blob outright instead of decoding
// garbage into Params.
var snapshotMagic = [4]byte{'S', 'H', 'G', 'P'}

const snapshotVersion uint8 = 1

// SnapshotParams encodes the live scorer's Params into a small
// length-prefixed binary blob (spec §6's snapshotParams). No
// gonum/protobuf/msgpack dependency is used: the payload is a flat
// float64 vector behind an 11-byte header (magic, version, head count,
// gate feature dimension, payload length), and nothing in
// this corpus's stack offers a serialization format worth pulling in for
// that (see DESIGN.md's "why no gonum/protobuf/msgpack for
// snapshotParams").
func (e *Engine) SnapshotParams() ([]byte, error) {
	p := e.sc.Params()
	flat := flattenForSnapshot(p)

	var buf bytes.Buffer
	buf.Write(snapshotMagic[:])
	buf.WriteByte(snapshotVersion)
	buf.WriteByte(byte(len(p.WGate)))
	buf.WriteByte(byte(shgat.GateFeatureDim))

	var lenField [4]byte
	binary.BigEndian.PutUint32(lenField[:], uint32(len(flat)))
	buf.Write(lenField[:])

	for _, v := range flat {
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], math.Float64bits(v))
		buf.Write(b[:])
	}

	return buf.Bytes(), nil
}

// LoadParams decodes data produced by SnapshotParams and applies it to
// the live scorer via SetParams, atomically replacing every weight at
// once. Returns ErrIncompatibleShape if the encoded header's head count
// or gate-feature dimension does not match the live scorer's current
// shape. Blocked while quarantined, since it mutates live scoring state.
func (e *Engine) LoadParams(data []byte) error {
	if err := e.assertNotQuarantined(); err != nil {
		return err
	}

	if len(data) < 11 {
		return fmt.Errorf("routing.LoadParams: truncated header: %w", ErrIncompatibleShape)
	}
	if !bytes.Equal(data[:4], snapshotMagic[:]) {
		return fmt.Errorf("routing.LoadParams: bad magic: %w", ErrIncompatibleShape)
	}
	if data[4] != snapshotVersion {
		return fmt.Errorf("routing.LoadParams: unsupported version %d: %w", data[4], ErrIncompatibleShape)
	}

	current := e.sc.Params()
	headCount := int(data[5])
	gateDim := int(data[6])
	if headCount != len(current.WGate) || gateDim != shgat.GateFeatureDim {
		return fmt.Errorf("routing.LoadParams: header shape %dx%d != live shape %dx%d: %w",
			headCount, gateDim, len(current.WGate), shgat.GateFeatureDim, ErrIncompatibleShape)
	}

	n := int(binary.BigEndian.Uint32(data[7:11]))
	want := flatSnapshotDim(current)
	if n != want {
		return fmt.Errorf("routing.LoadParams: flat length %d != expected %d: %w", n, want, ErrIncompatibleShape)
	}
	if len(data) != 11+8*n {
		return fmt.Errorf("routing.LoadParams: truncated payload: %w", ErrIncompatibleShape)
	}

	flat := make([]float64, n)
	for i := 0; i < n; i++ {
		off := 11 + 8*i
		flat[i] = math.Float64frombits(binary.BigEndian.Uint64(data[off : off+8]))
	}

	e.sc.SetParams(unflattenForSnapshot(flat, current))

	return nil
}

// flattenForSnapshot and unflattenForSnapshot mirror the trainer
// package's private flatten/unflatten ordering (WGate rows, H2, H3,
// Lambda) but are reimplemented here since that ordering is an
// unexported trainer-package detail; routing only depends on the public
// shgat.Params shape.
func flattenForSnapshot(p shgat.Params) []float64 {
	flat := make([]float64, 0, flatSnapshotDim(p))
	for _, row := range p.WGate {
		flat = append(flat, row...)
	}
	flat = append(flat, p.H2Weights[:]...)
	flat = append(flat, p.H2Bias)
	flat = append(flat, p.H3Weights[:]...)
	flat = append(flat, p.H3Bias)
	flat = append(flat, p.Lambda[:]...)

	return flat
}

func unflattenForSnapshot(flat []float64, template shgat.Params) shgat.Params {
	out := template.Clone()
	i := 0
	for h := range out.WGate {
		for j := range out.WGate[h] {
			out.WGate[h][j] = flat[i]
			i++
		}
	}
	for j := range out.H2Weights {
		out.H2Weights[j] = flat[i]
		i++
	}
	out.H2Bias = flat[i]
	i++
	for j := range out.H3Weights {
		out.H3Weights[j] = flat[i]
		i++
	}
	out.H3Bias = flat[i]
	i++
	for j := range out.Lambda {
		out.Lambda[j] = flat[i]
		i++
	}

	return out
}

func flatSnapshotDim(p shgat.Params) int {
	n := 0
	for _, row := range p.WGate {
		n += len(row)
	}

	return n + len(p.H2Weights) + 1 + len(p.H3Weights) + 1 + len(p.Lambda)
}
