package gate

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"math/big"
	"os"

	"github.com/holiman/uint256"
	"golang.org/x/crypto/blake2b"

	"github.com/quantumlang/gridsynth/internal/ring"
)

// s3CachePath is where the S3 table is cached between runs, mirroring the
// teacher's InitializeStorage/LoadS3/StoreS3 pattern (try a file, fall back
// to recomputation, then write the file back for next time).
const s3CachePath = "gridsynth_s3.cache"

const s3CacheMagic uint32 = 0x71726f74 // "qrot" -- an accident of history, kept for stability.

// Every S3-table coefficient has sde <= 3, so its numerator fits easily
// inside a uint256 fast path; we only fall back to arbitrary-precision
// encoding if that invariant is ever violated.
func encodeDyadic(w *bytes.Buffer, d ring.Dyadic) {
	num := d.Num()
	neg := num.Sign() < 0
	abs := new(big.Int).Abs(num)
	if abs.BitLen() <= 256 {
		var u uint256.Int
		u.SetFromBig(abs)
		b := u.Bytes32()
		w.WriteByte(1) // fast path marker
		w.WriteByte(boolByte(neg))
		w.Write(b[:])
	} else {
		raw := abs.Bytes()
		w.WriteByte(0) // slow path marker
		w.WriteByte(boolByte(neg))
		var lenBuf [4]byte
		binary.BigEndian.PutUint32(lenBuf[:], uint32(len(raw)))
		w.Write(lenBuf[:])
		w.Write(raw)
	}
	var expBuf [4]byte
	binary.BigEndian.PutUint32(expBuf[:], uint32(d.DenExp()))
	w.Write(expBuf[:])
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

func decodeDyadic(r *bytes.Reader) (ring.Dyadic, error) {
	marker, err := r.ReadByte()
	if err != nil {
		return ring.Dyadic{}, err
	}
	negByte, err := r.ReadByte()
	if err != nil {
		return ring.Dyadic{}, err
	}
	var num *big.Int
	if marker == 1 {
		var b [32]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return ring.Dyadic{}, err
		}
		var u uint256.Int
		u.SetBytes32(b[:])
		num = u.ToBig()
	} else {
		var lenBuf [4]byte
		if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
			return ring.Dyadic{}, err
		}
		raw := make([]byte, binary.BigEndian.Uint32(lenBuf[:]))
		if _, err := io.ReadFull(r, raw); err != nil {
			return ring.Dyadic{}, err
		}
		num = new(big.Int).SetBytes(raw)
	}
	if negByte == 1 {
		num.Neg(num)
	}
	var expBuf [4]byte
	if _, err := io.ReadFull(r, expBuf[:]); err != nil {
		return ring.Dyadic{}, err
	}
	return ring.NewDyadic(num, int32(binary.BigEndian.Uint32(expBuf[:]))), nil
}

func encodeD2(w *bytes.Buffer, x ring.D2) {
	encodeDyadic(w, x.A)
	encodeDyadic(w, x.B)
}

func decodeD2(r *bytes.Reader) (ring.D2, error) {
	a, err := decodeDyadic(r)
	if err != nil {
		return ring.D2{}, err
	}
	b, err := decodeDyadic(r)
	if err != nil {
		return ring.D2{}, err
	}
	return ring.NewD2(a, b), nil
}

func encodeCD2(w *bytes.Buffer, x ring.CD2) {
	encodeD2(w, x.Re)
	encodeD2(w, x.Im)
}

func decodeCD2(r *bytes.Reader) (ring.CD2, error) {
	re, err := decodeD2(r)
	if err != nil {
		return ring.CD2{}, err
	}
	im, err := decodeD2(r)
	if err != nil {
		return ring.CD2{}, err
	}
	return ring.NewCD2(re, im), nil
}

// storeS3Cache writes the table to s3CachePath with a blake2b-256 integrity
// checksum, logging nothing and returning quietly on failure -- a cache
// miss on the next run just costs a BFS rebuild, never correctness.
func storeS3Cache(table []s3Entry) {
	var payload bytes.Buffer
	var countBuf [4]byte
	binary.BigEndian.PutUint32(countBuf[:], uint32(len(table)))
	payload.Write(countBuf[:])
	for _, e := range table {
		encodeCD2(&payload, e.mat.M00)
		encodeCD2(&payload, e.mat.M01)
		encodeCD2(&payload, e.mat.M10)
		encodeCD2(&payload, e.mat.M11)
		word := e.gate.ToString()
		var wlen [4]byte
		binary.BigEndian.PutUint32(wlen[:], uint32(len(word)))
		payload.Write(wlen[:])
		payload.WriteString(word)
	}

	sum := blake2b.Sum256(payload.Bytes())

	f, err := os.Create(s3CachePath)
	if err != nil {
		return
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	var magicBuf [4]byte
	binary.BigEndian.PutUint32(magicBuf[:], s3CacheMagic)
	bw.Write(magicBuf[:])
	bw.Write(sum[:])
	bw.Write(payload.Bytes())
	bw.Flush()
}

// loadS3Cache reads and verifies the cache file written by storeS3Cache.
func loadS3Cache() ([]s3Entry, bool) {
	raw, err := os.ReadFile(s3CachePath)
	if err != nil || len(raw) < 4+32 {
		return nil, false
	}
	if binary.BigEndian.Uint32(raw[:4]) != s3CacheMagic {
		return nil, false
	}
	wantSum := raw[4 : 4+32]
	payload := raw[4+32:]
	gotSum := blake2b.Sum256(payload)
	if !bytes.Equal(wantSum, gotSum[:]) {
		return nil, false
	}

	r := bytes.NewReader(payload)
	var countBuf [4]byte
	if _, err := io.ReadFull(r, countBuf[:]); err != nil {
		return nil, false
	}
	count := binary.BigEndian.Uint32(countBuf[:])
	table := make([]s3Entry, 0, count)
	for i := uint32(0); i < count; i++ {
		m00, err := decodeCD2(r)
		if err != nil {
			return nil, false
		}
		m01, err := decodeCD2(r)
		if err != nil {
			return nil, false
		}
		m10, err := decodeCD2(r)
		if err != nil {
			return nil, false
		}
		m11, err := decodeCD2(r)
		if err != nil {
			return nil, false
		}
		var wlen [4]byte
		if _, err := io.ReadFull(r, wlen[:]); err != nil {
			return nil, false
		}
		wordBuf := make([]byte, binary.BigEndian.Uint32(wlen[:]))
		if _, err := io.ReadFull(r, wordBuf); err != nil {
			return nil, false
		}
		g, err := FromString(string(wordBuf))
		if err != nil {
			return nil, false
		}
		table = append(table, s3Entry{mat: New(m00, m01, m10, m11), gate: g})
	}
	return table, true
}
