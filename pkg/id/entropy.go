package id

import (
	"crypto/rand"
	"encoding/binary"
	"os"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Entropy produces the 80-bit random component of an ID.
// Implementations must not block or fail and must be safe for concurrent use.
type Entropy interface {
	Next() [RandomSize]byte
}

// EntropyFunc adapts a function to Entropy.
type EntropyFunc func() [RandomSize]byte

// Next calls f.
func (f EntropyFunc) Next() [RandomSize]byte { return f() }

// Mixer is the default Entropy. Each call hashes the sub-second time, a
// microsecond timestamp, a per-Mixer counter, the calling OS thread and a
// per-Mixer seed with xxHash64, once per 2-byte chunk of output.
//
// Mixer output is not cryptographically secure. It keeps rapid successive
// and concurrent calls apart with high probability but is predictable to an
// observer; use CryptoEntropy for anything that must not be guessed.
//
// The zero value is ready to use. A Mixer must not be copied after first use;
// share one *Mixer so that all callers draw from the same counter.
type Mixer struct {
	counter atomic.Uint64
	seed    uint64
	now     func() time.Time
}

// NewMixer returns a Mixer seeded from the process id and start time.
func NewMixer() *Mixer {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(time.Now().UnixNano()))
	binary.LittleEndian.PutUint64(buf[8:], uint64(os.Getpid()))
	return &Mixer{seed: xxhash.Sum64(buf[:])}
}

// Next returns 10 mixed bytes.
func (m *Mixer) Next() [RandomSize]byte {
	t := time.Now()
	if m.now != nil {
		t = m.now()
	}
	nanos := uint64(t.Nanosecond())
	micros := uint64(t.UnixMicro())
	// Relaxed increment is enough: the counter only has to differ per call.
	counter := m.counter.Add(1) - 1
	thread := threadID()

	var out [RandomSize]byte
	var buf [48]byte
	for i := uint64(0); i < RandomSize/2; i++ {
		binary.LittleEndian.PutUint64(buf[0:], nanos*(i+1))
		binary.LittleEndian.PutUint64(buf[8:], micros+i)
		binary.LittleEndian.PutUint64(buf[16:], counter*(i+7))
		binary.LittleEndian.PutUint64(buf[24:], thread*(i+13))
		binary.LittleEndian.PutUint64(buf[32:], m.seed)
		binary.LittleEndian.PutUint64(buf[40:], i*17)
		h := xxhash.Sum64(buf[:])
		out[2*i] = byte(h >> 8)
		out[2*i+1] = byte(h)
	}
	return out
}

// CryptoEntropy reads from crypto/rand.
type CryptoEntropy struct{}

// Next returns 10 bytes from crypto/rand.
func (CryptoEntropy) Next() [RandomSize]byte {
	var b [RandomSize]byte
	_, _ = rand.Read(b[:])
	return b
}
