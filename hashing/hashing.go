/*
Package hashing checks that hashing is consistent with equality.

Equal values must hash identically. Unequal values with identical hashes are
collisions and are not reported. Equality is checked first, as a total
equality, and a broken equality is reported as a PreconditionFailed violation.

For types that feed themselves into a hash.Hash, Check records the bytes each
value writes and also reports unequal values where the input of one is a proper
prefix of the input of the other. Such values collide once they are hashed in
sequence with other values.
*/
package hashing

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"hash/fnv"

	"github.com/cnf/structhash"
	"github.com/npillmayer/schuko/tracing"
	"google.golang.org/protobuf/proto"

	"reltest/equality"
	"reltest/violation"
)

// tracer traces with key 'reltest.hashing'
func tracer() tracing.Trace {
	return tracing.Select("reltest.hashing")
}

// A type that writes its identity into a hash
type Hashable[T any] interface {
	Equal(T) bool
	Hash(h hash.Hash)
}

// Check that the Hash method of T is consistent with its Equal method
func Check[T Hashable[T]](a, b T) error {
	eq := func(x, y T) bool { return x.Equal(y) }
	if err := precondition(a, b, eq); err != nil {
		return err
	}
	ra, rb := newRecorder(), newRecorder()
	a.Hash(ra)
	b.Hash(rb)
	sa, sb := ra.stream.Bytes(), rb.stream.Bytes()
	tracer().Debugf("hash input of %v is %x, of %v is %x", a, sa, b, sb)

	if eq(a, b) {
		return consistent(a, b, sa, sb)
	}
	if len(sa) != len(sb) && (bytes.HasPrefix(sa, sb) || bytes.HasPrefix(sb, sa)) {
		return violation.New(violation.PrefixCollision, "a != b but the hash input of one is a prefix of the other").
			With("a", a).With("b", b).Values(hexString(sa), hexString(sb))
	}
	return nil
}

// Check that equal values have equal digests
func CheckFunc[T any](a, b T, eq func(T, T) bool, digest func(T) []byte) error {
	if err := precondition(a, b, eq); err != nil {
		return err
	}
	if !eq(a, b) {
		return nil
	}
	return consistent(a, b, digest(a), digest(b))
}

// Check that equal values have equal 64 bit hashes
func Sum64Check[T any](a, b T, eq func(T, T) bool, sum func(T) uint64) error {
	return CheckFunc(a, b, eq, func(x T) []byte {
		return binary.BigEndian.AppendUint64(nil, sum(x))
	})
}

// Check that the Equal method of T agrees with the structural hash of T.
//
// Fields tagged with `hash:"-"` do not take part in the structural hash, so an
// Equal method that compares such a field, or ignores a field that is hashed,
// is reported.
func StructCheck[T equality.Equaler[T]](a, b T, version int) error {
	eq := func(x, y T) bool { return x.Equal(y) }
	return CheckFunc(a, b, eq, func(x T) []byte {
		return structhash.Dump(x, version)
	})
}

// Check that equal messages have equal deterministic encodings
func ProtoCheck[M proto.Message](a, b M) error {
	eq := func(x, y M) bool { return proto.Equal(x, y) }
	opts := proto.MarshalOptions{Deterministic: true}
	var marshalErr error
	err := CheckFunc(a, b, eq, func(m M) []byte {
		out, err := opts.Marshal(m)
		if err != nil && marshalErr == nil {
			marshalErr = err
		}
		return out
	})
	if marshalErr != nil {
		return marshalErr
	}
	return err
}

func precondition[T any](a, b T, eq func(T, T) bool) error {
	if err := equality.TotalCheckFunc(a, b, b, eq); err != nil {
		return violation.Precondition("hash check", err)
	}
	return nil
}

func consistent[T any](a, b T, da, db []byte) error {
	if !bytes.Equal(da, db) {
		return violation.New(violation.HashInconsistency, "a == b but their hashes differ").
			With("a", a).With("b", b).Values(hexString(da), hexString(db))
	}
	return nil
}

// A hash.Hash that keeps every byte written to it
type recorder struct {
	hash.Hash64
	stream bytes.Buffer
}

func newRecorder() *recorder {
	return &recorder{Hash64: fnv.New64a()}
}

func (r *recorder) Write(p []byte) (int, error) {
	r.stream.Write(p)
	return r.Hash64.Write(p)
}

func (r *recorder) Reset() {
	r.stream.Reset()
	r.Hash64.Reset()
}

type hexString []byte

func (h hexString) String() string {
	return hex.EncodeToString(h)
}
