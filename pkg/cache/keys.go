package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// ArtifactKeyOpts holds everything besides the train that changes an
// encoded artifact.
type ArtifactKeyOpts struct {
	Format string
	Scale  float64 // PNG only; zero for vector formats
	Theme  string  // empty for the default colors
}

// Keyer builds cache keys.
type Keyer interface {
	// TrainHash identifies a train by its loads and bounds.
	TrainHash(loads []float64, width, height float64) string

	// ArtifactKey identifies one encoded rendering of a train.
	ArtifactKey(trainHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer derives keys from a SHA-256 digest of their fields.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// TrainHash returns "train:" and the digest of the loads and bounds. Loads
// are hashed in order, so reordered carriages give a different train.
func (DefaultKeyer) TrainHash(loads []float64, width, height float64) string {
	fields := make([]string, 0, len(loads)+2)
	fields = append(fields, num(width), num(height))
	for _, v := range loads {
		fields = append(fields, num(v))
	}
	return "train:" + digest(fields...)
}

// ArtifactKey returns "artifact:" and the digest of the train hash and the
// encoding options.
func (DefaultKeyer) ArtifactKey(trainHash string, opts ArtifactKeyOpts) string {
	return "artifact:" + digest(trainHash, opts.Format, num(opts.Scale), opts.Theme)
}

// ScopedKeyer prefixes artifact keys so several deployments can share one
// Redis without collisions.
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "capview:v1:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or a DefaultKeyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// TrainHash is not prefixed; it only feeds ArtifactKey.
func (k *ScopedKeyer) TrainHash(loads []float64, width, height float64) string {
	return k.inner.TrainHash(loads, width, height)
}

func (k *ScopedKeyer) ArtifactKey(trainHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(trainHash, opts)
}

// digest hashes fields separated by NUL, which none of them can contain.
func digest(fields ...string) string {
	return sum([]byte(strings.Join(fields, "\x00")))
}

// sum returns the hex SHA-256 of data.
func sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// num formats v in its shortest round-tripping form, so equal floats always
// produce the same field.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
