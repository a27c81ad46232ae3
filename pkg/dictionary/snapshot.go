package dictionary

import (
	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"
)

// wordSet is the word list for one dictionary kind, retained in a Snapshot
// so CacheCodec can serialize enough to reconstruct Info/Tag without
// re-reading the manifest file.
type wordSet struct {
	Kind  string
	Words []string
}

// Snapshot is one fully-loaded, fingerprinted view of a dictionary manifest.
type Snapshot struct {
	Infos []Info
	Tags  []Tag
	Words []wordSet

	// Fingerprint is a keyed BLAKE2b-256 digest of the snapshot's encoded
	// form, letting callers cheaply tell whether a reload actually changed
	// anything (FileProvider logs a reload only when the fingerprint
	// changes).
	Fingerprint [32]byte
}

// fingerprintKey is a fixed, non-secret key: the fingerprint only needs to
// be collision-resistant between snapshots, not to authenticate anything.
var fingerprintKey = []byte("slugkit.patterndsl.dictionary.fp")

func computeFingerprint(snap *Snapshot) ([32]byte, error) {
	h, err := blake2b.New256(fingerprintKey[:32])
	if err != nil {
		return [32]byte{}, err
	}
	enc, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return [32]byte{}, err
	}
	data, err := enc.Marshal(struct {
		Infos []Info
		Tags  []Tag
		Words []wordSet
	}{snap.Infos, snap.Tags, snap.Words})
	if err != nil {
		return [32]byte{}, err
	}
	if _, err := h.Write(data); err != nil {
		return [32]byte{}, err
	}
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum, nil
}

// CacheCodec encodes and decodes Snapshots as CBOR, for embedders that want
// to persist a loaded dictionary set between process restarts without
// re-validating the JSON manifest.
type CacheCodec struct{}

// Encode produces a deterministic CBOR encoding of snap.
func (CacheCodec) Encode(snap *Snapshot) ([]byte, error) {
	enc, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	return enc.Marshal(snap)
}

// Decode reconstructs a Snapshot previously produced by Encode.
func (CacheCodec) Decode(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := cbor.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
