package soulboard

import (
	"bytes"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/binary"

	"github.com/mr-tron/base58"
)

// Anchor prepends an 8 byte discriminator to every instruction and account.
// Instructions are namespaced under "global", accounts under "account".

func instructionDiscriminator(name string) []byte {
	h := sha256.Sum256([]byte("global:" + name))
	return h[:8]
}

func accountDiscriminator(name string) []byte {
	h := sha256.Sum256([]byte("account:" + name))
	return h[:8]
}

func putDiscriminator(buf *bytes.Buffer, v []byte) {
	buf.Write(v)
}

func putKey(buf *bytes.Buffer, v ed25519.PublicKey) {
	fixed := make([]byte, ed25519.PublicKeySize)
	copy(fixed, v)
	buf.Write(fixed)
}

func putUint8(buf *bytes.Buffer, v uint8) {
	buf.WriteByte(v)
}

func putUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func putUint64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

func putInt64(buf *bytes.Buffer, v int64) {
	putUint64(buf, uint64(v))
}

func putBool(buf *bytes.Buffer, v bool) {
	if v {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}
}

func putString(buf *bytes.Buffer, v string) {
	putUint32(buf, uint32(len(v)))
	buf.WriteString(v)
}

func putOptionString(buf *bytes.Buffer, v *string) {
	if v == nil {
		buf.WriteByte(0)
		return
	}
	buf.WriteByte(1)
	putString(buf, *v)
}

func putOptionBool(buf *bytes.Buffer, v *bool) {
	if v == nil {
		buf.WriteByte(0)
		return
	}
	buf.WriteByte(1)
	putBool(buf, *v)
}

// decoder reads borsh values sequentially from an account data buffer.
// Account data carries variable length strings and vectors, so every read
// is bounds checked; the first failure sticks in err and subsequent reads
// return zero values.
type decoder struct {
	data   []byte
	offset int
	err    error
}

func newDecoder(data []byte) *decoder {
	return &decoder{data: data}
}

func (d *decoder) take(n int) []byte {
	if d.err != nil {
		return nil
	}
	if d.offset+n > len(d.data) {
		d.err = ErrInvalidAccountData
		return nil
	}
	b := d.data[d.offset : d.offset+n]
	d.offset += n
	return b
}

func (d *decoder) readDiscriminator(expected []byte) {
	b := d.take(8)
	if d.err != nil {
		return
	}
	if !bytes.Equal(b, expected) {
		d.err = ErrInvalidAccountData
	}
}

func (d *decoder) readKey() ed25519.PublicKey {
	b := d.take(ed25519.PublicKeySize)
	if d.err != nil {
		return nil
	}
	k := make([]byte, ed25519.PublicKeySize)
	copy(k, b)
	return k
}

func (d *decoder) readUint8() uint8 {
	b := d.take(1)
	if d.err != nil {
		return 0
	}
	return b[0]
}

func (d *decoder) readBool() bool {
	return d.readUint8() == 1
}

func (d *decoder) readUint32() uint32 {
	b := d.take(4)
	if d.err != nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (d *decoder) readUint64() uint64 {
	b := d.take(8)
	if d.err != nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (d *decoder) readInt64() int64 {
	return int64(d.readUint64())
}

func (d *decoder) readString() string {
	length := d.readUint32()
	b := d.take(int(length))
	if d.err != nil {
		return ""
	}
	return string(b)
}

func (d *decoder) readKeyVec() []ed25519.PublicKey {
	count := d.readUint32()
	keys := make([]ed25519.PublicKey, 0, count)
	for i := uint32(0); i < count; i++ {
		if d.err != nil {
			return nil
		}
		keys = append(keys, d.readKey())
	}
	return keys
}

func mustBase58Decode(value string) []byte {
	decoded, err := base58.Decode(value)
	if err != nil {
		panic(err)
	}
	return decoded
}
