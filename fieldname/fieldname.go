// Package fieldname implements the stateful field-name compressor YAJBE
// uses for map keys (spec.md §4.6). It is invoked only for keys: ordinary
// string values go through the value codec's own String form.
//
// Both Encoder and Decoder maintain an ordered index table and a
// last-key buffer across the keys they process. yajbe.Encode and
// yajbe.Decode create fresh ones per call; a yajbe.Encoder or
// yajbe.Decoder keeps one of each across every value it handles.
package fieldname

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/yajbe-format/yajbe-go/wire"
)

// MaxTableSize is the largest index the length scheme can address
// (spec.md §4.6): the capacity cap is not arbitrary, it is the largest
// value the length field in §4.6 can represent.
const MaxTableSize = 65819

// Form identifies which of the four field-name header shapes was used.
type Form int

const (
	FormFull Form = iota
	FormIndexed
	FormPrefix
	FormPrefixSuffix
)

const (
	headFull          = 0x80 // 100xxxxx
	headIndexed       = 0xA0 // 101xxxxx
	headPrefix        = 0xC0 // 110xxxxx
	headPrefixSuffix  = 0xE0 // 111xxxxx
	formMask          = 0xE0
	lengthMask   byte = 0x1F
)

// IndexOutOfRangeError reports an Indexed field-name referring to an
// index beyond the current table size (spec.md §7).
type IndexOutOfRangeError struct {
	Index, Size int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("fieldname: index %d out of range (table size %d)", e.Index, e.Size)
}

// LengthOverflowError reports a field-name length exceeding the
// format's maximum (spec.md §7).
type LengthOverflowError struct {
	Length int
}

func (e *LengthOverflowError) Error() string {
	return fmt.Sprintf("fieldname: length %d exceeds maximum %d", e.Length, MaxTableSize)
}

// table is the shared ordered index + hash-accelerated lookup used by
// both Encoder and Decoder, grounded on arloliu-mebo's internal/collision
// Tracker: a hash bucket narrows the search, a string compare confirms
// it, so two distinct keys that happen to share an xxhash digest never
// get silently conflated.
type table struct {
	names  []string
	byHash map[uint64][]int
}

func newTable(initial []string) *table {
	t := &table{
		names:  make([]string, 0, len(initial)),
		byHash: make(map[uint64][]int, len(initial)),
	}
	for _, n := range initial {
		t.append(n)
	}
	return t
}

func (t *table) append(name string) {
	if len(t.names) >= MaxTableSize {
		return
	}
	idx := len(t.names)
	t.names = append(t.names, name)
	h := xxhash.Sum64String(name)
	t.byHash[h] = append(t.byHash[h], idx)
}

// indexOf returns the table index of name, if already present.
func (t *table) indexOf(name string) (int, bool) {
	h := xxhash.Sum64String(name)
	for _, idx := range t.byHash[h] {
		if t.names[idx] == name {
			return idx, true
		}
	}
	return 0, false
}

func (t *table) at(idx int) (string, bool) {
	if idx < 0 || idx >= len(t.names) {
		return "", false
	}
	return t.names[idx], true
}

func (t *table) size() int { return len(t.names) }

// Encoder emits field-name headers for a single document's keys.
type Encoder struct {
	table   *table
	lastKey string
}

// NewEncoder returns a field-name Encoder. initial prepopulates the
// index table with a well-known dictionary both sides agree on
// out-of-band (spec.md §4.6, "MAY also accept an initial dictionary").
func NewEncoder(initial []string) *Encoder {
	return &Encoder{table: newTable(initial)}
}

// Encode writes the header + payload for key to w, updating encoder
// state per the policy in spec.md §4.6.
func (e *Encoder) Encode(w wire.Writer, key string) error {
	if idx, ok := e.table.indexOf(key); ok {
		if err := writeLengthHeader(w, headIndexed, idx); err != nil {
			return err
		}
		e.lastKey = key
		return nil
	}

	p := commonPrefixLen(e.lastKey, key)
	if p > 255 {
		p = 255
	}
	s := commonSuffixLen(e.lastKey, key[p:])
	if s > 255 {
		s = 255
	}

	var err error
	switch {
	case s > 2:
		middle := key[p : len(key)-s]
		if err = writeLengthHeader(w, headPrefixSuffix, len(middle)); err != nil {
			return err
		}
		if err = w.WriteByte(byte(p)); err != nil {
			return err
		}
		if err = w.WriteByte(byte(s)); err != nil {
			return err
		}
		err = w.WriteBytes([]byte(middle))
	case p > 2:
		tail := key[p:]
		if err = writeLengthHeader(w, headPrefix, len(tail)); err != nil {
			return err
		}
		if err = w.WriteByte(byte(p)); err != nil {
			return err
		}
		err = w.WriteBytes([]byte(tail))
	default:
		if err = writeLengthHeader(w, headFull, len(key)); err != nil {
			return err
		}
		err = w.WriteBytes([]byte(key))
	}
	if err != nil {
		return err
	}

	e.table.append(key)
	e.lastKey = key
	return nil
}

// Decoder mirrors Encoder's state machine on the read side.
type Decoder struct {
	table   *table
	lastKey string
}

// NewDecoder returns a field-name Decoder. initial must match the
// Encoder's initial dictionary, if any.
func NewDecoder(initial []string) *Decoder {
	return &Decoder{table: newTable(initial)}
}

// Decode reads one field-name from r and returns it, updating decoder
// state symmetrically with Encoder.Encode.
func (d *Decoder) Decode(r wire.Reader) (string, error) {
	head, err := r.ReadByte()
	if err != nil {
		return "", err
	}
	length, err := readLength(r, head)
	if err != nil {
		return "", err
	}

	var key string
	switch head & formMask {
	case headIndexed:
		name, ok := d.table.at(length)
		if !ok {
			return "", &IndexOutOfRangeError{Index: length, Size: d.table.size()}
		}
		d.lastKey = name
		return name, nil
	case headFull:
		b, err := r.ReadN(length)
		if err != nil {
			return "", err
		}
		key = string(b)
	case headPrefix:
		pb, err := r.ReadByte()
		if err != nil {
			return "", err
		}
		tail, err := r.ReadN(length)
		if err != nil {
			return "", err
		}
		key = prefixOf(d.lastKey, int(pb)) + string(tail)
	case headPrefixSuffix:
		pb, err := r.ReadByte()
		if err != nil {
			return "", err
		}
		sb, err := r.ReadByte()
		if err != nil {
			return "", err
		}
		middle, err := r.ReadN(length)
		if err != nil {
			return "", err
		}
		key = prefixOf(d.lastKey, int(pb)) + string(middle) + suffixOf(d.lastKey, int(sb))
	default:
		return "", fmt.Errorf("fieldname: invalid head 0x%02x", head)
	}

	d.table.append(key)
	d.lastKey = key
	return key, nil
}

func prefixOf(s string, n int) string {
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}

func suffixOf(s string, n int) string {
	if n > len(s) {
		n = len(s)
	}
	return s[len(s)-n:]
}

func commonPrefixLen(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

func commonSuffixLen(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[len(a)-1-i] == b[len(b)-1-i] {
		i++
	}
	return i
}

// writeLengthHeader writes headForm with the shared length scheme
// (spec.md §4.6: 0..29 inline, 30 => 1 byte, 31 => 2 bytes).
func writeLengthHeader(w wire.Writer, headForm byte, length int) error {
	switch {
	case length <= 29:
		return w.WriteByte(headForm | byte(length))
	case length <= 284:
		if err := w.WriteByte(headForm | 30); err != nil {
			return err
		}
		return w.WriteByte(byte(length - 29))
	case length <= MaxTableSize:
		if err := w.WriteByte(headForm | 31); err != nil {
			return err
		}
		v := length - 284
		if err := w.WriteByte(byte(v >> 8)); err != nil {
			return err
		}
		return w.WriteByte(byte(v))
	default:
		return &LengthOverflowError{Length: length}
	}
}

func readLength(r wire.Reader, head byte) (int, error) {
	l := head & lengthMask
	switch {
	case l <= 29:
		return int(l), nil
	case l == 30:
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		return int(b) + 29, nil
	default: // 31
		hi, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		lo, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		return 284 + int(hi)*256 + int(lo), nil
	}
}
