package section

import (
	"fmt"

	"github.com/arloliu/catalog24x7/endian"
)

// FieldKind describes how a field's bytes are interpreted.
type FieldKind uint8

const (
	// KindUint is an unsigned integer of 1, 2, 4 or 8 bytes.
	KindUint FieldKind = iota
	// KindBytes is a fixed-width raw byte string.
	KindBytes
	// KindReserved is filled with ReservedFill and ignored on read.
	KindReserved
)

// Field is one entry in a record layout.
type Field struct {
	Name  string
	Width int
	Kind  FieldKind
}

// Uint declares an unsigned integer field.
func Uint(name string, width int) Field {
	return Field{Name: name, Width: width, Kind: KindUint}
}

// Bytes declares a fixed-width byte string field.
func Bytes(name string, width int) Field {
	return Field{Name: name, Width: width, Kind: KindBytes}
}

// Reserved declares an anonymous padding field.
func Reserved(width int) Field {
	return Field{Width: width, Kind: KindReserved}
}

// Layout is the packed, unaligned byte layout of the fixed part of a record.
//
// Fields are laid out back to back in declaration order. Layouts are built once
// at package init, so a malformed table panics on program start.
type Layout struct {
	name    string
	fields  []Field
	offsets map[string]int
	size    int
}

// NewLayout builds a layout from fields, panicking on invalid widths or duplicate names.
func NewLayout(name string, fields ...Field) *Layout {
	l := &Layout{
		name:    name,
		fields:  fields,
		offsets: make(map[string]int, len(fields)),
	}

	for _, f := range fields {
		if f.Width <= 0 {
			panic(fmt.Sprintf("section: %s: field %q has invalid width %d", name, f.Name, f.Width))
		}
		if f.Kind == KindUint && f.Width != 1 && f.Width != 2 && f.Width != 4 && f.Width != 8 {
			panic(fmt.Sprintf("section: %s: uint field %q has invalid width %d", name, f.Name, f.Width))
		}
		if f.Kind != KindReserved {
			if _, dup := l.offsets[f.Name]; dup {
				panic(fmt.Sprintf("section: %s: duplicate field %q", name, f.Name))
			}
			l.offsets[f.Name] = l.size
		}
		l.size += f.Width
	}

	return l
}

// Name returns the layout name.
func (l *Layout) Name() string {
	return l.name
}

// Size returns the total byte size of the layout.
func (l *Layout) Size() int {
	return l.size
}

// Fields returns the layout's fields in order.
func (l *Layout) Fields() []Field {
	return l.fields
}

// Offset returns the byte offset of the named field.
func (l *Layout) Offset(name string) int {
	off, _ := l.lookup(name)
	return off
}

func (l *Layout) lookup(name string) (int, Field) {
	off, ok := l.offsets[name]
	if !ok {
		panic(fmt.Sprintf("section: %s: unknown field %q", l.name, name))
	}
	for _, f := range l.fields {
		if f.Name == name {
			return off, f
		}
	}

	panic("unreachable")
}

// FillReserved writes ReservedFill into every reserved field of b.
func (l *Layout) FillReserved(b []byte) {
	off := 0
	for _, f := range l.fields {
		if f.Kind == KindReserved {
			for i := off; i < off+f.Width; i++ {
				b[i] = ReservedFill
			}
		}
		off += f.Width
	}
}

// PutUint writes v into the named integer field of b.
// It panics if v does not fit the field width; callers validate values beforehand.
func (l *Layout) PutUint(b []byte, engine endian.EndianEngine, name string, v uint64) {
	off, f := l.lookup(name)
	if f.Kind != KindUint {
		panic(fmt.Sprintf("section: %s: field %q is not an integer", l.name, name))
	}
	if f.Width < 8 && v>>(8*f.Width) != 0 {
		panic(fmt.Sprintf("section: %s: value %d overflows %d-byte field %q", l.name, v, f.Width, name))
	}

	switch f.Width {
	case 1:
		b[off] = byte(v)
	case 2:
		engine.PutUint16(b[off:off+2], uint16(v))
	case 4:
		engine.PutUint32(b[off:off+4], uint32(v))
	case 8:
		engine.PutUint64(b[off:off+8], v)
	}
}

// Uint reads the named integer field from b.
func (l *Layout) Uint(b []byte, engine endian.EndianEngine, name string) uint64 {
	off, f := l.lookup(name)
	switch f.Width {
	case 1:
		return uint64(b[off])
	case 2:
		return uint64(engine.Uint16(b[off : off+2]))
	case 4:
		return uint64(engine.Uint32(b[off : off+4]))
	default:
		return engine.Uint64(b[off : off+8])
	}
}

// PutBytes copies v into the named byte field of b. Short values are zero padded.
func (l *Layout) PutBytes(b []byte, name string, v []byte) {
	off, f := l.lookup(name)
	if f.Kind != KindBytes || len(v) > f.Width {
		panic(fmt.Sprintf("section: %s: cannot store %d bytes in field %q", l.name, len(v), name))
	}
	n := copy(b[off:off+f.Width], v)
	clear(b[off+n : off+f.Width])
}

// ByteField returns the named byte field of b. The result aliases b.
func (l *Layout) ByteField(b []byte, name string) []byte {
	off, f := l.lookup(name)
	return b[off : off+f.Width]
}
