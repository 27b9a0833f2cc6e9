package memory

// Primitive lists the element types that can back a heap view.
type Primitive interface {
	~bool | ~int8 | ~uint8 | ~uint16 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Reader is the byte-level read surface shared by every view.
type Reader interface {
	Capacity() int64
	Position() int64
	Remaining() int64
	GetByte() (byte, error)
	GetByteAt(offset int64) (byte, error)
	GetByteArray(dst []byte, dstOffset, length int) error
	HexString(comment string, offset, length int64) (string, error)
}

// Writer extends Reader with the byte-level mutating surface of writable views.
type Writer interface {
	Reader
	PutByte(v byte) error
	PutByteAt(offset int64, v byte) error
	PutByteArray(src []byte, srcOffset, length int) error
	Fill(v byte) error
	Clear() error
}
