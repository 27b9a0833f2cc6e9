package buffer

// Relative getters read at position and advance it; the *At forms take an
// absolute offset in [start, end) and leave position alone. Array getters fill
// dst[dstOffset:dstOffset+length] and either transfer everything or nothing.

// GetBool reads one bool at position.
func (b *Buffer) GetBool() (bool, error) {
	return getScalar(b, "GetBool", SizeBool, decBool)
}

// GetBoolAt reads one bool at offset.
func (b *Buffer) GetBoolAt(offset int64) (bool, error) {
	return getScalarAt(b, "GetBoolAt", offset, SizeBool, decBool)
}

// GetByte reads one byte at position.
func (b *Buffer) GetByte() (byte, error) {
	return getScalar(b, "GetByte", SizeByte, decByte)
}

// GetByteAt reads one byte at offset.
func (b *Buffer) GetByteAt(offset int64) (byte, error) {
	return getScalarAt(b, "GetByteAt", offset, SizeByte, decByte)
}

// GetByteArray reads length byte values at position into dst starting at dstOffset.
func (b *Buffer) GetByteArray(dst []byte, dstOffset, length int) error {
	return getArray(b, "GetByteArray", dst, dstOffset, length)
}

// GetChar reads one UTF-16 code unit at position.
func (b *Buffer) GetChar() (uint16, error) {
	return getScalar(b, "GetChar", SizeChar, decChar)
}

// GetCharAt reads one UTF-16 code unit at offset.
func (b *Buffer) GetCharAt(offset int64) (uint16, error) {
	return getScalarAt(b, "GetCharAt", offset, SizeChar, decChar)
}

// GetCharArray reads length code units at position into dst starting at dstOffset.
func (b *Buffer) GetCharArray(dst []uint16, dstOffset, length int) error {
	return getArray(b, "GetCharArray", dst, dstOffset, length)
}

// GetInt16 reads one int16 at position.
func (b *Buffer) GetInt16() (int16, error) {
	return getScalar(b, "GetInt16", SizeInt16, decInt16)
}

// GetInt16At reads one int16 at offset.
func (b *Buffer) GetInt16At(offset int64) (int16, error) {
	return getScalarAt(b, "GetInt16At", offset, SizeInt16, decInt16)
}

// GetInt16Array reads length int16 values at position into dst starting at dstOffset.
func (b *Buffer) GetInt16Array(dst []int16, dstOffset, length int) error {
	return getArray(b, "GetInt16Array", dst, dstOffset, length)
}

// GetInt32 reads one int32 at position.
func (b *Buffer) GetInt32() (int32, error) {
	return getScalar(b, "GetInt32", SizeInt32, decInt32)
}

// GetInt32At reads one int32 at offset.
func (b *Buffer) GetInt32At(offset int64) (int32, error) {
	return getScalarAt(b, "GetInt32At", offset, SizeInt32, decInt32)
}

// GetInt32Array reads length int32 values at position into dst starting at dstOffset.
func (b *Buffer) GetInt32Array(dst []int32, dstOffset, length int) error {
	return getArray(b, "GetInt32Array", dst, dstOffset, length)
}

// GetInt64 reads one int64 at position.
func (b *Buffer) GetInt64() (int64, error) {
	return getScalar(b, "GetInt64", SizeInt64, decInt64)
}

// GetInt64At reads one int64 at offset.
func (b *Buffer) GetInt64At(offset int64) (int64, error) {
	return getScalarAt(b, "GetInt64At", offset, SizeInt64, decInt64)
}

// GetInt64Array reads length int64 values at position into dst starting at dstOffset.
func (b *Buffer) GetInt64Array(dst []int64, dstOffset, length int) error {
	return getArray(b, "GetInt64Array", dst, dstOffset, length)
}

// GetFloat32 reads one float32 at position.
func (b *Buffer) GetFloat32() (float32, error) {
	return getScalar(b, "GetFloat32", SizeFloat32, decFloat32)
}

// GetFloat32At reads one float32 at offset.
func (b *Buffer) GetFloat32At(offset int64) (float32, error) {
	return getScalarAt(b, "GetFloat32At", offset, SizeFloat32, decFloat32)
}

// GetFloat32Array reads length float32 values at position into dst starting at dstOffset.
func (b *Buffer) GetFloat32Array(dst []float32, dstOffset, length int) error {
	return getArray(b, "GetFloat32Array", dst, dstOffset, length)
}

// GetFloat64 reads one float64 at position.
func (b *Buffer) GetFloat64() (float64, error) {
	return getScalar(b, "GetFloat64", SizeFloat64, decFloat64)
}

// GetFloat64At reads one float64 at offset.
func (b *Buffer) GetFloat64At(offset int64) (float64, error) {
	return getScalarAt(b, "GetFloat64At", offset, SizeFloat64, decFloat64)
}

// GetFloat64Array reads length float64 values at position into dst starting at dstOffset.
func (b *Buffer) GetFloat64Array(dst []float64, dstOffset, length int) error {
	return getArray(b, "GetFloat64Array", dst, dstOffset, length)
}

// GetBoolArray reads length bool values at position into dst starting at dstOffset.
// Any non-zero byte reads as true.
func (b *Buffer) GetBoolArray(dst []bool, dstOffset, length int) error {
	const op = "GetBoolArray"
	if err := checkArray(op, dstOffset, length, len(dst)); err != nil {
		return err
	}
	w, err := b.next(op, int64(length)*SizeBool)
	if err != nil {
		return err
	}
	for i := range length {
		dst[dstOffset+i] = decBool(w[i:])
	}
	return nil
}
