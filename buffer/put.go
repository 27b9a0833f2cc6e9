package buffer

// PutBool writes one bool at position.
func (b *WritableBuffer) PutBool(v bool) error {
	return putScalar(b, "PutBool", SizeBool, v, encBool)
}

// PutBoolAt writes one bool at offset.
func (b *WritableBuffer) PutBoolAt(offset int64, v bool) error {
	return putScalarAt(b, "PutBoolAt", offset, SizeBool, v, encBool)
}

// PutByte writes one byte at position.
func (b *WritableBuffer) PutByte(v byte) error {
	return putScalar(b, "PutByte", SizeByte, v, encByte)
}

// PutByteAt writes one byte at offset.
func (b *WritableBuffer) PutByteAt(offset int64, v byte) error {
	return putScalarAt(b, "PutByteAt", offset, SizeByte, v, encByte)
}

// PutByteArray writes src[srcOffset:srcOffset+length] at position.
func (b *WritableBuffer) PutByteArray(src []byte, srcOffset, length int) error {
	return putArray(b, "PutByteArray", src, srcOffset, length)
}

// PutChar writes one UTF-16 code unit at position.
func (b *WritableBuffer) PutChar(v uint16) error {
	return putScalar(b, "PutChar", SizeChar, v, encChar)
}

// PutCharAt writes one UTF-16 code unit at offset.
func (b *WritableBuffer) PutCharAt(offset int64, v uint16) error {
	return putScalarAt(b, "PutCharAt", offset, SizeChar, v, encChar)
}

// PutCharArray writes src[srcOffset:srcOffset+length] at position.
func (b *WritableBuffer) PutCharArray(src []uint16, srcOffset, length int) error {
	return putArray(b, "PutCharArray", src, srcOffset, length)
}

// PutInt16 writes one int16 at position.
func (b *WritableBuffer) PutInt16(v int16) error {
	return putScalar(b, "PutInt16", SizeInt16, v, encInt16)
}

// PutInt16At writes one int16 at offset.
func (b *WritableBuffer) PutInt16At(offset int64, v int16) error {
	return putScalarAt(b, "PutInt16At", offset, SizeInt16, v, encInt16)
}

// PutInt16Array writes src[srcOffset:srcOffset+length] at position.
func (b *WritableBuffer) PutInt16Array(src []int16, srcOffset, length int) error {
	return putArray(b, "PutInt16Array", src, srcOffset, length)
}

// PutInt32 writes one int32 at position.
func (b *WritableBuffer) PutInt32(v int32) error {
	return putScalar(b, "PutInt32", SizeInt32, v, encInt32)
}

// PutInt32At writes one int32 at offset.
func (b *WritableBuffer) PutInt32At(offset int64, v int32) error {
	return putScalarAt(b, "PutInt32At", offset, SizeInt32, v, encInt32)
}

// PutInt32Array writes src[srcOffset:srcOffset+length] at position.
func (b *WritableBuffer) PutInt32Array(src []int32, srcOffset, length int) error {
	return putArray(b, "PutInt32Array", src, srcOffset, length)
}

// PutInt64 writes one int64 at position.
func (b *WritableBuffer) PutInt64(v int64) error {
	return putScalar(b, "PutInt64", SizeInt64, v, encInt64)
}

// PutInt64At writes one int64 at offset.
func (b *WritableBuffer) PutInt64At(offset int64, v int64) error {
	return putScalarAt(b, "PutInt64At", offset, SizeInt64, v, encInt64)
}

// PutInt64Array writes src[srcOffset:srcOffset+length] at position.
func (b *WritableBuffer) PutInt64Array(src []int64, srcOffset, length int) error {
	return putArray(b, "PutInt64Array", src, srcOffset, length)
}

// PutFloat32 writes one float32 at position.
func (b *WritableBuffer) PutFloat32(v float32) error {
	return putScalar(b, "PutFloat32", SizeFloat32, v, encFloat32)
}

// PutFloat32At writes one float32 at offset.
func (b *WritableBuffer) PutFloat32At(offset int64, v float32) error {
	return putScalarAt(b, "PutFloat32At", offset, SizeFloat32, v, encFloat32)
}

// PutFloat32Array writes src[srcOffset:srcOffset+length] at position.
func (b *WritableBuffer) PutFloat32Array(src []float32, srcOffset, length int) error {
	return putArray(b, "PutFloat32Array", src, srcOffset, length)
}

// PutFloat64 writes one float64 at position.
func (b *WritableBuffer) PutFloat64(v float64) error {
	return putScalar(b, "PutFloat64", SizeFloat64, v, encFloat64)
}

// PutFloat64At writes one float64 at offset.
func (b *WritableBuffer) PutFloat64At(offset int64, v float64) error {
	return putScalarAt(b, "PutFloat64At", offset, SizeFloat64, v, encFloat64)
}

// PutFloat64Array writes src[srcOffset:srcOffset+length] at position.
func (b *WritableBuffer) PutFloat64Array(src []float64, srcOffset, length int) error {
	return putArray(b, "PutFloat64Array", src, srcOffset, length)
}

// PutBoolArray writes src[srcOffset:srcOffset+length] at position, one byte per value.
func (b *WritableBuffer) PutBoolArray(src []bool, srcOffset, length int) error {
	const op = "PutBoolArray"
	if err := checkArray(op, srcOffset, length, len(src)); err != nil {
		return err
	}
	w, err := b.next(op, int64(length)*SizeBool)
	if err != nil {
		return err
	}
	for i := range length {
		encBool(w[i:], src[srcOffset+i])
	}
	return nil
}
