package grpc

import (
	"math"

	"google.golang.org/protobuf/types/known/structpb"

	apperrors "employee-service/pkg/errors"
)

// fieldReader reads typed fields from a Struct message. The first invalid
// field is kept in err and later reads return zero values.
type fieldReader struct {
	in     *structpb.Struct
	prefix string
	err    error
}

func readFields(in *structpb.Struct, prefix string) *fieldReader {
	return &fieldReader{in: in, prefix: prefix}
}

// value returns the field, or nil when it is missing or null.
func (f *fieldReader) value(name string) *structpb.Value {
	if f.err != nil {
		return nil
	}
	v, ok := f.in.GetFields()[name]
	if !ok {
		return nil
	}
	if _, isNull := v.GetKind().(*structpb.Value_NullValue); isNull {
		return nil
	}
	return v
}

func (f *fieldReader) fail(name, message string) {
	f.err = apperrors.NewValidationError(f.prefix+name, message)
}

func (f *fieldReader) text(name string) string {
	v := f.value(name)
	if v == nil {
		return ""
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		f.fail(name, "must be a string")
		return ""
	}
	return s.StringValue
}

// number returns the integral value of name within [lo, hi). Struct numbers
// are doubles, so NaN, infinities, fractions and out of range values are
// rejected rather than converted.
func (f *fieldReader) number(name string, lo, hi float64) (float64, bool) {
	v := f.value(name)
	if v == nil {
		return 0, false
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		f.fail(name, "must be a number")
		return 0, false
	}
	x := n.NumberValue
	switch {
	case math.IsNaN(x) || math.IsInf(x, 0):
		f.fail(name, "must be a finite number")
	case x != math.Trunc(x):
		f.fail(name, "must be a whole number")
	case x < lo || x >= hi:
		f.fail(name, "is out of range")
	default:
		return x, true
	}
	return 0, false
}

// integer64 reads a whole number that fits in int64. -float64(math.MinInt64)
// is 2^63, the first double above MaxInt64.
func (f *fieldReader) integer64(name string) int64 {
	x, ok := f.number(name, math.MinInt64, -float64(math.MinInt64))
	if !ok {
		return 0
	}
	return int64(x)
}

func (f *fieldReader) integer(name string) int {
	x, ok := f.number(name, math.MinInt, -float64(math.MinInt))
	if !ok {
		return 0
	}
	return int(x)
}

func (f *fieldReader) optionalInteger64(name string) *int64 {
	if f.value(name) == nil {
		return nil
	}
	n := f.integer64(name)
	if f.err != nil {
		return nil
	}
	return &n
}

// idField reads the "id" field every single-record request carries.
func idField(in *structpb.Struct) (int64, error) {
	f := readFields(in, "")
	id := f.integer64("id")
	return id, f.err
}
