package yajbe

import (
	"bytes"
	"fmt"
)

// print renders v in the Kind(value) form used by Map/OrderedMap's
// String methods below.
func print(v Value) string {
	switch vt := v.(type) {
	case Map:
		return vt.String()
	case OrderedMap:
		return vt.String()
	case Null, nil:
		return "Null()"
	case Bool:
		return fmt.Sprintf("Bool(%v)", bool(vt))
	case Int:
		return fmt.Sprintf("Int(%v)", int64(vt))
	case Float32:
		return fmt.Sprintf("Float32(%v)", float32(vt))
	case Float64:
		return fmt.Sprintf("Float64(%v)", float64(vt))
	case BigInt:
		return fmt.Sprintf("BigInt(%v)", vt.V)
	case BigDecimal:
		return fmt.Sprintf("BigDecimal(%v * 10^-%d)", vt.V, vt.Scale)
	case String:
		return fmt.Sprintf("String(%v)", string(vt))
	case Bytes:
		return fmt.Sprintf("Bytes(% x)", []byte(vt))
	case Array:
		wr := bytes.NewBuffer(nil)
		fmt.Fprint(wr, "Array([")
		for i, child := range vt {
			fmt.Fprint(wr, print(child))
			if i != len(vt)-1 {
				fmt.Fprint(wr, " ")
			}
		}
		fmt.Fprint(wr, "])")
		return wr.String()
	}
	return fmt.Sprint(v)
}

// String pretty-prints m for debugging. Key order follows Go's map
// iteration, which is randomized; use OrderedMap for a stable rendering.
func (m Map) String() string {
	wr := bytes.NewBuffer(nil)
	fmt.Fprint(wr, "Map[")
	i := 0
	for k, v := range m {
		if i > 0 {
			fmt.Fprint(wr, " ")
		}
		fmt.Fprintf(wr, "%v: %v", k, print(v))
		i++
	}
	fmt.Fprint(wr, "]")
	return wr.String()
}

// String pretty-prints m for debugging, in its stored key order.
func (m OrderedMap) String() string {
	wr := bytes.NewBuffer(nil)
	fmt.Fprint(wr, "OrderedMap[")
	for i, p := range m {
		fmt.Fprintf(wr, "%v: %v", p.Key, print(p.Val))
		if i != len(m)-1 {
			fmt.Fprint(wr, " ")
		}
	}
	fmt.Fprint(wr, "]")
	return wr.String()
}
