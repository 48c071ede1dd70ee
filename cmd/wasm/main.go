//go:build js && wasm

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/smallyu/go-pmecc/pkg/bn"
	"github.com/smallyu/go-pmecc/pkg/ecc"
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go PMECC WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoPMECC", map[string]interface{}{
		"Curves":   js.FuncOf(Curves),
		"Multiply": js.FuncOf(Multiply),
		"IsValid":  js.FuncOf(IsValid),
	})

	<-c
}

// Curves returns a JSON array describing the registered curves.
func Curves(this js.Value, args []js.Value) interface{} {
	type curveInfo struct {
		Name  string `json:"name"`
		Field string `json:"field"`
		Bits  int    `json:"bits"`
		Order string `json:"order"`
	}
	var out []curveInfo
	for _, c := range ecc.Curves() {
		out = append(out, curveInfo{
			Name:  c.Name(),
			Field: c.Field().Name(),
			Bits:  c.BitSize(),
			Order: c.Order().String(),
		})
	}
	respBytes, _ := json.Marshal(out)
	return string(respBytes)
}

// Multiply computes k*P.
// Arguments:
// 0: curve name
// 1: hex scalar
// 2: SEC1 hex point (optional, default generator)
// Returns:
// Uncompressed SEC1 hex of the product or an error string
func Multiply(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 && len(args) != 3 {
		return "error: expected 2 or 3 arguments (curve, scalar, [point])"
	}

	c, err := ecc.CurveByName(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	k, err := bn.FromHex(args[1].String())
	if err != nil {
		return fmt.Sprintf("error: invalid scalar: %v", err)
	}

	p := c.G()
	if len(args) == 3 {
		if p, err = decodePoint(c, args[2].String()); err != nil {
			return fmt.Sprintf("error: %v", err)
		}
	}
	return hex.EncodeToString(p.Multiply(k).Marshal())
}

// IsValid reports whether a SEC1 hex point decodes to a point on the curve.
// Arguments:
// 0: curve name
// 1: SEC1 hex point
func IsValid(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (curve, point)"
	}
	c, err := ecc.CurveByName(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	_, err = decodePoint(c, args[1].String())
	return err == nil
}

func decodePoint(c *ecc.Curve, s string) (*ecc.Point, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %v", err)
	}
	return ecc.Unmarshal(c, b)
}
