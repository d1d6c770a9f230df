// ==============================================================================================
// FILE: wasm/wasm_main.go
// BUILD: GOOS=js GOARCH=wasm go build -o main.wasm wasm/wasm_main.go
// ==============================================================================================
package main

import (
	"fmt"
	"syscall/js"

	"github.com/glade-lang/glade/interp"
)

func main() {
	c := make(chan struct{}, 0)

	js.Global().Set("runGlade", js.FuncOf(runCode))

	fmt.Println("Glade WASM Engine Loaded.")
	<-c
}

// runCode is the bridge between JS and Go: each call gets a fresh
// Interpreter, so separate runGlade() invocations never see each other's
// globals.
func runCode(this js.Value, p []js.Value) interface{} {
	code := p[0].String()

	it := interp.New()
	result, err := it.Run(code)
	if err != nil {
		return map[string]interface{}{
			"error": []interface{}{err.Error()},
		}
	}

	finalResult := ""
	if !result.IsNone() {
		finalResult = result.String()
	}

	return map[string]interface{}{
		"result": finalResult,
	}
}
