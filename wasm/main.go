//go:build js && wasm

// Command wasm exposes the editor adapter as a WebAssembly global function,
// the Go counterpart to wasm-ue3-config-parser/src/lib.rs's wasm-bindgen
// exports. Build with GOOS=js GOARCH=wasm.
package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/robojumper/ue3-config-parser/internal/annotate"
)

// check(text string) -> { annots: Annotation[] } as a JSON string, mirroring
// the shape of the original's serde-serialized Annotations struct.
func check(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf("")
	}
	text := args[0].String()

	annots := annotate.Check(text, nil)
	if annots == nil {
		annots = []annotate.Annotation{}
	}

	out := struct {
		Annots []annotate.Annotation `json:"annots"`
	}{Annots: annots}

	data, err := json.Marshal(out)
	if err != nil {
		return js.ValueOf("")
	}
	return js.ValueOf(string(data))
}

func main() {
	done := make(chan struct{})
	js.Global().Set("ue3ConfigCheck", js.FuncOf(check))
	<-done
}
