// Command inspect is an interactive explorer for the value model: enter a
// typed literal and see its kind, classification, and bit-level views.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/wippyai/wasm-values/component"
	"github.com/wippyai/wasm-values/types"
	"github.com/wippyai/wasm-values/value"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "kinds":
			fmt.Print(renderKinds())
			return
		case "ifkinds":
			fmt.Print(renderInterfaceKinds())
			return
		case "-h", "--help":
			usage()
			return
		}
		out, err := evalLine(os.Args[1:])
		if err != nil {
			fmt.Fprintln(os.Stderr, "inspect:", err)
			os.Exit(1)
		}
		fmt.Print(out)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		// Piped output: dump the catalog instead of starting the TUI.
		fmt.Print(renderKinds())
		fmt.Print(renderInterfaceKinds())
		return
	}

	p := tea.NewProgram(newInspectModel())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "inspect:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println(`usage: inspect [command]

With no arguments, starts the interactive inspector.

Commands:
  kinds               print the core value-type catalog
  ifkinds             print the interface-kind catalog
  <kind> <literal>    classify one literal, e.g. "i32 0xFFFFFFFF"
  default <kind>      show the default value for a kind`)
}

func catalogKinds() []types.ValType {
	return []types.ValType{
		types.ValI32, types.ValI64, types.ValF32, types.ValF64,
		types.ValV128, types.ValFuncRef, types.ValExtern,
	}
}

func interfaceKinds() []component.Kind {
	kinds := make([]component.Kind, 0, int(component.KindUnknown)+1)
	for k := component.KindBool; k <= component.KindUnknown; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func categoryName(vt types.ValType) string {
	switch vt {
	case types.ValI32, types.ValI64, types.ValV128:
		return "integer"
	case types.ValF32, types.ValF64:
		return value.CatFloat.String()
	case types.ValFuncRef, types.ValExtern:
		return value.CatReference.String()
	default:
		return "none"
	}
}
