package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/wasm-values/component"
	"github.com/wippyai/wasm-values/value"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectModel struct {
	input  textinput.Model
	result string
	isErr  bool
}

func newInspectModel() inspectModel {
	ti := textinput.New()
	ti.Placeholder = `i32 0xFFFFFFFF, f64 1.5, default funcref, kinds, ifkinds`
	ti.Focus()
	ti.CharLimit = 128
	ti.Width = 60
	return inspectModel{input: ti}
}

func (m inspectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			if line == "quit" || line == "exit" {
				return m, tea.Quit
			}
			out, err := dispatch(line)
			if err != nil {
				m.result = err.Error()
				m.isErr = true
			} else {
				m.result = out
				m.isErr = false
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inspectModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("wasm-values inspector"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if m.result != "" {
		if m.isErr {
			b.WriteString(errorStyle.Render(m.result))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
	}
	b.WriteString(helpStyle.Render("enter a command, esc to quit"))
	b.WriteString("\n")
	return b.String()
}

func dispatch(line string) (string, error) {
	switch line {
	case "kinds":
		return renderKinds(), nil
	case "ifkinds":
		return renderInterfaceKinds(), nil
	}
	return evalLine(strings.Fields(line))
}

func evalLine(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("empty command")
	}
	if args[0] == "default" {
		if len(args) != 2 {
			return "", fmt.Errorf("usage: default <kind>")
		}
		return renderDefault(args[1])
	}
	if len(args) != 2 {
		return "", fmt.Errorf("usage: <kind> <literal>")
	}
	return renderLiteral(args[0], args[1])
}

func renderKinds() string {
	var b strings.Builder
	b.WriteString("core value types\n")
	for _, vt := range catalogKinds() {
		size := "-"
		if s := vt.Size(); s > 0 {
			size = fmt.Sprintf("%d bytes", s)
		}
		fmt.Fprintf(&b, "  %-10s %-10s %s\n", kindStyle.Render(vt.String()), categoryName(vt), size)
	}
	return b.String()
}

func renderInterfaceKinds() string {
	var b strings.Builder
	b.WriteString("interface kinds\n")
	for _, k := range interfaceKinds() {
		class := "composite"
		if k.IsScalar() {
			class = "scalar"
		} else if k == component.KindUnknown {
			class = "placeholder"
		}
		fmt.Fprintf(&b, "  %-10s %s\n", kindStyle.Render(k.String()), class)
	}
	return b.String()
}

func renderDefault(kind string) (string, error) {
	for _, vt := range catalogKinds() {
		if vt.String() == kind {
			v := value.DefaultValue(vt)
			lo, hi := v.Raw()
			return fmt.Sprintf("%s\n  bits: %#016x %016x  null: %v", v, lo, hi, v.IsNullRef()), nil
		}
	}
	for _, k := range interfaceKinds() {
		if k.String() == kind {
			v := component.DefaultValue(k)
			return v.Format(), nil
		}
	}
	return "", fmt.Errorf("unknown kind %q", kind)
}

func renderLiteral(kind, lit string) (string, error) {
	switch kind {
	case "i32", "u32":
		u, err := strconv.ParseUint(strings.TrimPrefix(lit, "0x"), base(lit), 64)
		if err != nil {
			i, err2 := strconv.ParseInt(lit, 0, 32)
			if err2 != nil {
				return "", err
			}
			u = uint64(uint32(i))
		}
		v := value.NewU32(uint32(u))
		s, _ := v.I32()
		un, _ := v.U32()
		return fmt.Sprintf("kind: %s\n  signed:   %d\n  unsigned: %d\n  bits:     %#08x",
			v.Kind(), s, un, un), nil
	case "i64", "u64":
		u, err := strconv.ParseUint(strings.TrimPrefix(lit, "0x"), base(lit), 64)
		if err != nil {
			i, err2 := strconv.ParseInt(lit, 0, 64)
			if err2 != nil {
				return "", err
			}
			u = uint64(i)
		}
		v := value.NewU64(u)
		s, _ := v.I64()
		un, _ := v.U64()
		return fmt.Sprintf("kind: %s\n  signed:   %d\n  unsigned: %d\n  bits:     %#016x",
			v.Kind(), s, un, un), nil
	case "f32":
		f, err := strconv.ParseFloat(lit, 32)
		if err != nil {
			return "", err
		}
		v := value.NewF32(float32(f))
		got, _ := v.F32()
		lo, _ := v.Raw()
		return fmt.Sprintf("kind: %s\n  value: %g\n  bits:  %#08x", v.Kind(), got, uint32(lo)), nil
	case "f64":
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return "", err
		}
		v := value.NewF64(f)
		got, _ := v.F64()
		lo, _ := v.Raw()
		return fmt.Sprintf("kind: %s\n  value: %g\n  bits:  %#016x", v.Kind(), got, lo), nil
	default:
		return "", fmt.Errorf("unknown kind %q (try i32, i64, f32, f64)", kind)
	}
}

func base(lit string) int {
	if strings.HasPrefix(lit, "0x") {
		return 16
	}
	return 10
}
