package graph

import "github.com/nikandfor/hacked/hfmt"

// PrintExpr renders n as an infix arithmetic expression where that reads
// naturally (Plus/Minus/Times/Divide/PlusImm/TimesImm, Load/LoadImm as
// bracket indexing) and as a named-op call form otherwise.
func PrintExpr(n *Node) string {
	return string(appendExpr(nil, n))
}

func appendExpr(b []byte, n *Node) []byte {
	switch n.Op {
	case Const:
		if n.Type == Float {
			return hfmt.Appendf(b, "%g", n.FVal)
		}
		return hfmt.Appendf(b, "%d", n.IVal)

	case VarX:
		return append(b, 'x')
	case VarY:
		return append(b, 'y')
	case VarT:
		return append(b, 't')
	case VarC:
		return append(b, 'c')

	case UnboundVar:
		return hfmt.Appendf(b, "<%p>", n)

	case Plus:
		b = append(b, '(')
		b = appendExpr(b, n.Inputs[0])
		b = append(b, '+')
		b = appendExpr(b, n.Inputs[1])
		return append(b, ')')

	case Minus:
		b = append(b, '(')
		b = appendExpr(b, n.Inputs[0])
		b = append(b, '-')
		b = appendExpr(b, n.Inputs[1])
		return append(b, ')')

	case Times:
		b = append(b, '(')
		b = appendExpr(b, n.Inputs[0])
		b = append(b, '*')
		b = appendExpr(b, n.Inputs[1])
		return append(b, ')')

	case Divide:
		b = append(b, '(')
		b = appendExpr(b, n.Inputs[0])
		b = append(b, '/')
		b = appendExpr(b, n.Inputs[1])
		return append(b, ')')

	case PlusImm:
		b = append(b, '(')
		b = appendExpr(b, n.Inputs[0])
		return hfmt.Appendf(b, "+%d)", n.IVal)

	case TimesImm:
		b = append(b, '(')
		b = appendExpr(b, n.Inputs[0])
		return hfmt.Appendf(b, "*%d)", n.IVal)

	case LoadImm:
		b = append(b, '[')
		b = appendExpr(b, n.Inputs[0])
		return hfmt.Appendf(b, "+%d]", n.IVal)

	case Load:
		b = append(b, '[')
		b = appendExpr(b, n.Inputs[0])
		return append(b, ']')

	default:
		if len(n.Inputs) == 0 {
			return append(b, n.Op.String()...)
		}
		b = append(b, n.Op.String()...)
		b = append(b, '(')
		b = appendExpr(b, n.Inputs[0])
		for i := 1; i < len(n.Inputs); i++ {
			b = append(b, ", "...)
			b = appendExpr(b, n.Inputs[i])
		}
		return append(b, ')')
	}
}

// Print renders n as a single three-address-code-style instruction: a
// destination register (or, per the register-display convention, the
// immediate itself when reg < 0) assigned the result of applying n's op to
// its inputs' own register/immediate forms.
func Print(n *Node) string {
	var b []byte

	b = append(b, regStr(n)...)
	if n.Op == Const && n.Reg < 0 {
		return string(b)
	}
	b = append(b, " = "...)

	args := make([]string, len(n.Inputs))
	for i, in := range n.Inputs {
		args[i] = regStr(in)
	}

	switch n.Op {
	case Const:
		if n.Type == Float {
			b = hfmt.Appendf(b, "%g", n.FVal)
		} else {
			b = hfmt.Appendf(b, "%d", n.IVal)
		}
	case Plus:
		b = hfmt.Appendf(b, "%s + %s", args[0], args[1])
	case Minus:
		b = hfmt.Appendf(b, "%s - %s", args[0], args[1])
	case Times:
		b = hfmt.Appendf(b, "%s * %s", args[0], args[1])
	case Divide:
		b = hfmt.Appendf(b, "%s / %s", args[0], args[1])
	case PlusImm:
		b = hfmt.Appendf(b, "%s + %d", args[0], n.IVal)
	case TimesImm:
		b = hfmt.Appendf(b, "%s * %d", args[0], n.IVal)
	case LoadImm:
		b = hfmt.Appendf(b, "Load %s + %d", args[0], n.IVal)
	case Load:
		b = hfmt.Appendf(b, "Load %s", args[0])
	default:
		b = append(b, n.Op.String()...)
		for _, a := range args {
			b = append(b, ' ')
			b = append(b, a...)
		}
	}

	return string(b)
}

// regStr renders a single register/immediate slot per the display
// convention: reg < 0 prints the node's immediate, 0 <= reg < 16 prints
// r{reg}, reg >= 16 prints xmm{reg-16}.
func regStr(n *Node) string {
	switch {
	case n.Reg < 0:
		if n.Type == Float {
			return string(hfmt.Appendf(nil, "%g", n.FVal))
		}
		return string(hfmt.Appendf(nil, "%d", n.IVal))
	case n.Reg < 16:
		return string(hfmt.Appendf(nil, "r%d", n.Reg))
	default:
		return string(hfmt.Appendf(nil, "xmm%d", n.Reg-16))
	}
}
