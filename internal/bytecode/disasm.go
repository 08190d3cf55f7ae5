package bytecode

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/go-jscore/internal/value"
)

// Disassembler renders a ByteCodeBlock as human-readable text, for
// debugging and golden-file tests, walking the variable-length opcode
// stream instruction by instruction.
type Disassembler struct {
	writer io.Writer
	block  *ByteCodeBlock
}

// NewDisassembler creates a disassembler for block, writing to w.
func NewDisassembler(block *ByteCodeBlock, w io.Writer) *Disassembler {
	return &Disassembler{writer: w, block: block}
}

// Disassemble prints the whole block: name, pool summaries, and every
// instruction in order.
func (d *Disassembler) Disassemble() {
	b := d.block
	fmt.Fprintf(d.writer, "== %s ==\n", b.Name)
	fmt.Fprintf(d.writer, "Code bytes: %d, Literals: %d, Numerals: %d, Caches: %d\n\n",
		len(b.Code), len(b.Literals), len(b.Numerals), len(b.caches))

	if len(b.Literals) > 0 {
		fmt.Fprintf(d.writer, "Literals:\n")
		for i, lit := range b.Literals {
			fmt.Fprintf(d.writer, "  [%04d] %s\n", i, formatValue(lit))
		}
		fmt.Fprintf(d.writer, "\n")
	}

	if len(b.Numerals) > 0 {
		fmt.Fprintf(d.writer, "Numerals:\n")
		for i, n := range b.Numerals {
			fmt.Fprintf(d.writer, "  [%04d] %d\n", i, n)
		}
		fmt.Fprintf(d.writer, "\n")
	}

	fmt.Fprintf(d.writer, "Bytecode:\n")
	offset := 0
	for offset < len(b.Code) {
		offset = d.DisassembleInstruction(offset)
	}
}

// DisassembleInstruction prints the single instruction starting at
// offset and returns the offset of the next one.
func (d *Disassembler) DisassembleInstruction(offset int) int {
	b := d.block
	if offset < 0 || offset >= len(b.Code) {
		fmt.Fprintf(d.writer, "Invalid offset: %d\n", offset)
		return offset + 1
	}

	op := OpCode(b.Code[offset])
	fmt.Fprintf(d.writer, "%04d ", offset)

	width := int(operandWidth[op])
	switch {
	case op == OpExecutionPause:
		reason := ExecutionPauseReason(b.Code[offset+1])
		payloadLen := int(binary.BigEndian.Uint16(b.Code[offset+2:]))
		fmt.Fprintf(d.writer, "%-18s reason=%d payload=%d bytes\n", op, reason, payloadLen)
		return offset + 4 + payloadLen
	case width == 0:
		fmt.Fprintf(d.writer, "%s\n", op)
		return offset + 1
	case width == 2:
		operand := binary.BigEndian.Uint16(b.Code[offset+1:])
		d.printOperand(op, operand)
		return offset + 3
	case width == 4 && isJump(op):
		target := binary.BigEndian.Uint32(b.Code[offset+1:])
		fmt.Fprintf(d.writer, "%-18s -> %04d\n", op, target)
		return offset + 5
	case width == 4:
		a := binary.BigEndian.Uint16(b.Code[offset+1:])
		c := binary.BigEndian.Uint16(b.Code[offset+3:])
		fmt.Fprintf(d.writer, "%-18s %d, %d\n", op, a, c)
		return offset + 5
	default:
		fmt.Fprintf(d.writer, "%-18s <unknown operand width>\n", op)
		return offset + 1 + width
	}
}

func isJump(op OpCode) bool {
	switch op {
	case OpJump, OpJumpIfTruthy, OpJumpIfFalsy, OpJumpIfNullish:
		return true
	default:
		return false
	}
}

func (d *Disassembler) printOperand(op OpCode, operand uint16) {
	switch op {
	case OpLoadLiteral, OpGetGlobal, OpSetGlobal:
		if int(operand) < len(d.block.Literals) {
			fmt.Fprintf(d.writer, "%-18s %d (%s)\n", op, operand, formatValue(d.block.Literals[operand]))
			return
		}
	case OpGetInlineCache, OpSetInlineCache:
		if int(operand) < len(d.block.caches) {
			fmt.Fprintf(d.writer, "%-18s %d (%s)\n", op, operand, d.block.caches[operand].PropertyName)
			return
		}
	}
	fmt.Fprintf(d.writer, "%-18s %d\n", op, operand)
}

// formatValue renders a tagged value's category for disassembly. It
// never dereferences heap payloads (strings, objects) since their
// layout belongs to the out-of-scope object model; it reports only
// what the tag itself reveals.
func formatValue(v value.Value) string {
	switch {
	case v.IsUndefined():
		return "undefined"
	case v.IsNull():
		return "null"
	case v.IsBoolean():
		return fmt.Sprintf("%t", v.AsBool())
	case v.IsInt32():
		return fmt.Sprintf("%d", v.AsInt32())
	case v.IsDouble():
		return fmt.Sprintf("%g", v.AsDouble())
	case v.IsPointer():
		return "<heap>"
	default:
		return "<value>"
	}
}

// String renders the full disassembly as a string.
func (b *ByteCodeBlock) String() string {
	var sb strings.Builder
	NewDisassembler(b, &sb).Disassemble()
	return sb.String()
}
