package bytecode

import (
	"encoding/binary"
	"strconv"
	"sync"

	"github.com/cwbudde/go-jscore/internal/perrors"
	"github.com/cwbudde/go-jscore/internal/token"
	"github.com/cwbudde/go-jscore/internal/value"
)

// jumpFixup records one not-yet-resolved forward jump: the byte offset
// of its uint32 target operand within Code. Live only during emission;
// an explicit pending-list instead of a placeholder sentinel value.
type jumpFixup struct {
	operandOffset int
}

// posMark is one entry of the run-length-encoded emission-time position
// track: a full token.Position per entry so SourceInfo can recover
// column and byte-offset too, not just a line number.
type posMark struct {
	codeOffset int
	pos        token.Position
}

// PositionMark pairs a code byte offset with the source position of the
// instruction starting there. It is the row shape a Reparse hook must
// return: opcodes are variable-width, so positions alone cannot be
// re-associated with code offsets after the emission-time track is
// released.
type PositionMark struct {
	CodeOffset int
	Pos        token.Position
}

// ByteCodeBlock is the container a bytecode emitter writes into and an
// embedder's interpreter reads from. It owns a packed opcode byte
// stream, a literal pool, a numeral pool, an inline-cache arena, and a
// lazily-built source-location table. It never executes anything.
//
// Opcodes are variable-length, so Code is a raw []byte stream rather
// than a slice of fixed-width instruction records.
type ByteCodeBlock struct {
	Name string

	Code     []byte
	Literals []value.Value
	Numerals []int32
	caches   []*InlineCache

	// Owner is the source code block this bytecode belongs to — a
	// name, an *ast.Function, or any embedder-supplied identifier.
	Owner interface{}

	fixups    []jumpFixup
	positions []posMark

	sourceInfo *SourceInfo
	// Reparse is consulted by SourceInfoAt only after positions has been
	// released (ReleasePositions) and no cached SourceInfo remains; it
	// calls back into a re-parse of the block's source, which the
	// embedder locates itself (the block records no source offset).
	// Supplied by the embedder, never by this package. Each returned
	// mark carries the code offset its position belongs to.
	Reparse func() ([]PositionMark, error)

	finalized bool
}

// NewByteCodeBlock creates an empty block ready for emission.
func NewByteCodeBlock(name string) *ByteCodeBlock {
	return &ByteCodeBlock{Name: name}
}

// Mark records the source position of the instruction about to be
// emitted, run-length-encoded: a new entry is only appended when the
// position actually changes.
func (b *ByteCodeBlock) Mark(pos token.Position) {
	if len(b.positions) == 0 || b.positions[len(b.positions)-1].pos != pos {
		b.positions = append(b.positions, posMark{codeOffset: len(b.Code), pos: pos})
	}
}

// Emit0 appends a no-operand instruction and returns its offset.
func (b *ByteCodeBlock) Emit0(op OpCode) int {
	offset := len(b.Code)
	b.Code = append(b.Code, byte(op))
	return offset
}

// Emit1 appends a single-uint16-operand instruction.
func (b *ByteCodeBlock) Emit1(op OpCode, operand uint16) int {
	offset := len(b.Code)
	b.Code = append(b.Code, byte(op), 0, 0)
	binary.BigEndian.PutUint16(b.Code[offset+1:], operand)
	return offset
}

// Emit2 appends a two-uint16-operand instruction (OpMove's dst/src).
func (b *ByteCodeBlock) Emit2(op OpCode, a, c uint16) int {
	offset := len(b.Code)
	b.Code = append(b.Code, byte(op), 0, 0, 0, 0)
	binary.BigEndian.PutUint16(b.Code[offset+1:], a)
	binary.BigEndian.PutUint16(b.Code[offset+3:], c)
	return offset
}

// EmitJump appends a jump-family instruction with a zero placeholder
// target and registers it for later resolution via PatchJump. Returns
// the offset of the instruction (pass to PatchJump).
func (b *ByteCodeBlock) EmitJump(op OpCode) int {
	offset := len(b.Code)
	b.Code = append(b.Code, byte(op), 0, 0, 0, 0)
	b.fixups = append(b.fixups, jumpFixup{operandOffset: offset + 1})
	return offset
}

// EmitLoop appends a jump-family instruction whose target (loopStart)
// is already known, used for backward jumps that close a loop body —
// these need no fixup since the target precedes the jump.
func (b *ByteCodeBlock) EmitLoop(op OpCode, loopStart int) int {
	offset := len(b.Code)
	b.Code = append(b.Code, byte(op), 0, 0, 0, 0)
	binary.BigEndian.PutUint32(b.Code[offset+1:], uint32(loopStart))
	return offset
}

// PatchJump resolves a pending forward jump created by EmitJump,
// setting its target to the current end of Code (PatchJumpTo takes an
// explicit target instead). Jump operands store absolute byte offsets
// into Code, not relative displacements.
func (b *ByteCodeBlock) PatchJump(jumpOffset int) error {
	return b.PatchJumpTo(jumpOffset, len(b.Code))
}

// PatchJumpTo resolves a pending forward jump to an explicit target
// offset.
func (b *ByteCodeBlock) PatchJumpTo(jumpOffset, target int) error {
	operandOffset := jumpOffset + 1
	idx := -1
	for i, f := range b.fixups {
		if f.operandOffset == operandOffset {
			idx = i
			break
		}
	}
	if idx == -1 {
		return perrors.New(perrors.RangeError, token.Position{}, "no pending jump fixup at offset %s", strconv.Itoa(jumpOffset))
	}
	binary.BigEndian.PutUint32(b.Code[operandOffset:], uint32(target))
	b.fixups = append(b.fixups[:idx], b.fixups[idx+1:]...)
	return nil
}

// EmitExecutionPause appends the one variable-length opcode: a reason
// byte, a uint16 payload length, and the payload itself, with the
// length embedded in a per-reason sub-record.
func (b *ByteCodeBlock) EmitExecutionPause(reason ExecutionPauseReason, payload []byte) int {
	offset := len(b.Code)
	b.Code = append(b.Code, byte(OpExecutionPause), byte(reason), 0, 0)
	binary.BigEndian.PutUint16(b.Code[offset+2:], uint16(len(payload)))
	b.Code = append(b.Code, payload...)
	return offset
}

// AddLiteral interns v into the literal pool, deduplicating strictly
// comparable values, and returns its uint16 index.
func (b *ByteCodeBlock) AddLiteral(v value.Value) uint16 {
	for i, existing := range b.Literals {
		if value.StrictEquals(existing, v) {
			return uint16(i)
		}
	}
	b.Literals = append(b.Literals, v)
	return uint16(len(b.Literals) - 1)
}

// AddNumeral interns a small immediate into the numeral pool used by
// the interpreter's register file, distinct from the literal pool.
func (b *ByteCodeBlock) AddNumeral(n int32) uint16 {
	for i, existing := range b.Numerals {
		if existing == n {
			return uint16(i)
		}
	}
	b.Numerals = append(b.Numerals, n)
	return uint16(len(b.Numerals) - 1)
}

// NewInlineCache allocates a fresh inline cache for a property-access
// site named name, appends it to the block's arena, and returns the
// uint16 index an OpGetInlineCache/OpSetInlineCache instruction
// references.
func (b *ByteCodeBlock) NewInlineCache(name string) uint16 {
	b.caches = append(b.caches, newInlineCache(name))
	return uint16(len(b.caches) - 1)
}

// InlineCacheAt returns the inline cache at index i.
func (b *ByteCodeBlock) InlineCacheAt(i uint16) *InlineCache {
	return b.caches[i]
}

// CacheCount returns the number of inline caches in the block's arena.
func (b *ByteCodeBlock) CacheCount() int { return len(b.caches) }

// Finalize checks that every forward jump has been patched, erroring if
// any fixup is still pending, then registers the block in the live-block
// registry so diagnostic tooling can iterate only live blocks.
func (b *ByteCodeBlock) Finalize() error {
	if len(b.fixups) > 0 {
		return perrors.New(perrors.RangeError, token.Position{}, "%s unresolved forward jump(s) at finalization", strconv.Itoa(len(b.fixups)))
	}
	b.finalized = true
	registerBlock(b)
	return nil
}

// Release removes the block from the live-block registry. It is the
// hook an embedder's garbage collector calls once it has proven the
// block unreachable; this package never calls it itself.
func (b *ByteCodeBlock) Release() {
	unregisterBlock(b)
}

// ReleasePositions discards the emission-time position track, freeing
// the memory it holds at the cost of falling back to Reparse on the
// next SourceInfoAt call that misses the cache.
func (b *ByteCodeBlock) ReleasePositions() {
	b.positions = nil
}

// InstructionCount returns the number of bytes of packed opcode stream.
func (b *ByteCodeBlock) InstructionCount() int { return len(b.Code) }

// LiteralCount returns the number of literal-pool entries.
func (b *ByteCodeBlock) LiteralCount() int { return len(b.Literals) }

var (
	liveBlocksMu sync.Mutex
	liveBlocks   = map[*ByteCodeBlock]struct{}{}
)

func registerBlock(b *ByteCodeBlock) {
	liveBlocksMu.Lock()
	defer liveBlocksMu.Unlock()
	liveBlocks[b] = struct{}{}
}

func unregisterBlock(b *ByteCodeBlock) {
	liveBlocksMu.Lock()
	defer liveBlocksMu.Unlock()
	delete(liveBlocks, b)
}

// LiveBlocks returns every currently registered (finalized, not yet
// released) block, for diagnostic tooling.
func LiveBlocks() []*ByteCodeBlock {
	liveBlocksMu.Lock()
	defer liveBlocksMu.Unlock()
	out := make([]*ByteCodeBlock, 0, len(liveBlocks))
	for b := range liveBlocks {
		out = append(out, b)
	}
	return out
}
