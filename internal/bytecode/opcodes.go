// Package bytecode implements the ByteCodeBlock container: a
// variable-length packed opcode stream, literal and numeral pools, a
// jump-fixup list live only during emission, inline caches, and a
// lazily-built source-location table. It deliberately does not execute
// anything — no VM, no GC — that is the embedder's concern.
package bytecode

// OpCode is the closed set of opcodes a ByteCodeBlock's emitter may
// produce. The interpreter that eventually executes them is out of
// scope for this container.
type OpCode uint8

const (
	// ========================================
	// Literals and undefined
	// ========================================

	// OpLoadLiteral pushes Literals[operand] onto the stack.
	// Operand: uint16 literal-pool index. Stack: [] -> [value]
	OpLoadLiteral OpCode = iota

	// OpLoadUndefined pushes the undefined value.
	// No operand. Stack: [] -> [undefined]
	OpLoadUndefined

	// ========================================
	// Registers
	// ========================================

	// OpMove copies one register into another.
	// Operands: dst uint16, src uint16. Stack: unaffected.
	OpMove

	// ========================================
	// Binary operators (one opcode per operator)
	// ========================================

	// OpAdd pops two values and pushes their sum (or string concatenation).
	// No operand. Stack: [a, b] -> [a + b]
	OpAdd
	// OpSub pops two values and pushes their difference.
	// Stack: [a, b] -> [a - b]
	OpSub
	// OpMul pops two values and pushes their product.
	// Stack: [a, b] -> [a * b]
	OpMul
	// OpDiv pops two values and pushes their quotient.
	// Stack: [a, b] -> [a / b]
	OpDiv
	// OpMod pops two values and pushes the remainder.
	// Stack: [a, b] -> [a % b]
	OpMod
	// OpPow pops two values and pushes a raised to b.
	// Stack: [a, b] -> [a ** b]
	OpPow
	// OpShl pops two values and pushes a left-shifted by b.
	// Stack: [a, b] -> [a << b]
	OpShl
	// OpShr pops two values and pushes a arithmetic-right-shifted by b.
	// Stack: [a, b] -> [a >> b]
	OpShr
	// OpUShr pops two values and pushes a logical-right-shifted by b.
	// Stack: [a, b] -> [a >>> b]
	OpUShr
	// OpBitAnd pops two values and pushes their bitwise AND.
	// Stack: [a, b] -> [a & b]
	OpBitAnd
	// OpBitOr pops two values and pushes their bitwise OR.
	// Stack: [a, b] -> [a | b]
	OpBitOr
	// OpBitXor pops two values and pushes their bitwise XOR.
	// Stack: [a, b] -> [a ^ b]
	OpBitXor
	// OpLt pushes a < b.
	// Stack: [a, b] -> [a < b]
	OpLt
	// OpLe pushes a <= b.
	// Stack: [a, b] -> [a <= b]
	OpLe
	// OpGt pushes a > b.
	// Stack: [a, b] -> [a > b]
	OpGt
	// OpGe pushes a >= b.
	// Stack: [a, b] -> [a >= b]
	OpGe
	// OpEq pushes a == b (abstract equality).
	// Stack: [a, b] -> [a == b]
	OpEq
	// OpNotEq pushes a != b.
	// Stack: [a, b] -> [a != b]
	OpNotEq
	// OpStrictEq pushes a === b (strict equality).
	// Stack: [a, b] -> [a === b]
	OpStrictEq
	// OpStrictNotEq pushes a !== b.
	// Stack: [a, b] -> [a !== b]
	OpStrictNotEq
	// OpIn pushes whether property a exists on object b.
	// Stack: [a, b] -> [a in b]
	OpIn
	// OpInstanceOf pushes whether a is an instance of constructor b.
	// Stack: [a, b] -> [a instanceof b]
	OpInstanceOf

	// ========================================
	// Unary operators
	// ========================================

	// OpNeg negates the top of stack.
	// Stack: [a] -> [-a]
	OpNeg
	// OpPos coerces the top of stack to a number.
	// Stack: [a] -> [+a]
	OpPos
	// OpNot pushes the logical negation of the top of stack.
	// Stack: [a] -> [!a]
	OpNot
	// OpBitNot pushes the bitwise complement of the top of stack.
	// Stack: [a] -> [~a]
	OpBitNot
	// OpTypeOf pushes the typeof string of the top of stack.
	// Stack: [a] -> [typeof a]
	OpTypeOf
	// OpVoid discards the top of stack and pushes undefined.
	// Stack: [a] -> [undefined]
	OpVoid
	// OpDelete pops a property key and an object and pushes whether the
	// delete succeeded. Stack: [obj, key] -> [bool]
	OpDelete

	// ========================================
	// Globals and properties
	// ========================================

	// OpGetGlobal pushes the value of a global binding.
	// Operand: uint16 literal index naming the binding. Stack: [] -> [value]
	OpGetGlobal
	// OpSetGlobal pops a value and stores it into a global binding.
	// Operand: uint16 literal index naming the binding. Stack: [value] -> []
	OpSetGlobal
	// OpGetInlineCache performs a memoized property read.
	// Operand: uint16 index into the block's inline-cache arena.
	// Stack: [obj] -> [value]
	OpGetInlineCache
	// OpSetInlineCache performs a memoized property write.
	// Operand: uint16 index into the block's inline-cache arena.
	// Stack: [obj, value] -> []
	OpSetInlineCache
	// OpGetIndex performs an indexed (computed or array) property read.
	// Stack: [obj, key] -> [value]
	OpGetIndex
	// OpSetIndex performs an indexed (computed or array) property write.
	// Stack: [obj, key, value] -> []
	OpSetIndex

	// ========================================
	// Calls and control flow
	// ========================================

	// OpCall invokes a function with operand arguments already pushed.
	// Operand: uint16 argument count. Stack: [fn, this, arg0..argN] -> [result]
	OpCall
	// OpNew invokes a constructor with operand arguments already pushed.
	// Operand: uint16 argument count. Stack: [ctor, arg0..argN] -> [instance]
	OpNew
	// OpReturn returns the top of stack from the current call.
	// No operand. Stack: [value] -> []
	OpReturn
	// OpThrow throws the top of stack as an exception.
	// No operand. Stack: [value] -> []
	OpThrow

	// OpJump transfers control unconditionally.
	// Operand: uint32 absolute byte offset within the block. Stack: unaffected.
	OpJump
	// OpJumpIfTruthy pops a value and jumps if it is truthy.
	// Operand: uint32 absolute byte offset. Stack: [cond] -> []
	OpJumpIfTruthy
	// OpJumpIfFalsy pops a value and jumps if it is falsy.
	// Operand: uint32 absolute byte offset. Stack: [cond] -> []
	OpJumpIfFalsy
	// OpJumpIfNullish pops a value and jumps if it is null or undefined
	// (used for optional chaining and `??`).
	// Operand: uint32 absolute byte offset. Stack: [cond] -> []
	OpJumpIfNullish

	// ========================================
	// Lexical blocks
	// ========================================

	// OpBlockEnter enters a lexical block, activating its scope's
	// bindings. A block is identified by a monotonically assigned
	// uint16 within its function.
	// Operand: uint16 block index. Stack: unaffected.
	OpBlockEnter
	// OpBlockExit leaves the most recently entered lexical block.
	// No operand. Stack: unaffected.
	OpBlockExit

	// ========================================
	// Suspension (generators/async)
	// ========================================

	// OpExecutionPause suspends bytecode execution at a yield, await, or
	// generator-initialize point, carrying enough tail-data to restart.
	// This is the one variable-length opcode: a reason byte followed by
	// a uint16 payload length and that many reason-specific bytes.
	// Operand: see ExecutionPauseReason. Stack: interpreter-defined.
	OpExecutionPause

	// ========================================
	// Object/function/class/array construction
	// ========================================

	// OpCreateFunction instantiates a function object from a function
	// template held in the literal pool (its own nested ByteCodeBlock).
	// Operand: uint16 literal index. Stack: [] -> [function]
	OpCreateFunction
	// OpCreateClass instantiates a class from a class template held in
	// the literal pool.
	// Operand: uint16 literal index. Stack: [superclass?] -> [class]
	OpCreateClass
	// OpCreateArray builds an array from operand elements already on the
	// stack, top-to-bottom in reverse source order.
	// Operand: uint16 element count. Stack: [e0..eN] -> [array]
	OpCreateArray
	// OpCreateObject builds an object from operand key/value pairs
	// already on the stack.
	// Operand: uint16 property count. Stack: [k0, v0, ...] -> [object]
	OpCreateObject
)

// ExecutionPauseReason discriminates the sub-record an OpExecutionPause
// instruction carries: the ExecutionPause family is variable-length,
// with its length embedded in a per-reason sub-record
// (yield/await/generator-init).
type ExecutionPauseReason uint8

const (
	PauseYield ExecutionPauseReason = iota
	PauseAwait
	PauseGeneratorInit
)

// operandWidth gives the number of operand bytes following an opcode
// byte, varying per opcode. -1 marks OpExecutionPause, the one family
// whose length is carried in its own sub-record rather than being a
// compile-time constant.
var operandWidth = [...]int8{
	OpLoadLiteral:     2,
	OpLoadUndefined:   0,
	OpMove:            4,
	OpAdd:             0,
	OpSub:             0,
	OpMul:             0,
	OpDiv:             0,
	OpMod:             0,
	OpPow:             0,
	OpShl:             0,
	OpShr:             0,
	OpUShr:            0,
	OpBitAnd:          0,
	OpBitOr:           0,
	OpBitXor:          0,
	OpLt:              0,
	OpLe:              0,
	OpGt:              0,
	OpGe:              0,
	OpEq:              0,
	OpNotEq:           0,
	OpStrictEq:        0,
	OpStrictNotEq:     0,
	OpIn:              0,
	OpInstanceOf:      0,
	OpNeg:             0,
	OpPos:             0,
	OpNot:             0,
	OpBitNot:          0,
	OpTypeOf:          0,
	OpVoid:            0,
	OpDelete:          0,
	OpGetGlobal:       2,
	OpSetGlobal:       2,
	OpGetInlineCache:  2,
	OpSetInlineCache:  2,
	OpGetIndex:        0,
	OpSetIndex:        0,
	OpCall:            2,
	OpNew:             2,
	OpReturn:          0,
	OpThrow:           0,
	OpJump:            4,
	OpJumpIfTruthy:    4,
	OpJumpIfFalsy:     4,
	OpJumpIfNullish:   4,
	OpBlockEnter:      2,
	OpBlockExit:       0,
	OpExecutionPause:  -1,
	OpCreateFunction:  2,
	OpCreateClass:     2,
	OpCreateArray:     2,
	OpCreateObject:    2,
}

// opCodeNames maps an OpCode to its disassembly mnemonic.
var opCodeNames = [...]string{
	OpLoadLiteral:    "LOAD_LITERAL",
	OpLoadUndefined:  "LOAD_UNDEFINED",
	OpMove:           "MOVE",
	OpAdd:            "ADD",
	OpSub:            "SUB",
	OpMul:            "MUL",
	OpDiv:            "DIV",
	OpMod:            "MOD",
	OpPow:            "POW",
	OpShl:            "SHL",
	OpShr:            "SHR",
	OpUShr:           "USHR",
	OpBitAnd:         "BIT_AND",
	OpBitOr:          "BIT_OR",
	OpBitXor:         "BIT_XOR",
	OpLt:             "LT",
	OpLe:             "LE",
	OpGt:             "GT",
	OpGe:             "GE",
	OpEq:             "EQ",
	OpNotEq:          "NEQ",
	OpStrictEq:       "SEQ",
	OpStrictNotEq:    "SNEQ",
	OpIn:             "IN",
	OpInstanceOf:     "INSTANCEOF",
	OpNeg:            "NEG",
	OpPos:            "POS",
	OpNot:            "NOT",
	OpBitNot:         "BIT_NOT",
	OpTypeOf:         "TYPEOF",
	OpVoid:           "VOID",
	OpDelete:         "DELETE",
	OpGetGlobal:      "GET_GLOBAL",
	OpSetGlobal:      "SET_GLOBAL",
	OpGetInlineCache: "GET_IC",
	OpSetInlineCache: "SET_IC",
	OpGetIndex:       "GET_INDEX",
	OpSetIndex:       "SET_INDEX",
	OpCall:           "CALL",
	OpNew:            "NEW",
	OpReturn:         "RETURN",
	OpThrow:          "THROW",
	OpJump:           "JUMP",
	OpJumpIfTruthy:   "JUMP_IF_TRUTHY",
	OpJumpIfFalsy:    "JUMP_IF_FALSY",
	OpJumpIfNullish:  "JUMP_IF_NULLISH",
	OpBlockEnter:     "BLOCK_ENTER",
	OpBlockExit:      "BLOCK_EXIT",
	OpExecutionPause: "EXECUTION_PAUSE",
	OpCreateFunction: "CREATE_FUNCTION",
	OpCreateClass:    "CREATE_CLASS",
	OpCreateArray:    "CREATE_ARRAY",
	OpCreateObject:   "CREATE_OBJECT",
}

// String renders an opcode's disassembly mnemonic.
func (op OpCode) String() string {
	if int(op) < len(opCodeNames) && opCodeNames[op] != "" {
		return opCodeNames[op]
	}
	return "UNKNOWN_OP"
}
