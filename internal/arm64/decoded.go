package arm64

import "fmt"

// decoded.go defines the data model a disassembly front end hands the
// translator: the Decoded Instruction and Operand shapes the rest of this
// package consumes. Disassembly itself is a non-goal; these types exist
// only so the core can consume a disassembled instruction as an opaque,
// already-decoded value, mirroring the shape (kind + compact payload) used
// for lowered instruction operands elsewhere in this codebase.

// Mnemonic enumerates the supported ARM64 opcodes.
type Mnemonic uint16

const (
	MnemonicInvalid Mnemonic = iota

	ADD
	ADDS
	SUB
	SUBS
	ADC
	ADCS
	SBC
	SBCS
	CMN
	CMP
	NEG
	NEGS
	NGC
	NGCS

	AND
	ANDS
	ORR
	ORN
	EOR
	EON
	TST
	MOV
	MOVZ
	MVN

	LSL
	LSR
	ASR
	ROR
	EXTR
	SXTB
	SXTH
	SXTW
	UXTB
	UXTH

	MUL
	MADD
	MSUB
	MNEG
	UMULL
	SMULL
	UMADDL
	SMADDL
	UMSUBL
	SMSUBL
	UMNEGL
	SMNEGL
	UMULH
	SMULH
	UDIV
	SDIV

	STR
	STRB
	STRH
	LDR
	LDUR
	LDRB
	LDRH
	LDRSB
	LDRSH
	LDRSW
	STP
	LDP
	LDPSW

	ADR
	ADRP

	CSEL
	CSINC
	CSINV
	CSNEG
	CSET
	CSETM
	CINC
	CINV
	CNEG
	CCMP
	CCMN

	B
	BL
	BR
	BLR
	RET
	CBZ
	CBNZ
	TBZ
	TBNZ

	NOP
)

var mnemonicNames = map[Mnemonic]string{
	ADD: "add", ADDS: "adds", SUB: "sub", SUBS: "subs",
	ADC: "adc", ADCS: "adcs", SBC: "sbc", SBCS: "sbcs",
	CMN: "cmn", CMP: "cmp", NEG: "neg", NEGS: "negs", NGC: "ngc", NGCS: "ngcs",
	AND: "and", ANDS: "ands", ORR: "orr", ORN: "orn", EOR: "eor", EON: "eon",
	TST: "tst", MOV: "mov", MOVZ: "movz", MVN: "mvn",
	LSL: "lsl", LSR: "lsr", ASR: "asr", ROR: "ror", EXTR: "extr",
	SXTB: "sxtb", SXTH: "sxth", SXTW: "sxtw", UXTB: "uxtb", UXTH: "uxth",
	MUL: "mul", MADD: "madd", MSUB: "msub", MNEG: "mneg",
	UMULL: "umull", SMULL: "smull", UMADDL: "umaddl", SMADDL: "smaddl",
	UMSUBL: "umsubl", SMSUBL: "smsubl", UMNEGL: "umnegl", SMNEGL: "smnegl",
	UMULH: "umulh", SMULH: "smulh", UDIV: "udiv", SDIV: "sdiv",
	STR: "str", STRB: "strb", STRH: "strh",
	LDR: "ldr", LDUR: "ldur", LDRB: "ldrb", LDRH: "ldrh",
	LDRSB: "ldrsb", LDRSH: "ldrsh", LDRSW: "ldrsw",
	STP: "stp", LDP: "ldp", LDPSW: "ldpsw",
	ADR: "adr", ADRP: "adrp",
	CSEL: "csel", CSINC: "csinc", CSINV: "csinv", CSNEG: "csneg",
	CSET: "cset", CSETM: "csetm", CINC: "cinc", CINV: "cinv", CNEG: "cneg",
	CCMP: "ccmp", CCMN: "ccmn",
	B: "b", BL: "bl", BR: "br", BLR: "blr", RET: "ret",
	CBZ: "cbz", CBNZ: "cbnz", TBZ: "tbz", TBNZ: "tbnz",
	NOP: "nop",
}

func (m Mnemonic) String() string {
	if s, ok := mnemonicNames[m]; ok {
		return s
	}
	return fmt.Sprintf("mnemonic(%d)", uint16(m))
}

// Extender is a register-operand sign/zero extension mode.
type Extender uint8

const (
	ExtendNone Extender = iota
	ExtUXTB
	ExtUXTH
	ExtUXTW
	ExtUXTX
	ExtSXTB
	ExtSXTH
	ExtSXTW
	ExtSXTX
)

// Shifter is a register-operand shift mode. MSL is accepted
// syntactically but is handled as an explicitly unsupported operand.
type Shifter uint8

const (
	ShiftNone Shifter = iota
	ShiftLSL
	ShiftLSR
	ShiftASR
	ShiftROR
	ShiftMSL
)

// ShiftedOperand carries an extender or shifter plus its immediate amount;
// at most one of Extend/Shift is meaningful for a given operand, matching
// the mutually exclusive encodings of the real instruction set.
type ShiftedOperand struct {
	Extend Extender
	Shift  Shifter
	Amount uint8
}

// OperandKind tags the Operand union.
type OperandKind uint8

const (
	OperandInvalid OperandKind = iota
	OperandRegister
	OperandImmediate
	OperandMemory
	OperandSystemRegister

	// Unsupported operand kinds: recognized so the driver can raise a
	// typed UnsupportedOperandError instead of panicking on an unknown
	// tag, but never carrying semantics of their own.
	OperandFloatReg
	OperandPrefetch
	OperandBarrier
	OperandCImm
	OperandPState
	OperandMRS
	OperandMSR
)

// Memory describes a [base, index, disp] addressing-mode operand.
type Memory struct {
	Base        RegID
	HasIndex    bool
	Index       RegID
	IndexApply  ShiftedOperand
	Disp        int64
	PreIndexed  bool
	PostIndexed bool
}

// Operand is a single decoded instruction operand.
type Operand struct {
	Kind   OperandKind
	Reg    RegID
	Apply  ShiftedOperand // extender/shifter applied to Reg, if Kind == OperandRegister
	Imm    int64
	Mem    Memory
	Access AccessFlag // read/write role, carried through for downstream passes
	Reason string     // populated for unsupported-kind operands, for UnsupportedOperandError
}

// AccessFlag tags an operand's read/write role for a given mnemonic.
type AccessFlag uint8

const (
	AccessRead AccessFlag = iota
	AccessWrite
	AccessReadWrite
)

// DecodedInstruction is the opaque unit of work the translation driver
// consumes. Disassembly produces these; this module never
// constructs one except in tests.
type DecodedInstruction struct {
	Address     uint64
	Size        uint32
	Mnemonic    Mnemonic
	Cond        cond
	UpdateFlags bool
	Writeback   bool
	Operands    []Operand
}

func (d *DecodedInstruction) operand(i int) (Operand, error) {
	if i < 0 || i >= len(d.Operands) {
		return Operand{}, &MalformedOperandCountError{
			Mnemonic: d.Mnemonic.String(),
			Want:     fmt.Sprintf("at least %d", i+1),
			Got:      len(d.Operands),
		}
	}
	return d.Operands[i], nil
}
