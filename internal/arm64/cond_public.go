package arm64

// Cond is the exported condition-code type external callers (a disassembly
// front end constructing DecodedInstruction values) use, aliased onto the
// internal enum for the same reason RegID aliases regID.
type Cond = cond

// Exported condition-code constants, one per encoding.
const (
	CondEQ = condEQ
	CondNE = condNE
	CondHS = condHS
	CondLO = condLO
	CondMI = condMI
	CondPL = condPL
	CondVS = condVS
	CondVC = condVC
	CondHI = condHI
	CondLS = condLS
	CondGE = condGE
	CondLT = condLT
	CondGT = condGT
	CondLE = condLE
	CondAL = condAL
	CondNV = condNV
)
