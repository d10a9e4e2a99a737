package cmd

import (
	"strconv"

	"github.com/2lambda123/avast-retdec/internal/arm64"
)

var mnemonicsByName = map[string]arm64.Mnemonic{
	"add": arm64.ADD, "adds": arm64.ADDS, "sub": arm64.SUB, "subs": arm64.SUBS,
	"adc": arm64.ADC, "adcs": arm64.ADCS, "sbc": arm64.SBC, "sbcs": arm64.SBCS,
	"cmn": arm64.CMN, "cmp": arm64.CMP, "neg": arm64.NEG, "negs": arm64.NEGS,
	"ngc": arm64.NGC, "ngcs": arm64.NGCS,
	"and": arm64.AND, "ands": arm64.ANDS, "orr": arm64.ORR, "orn": arm64.ORN,
	"eor": arm64.EOR, "eon": arm64.EON, "tst": arm64.TST,
	"mov": arm64.MOV, "movz": arm64.MOVZ, "mvn": arm64.MVN,
	"lsl": arm64.LSL, "lsr": arm64.LSR, "asr": arm64.ASR, "ror": arm64.ROR, "extr": arm64.EXTR,
	"sxtb": arm64.SXTB, "sxth": arm64.SXTH, "sxtw": arm64.SXTW,
	"uxtb": arm64.UXTB, "uxth": arm64.UXTH,
	"mul": arm64.MUL, "madd": arm64.MADD, "msub": arm64.MSUB, "mneg": arm64.MNEG,
	"umull": arm64.UMULL, "smull": arm64.SMULL,
	"umaddl": arm64.UMADDL, "smaddl": arm64.SMADDL,
	"umsubl": arm64.UMSUBL, "smsubl": arm64.SMSUBL,
	"umnegl": arm64.UMNEGL, "smnegl": arm64.SMNEGL,
	"umulh": arm64.UMULH, "smulh": arm64.SMULH,
	"udiv": arm64.UDIV, "sdiv": arm64.SDIV,
	"str": arm64.STR, "strb": arm64.STRB, "strh": arm64.STRH,
	"ldr": arm64.LDR, "ldur": arm64.LDUR, "ldrb": arm64.LDRB, "ldrh": arm64.LDRH,
	"ldrsb": arm64.LDRSB, "ldrsh": arm64.LDRSH, "ldrsw": arm64.LDRSW,
	"stp": arm64.STP, "ldp": arm64.LDP, "ldpsw": arm64.LDPSW,
	"adr": arm64.ADR, "adrp": arm64.ADRP,
	"csel": arm64.CSEL, "csinc": arm64.CSINC, "csinv": arm64.CSINV, "csneg": arm64.CSNEG,
	"cset": arm64.CSET, "csetm": arm64.CSETM,
	"cinc": arm64.CINC, "cinv": arm64.CINV, "cneg": arm64.CNEG,
	"ccmp": arm64.CCMP, "ccmn": arm64.CCMN,
	"b": arm64.B, "bl": arm64.BL, "br": arm64.BR, "blr": arm64.BLR, "ret": arm64.RET,
	"cbz": arm64.CBZ, "cbnz": arm64.CBNZ, "tbz": arm64.TBZ, "tbnz": arm64.TBNZ,
	"nop": arm64.NOP,
}

func lookupMnemonic(s string) (arm64.Mnemonic, bool) {
	m, ok := mnemonicsByName[s]
	return m, ok
}

var registersByName = func() map[string]arm64.RegID {
	out := map[string]arm64.RegID{
		"xzr": arm64.XZR, "wzr": arm64.WZR, "sp": arm64.SP, "wsp": arm64.WSP, "lr": arm64.LR,
	}
	xregs := [...]arm64.RegID{
		arm64.X0, arm64.X1, arm64.X2, arm64.X3, arm64.X4, arm64.X5, arm64.X6, arm64.X7,
		arm64.X8, arm64.X9, arm64.X10, arm64.X11, arm64.X12, arm64.X13, arm64.X14, arm64.X15,
		arm64.X16, arm64.X17, arm64.X18, arm64.X19, arm64.X20, arm64.X21, arm64.X22, arm64.X23,
		arm64.X24, arm64.X25, arm64.X26, arm64.X27, arm64.X28, arm64.X29, arm64.X30,
	}
	wregs := [...]arm64.RegID{
		arm64.W0, arm64.W1, arm64.W2, arm64.W3, arm64.W4, arm64.W5, arm64.W6, arm64.W7,
		arm64.W8, arm64.W9, arm64.W10, arm64.W11, arm64.W12, arm64.W13, arm64.W14, arm64.W15,
		arm64.W16, arm64.W17, arm64.W18, arm64.W19, arm64.W20, arm64.W21, arm64.W22, arm64.W23,
		arm64.W24, arm64.W25, arm64.W26, arm64.W27, arm64.W28, arm64.W29, arm64.W30,
	}
	for i, r := range xregs {
		out["x"+strconv.Itoa(i)] = r
	}
	for i, r := range wregs {
		out["w"+strconv.Itoa(i)] = r
	}
	return out
}()

func lookupRegister(s string) (arm64.RegID, bool) {
	r, ok := registersByName[s]
	return r, ok
}
