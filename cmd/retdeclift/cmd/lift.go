package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	llvmtypes "github.com/llir/llvm/ir/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/2lambda123/avast-retdec/internal/arm64"
	"github.com/2lambda123/avast-retdec/ir/llvmir"
)

var liftCmd = &cobra.Command{
	Use:   "lift <file>",
	Short: "Translate a textual instruction listing to LLVM IR",
	Args:  cobra.ExactArgs(1),
	RunE:  runLift,
}

func runLift(_ *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return errors.Wrap(err, "retdeclift")
	}
	defer f.Close()

	mod := llvmir.NewModule("retdeclift")
	env := arm64.NewRegEnv(mod)
	translator := arm64.NewTranslator(env)
	translator.Reporter = func(e *arm64.UnhandledInstructionError) {
		fmt.Fprintln(os.Stderr, "retdeclift: warning:", e)
	}
	fn := mod.M.NewFunc("lifted", llvmtypes.Void)
	blk := &llvmir.Block{B: fn.NewBlock(""), Mod: mod}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		instr, err := parseLine(line)
		if err != nil {
			return errors.Wrapf(err, "retdeclift: %q", line)
		}
		if err := translator.TranslateOne(blk, instr); err != nil {
			return errors.Wrapf(err, "retdeclift: %q", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "retdeclift")
	}
	blk.B.NewRet(nil)

	fmt.Println(mod.M.String())
	return nil
}

// parseLine parses "<address> <mnemonic> <operands...>", e.g.
// "0x1000 add x0, x1, x2" or "0x1004 ldr x0, [x1, #8]". This is a
// deliberately small textual syntax for demonstration: a real disassembly
// front end is out of this module's scope.
func parseLine(line string) (*arm64.DecodedInstruction, error) {
	fields := strings.SplitN(line, " ", 3)
	if len(fields) < 2 {
		return nil, errors.New("expected \"<address> <mnemonic> [operands]\"")
	}
	addr, err := strconv.ParseUint(strings.TrimPrefix(fields[0], "0x"), 16, 64)
	if err != nil {
		return nil, errors.Wrap(err, "address")
	}
	mnemonic, ok := lookupMnemonic(fields[1])
	if !ok {
		return nil, errors.Errorf("unknown mnemonic %q", fields[1])
	}

	var operands []arm64.Operand
	var writeback bool
	if len(fields) == 3 {
		operands, writeback, err = parseOperands(fields[2])
		if err != nil {
			return nil, err
		}
	}

	return &arm64.DecodedInstruction{
		Address:   addr,
		Size:      4,
		Mnemonic:  mnemonic,
		Cond:      arm64.CondAL,
		Writeback: writeback,
		Operands:  operands,
	}, nil
}

// splitOperands splits a comma-separated operand list without breaking
// apart a bracketed memory operand's own commas.
func splitOperands(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

func parseOperands(s string) ([]arm64.Operand, bool, error) {
	parts := splitOperands(s)
	out := make([]arm64.Operand, 0, len(parts))
	var writeback bool
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		// "[rn, #imm]!" marks a pre-indexed access with writeback.
		if strings.HasPrefix(p, "[") && strings.HasSuffix(p, "!") {
			p = strings.TrimSuffix(p, "!")
			op, err := parseOperand(p)
			if err != nil {
				return nil, false, err
			}
			op.Mem.PreIndexed = true
			writeback = true
			out = append(out, op)
			continue
		}
		op, err := parseOperand(p)
		if err != nil {
			return nil, false, err
		}
		out = append(out, op)
	}
	// "[rn], #imm" is the post-indexed shape: a memory operand followed by
	// a bare immediate folds into one post-indexed access.
	if len(out) >= 2 {
		last, prev := out[len(out)-1], out[len(out)-2]
		if prev.Kind == arm64.OperandMemory && prev.Mem.Disp == 0 &&
			last.Kind == arm64.OperandImmediate {
			prev.Mem.PostIndexed = true
			prev.Mem.Disp = last.Imm
			out = append(out[:len(out)-2], prev)
			writeback = true
		}
	}
	return out, writeback, nil
}

func parseOperand(s string) (arm64.Operand, error) {
	switch {
	case strings.HasPrefix(s, "#"):
		imm, err := strconv.ParseInt(strings.TrimPrefix(s, "#"), 0, 64)
		if err != nil {
			return arm64.Operand{}, errors.Wrap(err, "immediate")
		}
		return arm64.Operand{Kind: arm64.OperandImmediate, Imm: imm}, nil
	case strings.HasPrefix(s, "["):
		return parseMemoryOperand(s)
	default:
		reg, ok := lookupRegister(s)
		if !ok {
			return arm64.Operand{}, errors.Errorf("unknown register %q", s)
		}
		return arm64.Operand{Kind: arm64.OperandRegister, Reg: reg}, nil
	}
}

func parseMemoryOperand(s string) (arm64.Operand, error) {
	s = strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
	parts := strings.Split(s, ",")
	base, ok := lookupRegister(strings.TrimSpace(parts[0]))
	if !ok {
		return arm64.Operand{}, errors.Errorf("unknown base register in %q", s)
	}
	mem := arm64.Memory{Base: base}
	if len(parts) > 1 {
		disp := strings.TrimSpace(parts[1])
		v, err := strconv.ParseInt(strings.TrimPrefix(disp, "#"), 0, 64)
		if err != nil {
			return arm64.Operand{}, errors.Wrap(err, "displacement")
		}
		mem.Disp = v
	}
	return arm64.Operand{Kind: arm64.OperandMemory, Mem: mem}, nil
}
