package facade

import "strings"

// Parser is a subsystem stage.
type Parser struct{}

// Run parses the source.
func (Parser) Run() string { return "parsing source code" }

// CodeGenerator is a subsystem stage.
type CodeGenerator struct{}

// Run emits machine code.
func (CodeGenerator) Run() string { return "generating machine code" }

// Optimiser is a subsystem stage.
type Optimiser struct{}

// Run optimises the generated code.
func (Optimiser) Run() string { return "optimising generated machine code" }

// Linker is a subsystem stage.
type Linker struct{}

// Run links the final artifact.
func (Linker) Run() string { return "linking code" }

// Compiler is the facade: it owns the stages and sequences them so
// callers get a whole compilation from a single call.
type Compiler struct {
	parser    Parser
	generator CodeGenerator
	optimiser Optimiser
	linker    Linker
}

// NewCompiler assembles a compiler with its default stages.
func NewCompiler() *Compiler {
	return &Compiler{}
}

// Run performs a full compilation, returning one line per stage.
func (c *Compiler) Run() string {
	return strings.Join([]string{
		c.parser.Run(),
		c.generator.Run(),
		c.optimiser.Run(),
		c.linker.Run(),
	}, "\n")
}
