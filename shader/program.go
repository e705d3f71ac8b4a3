package shader

import (
	"strings"

	"github.com/adinfinit/lightlab/gpu"
)

// MissingError lists every contract name the linked program does not expose.
type MissingError struct {
	Names []string
}

func (err *MissingError) Error() string {
	return "unresolved shader locations: " + strings.Join(err.Names, ", ")
}

// Locations are the resolved handles of a contract, index-aligned with it.
type Locations struct {
	Contract  Contract
	locations []int32
}

// Resolve looks up every binding of contract in one pass.
func Resolve(device gpu.Locator, program gpu.Program, contract Contract) (Locations, error) {
	locs := Locations{
		Contract:  contract,
		locations: make([]int32, len(contract)),
	}

	var missing []string
	for i, binding := range contract {
		var loc int32
		if binding.Scope == Attribute {
			loc = device.AttribLocation(program, binding.Name)
		} else {
			loc = device.UniformLocation(program, binding.Name)
		}
		if loc < 0 {
			missing = append(missing, binding.Name)
		}
		locs.locations[i] = loc
	}

	if len(missing) > 0 {
		return Locations{}, &MissingError{Names: missing}
	}
	return locs, nil
}

// Attrib returns the location of the attribute with the semantic, -1 when the
// contract has none.
func (locs *Locations) Attrib(semantic Semantic) int32 {
	for i, binding := range locs.Contract {
		if binding.Scope == Attribute && binding.Semantic == semantic {
			return locs.locations[i]
		}
	}
	return -1
}

// Lookup returns the location resolved for a binding name.
func (locs *Locations) Lookup(name string) (int32, bool) {
	for i, binding := range locs.Contract {
		if binding.Name == name {
			return locs.locations[i], true
		}
	}
	return -1, false
}

// Program is a linked program together with its resolved contract.
type Program struct {
	ID gpu.Program
	Locations
}

// Build compiles and links source and resolves contract against it.
func Build(device gpu.Device, source Source, contract Contract) (*Program, error) {
	id, err := device.CompileProgram(source.Vertex, source.Fragment)
	if err != nil {
		return nil, err
	}

	locs, err := Resolve(device, id, contract)
	if err != nil {
		device.DeleteProgram(id)
		return nil, err
	}

	return &Program{ID: id, Locations: locs}, nil
}

func (program *Program) Delete(device gpu.Device) {
	device.DeleteProgram(program.ID)
}
