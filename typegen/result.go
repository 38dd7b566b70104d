package typegen

import (
	"bytes"
	"io"
)

// Artifact identifies one of the three texts generated per entity
type Artifact int

const (
	// ArtifactDeclaration is the C++ header declaring the call-shims
	ArtifactDeclaration Artifact = iota
	// ArtifactImplementation is the C++ source defining the call-shims
	ArtifactImplementation
	// ArtifactBinding is the Haskell module importing the call-shims
	ArtifactBinding
)

// AllArtifacts lists the artifacts in write order
var AllArtifacts = []Artifact{ArtifactDeclaration, ArtifactImplementation, ArtifactBinding}

// String returns the artifact name
func (a Artifact) String() string {
	switch a {
	case ArtifactDeclaration:
		return "declaration"
	case ArtifactImplementation:
		return "implementation"
	case ArtifactBinding:
		return "binding"
	default:
		return "unknown"
	}
}

// File returns the file name of artifact a within fs
func (fs FileSet) File(a Artifact) string {
	switch a {
	case ArtifactDeclaration:
		return fs.Declaration
	case ArtifactImplementation:
		return fs.Implementation
	default:
		return fs.Binding
	}
}

// Artifacts are the three sinks an emitter writes one entity into.
// Each sink is owned by a single emitter for the duration of the entity.
type Artifacts struct {
	Declaration    io.Writer
	Implementation io.Writer
	Binding        io.Writer
}

// Writer returns the sink for artifact a
func (out Artifacts) Writer(a Artifact) io.Writer {
	switch a {
	case ArtifactDeclaration:
		return out.Declaration
	case ArtifactImplementation:
		return out.Implementation
	default:
		return out.Binding
	}
}

// Result holds the generated texts of one entity in memory.
// This is what the runner and tests hand to an emitter.
type Result struct {
	// Entity is the dotted full name the texts were generated for
	Entity string

	// Names are the identifiers derived for the entity
	Names Names

	Declaration    bytes.Buffer
	Implementation bytes.Buffer
	Binding        bytes.Buffer
}

// Artifacts returns sinks writing into the result's buffers
func (r *Result) Artifacts() Artifacts {
	return Artifacts{
		Declaration:    &r.Declaration,
		Implementation: &r.Implementation,
		Binding:        &r.Binding,
	}
}

// Text returns the generated text of artifact a
func (r *Result) Text(a Artifact) string {
	switch a {
	case ArtifactDeclaration:
		return r.Declaration.String()
	case ArtifactImplementation:
		return r.Implementation.String()
	default:
		return r.Binding.String()
	}
}

// Empty reports whether nothing was written to any artifact
func (r *Result) Empty() bool {
	return r.Declaration.Len() == 0 && r.Implementation.Len() == 0 && r.Binding.Len() == 0
}
