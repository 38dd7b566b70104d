package typegen

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_Artifacts(t *testing.T) {
	var r Result
	assert.True(t, r.Empty())

	out := r.Artifacts()
	for _, a := range AllArtifacts {
		_, err := io.WriteString(out.Writer(a), a.String())
		assert.NoError(t, err)
	}

	assert.False(t, r.Empty())
	assert.Equal(t, "declaration", r.Text(ArtifactDeclaration))
	assert.Equal(t, "implementation", r.Text(ArtifactImplementation))
	assert.Equal(t, "binding", r.Text(ArtifactBinding))
}

func TestFileSet_File(t *testing.T) {
	fs := FileSet{Declaration: "W.hpp", Implementation: "W.cpp", Binding: "W.hs"}
	assert.Equal(t, "W.hpp", fs.File(ArtifactDeclaration))
	assert.Equal(t, "W.cpp", fs.File(ArtifactImplementation))
	assert.Equal(t, "W.hs", fs.File(ArtifactBinding))
}
