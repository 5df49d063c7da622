package utilities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateResumeFile_AcceptsAllowedTypes(t *testing.T) {
	for _, name := range []string{"resume.pdf", "resume.doc", "resume.docx", "notes.txt", "UPPER.PDF"} {
		assert.NoError(t, ValidateResumeFile(name, 1024), name)
	}
}

func TestValidateResumeFile_RejectsExtension(t *testing.T) {
	err := ValidateResumeFile("malware.exe", 1024)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `file type ".exe" is not allowed`)

	err = ValidateResumeFile("noextension", 1024)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "is not allowed")
}

func TestValidateResumeFile_RejectsOversize(t *testing.T) {
	err := ValidateResumeFile("resume.pdf", MaxResumeSize+1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "too large")

	// The two failure classes carry distinct reasons.
	extErr := ValidateResumeFile("resume.exe", 1024)
	assert.NotEqual(t, err.Error(), extErr.Error())
}

func TestValidateResumeFile_AtLimit(t *testing.T) {
	assert.NoError(t, ValidateResumeFile("resume.pdf", MaxResumeSize))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"a", "b"}, "a"))
	assert.False(t, Contains([]string{"a", "b"}, "c"))
	assert.False(t, Contains(nil, "a"))
}
