package usecase_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbancode/chatbot-relay/internal/usecase"
)

func TestDefaultCourseCatalog(t *testing.T) {
	catalog := usecase.DefaultCourseCatalog()

	assert.Equal(t, "https://urbancode.in/data-science", catalog.Link("Data Science"))
	assert.Equal(t, "https://urbancode.in/cloud-and-devops", catalog.Link("Cloud and DevOps"))
	assert.Equal(t, usecase.DefaultCourseFallback, catalog.Link("Quantum Computing"))
	assert.Equal(t, usecase.DefaultCourseFallback, catalog.Link(""))
	assert.Equal(t, 11, catalog.Len())
}

func TestLoadCourseCatalogEmptyPath(t *testing.T) {
	catalog, err := usecase.LoadCourseCatalog("")

	require.NoError(t, err)
	assert.Equal(t, "https://urbancode.in/kids", catalog.Link("Kids"))
}

func TestLoadCourseCatalogOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "courses.yaml")
	content := `
fallback: https://urbancode.in/all
courses:
  Data Science: https://urbancode.in/ds-2025
  Full Stack: https://urbancode.in/full-stack
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	catalog, err := usecase.LoadCourseCatalog(path)

	require.NoError(t, err)
	assert.Equal(t, "https://urbancode.in/ds-2025", catalog.Link("Data Science"))
	assert.Equal(t, "https://urbancode.in/full-stack", catalog.Link("Full Stack"))
	assert.Equal(t, "https://urbancode.in/software-testing", catalog.Link("Software Testing"))
	assert.Equal(t, "https://urbancode.in/all", catalog.Link("Quantum Computing"))
}

func TestLoadCourseCatalogErrors(t *testing.T) {
	_, err := usecase.LoadCourseCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, usecase.IsTechnicalError(err))

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("courses: [unterminated"), 0o600))

	_, err = usecase.LoadCourseCatalog(path)
	assert.True(t, usecase.IsTechnicalError(err))
}
