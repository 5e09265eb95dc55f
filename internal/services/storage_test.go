package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveResume(t *testing.T) {
	dir := t.TempDir()
	svc := NewStorageService(dir)
	require.NoError(t, svc.EnsureUploadDir())

	filename, path, err := svc.SaveResume([]byte("resume bytes"), "cv.pdf")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filename, "resume_"))
	assert.Equal(t, ".pdf", filepath.Ext(filename))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("resume bytes"), data)
}

func TestSaveResumeUniqueNames(t *testing.T) {
	dir := t.TempDir()
	svc := NewStorageService(dir)
	require.NoError(t, svc.EnsureUploadDir())

	first, _, err := svc.SaveResume([]byte("a"), "cv.docx")
	require.NoError(t, err)
	second, _, err := svc.SaveResume([]byte("b"), "cv.docx")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSaveResumeRejectsExtension(t *testing.T) {
	svc := NewStorageService(t.TempDir())

	_, _, err := svc.SaveResume([]byte("#!/bin/sh"), "script.sh")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid file extension")
}

func TestDeleteFile(t *testing.T) {
	dir := t.TempDir()
	svc := NewStorageService(dir)
	require.NoError(t, svc.EnsureUploadDir())

	filename, path, err := svc.SaveResume([]byte("x"), "cv.txt")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteFile(filename))
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
