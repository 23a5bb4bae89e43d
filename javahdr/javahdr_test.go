package javahdr_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seradco/scriptaudit/javahdr"
	"github.com/seradco/scriptaudit/stringtest"
)

var testKeyMap = map[string]string{
	"id":          "ID",
	"description": "Objective",
	"title":       "Filename",
	"author":      "Author",
}

func TestExtract(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  map[string]string
	}{
		"typical header": {
			input: stringtest.JoinLF(
				"package com.example.tests;",
				"",
				"public class Tc7 {",
				`    public static String Header =`,
				`        "id: TC-7\n" +`,
				`        "author: Jane\n" +`,
				`        "description: Verify the export job\n";`,
				"}",
			),
			want: map[string]string{
				"ID":        "TC-7",
				"Author":    "Jane",
				"Objective": "Verify the export job",
			},
		},
		"unmapped key passes through": {
			input: stringtest.JoinLF(
				"public static String Header =",
				`    "id: TC-8\n" +`,
				`    "reviewer: Sam\n";`,
			),
			want: map[string]string{
				"ID":       "TC-8",
				"reviewer": "Sam",
			},
		},
		"value may contain colons": {
			input: stringtest.JoinLF(
				"public static String Header =",
				`    "description: see http://example.com:8080/doc\n";`,
			),
			want: map[string]string{
				"Objective": "see http://example.com:8080/doc",
			},
		},
		"no header constant": {
			input: stringtest.JoinLF(
				"public class Empty {",
				"}",
			),
			want: map[string]string{},
		},
		"segments without colon skipped": {
			input: stringtest.JoinLF(
				"public static String Header =",
				`    "----------\n" +`,
				`    "id: TC-9\n";`,
			),
			want: map[string]string{
				"ID": "TC-9",
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := javahdr.Extract(strings.NewReader(tc.input), testKeyMap)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExtractFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "Tc1.java")
	content := stringtest.JoinLF(
		"public class Tc1 {",
		"    public static String Header =",
		`        "id: TC-1\n";`,
		"}",
	)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := javahdr.ExtractFile(path, testKeyMap)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"ID": "TC-1"}, got)
}
