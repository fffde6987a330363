package patcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewrite(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		inserted int
	}{
		{
			name:     "single call",
			input:    "const result = await saveProfileAPI(caseId, payload)\n",
			expected: "const result = await saveProfileAPI(caseId, payload) as { success: boolean; error?: string }\n",
			inserted: 1,
		},
		{
			name:     "indented call followed by code",
			input:    "    const result = await fooAPI(x, y)\n    if (!result.success) {\n",
			expected: "    const result = await fooAPI(x, y) as { success: boolean; error?: string }\n    if (!result.success) {\n",
			inserted: 1,
		},
		{
			name:     "trailing spaces before newline are kept after the suffix",
			input:    "const result = await fooAPI(x)  \t\nnext()\n",
			expected: "const result = await fooAPI(x) as { success: boolean; error?: string }  \t\nnext()\n",
			inserted: 1,
		},
		{
			name:     "blank lines after call are kept",
			input:    "const result = await fooAPI(x)\n\n    next()\n",
			expected: "const result = await fooAPI(x) as { success: boolean; error?: string }\n\n    next()\n",
			inserted: 1,
		},
		{
			name:     "crlf line ending",
			input:    "const result = await fooAPI(x)\r\nnext()\r\n",
			expected: "const result = await fooAPI(x) as { success: boolean; error?: string }\r\nnext()\r\n",
			inserted: 1,
		},
		{
			name:     "nested call argument",
			input:    "const result = await updateAPI(caseId, buildPayload(form))\n",
			expected: "const result = await updateAPI(caseId, buildPayload(form)) as { success: boolean; error?: string }\n",
			inserted: 1,
		},
		{
			name:     "several nested groups at one level",
			input:    "const result = await updateAPI(a(1), b(2), c)\n",
			expected: "const result = await updateAPI(a(1), b(2), c) as { success: boolean; error?: string }\n",
			inserted: 1,
		},
		{
			name:     "empty argument list",
			input:    "const result = await listAPI()\n",
			expected: "const result = await listAPI() as { success: boolean; error?: string }\n",
			inserted: 1,
		},
		{
			name:     "multiline argument list",
			input:    "const result = await saveAPI(\n  caseId,\n  payload\n)\n",
			expected: "const result = await saveAPI(\n  caseId,\n  payload\n) as { success: boolean; error?: string }\n",
			inserted: 1,
		},
		{
			name: "multiple calls",
			input: "const result = await aAPI(x)\n" +
				"const other = 1\n" +
				"const result = await bAPI(y)\n",
			expected: "const result = await aAPI(x) as { success: boolean; error?: string }\n" +
				"const other = 1\n" +
				"const result = await bAPI(y) as { success: boolean; error?: string }\n",
			inserted: 2,
		},
		{
			name:     "already asserted",
			input:    "const result = await saveProfileAPI(caseId, payload) as { success: boolean; error?: string }\n",
			expected: "const result = await saveProfileAPI(caseId, payload) as { success: boolean; error?: string }\n",
			inserted: 0,
		},
		{
			name:     "two levels of nesting are left alone",
			input:    "const result = await saveAPI(a, b(c(d)))\n",
			expected: "const result = await saveAPI(a, b(c(d)))\n",
			inserted: 0,
		},
		{
			name:     "function name not ending in API",
			input:    "const result = await saveProfile(caseId)\n",
			expected: "const result = await saveProfile(caseId)\n",
			inserted: 0,
		},
		{
			name:     "different binding name",
			input:    "const response = await saveProfileAPI(caseId)\n",
			expected: "const response = await saveProfileAPI(caseId)\n",
			inserted: 0,
		},
		{
			name:     "no newline after call",
			input:    "const result = await saveProfileAPI(caseId)",
			expected: "const result = await saveProfileAPI(caseId)",
			inserted: 0,
		},
		{
			name:     "call followed by more code on the same line",
			input:    "const result = await saveProfileAPI(caseId); done()\n",
			expected: "const result = await saveProfileAPI(caseId); done()\n",
			inserted: 0,
		},
		{
			name:     "empty content",
			input:    "",
			expected: "",
			inserted: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n := Rewrite(tt.input, DefaultTypeAssertion)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.inserted, n)
		})
	}
}

func TestRewriteIsIdempotent(t *testing.T) {
	inputs := []string{
		"const result = await saveProfileAPI(caseId, payload)\n",
		"const result = await updateAPI(caseId, buildPayload(form))\n    if (!result.success) {\n      setError(result.error)\n    }\n",
		"const result = await aAPI(x)\n\nconst result = await bAPI(f(y), z)\r\n",
	}

	for _, input := range inputs {
		once, _ := Rewrite(input, DefaultTypeAssertion)
		twice, n := Rewrite(once, DefaultTypeAssertion)
		assert.Equal(t, once, twice)
		assert.Zero(t, n)
	}
}

func TestRewriteCustomSuffix(t *testing.T) {
	got, n := Rewrite("const result = await fooAPI(x)\n", " as ApiResult")
	assert.Equal(t, "const result = await fooAPI(x) as ApiResult\n", got)
	assert.Equal(t, 1, n)
}

func TestPending(t *testing.T) {
	content := "const result = await aAPI(x)\n" +
		"const result = await bAPI(y) as { success: boolean; error?: string }\n" +
		"const result = await cAPI(z)\n"

	assert.Equal(t, 2, Pending(content, DefaultTypeAssertion))
}

func TestTargetsReturnsCopy(t *testing.T) {
	targets := Targets()
	assert.Len(t, targets, 6)
	assert.Equal(t, DefaultTargets, targets)

	targets[0] = "changed"
	assert.NotEqual(t, "changed", DefaultTargets[0])
}
