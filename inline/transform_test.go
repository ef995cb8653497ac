package inline

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapTable map[string]string

func (m mapTable) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

var testTable = mapTable{
	"a.b":  "hello",
	"a.c":  "count {n} items",
	"a.d":  "val: {v}",
	"a.e":  "{who} did {what}",
	"a.q":  `say "hi"`,
	"a.nl": "line1\nline2",

	"hook.log.processing":           "Processing {event} event",
	"hook.log.workingDir":           "Working directory: {dir}",
	"hook.log.decision":             "Decision: {decision}",
	"hook.log.finalDecision":        "Final decision: {decision}",
	"hook.log.splitCommands":        "Split into {count} sub-commands: {commands}",
	"hook.defaultCompletionMessage": "Task completed",
}

func TestTransformIdentityWithoutCallSites(t *testing.T) {
	inputs := []string{
		"",
		"no calls here\n",
		"print('hello')",
		`x = f"{y} and {z}"`,
		"obj.t('method')",
		"def quit('x'): pass",
	}
	for _, in := range inputs {
		out, diags := Transform(in, testTable)
		assert.Equal(t, in, out)
		assert.Empty(t, diags, "input %q", in)
	}
}

func TestTransform(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bare without parameters",
			in:   "x(t('a.b'))",
			want: `x("hello")`,
		},
		{
			name: "interpolated without parameters",
			in:   `f"{t('a.b')}"`,
			want: `f"hello"`,
		},
		{
			name: "interpolated with whitespace around the call",
			in:   `log(f"  { t('a.b') }")`,
			want: `log(f"  hello")`,
		},
		{
			name: "bare with parameter",
			in:   "t('a.c', n=len(xs))",
			want: `f"count {len(xs)} items"`,
		},
		{
			name: "nested call in parameter",
			in:   "t('a.c', n=f(g(x)))",
			want: `f"count {f(g(x))} items"`,
		},
		{
			name: "interpolated parameter expression is flattened",
			in:   `t('a.d', v=f"{y}")`,
			want: `f"val: {y}"`,
		},
		{
			name: "interpolated with parameter",
			in:   `log(f"  {t('a.c', n=len(xs))}")`,
			want: `log(f"  count {len(xs)} items")`,
		},
		{
			name: "several calls on one line",
			in:   `log(t('a.b') + " - " + t('a.c', n=k))`,
			want: `log("hello" + " - " + f"count {k} items")`,
		},
		{
			name: "unbound placeholder passes through",
			in:   "t('a.e', who=name)",
			want: `f"{name} did {what}"`,
		},
		{
			name: "comma inside quoted parameter",
			in:   "t('a.e', who='a, b', what=x)",
			want: `f"{'a, b'} did {x}"`,
		},
		{
			name: "comma inside list parameter",
			in:   "t('a.c', n=[1, 2])",
			want: `f"count {[1, 2]} items"`,
		},
		{
			name: "quote in translation is escaped",
			in:   "x(t('a.q'))",
			want: `x("say \"hi\"")`,
		},
		{
			name: "newline in translation is escaped",
			in:   "x(t('a.nl'))",
			want: `x("line1\nline2")`,
		},
		{
			name: "call as default argument",
			in:   `msg = cfg.get("message", t('hook.defaultCompletionMessage'))`,
			want: `msg = cfg.get("message", "Task completed")`,
		},
		{
			name: "string literal parameter",
			in:   "log_debug(t('hook.log.processing', event='Stop'))",
			want: `log_debug(f"Processing {'Stop'} event")`,
		},
		{
			name: "interpolated decision",
			in:   `log_debug(f"    {t('hook.log.decision', decision='useWeb = allow')}")`,
			want: `log_debug(f"    Decision: {'useWeb = allow'}")`,
		},
		{
			name: "interpolated literal parameter with parentheses and quotes",
			in:   `log_debug(t('hook.log.finalDecision', decision=f"deny (because sub-command '{sub_cmd}' was denied)"))`,
			want: `log_debug(f"Final decision: deny (because sub-command '{sub_cmd}' was denied)")`,
		},
		{
			name: "two parameters",
			in:   "log_debug(t('hook.log.splitCommands', count=len(sub_commands), commands=str(sub_commands)))",
			want: `log_debug(f"Split into {len(sub_commands)} sub-commands: {str(sub_commands)}")`,
		},
		{
			name: "no closing brace after interpolated call",
			in:   `f"{t('a.b') + x}"`,
			want: `f"hello + x}"`,
		},
		{
			name: "multiline template",
			in:   "def stop():\n    log_debug(t('hook.log.processing', event='Stop'))\n    return 0\n",
			want: "def stop():\n    log_debug(f\"Processing {'Stop'} event\")\n    return 0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, diags := Transform(tt.in, testTable)
			assert.Equal(t, tt.want, got)
			assert.Empty(t, diags)
		})
	}
}

func TestTransformUnresolvedKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "bare", in: "x(t('missing.key', n=1)) + y"},
		{name: "interpolated", in: `log(f"  {t('missing.key')}")`},
		{name: "prefix of a leaf", in: "x(t('a.b.c'))"},
		{name: "table node", in: "x(t('a'))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, diags := Transform(tt.in, testTable)
			assert.Equal(t, tt.in, got)
			require.Len(t, diags, 1)
			assert.Equal(t, UnresolvedKey, diags[0].Kind)
			assert.NotEmpty(t, diags[0].Key)
		})
	}
}

func TestTransformUnresolvedKeyContinues(t *testing.T) {
	in := "a(t('nope'))\nb(t('a.b'))"
	got, diags := Transform(in, testTable)
	assert.Equal(t, "a(t('nope'))\nb(\"hello\")", got)
	require.Len(t, diags, 1)
	assert.Equal(t, "nope", diags[0].Key)
	assert.Equal(t, 1, diags[0].Line)
	assert.Equal(t, 3, diags[0].Column)
}

func TestTransformMalformedCall(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "unterminated key",
			in:   "x(t('a.b'))\ny(t('broken",
			want: "x(\"hello\")\ny(t('broken",
		},
		{
			name: "unbalanced parentheses",
			in:   "x(t('a.b'))\ny(t('a.c', n=(1)\nz(t('a.b'))",
			want: "x(\"hello\")\ny(t('a.c', n=(1)\nz(t('a.b'))",
		},
		{
			name: "enclosing brace is kept",
			in:   `f"{t('a.c', n=(1}"`,
			want: `f"{t('a.c', n=(1}"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, diags := Transform(tt.in, testTable)
			assert.Equal(t, tt.want, got)
			require.Len(t, diags, 1)
			assert.Equal(t, MalformedCall, diags[0].Kind)
			assert.ErrorIs(t, diags[0].Err, ErrMalformedCall)
		})
	}
}

func TestTransformDuplicateParameter(t *testing.T) {
	got, diags := Transform("t('a.c', n=1, n=2)", testTable)
	assert.Equal(t, `f"count {1} items"`, got)
	require.Len(t, diags, 1)
	assert.Equal(t, DuplicateParameter, diags[0].Kind)
	assert.Equal(t, "n", diags[0].Param)
	assert.Contains(t, diags[0].String(), `"n"`)
}

func TestTransformConcurrent(t *testing.T) {
	in := `log(f"  {t('a.c', n=len(xs))}")` + "\n" + "x(t('a.b'))"
	want := `log(f"  count {len(xs)} items")` + "\n" + `x("hello")`

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, _ := Transform(in, testTable)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}

func TestCallSites(t *testing.T) {
	src := "a(t('k.one'))\nb(f\"{t('k.two', x=f(y), z='q')}\")\nc(t('k.three"

	sites, diags := CallSites(src)
	require.Len(t, sites, 2)
	assert.Equal(t, "k.one", sites[0].Key)
	assert.Equal(t, "t('k.one')", sites[0].Text(src))
	assert.False(t, sites[0].HasParams())

	assert.Equal(t, "k.two", sites[1].Key)
	assert.True(t, sites[1].HasParams())
	assert.Equal(t, [][2]string{{"x", "f(y)"}, {"z", "'q'"}}, paramPairs(sites[1]))

	require.Len(t, diags, 1)
	assert.Equal(t, MalformedCall, diags[0].Kind)
	assert.Equal(t, 3, diags[0].Line)
}

func TestTransformer(t *testing.T) {
	tr := NewTransformer(testTable)
	got, diags := tr.Transform("hook.py", "x(t('a.b'), t('nope'))")
	assert.Equal(t, `x("hello", t('nope'))`, got)
	require.Len(t, diags, 1)
}

func TestPosition(t *testing.T) {
	tests := []struct {
		src    string
		offset int
		line   int
		column int
	}{
		{"abc", 0, 1, 1},
		{"ab\ncd", 4, 2, 2},
		{"é\nxy", 4, 2, 2},
		{"éa", 2, 1, 2},
		{"ab", 10, 1, 3},
	}
	for _, tt := range tests {
		line, col := Position(tt.src, tt.offset)
		assert.Equal(t, tt.line, line, "line of %q@%d", tt.src, tt.offset)
		assert.Equal(t, tt.column, col, "column of %q@%d", tt.src, tt.offset)
	}
}

func paramPairs(site CallSite) [][2]string {
	var out [][2]string
	for it := site.Params.Front(); it != nil; it = it.Next() {
		out = append(out, [2]string{*it.Key, it.Value})
	}
	return out
}
