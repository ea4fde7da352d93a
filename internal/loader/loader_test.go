package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moorgen/moorgen/internal/loader"
	"github.com/moorgen/moorgen/pkg/fsm"
)

const dividerYAML = `name: MooreFSM
inputs: [x, y]
outputs: [u, v]
states:
  - name: s0
    default: true
    outputs: {u: 0, v: 0}
  - name: s1
    outputs: {u: 1, v: 0}
transitions:
  - from: s0
    to: s0
    when: x='1'
  - from: s0
    to: s1
    when: x='0'
  - from: s1
    to: s0
    when: x='1' and y='0'
  - from: s1
    to: s1
    when: x='0' or y='1'
`

const dividerJSON = `{
  "name": "MooreFSM",
  "inputs": ["x", "y"],
  "outputs": ["u", "v"],
  "states": [
    {"name": "s0", "default": true, "outputs": {"u": 0, "v": 0}},
    {"name": "s1", "outputs": {"u": 1, "v": 0}}
  ],
  "transitions": [
    {"from": "s0", "to": "s0", "when": "x='1'"},
    {"from": "s0", "to": "s1", "when": "x='0'"},
    {"from": "s1", "to": "s0", "when": "x='1' and y='0'"},
    {"from": "s1", "to": "s1", "when": "x='0' or y='1'"}
  ]
}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func assertDivider(t *testing.T, m *fsm.Machine) {
	t.Helper()

	assert.Equal(t, "MooreFSM", m.Name)
	assert.Equal(t, []string{"x", "y"}, m.Signals().Inputs())
	assert.Equal(t, []string{"u", "v"}, m.Signals().Outputs())
	assert.Equal(t, []string{"s0", "s1"}, m.StateNames())

	def, ok := m.DefaultState()
	require.True(t, ok)
	assert.Equal(t, "s0", def.Name)
	assert.Equal(t, map[string]fsm.Bit{"u": fsm.Low, "v": fsm.Low}, def.Outputs)

	s1, ok := m.State("s1")
	require.True(t, ok)
	assert.Equal(t, map[string]fsm.Bit{"u": fsm.High, "v": fsm.Low}, s1.Outputs)

	require.Len(t, m.Transitions(), 4)
	from := m.TransitionsFrom("s1")
	require.Len(t, from, 2)
	assert.True(t, fsm.EqualConditions(fsm.And{
		Left:  fsm.Equals{Signal: "x", Value: fsm.High},
		Right: fsm.Equals{Signal: "y", Value: fsm.Low},
	}, from[0].Condition))

	assert.NoError(t, fsm.Validate(m))
}

func TestLoad(t *testing.T) {
	t.Run("YAML", func(t *testing.T) {
		m, err := loader.Load(writeFile(t, "fsm.yaml", dividerYAML))
		require.NoError(t, err)
		assertDivider(t, m)
	})

	t.Run("JSON", func(t *testing.T) {
		m, err := loader.Load(writeFile(t, "fsm.json", dividerJSON))
		require.NoError(t, err)
		assertDivider(t, m)
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := loader.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorContains(t, err, "failed to read definition")
	})

	t.Run("Malformed YAML", func(t *testing.T) {
		_, err := loader.Load(writeFile(t, "bad.yaml", "name: [unclosed"))
		assert.ErrorContains(t, err, "failed to parse")
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		_, err := loader.Load(writeFile(t, "bad.json", "{"))
		assert.ErrorContains(t, err, "failed to parse")
	})
}

func TestFromMap(t *testing.T) {
	t.Run("Weak Typing", func(t *testing.T) {
		raw := map[string]any{
			"name":    "fsm",
			"outputs": []any{"u"},
			"states": []any{
				map[string]any{"name": "s0", "default": "true", "outputs": map[string]any{"u": float64(1)}},
			},
			"transitions": []any{
				map[string]any{"from": "s0", "to": "s0"},
			},
		}
		m, err := loader.FromMap(raw)
		require.NoError(t, err)
		def, ok := m.DefaultState()
		require.True(t, ok)
		assert.Equal(t, fsm.High, def.Outputs["u"])
	})

	t.Run("Missing Name", func(t *testing.T) {
		_, err := loader.FromMap(map[string]any{"states": []any{}})
		assert.ErrorContains(t, err, "no machine name")
	})
}

func TestBuild(t *testing.T) {
	t.Run("Bad Guard Reports Edge", func(t *testing.T) {
		def := loader.Definition{
			Name:   "fsm",
			Inputs: []string{"x"},
			States: []loader.StateDef{{Name: "s0", Default: true}, {Name: "s1"}},
			Transitions: []loader.TransitionDef{
				{From: "s0", To: "s1", When: "x='2'"},
			},
		}
		_, err := loader.Build(def)
		assert.ErrorContains(t, err, "transition s0 -> s1")
	})

	t.Run("Blank When Is Unconditional", func(t *testing.T) {
		def := loader.Definition{
			Name:   "fsm",
			States: []loader.StateDef{{Name: "s0", Default: true}},
			Transitions: []loader.TransitionDef{
				{From: "s0", To: "s0", When: "   "},
			},
		}
		m, err := loader.Build(def)
		require.NoError(t, err)
		trs := m.Transitions()
		require.Len(t, trs, 1)
		assert.True(t, trs[0].Unconditional())
	})

	t.Run("Model Errors Surface", func(t *testing.T) {
		def := loader.Definition{
			Name:   "fsm",
			States: []loader.StateDef{{Name: "s0"}},
			Transitions: []loader.TransitionDef{
				{From: "s0", To: "ghost"},
			},
		}
		_, err := loader.Build(def)
		var integrity *fsm.ModelIntegrityError
		require.ErrorAs(t, err, &integrity)
		assert.Equal(t, fsm.KindUnknownState, integrity.Kind)
	})

	t.Run("Bad Output Value", func(t *testing.T) {
		def := loader.Definition{
			Name:    "fsm",
			Outputs: []string{"u"},
			States: []loader.StateDef{
				{Name: "s0", Outputs: map[string]any{"u": 7}},
			},
		}
		_, err := loader.Build(def)
		assert.ErrorContains(t, err, `state "s0", output "u"`)
	})
}

func TestCoercions(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  fsm.Bit
	}{
		{"Int Zero", 0, fsm.Low},
		{"Int One", 1, fsm.High},
		{"Float One", float64(1), fsm.High},
		{"Bool True", true, fsm.High},
		{"Bool False", false, fsm.Low},
		{"String", "1", fsm.High},
		{"Quoted String", "'0'", fsm.Low},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			def := loader.Definition{
				Name:    "fsm",
				Outputs: []string{"u"},
				States: []loader.StateDef{
					{Name: "s0", Outputs: map[string]any{"u": tc.value}},
				},
			}
			m, err := loader.Build(def)
			require.NoError(t, err)
			s0, ok := m.State("s0")
			require.True(t, ok)
			assert.Equal(t, tc.want, s0.Outputs["u"])
		})
	}
}
