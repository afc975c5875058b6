package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/faq/internal/model"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestBuiltin(t *testing.T) {
	entries, err := Load(context.Background(), Builtin)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "faq1", entries[0].ID)
	assert.Equal(t, "What is 5G technology?", entries[0].Question)
	assert.Equal(t, "faq3", entries[2].ID)
}

func TestStaticReturnsCopy(t *testing.T) {
	entries, err := Builtin.Entries(context.Background())
	require.NoError(t, err)
	entries[0].ID = "changed"
	assert.Equal(t, "faq1", Builtin[0].ID)
}

func TestFileJSON(t *testing.T) {
	p := writeFile(t, "faq.json", `{
  "entries": [
    {"id": "hours", "question": "What are the parking lot hours?",
     "answer": [{"text": "The parking lots are available 24 hours a day."}]},
    {"id": "cost", "question": "How much does a parking permit cost?",
     "answer": [{"text": "Prices:", "items": ["Student permits: $150 per semester", "Motorcycle permits: $75 per year"]}]}
  ]
}`)
	entries, err := Load(context.Background(), FromPath(p))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "hours", entries[0].ID)
	assert.Equal(t, []string{"Student permits: $150 per semester", "Motorcycle permits: $75 per year"}, entries[1].Answer[0].Items)
}

func TestFileTOML(t *testing.T) {
	p := writeFile(t, "faq.toml", `
[[entries]]
id = "lost"
question = "What do I do if I lose my permit?"

  [[entries.answer]]
  text = "Come to the parking office and report the loss."

  [[entries.answer]]
  text = "If your permit was stolen, file a police report."

[[entries]]
id = "visitor"
question = "Can I park in visitor parking?"

  [[entries.answer]]
  text = "Visitor parking spaces are reserved exclusively for visitors."
`)
	entries, err := Load(context.Background(), File{Path: p})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Len(t, entries[0].Answer, 2)
	assert.Equal(t, "visitor", entries[1].ID)
}

func TestFileErrors(t *testing.T) {
	ctx := context.Background()

	_, err := Load(ctx, File{Path: filepath.Join(t.TempDir(), "missing.json")})
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(ctx, File{Path: writeFile(t, "faq.yaml", "entries: []")})
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(ctx, File{Path: writeFile(t, "bad.json", "{")})
	require.ErrorContains(t, err, "json unmarshal")

	_, err = Load(ctx, File{Path: writeFile(t, "dup.json", `{"entries":[{"id":"a"},{"id":"a"}]}`)})
	require.ErrorIs(t, err, model.ErrDuplicateID)
}

func TestFileHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := File{Path: "whatever.json"}.Entries(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSaveThenLoad(t *testing.T) {
	for _, name := range []string{"faq.json", "faq.toml"} {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), name)
			require.NoError(t, Save(p, Builtin))

			entries, err := Load(context.Background(), FromPath(p))
			require.NoError(t, err)
			require.Len(t, entries, len(Builtin))
			for i := range Builtin {
				assert.Equal(t, Builtin[i].ID, entries[i].ID)
				assert.Equal(t, Builtin[i].Question, entries[i].Question)
				assert.Equal(t, Builtin[i].Answer[0].Text, entries[i].Answer[0].Text)
			}
		})
	}
}

func TestSaveUnsupported(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "faq.txt"), Builtin)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}
