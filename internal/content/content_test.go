package content

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDocument(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Riaz Hussain Saifi", c.Site.Owner)
	assert.Len(t, c.Projects, 16)
	assert.Len(t, c.Services, 9)
	assert.Len(t, c.Categories, 4)
	assert.Equal(t, CategoryAll, c.Categories[0].ID)
	assert.Len(t, c.Contact.Services, 10)
	assert.Len(t, c.Contact.Budgets, 6)

	s, ok := c.ServiceByID(7)
	require.True(t, ok)
	assert.Equal(t, "AI & ML Integration", s.Title)
	assert.Equal(t, "$2500+", s.Price.Premium)

	_, ok = c.ServiceByID(99)
	assert.False(t, ok)
}

func TestHeaderSocialsSkipsFooterOnly(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	for _, s := range c.HeaderSocials() {
		assert.NotEqual(t, "NPM", s.Name)
	}
	assert.Len(t, c.HeaderSocials(), len(c.Socials)-1)
}

const minimal = `
categories:
  - { id: all, name: All }
  - { id: web, name: Web }
skills:
  - category: Frontend
    skills:
      - { name: HTML5, level: %LEVEL% }
projects:
  - { id: 1, title: A, category: web }
  - { id: %ID%, title: B, category: %CAT% }
services:
  - { id: 1, title: S }
`

func doc(level, id, cat string) []byte {
	r := strings.NewReplacer("%LEVEL%", level, "%ID%", id, "%CAT%", cat)
	return []byte(r.Replace(minimal))
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"valid", doc("90", "2", "web"), nil},
		{"level zero", doc("0", "2", "web"), nil},
		{"level hundred", doc("100", "2", "web"), nil},
		{"level above range", doc("101", "2", "web"), ErrInvalidLevel},
		{"negative level", doc("-1", "2", "web"), ErrInvalidLevel},
		{"duplicate project id", doc("50", "1", "web"), ErrDuplicateID},
		{"unknown category", doc("50", "2", "rust"), ErrUnknownCategory},
		{"project tagged all", doc("50", "2", "all"), ErrUnknownCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseRejectsDuplicateServiceID(t *testing.T) {
	data := doc("50", "2", "web")
	data = append(data, []byte("  - { id: 1, title: T }\n")...)
	_, err := Parse(data)
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("projects: [unterminated"))
	assert.Error(t, err)
}

func TestRenderBio(t *testing.T) {
	c := &Content{About: About{Bio: "I am **Riaz**.\n\nSecond <script>x</script> paragraph."}}
	out, err := c.RenderBio()
	require.NoError(t, err)

	assert.Contains(t, string(out), "<strong>Riaz</strong>")
	assert.Equal(t, 2, strings.Count(string(out), "<p>"))
	assert.NotContains(t, string(out), "<script>")
}

func TestImageResolver(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "projects"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "projects", "Task-App.jpg"), []byte("jpg"), 0o644))

	const placeholder = "/assets/projects/project-placeholder.jpg"
	r := NewImageResolver(dir, placeholder)

	assert.Equal(t, "/assets/projects/Task-App.jpg", r.Resolve("/assets/projects/Task-App.jpg"))
	assert.Equal(t, placeholder, r.Resolve("/assets/projects/Missing.jpg"))
	assert.Equal(t, placeholder, r.Resolve(""))
	assert.Equal(t, placeholder, r.Resolve("/assets/../secret.jpg"))
	assert.Equal(t, "https://cdn.example.com/a.jpg", r.Resolve("https://cdn.example.com/a.jpg"))

	passthrough := NewImageResolver("", placeholder)
	assert.Equal(t, "/assets/projects/Missing.jpg", passthrough.Resolve("/assets/projects/Missing.jpg"))
}

func TestStoreSwap(t *testing.T) {
	a := &Content{GitHubProfile: "a"}
	b := &Content{GitHubProfile: "b"}
	s := NewStore(a)

	assert.Same(t, a, s.Load())
	assert.Same(t, a, s.Swap(b))
	assert.Same(t, b, s.Load())
}

func TestLoadFile(t *testing.T) {
	c, err := LoadFile("")
	require.NoError(t, err)
	assert.NotEmpty(t, c.Projects)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, doc("50", "2", "web"), 0o644))

	initial, err := LoadFile(path)
	require.NoError(t, err)
	store := NewStore(initial)

	w := NewWatcher(path, store, nil)
	w.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)

	// An invalid document is ignored.
	require.NoError(t, os.WriteFile(path, doc("500", "2", "web"), 0o644))
	time.Sleep(200 * time.Millisecond)
	assert.Same(t, initial, store.Load())

	require.NoError(t, os.WriteFile(path, doc("50", "3", "web"), 0o644))
	require.Eventually(t, func() bool {
		c := store.Load()
		return c != initial && c.Projects[1].ID == 3
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}
