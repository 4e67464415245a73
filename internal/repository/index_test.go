package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	kerrors "github.com/kyrias/mine/internal/errors"
	"github.com/kyrias/mine/internal/pathmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func associations(t *testing.T, r *Repository) map[string]string {
	t.Helper()
	out := make(map[string]string)
	require.NoError(t, r.mapper.Walk(func(segments []string, filename string) error {
		out[pathmap.Join(segments)] = filename
		return nil
	}))
	return out
}

func TestSerializeDeserialize_RoundTrip(t *testing.T) {
	repo, base := newRepo(t)
	for _, p := range []string{"alice/email", "alice/bank", "bob", "bob/vpn/key"} {
		require.NoError(t, repo.Insert(p, []byte(p)))
	}

	data, err := repo.Serialize()
	require.NoError(t, err)

	restored, err := Deserialize(data, base)
	require.NoError(t, err)
	assert.Equal(t, associations(t, repo), associations(t, restored))

	got, err := restored.Get("bob/vpn/key")
	require.NoError(t, err)
	assert.Equal(t, []byte("bob/vpn/key"), got)
}

func TestSerializeDeserialize_MultibyteNames(t *testing.T) {
	repo, base := newRepo(t)
	for _, p := range []string{"ålice/📧", "ålice/bänk", "日本/鍵"} {
		require.NoError(t, repo.Insert(p, []byte(p)))
	}

	data, err := repo.Serialize()
	require.NoError(t, err)

	restored, err := Deserialize(data, base)
	require.NoError(t, err)
	assert.Equal(t, associations(t, repo), associations(t, restored))

	got, err := restored.Get("ålice/📧")
	require.NoError(t, err)
	assert.Equal(t, []byte("ålice/📧"), got)
}

func TestSerializeDeserialize_InvalidNamesNeverReachIndex(t *testing.T) {
	repo, base := newRepo(t)
	require.NoError(t, repo.Insert("alice/ok", []byte("x")))
	assert.ErrorIs(t, repo.Insert("alice/\xff", []byte("y")), kerrors.ErrInvalidPath)
	assert.ErrorIs(t, repo.Insert("alice/\xfe", []byte("z")), kerrors.ErrInvalidPath)

	data, err := repo.Serialize()
	require.NoError(t, err)

	restored, err := Deserialize(data, base)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice/ok"}, restored.Paths())
}

func TestSerialize_Empty(t *testing.T) {
	repo, base := newRepo(t)

	data, err := repo.Serialize()
	require.NoError(t, err)

	restored, err := Deserialize(data, base)
	require.NoError(t, err)
	assert.Equal(t, 0, restored.Len())
}

func TestDeserialize_Malformed(t *testing.T) {
	id := strings.Repeat("a", 100)
	mustJSON := func(v any) []byte {
		data, err := json.Marshal(v)
		require.NoError(t, err)
		return data
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"NotJSON", []byte("{not json")},
		{"WrongVersion", mustJSON(index{Version: 99})},
		{"NoPath", mustJSON(index{Version: 1, Entries: []indexEntry{{File: id}}})},
		{"Traversal", mustJSON(index{Version: 1, Entries: []indexEntry{{Path: []string{"a"}, File: "../x"}}})},
		{"EmptySegment", mustJSON(index{Version: 1, Entries: []indexEntry{{Path: []string{"a", ""}, File: id}}})},
		{"DuplicateFile", mustJSON(index{Version: 1, Entries: []indexEntry{
			{Path: []string{"a"}, File: id},
			{Path: []string{"b"}, File: id},
		}})},
		{"DuplicatePath", mustJSON(index{Version: 1, Entries: []indexEntry{
			{Path: []string{"a"}, File: id},
			{Path: []string{"a"}, File: strings.Repeat("b", 100)},
		}})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Deserialize(tt.data, t.TempDir())
			assert.ErrorIs(t, err, kerrors.ErrSerialization)
		})
	}
}

func TestLoad_FreshWhenIndexMissing(t *testing.T) {
	base := t.TempDir()

	repo, err := Load(base, filepath.Join(base, "index"))
	require.NoError(t, err)
	assert.Equal(t, 0, repo.Len())

	info, err := os.Stat(filepath.Join(base, DirName))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSaveIndexLoad(t *testing.T) {
	repo, base := newRepo(t)
	indexPath := filepath.Join(base, "index")
	require.NoError(t, repo.Insert("alice/email", []byte("hunter2")))

	require.NoError(t, SaveIndex(repo, indexPath))

	loaded, err := Load(base, indexPath)
	require.NoError(t, err)
	got, err := loaded.Get("alice/email")
	require.NoError(t, err)
	assert.Equal(t, []byte("hunter2"), got)
}

func TestLoad_MalformedIndex(t *testing.T) {
	base := t.TempDir()
	indexPath := filepath.Join(base, "index")
	require.NoError(t, os.WriteFile(indexPath, []byte("garbage"), 0600))

	_, err := Load(base, indexPath)
	assert.ErrorIs(t, err, kerrors.ErrSerialization)
}

func TestSaveIndex_UnwritablePath(t *testing.T) {
	repo, base := newRepo(t)
	blocker := filepath.Join(base, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	err := SaveIndex(repo, filepath.Join(blocker, "index"))
	assert.ErrorIs(t, err, kerrors.ErrIO)
}
