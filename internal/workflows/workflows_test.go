package workflows

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/kyrias/mine/internal/audit"
	"github.com/kyrias/mine/internal/configs"
	kerrors "github.com/kyrias/mine/internal/errors"
	logger "github.com/kyrias/mine/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCommon(t *testing.T) Common {
	t.Helper()
	settings := configs.Resolve(&configs.Config{
		Store: configs.StoreConfig{
			DataDir:   t.TempDir(),
			IndexFile: configs.DefaultIndexFile,
			KeyFile:   configs.DefaultKeyFile,
		},
	})
	return Common{Settings: settings, Log: logger.Logger{Out: &bytes.Buffer{}}}
}

func initStore(t *testing.T) Common {
	t.Helper()
	c := testCommon(t)
	_, err := Init(context.Background(), InitOptions{Common: c})
	require.NoError(t, err)
	return c
}

func insert(t *testing.T, c Common, name, secret string) {
	t.Helper()
	_, err := Insert(context.Background(), InsertOptions{Common: c, Name: name, Secret: []byte(secret)})
	require.NoError(t, err)
}

func TestInit(t *testing.T) {
	ctx := context.Background()
	c := testCommon(t)

	result, err := Init(ctx, InitOptions{Common: c})
	require.NoError(t, err)
	assert.True(t, result.IndexCreated)
	assert.NotEmpty(t, result.StoreUUID)
	assert.FileExists(t, c.Settings.KeyPath)
	assert.FileExists(t, c.Settings.IndexPath)
	assert.DirExists(t, filepath.Join(c.Settings.DataDir, "repository"))

	meta, err := configs.LoadStoreMeta(c.Settings.StorePath)
	require.NoError(t, err)
	assert.Equal(t, result.StoreUUID, meta.Store.UUID)

	_, err = Init(ctx, InitOptions{Common: c})
	assert.ErrorIs(t, err, kerrors.ErrAlreadyExists)
}

func TestInitKeepsExistingIndex(t *testing.T) {
	c := initStore(t)
	insert(t, c, "alice/email", "hunter2")
	require.NoError(t, os.Remove(c.Settings.KeyPath))

	result, err := Init(context.Background(), InitOptions{Common: c})
	require.NoError(t, err)
	assert.False(t, result.IndexCreated)

	found, err := Find(context.Background(), FindOptions{Common: c, Pattern: "**"})
	require.NoError(t, err)
	assert.Equal(t, []string{"alice/email"}, found.Matches)
}

func TestCancelledContext(t *testing.T) {
	c := initStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Show(ctx, ShowOptions{Common: c, Name: "alice"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNotInitialized(t *testing.T) {
	c := testCommon(t)

	_, err := Show(context.Background(), ShowOptions{Common: c, Name: "alice"})
	assert.ErrorIs(t, err, kerrors.ErrStoreNotInitialized)
}

func TestInsertShow(t *testing.T) {
	ctx := context.Background()
	c := initStore(t)

	result, err := Insert(ctx, InsertOptions{Common: c, Name: "alice/email", Secret: []byte("hunter2")})
	require.NoError(t, err)
	assert.False(t, result.Replaced)

	shown, err := Show(ctx, ShowOptions{Common: c, Name: "alice/email"})
	require.NoError(t, err)
	password, ok := shown.Entry.Password()
	assert.True(t, ok)
	assert.Equal(t, "hunter2", password)

	result, err = Insert(ctx, InsertOptions{Common: c, Name: "alice/email", Secret: []byte("s3cret")})
	require.NoError(t, err)
	assert.True(t, result.Replaced)

	shown, err = Show(ctx, ShowOptions{Common: c, Name: "alice/email", Tag: "password"})
	require.NoError(t, err)
	assert.Equal(t, "s3cret", shown.Value)
}

func TestInsertValidation(t *testing.T) {
	ctx := context.Background()
	c := initStore(t)

	_, err := Insert(ctx, InsertOptions{Common: c, Name: "///", Secret: []byte("x")})
	assert.ErrorIs(t, err, kerrors.ErrInvalidPath)

	_, err = Insert(ctx, InsertOptions{Common: c, Name: "alice", Secret: nil})
	assert.ErrorIs(t, err, kerrors.ErrEmptySecret)
}

func TestSetTag(t *testing.T) {
	ctx := context.Background()
	c := initStore(t)
	insert(t, c, "alice/email", "hunter2")

	result, err := SetTag(ctx, SetTagOptions{Common: c, Name: "alice/email", Tag: "user", Value: "alice"})
	require.NoError(t, err)
	assert.True(t, result.Created)

	result, err = SetTag(ctx, SetTagOptions{Common: c, Name: "alice/email", Tag: "user", Value: "bob"})
	require.NoError(t, err)
	assert.False(t, result.Created)

	shown, err := Show(ctx, ShowOptions{Common: c, Name: "alice/email"})
	require.NoError(t, err)
	assert.Equal(t, []string{"password", "user"}, shown.Entry.Tags())
	value, _ := shown.Entry.Get("user")
	assert.Equal(t, "bob", value)

	_, err = SetTag(ctx, SetTagOptions{Common: c, Name: "nobody", Tag: "user", Value: "x"})
	assert.ErrorIs(t, err, kerrors.ErrNotFound)

	_, err = SetTag(ctx, SetTagOptions{Common: c, Name: "alice/email", Tag: "", Value: "x"})
	assert.ErrorIs(t, err, kerrors.ErrInvalidTag)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	c := initStore(t)
	insert(t, c, "alice/email", "hunter2")
	insert(t, c, "bob", "pw")

	require.NoError(t, Remove(ctx, RemoveOptions{Common: c, Name: "alice/email"}))

	_, err := Show(ctx, ShowOptions{Common: c, Name: "alice/email"})
	assert.ErrorIs(t, err, kerrors.ErrNotFound)

	err = Remove(ctx, RemoveOptions{Common: c, Name: "alice/email"})
	assert.ErrorIs(t, err, kerrors.ErrNotFound)

	checked, err := Check(ctx, CheckOptions{Common: c})
	require.NoError(t, err)
	assert.True(t, checked.Report.Consistent())
	assert.Equal(t, 1, checked.Report.Checked)
}

func TestList(t *testing.T) {
	ctx := context.Background()
	c := initStore(t)
	insert(t, c, "alice", "a")
	insert(t, c, "alice/email", "b")
	insert(t, c, "bob/bank/pin", "c")

	root, err := List(ctx, ListOptions{Common: c})
	require.NoError(t, err)
	assert.False(t, root.HasValue)
	assert.Equal(t, []Child{
		{Name: "alice", HasValue: true, HasChildren: true},
		{Name: "bob", HasValue: false, HasChildren: true},
	}, root.Children)

	bob, err := List(ctx, ListOptions{Common: c, Path: "bob"})
	require.NoError(t, err)
	assert.Equal(t, []Child{{Name: "bank", HasChildren: true}}, bob.Children)

	_, err = List(ctx, ListOptions{Common: c, Path: "carol"})
	assert.ErrorIs(t, err, kerrors.ErrNotFound)
}

func TestFind(t *testing.T) {
	ctx := context.Background()
	c := initStore(t)
	insert(t, c, "alice/email", "a")
	insert(t, c, "work/alice/email", "b")
	insert(t, c, "work/vpn", "c")

	result, err := Find(ctx, FindOptions{Common: c, Pattern: "**/email"})
	require.NoError(t, err)
	assert.Equal(t, []string{"alice/email", "work/alice/email"}, result.Matches)
	assert.Equal(t, 3, result.Searched)

	result, err = Find(ctx, FindOptions{Common: c, Pattern: "nothing/*"})
	require.NoError(t, err)
	assert.Empty(t, result.Matches)

	_, err = Find(ctx, FindOptions{Common: c, Pattern: "[a"})
	assert.ErrorIs(t, err, kerrors.ErrInvalidPattern)
}

func TestCheckDetectsOrphan(t *testing.T) {
	ctx := context.Background()
	c := initStore(t)
	insert(t, c, "alice/email", "a")

	// A blob written without its index entry, as after a crash mid-insert.
	orphan := filepath.Join(c.Settings.DataDir, "repository", "leftover")
	require.NoError(t, os.WriteFile(orphan, []byte("x"), 0600))

	result, err := Check(ctx, CheckOptions{Common: c})
	require.NoError(t, err)
	assert.False(t, result.Report.Consistent())
	assert.Equal(t, []string{"leftover"}, result.Report.Orphans)
	assert.Empty(t, result.Report.Dangling)
}

func TestAuditLog(t *testing.T) {
	ctx := context.Background()
	c := initStore(t)
	insert(t, c, "alice/email", "hunter2")
	_, err := SetTag(ctx, SetTagOptions{Common: c, Name: "alice/email", Tag: "user", Value: "alice"})
	require.NoError(t, err)

	data, err := os.ReadFile(c.Settings.AuditPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "alice")
	assert.NotContains(t, string(data), "hunter2")

	result, err := Log(ctx, LogOptions{Common: c})
	require.NoError(t, err)
	require.Len(t, result.Entries, 3)
	assert.Equal(t, audit.OpInit, result.Entries[0].Operation)
	assert.Equal(t, audit.OpSetTag, result.Entries[2].Operation)
	assert.Equal(t, 2, result.Entries[2].Tags)

	result, err = Log(ctx, LogOptions{Common: c, Operations: "insert, set-tag", Reverse: true, Limit: 1})
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, audit.OpSetTag, result.Entries[0].Operation)
	assert.Equal(t, 3, result.TotalEntriesBeforeFilter)

	_, err = Log(ctx, LogOptions{Common: c, Since: "yesterday"})
	assert.ErrorIs(t, err, kerrors.ErrInvalidDateFormat)
}

func TestShowMissingTagNotAudited(t *testing.T) {
	ctx := context.Background()
	c := initStore(t)
	insert(t, c, "alice/email", "hunter2")

	_, err := Show(ctx, ShowOptions{Common: c, Name: "alice/email", Tag: "nope"})
	assert.ErrorIs(t, err, kerrors.ErrNotFound)

	result, err := Log(ctx, LogOptions{Common: c, Operations: "show"})
	require.NoError(t, err)
	assert.Empty(t, result.Entries)

	_, err = Show(ctx, ShowOptions{Common: c, Name: "alice/email"})
	require.NoError(t, err)

	result, err = Log(ctx, LogOptions{Common: c, Operations: "show"})
	require.NoError(t, err)
	assert.Len(t, result.Entries, 1)
}

func TestAuditDisabled(t *testing.T) {
	c := testCommon(t)
	c.Settings.Audit = false
	_, err := Init(context.Background(), InitOptions{Common: c})
	require.NoError(t, err)

	assert.NoFileExists(t, c.Settings.AuditPath)

	result, err := Log(context.Background(), LogOptions{Common: c})
	require.NoError(t, err)
	assert.Empty(t, result.Entries)
}

func TestLogDateFilters(t *testing.T) {
	c := testCommon(t)
	for _, ts := range []string{"2026-01-01T10:00:00.000000Z", "2026-02-01T10:00:00.000000Z", "2026-03-01T10:00:00.000000Z"} {
		require.NoError(t, audit.Log(c.Settings.AuditPath, audit.Entry{Timestamp: ts, Operation: audit.OpShow}))
	}

	result, err := Log(context.Background(), LogOptions{Common: c, Since: "2026-01-15", Until: "2026-02-01"})
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, "2026-02-01T10:00:00.000000Z", result.Entries[0].Timestamp)
}
