package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kcisum/internal/config"
	"kcisum/internal/domain"
)

// saveRecords writes records as an indented JSON array
func saveRecords(path string, records []domain.Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func sampleRecords() []domain.Record {
	return []domain.Record{
		{Board: "rpi3", Tree: "mainline", Branch: "master", Version: "v5.0", Arch: "arm", Config: "defconfig",
			Lab: "lab-1", KCIBoard: "rpi3", Link: "http://example.com/log", Status: "FAIL", Published: "2017-03-14T10:00:00Z"},
		{Board: "juno", Tree: "next", Branch: "master", Version: "next-20170314", Arch: "arm64", Config: "defconfig",
			Lab: "lab-2", KCIBoard: "juno", Link: "http://example.com/juno", Status: "PASS", Published: "2017-03-14T09:00:00Z"},
		{Board: "beaglebone-black", Tree: "stable", Branch: "linux-4.9.y", Version: "v4.9.14", Arch: "arm", Config: "multi_v7_defconfig",
			Lab: "lab-1", KCIBoard: "am335x-boneblack", Link: "http://example.com/bbb", Status: "FAIL", Published: "2017-03-13T09:00:00Z"},
	}
}

func TestJSONStore_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boot-results.json")
	require.NoError(t, saveRecords(path, sampleRecords()))

	st := NewJSONStore(path, nil)

	failed, err := st.GetStatus("FAIL")
	require.NoError(t, err)
	require.Len(t, failed, 2)
	assert.Equal(t, "rpi3", failed[0].Board)
	assert.Equal(t, "beaglebone-black", failed[1].Board)
	assert.Equal(t, "am335x-boneblack", failed[1].KCIBoard)

	passed, err := st.GetStatus("PASS")
	require.NoError(t, err)
	require.Len(t, passed, 1)
	assert.Equal(t, "juno", passed[0].Board)

	none, err := st.GetStatus("OFFLINE")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestJSONStore_Directory(t *testing.T) {
	dir := t.TempDir()
	records := sampleRecords()

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "b"), 0755))
	require.NoError(t, saveRecords(filepath.Join(dir, "a.json"), records[:1]))
	require.NoError(t, saveRecords(filepath.Join(dir, "b", "c.json"), records[1:]))

	// a single record object is accepted too
	single := `{"board":"odroid-xu3","status":"FAIL","published":"2017-03-14T11:00:00Z"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b", "d.json"), []byte(single), 0644))

	st := NewJSONStore(dir, config.DefaultPathsToIgnore)
	failed, err := st.GetStatus("FAIL")
	require.NoError(t, err)

	boards := make([]string, 0, len(failed))
	for _, r := range failed {
		boards = append(boards, r.Board)
	}
	assert.Equal(t, []string{"rpi3", "beaglebone-black", "odroid-xu3"}, boards)
}

func TestJSONStore_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing path", func(t *testing.T) {
		_, err := NewJSONStore(filepath.Join(dir, "missing.json"), nil).GetStatus("FAIL")
		require.Error(t, err)
		assert.True(t, domain.HasCode(err, domain.ErrCodeStore))
	})

	t.Run("invalid json", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
		_, err := NewJSONStore(path, nil).GetStatus("FAIL")
		require.Error(t, err)
		assert.True(t, domain.HasCode(err, domain.ErrCodeStore))
		assert.Contains(t, err.Error(), "broken.json")
	})
}

func TestOpen(t *testing.T) {
	cfg := config.New()
	cfg.RecordsPath = filepath.Join(t.TempDir(), "records.json")

	st, closeFn, err := Open(cfg)
	require.NoError(t, err)
	require.NotNil(t, closeFn)
	assert.IsType(t, &JSONStore{}, st)
	assert.NoError(t, closeFn())

	cfg.Store = "redis"
	_, _, err = Open(cfg)
	require.Error(t, err)
	assert.True(t, domain.HasCode(err, domain.ErrCodeConfig))
}
